package mtom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-mtom/pkg/attachment"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mtom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
attachments:
  maxSize: 52428800
  hostTag: gateway.example.com
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(52428800), cfg.Attachments.MaxSize)
	assert.Equal(t, "gateway.example.com", cfg.Attachments.HostTag)
}

func TestLoadConfig_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("MTOM_HOST_TAG", "svc.prod.example.com")
	t.Setenv("MTOM_MAX_SIZE", "1048576")

	path := writeConfigFile(t, `
attachments:
  maxSize: ${MTOM_MAX_SIZE}
  hostTag: ${MTOM_HOST_TAG}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1048576), cfg.Attachments.MaxSize)
	assert.Equal(t, "svc.prod.example.com", cfg.Attachments.HostTag)
}

func TestLoadConfig_MissingFieldsTakeDefaults(t *testing.T) {
	path := writeConfigFile(t, `
attachments:
  hostTag: only.tag.set
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(attachment.DefaultMaxSize), cfg.Attachments.MaxSize)
	assert.Equal(t, "only.tag.set", cfg.Attachments.HostTag)

	path = writeConfigFile(t, `attachments: {}`)
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, attachment.DefaultConfig(), cfg.Attachments)
}

func TestLoadConfig_NegativeMaxSize(t *testing.T) {
	path := writeConfigFile(t, `
attachments:
  maxSize: -1
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "attachments: [not a mapping")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
