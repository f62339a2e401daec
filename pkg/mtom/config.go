package mtom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-mtom/pkg/attachment"
)

// Config is the root configuration structure
type Config struct {
	Attachments attachment.Config `yaml:"attachments"`
}

// LoadConfig loads attachment limits from a YAML file. Environment
// variable references (${VAR} or $VAR) are expanded before parsing, so
// limits can be injected at runtime. Missing fields take the defaults.
//
// Example:
//
//	attachments:
//	  maxSize: 52428800
//	  hostTag: ${MTOM_HOST_TAG}
func LoadConfig(path string) (Config, error) {
	cfg := Config{Attachments: attachment.DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Attachments.MaxSize < 0 {
		return cfg, fmt.Errorf("attachments.maxSize must not be negative, got %d", cfg.Attachments.MaxSize)
	}
	if cfg.Attachments.MaxSize == 0 {
		cfg.Attachments.MaxSize = attachment.DefaultMaxSize
	}
	if cfg.Attachments.HostTag == "" {
		cfg.Attachments.HostTag = attachment.DefaultHostTag
	}
	return cfg, nil
}
