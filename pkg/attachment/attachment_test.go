package attachment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	data := []byte("binary payload")

	att, err := New(data, "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, data, att.Data())
	assert.Equal(t, "application/pdf", att.ContentType())
	assert.Equal(t, EncodingBinary, att.TransferEncoding())
	assert.Equal(t, int64(len(data)), att.Size())
	assert.NotEmpty(t, att.ContentID())
	assert.True(t, strings.HasSuffix(att.ContentID(), "@"+DefaultHostTag))
}

func TestNew_WithOptions(t *testing.T) {
	att, err := New([]byte("x"), "image/png",
		WithContentID("logo@example.com"),
		WithTransferEncoding(EncodingBase64),
	)
	require.NoError(t, err)

	assert.Equal(t, "logo@example.com", att.ContentID())
	assert.Equal(t, EncodingBase64, att.TransferEncoding())
}

func TestNew_NormalizesContentID(t *testing.T) {
	att, err := New([]byte("x"), "text/plain", WithContentID("<bracketed@example.com>"))
	require.NoError(t, err)
	assert.Equal(t, "bracketed@example.com", att.ContentID())

	att, err = New([]byte("x"), "text/plain", WithContentID("cid:prefixed@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "prefixed@example.com", att.ContentID())
}

func TestNew_HostTagFromConfig(t *testing.T) {
	att, err := New([]byte("x"), "text/plain",
		WithConfig(Config{HostTag: "gw.example.com"}))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(att.ContentID(), "@gw.example.com"))
}

func TestContentIDForms(t *testing.T) {
	att, err := New([]byte("x"), "text/plain", WithContentID("part1@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "<part1@example.com>", att.ContentIDHeader())
	assert.Equal(t, "cid:part1@example.com", att.CIDReference())
	assert.Equal(t, "cid:part1@example.com", att.XOPInclude().Href)
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		ct      string
		opts    []Option
		problem string
	}{
		{
			name:    "content type without slash",
			data:    []byte("x"),
			ct:      "pdf",
			problem: "not a MIME type",
		},
		{
			name:    "oversized",
			data:    []byte("0123456789"),
			ct:      "text/plain",
			opts:    []Option{WithConfig(Config{MaxSize: 4})},
			problem: "exceeds maximum",
		},
		{
			name:    "empty content-id",
			data:    []byte("x"),
			ct:      "text/plain",
			opts:    []Option{WithContentID("<>")},
			problem: "content-id is empty",
		},
		{
			name:    "unsupported encoding",
			data:    []byte("x"),
			ct:      "text/plain",
			opts:    []Option{WithTransferEncoding("uuencode")},
			problem: "unsupported transfer encoding",
		},
		{
			name:    "missing bytes",
			data:    nil,
			ct:      "text/plain",
			problem: "content bytes are missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data, tt.ct, tt.opts...)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Error(), tt.problem)
		})
	}
}

func TestNew_ReportsEveryProblem(t *testing.T) {
	// Each failed check is reported independently
	_, err := New(nil, "garbage", WithTransferEncoding("uuencode"))
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Problems, 3)
}

func TestNew_SkipValidation(t *testing.T) {
	att, err := New(nil, "garbage", WithoutValidation())
	require.NoError(t, err)
	assert.NotNil(t, att)

	// The skipped checks still fail when run explicitly
	assert.Error(t, att.Validate(DefaultConfig()))
}

func TestValidate_Idempotent(t *testing.T) {
	att, err := New([]byte("payload"), "application/xml")
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.NoError(t, att.Validate(cfg))
	assert.NoError(t, att.Validate(cfg))
	assert.Equal(t, []byte("payload"), att.Data())
}

func TestNormalizeContentID(t *testing.T) {
	assert.Equal(t, "a@b", NormalizeContentID("a@b"))
	assert.Equal(t, "a@b", NormalizeContentID("<a@b>"))
	assert.Equal(t, "a@b", NormalizeContentID("cid:a@b"))
	assert.Equal(t, "a@b", NormalizeContentID("cid:<a@b>"))
}

func TestMatchContentID(t *testing.T) {
	assert.True(t, MatchContentID("cid:a@b", "<a@b>"))
	assert.False(t, MatchContentID("a@b", "c@d"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(DefaultMaxSize), cfg.MaxSize)
	assert.Equal(t, DefaultHostTag, cfg.HostTag)

	// Zero value falls back to the defaults
	var zero Config
	assert.Equal(t, int64(DefaultMaxSize), zero.maxSize())
	assert.Equal(t, DefaultHostTag, zero.hostTag())
}
