package attachment

const (
	// DefaultMaxSize is the default attachment size ceiling (100 MiB)
	DefaultMaxSize = 100 << 20
	// DefaultHostTag is the default host tag appended to generated
	// content-ids
	DefaultHostTag = "mtom.siros.org"
)

// Config carries the attachment limits for one build or parse call.
// It is threaded explicitly into every call that needs it so the core
// stays a pure function of its inputs; the zero value uses the defaults.
type Config struct {
	// MaxSize is the per-attachment size ceiling in bytes
	MaxSize int64 `yaml:"maxSize"`
	// HostTag is the right-hand side of generated content-ids
	HostTag string `yaml:"hostTag"`
}

// DefaultConfig returns the default limits
func DefaultConfig() Config {
	return Config{MaxSize: DefaultMaxSize, HostTag: DefaultHostTag}
}

func (c Config) maxSize() int64 {
	if c.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return c.MaxSize
}

func (c Config) hostTag() string {
	if c.HostTag == "" {
		return DefaultHostTag
	}
	return c.HostTag
}
