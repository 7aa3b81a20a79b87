package toon

// Default configuration values.
const (
	DefaultIndentSize = 2
	DefaultSeparator  = "."
)

// Config holds the tunable knobs shared by parsing, serialization, and the
// streaming layer. The zero Config is not meaningful; obtain defaults with
// [DefaultConfig] or pass [Option] values to the package entry points.
type Config struct {
	// IndentSize is the number of spaces prefixing each body row.
	IndentSize int

	// Separator joins path segments when flattening nested records.
	Separator string

	// MaxDepth caps flatten recursion. Zero means unbounded.
	MaxDepth int

	// Advanced enables the flatten/unflatten pass: nested record objects
	// are projected onto dotted field names on serialize and rebuilt on
	// parse. When false, dotted field names are literal keys.
	Advanced bool
}

// DefaultConfig returns the default configuration: two-space indent, "."
// separator, unbounded depth, advanced mode off.
func DefaultConfig() Config {
	return Config{
		IndentSize: DefaultIndentSize,
		Separator:  DefaultSeparator,
	}
}

// Option configures a [Config].
type Option func(*Config)

// WithIndentSize sets the number of spaces per body row indent.
// Values less than 1 are ignored.
func WithIndentSize(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.IndentSize = n
		}
	}
}

// WithSeparator sets the path separator used by flatten and unflatten.
// An empty separator is ignored.
func WithSeparator(s string) Option {
	return func(c *Config) {
		if s != "" {
			c.Separator = s
		}
	}
}

// WithMaxDepth caps flatten recursion depth. Zero or negative values mean
// unbounded.
func WithMaxDepth(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}

		c.MaxDepth = n
	}
}

// WithAdvanced toggles the flatten/unflatten pass during serialize and
// parse.
func WithAdvanced(advanced bool) Option {
	return func(c *Config) {
		c.Advanced = advanced
	}
}

func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
