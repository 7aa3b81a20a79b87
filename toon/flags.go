package toon

import (
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for codec configuration, allowing callers to
// customize flag names while keeping sensible defaults via
// [NewFlagConfig].
type Flags struct {
	Indent    string
	Separator string
	Advanced  string
}

// NewFlagConfig creates a new [FlagConfig] embedding these flag names.
func (f Flags) NewFlagConfig() *FlagConfig {
	return &FlagConfig{
		Flags: f,
	}
}

// FlagConfig holds CLI flag values for codec configuration.
//
// Create instances with [NewFlagConfig] and register CLI flags with
// [FlagConfig.RegisterFlags]. Use [FlagConfig.Options] to turn the
// collected values into codec [Option] values.
type FlagConfig struct {
	Indent    int
	Separator string
	Advanced  bool
	Flags     Flags
}

// NewFlagConfig returns a new [FlagConfig] with default flag names.
func NewFlagConfig() *FlagConfig {
	f := Flags{
		Indent:    "indent",
		Separator: "separator",
		Advanced:  "advanced",
	}

	return f.NewFlagConfig()
}

// RegisterFlags adds codec flags to the given [*pflag.FlagSet].
func (c *FlagConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Indent, c.Flags.Indent, DefaultIndentSize,
		"spaces per body row indent")
	flags.StringVar(&c.Separator, c.Flags.Separator, DefaultSeparator,
		"path separator for nested record fields")
	flags.BoolVar(&c.Advanced, c.Flags.Advanced, false,
		"flatten nested record objects onto dotted field names")
}

// Options returns the codec options equivalent to the collected flag
// values.
func (c *FlagConfig) Options() []Option {
	return []Option{
		WithIndentSize(c.Indent),
		WithSeparator(c.Separator),
		WithAdvanced(c.Advanced),
	}
}
