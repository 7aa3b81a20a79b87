package toonio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.toonkit.dev/toonkit/toon"
)

// ErrFile indicates a failed file operation; it wraps the underlying
// cause, including [os.ErrExist] when overwrite protection refuses a
// write.
var ErrFile = errors.New("file operation failed")

// ErrUnknownFormat indicates a path whose extension maps to no supported
// format.
var ErrUnknownFormat = errors.New("unknown file format")

// Format identifies a supported file encoding.
type Format string

// The supported file formats.
const (
	FormatTOON Format = "toon"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath maps a file extension to its [Format].
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toon":
		return FormatTOON, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Option configures file operations.
type Option func(*options)

type options struct {
	codec     []toon.Option
	overwrite bool
}

func applyOptions(opts []Option) options {
	o := options{overwrite: true}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCodecOptions forwards options to the TOON codec, such as
// [toon.WithAdvanced] or [toon.WithIndentSize].
func WithCodecOptions(opts ...toon.Option) Option {
	return func(o *options) {
		o.codec = append(o.codec, opts...)
	}
}

// WithOverwrite controls whether writes may replace an existing file.
// The default is true; with false, writing over an existing file fails
// with [ErrFile] wrapping [os.ErrExist].
func WithOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

// ReadFile reads and parses the file at path according to its extension.
func ReadFile(path string, opts ...Option) (toon.Value, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return toon.Value{}, err
	}

	o := applyOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return toon.Value{}, fmt.Errorf("%w: %w", ErrFile, err)
	}

	return decode(data, format, o)
}

// WriteFile encodes v according to the path's extension and writes it,
// creating parent directories as needed. Emitted TOON and JSON files end
// with a trailing newline.
func WriteFile(path string, v toon.Value, opts ...Option) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	o := applyOptions(opts)

	if !o.overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return fmt.Errorf("%w: %q: %w", ErrFile, path, os.ErrExist)
		}
	}

	data, err := encode(v, format, o)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrFile, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFile, err)
	}

	return nil
}

func decode(data []byte, format Format, o options) (toon.Value, error) {
	switch format {
	case FormatTOON:
		return toon.Parse(string(data), o.codec...)
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	}

	return toon.Value{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func encode(v toon.Value, format Format, o options) ([]byte, error) {
	switch format {
	case FormatTOON:
		s, err := toon.Stringify(v, o.codec...)
		if err != nil {
			return nil, err
		}

		return []byte(s + "\n"), nil
	case FormatJSON:
		data, err := EncodeJSON(v, "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case FormatYAML:
		return EncodeYAML(v)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
