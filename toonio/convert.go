package toonio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ConvertFile reads src, decodes it according to its extension, and
// writes the re-encoded result to dst according to dst's extension.
func ConvertFile(src, dst string, opts ...Option) error {
	v, err := ReadFile(src, opts...)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	if err := WriteFile(dst, v, opts...); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	return nil
}

// BatchConvert converts every file in dir carrying the from format's
// extension into a sibling file with the to format's extension. It
// returns the number of files converted and stops at the first failure.
func BatchConvert(dir string, from, to Format, opts ...Option) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFile, err)
	}

	count := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		src := filepath.Join(dir, entry.Name())

		format, err := FormatForPath(src)
		if err != nil || format != from {
			continue
		}

		dst := strings.TrimSuffix(src, filepath.Ext(src)) + "." + string(to)

		slog.Debug("converting file", slog.String("src", src), slog.String("dst", dst))

		if err := ConvertFile(src, dst, opts...); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

// FileStats reports the size of a structured-data file next to its
// equivalent rendering in the other format.
type FileStats struct {
	// Path is the inspected file.
	Path string

	// Format is the file's own format.
	Format Format

	// SizeBytes is the file's size on disk.
	SizeBytes int64

	// Lines is the file's line count.
	Lines int

	// TOONBytes and JSONBytes are the sizes of the document rendered as
	// TOON and as compact JSON.
	TOONBytes int
	JSONBytes int

	// SavingsPercent is how much smaller the TOON rendering is than the
	// JSON rendering.
	SavingsPercent float64
}

// Stats parses the file at path and reports how its TOON rendering
// compares to compact JSON.
func Stats(path string, opts ...Option) (FileStats, error) {
	o := applyOptions(opts)

	format, err := FormatForPath(path)
	if err != nil {
		return FileStats{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return FileStats{}, fmt.Errorf("%w: %w", ErrFile, err)
	}

	v, err := decode(data, format, o)
	if err != nil {
		return FileStats{}, err
	}

	asTOON, err := encode(v, FormatTOON, o)
	if err != nil {
		return FileStats{}, err
	}

	asJSON, err := EncodeJSON(v, "")
	if err != nil {
		return FileStats{}, err
	}

	text := string(data)

	lines := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		lines++
	}

	stats := FileStats{
		Path:      path,
		Format:    format,
		SizeBytes: int64(len(data)),
		Lines:     lines,
		TOONBytes: len(asTOON),
		JSONBytes: len(asJSON),
	}
	if stats.JSONBytes > 0 {
		stats.SavingsPercent = 100 * float64(stats.JSONBytes-stats.TOONBytes) / float64(stats.JSONBytes)
	}

	return stats, nil
}
