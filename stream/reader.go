package stream

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.toonkit.dev/toonkit/toon"
)

// Block is one parsed array block: its name and decoded records.
type Block struct {
	// Name is the array name from the block header.
	Name string

	// Records holds the decoded record objects in row order.
	Records []toon.Value
}

// Blocks parses TOON array blocks from r and yields them one at a time,
// holding at most one block in memory. Headers with the "?" arity
// placeholder are accepted; rows are counted until the next non-indented
// line or end of input. Iteration stops at the first error, yielded as the
// second value.
//
// Concatenating the yielded blocks reproduces what [toon.Parse] returns
// for the same input.
func Blocks(r io.Reader, opts ...toon.Option) iter.Seq2[Block, error] {
	cfg := toon.DefaultConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Block, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

		lines := &lineSource{sc: sc}
		seen := make(map[string]bool)

		for {
			line, lineNo, ok := lines.next()
			if !ok {
				if err := sc.Err(); err != nil {
					yield(Block{}, err)
				}

				return
			}

			if strings.TrimSpace(line) == "" {
				continue
			}

			header, err := toon.ParseHeader(line)
			if err != nil {
				yield(Block{}, &toon.ParseError{Err: err, Line: lineNo})

				return
			}

			if seen[header.Name] {
				yield(Block{}, &toon.ParseError{
					Err:  fmt.Errorf("%w: %q", toon.ErrDuplicateArrayName, header.Name),
					Line: lineNo,
				})

				return
			}

			seen[header.Name] = true

			records, err := readBody(lines, header, cfg)
			if err != nil {
				yield(Block{}, err)

				return
			}

			if !yield(Block{Name: header.Name, Records: records}, nil) {
				return
			}
		}
	}
}

// lineSource wraps a scanner with one line of pushback, tracking 1-based
// line numbers and stripping carriage returns.
type lineSource struct {
	sc      *bufio.Scanner
	pending string
	lineNo  int
	pushed  bool
}

func (l *lineSource) next() (string, int, bool) {
	if l.pushed {
		l.pushed = false

		return l.pending, l.lineNo, true
	}

	if !l.sc.Scan() {
		return "", l.lineNo, false
	}

	l.lineNo++
	l.pending = strings.TrimSuffix(l.sc.Text(), "\r")

	return l.pending, l.lineNo, true
}

func (l *lineSource) push() {
	l.pushed = true
}

// readBody consumes the indented rows of one block.
func readBody(lines *lineSource, header toon.Header, cfg toon.Config) ([]toon.Value, error) {
	indent := strings.Repeat(" ", cfg.IndentSize)
	records := make([]toon.Value, 0, max(header.Count, 0))

	for header.Count < 0 || len(records) < header.Count {
		line, lineNo, ok := lines.next()

		if !ok || strings.TrimSpace(line) == "" || !isIndented(line) {
			if ok {
				lines.push()
			}

			if header.Count >= 0 {
				return nil, &toon.ParseError{
					Err: fmt.Errorf("%w: %s declares %d rows, found %d",
						toon.ErrRowCountMismatch, header.Name, header.Count, len(records)),
					Line: lineNo,
				}
			}

			return records, nil
		}

		rest, ok := strings.CutPrefix(line, indent)
		if !ok || (rest != "" && (rest[0] == ' ' || rest[0] == '\t')) {
			return nil, &toon.ParseError{
				Err:  fmt.Errorf("%w: expected %d spaces", toon.ErrIndent, cfg.IndentSize),
				Line: lineNo,
			}
		}

		record, err := toon.DecodeRecord(rest, header,
			toon.WithAdvanced(cfg.Advanced), toon.WithSeparator(cfg.Separator))
		if err != nil {
			return nil, &toon.ParseError{Err: err, Line: lineNo}
		}

		records = append(records, record)
	}

	// Declared arity reached: a further indented line is an extra row.
	line, lineNo, ok := lines.next()
	if ok {
		if isIndented(line) && strings.TrimSpace(line) != "" {
			return nil, &toon.ParseError{
				Err:  fmt.Errorf("%w: more rows than declared", toon.ErrRowCountMismatch),
				Line: lineNo,
			}
		}

		lines.push()
	}

	return records, nil
}

func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}
