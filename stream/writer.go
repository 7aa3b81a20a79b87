package stream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strings"

	"go.toonkit.dev/toonkit/toon"
)

// Sentinel errors returned by the [Writer] state machine.
var (
	// ErrNestedArray indicates BeginArray while an array is already open.
	ErrNestedArray = errors.New("array already open")
	// ErrNoArrayOpen indicates a row write with no open array.
	ErrNoArrayOpen = errors.New("no array open")
	// ErrArity indicates a row whose value count does not match the
	// declared field list, or a record missing a declared field.
	ErrArity = errors.New("arity mismatch")
	// ErrClosed indicates use of a closed writer.
	ErrClosed = errors.New("writer closed")
)

type writerState uint8

const (
	stateIdle writerState = iota
	stateInArray
	stateClosed
)

// Writer emits TOON arrays one row at a time without holding the record
// sequence in memory. Because the row count is unknown when the header
// goes out, [Writer.BeginArray] writes the "?" arity placeholder; readers
// count rows instead. Peak memory is proportional to the field list,
// independent of row count.
//
// A Writer is a single-goroutine state machine: BeginArray opens an array,
// WriteRow/WriteItem/WriteItems append rows, EndArray closes it.
// [Writer.Close] ends any open array and closes the sink, so a deferred
// Close keeps the output syntactically complete on every exit path.
//
// Create instances with [NewWriter]. A Writer is not safe for concurrent
// use without external synchronization.
type Writer struct {
	w      io.Writer
	cfg    toon.Config
	fields []string
	rows   int
	state  writerState
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer, opts ...toon.Option) *Writer {
	cfg := toon.DefaultConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Writer{w: w, cfg: cfg}
}

// BeginArray emits the header for a new array with the "?" arity
// placeholder and the given field list. It fails with [ErrNestedArray] if
// an array is already open.
func (w *Writer) BeginArray(name string, fields []string) error {
	switch w.state {
	case stateInArray:
		return fmt.Errorf("%w: %q", ErrNestedArray, name)
	case stateClosed:
		return ErrClosed
	}

	header := toon.Header{Name: name, Count: toon.ArityUnknown, Fields: fields}

	// Round-tripping through ParseHeader validates the name and fields.
	if _, err := toon.ParseHeader(header.String()); err != nil {
		return err
	}

	if _, err := io.WriteString(w.w, header.String()+"\n"); err != nil {
		return err
	}

	w.fields = make([]string, len(fields))
	copy(w.fields, fields)
	w.rows = 0
	w.state = stateInArray

	return nil
}

// WriteRow emits one indented row. The value count must match the field
// list declared by BeginArray.
func (w *Writer) WriteRow(values []toon.Value) error {
	if err := w.checkInArray(); err != nil {
		return err
	}

	if len(values) != len(w.fields) {
		return fmt.Errorf("%w: expected %d values, got %d", ErrArity, len(w.fields), len(values))
	}

	for _, v := range values {
		if err := checkScalar(v); err != nil {
			return err
		}
	}

	indent := strings.Repeat(" ", w.cfg.IndentSize)

	if _, err := io.WriteString(w.w, indent+toon.EncodeRow(values)+"\n"); err != nil {
		return err
	}

	w.rows++

	return nil
}

// WriteItem projects a record object onto the declared field list and
// emits it as one row. Nested objects are flattened first; a record
// missing a declared field fails with [ErrArity].
func (w *Writer) WriteItem(item toon.Value) error {
	if err := w.checkInArray(); err != nil {
		return err
	}

	values, err := w.projectItem(item)
	if err != nil {
		return err
	}

	return w.WriteRow(values)
}

// WriteItems drains an iterator of records, returning the number of rows
// written. It stops at the first failing record.
func (w *Writer) WriteItems(items iter.Seq[toon.Value]) (int, error) {
	count := 0

	for item := range items {
		if err := w.WriteItem(item); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

// EndArray closes the open array and returns its row count. The header's
// "?" placeholder is left as written: a one-byte placeholder cannot be
// widened in place, and readers accept "?" by counting.
func (w *Writer) EndArray() (int, error) {
	if err := w.checkInArray(); err != nil {
		return 0, err
	}

	rows := w.rows
	w.fields = nil
	w.rows = 0
	w.state = stateIdle

	return rows, nil
}

// WriteArray writes a complete array in one call: it drains the iterator,
// derives the field list from the first record, and emits a header with
// the numeric arity followed by the buffered rows. An empty iterator
// emits name[0]{}:. Rows are buffered; the input sequence is consumed
// once and never materialized.
func (w *Writer) WriteArray(name string, items iter.Seq[toon.Value]) (int, error) {
	switch w.state {
	case stateInArray:
		return 0, fmt.Errorf("%w: %q", ErrNestedArray, name)
	case stateClosed:
		return 0, ErrClosed
	}

	var (
		body   bytes.Buffer
		fields []string
	)

	indent := strings.Repeat(" ", w.cfg.IndentSize)
	count := 0

	for item := range items {
		flat, err := w.flattenItem(item)
		if err != nil {
			return 0, err
		}

		if fields == nil {
			fields = flat.Keys()
		}

		values, err := lookupFields(flat, fields)
		if err != nil {
			return 0, err
		}

		for _, v := range values {
			if err := checkScalar(v); err != nil {
				return 0, err
			}
		}

		body.WriteString(indent)
		body.WriteString(toon.EncodeRow(values))
		body.WriteByte('\n')

		count++
	}

	header := toon.Header{Name: name, Count: count, Fields: fields}

	if _, err := toon.ParseHeader(header.String()); err != nil {
		return 0, err
	}

	if _, err := io.WriteString(w.w, header.String()+"\n"); err != nil {
		return 0, err
	}

	if _, err := w.w.Write(body.Bytes()); err != nil {
		return 0, err
	}

	return count, nil
}

// Close ends any open array and closes the sink when it implements
// [io.Closer]. Close is idempotent.
func (w *Writer) Close() error {
	if w.state == stateClosed {
		return nil
	}

	if w.state == stateInArray {
		if _, err := w.EndArray(); err != nil {
			return err
		}
	}

	w.state = stateClosed

	if closer, ok := w.w.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

func (w *Writer) checkInArray() error {
	switch w.state {
	case stateIdle:
		return ErrNoArrayOpen
	case stateClosed:
		return ErrClosed
	}

	return nil
}

func (w *Writer) projectItem(item toon.Value) ([]toon.Value, error) {
	flat, err := w.flattenItem(item)
	if err != nil {
		return nil, err
	}

	return lookupFields(flat, w.fields)
}

func (w *Writer) flattenItem(item toon.Value) (*toon.Object, error) {
	if item.Kind() != toon.KindObject {
		return nil, fmt.Errorf("%w: item is %s, not a record", ErrArity, item.Kind())
	}

	return toon.Flatten(item.Object(),
		toon.WithSeparator(w.cfg.Separator), toon.WithMaxDepth(w.cfg.MaxDepth)), nil
}

func lookupFields(flat *toon.Object, fields []string) ([]toon.Value, error) {
	values := make([]toon.Value, len(fields))

	for i, field := range fields {
		v, ok := flat.Get(field)
		if !ok {
			return nil, fmt.Errorf("%w: record missing field %q", ErrArity, field)
		}

		values[i] = v
	}

	return values, nil
}

func checkScalar(v toon.Value) error {
	switch v.Kind() {
	case toon.KindArray, toon.KindObject:
		return fmt.Errorf("%w: row value is %s", toon.ErrUnsupportedValue, v.Kind())
	case toon.KindFloat:
		if math.IsNaN(v.Float()) || math.IsInf(v.Float(), 0) {
			return fmt.Errorf("%w: non-finite float", toon.ErrUnsupportedValue)
		}
	}

	return nil
}
