package toon

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the codec. Parser-side errors are wrapped in
// a [*ParseError] carrying the source location; match them with
// [errors.Is].
var (
	// ErrInvalidHeader indicates a line that should open an array block
	// but does not match the name[N]{fields}: grammar.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrRowCountMismatch indicates a body with a different number of rows
	// than the declared arity.
	ErrRowCountMismatch = errors.New("row count mismatch")
	// ErrFieldCountMismatch indicates a row with a different number of
	// values than the declared field list.
	ErrFieldCountMismatch = errors.New("field count mismatch")
	// ErrIndent indicates a body row whose indentation is not exactly the
	// configured indent size.
	ErrIndent = errors.New("bad indentation")
	// ErrUnterminatedString indicates a quoted token with no closing quote
	// before the end of the row.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrDuplicateArrayName indicates two blocks sharing one name.
	ErrDuplicateArrayName = errors.New("duplicate array name")
	// ErrFlattenConflict indicates flat keys whose paths require a node to
	// be both a leaf and an object.
	ErrFlattenConflict = errors.New("flatten conflict")
	// ErrNonUniformArray indicates an array whose records do not share the
	// first record's field set and order.
	ErrNonUniformArray = errors.New("non-uniform array")
	// ErrUnsupportedValue indicates a value the grammar cannot express,
	// such as a non-finite float or a top-level entry that is not an array
	// of records.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// ParseError wraps a parse failure with its source location. Line and
// column are 1-based; a zero column means the error applies to the whole
// line.
type ParseError struct {
	Err  error
	Line int
	Col  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Col, e.Err)
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the wrapped error for use with [errors.Is].
func (e *ParseError) Unwrap() error { return e.Err }

func parseErrAt(line, col int, err error) error {
	return &ParseError{Err: err, Line: line, Col: col}
}
