// Package toon parses and serializes TOON (Token-Oriented Object
// Notation), a compact line-oriented encoding for uniform record arrays.
// Where JSON repeats every key on every record, TOON declares the field
// list once in a block header and emits each record as one comma-separated
// row:
//
//	users[2]{id,name}:
//	  1,Alice
//	  2,Bob
//
// # Documents
//
// A document is either a single scalar or a sequence of array blocks. Each
// block opens with a name[N]{fields}: header and carries exactly N indented
// rows; N may be the "?" placeholder when written by the streaming layer in
// [go.toonkit.dev/toonkit/stream]. [Parse] and [Stringify] convert between
// documents and the [Value] tree, a tagged union of null, bool, int64,
// float64, string, array, and insertion-ordered [Object].
//
// # Scalars
//
// Row tokens are barewords or double-quoted strings. Unquoted tokens are
// classified as null, true/false (case-insensitive), integer, float
// (decimal point or exponent required), and finally verbatim string.
// Emission quotes a string only when it would otherwise be misread: empty,
// structurally significant characters, surrounding whitespace, control
// characters, or lexical collision with a non-string literal, so "42" and
// "true" survive round-trips as strings. Floats emit in their shortest
// form that reparses identically; integers never gain a decimal point.
//
// # Nested records
//
// With [WithAdvanced], nested record objects ride the flat row format via
// the dotted-path projection of [Flatten] and [Unflatten]:
//
//	u[1]{id,a.c,a.z}:
//	  1,NYC,"10001"
//
// Without it, dotted field names are literal keys. The separator and
// flatten depth are configurable with [WithSeparator] and [WithMaxDepth].
//
// # Errors
//
// Failures surface as sentinel errors ([ErrInvalidHeader],
// [ErrRowCountMismatch], [ErrFieldCountMismatch], [ErrIndent],
// [ErrUnterminatedString], [ErrDuplicateArrayName], [ErrFlattenConflict],
// [ErrNonUniformArray], [ErrUnsupportedValue]); parser-side errors are
// wrapped in [*ParseError] with the source line. The first error stops
// consumption; there are no warnings.
package toon
