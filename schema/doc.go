// Package schema validates TOON documents against declared field
// contracts and infers schemas from observed data.
//
// A [Field] gates one record field by type, nullability, numeric bounds,
// pattern, enum membership, and an optional custom predicate. [TypeInteger]
// and [TypeFloat] are deliberately strict and reject each other;
// [TypeNumber] exists specifically to relax that, matching what [Infer]
// produces for mixed integer/float columns. Booleans are never integers.
//
// A [Schema] validates one named array; [MultiSchema] validates several
// and can reject arrays no schema covers. [Infer] builds a schema from
// data such that the inferred schema always validates its source.
//
// Failures are [*ValidationError] values carrying the array, field, value,
// and reason; they wrap [ErrValidation] for errors.Is matching.
//
// [Schema.JSONSchema] renders a schema as JSON Schema Draft 7 for
// interchange with external validators.
package schema
