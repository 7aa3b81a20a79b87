// Package toonio bridges TOON documents to the filesystem and to JSON and
// YAML.
//
// [ReadFile] and [WriteFile] dispatch on the file extension (.toon, .json,
// .yaml/.yml); [ConvertFile] and [BatchConvert] re-encode between formats,
// and [Stats] reports how a document's TOON rendering compares in size to
// compact JSON.
//
// The JSON and YAML bridges preserve object key order in both directions,
// which the tabular encoding depends on: the field list of an array block
// is derived from the first record's key sequence. JSON numbers split into
// integers and floats by the presence of a fractional part or exponent.
package toonio
