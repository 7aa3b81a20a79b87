// Package stringtest provides small helpers for building expected
// multi-line output in tests with explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected documents with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"users[2]{id,name}:",
//		"  1,Alice",
//		"  2,Bob",
//	) // -> "users[2]{id,name}:\n  1,Alice\n  2,Bob"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct parser input exercising Windows line endings.
//
// Example:
//
//	in := stringtest.JoinCRLF(
//		"users[1]{id}:",
//		"  1",
//	) // -> "users[1]{id}:\r\n  1"
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
