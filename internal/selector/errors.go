// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selector

import "fmt"

// FormatError reports selector input that does not match the grammar.
type FormatError struct {
	// Input is the full selector string as given.
	Input string

	// Token is the offending comma-separated token, if any.
	Token string

	// Reason describes what is wrong with the token.
	Reason string

	// Example shows a valid selector for the same operation.
	Example string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid page selector %q", e.Input)
	if e.Token != "" {
		msg += fmt.Sprintf(": token %q", e.Token)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Example != "" {
		msg += " (example: " + e.Example + ")"
	}
	return msg
}

// RangeError reports a well-formed selector that references pages outside
// the document. Start equals End for single-page references.
type RangeError struct {
	Start int
	End   int
	Total int
}

func (e *RangeError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("page %d is outside the document (pages 1-%d)", e.Start, e.Total)
	}
	return fmt.Sprintf("range %d-%d is outside the document (pages 1-%d)", e.Start, e.End, e.Total)
}
