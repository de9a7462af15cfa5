// Package docparse orchestrates page-by-page PDF text extraction and drives
// the heuristic field extractors to build structured résumé data.
package docparse

import "fmt"

// MalformedError indicates the PDF byte stream could not be decoded.
// Field-level extraction misses are never errors; this is the parser's
// only failure mode.
type MalformedError struct {
	Message string
	Cause   error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed PDF: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed PDF: %s", e.Message)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}
