// Package edit implements line-addressed edits to source files: toggling
// comment markers, wrapping ranges in block delimiters, and adjusting
// indentation. Files are rewritten by streaming bytes around a single
// transformed line, and every mutation goes through backup plus atomic
// replacement so the target is never observable in a half-written state.
package edit

import (
	"errors"
	"fmt"
)

// Stage names the I/O phase a failure occurred in. It is carried by IOError
// so callers can report where in the copy pipeline a system error surfaced.
type Stage string

const (
	StageOpen    Stage = "open"
	StageCreate  Stage = "create"
	StageRead    Stage = "read"
	StageWrite   Stage = "write"
	StageFlush   Stage = "flush"
	StageBackup  Stage = "backup"
	StageReplace Stage = "replace"
)

// IOError wraps a system-level I/O failure with the pipeline stage it
// occurred in.
type IOError struct {
	Stage Stage
	Err   error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error during %s: %v", e.Stage, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ioErr wraps err as an IOError for the given stage, passing through errors
// that already carry edit-level meaning.
func ioErr(stage Stage, err error) error {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}
	return &IOError{Stage: stage, Err: err}
}

// LineNotFoundError reports a request for a line past the end of the file.
// Line numbers are zero-indexed.
type LineNotFoundError struct {
	// Requested is the line number that was asked for.
	Requested int

	// FileLines is the number of lines the file actually has.
	FileLines int
}

func (e *LineNotFoundError) Error() string {
	return fmt.Sprintf("line %d not found: file has %d lines", e.Requested, e.FileLines)
}

// LineTooLongError reports a target line exceeding the configured maximum
// length.
type LineTooLongError struct {
	// Line is the zero-indexed line number.
	Line int

	// Limit is the configured maximum line length in bytes.
	Limit int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line %d exceeds maximum length of %d bytes", e.Line, e.Limit)
}

// RangeTooLargeError reports a batch or range operation spanning more lines
// than the configured maximum.
type RangeTooLargeError struct {
	// Requested is the number of lines the operation would touch.
	Requested int

	// Max is the configured maximum.
	Max int
}

func (e *RangeTooLargeError) Error() string {
	return fmt.Sprintf("range of %d lines exceeds maximum of %d", e.Requested, e.Max)
}

// InconsistentBlockError reports a block toggle where exactly one of the two
// boundary lines matches its delimiter. Adding would nest a delimiter inside
// an existing block and removing would delete a line that is not a
// delimiter, so the file is left untouched.
type InconsistentBlockError struct {
	StartLine int
	EndLine   int

	// StartMatched is true when the start delimiter was found but the end
	// delimiter was not, false for the opposite case.
	StartMatched bool
}

func (e *InconsistentBlockError) Error() string {
	if e.StartMatched {
		return fmt.Sprintf("inconsistent block markers: line %d is a start delimiter but line %d is not an end delimiter", e.StartLine, e.EndLine)
	}
	return fmt.Sprintf("inconsistent block markers: line %d is an end delimiter but line %d is not a start delimiter", e.EndLine, e.StartLine)
}

// ErrNegativeLine reports a negative line number argument.
var ErrNegativeLine = errors.New("line number must not be negative")
