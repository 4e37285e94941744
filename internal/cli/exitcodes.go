package cli

import (
	"errors"

	"github.com/yaklabco/togl/pkg/edit"
	"github.com/yaklabco/togl/pkg/fsutil"
	"github.com/yaklabco/togl/pkg/marker"
)

// Exit codes for togl. Each error kind of the edit pipeline maps to its own
// code so scripts can branch on failure cause.
const (
	// ExitSuccess indicates the edit was applied.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid arguments or any unclassified error.
	ExitInvalidUsage = 1

	// ExitNotFound indicates the target file does not exist.
	ExitNotFound = 2

	// ExitNoExtension indicates the target file has no extension to classify.
	ExitNoExtension = 3

	// ExitUnsupported indicates an extension with no known marker family.
	ExitUnsupported = 4

	// ExitLineNotFound indicates the requested line is past the end of file.
	ExitLineNotFound = 5

	// ExitIOError indicates a filesystem failure during the edit.
	ExitIOError = 6

	// ExitPathError indicates an unusable target path (directory, device,
	// permission denied, unresolvable).
	ExitPathError = 7

	// ExitLineTooLong indicates the target line exceeds the length limit.
	ExitLineTooLong = 8

	// ExitInconsistentBlock indicates a half-formed block delimiter pair.
	ExitInconsistentBlock = 9

	// ExitRangeTooLarge indicates a range or batch over the configured cap.
	ExitRangeTooLarge = 10
)

// ExitCodeForError maps an error from the command tree to a process exit
// code. Nil maps to ExitSuccess; anything unrecognized to ExitInvalidUsage.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		lineNotFound *edit.LineNotFoundError
		lineTooLong  *edit.LineTooLongError
		rangeTooBig  *edit.RangeTooLargeError
		inconsistent *edit.InconsistentBlockError
		ioErr        *edit.IOError
	)

	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, marker.ErrNoExtension):
		return ExitNoExtension
	case errors.Is(err, marker.ErrUnsupported):
		return ExitUnsupported
	case errors.As(err, &lineNotFound):
		return ExitLineNotFound
	case errors.As(err, &lineTooLong):
		return ExitLineTooLong
	case errors.As(err, &rangeTooBig):
		return ExitRangeTooLarge
	case errors.As(err, &inconsistent):
		return ExitInconsistentBlock
	case errors.As(err, &ioErr):
		return ExitIOError
	case errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrNotRegular),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrPath):
		return ExitPathError
	default:
		return ExitInvalidUsage
	}
}
