package edit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/togl/pkg/fsutil"
)

// Limits bound how much work a single invocation may perform.
type Limits struct {
	// MaxBatchLines caps the number of explicit line arguments in one call.
	MaxBatchLines int

	// MaxRangeLines caps the span of a range operation.
	MaxRangeLines int

	// WarnRangeLines is the span above which a warning is logged before
	// proceeding.
	WarnRangeLines int

	// MaxLineLength caps the byte length of any line being rewritten.
	MaxLineLength int
}

// DefaultLimits returns the stock limits.
func DefaultLimits() Limits {
	return Limits{
		MaxBatchLines:  512,
		MaxRangeLines:  10000,
		WarnRangeLines: 1000,
		MaxLineLength:  1000000,
	}
}

// DefaultIndentWidth is the number of spaces added or removed per
// indent/unindent step.
const DefaultIndentWidth = 4

// Options configures an Editor. Zero values fall back to defaults.
type Options struct {
	Limits      Limits
	IndentWidth int
	Backup      fsutil.BackupConfig
	Logger      *log.Logger
}

// Editor applies line-addressed edits to source files.
type Editor struct {
	limits Limits
	indent int
	backup fsutil.BackupConfig
	logger *log.Logger
}

// New constructs an Editor from opts.
func New(opts Options) *Editor {
	limits := opts.Limits
	defaults := DefaultLimits()
	if limits.MaxBatchLines <= 0 {
		limits.MaxBatchLines = defaults.MaxBatchLines
	}
	if limits.MaxRangeLines <= 0 {
		limits.MaxRangeLines = defaults.MaxRangeLines
	}
	if limits.WarnRangeLines <= 0 {
		limits.WarnRangeLines = defaults.WarnRangeLines
	}
	if limits.MaxLineLength <= 0 {
		limits.MaxLineLength = defaults.MaxLineLength
	}

	indent := opts.IndentWidth
	if indent <= 0 {
		indent = DefaultIndentWidth
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Editor{
		limits: limits,
		indent: indent,
		backup: opts.Backup,
		logger: logger,
	}
}

// editLine runs the single-line pipeline: locate the line, let decide pick
// the transform from the file's current state, back the file up, then stream
// a rewritten copy into place. decide receives the open source file for
// ReadAt-based classification and the line's byte offset.
//
// Validation happens before the backup is taken, so a failed request never
// clobbers the backup of an earlier successful edit.
func (e *Editor) editLine(ctx context.Context, src *fsutil.Source, line int, decide func(f *os.File, off int64) (transform, error)) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("edit line: %w", ctx.Err())
	default:
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return ioErr(StageOpen, err)
	}

	off, err := locateLine(bufio.NewReaderSize(f, ioBufferSize), line)
	if err != nil {
		_ = f.Close()
		return err
	}

	t, err := decide(f, off)
	closeErr := f.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return ioErr(StageRead, closeErr)
	}

	if _, err := fsutil.CreateBackup(ctx, src.Path, e.backup); err != nil {
		return ioErr(StageBackup, err)
	}

	return e.commit(ctx, src, func(w *bufio.Writer) error {
		in, err := os.Open(src.Path)
		if err != nil {
			return ioErr(StageOpen, err)
		}
		defer func() { _ = in.Close() }()

		r := bufio.NewReaderSize(in, ioBufferSize)
		if err := copyExact(w, r, off); err != nil {
			return err
		}
		if err := applyTransform(r, w, line, t, e.limits.MaxLineLength); err != nil {
			return err
		}
		return copyRest(w, r)
	})
}
