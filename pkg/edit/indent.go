package edit

import (
	"bytes"
	"context"
	"os"

	"github.com/yaklabco/togl/pkg/fsutil"
)

// IndentLine prepends one indent step of spaces to the given line. The file
// extension is not consulted; indentation is language-neutral.
func (e *Editor) IndentLine(ctx context.Context, path string, line int) error {
	src, err := fsutil.ResolveSource(ctx, path)
	if err != nil {
		return err
	}

	pad := bytes.Repeat([]byte{' '}, e.indent)
	return e.editLine(ctx, src, line, func(*os.File, int64) (transform, error) {
		return transform{kind: transformPrepend, data: pad}, nil
	})
}

// UnindentLine removes up to one indent step of leading spaces from the
// given line. A line with fewer leading spaces loses only what it has; a
// line with none is rewritten unchanged. Both count as success.
func (e *Editor) UnindentLine(ctx context.Context, path string, line int) error {
	src, err := fsutil.ResolveSource(ctx, path)
	if err != nil {
		return err
	}

	return e.editLine(ctx, src, line, func(*os.File, int64) (transform, error) {
		return transform{kind: transformUnindent, width: e.indent}, nil
	})
}
