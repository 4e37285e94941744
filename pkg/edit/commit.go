package edit

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/togl/pkg/fsutil"
)

// commit streams a rewritten copy of the source into a temp file in the same
// directory, then renames it over the original. produce writes the complete
// new content. On any failure the temp file is removed and the original is
// left untouched; a failed removal is logged at debug level and otherwise
// ignored.
func (e *Editor) commit(ctx context.Context, src *fsutil.Source, produce func(w *bufio.Writer) error) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("commit: %w", ctx.Err())
	default:
	}

	dir := filepath.Dir(src.Path)
	tmp, err := os.CreateTemp(dir, src.Base()+".tmp.*")
	if err != nil {
		return ioErr(StageCreate, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				e.logger.Debug("temp file cleanup failed", "path", tmpPath, "error", rmErr)
			}
		}
	}()

	w := bufio.NewWriterSize(tmp, ioBufferSize)
	if err := produce(w); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return ioErr(StageFlush, err)
	}
	if err := tmp.Sync(); err != nil {
		return ioErr(StageFlush, err)
	}
	if err := tmp.Close(); err != nil {
		return ioErr(StageFlush, err)
	}

	if err := os.Chmod(tmpPath, src.Mode); err != nil {
		return ioErr(StageReplace, err)
	}
	if err := os.Rename(tmpPath, src.Path); err != nil {
		return ioErr(StageReplace, err)
	}

	success = true
	return nil
}
