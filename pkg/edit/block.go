package edit

import (
	"bufio"
	"context"
	"os"

	"github.com/yaklabco/togl/pkg/fsutil"
	"github.com/yaklabco/togl/pkg/marker"
)

// ToggleBlock wraps the inclusive line range [start, end] in block comment
// delimiters, or unwraps it when both boundary lines already are delimiter
// lines. Arguments may be given in either order.
//
// Matching is byte-exact against whole lines: the start line must consist of
// exactly the opening delimiter and the end line of exactly the closing
// delimiter. When only one boundary matches, the file is left untouched and
// an InconsistentBlockError is returned. A single-line range always adds a
// block around the line.
//
// Adding inserts the closing delimiter first so the start line number stays
// valid; removing deletes the end line first for the same reason.
func (e *Editor) ToggleBlock(ctx context.Context, path string, start, end int) error {
	src, err := fsutil.ResolveSource(ctx, path)
	if err != nil {
		return err
	}

	pair, err := marker.BlockForPath(src.Path)
	if err != nil {
		return err
	}

	lo, hi := NormalizeRange(start, end)
	if lo < 0 {
		return ErrNegativeLine
	}

	if lo == hi {
		e.logger.Debug("adding block comment around single line", "path", src.Path, "line", lo)
		return e.addBlock(ctx, src, lo, hi, pair)
	}

	startMatch, endMatch, err := e.detectBlock(src, lo, hi, pair)
	if err != nil {
		return err
	}

	switch {
	case startMatch && endMatch:
		e.logger.Debug("removing block comment", "path", src.Path, "start", lo, "end", hi)
		if err := e.deleteLine(ctx, src, hi); err != nil {
			return err
		}
		return e.deleteLine(ctx, src, lo)

	case !startMatch && !endMatch:
		e.logger.Debug("adding block comment", "path", src.Path, "start", lo, "end", hi)
		return e.addBlock(ctx, src, lo, hi, pair)

	default:
		return &InconsistentBlockError{StartLine: lo, EndLine: hi, StartMatched: startMatch}
	}
}

func (e *Editor) addBlock(ctx context.Context, src *fsutil.Source, lo, hi int, pair marker.BlockPair) error {
	if err := e.insertAfter(ctx, src, hi, pair.End); err != nil {
		return err
	}
	return e.insertBefore(ctx, src, lo, pair.Start)
}

// detectBlock classifies both boundary lines in a single forward scan.
func (e *Editor) detectBlock(src *fsutil.Source, lo, hi int, pair marker.BlockPair) (startMatch, endMatch bool, err error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return false, false, ioErr(StageOpen, err)
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReaderSize(f, ioBufferSize)
	offLo, err := locateLine(r, lo)
	if err != nil {
		return false, false, err
	}

	rel, err := locateLine(r, hi-lo)
	if err != nil {
		// The relative scan started at lo, so absolute numbers must be
		// restored before the error escapes.
		if lnf, ok := err.(*LineNotFoundError); ok {
			return false, false, &LineNotFoundError{Requested: hi, FileLines: lo + lnf.FileLines}
		}
		return false, false, err
	}
	offHi := offLo + rel

	startMatch, err = lineMatches(f, offLo, pair.Start)
	if err != nil {
		return false, false, err
	}
	endMatch, err = lineMatches(f, offHi, pair.End)
	if err != nil {
		return false, false, err
	}
	return startMatch, endMatch, nil
}

func (e *Editor) deleteLine(ctx context.Context, src *fsutil.Source, line int) error {
	return e.editLine(ctx, src, line, func(*os.File, int64) (transform, error) {
		return transform{kind: transformDelete}, nil
	})
}

func (e *Editor) insertBefore(ctx context.Context, src *fsutil.Source, line int, content []byte) error {
	return e.editLine(ctx, src, line, func(*os.File, int64) (transform, error) {
		return transform{kind: transformPrepend, data: content}, nil
	})
}

func (e *Editor) insertAfter(ctx context.Context, src *fsutil.Source, line int, content []byte) error {
	return e.editLine(ctx, src, line, func(*os.File, int64) (transform, error) {
		return transform{kind: transformAppend, data: content}, nil
	})
}
