package edit

import (
	"bytes"
	"io"

	"github.com/yaklabco/togl/pkg/marker"
)

// hasTag reports whether the line starting at off begins with the marker's
// tag (marker bytes plus one space) at column zero. Indented markers are
// deliberately not recognized; the rewrite always works at the line start.
func hasTag(ra io.ReaderAt, off int64, k marker.Kind) (bool, error) {
	return startsWith(ra, off, k.Tag())
}

// lineMatches reports whether the line starting at off consists exactly of
// pattern. Patterns end with a newline, so a prefix match is a whole-line
// match.
func lineMatches(ra io.ReaderAt, off int64, pattern []byte) (bool, error) {
	return startsWith(ra, off, pattern)
}

func startsWith(ra io.ReaderAt, off int64, want []byte) (bool, error) {
	if len(want) == 0 {
		return false, nil
	}

	buf := make([]byte, len(want))
	n, err := ra.ReadAt(buf, off)
	if err != nil && err != io.EOF {
		return false, ioErr(StageRead, err)
	}
	return n == len(want) && bytes.Equal(buf, want), nil
}
