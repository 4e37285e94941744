package edit

import (
	"bufio"
	"errors"
	"io"
)

// maxScanBytes bounds how far the locator will scan for a line start.
// Files are processed without loading them into memory, so the bound is on
// bytes scanned rather than bytes held.
const maxScanBytes int64 = 1 << 30

var errScanLimit = errors.New("scanned 1 GiB without reaching the requested line")

// locateLine scans r forward and returns the byte offset at which the
// zero-indexed target line begins. Reaching end of file first yields a
// LineNotFoundError carrying the file's actual line count.
func locateLine(r *bufio.Reader, target int) (int64, error) {
	if target < 0 {
		return 0, ErrNegativeLine
	}
	if target == 0 {
		return 0, nil
	}

	var pos int64
	lines := 0
	partial := false

	for {
		if pos >= maxScanBytes {
			return 0, ioErr(StageRead, errScanLimit)
		}

		b, err := r.ReadByte()
		if err == io.EOF {
			if partial {
				lines++
			}
			return 0, &LineNotFoundError{Requested: target, FileLines: lines}
		}
		if err != nil {
			return 0, ioErr(StageRead, err)
		}

		pos++
		if b == '\n' {
			lines++
			partial = false
			if lines == target {
				return pos, nil
			}
		} else {
			partial = true
		}
	}
}
