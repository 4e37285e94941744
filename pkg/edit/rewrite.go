package edit

import (
	"bufio"
	"fmt"
	"io"
)

// ioBufferSize is the chunk size for the streaming copy phases.
const ioBufferSize = 8192

// transformKind selects how the target line is rewritten. Every kind leaves
// all other bytes of the file untouched.
type transformKind int

const (
	// transformPrepend writes data, then copies the target line.
	// With tag data it comments the line; with a full delimiter line it
	// inserts a new line before the target.
	transformPrepend transformKind = iota

	// transformStrip discards skip leading bytes of the target line, then
	// copies the rest.
	transformStrip

	// transformUnindent discards up to width leading spaces, then copies
	// the rest of the line.
	transformUnindent

	// transformDelete discards the target line, terminator included.
	transformDelete

	// transformAppend copies the target line, then writes data after it.
	// A missing final newline is supplied before the appended bytes.
	transformAppend
)

type transform struct {
	kind  transformKind
	data  []byte
	skip  int
	width int
}

// copyExact copies exactly n bytes from src to dst in fixed-size chunks.
// Hitting end of file early is a read failure: n always comes from a
// locator scan of the same file.
func copyExact(dst io.Writer, src io.Reader, n int64) error {
	buf := make([]byte, ioBufferSize)
	for n > 0 {
		chunk := int64(len(buf))
		if n < chunk {
			chunk = n
		}

		read, rerr := src.Read(buf[:chunk])
		if read > 0 {
			if _, werr := dst.Write(buf[:read]); werr != nil {
				return ioErr(StageWrite, werr)
			}
			n -= int64(read)
		}
		if rerr != nil {
			if rerr == io.EOF {
				return ioErr(StageRead, io.ErrUnexpectedEOF)
			}
			return ioErr(StageRead, rerr)
		}
	}
	return nil
}

// copyRest copies src to dst until end of file.
func copyRest(dst io.Writer, src io.Reader) error {
	buf := make([]byte, ioBufferSize)
	for {
		read, rerr := src.Read(buf)
		if read > 0 {
			if _, werr := dst.Write(buf[:read]); werr != nil {
				return ioErr(StageWrite, werr)
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return ioErr(StageRead, rerr)
		}
	}
}

// copyLine copies bytes from src to dst up to and including the next
// newline, or to end of file. count accumulates target-line bytes consumed
// from src; exceeding limit aborts with LineTooLongError. limit 0 disables
// the check.
func copyLine(src *bufio.Reader, dst *bufio.Writer, line, limit int, count *int) error {
	for {
		b, err := src.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ioErr(StageRead, err)
		}

		*count++
		if limit > 0 && *count > limit {
			return &LineTooLongError{Line: line, Limit: limit}
		}

		if err := dst.WriteByte(b); err != nil {
			return ioErr(StageWrite, err)
		}
		if b == '\n' {
			return nil
		}
	}
}

// applyTransform rewrites the target line. src must be positioned at the
// line start; on return it is positioned at the start of the following line
// (or end of file).
func applyTransform(src *bufio.Reader, dst *bufio.Writer, line int, t transform, limit int) error {
	count := 0

	switch t.kind {
	case transformPrepend:
		if _, err := dst.Write(t.data); err != nil {
			return ioErr(StageWrite, err)
		}
		return copyLine(src, dst, line, limit, &count)

	case transformStrip:
		for range t.skip {
			if _, err := src.ReadByte(); err != nil {
				if err == io.EOF {
					return nil
				}
				return ioErr(StageRead, err)
			}
			count++
		}
		return copyLine(src, dst, line, limit, &count)

	case transformUnindent:
		for skipped := 0; skipped < t.width; skipped++ {
			b, err := src.ReadByte()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return ioErr(StageRead, err)
			}
			if b != ' ' {
				if err := src.UnreadByte(); err != nil {
					return ioErr(StageRead, err)
				}
				break
			}
			count++
		}
		return copyLine(src, dst, line, limit, &count)

	case transformDelete:
		for {
			b, err := src.ReadByte()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return ioErr(StageRead, err)
			}
			if b == '\n' {
				return nil
			}
		}

	case transformAppend:
		sawNewline := false
		for {
			b, err := src.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				return ioErr(StageRead, err)
			}

			count++
			if limit > 0 && count > limit {
				return &LineTooLongError{Line: line, Limit: limit}
			}

			if err := dst.WriteByte(b); err != nil {
				return ioErr(StageWrite, err)
			}
			if b == '\n' {
				sawNewline = true
				break
			}
		}
		if !sawNewline {
			if err := dst.WriteByte('\n'); err != nil {
				return ioErr(StageWrite, err)
			}
		}
		if _, err := dst.Write(t.data); err != nil {
			return ioErr(StageWrite, err)
		}
		return nil

	default:
		return fmt.Errorf("unknown transform kind %d", t.kind)
	}
}
