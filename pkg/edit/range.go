package edit

import "context"

// NormalizeRange orders a pair of line numbers so that lo <= hi.
func NormalizeRange(a, b int) (lo, hi int) {
	if a > b {
		return b, a
	}
	return a, b
}

// lineOp is a single-line operation applied repeatedly by range and batch
// helpers.
type lineOp func(ctx context.Context, path string, line int) error

// checkSpan validates an inclusive range before any line is touched.
func (e *Editor) checkSpan(lo, hi int) error {
	if lo < 0 {
		return ErrNegativeLine
	}

	span := hi - lo + 1
	if span > e.limits.MaxRangeLines {
		return &RangeTooLargeError{Requested: span, Max: e.limits.MaxRangeLines}
	}
	if span > e.limits.WarnRangeLines {
		e.logger.Warn("large range requested", "lines", span)
	}
	return nil
}

// applyRange applies op to every line of the inclusive range [a, b], in
// ascending order. The first failure stops the run; earlier lines stay
// edited.
func (e *Editor) applyRange(ctx context.Context, path string, a, b int, op lineOp) error {
	lo, hi := NormalizeRange(a, b)
	if err := e.checkSpan(lo, hi); err != nil {
		return err
	}

	for line := lo; line <= hi; line++ {
		if err := op(ctx, path, line); err != nil {
			return err
		}
	}
	return nil
}

// applyBatch applies op to each explicitly listed line, in argument order.
func (e *Editor) applyBatch(ctx context.Context, path string, lines []int, op lineOp) error {
	if len(lines) > e.limits.MaxBatchLines {
		return &RangeTooLargeError{Requested: len(lines), Max: e.limits.MaxBatchLines}
	}

	for _, line := range lines {
		if err := op(ctx, path, line); err != nil {
			return err
		}
	}
	return nil
}

// ToggleCommentRange toggles the line-comment marker on every line of the
// inclusive range [a, b].
func (e *Editor) ToggleCommentRange(ctx context.Context, path string, a, b int) error {
	return e.applyRange(ctx, path, a, b, e.ToggleComment)
}

// ToggleCommentBatch toggles the line-comment marker on each listed line.
func (e *Editor) ToggleCommentBatch(ctx context.Context, path string, lines []int) error {
	return e.applyBatch(ctx, path, lines, e.ToggleComment)
}

// ToggleDocstringRange toggles the doc-comment marker on every line of the
// inclusive range [a, b].
func (e *Editor) ToggleDocstringRange(ctx context.Context, path string, a, b int) error {
	return e.applyRange(ctx, path, a, b, e.ToggleDocstring)
}

// ToggleDocstringBatch toggles the doc-comment marker on each listed line.
func (e *Editor) ToggleDocstringBatch(ctx context.Context, path string, lines []int) error {
	return e.applyBatch(ctx, path, lines, e.ToggleDocstring)
}

// IndentRange indents every line of the inclusive range [a, b].
func (e *Editor) IndentRange(ctx context.Context, path string, a, b int) error {
	return e.applyRange(ctx, path, a, b, e.IndentLine)
}

// UnindentRange unindents every line of the inclusive range [a, b].
func (e *Editor) UnindentRange(ctx context.Context, path string, a, b int) error {
	return e.applyRange(ctx, path, a, b, e.UnindentLine)
}
