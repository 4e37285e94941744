package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reporter renders one-line edit results to a writer.
type Reporter struct {
	w      io.Writer
	styles *Styles
}

// NewReporter creates a Reporter writing to w with the given styles.
func NewReporter(w io.Writer, styles *Styles) *Reporter {
	return &Reporter{w: w, styles: styles}
}

// Line reports a successful single-line edit, e.g. "✓ toggled comment main.rs:3".
func (r *Reporter) Line(action, path string, line int) {
	fmt.Fprintf(r.w, "%s %s %s%s\n",
		r.styles.Success.Render("✓"),
		r.styles.Action.Render(action),
		r.styles.FilePath.Render(path),
		r.styles.Location.Render(":"+strconv.Itoa(line)))
}

// Range reports a successful range edit, e.g. "✓ indented main.rs:3-9".
func (r *Reporter) Range(action, path string, lo, hi int) {
	fmt.Fprintf(r.w, "%s %s %s%s\n",
		r.styles.Success.Render("✓"),
		r.styles.Action.Render(action),
		r.styles.FilePath.Render(path),
		r.styles.Location.Render(fmt.Sprintf(":%d-%d", lo, hi)))
}

// Lines reports a successful batch edit over explicit line numbers.
func (r *Reporter) Lines(action, path string, lines []int) {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = strconv.Itoa(line)
	}
	fmt.Fprintf(r.w, "%s %s %s%s\n",
		r.styles.Success.Render("✓"),
		r.styles.Action.Render(action),
		r.styles.FilePath.Render(path),
		r.styles.Location.Render(":"+strings.Join(parts, ",")))
}

// Note reports supplementary information, dimmed, e.g. the backup location.
func (r *Reporter) Note(format string, args ...any) {
	fmt.Fprintf(r.w, "%s\n", r.styles.Dim.Render(fmt.Sprintf(format, args...)))
}
