package edit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/togl/pkg/edit"
	"github.com/yaklabco/togl/pkg/marker"
)

func TestToggleBlock(t *testing.T) {
	t.Parallel()

	t.Run("adds c style delimiters", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.c", "int a;\nint b;\nint c;\n")
		e := newEditor(dir)

		if err := e.ToggleBlock(context.Background(), path, 0, 2); err != nil {
			t.Fatalf("ToggleBlock() error = %v", err)
		}

		want := "/*\nint a;\nint b;\nint c;\n*/\n"
		if got := readFile(t, path); got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("removes c style delimiters", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.c", "/*\nint a;\nint b;\n*/\n")
		e := newEditor(dir)

		if err := e.ToggleBlock(context.Background(), path, 0, 3); err != nil {
			t.Fatalf("ToggleBlock() error = %v", err)
		}

		want := "int a;\nint b;\n"
		if got := readFile(t, path); got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("python triple quotes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "tool.py", "x = 1\ny = 2\n")
		e := newEditor(dir)
		ctx := context.Background()

		if err := e.ToggleBlock(ctx, path, 0, 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		want := "\"\"\"\nx = 1\ny = 2\n\"\"\"\n"
		if got := readFile(t, path); got != want {
			t.Errorf("after add = %q, want %q", got, want)
		}

		if err := e.ToggleBlock(ctx, path, 0, 3); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if got := readFile(t, path); got != "x = 1\ny = 2\n" {
			t.Errorf("after remove = %q", got)
		}
	})

	t.Run("arguments in either order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.c", "a;\nb;\n")
		e := newEditor(dir)

		if err := e.ToggleBlock(context.Background(), path, 1, 0); err != nil {
			t.Fatalf("ToggleBlock() error = %v", err)
		}
		want := "/*\na;\nb;\n*/\n"
		if got := readFile(t, path); got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("single line always adds", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		// The line itself is a start delimiter; a single-line toggle
		// still wraps it rather than trying to remove.
		path := writeFile(t, dir, "main.c", "/*\n")
		e := newEditor(dir)

		if err := e.ToggleBlock(context.Background(), path, 0, 0); err != nil {
			t.Fatalf("ToggleBlock() error = %v", err)
		}
		want := "/*\n/*\n*/\n"
		if got := readFile(t, path); got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("missing final newline is supplied before end delimiter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.c", "a;\nb;")
		e := newEditor(dir)

		if err := e.ToggleBlock(context.Background(), path, 0, 1); err != nil {
			t.Fatalf("ToggleBlock() error = %v", err)
		}
		want := "/*\na;\nb;\n*/\n"
		if got := readFile(t, path); got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("delimiter with trailing content does not match", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.c", "/* note\nint a;\n*/ done\n")
		e := newEditor(dir)

		// Neither boundary is a pure delimiter line, so this adds.
		if err := e.ToggleBlock(context.Background(), path, 0, 2); err != nil {
			t.Fatalf("ToggleBlock() error = %v", err)
		}
		want := "/*\n/* note\nint a;\n*/ done\n*/\n"
		if got := readFile(t, path); got != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})
}

func TestToggleBlockInconsistent(t *testing.T) {
	t.Parallel()

	t.Run("start matches without end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "/*\nint a;\nint b;\n"
		path := writeFile(t, dir, "main.c", content)
		e := newEditor(dir)

		err := e.ToggleBlock(context.Background(), path, 0, 2)

		var inc *edit.InconsistentBlockError
		if !errors.As(err, &inc) {
			t.Fatalf("error = %v, want InconsistentBlockError", err)
		}
		if !inc.StartMatched {
			t.Error("StartMatched = false, want true")
		}
		if inc.StartLine != 0 || inc.EndLine != 2 {
			t.Errorf("boundaries = %d..%d", inc.StartLine, inc.EndLine)
		}
		if got := readFile(t, path); got != content {
			t.Errorf("file changed on failure: %q", got)
		}
	})

	t.Run("end matches without start", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "int a;\nint b;\n*/\n"
		path := writeFile(t, dir, "main.c", content)
		e := newEditor(dir)

		err := e.ToggleBlock(context.Background(), path, 0, 2)

		var inc *edit.InconsistentBlockError
		if !errors.As(err, &inc) {
			t.Fatalf("error = %v, want InconsistentBlockError", err)
		}
		if inc.StartMatched {
			t.Error("StartMatched = true, want false")
		}
		if got := readFile(t, path); got != content {
			t.Errorf("file changed on failure: %q", got)
		}
	})
}

func TestToggleBlockErrors(t *testing.T) {
	t.Parallel()

	t.Run("no block form for extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "config.toml", "[package]\nname = \"x\"\n")
		e := newEditor(dir)

		err := e.ToggleBlock(context.Background(), path, 0, 1)
		if !errors.Is(err, marker.ErrUnsupported) {
			t.Errorf("error = %v, want ErrUnsupported", err)
		}
	})

	t.Run("end line past end of file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "a;\nb;\n"
		path := writeFile(t, dir, "main.c", content)
		e := newEditor(dir)

		err := e.ToggleBlock(context.Background(), path, 0, 9)

		var lnf *edit.LineNotFoundError
		if !errors.As(err, &lnf) {
			t.Fatalf("error = %v, want LineNotFoundError", err)
		}
		if lnf.Requested != 9 || lnf.FileLines != 2 {
			t.Errorf("LineNotFoundError = %+v, want Requested 9, FileLines 2", lnf)
		}
		if got := readFile(t, path); got != content {
			t.Errorf("file changed on failure: %q", got)
		}
	})
}
