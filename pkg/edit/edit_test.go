package edit_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/togl/pkg/edit"
	"github.com/yaklabco/togl/pkg/fsutil"
	"github.com/yaklabco/togl/pkg/marker"
)

// newEditor returns an editor that writes backups into dir instead of the
// process working directory.
func newEditor(dir string) *edit.Editor {
	return edit.New(edit.Options{
		Backup: fsutil.BackupConfig{Enabled: true, Dir: dir},
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func TestToggleComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		line    int
		want    string
	}{
		{
			name:    "adds double slash marker",
			file:    "main.rs",
			content: "fn main() {\n    println!(\"hi\");\n}\n",
			line:    1,
			want:    "fn main() {\n//     println!(\"hi\");\n}\n",
		},
		{
			name:    "removes double slash marker",
			file:    "main.rs",
			content: "fn main() {\n//     println!(\"hi\");\n}\n",
			line:    1,
			want:    "fn main() {\n    println!(\"hi\");\n}\n",
		},
		{
			name:    "adds hash marker",
			file:    "tool.py",
			content: "import sys\nprint(sys.argv)\n",
			line:    1,
			want:    "import sys\n# print(sys.argv)\n",
		},
		{
			name:    "removes hash marker",
			file:    "tool.py",
			content: "# import sys\n",
			line:    0,
			want:    "import sys\n",
		},
		{
			name:    "indented marker is not recognized",
			file:    "main.go",
			content: "    // helper\n",
			line:    0,
			want:    "//     // helper\n",
		},
		{
			name:    "marker without trailing space is not recognized",
			file:    "main.go",
			content: "//x\n",
			line:    0,
			want:    "// //x\n",
		},
		{
			name:    "empty line gains marker and space",
			file:    "main.rs",
			content: "a\n\nb\n",
			line:    1,
			want:    "a\n// \nb\n",
		},
		{
			name:    "marker-only line becomes empty",
			file:    "main.rs",
			content: "a\n// \nb\n",
			line:    1,
			want:    "a\n\nb\n",
		},
		{
			name:    "crlf terminator passes through",
			file:    "main.c",
			content: "int main() {\r\n    return 0;\r\n}\r\n",
			line:    1,
			want:    "int main() {\r\n//     return 0;\r\n}\r\n",
		},
		{
			name:    "last line without trailing newline",
			file:    "main.rs",
			content: "fn main() {}\nlet x = 1;",
			line:    1,
			want:    "fn main() {}\n// let x = 1;",
		},
		{
			name:    "first line of file",
			file:    "app.ts",
			content: "import fs from \"fs\";\nconsole.log(fs);\n",
			line:    0,
			want:    "// import fs from \"fs\";\nconsole.log(fs);\n",
		},
		{
			name:    "trailing newline opens an empty final line",
			file:    "main.rs",
			content: "a\nb\n",
			line:    2,
			want:    "a\nb\n// ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := writeFile(t, dir, tt.file, tt.content)
			e := newEditor(dir)

			if err := e.ToggleComment(context.Background(), path, tt.line); err != nil {
				t.Fatalf("ToggleComment() error = %v", err)
			}

			if got := readFile(t, path); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggleCommentRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "fn main() {\n    println!(\"hi\");\n}\n"
	path := writeFile(t, dir, "main.rs", content)
	e := newEditor(dir)
	ctx := context.Background()

	if err := e.ToggleComment(ctx, path, 1); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if err := e.ToggleComment(ctx, path, 1); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if got := readFile(t, path); got != content {
		t.Errorf("round trip content = %q, want %q", got, content)
	}
}

func TestToggleCommentErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		e := newEditor(dir)
		err := e.ToggleComment(context.Background(), filepath.Join(dir, "gone.rs"), 0)
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("no extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "Makefile2", "all:\n")
		e := newEditor(dir)
		err := e.ToggleComment(context.Background(), path, 0)
		if !errors.Is(err, marker.ErrNoExtension) {
			t.Errorf("error = %v, want ErrNoExtension", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "data.xyzzy", "stuff\n")
		e := newEditor(dir)
		err := e.ToggleComment(context.Background(), path, 0)
		if !errors.Is(err, marker.ErrUnsupported) {
			t.Errorf("error = %v, want ErrUnsupported", err)
		}
	})

	t.Run("line past end of file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := "a\nb\nc\n"
		path := writeFile(t, dir, "main.rs", content)
		e := newEditor(dir)

		err := e.ToggleComment(context.Background(), path, 7)

		var lnf *edit.LineNotFoundError
		if !errors.As(err, &lnf) {
			t.Fatalf("error = %v, want LineNotFoundError", err)
		}
		if lnf.Requested != 7 || lnf.FileLines != 3 {
			t.Errorf("LineNotFoundError = %+v, want Requested 7, FileLines 3", lnf)
		}
		if got := readFile(t, path); got != content {
			t.Errorf("file changed on failure: %q", got)
		}
	})

	t.Run("negative line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.rs", "a\n")
		e := newEditor(dir)
		if err := e.ToggleComment(context.Background(), path, -1); !errors.Is(err, edit.ErrNegativeLine) {
			t.Errorf("error = %v, want ErrNegativeLine", err)
		}
	})

	t.Run("failure leaves no backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "main.rs", "a\n")
		e := newEditor(dir)

		if err := e.ToggleComment(context.Background(), path, 10); err == nil {
			t.Fatal("expected error")
		}
		if fsutil.BackupExists(path, fsutil.BackupConfig{Enabled: true, Dir: dir}) {
			t.Error("validation failure should not create a backup")
		}
	})
}

func TestToggleCommentLineTooLong(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "short\nthis line is rather long\n"
	path := writeFile(t, dir, "main.rs", content)

	e := edit.New(edit.Options{
		Limits: edit.Limits{MaxLineLength: 8},
		Backup: fsutil.BackupConfig{Enabled: true, Dir: dir},
	})

	err := e.ToggleComment(context.Background(), path, 1)

	var tooLong *edit.LineTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("error = %v, want LineTooLongError", err)
	}
	if tooLong.Line != 1 || tooLong.Limit != 8 {
		t.Errorf("LineTooLongError = %+v", tooLong)
	}

	if got := readFile(t, path); got != content {
		t.Errorf("file changed on failure: %q", got)
	}

	// The short line stays under the limit.
	if err := e.ToggleComment(context.Background(), path, 0); err != nil {
		t.Errorf("short line toggle: %v", err)
	}
}

func TestToggleCommentBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tool.py", "print(1)\nprint(2)\n")
	cfg := fsutil.BackupConfig{Enabled: true, Dir: dir}
	e := edit.New(edit.Options{Backup: cfg})
	ctx := context.Background()

	if err := e.ToggleComment(ctx, path, 0); err != nil {
		t.Fatalf("first toggle: %v", err)
	}

	backupPath := filepath.Join(dir, "backup_tool.py")
	if got := readFile(t, backupPath); got != "print(1)\nprint(2)\n" {
		t.Errorf("backup after first edit = %q", got)
	}

	if err := e.ToggleComment(ctx, path, 1); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	// One generation: the backup now holds the state before the second edit.
	if got := readFile(t, backupPath); got != "# print(1)\nprint(2)\n" {
		t.Errorf("backup after second edit = %q", got)
	}
}

func TestToggleCommentBackupDisabled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tool.py", "print(1)\n")
	e := edit.New(edit.Options{Backup: fsutil.BackupConfig{Enabled: false, Dir: dir}})

	if err := e.ToggleComment(context.Background(), path, 0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if fsutil.BackupExists(path, fsutil.BackupConfig{Enabled: true, Dir: dir}) {
		t.Error("backup created despite being disabled")
	}
}

func TestToggleDocstring(t *testing.T) {
	t.Parallel()

	t.Run("adds and removes triple slash", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "lib.rs", "pub fn add(a: i32, b: i32) -> i32 {\n")
		e := newEditor(dir)
		ctx := context.Background()

		if err := e.ToggleDocstring(ctx, path, 0); err != nil {
			t.Fatalf("ToggleDocstring() error = %v", err)
		}
		if got := readFile(t, path); got != "/// pub fn add(a: i32, b: i32) -> i32 {\n" {
			t.Errorf("content = %q", got)
		}

		if err := e.ToggleDocstring(ctx, path, 0); err != nil {
			t.Fatalf("second ToggleDocstring() error = %v", err)
		}
		if got := readFile(t, path); got != "pub fn add(a: i32, b: i32) -> i32 {\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("ignores file extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "notes", "remember this\n")
		e := newEditor(dir)

		if err := e.ToggleDocstring(context.Background(), path, 0); err != nil {
			t.Fatalf("ToggleDocstring() error = %v", err)
		}
		if got := readFile(t, path); got != "/// remember this\n" {
			t.Errorf("content = %q", got)
		}
	})
}

func TestIndentLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		line    int
		want    string
	}{
		{
			name:    "adds four spaces",
			content: "a\nb\nc\n",
			line:    1,
			want:    "a\n    b\nc\n",
		},
		{
			name:    "stacks on existing indentation",
			content: "    already\n",
			line:    0,
			want:    "        already\n",
		},
		{
			name:    "empty line",
			content: "\n",
			line:    0,
			want:    "    \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := writeFile(t, dir, "main.rs", tt.content)
			e := newEditor(dir)

			if err := e.IndentLine(context.Background(), path, tt.line); err != nil {
				t.Fatalf("IndentLine() error = %v", err)
			}
			if got := readFile(t, path); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnindentLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		line    int
		want    string
	}{
		{
			name:    "removes four spaces",
			content: "        deep\n",
			line:    0,
			want:    "    deep\n",
		},
		{
			name:    "removes partial indentation",
			content: "  two\n",
			line:    0,
			want:    "two\n",
		},
		{
			name:    "no leading spaces is a no-op",
			content: "flush\n",
			line:    0,
			want:    "flush\n",
		},
		{
			name:    "tabs are left alone",
			content: "\tindented\n",
			line:    0,
			want:    "\tindented\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := writeFile(t, dir, "main.rs", tt.content)
			e := newEditor(dir)

			if err := e.UnindentLine(context.Background(), path, tt.line); err != nil {
				t.Fatalf("UnindentLine() error = %v", err)
			}
			if got := readFile(t, path); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIndentRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "fn main() {\nbody\n}\n"
	path := writeFile(t, dir, "main.rs", content)
	e := newEditor(dir)
	ctx := context.Background()

	if err := e.IndentLine(ctx, path, 1); err != nil {
		t.Fatalf("indent: %v", err)
	}
	if err := e.UnindentLine(ctx, path, 1); err != nil {
		t.Fatalf("unindent: %v", err)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("round trip content = %q, want %q", got, content)
	}
}
