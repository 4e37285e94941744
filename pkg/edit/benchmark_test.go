package edit_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/togl/pkg/edit"
	"github.com/yaklabco/togl/pkg/fsutil"
)

func benchFile(b *testing.B, lines int) string {
	b.Helper()
	var buf bytes.Buffer
	for range lines {
		buf.WriteString("    let x = compute();\n")
	}
	path := filepath.Join(b.TempDir(), "bench.rs")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		b.Fatalf("setup: %v", err)
	}
	return path
}

func BenchmarkToggleComment(b *testing.B) {
	path := benchFile(b, 10000)
	editor := edit.New(edit.Options{
		Backup: fsutil.BackupConfig{Enabled: false},
	})
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if err := editor.ToggleComment(ctx, path, 5000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToggleCommentWithBackup(b *testing.B) {
	path := benchFile(b, 10000)
	editor := edit.New(edit.Options{
		Backup: fsutil.BackupConfig{Enabled: true, Dir: filepath.Dir(path)},
	})
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if err := editor.ToggleComment(ctx, path, 5000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIndentRange(b *testing.B) {
	path := benchFile(b, 10000)
	editor := edit.New(edit.Options{
		Backup: fsutil.BackupConfig{Enabled: false},
	})
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if err := editor.IndentRange(ctx, path, 100, 199); err != nil {
			b.Fatal(err)
		}
	}
}
