package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/togl/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	t.Run("defaults to working directory", func(t *testing.T) {
		t.Parallel()

		got := fsutil.BackupPath("/home/dev/proj/main.rs", fsutil.BackupConfig{Enabled: true})
		if got != "backup_main.rs" {
			t.Errorf("BackupPath() = %q, want %q", got, "backup_main.rs")
		}
	})

	t.Run("uses configured directory", func(t *testing.T) {
		t.Parallel()

		cfg := fsutil.BackupConfig{Enabled: true, Dir: "/tmp/backups"}
		got := fsutil.BackupPath("/home/dev/proj/main.rs", cfg)
		want := filepath.Join("/tmp/backups", "backup_main.rs")
		if got != want {
			t.Errorf("BackupPath() = %q, want %q", got, want)
		}
	})
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("copies file content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "tool.py")
		if err := os.WriteFile(src, []byte("print('hi')\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg := fsutil.BackupConfig{Enabled: true, Dir: dir}
		ctx := context.Background()

		backupPath, err := fsutil.CreateBackup(ctx, src, cfg)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if backupPath != filepath.Join(dir, "backup_tool.py") {
			t.Errorf("backup path = %q", backupPath)
		}

		got, err := os.ReadFile(backupPath)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "print('hi')\n" {
			t.Errorf("backup content = %q", got)
		}
	})

	t.Run("overwrites previous backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "tool.py")
		cfg := fsutil.BackupConfig{Enabled: true, Dir: dir}
		ctx := context.Background()

		if err := os.WriteFile(src, []byte("v1\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if _, err := fsutil.CreateBackup(ctx, src, cfg); err != nil {
			t.Fatalf("first CreateBackup() error = %v", err)
		}

		if err := os.WriteFile(src, []byte("v2\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		backupPath, err := fsutil.CreateBackup(ctx, src, cfg)
		if err != nil {
			t.Fatalf("second CreateBackup() error = %v", err)
		}

		got, err := os.ReadFile(backupPath)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "v2\n" {
			t.Errorf("backup content = %q, want latest pre-edit state %q", got, "v2\n")
		}
	})

	t.Run("disabled is a no-op", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "tool.py")
		if err := os.WriteFile(src, []byte("x\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg := fsutil.BackupConfig{Enabled: false, Dir: dir}
		backupPath, err := fsutil.CreateBackup(context.Background(), src, cfg)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if backupPath != "" {
			t.Errorf("backup path = %q, want empty", backupPath)
		}
		if fsutil.BackupExists(src, fsutil.BackupConfig{Enabled: true, Dir: dir}) {
			t.Error("backup file should not exist")
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "main.c")
	cfg := fsutil.BackupConfig{Enabled: true, Dir: dir}
	ctx := context.Background()

	if err := os.WriteFile(src, []byte("original\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := fsutil.CreateBackup(ctx, src, cfg); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if err := os.WriteFile(src, []byte("mangled\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	restored, err := fsutil.RestoreBackup(ctx, src, cfg)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if !restored {
		t.Fatal("RestoreBackup() = false, want true")
	}

	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "original\n" {
		t.Errorf("content = %q, want %q", got, "original\n")
	}
}

func TestRestoreBackupMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := fsutil.BackupConfig{Enabled: true, Dir: dir}

	restored, err := fsutil.RestoreBackup(context.Background(), filepath.Join(dir, "main.c"), cfg)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if restored {
		t.Error("RestoreBackup() = true, want false")
	}
}

func TestRemoveBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "main.c")
	cfg := fsutil.BackupConfig{Enabled: true, Dir: dir}

	if err := os.WriteFile(src, []byte("x\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := fsutil.CreateBackup(context.Background(), src, cfg); err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	removed, err := fsutil.RemoveBackup(src, cfg)
	if err != nil {
		t.Fatalf("RemoveBackup() error = %v", err)
	}
	if !removed {
		t.Error("RemoveBackup() = false, want true")
	}

	removed, err = fsutil.RemoveBackup(src, cfg)
	if err != nil {
		t.Fatalf("RemoveBackup() second call error = %v", err)
	}
	if removed {
		t.Error("RemoveBackup() second call = true, want false")
	}
}
