package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BackupPrefix is prepended to the source file name to form the backup name.
const BackupPrefix = "backup_"

// BackupConfig controls backup behavior.
type BackupConfig struct {
	// Enabled indicates whether backups should be created.
	Enabled bool

	// Dir is the directory backups are written to. Empty means the
	// process working directory.
	Dir string
}

// DefaultBackupConfig returns backup defaults: enabled, written to the
// working directory.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Enabled: true}
}

// BackupPath returns the backup location for the given source file:
// backup_<name> in the configured directory. The backup name depends only
// on the file name, so editing the same file twice reuses one backup slot.
func BackupPath(path string, cfg BackupConfig) string {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, BackupPrefix+filepath.Base(path))
}

// CreateBackup copies the file at path to its backup location, replacing any
// backup left by a previous run. Exactly one backup generation is kept: the
// state of the file immediately before the most recent edit.
// Returns the backup path, or "" when backups are disabled.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (string, error) {
	if !cfg.Enabled {
		return "", nil
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat original for backup: %w", err)
	}

	backupPath := BackupPath(path, cfg)
	if err := CopyAtomic(ctx, path, backupPath, stat.Mode()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}

// RestoreBackup restores a file from its backup.
// Returns true if the file was restored, false if no backup exists.
func RestoreBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path, cfg)
	stat, err := os.Stat(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := CopyAtomic(ctx, backupPath, path, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}

	return true, nil
}

// RemoveBackup removes the backup file for the given path if it exists.
// Returns true if a backup was removed, false if none existed.
func RemoveBackup(path string, cfg BackupConfig) (bool, error) {
	backupPath := BackupPath(path, cfg)

	err := os.Remove(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}

	return true, nil
}

// BackupExists checks if a backup file exists for the given path.
func BackupExists(path string, cfg BackupConfig) bool {
	_, err := os.Stat(BackupPath(path, cfg))
	return err == nil
}
