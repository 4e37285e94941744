// Package config defines core configuration types for togl.
// These types are pure data structures; file discovery and loading live in
// the configloader package.
package config

import (
	"errors"
	"fmt"
)

// BackupsConfig controls the pre-edit backup.
type BackupsConfig struct {
	// Enabled indicates whether a backup is written before each edit.
	Enabled bool `yaml:"enabled"`

	// Dir is the directory backups are written to. Empty means the
	// process working directory.
	Dir string `yaml:"dir,omitempty"`
}

// LimitsConfig bounds how much work a single invocation may perform.
type LimitsConfig struct {
	// MaxBatchLines caps the number of explicit line arguments in one call.
	MaxBatchLines int `yaml:"max_batch_lines"`

	// MaxRangeLines caps the span of a range operation.
	MaxRangeLines int `yaml:"max_range_lines"`

	// WarnRangeLines is the span above which a warning is logged.
	WarnRangeLines int `yaml:"warn_range_lines"`

	// MaxLineLength caps the byte length of any line being rewritten.
	MaxLineLength int `yaml:"max_line_length"`
}

// Config is the root configuration structure for togl.
type Config struct {
	// IndentWidth is the number of spaces per indent step.
	IndentWidth int `yaml:"indent_width"`

	// Backups configures the pre-edit backup.
	Backups BackupsConfig `yaml:"backups"`

	// Limits bounds batch and range sizes and line length.
	Limits LimitsConfig `yaml:"limits"`

	// CLI-level options (not persisted to config files).

	// NoBackups disables backup creation for this invocation.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		IndentWidth: 4,
		Backups: BackupsConfig{
			Enabled: true,
		},
		Limits: LimitsConfig{
			MaxBatchLines:  512,
			MaxRangeLines:  10000,
			WarnRangeLines: 1000,
			MaxLineLength:  1000000,
		},
	}
}

// ErrInvalidConfig marks configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for values the editor cannot work with.
func (c *Config) Validate() error {
	if c.IndentWidth <= 0 {
		return fmt.Errorf("%w: indent_width must be positive, got %d", ErrInvalidConfig, c.IndentWidth)
	}
	if c.Limits.MaxBatchLines <= 0 {
		return fmt.Errorf("%w: limits.max_batch_lines must be positive, got %d", ErrInvalidConfig, c.Limits.MaxBatchLines)
	}
	if c.Limits.MaxRangeLines <= 0 {
		return fmt.Errorf("%w: limits.max_range_lines must be positive, got %d", ErrInvalidConfig, c.Limits.MaxRangeLines)
	}
	if c.Limits.WarnRangeLines < 0 {
		return fmt.Errorf("%w: limits.warn_range_lines must not be negative, got %d", ErrInvalidConfig, c.Limits.WarnRangeLines)
	}
	if c.Limits.MaxLineLength <= 0 {
		return fmt.Errorf("%w: limits.max_line_length must be positive, got %d", ErrInvalidConfig, c.Limits.MaxLineLength)
	}
	return nil
}

// BackupsEnabled resolves the effective backup switch, honoring the
// CLI-level override.
func (c *Config) BackupsEnabled() bool {
	if c.NoBackups {
		return false
	}
	return c.Backups.Enabled
}
