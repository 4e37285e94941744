package config

// DefaultTemplate returns a commented starter configuration, written by
// `togl init`. Values mirror the built-in defaults so the file can be
// edited selectively.
func DefaultTemplate() []byte {
	return []byte(`# togl configuration
# See https://github.com/yaklabco/togl for documentation.

# Spaces added or removed per indent/unindent step.
indent_width: 4

backups:
  # Write backup_<name> before each edit. One generation is kept.
  enabled: true
  # Directory for backup files. Empty means the working directory.
  # dir: .togl-backups

limits:
  # Maximum number of explicit line arguments per invocation.
  max_batch_lines: 512
  # Maximum span of a --range operation.
  max_range_lines: 10000
  # Spans above this log a warning before proceeding.
  warn_range_lines: 1000
  # Maximum byte length of a line being rewritten.
  max_line_length: 1000000
`)
}
