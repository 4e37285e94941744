package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"

	// Edit fields.
	FieldLine   = "line"
	FieldLines  = "lines"
	FieldStart  = "start"
	FieldEnd    = "end"
	FieldMarker = "marker"
	FieldBackup = "backup"
	FieldConfig = "config"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
