package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/togl/pkg/config"
)

// envVarPrefix is the prefix for all togl environment variables.
const envVarPrefix = "TOGL_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"INDENT_WIDTH":     {field: "indent_width", typ: envTypeInt},
	"BACKUPS_ENABLED":  {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_DIR":      {field: "backups.dir", typ: envTypeString},
	"NO_BACKUPS":       {field: "no_backups", typ: envTypeBool},
	"MAX_BATCH_LINES":  {field: "limits.max_batch_lines", typ: envTypeInt},
	"MAX_RANGE_LINES":  {field: "limits.max_range_lines", typ: envTypeInt},
	"WARN_RANGE_LINES": {field: "limits.warn_range_lines", typ: envTypeInt},
	"MAX_LINE_LENGTH":  {field: "limits.max_line_length", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TOGL_ (e.g., TOGL_INDENT_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "backups.dir":
		cfg.Backups.Dir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "indent_width":
		cfg.IndentWidth = value
	case "limits.max_batch_lines":
		cfg.Limits.MaxBatchLines = value
	case "limits.max_range_lines":
		cfg.Limits.MaxRangeLines = value
	case "limits.warn_range_lines":
		cfg.Limits.WarnRangeLines = value
	case "limits.max_line_length":
		cfg.Limits.MaxLineLength = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"TOGL_INDENT_WIDTH":     "Spaces per indent step",
		"TOGL_BACKUPS_ENABLED":  "Enable pre-edit backups: true or false",
		"TOGL_BACKUPS_DIR":      "Directory for backup files",
		"TOGL_NO_BACKUPS":       "Disable backups for this invocation: true or false",
		"TOGL_MAX_BATCH_LINES":  "Maximum explicit line arguments per invocation",
		"TOGL_MAX_RANGE_LINES":  "Maximum span of a range operation",
		"TOGL_WARN_RANGE_LINES": "Span above which a warning is logged",
		"TOGL_MAX_LINE_LENGTH":  "Maximum byte length of a rewritten line",
	}
}
