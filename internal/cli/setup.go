package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/togl/internal/configloader"
	"github.com/yaklabco/togl/internal/logging"
	"github.com/yaklabco/togl/internal/ui/pretty"
	"github.com/yaklabco/togl/pkg/edit"
	"github.com/yaklabco/togl/pkg/fsutil"
)

// editEnv bundles the configured editor and output plumbing shared by the
// edit subcommands.
type editEnv struct {
	editor   *edit.Editor
	reporter *pretty.Reporter
}

// newEditEnv loads configuration, applies the global flags, and builds the
// editor and status reporter for an edit subcommand.
func newEditEnv(cmd *cobra.Command) (*editEnv, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	if noBackup, ferr := cmd.Flags().GetBool("no-backup"); ferr == nil && noBackup {
		cfg.NoBackups = true
	}

	editor := edit.New(edit.Options{
		Limits: edit.Limits{
			MaxBatchLines:  cfg.Limits.MaxBatchLines,
			MaxRangeLines:  cfg.Limits.MaxRangeLines,
			WarnRangeLines: cfg.Limits.WarnRangeLines,
			MaxLineLength:  cfg.Limits.MaxLineLength,
		},
		IndentWidth: cfg.IndentWidth,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.BackupsEnabled(),
			Dir:     cfg.Backups.Dir,
		},
		Logger: logger,
	})

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	return &editEnv{
		editor:   editor,
		reporter: pretty.NewReporter(cmd.OutOrStdout(), styles),
	}, nil
}

// commandContext returns the command's context, or Background when the
// command was built without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parseLineArgs converts positional line-number arguments to integers.
// Negative values are rejected up front so they never reach the editor.
func parseLineArgs(args []string) ([]int, error) {
	lines := make([]int, 0, len(args))

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid line number %q", arg)
		}
		if n < 0 {
			return nil, edit.ErrNegativeLine
		}
		lines = append(lines, n)
	}

	return lines, nil
}
