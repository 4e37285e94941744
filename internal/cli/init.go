package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/togl/internal/logging"
	"github.com/yaklabco/togl/internal/ui/pretty"
	"github.com/yaklabco/togl/pkg/config"
	"github.com/yaklabco/togl/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new togl configuration file",
		Long: `Create a new .togl.yaml configuration file in the current directory
with the default settings written out and commented. Edit it to change the
indent width, backup behavior, or safety limits.

Examples:
  togl init                        Create .togl.yaml
  togl init --output custom.yml    Write to a custom file path
  togl init --force                Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .togl.yaml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".togl.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !confirmOverwrite(cmd, outputPath) {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	ctx := commandContext(cmd)
	if err := fsutil.WriteAtomic(ctx, absPath, config.DefaultTemplate(), configFilePermissions); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
	reporter := pretty.NewReporter(cmd.OutOrStdout(), styles)

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	reporter.Note("edit %s to change the indent width, backups, or limits", outputPath)

	return nil
}

// confirmOverwrite asks for confirmation on an interactive terminal. Without
// a terminal on stdin there is no one to ask, so it declines.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "File %q already exists. Overwrite? [y/N] ", path)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}
