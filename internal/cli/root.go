// Package cli provides the Cobra command structure for togl.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/togl/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root togl command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var noBackup bool

	rootCmd := &cobra.Command{
		Use:   "togl",
		Short: "Toggle comments, docstrings, and indentation by line number",
		Long: `togl edits source files in place by line number: it toggles leading
comment markers, "///" docstrings, and block-comment delimiters, and shifts
indentation by a fixed width.

The comment marker family is chosen by file extension (// for C-like
languages, # for scripting languages). Every edit writes a backup copy first
and then replaces the target file atomically, so a crash mid-edit never
leaves a half-written file behind.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&noBackup, "no-backup", false, "disable the pre-edit backup copy")

	// Add subcommands.
	rootCmd.AddCommand(newCommentCommand())
	rootCmd.AddCommand(newDocstringCommand())
	rootCmd.AddCommand(newBlockCommand())
	rootCmd.AddCommand(newIndentCommand())
	rootCmd.AddCommand(newUnindentCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
