package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/togl/pkg/edit"
)

func newIndentCommand() *cobra.Command {
	var useRange bool

	cmd := &cobra.Command{
		Use:   "indent <file> <line> [line]",
		Short: "Indent a line or line range by the configured width",
		Long: `Prepend the configured indent width (default four spaces) to a line.

With --range, the two line arguments form an inclusive range and every
line in it is indented. Line numbers are zero-indexed.

Examples:
  togl indent main.rs 5
  togl indent main.rs 5 12 --range`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args, useRange, toggleOps{
				action: "indented",
				line:   (*edit.Editor).IndentLine,
				span:   (*edit.Editor).IndentRange,
			})
		},
	}

	cmd.Flags().BoolVar(&useRange, "range", false,
		"treat two line arguments as an inclusive range")

	return cmd
}

func newUnindentCommand() *cobra.Command {
	var useRange bool

	cmd := &cobra.Command{
		Use:   "unindent <file> <line> [line]",
		Short: "Unindent a line or line range by the configured width",
		Long: `Remove up to the configured indent width of leading spaces from a line.

Lines with fewer leading spaces lose what they have; lines with none are
left alone. With --range, the two line arguments form an inclusive range.
Line numbers are zero-indexed.

Examples:
  togl unindent main.rs 5
  togl unindent main.rs 5 12 --range`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args, useRange, toggleOps{
				action: "unindented",
				line:   (*edit.Editor).UnindentLine,
				span:   (*edit.Editor).UnindentRange,
			})
		},
	}

	cmd.Flags().BoolVar(&useRange, "range", false,
		"treat two line arguments as an inclusive range")

	return cmd
}
