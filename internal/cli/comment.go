package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/togl/pkg/edit"
)

// toggleOps describes one toggle-style operation in its single-line, range,
// and batch forms. Operations without a batch form leave batch nil.
type toggleOps struct {
	action string
	line   func(*edit.Editor, context.Context, string, int) error
	span   func(*edit.Editor, context.Context, string, int, int) error
	batch  func(*edit.Editor, context.Context, string, []int) error
}

func newCommentCommand() *cobra.Command {
	var useRange bool

	cmd := &cobra.Command{
		Use:   "comment <file> <line> [line...]",
		Short: "Toggle the line-comment marker on one or more lines",
		Long: `Toggle the language's line-comment marker at the start of each given line.

The marker family is chosen by file extension: // for Rust, C, Go, and
friends; # for Python, shell, YAML, and similar. A line already starting
with the marker is uncommented; any other line gets the marker prepended.
Line numbers are zero-indexed.

Examples:
  togl comment main.rs 3          # toggle line 3
  togl comment main.rs 3 7 12     # toggle several lines at once
  togl comment main.rs 3 12 --range   # toggle every line from 3 to 12`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args, useRange, toggleOps{
				action: "toggled comment",
				line:   (*edit.Editor).ToggleComment,
				span:   (*edit.Editor).ToggleCommentRange,
				batch:  (*edit.Editor).ToggleCommentBatch,
			})
		},
	}

	cmd.Flags().BoolVar(&useRange, "range", false,
		"treat two line arguments as an inclusive range")

	return cmd
}

func newDocstringCommand() *cobra.Command {
	var useRange bool

	cmd := &cobra.Command{
		Use:   "docstring <file> <line> [line...]",
		Short: "Toggle the /// docstring marker on one or more lines",
		Long: `Toggle the "///" doc-comment marker at the start of each given line.

Unlike comment, the docstring marker is applied regardless of file
extension. Line numbers are zero-indexed.

Examples:
  togl docstring lib.rs 0
  togl docstring lib.rs 0 1 2
  togl docstring lib.rs 0 8 --range`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args, useRange, toggleOps{
				action: "toggled docstring",
				line:   (*edit.Editor).ToggleDocstring,
				span:   (*edit.Editor).ToggleDocstringRange,
				batch:  (*edit.Editor).ToggleDocstringBatch,
			})
		},
	}

	cmd.Flags().BoolVar(&useRange, "range", false,
		"treat two line arguments as an inclusive range")

	return cmd
}

func runToggle(cmd *cobra.Command, args []string, useRange bool, ops toggleOps) error {
	env, err := newEditEnv(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	path := args[0]

	lines, err := parseLineArgs(args[1:])
	if err != nil {
		return err
	}

	switch {
	case useRange:
		if len(lines) != 2 {
			return fmt.Errorf("--range requires exactly two line arguments, got %d", len(lines))
		}
		lo, hi := edit.NormalizeRange(lines[0], lines[1])
		if err := ops.span(env.editor, ctx, path, lo, hi); err != nil {
			return err
		}
		env.reporter.Range(ops.action, path, lo, hi)

	case len(lines) == 1:
		if err := ops.line(env.editor, ctx, path, lines[0]); err != nil {
			return err
		}
		env.reporter.Line(ops.action, path, lines[0])

	default:
		if ops.batch == nil {
			return fmt.Errorf("%s accepts a single line, or two lines with --range", cmd.Name())
		}
		if err := ops.batch(env.editor, ctx, path, lines); err != nil {
			return err
		}
		env.reporter.Lines(ops.action, path, lines)
	}

	return nil
}
