package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/togl/pkg/edit"
)

func newBlockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block <file> <start> <end>",
		Short: "Toggle block-comment delimiters around a line range",
		Long: `Toggle block-comment delimiter lines around the inclusive line range.

If neither boundary carries a delimiter, a start delimiter is inserted
before <start> and an end delimiter after <end> (/* and */ for C-like
languages, """ for Python). If both boundaries are exactly the delimiter
lines, they are removed. A half-formed block is reported as an error and
the file is left untouched. Line numbers are zero-indexed.

Examples:
  togl block main.c 4 9
  togl block tool.py 0 3`,
		Args: cobra.ExactArgs(3),
		RunE: runBlock,
	}

	return cmd
}

func runBlock(cmd *cobra.Command, args []string) error {
	env, err := newEditEnv(cmd)
	if err != nil {
		return err
	}

	lines, err := parseLineArgs(args[1:])
	if err != nil {
		return err
	}

	path := args[0]
	lo, hi := edit.NormalizeRange(lines[0], lines[1])

	if err := env.editor.ToggleBlock(commandContext(cmd), path, lo, hi); err != nil {
		return err
	}

	env.reporter.Range("toggled block", path, lo, hi)

	return nil
}
