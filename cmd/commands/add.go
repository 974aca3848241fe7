package commands

import (
	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

var (
	addStart int
	addEnd   int
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <equation>",
		Short: "Add a colored term around a markup range",
		Long: `Wrap a byte range of the equation's markup in a new colored term.
The term gets a synthesized name and the next palette color; rename
its content or recolor it afterwards with 'eqtint set'.

With no range flags the term is appended at the end of the markup
with placeholder text. An empty range at a position inserts
placeholder text there.

Examples:
  # Wrap the text in bytes [4,9) of the markup
  eqtint add einstein --start 4 --end 9

  # Append a placeholder term
  eqtint add einstein`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runAdd,
	}

	cmd.Flags().IntVar(&addStart, "start", -1, "Range start (byte offset)")
	cmd.Flags().IntVar(&addEnd, "end", -1, "Range end (byte offset, exclusive)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	eq, err := files.ReadEquation(args[0])
	if err != nil {
		return err
	}

	start, end := addStart, addEnd
	if start < 0 && end < 0 {
		start, end = len(eq.Markup), len(eq.Markup)
	} else {
		if end < 0 {
			end = start
		}
		if err := cli.ValidateRange(start, end, len(eq.Markup)); err != nil {
			return err
		}
	}

	s := session.Open(eq.Markup, eq.Colors)
	term := s.AddTerm(start, end)

	eq.Markup, eq.Colors = s.Commit()
	if err := files.WriteEquation(eq); err != nil {
		return err
	}

	cli.PrintSuccess("Added term '%s' (%s) wrapping %q", term.Name, term.Color, term.Content)
	return nil
}
