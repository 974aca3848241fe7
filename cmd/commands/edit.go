package commands

import (
	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

var (
	editMarkup   string
	editFromFile string
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <equation>",
		Short: "Replace an equation's raw markup",
		Long: `Replace the raw markup of a stored equation wholesale.

Pinned term colors are kept, including colors of terms no longer
present in the new markup; re-adding a term under the same name
restores its old color.

Examples:
  # Replace from inline markup
  eqtint edit einstein --markup 'E = \clr{mass}{m_0} c^2'

  # Replace from a file
  eqtint edit einstein --from-file equation.tex

  # Replace from stdin
  cat equation.tex | eqtint edit einstein`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runEdit,
	}

	cmd.Flags().StringVar(&editMarkup, "markup", "", "New equation markup")
	cmd.Flags().StringVar(&editFromFile, "from-file", "", "Read markup from a file")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	eq, err := files.ReadEquation(args[0])
	if err != nil {
		return err
	}

	markup, err := readMarkupInput(editMarkup, editFromFile)
	if err != nil {
		return err
	}

	s := session.Open(eq.Markup, eq.Colors)
	s.EditRawMarkup(markup)
	termCount := len(s.Terms())

	eq.Markup, eq.Colors = s.Commit()
	if err := files.WriteEquation(eq); err != nil {
		return err
	}

	cli.PrintSuccess("Updated markup of '%s' (%d colored term(s))", eq.Name, termCount)
	return nil
}
