package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <equation> <term>",
		Short: "Remove a colored term, keeping its text",
		Long: `Remove a colored term from an equation. The annotation wrapper is
stripped; the underlying text stays in the markup. The term's pinned
color is dropped.

If the term name occurs more than once, every occurrence is removed.

Examples:
  eqtint remove einstein mass
  eqtint remove einstein mass -y`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"rm"},
		PreRunE: requireProject,
		RunE:    runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	eqName, termName := args[0], args[1]

	eq, err := files.ReadEquation(eqName)
	if err != nil {
		return err
	}

	s := session.Open(eq.Markup, eq.Colors)

	found := false
	for _, term := range s.Terms() {
		if term.Name == termName {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no term named '%s' in equation '%s'", termName, eqName)
	}

	ok, err := cli.Confirm(fmt.Sprintf("Remove term '%s' from '%s'?", termName, eqName), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Cancelled.")
		return nil
	}

	s.RemoveTerm(termName)

	eq.Markup, eq.Colors = s.Commit()
	if err := files.WriteEquation(eq); err != nil {
		return err
	}

	cli.PrintSuccess("Removed term '%s' from '%s'", termName, eqName)
	return nil
}
