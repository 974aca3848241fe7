package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <equation>",
		Short: "Delete a stored equation",
		Long: `Delete a stored equation and its color assignments. This cannot be
undone.

Examples:
  eqtint delete einstein
  eqtint delete einstein -y`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"del"},
		PreRunE: requireProject,
		RunE:    runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := files.ReadEquation(name); err != nil {
		return fmt.Errorf("equation '%s' not found", name)
	}

	ok, err := cli.Confirm(fmt.Sprintf("Delete equation '%s'?", name), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Cancelled.")
		return nil
	}

	if err := files.DeleteEquation(name); err != nil {
		return err
	}

	cli.PrintSuccess("Deleted equation '%s'", name)
	return nil
}
