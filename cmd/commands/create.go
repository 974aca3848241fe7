package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/annotation"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/models"
)

var (
	createMarkup   string
	createFromFile string
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new equation from markup",
		Long: `Create a new stored equation from LaTeX-like markup.

Colored terms already present in the markup as \clr{name}{content}
annotations are discovered and their palette colors pinned, so later
edits never shift them.

Examples:
  # Create from inline markup
  eqtint create einstein --markup 'E = \clr{mass}{m} c^2'

  # Create from a file
  eqtint create einstein --from-file equation.tex

  # Create from stdin
  cat equation.tex | eqtint create einstein`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runCreate,
	}

	cmd.Flags().StringVar(&createMarkup, "markup", "", "Equation markup")
	cmd.Flags().StringVar(&createFromFile, "from-file", "", "Read markup from a file")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := cli.ValidateEquationName(name); err != nil {
		return err
	}
	if _, err := files.ReadEquation(name); err == nil {
		return fmt.Errorf("equation '%s' already exists", name)
	}

	markup, err := readMarkupInput(createMarkup, createFromFile)
	if err != nil {
		return err
	}

	// Pin discovered terms' colors so they stay stable across edits.
	colors := map[string]string{}
	for _, term := range annotation.Extract(markup, colors) {
		if _, ok := colors[term.Name]; !ok {
			colors[term.Name] = term.Color
		}
	}

	eq := &models.Equation{
		Name:   name,
		Markup: markup,
		Colors: colors,
	}
	if err := files.WriteEquation(eq); err != nil {
		return err
	}

	cli.PrintSuccess("Created equation '%s' with %d colored term(s)", name, len(colors))
	return nil
}
