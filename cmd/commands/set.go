package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

var (
	setContent string
	setColor   string
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <equation> <term>",
		Short: "Update a colored term's content or color",
		Long: `Update a colored term in an equation. Content and color can be
changed independently; an omitted flag keeps the current value.

If the term name occurs more than once in the markup, every
occurrence is updated together.

Examples:
  # Change a term's content
  eqtint set einstein mass --content 'm_0'

  # Change a term's color
  eqtint set einstein mass --color '#9b59b6'

  # Change both at once
  eqtint set einstein mass --content 'm_0' --color '#9b59b6'`,
		Args:    cobra.ExactArgs(2),
		PreRunE: requireProject,
		RunE:    runSet,
	}

	cmd.Flags().StringVar(&setContent, "content", "", "New term content")
	cmd.Flags().StringVar(&setColor, "color", "", "New term color (hex, e.g. #3498db)")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	eqName, termName := args[0], args[1]

	if setContent == "" && setColor == "" {
		return fmt.Errorf("nothing to change: pass --content and/or --color")
	}
	if setColor != "" {
		if err := cli.ValidateColorToken(setColor); err != nil {
			return err
		}
	}

	eq, err := files.ReadEquation(eqName)
	if err != nil {
		return err
	}

	s := session.Open(eq.Markup, eq.Colors)

	// Resolve the current term so omitted flags keep their values.
	var found bool
	content, color := setContent, setColor
	for _, term := range s.Terms() {
		if term.Name == termName {
			if content == "" {
				content = term.Content
			}
			if color == "" {
				color = term.Color
			}
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no term named '%s' in equation '%s'", termName, eqName)
	}

	s.UpdateTerm(termName, content, color)

	eq.Markup, eq.Colors = s.Commit()
	if err := files.WriteEquation(eq); err != nil {
		return err
	}

	cli.PrintSuccess("Updated term '%s' in '%s'", termName, eqName)
	return nil
}
