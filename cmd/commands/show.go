package commands

import (
	"fmt"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <equation>",
		Short: "Display an equation's markup and colored terms",
		Long: `Display an equation: the raw markup, the extracted colored terms,
and the pinned color assignments.

Examples:
  eqtint show einstein
  eqtint show einstein -o json
  eqtint show einstein -o yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	eq, err := files.ReadEquation(args[0])
	if err != nil {
		return err
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, eq)
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	s := session.Open(eq.Markup, eq.Colors)

	fmt.Printf("Equation: %s\n\n", eq.Name)

	markup := eq.Markup
	if settings.Output.MarkupWidth > 0 {
		markup = wordwrap.String(markup, settings.Output.MarkupWidth)
	}
	fmt.Println(markup)
	fmt.Println()

	terms := s.Terms()
	if len(terms) == 0 {
		cli.PrintInfo("No colored terms.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("TERM", "CONTENT", "COLOR")
	for _, term := range terms {
		table.Row(term.Name, cli.TruncateString(term.Content, 40), cli.Swatch(term.Color))
	}
	table.Flush()

	return nil
}
