package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/annotation"
	"github.com/eqtint/eqtint-cli/pkg/files"
)

// NewTermsCommand creates the terms command
func NewTermsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms <equation>",
		Short: "List the colored terms of an equation",
		Long: `List every colored term extracted from an equation's markup, in
discovery order, with its resolved color.

A name occurring more than once in the markup lists once per
occurrence.

Examples:
  eqtint terms einstein
  eqtint terms einstein -o json`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runTerms,
	}

	return cmd
}

func runTerms(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	eq, err := files.ReadEquation(args[0])
	if err != nil {
		return err
	}

	terms := annotation.Extract(eq.Markup, eq.Colors)

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, terms)
	}

	if len(terms) == 0 {
		cli.PrintInfo("No colored terms in '%s'.", eq.Name)
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
