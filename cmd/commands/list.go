package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/annotation"
	"github.com/eqtint/eqtint-cli/pkg/files"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored equations",
		Long: `List all equations in the current project with their term counts
and a markup preview.

Examples:
  eqtint list
  eqtint list -o json`,
		Args:    cobra.NoArgs,
		Aliases: []string{"ls"},
		PreRunE: requireProject,
		RunE:    runList,
	}

	return cmd
}

type equationSummary struct {
	Name   string `json:"name" yaml:"name"`
	Terms  int    `json:"terms" yaml:"terms"`
	Markup string `json:"markup" yaml:"markup"`
}

func runList(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	names, err := files.ListEquations()
	if err != nil {
		return err
	}

	var summaries []equationSummary
	for _, name := range names {
		eq, err := files.ReadEquation(name)
		if err != nil {
			cli.PrintWarning("skipping %s: %v", name, err)
			continue
		}
		summaries = append(summaries, equationSummary{
			Name:   eq.Name,
			Terms:  len(annotation.Extract(eq.Markup, eq.Colors)),
			Markup: eq.Markup,
		})
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, summaries)
	}

	if len(summaries) == 0 {
		cli.PrintInfo("No equations found. Create one with 'eqtint create'.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "TERMS", "MARKUP")
	for _, s := range summaries {
		table.Row(s.Name, fmt.Sprintf("%d", s.Terms), cli.TruncateString(s.Markup, 60))
	}
	table.Flush()

	return nil
}
