package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

var clipboardRaw bool

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <equation>",
		Short: "Copy render-ready markup to the clipboard",
		Long: `Copy an equation's render-ready \textcolor markup to the system
clipboard, ready to paste into a math renderer.

With --raw the stored annotation form is copied instead.

Examples:
  eqtint clipboard einstein
  eqtint clipboard einstein --raw`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "copy"},
		PreRunE: requireProject,
		RunE:    runClipboard,
	}

	cmd.Flags().BoolVar(&clipboardRaw, "raw", false, "Copy the stored annotation markup instead")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	eq, err := files.ReadEquation(args[0])
	if err != nil {
		return err
	}

	content := eq.Markup
	what := "raw markup"
	if !clipboardRaw {
		content = session.Open(eq.Markup, eq.Colors).Renderable()
		what = "render markup"
	}

	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Copied %s of '%s' to clipboard", what, eq.Name)

	preview := content
	if idx := strings.IndexByte(preview, '\n'); idx >= 0 {
		preview = preview[:idx] + " ..."
	}
	cli.PrintInfo("Preview: %s", cli.TruncateString(preview, 80))

	return nil
}
