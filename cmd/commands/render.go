package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/internal/cli"
	"github.com/eqtint/eqtint-cli/pkg/files"
	"github.com/eqtint/eqtint-cli/pkg/render"
	"github.com/eqtint/eqtint-cli/pkg/session"
)

var (
	renderPreview  bool
	renderTolerant bool
)

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <equation>",
		Short: "Transcode an equation for rendering",
		Long: `Transcode an equation's annotations into the \textcolor directive
form that math renderers understand, substituting each term's
resolved color.

By default the transcoded markup is printed as-is, ready to hand to
an external renderer. With --preview it is instead rendered in the
terminal with ANSI colors.

A render failure never changes the stored equation; fix the markup
with 'eqtint edit' and render again.

Examples:
  eqtint render einstein
  eqtint render einstein --preview
  eqtint render einstein --preview --tolerant`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runRender,
	}

	cmd.Flags().BoolVar(&renderPreview, "preview", false, "Render with ANSI colors in the terminal")
	cmd.Flags().BoolVar(&renderTolerant, "tolerant", false, "Render malformed directives as literal text")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	eq, err := files.ReadEquation(args[0])
	if err != nil {
		return err
	}

	s := session.Open(eq.Markup, eq.Colors)
	renderable := s.Renderable()

	if !renderPreview {
		fmt.Println(renderable)
		return nil
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}

	opts := render.Options{
		ErrorTolerant: renderTolerant || settings.Render.ErrorTolerant,
		DisplayMode:   settings.Render.DisplayMode,
		Trusted:       settings.Render.Trusted,
	}

	out, err := render.NewTerminal().Render(renderable, opts)
	if err != nil {
		// Recoverable: report and leave the stored equation untouched.
		cli.PrintError("invalid markup: %v", err)
		return fmt.Errorf("rendering failed")
	}

	fmt.Println(out)
	return nil
}
