package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eqtint/eqtint-cli/pkg/files"
)

// requireProject is the shared PreRunE for commands that operate on a
// stored equation.
func requireProject(cmd *cobra.Command, args []string) error {
	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found. Run 'eqtint init' first", files.EqtintDir)
	}
	return nil
}

// readMarkupInput resolves markup input for commands that accept it
// either inline, from a file, or piped on stdin.
func readMarkupInput(inline, fromFile string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	if fromFile != "" {
		content, err := os.ReadFile(fromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read markup file: %w", err)
		}
		return string(content), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read markup from stdin: %w", err)
		}
		return string(content), nil
	}

	return "", fmt.Errorf("no markup supplied: use --markup, --from-file, or pipe on stdin")
}
