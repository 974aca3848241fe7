package cli

import (
	"fmt"
	"strings"

	"github.com/eqtint/eqtint-cli/pkg/models"
)

// ValidateEquationName validates a stored equation name
func ValidateEquationName(name string) error {
	if name == "" {
		return fmt.Errorf("equation name cannot be empty")
	}

	// Check for invalid characters
	invalidChars := []string{"/", "\\", "..", "~", "$", "`"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("equation name contains invalid character: %s", char)
		}
	}

	return nil
}

// ValidateTermName validates a colored-term name
func ValidateTermName(name string) error {
	if err := models.ValidateTermName(name); err != nil {
		return fmt.Errorf("invalid term name %q: %w", name, err)
	}
	return nil
}

// ValidateColorToken validates a hex color flag value
func ValidateColorToken(color string) error {
	if err := models.ValidateColorToken(color); err != nil {
		return fmt.Errorf("invalid color %q: %w", color, err)
	}
	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateRange validates --start/--end flag values against a markup
// length. The engine clamps defensively, but flag typos deserve a
// clear message instead of a silently shifted insertion.
func ValidateRange(start, end, length int) error {
	if start < 0 || end < 0 {
		return fmt.Errorf("range offsets cannot be negative")
	}
	if start > end {
		return fmt.Errorf("range start %d is past range end %d", start, end)
	}
	if end > length {
		return fmt.Errorf("range end %d is past the end of the markup (length %d)", end, length)
	}
	return nil
}
