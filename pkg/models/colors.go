package models

import (
	"errors"
	"strings"
)

// Term-related errors
var (
	ErrEmptyTermName        = errors.New("term name cannot be empty")
	ErrTermNameTooLong      = errors.New("term name cannot exceed 50 characters")
	ErrInvalidTermCharacter = errors.New("term name contains invalid characters")
	ErrInvalidColorToken    = errors.New("color must be a hex token like #rrggbb")
)

// DefaultColorPalette provides a curated set of colors for terms
// These colors are chosen for good contrast and accessibility
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// FallbackRenderColor is used at render time for terms with no color
// assignment. It is deliberately not part of DefaultColorPalette and is
// never stored as a term's color.
const FallbackRenderColor = "#808080"

// ColorAt returns the palette color for a zero-based ordinal. It cycles
// after the palette length, so it is total over all non-negative inputs.
func ColorAt(index int) string {
	if index < 0 {
		index = -index
	}
	return DefaultColorPalette[index%len(DefaultColorPalette)]
}

// ValidateTermName checks if a term name is usable inside a
// `\clr{name}{...}` annotation.
func ValidateTermName(name string) error {
	if name == "" {
		return ErrEmptyTermName
	}

	if len(name) > 50 {
		return ErrTermNameTooLong
	}

	// Braces and backslashes would break the annotation syntax, which
	// has no escaping mechanism.
	for _, r := range name {
		if r == '{' || r == '}' || r == '\\' || r == ' ' || r == '\t' || r == '\n' {
			return ErrInvalidTermCharacter
		}
	}

	return nil
}

// ValidateColorToken checks that a color is a #rgb or #rrggbb hex token.
func ValidateColorToken(color string) error {
	if !strings.HasPrefix(color, "#") {
		return ErrInvalidColorToken
	}

	hex := color[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return ErrInvalidColorToken
	}

	for _, r := range hex {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return ErrInvalidColorToken
		}
	}

	return nil
}
