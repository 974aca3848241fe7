package models

import (
	"testing"
)

func TestColorAt(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		expected string
	}{
		{"first color", 0, DefaultColorPalette[0]},
		{"second color", 1, DefaultColorPalette[1]},
		{"last color", len(DefaultColorPalette) - 1, DefaultColorPalette[len(DefaultColorPalette)-1]},
		{"wraps around", len(DefaultColorPalette), DefaultColorPalette[0]},
		{"wraps around twice", 2*len(DefaultColorPalette) + 3, DefaultColorPalette[3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ColorAt(tt.index)
			if result != tt.expected {
				t.Errorf("ColorAt(%d) = %q, want %q", tt.index, result, tt.expected)
			}
		})
	}
}

func TestFallbackRenderColorNotInPalette(t *testing.T) {
	for _, c := range DefaultColorPalette {
		if c == FallbackRenderColor {
			t.Errorf("FallbackRenderColor %q must not appear in DefaultColorPalette", c)
		}
	}
}

func TestValidateTermName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid simple", "a", nil},
		{"valid with hyphen", "left-side", nil},
		{"valid with digits", "term12", nil},
		{"empty string", "", ErrEmptyTermName},
		{"too long", "this-is-a-very-long-term-name-that-exceeds-the-fifty-character-limit", ErrTermNameTooLong},
		{"open brace", "a{b", ErrInvalidTermCharacter},
		{"close brace", "a}b", ErrInvalidTermCharacter},
		{"backslash", `a\b`, ErrInvalidTermCharacter},
		{"space", "a b", ErrInvalidTermCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTermName(tt.input)
			if err != tt.wantErr {
				t.Errorf("ValidateTermName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColorToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"six digit hex", "#e74c3c", false},
		{"three digit hex", "#fff", false},
		{"uppercase hex", "#E74C3C", false},
		{"missing hash", "e74c3c", true},
		{"wrong length", "#e74c", true},
		{"non-hex characters", "#e74g3c", true},
		{"empty", "", true},
		{"named color", "red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorToken(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorToken(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
