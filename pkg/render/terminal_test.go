package render

import (
	"errors"
	"strings"
	"testing"
)

func TestTerminalRenderPlainText(t *testing.T) {
	r := NewTerminal()

	out, err := r.Render("x + y = z", Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "x + y = z" {
		t.Errorf("Render = %q, want input unchanged", out)
	}
}

func TestTerminalRenderDirectiveContent(t *testing.T) {
	r := NewTerminal()

	out, err := r.Render(`x + \textcolor{#e74c3c}{y} = z`, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Styling depends on the terminal's color profile, so assert on
	// the text rather than on escape sequences.
	if !strings.Contains(out, "y") {
		t.Errorf("rendered output lost directive content: %q", out)
	}
	if strings.Contains(out, `\textcolor`) {
		t.Errorf("directive wrapper leaked into output: %q", out)
	}
	if !strings.Contains(out, "x + ") || !strings.Contains(out, " = z") {
		t.Errorf("surrounding text damaged: %q", out)
	}
}

func TestTerminalRenderMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated color group", `\textcolor{#e74c3c`},
		{"missing content group", `\textcolor{#e74c3c} y`},
		{"empty color", `\textcolor{}{y}`},
	}

	r := NewTerminal()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.input, Options{})
			if err == nil {
				t.Fatalf("Render(%q) succeeded, want error", tt.input)
			}
			var rerr *Error
			if !errors.As(err, &rerr) {
				t.Errorf("error type = %T, want *Error", err)
			}
		})
	}
}

func TestTerminalRenderErrorTolerant(t *testing.T) {
	r := NewTerminal()

	out, err := r.Render(`x + \textcolor{#e74c3c`, Options{ErrorTolerant: true})
	if err != nil {
		t.Fatalf("tolerant render failed: %v", err)
	}
	if !strings.Contains(out, `\textcolor{#e74c3c`) {
		t.Errorf("malformed text not passed through: %q", out)
	}
}

func TestTerminalRenderSanitizesUntrusted(t *testing.T) {
	r := NewTerminal()

	out, err := r.Render("x \x1b[31m y", Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.ContainsRune(out, 0x1b) {
		t.Errorf("escape byte survived sanitization: %q", out)
	}

	out, err = r.Render("x \x1b[31m y", Options{Trusted: true})
	if err != nil {
		t.Fatalf("trusted render failed: %v", err)
	}
	if !strings.ContainsRune(out, 0x1b) {
		t.Errorf("trusted input was sanitized: %q", out)
	}
}

func TestTerminalRenderDisplayMode(t *testing.T) {
	r := NewTerminal()

	out, err := r.Render("x", Options{DisplayMode: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(out, "\n") || !strings.HasSuffix(out, "\n") {
		t.Errorf("display mode output not block-shaped: %q", out)
	}
}
