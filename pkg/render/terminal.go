package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const directivePrefix = `\textcolor{`

// Terminal renders `\textcolor` markup as ANSI-styled text for
// in-terminal previews. Colored regions are styled with their hex
// color; everything else passes through as-is. It does no typesetting.
type Terminal struct{}

// NewTerminal returns a terminal preview renderer.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Render scans for color directives and styles their content. A
// directive with missing or unbalanced braces yields an *Error unless
// opts.ErrorTolerant is set, in which case the malformed text is
// emitted literally.
func (t *Terminal) Render(renderable string, opts Options) (string, error) {
	if !opts.Trusted {
		renderable = sanitize(renderable)
	}

	var b strings.Builder
	if opts.DisplayMode {
		b.WriteString("\n  ")
	}

	i := 0
	for i < len(renderable) {
		idx := strings.Index(renderable[i:], directivePrefix)
		if idx < 0 {
			b.WriteString(renderable[i:])
			break
		}

		b.WriteString(renderable[i : i+idx])
		start := i + idx

		color, content, end, ok := matchDirective(renderable, start)
		if !ok {
			if !opts.ErrorTolerant {
				return "", &Error{Pos: start, Msg: "malformed \\textcolor directive"}
			}
			b.WriteString(directivePrefix)
			i = start + len(directivePrefix)
			continue
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		b.WriteString(style.Render(content))
		i = end
	}

	if opts.DisplayMode {
		b.WriteString("\n")
	}

	return b.String(), nil
}

// matchDirective matches a full `\textcolor{color}{content}` at byte
// offset i, mirroring the annotation scanner's brace rules.
func matchDirective(s string, i int) (color, content string, end int, ok bool) {
	j := i + len(directivePrefix)

	k := strings.IndexByte(s[j:], '}')
	if k <= 0 {
		return "", "", 0, false
	}
	color = s[j : j+k]

	j += k + 1
	if j >= len(s) || s[j] != '{' {
		return "", "", 0, false
	}
	j++

	m := strings.IndexByte(s[j:], '}')
	if m < 0 {
		return "", "", 0, false
	}
	content = s[j : j+m]

	return color, content, j + m + 1, true
}

// sanitize strips raw escape bytes so untrusted markup cannot smuggle
// terminal control sequences past the styling layer.
func sanitize(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == 0x1b {
			return -1
		}
		return r
	}, s)
}
