package annotation

import (
	"strings"

	"github.com/eqtint/eqtint-cli/pkg/models"
)

// RenderPrefix opens a color directive in transcoded output. The exact
// `\textcolor{<color>}{<content>}` wrapper is the wire format renderers
// recognize; do not vary it.
const RenderPrefix = `\textcolor{`

// ToRenderable rewrites every annotation into a color directive. Colors
// resolve the same way Extract resolves them: the pinned entry in
// colors when present, otherwise the palette color for the term's
// ordinal position in this scan. A pinned entry that is empty falls
// back to FallbackRenderColor so the output always carries a usable
// token. Non-annotation text passes through unchanged, so markup
// without annotations comes back verbatim.
func ToRenderable(markup string, colors map[string]string) string {
	spans := Scan(markup)

	var b strings.Builder
	found := 0
	for _, sp := range spans {
		switch sp.Kind {
		case SpanLiteral:
			b.WriteString(sp.Text)
		case SpanAnnotation:
			color, ok := colors[sp.Name]
			if !ok {
				color = models.ColorAt(found)
			} else if color == "" {
				color = models.FallbackRenderColor
			}
			found++

			b.WriteString(RenderPrefix)
			b.WriteString(color)
			b.WriteString("}{")
			b.WriteString(sp.Content)
			b.WriteString("}")
		}
	}
	return b.String()
}
