package annotation

import (
	"github.com/eqtint/eqtint-cli/pkg/models"
)

// Extract scans markup and returns one Term per annotation occurrence,
// in discovery order. A term's color comes from colors when pinned
// there; otherwise it is assigned from the palette by the term's
// ordinal position within this scan. Unpinned colors are therefore not
// stable across scans once earlier terms are added or removed — pin a
// color in the map to make it stick.
//
// Duplicate names yield one Term per occurrence; nothing de-duplicates.
// Markup without annotations yields an empty sequence.
func Extract(markup string, colors map[string]string) []models.Term {
	var terms []models.Term
	for _, sp := range Scan(markup) {
		if sp.Kind != SpanAnnotation {
			continue
		}

		color, ok := colors[sp.Name]
		if !ok {
			color = models.ColorAt(len(terms))
		}

		terms = append(terms, models.Term{
			Name:    sp.Name,
			Content: sp.Content,
			Color:   color,
		})
	}
	return terms
}
