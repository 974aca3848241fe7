// Package session holds the editing state for one open equation: the
// markup, the color map, and the term list derived from them, kept
// consistent as edits arrive from either the raw-text side or the
// structured side.
package session

import (
	"fmt"

	"github.com/eqtint/eqtint-cli/pkg/annotation"
	"github.com/eqtint/eqtint-cli/pkg/models"
)

// Snapshot is one consistent view of an open equation. Terms is always
// derived from Markup and Colors, never edited independently.
type Snapshot struct {
	Markup string
	Colors map[string]string
	Terms  []models.Term
}

// Session is the edit state machine for one equation. It is not safe
// for concurrent use; operations are synchronous and each runs to
// completion before the next.
type Session struct {
	markup string
	colors map[string]string
	terms  []models.Term

	// seq backs AddTerm name synthesis. It only grows, so a name is
	// never reissued within one session even after removals.
	seq int
}

// Open seeds a session from an externally supplied markup and color
// map. The map is copied; the caller's map is never mutated.
func Open(initialMarkup string, initialColors map[string]string) *Session {
	colors := make(map[string]string, len(initialColors))
	for name, color := range initialColors {
		colors[name] = color
	}

	terms := annotation.Extract(initialMarkup, colors)

	return &Session{
		markup: initialMarkup,
		colors: colors,
		terms:  terms,
		seq:    len(terms),
	}
}

// Markup returns the current raw markup.
func (s *Session) Markup() string {
	return s.markup
}

// Terms returns a copy of the current term list in discovery order.
func (s *Session) Terms() []models.Term {
	terms := make([]models.Term, len(s.terms))
	copy(terms, s.terms)
	return terms
}

// Snapshot returns a copy of the full current state.
func (s *Session) Snapshot() Snapshot {
	colors := make(map[string]string, len(s.colors))
	for name, color := range s.colors {
		colors[name] = color
	}
	return Snapshot{Markup: s.markup, Colors: colors, Terms: s.Terms()}
}

// Renderable transcodes the current markup into the `\textcolor` form
// consumed by renderers. It never mutates session state.
func (s *Session) Renderable() string {
	return annotation.ToRenderable(s.markup, s.colors)
}

// EditRawMarkup replaces the markup wholesale and re-derives the term
// list. Color entries for names no longer present are kept; a term
// re-added later under the same name gets its old color back.
func (s *Session) EditRawMarkup(newMarkup string) {
	s.markup = newMarkup
	s.terms = annotation.Extract(newMarkup, s.colors)
}

// UpdateTerm sets a term's content and color. Every occurrence sharing
// the name is updated together; occurrences of one name share identity.
// The term list is patched in place rather than re-extracted so other
// terms' ordinal-derived colors are not disturbed. Unknown names pin
// the color but otherwise no-op.
func (s *Session) UpdateTerm(name, newContent, newColor string) {
	s.colors[name] = newColor
	s.markup = annotation.UpdateTerm(s.markup, name, newContent)

	for i := range s.terms {
		if s.terms[i].Name == name {
			s.terms[i].Content = newContent
			s.terms[i].Color = newColor
		}
	}
}

// RemoveTerm strips the annotation wrapper from every occurrence of
// name, drops its color entry, and filters it out of the term list.
// No-op for unknown names.
func (s *Session) RemoveTerm(name string) {
	s.markup = annotation.RemoveTerm(s.markup, name)
	delete(s.colors, name)

	kept := s.terms[:0]
	for _, term := range s.terms {
		if term.Name != name {
			kept = append(kept, term)
		}
	}
	s.terms = kept
}

// AddTerm wraps the byte range [start,end) of the markup in a new
// annotation with a synthesized name and the next palette color, and
// returns the resulting term. An empty range wraps placeholder text.
// Out-of-range offsets are clamped.
func (s *Session) AddTerm(start, end int) models.Term {
	name := s.nextName()
	color := models.ColorAt(len(s.terms))

	s.markup = annotation.InsertTerm(s.markup, start, end, name)
	s.colors[name] = color

	// The inserted annotation may land mid-list positionally, but the
	// session appends: re-extraction on the next raw edit restores
	// document order.
	term := models.Term{Name: name, Color: color}
	for _, t := range annotation.Extract(s.markup, s.colors) {
		if t.Name == name {
			term = t
			break
		}
	}
	s.terms = append(s.terms, term)

	return term
}

// Commit returns the final (markup, colors) pair. The colors map is a
// copy; the session can be discarded afterwards.
func (s *Session) Commit() (string, map[string]string) {
	colors := make(map[string]string, len(s.colors))
	for name, color := range s.colors {
		colors[name] = color
	}
	return s.markup, colors
}

// Discard drops all state. The session must not be used afterwards.
func (s *Session) Discard() {
	s.markup = ""
	s.colors = nil
	s.terms = nil
}

// nextName synthesizes "term<n>" from the monotonic counter, skipping
// names already taken by a current term or a color entry.
func (s *Session) nextName() string {
	for {
		s.seq++
		name := fmt.Sprintf("term%d", s.seq)
		if !s.nameInUse(name) {
			return name
		}
	}
}

func (s *Session) nameInUse(name string) bool {
	if _, ok := s.colors[name]; ok {
		return true
	}
	for _, term := range s.terms {
		if term.Name == name {
			return true
		}
	}
	return false
}
