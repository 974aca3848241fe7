// Package annotation implements the `\clr{name}{content}` annotation
// syntax: scanning it out of equation markup, applying structured edits
// back into the markup, and transcoding it into the `\textcolor` form
// understood by renderers.
//
// The syntax is deliberately minimal: name and content are each one or
// more characters excluding `}`, and there is no escaping mechanism.
// Nested annotations are not supported; an annotation whose content
// contains `}` is only partially captured. Text that fails to match is
// left alone and never reported as an error.
package annotation

import "strings"

const (
	// Prefix opens an annotation in stored markup.
	Prefix = `\clr{`

	// DefaultTermText is inserted as content when a new term wraps an
	// empty selection.
	DefaultTermText = "text"
)

// SpanKind discriminates the two span types produced by Scan.
type SpanKind int

const (
	SpanLiteral SpanKind = iota
	SpanAnnotation
)

// Span is one segment of markup: either a literal run of text, or a
// well-formed annotation. Start and End are byte offsets into the
// scanned markup, with End exclusive.
type Span struct {
	Kind    SpanKind
	Text    string // literal spans: verbatim source text
	Name    string // annotation spans
	Content string // annotation spans
	Start   int
	End     int
}

// Scan splits markup into a flat span sequence. Concatenating the spans
// (literal text verbatim, annotations re-serialized) reproduces the
// input exactly. Malformed annotation-like text ends up inside literal
// spans.
func Scan(markup string) []Span {
	var spans []Span

	lit := 0 // start of the pending literal run
	i := 0
	for i < len(markup) {
		if markup[i] != '\\' {
			i++
			continue
		}

		name, content, end, ok := matchAnnotation(markup, i)
		if !ok {
			i++
			continue
		}

		if i > lit {
			spans = append(spans, Span{Kind: SpanLiteral, Text: markup[lit:i], Start: lit, End: i})
		}
		spans = append(spans, Span{Kind: SpanAnnotation, Name: name, Content: content, Start: i, End: end})
		i = end
		lit = end
	}

	if lit < len(markup) {
		spans = append(spans, Span{Kind: SpanLiteral, Text: markup[lit:], Start: lit, End: len(markup)})
	}

	return spans
}

// matchAnnotation tries to match a full `\clr{name}{content}` at byte
// offset i. Returns the captured groups and the offset one past the
// closing brace.
func matchAnnotation(markup string, i int) (name, content string, end int, ok bool) {
	rest := markup[i:]
	if !strings.HasPrefix(rest, Prefix) {
		return "", "", 0, false
	}

	j := len(Prefix)
	k := strings.IndexByte(rest[j:], '}')
	if k <= 0 {
		// no closing brace, or empty name
		return "", "", 0, false
	}
	name = rest[j : j+k]

	j += k + 1
	if j >= len(rest) || rest[j] != '{' {
		return "", "", 0, false
	}
	j++

	m := strings.IndexByte(rest[j:], '}')
	if m <= 0 {
		return "", "", 0, false
	}
	content = rest[j : j+m]

	return name, content, i + j + m + 1, true
}

// Rebuild concatenates spans back into markup. Literal spans contribute
// their verbatim text; annotation spans are re-serialized, so content
// edits made on the span survive.
func Rebuild(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		switch sp.Kind {
		case SpanLiteral:
			b.WriteString(sp.Text)
		case SpanAnnotation:
			b.WriteString(Prefix)
			b.WriteString(sp.Name)
			b.WriteString("}{")
			b.WriteString(sp.Content)
			b.WriteString("}")
		}
	}
	return b.String()
}
