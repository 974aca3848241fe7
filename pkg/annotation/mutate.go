package annotation

// UpdateTerm replaces the content of every `\clr{name}{...}` occurrence
// with newContent, matching by exact name. Markup is returned unchanged
// when no occurrence matches; a term the caller believes exists may
// already have been edited out by a concurrent raw-text edit, and that
// is not an error.
//
// An empty newContent produces `\clr{name}{}`, which the scanner will
// no longer match; callers wanting to keep the term should pass
// non-empty content.
func UpdateTerm(markup, name, newContent string) string {
	spans := Scan(markup)
	changed := false
	for i := range spans {
		if spans[i].Kind == SpanAnnotation && spans[i].Name == name {
			spans[i].Content = newContent
			changed = true
		}
	}
	if !changed {
		return markup
	}
	return Rebuild(spans)
}

// RemoveTerm strips the annotation wrapper from every occurrence of
// name, leaving the bare content in place. No-op if absent, and
// idempotent.
func RemoveTerm(markup, name string) string {
	spans := Scan(markup)
	changed := false
	for i := range spans {
		if spans[i].Kind == SpanAnnotation && spans[i].Name == name {
			spans[i] = Span{Kind: SpanLiteral, Text: spans[i].Content, Start: spans[i].Start, End: spans[i].End}
			changed = true
		}
	}
	if !changed {
		return markup
	}
	return Rebuild(spans)
}

// InsertTerm wraps the byte range [start,end) of markup in a new
// `\clr{name}{...}` annotation. An empty range inserts DefaultTermText
// as the content. Out-of-range offsets are clamped to the markup
// bounds, and an inverted range collapses to its start; callers should
// still clamp on their side rather than rely on this.
func InsertTerm(markup string, start, end int, name string) string {
	start, end = clampRange(start, end, len(markup))

	content := markup[start:end]
	if content == "" {
		content = DefaultTermText
	}

	return markup[:start] + Prefix + name + "}{" + content + "}" + markup[end:]
}

func clampRange(start, end, max int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > max {
		start = max
	}
	if end < start {
		end = start
	}
	if end > max {
		end = max
	}
	return start, end
}
