package annotation

import (
	"testing"
)

func TestUpdateTerm(t *testing.T) {
	tests := []struct {
		name       string
		markup     string
		term       string
		newContent string
		want       string
	}{
		{
			"update single occurrence",
			`x + \clr{a}{y} = \clr{b}{z}`,
			"a",
			"w",
			`x + \clr{a}{w} = \clr{b}{z}`,
		},
		{
			"unknown name is a no-op",
			`x + \clr{a}{y}`,
			"missing",
			"w",
			`x + \clr{a}{y}`,
		},
		{
			"plain markup is a no-op",
			"x + y = z",
			"a",
			"w",
			"x + y = z",
		},
		{
			"all occurrences of a duplicated name update together",
			`\clr{a}{y} + \clr{a}{z}`,
			"a",
			"w",
			`\clr{a}{w} + \clr{a}{w}`,
		},
		{
			"name inside another term's content is untouched",
			`\clr{a}{b} + \clr{b}{z}`,
			"b",
			"w",
			`\clr{a}{b} + \clr{b}{w}`,
		},
		{
			"no-op content round-trips",
			`x + \clr{a}{y} = \clr{b}{z}`,
			"a",
			"y",
			`x + \clr{a}{y} = \clr{b}{z}`,
		},
		{
			"malformed occurrence is not rewritten",
			`\clr{a}{y} + \clr{a}{z`,
			"a",
			"w",
			`\clr{a}{w} + \clr{a}{z`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateTerm(tt.markup, tt.term, tt.newContent)
			if got != tt.want {
				t.Errorf("UpdateTerm(%q, %q, %q) = %q, want %q", tt.markup, tt.term, tt.newContent, got, tt.want)
			}
		})
	}
}

func TestRemoveTerm(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		term   string
		want   string
	}{
		{
			"wrapper stripped, content preserved",
			`x + \clr{a}{y} = \clr{b}{z}`,
			"b",
			`x + \clr{a}{y} = z`,
		},
		{
			"unknown name is a no-op",
			`x + \clr{a}{y}`,
			"missing",
			`x + \clr{a}{y}`,
		},
		{
			"all duplicate occurrences removed together",
			`\clr{a}{y} + \clr{a}{z}`,
			"a",
			"y + z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveTerm(tt.markup, tt.term)
			if got != tt.want {
				t.Errorf("RemoveTerm(%q, %q) = %q, want %q", tt.markup, tt.term, got, tt.want)
			}
		})
	}
}

func TestRemoveTermIdempotent(t *testing.T) {
	markup := `x + \clr{a}{y} = \clr{b}{z}`

	once := RemoveTerm(markup, "b")
	twice := RemoveTerm(once, "b")

	if once != twice {
		t.Errorf("second RemoveTerm changed markup: %q != %q", once, twice)
	}
}

func TestRemoveTermThenExtract(t *testing.T) {
	markup := RemoveTerm(`x + \clr{a}{y} = \clr{b}{z}`, "b")

	for _, term := range Extract(markup, nil) {
		if term.Name == "b" {
			t.Errorf("extract still yields removed term %q", term.Name)
		}
	}
	if len(Extract(markup, nil)) != 1 {
		t.Errorf("expected 1 surviving term, markup: %q", markup)
	}
}

func TestInsertTerm(t *testing.T) {
	tests := []struct {
		name       string
		markup     string
		start, end int
		term       string
		want       string
	}{
		{
			"wrap existing text",
			"x + y = z",
			4, 5,
			"a",
			`x + \clr{a}{y} = z`,
		},
		{
			"empty range inserts default text",
			"x + y = z",
			9, 9,
			"a",
			`x + y = z\clr{a}{text}`,
		},
		{
			"wrap whole markup",
			"x",
			0, 1,
			"a",
			`\clr{a}{x}`,
		},
		{
			"end clamped to length",
			"x + y",
			4, 99,
			"a",
			`x + \clr{a}{y}`,
		},
		{
			"negative start clamped",
			"x",
			-3, 0,
			"a",
			`\clr{a}{text}x`,
		},
		{
			"inverted range collapses to start",
			"x + y",
			4, 2,
			"a",
			`x + \clr{a}{text}y`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertTerm(tt.markup, tt.start, tt.end, tt.term)
			if got != tt.want {
				t.Errorf("InsertTerm(%q, %d, %d, %q) = %q, want %q", tt.markup, tt.start, tt.end, tt.term, got, tt.want)
			}
		})
	}
}

func TestInsertTermThenExtract(t *testing.T) {
	markup := `x + \clr{a}{y} = z`
	before := len(Extract(markup, nil))

	inserted := InsertTerm(markup, 17, 18, "b")
	terms := Extract(inserted, nil)

	if len(terms) != before+1 {
		t.Fatalf("term count = %d, want %d", len(terms), before+1)
	}
	last := terms[len(terms)-1]
	if last.Name != "b" || last.Content != "z" {
		t.Errorf("inserted term = %+v, want name b content z", last)
	}
}
