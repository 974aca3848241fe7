package models

// Term is the structured view of one `\clr{name}{content}` annotation
// occurrence in an equation's markup. Identity is by Name; if the same
// name occurs more than once in the markup, extraction yields one Term
// per occurrence.
type Term struct {
	Name    string `yaml:"name" json:"name"`
	Content string `yaml:"content" json:"content"`
	Color   string `yaml:"color" json:"color"`
}

// Equation is a stored equation: the raw markup plus the persistent
// name→color assignments that override palette defaults. Colors may
// contain entries for names no longer present in the markup; stale
// entries are kept so a re-added term gets its old color back.
type Equation struct {
	Name   string            `yaml:"name" json:"name"`
	Markup string            `yaml:"markup" json:"markup"`
	Colors map[string]string `yaml:"colors,omitempty" json:"colors,omitempty"`
	Path   string            `yaml:"-" json:"-"`
}
