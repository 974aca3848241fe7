// Package render defines the boundary to equation renderers. Renderers
// consume the `\textcolor{<color>}{<content>}` wire format produced by
// the annotation transcoder and either return a rendered artifact or a
// recoverable *Error. Render failures never touch editing state; the
// caller surfaces them and retries after the next edit.
package render

import "fmt"

// Options mirrors the knobs tolerant math renderers expose.
type Options struct {
	// ErrorTolerant renders malformed directives as literal text
	// instead of failing.
	ErrorTolerant bool

	// DisplayMode renders the equation as a standalone block rather
	// than inline.
	DisplayMode bool

	// Trusted passes input through without sanitizing control
	// sequences. Leave false for markup from untrusted sources.
	Trusted bool
}

// Renderer turns a renderable markup string into a displayable
// artifact.
type Renderer interface {
	Render(renderable string, opts Options) (string, error)
}

// Error describes a recoverable render failure: the offending byte
// offset in the input and what went wrong.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("render: %s at offset %d", e.Msg, e.Pos)
}
