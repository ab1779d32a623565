package render

import (
	"bytes"
	"io"
)

// Component is an opaque renderable value. A component knows how to write
// itself as HTML to an output stream and nothing else.
type Component interface {
	Render(w io.Writer) error
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(w io.Writer) error

// Render implements Component.
func (f ComponentFunc) Render(w io.Writer) error {
	return f(w)
}

// ToString renders a component to a string. Intended for tests and tooling;
// request paths render directly to the response stream.
func ToString(c Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
