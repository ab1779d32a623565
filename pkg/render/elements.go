package render

import (
	"fmt"
	"io"
	"sort"
)

// Attrs holds the attributes of an element. Attributes render sorted by
// name so output is deterministic.
type Attrs map[string]string

// voidElements are elements that never have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// booleanAttrs are attributes rendered as just the attribute name when
// their value is empty.
var booleanAttrs = map[string]bool{
	"async":     true,
	"autofocus": true,
	"checked":   true,
	"defer":     true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

type element struct {
	tag      string
	attrs    Attrs
	children []Component
}

// El builds an element component. Attributes may be nil.
func El(tag string, attrs Attrs, children ...Component) Component {
	return &element{tag: tag, attrs: attrs, children: children}
}

// Render writes the element and its children as HTML.
func (e *element) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<%s", e.tag); err != nil {
		return err
	}

	if len(e.attrs) > 0 {
		keys := make([]string, 0, len(e.attrs))
		for k := range e.attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			v := e.attrs[k]
			if v == "" && booleanAttrs[k] {
				if _, err := fmt.Fprintf(w, " %s", k); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, ` %s="%s"`, k, EscapeAttr(v)); err != nil {
				return err
			}
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if voidElements[e.tag] {
		return nil
	}

	for _, child := range e.children {
		if child == nil {
			continue
		}
		if err := child.Render(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", e.tag)
	return err
}

type text string

func (t text) Render(w io.Writer) error {
	_, err := io.WriteString(w, EscapeText(string(t)))
	return err
}

// Text builds a text component. Content is HTML-escaped on render.
func Text(s string) Component {
	return text(s)
}

type raw string

func (r raw) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Raw builds a component that writes s without escaping. Callers are
// responsible for the safety of the markup.
func Raw(s string) Component {
	return raw(s)
}

type fragment []Component

func (f fragment) Render(w io.Writer) error {
	for _, child := range f {
		if child == nil {
			continue
		}
		if err := child.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Fragment groups components without a wrapper element.
func Fragment(children ...Component) Component {
	return fragment(children)
}
