package domain

// Element is one node of the parsed route document.
// It is produced by the parser and never mutated by the compiler.
type Element struct {
	Space    string            `json:"space,omitempty" yaml:"space,omitempty"`
	Tag      string            `json:"tag" yaml:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Element        `json:"children,omitempty" yaml:"children,omitempty"`
	// Line is the 1-based source line of the start tag.
	Line int `json:"line" yaml:"line"`
}

// Attr returns the attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// FirstChild returns the first child element, or nil for a leaf.
func (e *Element) FirstChild() *Element {
	if e == nil || len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// Walk visits e and all its descendants depth-first in document order.
// Returning false from fn skips the children of the visited element.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}
