package page

import (
	"strings"

	"github.com/milk9111/clickburst/prefabs"
)

// Element is one node of the host page. Widgets carry their element in
// CustomData so a hit test can be mapped back to tags and classes.
type Element struct {
	Tag     string
	ID      string
	Classes []string
	Text    string
	// Target is the id of the element a copy button copies from.
	Target string

	parent   *Element
	children []*Element
}

func NewElement(tag string, classes ...string) *Element {
	return &Element{Tag: strings.ToLower(tag), Classes: classes}
}

// Append adopts children and returns e for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	return e.children
}

func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Closest returns e or its nearest ancestor matching sel.
func (e *Element) Closest(sel Selector) *Element {
	for cur := e; cur != nil; cur = cur.parent {
		if sel.Matches(cur) {
			return cur
		}
	}
	return nil
}

// Find returns the first element with the given id, depth first.
func (e *Element) Find(id string) *Element {
	if e == nil || id == "" {
		return nil
	}
	if e.ID == id {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of e and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*Element)
	walk = func(n *Element) {
		b.WriteString(n.Text)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(e)
	return b.String()
}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString(e.Tag)
	if e.ID != "" {
		b.WriteByte('#')
		b.WriteString(e.ID)
	}
	for _, c := range e.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// FromSpec builds an element tree from its YAML description.
func FromSpec(spec prefabs.ElementSpec) *Element {
	el := NewElement(spec.Tag, spec.Class...)
	el.ID = spec.ID
	el.Text = spec.Text
	el.Target = spec.Target
	for _, child := range spec.Children {
		el.Append(FromSpec(child))
	}
	return el
}
