package page

import (
	"fmt"
	"strings"
)

// Selector matches an element by tag, classes, or both, e.g. "code",
// ".copy-btn" or "button.primary".
type Selector struct {
	Tag     string
	Classes []string
}

func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("page: empty selector")
	}
	if strings.ContainsAny(s, " >+~[]#:*") {
		return Selector{}, fmt.Errorf("page: unsupported selector %q", s)
	}

	parts := strings.Split(s, ".")
	sel := Selector{Tag: strings.ToLower(parts[0])}
	for _, class := range parts[1:] {
		if class == "" {
			return Selector{}, fmt.Errorf("page: empty class in selector %q", s)
		}
		sel.Classes = append(sel.Classes, class)
	}
	return sel, nil
}

// ParseSelectorList parses a comma separated selector group.
func ParseSelectorList(s string) ([]Selector, error) {
	var out []Selector
	for _, part := range strings.Split(s, ",") {
		sel, err := ParseSelector(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

func (s Selector) Matches(e *Element) bool {
	if e == nil {
		return false
	}
	if s.Tag != "" && s.Tag != e.Tag {
		return false
	}
	for _, c := range s.Classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

func (s Selector) String() string {
	if len(s.Classes) == 0 {
		return s.Tag
	}
	return s.Tag + "." + strings.Join(s.Classes, ".")
}
