package page

// DefaultInert lists the regions bursts must not start in: code samples,
// buttons, links, form controls and copy buttons.
const DefaultInert = "code, pre, button, a, input, textarea, select, .copy-btn"

// InertRegions reports whether an interaction target sits inside an
// element matching any of its selectors. It implements burst.Excluder.
type InertRegions struct {
	selectors []Selector
}

func NewInertRegions(list string) (*InertRegions, error) {
	sels, err := ParseSelectorList(list)
	if err != nil {
		return nil, err
	}
	return &InertRegions{selectors: sels}, nil
}

// DefaultInertRegions returns the canonical exclusion list.
func DefaultInertRegions() *InertRegions {
	r, err := NewInertRegions(DefaultInert)
	if err != nil {
		panic("page: default inert list: " + err.Error())
	}
	return r
}

// Excludes accepts the *Element returned by Page.TargetAt. Anything else,
// including a nil element, is not excluded.
func (r *InertRegions) Excludes(target any) bool {
	el, _ := target.(*Element)
	return r.Contains(el)
}

// Contains walks from el up through its ancestors.
func (r *InertRegions) Contains(el *Element) bool {
	return r.Match(el) != nil
}

// Match returns the closest inert element around el, if any.
func (r *InertRegions) Match(el *Element) *Element {
	for cur := el; cur != nil; cur = cur.parent {
		for _, sel := range r.selectors {
			if sel.Matches(cur) {
				return cur
			}
		}
	}
	return nil
}

func (r *InertRegions) Selectors() []Selector {
	out := make([]Selector, len(r.selectors))
	copy(out, r.selectors)
	return out
}
