package page

import (
	"testing"

	"github.com/milk9111/clickburst/prefabs"
)

// testDoc mirrors the shape of the embedded demo page.
func testDoc() *Element {
	return FromSpec(prefabs.ElementSpec{
		Tag: "main",
		Children: []prefabs.ElementSpec{
			{Tag: "h1", ID: "title", Text: "Click anywhere"},
			{Tag: "pre", ID: "sample", Children: []prefabs.ElementSpec{
				{Tag: "code", ID: "sample-code", Text: "go run ."},
			}},
			{Tag: "div", ID: "actions", Children: []prefabs.ElementSpec{
				{Tag: "div", ID: "copy-wrap", Class: []string{"copy-btn"}, Children: []prefabs.ElementSpec{
					{Tag: "span", ID: "copy-label", Text: "Copy"},
				}},
				{Tag: "button", ID: "plain", Text: "Plain"},
				{Tag: "a", ID: "link", Children: []prefabs.ElementSpec{
					{Tag: "span", ID: "link-text", Text: "docs"},
				}},
			}},
			{Tag: "div", ID: "form", Children: []prefabs.ElementSpec{
				{Tag: "input", ID: "name"},
				{Tag: "textarea", ID: "notes"},
				{Tag: "select", ID: "pick"},
			}},
			{Tag: "p", ID: "para", Children: []prefabs.ElementSpec{
				{Tag: "span", ID: "para-span", Text: "plain text"},
			}},
		},
	})
}

func TestInertRegionsExcludes(t *testing.T) {
	doc := testDoc()
	inert := DefaultInertRegions()

	cases := []struct {
		id   string
		want bool
	}{
		{"title", false},
		{"sample", true},
		{"sample-code", true},
		{"copy-wrap", true},
		{"copy-label", true},
		{"plain", true},
		{"link", true},
		{"link-text", true},
		{"name", true},
		{"notes", true},
		{"pick", true},
		{"form", false},
		{"para", false},
		{"para-span", false},
	}

	for _, c := range cases {
		t.Run(c.id, func(t *testing.T) {
			el := doc.Find(c.id)
			if el == nil {
				t.Fatalf("no element #%s", c.id)
			}
			if got := inert.Excludes(el); got != c.want {
				t.Fatalf("Excludes(#%s) = %v, want %v", c.id, got, c.want)
			}
		})
	}
}

func TestInertRegionsNilAndForeignTargets(t *testing.T) {
	inert := DefaultInertRegions()
	var nilEl *Element

	for name, target := range map[string]any{
		"nil":         nil,
		"nil_element": nilEl,
		"page":        &Page{},
		"string":      "button",
	} {
		if inert.Excludes(target) {
			t.Fatalf("%s target should not be excluded", name)
		}
	}
}

func TestInertRegionsMatchReturnsClosest(t *testing.T) {
	doc := testDoc()
	inert := DefaultInertRegions()

	got := inert.Match(doc.Find("link-text"))
	if got == nil || got.ID != "link" {
		t.Fatalf("expected the enclosing link, got %v", got)
	}
}

func TestNewInertRegionsCustomList(t *testing.T) {
	inert, err := NewInertRegions("code, pre, button")
	if err != nil {
		t.Fatalf("NewInertRegions: %v", err)
	}
	doc := testDoc()
	if inert.Excludes(doc.Find("link-text")) {
		t.Fatalf("links are not inert in the short list")
	}
	if !inert.Excludes(doc.Find("sample-code")) {
		t.Fatalf("code should be inert in the short list")
	}
	if len(inert.Selectors()) != 3 {
		t.Fatalf("expected 3 selectors, got %d", len(inert.Selectors()))
	}

	if _, err := NewInertRegions("code, div > p"); err == nil {
		t.Fatalf("expected error for combinator selector")
	}
}
