package dom_test

import (
	"testing"

	"github.com/go-aria/aria/pkg/dom"
)

// buildTree returns a document shaped like:
//
//	body
//	└── div.accordion#group
//	    ├── button.accordion__trigger
//	    ├── div.accordion__panel[data-state=open]
//	    ├── button.accordion__trigger.alt
//	    └── div.accordion__panel
func buildTree(t *testing.T) (*dom.Document, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument()
	group := doc.CreateElement("div")
	group.AddClass("accordion")
	group.SetID("group")
	doc.Root().AppendChild(group)

	t1 := doc.CreateElement("button")
	t1.AddClass("accordion__trigger")
	group.AppendChild(t1)

	p1 := doc.CreateElement("div")
	p1.AddClass("accordion__panel")
	p1.SetAttribute("data-state", "open")
	group.AppendChild(p1)

	t2 := doc.CreateElement("button")
	t2.AddClass("accordion__trigger")
	t2.AddClass("alt")
	group.AppendChild(t2)

	p2 := doc.CreateElement("div")
	p2.AddClass("accordion__panel")
	group.AppendChild(p2)

	return doc, group
}

func TestQuerySelectorAll(t *testing.T) {
	doc, group := buildTree(t)

	tests := []struct {
		sel  string
		want int
	}{
		{"button", 2},
		{".accordion__trigger", 2},
		{".accordion__trigger.alt", 1},
		{"#group", 1},
		{"div.accordion__panel", 2},
		{"[data-state]", 1},
		{"[data-state=open]", 1},
		{"[data-state=closed]", 0},
		{".accordion .accordion__panel", 2},
		{".missing", 0},
		{"", 0},
		{"..", 0},
		{"[", 0},
	}
	for _, tt := range tests {
		if got := len(doc.QuerySelectorAll(tt.sel)); got != tt.want {
			t.Errorf("QuerySelectorAll(%q) = %d matches, want %d", tt.sel, got, tt.want)
		}
	}

	// Scoped query excludes the scope element itself.
	if got := len(group.QuerySelectorAll(".accordion")); got != 0 {
		t.Errorf("scope element matched itself: %d", got)
	}
}

func TestQuerySelector_DocumentOrder(t *testing.T) {
	doc, _ := buildTree(t)

	all := doc.QuerySelectorAll(".accordion__trigger")
	if len(all) != 2 {
		t.Fatalf("want 2 triggers, got %d", len(all))
	}
	if first := doc.QuerySelector(".accordion__trigger"); first != all[0] {
		t.Error("QuerySelector did not return the first match in document order")
	}
	if all[1].HasClass("alt") != true {
		t.Error("matches not in document order")
	}
}

func TestDescendantCombinator_Scoping(t *testing.T) {
	doc := dom.NewDocument()
	outer := doc.CreateElement("div")
	outer.AddClass("outer")
	doc.Root().AppendChild(outer)
	inner := doc.CreateElement("span")
	inner.AddClass("leaf")
	outer.AppendChild(inner)
	loose := doc.CreateElement("span")
	loose.AddClass("leaf")
	doc.Root().AppendChild(loose)

	got := doc.QuerySelectorAll(".outer .leaf")
	if len(got) != 1 || got[0] != inner {
		t.Errorf(".outer .leaf matched %d elements", len(got))
	}
}
