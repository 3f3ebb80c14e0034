package dom_test

import (
	"testing"

	"github.com/go-aria/aria/pkg/dom"
)

func TestDispatch_Order(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("button")
	doc.Root().AppendChild(parent)
	parent.AppendChild(child)

	var order []string
	child.AddListener(dom.EventClick, func(*dom.Event) { order = append(order, "child") })
	parent.AddListener(dom.EventClick, func(*dom.Event) { order = append(order, "parent") })
	doc.AddListener(dom.EventClick, func(*dom.Event) { order = append(order, "document") })

	doc.Click(child)

	want := []string{"child", "parent", "document"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestDispatch_StopPropagation(t *testing.T) {
	doc := dom.NewDocument()
	child := doc.CreateElement("button")
	doc.Root().AppendChild(child)

	child.AddListener(dom.EventClick, func(e *dom.Event) { e.StopPropagation() })
	docHit := false
	doc.AddListener(dom.EventClick, func(*dom.Event) { docHit = true })

	doc.Click(child)

	if docHit {
		t.Error("document listener ran despite StopPropagation")
	}
}

func TestDispatch_PreventDefaultVisibleToLaterHandlers(t *testing.T) {
	doc := dom.NewDocument()

	doc.AddListener(dom.EventKeydown, func(e *dom.Event) { e.PreventDefault() })
	var sawPrevented bool
	doc.AddListener(dom.EventKeydown, func(e *dom.Event) { sawPrevented = e.DefaultPrevented() })

	ev := doc.DispatchKey(dom.KeyEscape)

	if !ev.DefaultPrevented() {
		t.Error("event not marked prevented")
	}
	if !sawPrevented {
		t.Error("later handler did not observe PreventDefault")
	}
}

func TestFocus_DispatchesBlurThenFocus(t *testing.T) {
	doc := dom.NewDocument()
	a := doc.CreateElement("button")
	b := doc.CreateElement("button")
	doc.Root().AppendChild(a)
	doc.Root().AppendChild(b)

	var order []string
	a.AddListener(dom.EventBlur, func(*dom.Event) { order = append(order, "blur-a") })
	b.AddListener(dom.EventFocus, func(*dom.Event) { order = append(order, "focus-b") })

	doc.Focus(a)
	doc.Focus(b)

	if doc.ActiveElement() != b {
		t.Fatal("active element not updated")
	}
	if len(order) != 2 || order[0] != "blur-a" || order[1] != "focus-b" {
		t.Fatalf("got event order %v", order)
	}
}

func TestFocus_SameElementNoEvents(t *testing.T) {
	doc := dom.NewDocument()
	a := doc.CreateElement("button")
	doc.Root().AppendChild(a)
	doc.Focus(a)

	fired := 0
	a.AddListener(dom.EventFocus, func(*dom.Event) { fired++ })
	a.AddListener(dom.EventBlur, func(*dom.Event) { fired++ })

	doc.Focus(a)

	if fired != 0 {
		t.Errorf("refocusing active element fired %d events", fired)
	}
}

func TestDispatchKey_TargetsActiveElement(t *testing.T) {
	doc := dom.NewDocument()
	a := doc.CreateElement("button")
	doc.Root().AppendChild(a)
	doc.Focus(a)

	var target *dom.Element
	a.AddListener(dom.EventKeydown, func(e *dom.Event) { target = e.Target })

	doc.DispatchKey(dom.KeyEnter)

	if target != a {
		t.Error("keydown not targeted at active element")
	}
}

func TestIDIndex(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	doc.Root().AppendChild(el)

	el.SetID("first")
	if doc.ElementByID("first") != el {
		t.Fatal("id not indexed")
	}

	el.SetID("second")
	if doc.HasID("first") {
		t.Error("stale id still indexed")
	}
	if doc.ElementByID("second") != el {
		t.Error("renamed id not indexed")
	}

	el.RemoveAttribute("id")
	if doc.HasID("second") {
		t.Error("removed id still indexed")
	}
}

func TestListenerRemove_Idempotent(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("button")
	doc.Root().AppendChild(el)

	hits := 0
	remove := el.AddListener(dom.EventClick, func(*dom.Event) { hits++ })
	remove()
	remove()

	doc.Click(el)
	if hits != 0 {
		t.Error("removed listener still fired")
	}
}

func TestFirstFocusableDescendant(t *testing.T) {
	doc := dom.NewDocument()
	panel := doc.CreateElement("div")
	doc.Root().AppendChild(panel)

	span := doc.CreateElement("span")
	panel.AppendChild(span)
	link := doc.CreateElement("a")
	span.AppendChild(link)
	button := doc.CreateElement("button")
	panel.AppendChild(button)

	if got := panel.FirstFocusableDescendant(); got != link {
		t.Errorf("got %v, want the nested link", got)
	}

	link.SetAttribute("aria-hidden", "true")
	if got := panel.FirstFocusableDescendant(); got != button {
		t.Errorf("hidden link should be skipped, got %v", got)
	}
}

func TestFirstFocusableDescendant_Tabindex(t *testing.T) {
	doc := dom.NewDocument()
	panel := doc.CreateElement("div")
	doc.Root().AppendChild(panel)

	div := doc.CreateElement("div")
	div.SetAttribute("tabindex", "0")
	panel.AppendChild(div)

	if got := panel.FirstFocusableDescendant(); got != div {
		t.Error("tabindex element should be focusable")
	}
}
