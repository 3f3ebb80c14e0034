package widgets_test

import (
	"testing"

	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/responsive"
	"github.com/go-aria/aria/pkg/uitest"
	"github.com/go-aria/aria/pkg/widgets"
)

func TestTabs_InitialProjection(t *testing.T) {
	doc, _ := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 3)

	tabs := widgets.NewTabs(doc, f.Root, widgets.TabsOptions{Registry: core.NewRegistry()})

	if f.Root.Attr("role") != "tablist" {
		t.Error("root missing tablist role")
	}
	if tabs.SelectedIndex() != 0 {
		t.Fatalf("SelectedIndex = %d, want 0", tabs.SelectedIndex())
	}
	for i, tab := range f.Tabs {
		if tab.Attr("role") != "tab" {
			t.Errorf("tab %d missing role", i)
		}
		if f.Panels[i].Attr("role") != "tabpanel" {
			t.Errorf("panel %d missing role", i)
		}
		selected := i == 0
		wantSelected, wantTabindex := "false", "-1"
		if selected {
			wantSelected, wantTabindex = "true", "0"
		}
		if tab.Attr("aria-selected") != wantSelected || tab.Attr("tabindex") != wantTabindex {
			t.Errorf("tab %d: aria-selected=%q tabindex=%q", i, tab.Attr("aria-selected"), tab.Attr("tabindex"))
		}
		if tab.Attr("aria-controls") != f.Panels[i].ID() {
			t.Errorf("tab %d not linked to panel", i)
		}
		hidden := f.Panels[i].Attr("aria-hidden") == "true"
		if hidden == selected {
			t.Errorf("panel %d hidden=%v for selected=%v", i, hidden, selected)
		}
	}
}

func TestTabs_SelectSwitchesPanels(t *testing.T) {
	doc, _ := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 3)

	var changes []*dom.Element
	tabs := widgets.NewTabs(doc, f.Root, widgets.TabsOptions{
		Registry: core.NewRegistry(),
		OnChange: func(tab, _ *dom.Element) { changes = append(changes, tab) },
	})

	tabs.Select(2)
	if tabs.SelectedIndex() != 2 {
		t.Fatalf("SelectedIndex = %d, want 2", tabs.SelectedIndex())
	}
	if f.Panels[0].Style("display") != "none" || f.Panels[2].Style("display") == "none" {
		t.Error("panel visibility not switched")
	}

	// Re-selecting the selected tab fires no callback.
	tabs.Select(2)
	tabs.Select(-1)
	tabs.Select(99)
	if len(changes) != 1 || changes[0] != f.Tabs[2] {
		t.Errorf("changes = %v, want exactly the first switch", changes)
	}
}

func TestTabs_ClickSelects(t *testing.T) {
	doc, _ := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 3)

	tabs := widgets.NewTabs(doc, f.Root, widgets.TabsOptions{Registry: core.NewRegistry()})

	doc.Click(f.Tabs[1])
	if tabs.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d after click, want 1", tabs.SelectedIndex())
	}
}

func TestTabs_KeyboardRovingAndActivation(t *testing.T) {
	doc, _ := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 3)

	tabs := widgets.NewTabs(doc, f.Root, widgets.TabsOptions{Registry: core.NewRegistry()})

	doc.Focus(f.Tabs[0])

	doc.DispatchKey(dom.KeyArrowLeft)
	if doc.ActiveElement() != f.Tabs[2] {
		t.Fatal("ArrowLeft from the first tab should wrap to the last")
	}
	doc.DispatchKey(dom.KeyArrowRight)
	if doc.ActiveElement() != f.Tabs[0] {
		t.Fatal("ArrowRight from the last tab should wrap to the first")
	}
	doc.DispatchKey(dom.KeyEnd)
	if doc.ActiveElement() != f.Tabs[2] {
		t.Fatal("End should land on the last tab")
	}

	// Roving alone never changes the selection.
	if tabs.SelectedIndex() != 0 {
		t.Fatalf("selection moved with focus: %d", tabs.SelectedIndex())
	}

	doc.DispatchKey(dom.KeyEnter)
	if tabs.SelectedIndex() != 2 {
		t.Errorf("Enter did not activate the focused tab")
	}

	doc.DispatchKey(dom.KeyHome)
	doc.DispatchKey(dom.KeySpace)
	if tabs.SelectedIndex() != 0 {
		t.Errorf("Space did not activate the focused tab")
	}
}

func TestTabs_DestroyThenReinit(t *testing.T) {
	doc, sched := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 2)
	vp := responsive.NewViewport(800, 600)

	widgets.NewTabs(doc, f.Root, widgets.TabsOptions{
		Registry:   core.NewRegistry(),
		MediaQuery: responsive.MustQuery(vp, "(min-width: 768px)"),
	})
	if doc.ListenerCount(dom.EventKeydown) != 1 {
		t.Fatal("expected one document keydown listener after init")
	}

	vp.Resize(700, 600)
	sched.Advance(responsive.DefaultThrottle)
	if doc.ListenerCount(dom.EventKeydown) != 0 {
		t.Fatal("document keydown listener survived destroy")
	}
	if f.Root.HasAttribute("role") {
		t.Error("tablist role survived destroy")
	}
	for i, tab := range f.Tabs {
		if tab.HasAttribute("role") || tab.HasAttribute("aria-selected") || tab.HasAttribute("tabindex") || tab.ID() != "" {
			t.Errorf("tab %d keeps wiring after destroy", i)
		}
		if f.Panels[i].HasAttribute("role") || f.Panels[i].ID() != "" || f.Panels[i].Style("display") != "" {
			t.Errorf("panel %d keeps wiring after destroy", i)
		}
	}

	vp.Resize(900, 600)
	sched.Advance(responsive.DefaultThrottle)
	if doc.ListenerCount(dom.EventKeydown) != 1 {
		t.Fatal("reinit did not reattach the keydown listener")
	}
	if f.Tabs[0].Attr("aria-selected") != "true" || f.Tabs[1].Attr("aria-selected") != "false" {
		t.Error("reinit projection differs from a fresh init")
	}
}

func TestTabs_OnInitFiresOnce(t *testing.T) {
	doc, sched := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 2)
	vp := responsive.NewViewport(800, 600)

	var inits int
	widgets.NewTabs(doc, f.Root, widgets.TabsOptions{
		Registry:   core.NewRegistry(),
		MediaQuery: responsive.MustQuery(vp, "(min-width: 768px)"),
		OnInit:     func(*dom.Element) { inits++ },
	})

	vp.Resize(700, 600)
	sched.Advance(responsive.DefaultThrottle)
	vp.Resize(900, 600)
	sched.Advance(responsive.DefaultThrottle)

	if inits != 1 {
		t.Errorf("inits = %d, want 1", inits)
	}
}

func TestTabs_SingletonAndDispose(t *testing.T) {
	doc, _ := uitest.NewDoc()
	f := uitest.BuildTabs(doc, 2)
	reg := core.NewRegistry()

	first := widgets.NewTabs(doc, f.Root, widgets.TabsOptions{Registry: reg, PrefixID: "nav"})
	second := widgets.NewTabs(doc, f.Root, widgets.TabsOptions{Registry: reg, PrefixID: "other"})
	if first != second || second.Options().PrefixID != "nav" {
		t.Fatal("tab group not a singleton per node")
	}

	widgets.DestroyTabs(reg, doc, ".tabs")
	if reg.Len() != 0 {
		t.Errorf("registry entries = %d after destroy, want 0", reg.Len())
	}
	if _, ok := widgets.GetTabs(reg, doc, f.Root); ok {
		t.Error("disposed tab group still registered")
	}
}
