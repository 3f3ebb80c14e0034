package widgets

import (
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/ident"
	"github.com/go-aria/aria/pkg/logging"
	"github.com/go-aria/aria/pkg/responsive"
)

// FamilyTabs is the registry family name for tab groups.
const FamilyTabs = "tabs"

// TabsOptions configures a tab group. Options are merged over TabsDefaults
// at construction and are immutable afterwards.
type TabsOptions struct {
	// Registry tracks the instance. Nil means core.Default().
	Registry *core.Registry

	// TabSelector scopes tabs to the group root. Zero means
	// TabsDefaults.TabSelector.
	TabSelector string

	// PanelSelector scopes panels to the group root. Zero means
	// TabsDefaults.PanelSelector.
	PanelSelector string

	// PrefixID namespaces generated identifiers. Zero means
	// TabsDefaults.PrefixID.
	PrefixID string

	// MediaQuery gates the group's active state. Nil means always active.
	MediaQuery responsive.MediaQuery

	// OnChange is invoked with the newly selected tab and its panel after
	// an actual selection change.
	OnChange func(tab, panel *dom.Element)

	// OnInit is invoked with the group root exactly once, on the first
	// transition into the active state.
	OnInit func(root *dom.Element)
}

// TabsDefaults are the tabs family defaults.
var TabsDefaults = TabsOptions{
	TabSelector:   ".tabs__tab",
	PanelSelector: ".tabs__panel",
	PrefixID:      "tabs",
}

// Tabs coordinates a single-selection tab group: one tab is selected at a
// time, arrow keys rove focus among the tabs with wraparound, and Enter,
// Space, or click activates the focused tab. Selection truth lives in the
// aria-selected attributes.
type Tabs struct {
	core.Lifecycle

	doc  *dom.Document
	opts TabsOptions

	tabs   []*dom.Element
	panels []*dom.Element

	focusWithinTabs bool
	generatedIDs    map[*dom.Element]string

	removeDocKey func()
	tabRemoves   []func()
	controller   *responsive.Controller
	initedOnce   bool
}

func mergeTabsOptions(opts TabsOptions) TabsOptions {
	if opts.Registry == nil {
		opts.Registry = core.Default()
	}
	if opts.TabSelector == "" {
		opts.TabSelector = TabsDefaults.TabSelector
	}
	if opts.PanelSelector == "" {
		opts.PanelSelector = TabsDefaults.PanelSelector
	}
	if opts.PrefixID == "" {
		opts.PrefixID = TabsDefaults.PrefixID
	}
	return opts
}

// NewTabs returns the tab group for the root node, creating it when none
// exists. A pre-existing instance is returned as-is and opts is dropped.
func NewTabs(doc *dom.Document, root *dom.Element, opts TabsOptions) *Tabs {
	opts = mergeTabsOptions(opts)
	t, isNew := core.Construct(opts.Registry, FamilyTabs, root, opts, func() *Tabs {
		return &Tabs{
			Lifecycle:    core.NewLifecycle(opts.Registry, FamilyTabs, root),
			doc:          doc,
			opts:         opts,
			generatedIDs: make(map[*dom.Element]string),
		}
	})
	if !isNew {
		t.MarkShared()
		return t
	}
	t.controller = responsive.NewController(responsive.Config{
		Query:     opts.MediaQuery,
		Scheduler: doc.Scheduler(),
		Init:      t.Init,
		Destroy:   t.Destroy,
		Active:    t.Active,
	})
	return t
}

// GetTabs looks up the tab group for the target without construction side
// effects. reg nil means core.Default().
func GetTabs(reg *core.Registry, doc *dom.Document, target any) (*Tabs, bool) {
	if reg == nil {
		reg = core.Default()
	}
	return core.Instance[*Tabs](reg, FamilyTabs, doc, target)
}

// DestroyTabs tears down and unregisters every tab group the target
// resolves to. Idempotent.
func DestroyTabs(reg *core.Registry, doc *dom.Document, target any) {
	if reg == nil {
		reg = core.Default()
	}
	for _, node := range core.ResolveAll(doc, target) {
		if t, ok := core.Instance[*Tabs](reg, FamilyTabs, doc, node); ok {
			t.Dispose()
		}
	}
}

// Options returns the resolved configuration.
func (t *Tabs) Options() TabsOptions { return t.opts }

// Tabs returns the group's tabs in document order. Valid while active.
func (t *Tabs) Tabs() []*dom.Element { return t.tabs }

// SelectedIndex returns the index of the selected tab, or -1 while
// inactive.
func (t *Tabs) SelectedIndex() int {
	for i, tab := range t.tabs {
		if tab.Attr(ariaSelected) == "true" {
			return i
		}
	}
	return -1
}

// Init wires role attributes and identifier pairs, selects the first tab,
// and attaches listeners. Re-entering init while active is a no-op.
func (t *Tabs) Init() {
	if t.Active() {
		return
	}

	tabs := t.Node().QuerySelectorAll(t.opts.TabSelector)
	panels := t.Node().QuerySelectorAll(t.opts.PanelSelector)
	n := len(tabs)
	if len(panels) < n {
		n = len(panels)
	}
	t.tabs = tabs[:n]
	t.panels = panels[:n]

	t.Node().SetAttribute("role", "tablist")
	for i := 0; i < n; i++ {
		tab, panel := t.tabs[i], t.panels[i]
		t.wirePair(tab, panel)
		tab.SetAttribute("role", "tab")
		panel.SetAttribute("role", "tabpanel")

		selected := i == 0
		t.project(i, selected)

		index := i
		t.tabRemoves = append(t.tabRemoves,
			tab.AddListener(dom.EventClick, func(*dom.Event) { t.Select(index) }),
			tab.AddListener(dom.EventFocus, func(*dom.Event) { t.focusWithinTabs = true }),
			tab.AddListener(dom.EventBlur, func(*dom.Event) { t.focusWithinTabs = false }),
		)
	}

	t.removeDocKey = t.doc.AddListener(dom.EventKeydown, t.onKeydown)

	t.SetActive(true)
	logging.Debug(logging.SubsystemTabs, "initialized tabs %q with %d pairs", t.Node().ID(), n)

	if !t.initedOnce {
		t.initedOnce = true
		if fn := t.opts.OnInit; fn != nil {
			root := t.Node()
			errors.Guard("tabs.onInit", func() { fn(root) })
		}
	}
}

func (t *Tabs) wirePair(tab, panel *dom.Element) {
	if panel.ID() == "" {
		id := ident.UniqueIn(t.doc, t.opts.PrefixID+"-panel")
		panel.SetID(id)
		t.generatedIDs[panel] = id
	}
	if tab.ID() == "" {
		id := ident.UniqueIn(t.doc, t.opts.PrefixID+"-tab")
		tab.SetID(id)
		t.generatedIDs[tab] = id
	}
	tab.SetAttribute(ariaControls, panel.ID())
	panel.SetAttribute(ariaLabelledBy, tab.ID())
}

// project applies the selection state of pair i: aria-selected and the
// roving tabindex on the tab, hidden-state and display on the panel.
func (t *Tabs) project(i int, selected bool) {
	tab, panel := t.tabs[i], t.panels[i]
	if selected {
		tab.SetAttribute(ariaSelected, "true")
		tab.SetAttribute("tabindex", "0")
		setHidden(panel, false)
		panel.RemoveStyle("display")
	} else {
		tab.SetAttribute(ariaSelected, "false")
		tab.SetAttribute("tabindex", "-1")
		setHidden(panel, true)
		panel.SetStyle("display", "none")
	}
}

// Select activates the tab at index i. Selecting the selected tab or an
// out-of-range index is a silent no-op.
func (t *Tabs) Select(i int) {
	if !t.Active() || i < 0 || i >= len(t.tabs) || t.SelectedIndex() == i {
		return
	}
	for j := range t.tabs {
		t.project(j, j == i)
	}
	if fn := t.opts.OnChange; fn != nil {
		tab, panel := t.tabs[i], t.panels[i]
		errors.Guard("tabs.onChange", func() { fn(tab, panel) })
	}
}

// onKeydown roves focus among the tabs: ArrowLeft/ArrowRight move with
// wraparound, Home/End jump to the ends, Enter and Space activate the
// focused tab. Arrow navigation only relocates focus.
func (t *Tabs) onKeydown(ev *dom.Event) {
	if !t.focusWithinTabs || len(t.tabs) == 0 {
		return
	}
	current := t.focusedTabIndex()
	if current < 0 {
		return
	}
	switch ev.Key {
	case dom.KeyArrowLeft:
		ev.PreventDefault()
		t.doc.Focus(t.tabs[wrapIndex(current-1, len(t.tabs))])
	case dom.KeyArrowRight:
		ev.PreventDefault()
		t.doc.Focus(t.tabs[wrapIndex(current+1, len(t.tabs))])
	case dom.KeyHome:
		ev.PreventDefault()
		t.doc.Focus(t.tabs[0])
	case dom.KeyEnd:
		ev.PreventDefault()
		t.doc.Focus(t.tabs[len(t.tabs)-1])
	case dom.KeyEnter, dom.KeySpace:
		ev.PreventDefault()
		t.Select(current)
	}
}

func (t *Tabs) focusedTabIndex() int {
	active := t.doc.ActiveElement()
	for i, tab := range t.tabs {
		if tab == active {
			return i
		}
	}
	return -1
}

// Destroy strips generated identifiers, role attributes, and ARIA state
// from every pair, detaches listeners, and resets the group. Re-entrant
// with a subsequent Init.
func (t *Tabs) Destroy() {
	if !t.Active() {
		return
	}
	for _, remove := range t.tabRemoves {
		remove()
	}
	t.tabRemoves = nil
	if t.removeDocKey != nil {
		t.removeDocKey()
		t.removeDocKey = nil
	}

	t.Node().RemoveAttribute("role")
	for i, tab := range t.tabs {
		panel := t.panels[i]
		tab.RemoveAttribute("role")
		tab.RemoveAttribute(ariaSelected)
		tab.RemoveAttribute(ariaControls)
		tab.RemoveAttribute("tabindex")
		panel.RemoveAttribute("role")
		panel.RemoveAttribute(ariaHidden)
		panel.RemoveAttribute(ariaLabelledBy)
		panel.RemoveStyle("display")
		for _, el := range []*dom.Element{tab, panel} {
			if id, ok := t.generatedIDs[el]; ok && el.ID() == id {
				el.RemoveAttribute("id")
				delete(t.generatedIDs, el)
			}
		}
	}

	t.tabs = nil
	t.panels = nil
	t.focusWithinTabs = false
	t.SetActive(false)
	logging.Debug(logging.SubsystemTabs, "destroyed tabs %q", t.Node().ID())
}

// Dispose fully tears the group down and removes its registry entry.
func (t *Tabs) Dispose() {
	if t.controller != nil {
		t.controller.Close()
	}
	t.Destroy()
	t.Unregister()
}
