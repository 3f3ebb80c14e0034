package uitest

import "github.com/go-aria/aria/pkg/dom"

// AccordionFixture is prebuilt accordion markup attached to a document.
type AccordionFixture struct {
	Root     *dom.Element
	Triggers []*dom.Element
	Panels   []*dom.Element
}

// BuildAccordion appends a group root with n trigger/panel pairs to the
// document body. Each panel contains a focusable link so focus-on-open
// behavior is observable.
func BuildAccordion(doc *dom.Document, n int) AccordionFixture {
	root := doc.CreateElement("div")
	root.AddClass("accordion")
	doc.Root().AppendChild(root)

	f := AccordionFixture{Root: root}
	for i := 0; i < n; i++ {
		trigger := doc.CreateElement("button")
		trigger.AddClass("accordion__trigger")
		root.AppendChild(trigger)

		panel := doc.CreateElement("div")
		panel.AddClass("accordion__panel")
		link := doc.CreateElement("a")
		panel.AppendChild(link)
		root.AppendChild(panel)

		f.Triggers = append(f.Triggers, trigger)
		f.Panels = append(f.Panels, panel)
	}
	return f
}

// ToggleFixture is prebuilt disclosure markup attached to a document.
type ToggleFixture struct {
	Wrapper *dom.Element
	Trigger *dom.Element
	Target  *dom.Element
}

// BuildToggle appends a wrapper holding a trigger button and its sibling
// target to the document body.
func BuildToggle(doc *dom.Document) ToggleFixture {
	wrapper := doc.CreateElement("div")
	doc.Root().AppendChild(wrapper)

	trigger := doc.CreateElement("button")
	trigger.AddClass("toggle__trigger")
	wrapper.AppendChild(trigger)

	target := doc.CreateElement("div")
	target.AddClass("toggle__target")
	link := doc.CreateElement("a")
	target.AppendChild(link)
	wrapper.AppendChild(target)

	return ToggleFixture{Wrapper: wrapper, Trigger: trigger, Target: target}
}

// TabsFixture is prebuilt tab group markup attached to a document.
type TabsFixture struct {
	Root   *dom.Element
	Tabs   []*dom.Element
	Panels []*dom.Element
}

// BuildTabs appends a tab group root with n tab/panel pairs to the
// document body.
func BuildTabs(doc *dom.Document, n int) TabsFixture {
	root := doc.CreateElement("div")
	root.AddClass("tabs")
	doc.Root().AppendChild(root)

	f := TabsFixture{Root: root}
	for i := 0; i < n; i++ {
		tab := doc.CreateElement("button")
		tab.AddClass("tabs__tab")
		root.AppendChild(tab)
	}
	for i := 0; i < n; i++ {
		panel := doc.CreateElement("div")
		panel.AddClass("tabs__panel")
		root.AppendChild(panel)
	}
	f.Tabs = root.QuerySelectorAll(".tabs__tab")
	f.Panels = root.QuerySelectorAll(".tabs__panel")
	return f
}
