package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/dom"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	focusedStyle  = lipgloss.NewStyle().Reverse(true)
	expandedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(4)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tabOnStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model. Everything rendered here is read back from the
// document's ARIA state; the model keeps no open/closed booleans of its own.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cfg.Title))
	b.WriteString("\n\n")

	m.viewAccordion(&b)
	b.WriteString("\n")
	m.viewToggle(&b)
	b.WriteString("\n")
	m.viewTabs(&b)

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"viewport %dpx · tab: focus · arrows: rove · enter: activate · esc: close · q: quit",
		m.viewport.Width())))
	return b.String()
}

func (m *Model) viewAccordion(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Accordion"))
	b.WriteString("\n")
	if !m.accordion.Active() {
		b.WriteString(mutedStyle.Render("  (inactive at this width — widen the terminal)"))
		b.WriteString("\n")
		return
	}
	for i, trigger := range m.accTriggers {
		expanded := trigger.Attr("aria-expanded") == "true"
		marker := "▸"
		if expanded {
			marker = "▾"
		}
		line := fmt.Sprintf("  %s %s", marker, trigger.Text())
		if expanded {
			line = expandedStyle.Render(line)
		}
		if m.doc.ActiveElement() == trigger {
			line = focusedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if visible(m.accPanels[i]) {
			b.WriteString(bodyStyle.Render(m.accPanels[i].Text()))
			b.WriteString("\n")
		}
	}
}

func (m *Model) viewToggle(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Disclosure"))
	b.WriteString("\n")
	open := m.toggle.IsOpen()
	marker := "▸"
	if open {
		marker = "▾"
	}
	line := fmt.Sprintf("  %s %s", marker, m.togTrigger.Text())
	if m.doc.ActiveElement() == m.togTrigger {
		line = focusedStyle.Render(line)
	}
	b.WriteString(line)
	b.WriteString("\n")
	if visible(m.togTarget) {
		b.WriteString(bodyStyle.Render(m.togTarget.Text()))
		b.WriteString("\n")
	}
}

func (m *Model) viewTabs(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Tabs"))
	b.WriteString("\n  ")
	for i, tab := range m.tabButtons {
		label := tab.Text()
		if tab.Attr("aria-selected") == "true" {
			label = tabOnStyle.Render(label)
		}
		if m.doc.ActiveElement() == tab {
			label = focusedStyle.Render(label)
		}
		b.WriteString(label)
		if i < len(m.tabButtons)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, panel := range m.tabPanels {
		if visible(panel) {
			b.WriteString(bodyStyle.Render(panel.Text()))
			b.WriteString("\n")
		}
	}
}

// visible reports whether a panel is shown: not ARIA-hidden and not carrying
// the display:none fallback.
func visible(el *dom.Element) bool {
	return el.Attr("aria-hidden") != "true" && el.Style("display") != "none"
}
