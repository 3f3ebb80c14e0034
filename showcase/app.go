package showcase

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/logging"
	"github.com/go-aria/aria/pkg/responsive"
	"github.com/go-aria/aria/pkg/widgets"
)

// frameInterval is how often the demo advances its scheduler, bounding blur
// delays and throttle windows to one frame of latency.
const frameInterval = 50 * time.Millisecond

type frameMsg time.Time

// Model is the bubbletea program driving the widget engine: terminal key
// presses become document events, terminal resizes become viewport
// notifications, and View projects the live ARIA state back as text.
type Model struct {
	cfg      Config
	doc      *dom.Document
	sched    *frameScheduler
	viewport *responsive.Viewport
	registry *core.Registry

	accordion *widgets.Accordion
	toggle    *widgets.Toggle
	tabGroup  *widgets.Tabs

	accTriggers []*dom.Element
	accPanels   []*dom.Element
	togTrigger  *dom.Element
	togTarget   *dom.Element
	tabButtons  []*dom.Element
	tabPanels   []*dom.Element

	width, height int
	quitting      bool
}

// NewModel builds the demo document from the config and constructs the three
// widget families on it.
func NewModel(cfg Config) *Model {
	m := &Model{
		cfg:      cfg,
		doc:      dom.NewDocument(),
		sched:    newFrameScheduler(),
		registry: core.NewRegistry(),
		width:    80,
		height:   24,
	}
	m.doc.SetScheduler(m.sched)
	m.viewport = responsive.NewViewport(m.width*cfg.PxPerColumn, m.height)

	m.buildAccordion()
	m.buildToggle()
	m.buildTabs()

	logging.Info(logging.SubsystemShowcase, "showcase built: %d sections, %d tabs",
		len(cfg.Accordion.Sections), len(cfg.Tabs.Sections))
	return m
}

// Document exposes the live document, for the inspect command and tests.
func (m *Model) Document() *dom.Document { return m.doc }

// Viewport exposes the viewport observable.
func (m *Model) Viewport() *responsive.Viewport { return m.viewport }

func (m *Model) buildAccordion() {
	root := m.doc.CreateElement("div")
	root.AddClass("accordion")
	m.doc.Root().AppendChild(root)

	for _, s := range m.cfg.Accordion.Sections {
		trigger := m.doc.CreateElement("button")
		trigger.AddClass("accordion__trigger")
		trigger.SetText(s.Title)
		root.AppendChild(trigger)

		panel := m.doc.CreateElement("div")
		panel.AddClass("accordion__panel")
		panel.SetText(s.Body)
		root.AppendChild(panel)

		m.accTriggers = append(m.accTriggers, trigger)
		m.accPanels = append(m.accPanels, panel)
	}

	opts := widgets.AccordionOptions{
		Registry:      m.registry,
		AllowMultiple: m.cfg.Accordion.AllowMultiple,
		ClosedDefault: m.cfg.Accordion.ClosedDefault,
		ForceExpand:   m.cfg.Accordion.ForceExpand,
	}
	if q := m.cfg.Accordion.MediaQuery; q != "" {
		opts.MediaQuery = responsive.MustQuery(m.viewport, q)
	}
	m.accordion = widgets.NewAccordion(m.doc, root, opts)
}

func (m *Model) buildToggle() {
	wrapper := m.doc.CreateElement("div")
	m.doc.Root().AppendChild(wrapper)

	m.togTrigger = m.doc.CreateElement("button")
	m.togTrigger.SetText(m.cfg.Toggle.Label)
	wrapper.AppendChild(m.togTrigger)

	m.togTarget = m.doc.CreateElement("div")
	m.togTarget.SetText(m.cfg.Toggle.Body)
	wrapper.AppendChild(m.togTarget)

	m.toggle = widgets.NewToggle(m.doc, m.togTrigger, widgets.ToggleOptions{
		Registry:        m.registry,
		Target:          m.togTarget,
		IsOpened:        m.cfg.Toggle.IsOpened,
		CloseOnEscPress: m.cfg.Toggle.CloseOnEscPress,
	})
}

func (m *Model) buildTabs() {
	root := m.doc.CreateElement("div")
	root.AddClass("tabs")
	m.doc.Root().AppendChild(root)

	for _, s := range m.cfg.Tabs.Sections {
		tab := m.doc.CreateElement("button")
		tab.AddClass("tabs__tab")
		tab.SetText(s.Title)
		root.AppendChild(tab)
		m.tabButtons = append(m.tabButtons, tab)
	}
	for _, s := range m.cfg.Tabs.Sections {
		panel := m.doc.CreateElement("div")
		panel.AddClass("tabs__panel")
		panel.SetText(s.Body)
		root.AppendChild(panel)
		m.tabPanels = append(m.tabPanels, panel)
	}

	m.tabGroup = widgets.NewTabs(m.doc, root, widgets.TabsOptions{Registry: m.registry})
}

// focusables returns every element the demo cycles through with Tab, in
// layout order. Inactive widgets contribute nothing.
func (m *Model) focusables() []*dom.Element {
	var els []*dom.Element
	if m.accordion.Active() {
		els = append(els, m.accTriggers...)
	}
	els = append(els, m.togTrigger)
	els = append(els, m.tabButtons...)
	return els
}

func (m *Model) cycleFocus(backward bool) {
	els := m.focusables()
	if len(els) == 0 {
		return
	}
	current := -1
	for i, el := range els {
		if el == m.doc.ActiveElement() {
			current = i
			break
		}
	}
	step := 1
	if backward {
		step = -1
	}
	next := (current + step + len(els)) % len(els)
	m.doc.Focus(els[next])
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model. Key presses are translated into document
// events; the widgets react through their own listeners.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.sched.step(frameInterval)
		return m, tick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Resize(m.width*m.cfg.PxPerColumn, m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.cycleFocus(false)
		case "shift+tab":
			m.cycleFocus(true)
		case "up":
			m.doc.DispatchKey(dom.KeyArrowUp)
		case "down":
			m.doc.DispatchKey(dom.KeyArrowDown)
		case "left":
			m.doc.DispatchKey(dom.KeyArrowLeft)
		case "right":
			m.doc.DispatchKey(dom.KeyArrowRight)
		case "home":
			m.doc.DispatchKey(dom.KeyHome)
		case "end":
			m.doc.DispatchKey(dom.KeyEnd)
		case "esc":
			m.doc.DispatchKey(dom.KeyEscape)
		case "enter", " ":
			if active := m.doc.ActiveElement(); active != nil {
				m.doc.Click(active)
			}
		}
		return m, nil
	}
	return m, nil
}

// Run starts the showcase program on the alternate screen.
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
