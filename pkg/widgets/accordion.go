package widgets

import (
	"time"

	"github.com/go-aria/aria/pkg/anim"
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/ident"
	"github.com/go-aria/aria/pkg/logging"
	"github.com/go-aria/aria/pkg/responsive"
)

// FamilyAccordion is the registry family name for accordion groups.
const FamilyAccordion = "accordion"

// AccordionOptions configures an accordion group. Options are merged over
// AccordionDefaults at construction and are immutable afterwards.
type AccordionOptions struct {
	// Registry tracks the instance. Nil means core.Default().
	Registry *core.Registry

	// AllowMultiple permits more than one open panel.
	AllowMultiple bool

	// ClosedDefault starts every panel closed. It implies ForceExpand
	// false, since "always one open" is unsatisfiable when everything
	// starts closed.
	ClosedDefault bool

	// ForceExpand keeps at least one panel open: closing the only open
	// panel is a no-op unless AllowMultiple lets another panel stay open.
	ForceExpand bool

	// HasAnimation routes open/close through the animation port instead of
	// an immediate style toggle.
	HasAnimation bool

	// AnimationDuration is the slide duration. Zero means
	// anim.DefaultDuration.
	AnimationDuration time.Duration

	// Animator overrides the animation port. Nil means a Slide animator on
	// the document scheduler when HasAnimation is set, an immediate toggle
	// otherwise.
	Animator anim.Animator

	// MediaQuery gates the group's active state. Nil means always active.
	MediaQuery responsive.MediaQuery

	// PanelSelector scopes panels to the group root. Zero means
	// AccordionDefaults.PanelSelector.
	PanelSelector string

	// TriggerSelector scopes triggers to the group root. Zero means
	// AccordionDefaults.TriggerSelector.
	TriggerSelector string

	// PrefixID namespaces generated identifiers. Zero means
	// AccordionDefaults.PrefixID.
	PrefixID string

	// OnOpen is invoked with the trigger and panel after an actual
	// closed-to-open transition. Panels that were already open never fire
	// a spurious callback.
	OnOpen func(trigger, panel *dom.Element)

	// OnClose is the symmetric counterpart of OnOpen.
	OnClose func(trigger, panel *dom.Element)

	// OnInit is invoked with the group root exactly once, on the first
	// transition into the active state.
	OnInit func(root *dom.Element)

	// OnReachBreakpoint is invoked with the current match exactly once per
	// breakpoint crossing, before the init/destroy decision for the same
	// notification. Requires query text with a parseable numeric
	// breakpoint; otherwise crossing tracking is skipped.
	OnReachBreakpoint func(matches bool)
}

// AccordionDefaults are the accordion family defaults.
var AccordionDefaults = AccordionOptions{
	AnimationDuration: anim.DefaultDuration,
	PanelSelector:     ".accordion__panel",
	TriggerSelector:   ".accordion__trigger",
	PrefixID:          "accordion",
}

// Accordion coordinates a group of trigger/panel pairs sharing exclusivity
// and keyboard-navigation rules. Open/closed truth lives in each panel's
// ARIA-exposed state; the group itself tracks only whether it is active,
// which panel opened most recently (informational), and whether keyboard
// focus sits on one of its triggers.
type Accordion struct {
	core.Lifecycle

	doc  *dom.Document
	opts AccordionOptions

	triggers []*dom.Element
	panels   []*dom.Element

	// activePanel is the most recently opened panel, for informational
	// purposes only; it owns no open/closed truth.
	activePanel *dom.Element

	// focusWithinTriggers gates the shared keydown handler so the group's
	// keyboard navigation never hijacks unrelated focus.
	focusWithinTriggers bool

	generatedIDs map[*dom.Element]string

	removeDocKey   func()
	triggerRemoves []func()
	controller     *responsive.Controller
	initedOnce     bool
}

func mergeAccordionOptions(doc *dom.Document, opts AccordionOptions) AccordionOptions {
	if opts.Registry == nil {
		opts.Registry = core.Default()
	}
	if opts.AnimationDuration <= 0 {
		opts.AnimationDuration = AccordionDefaults.AnimationDuration
	}
	if opts.PanelSelector == "" {
		opts.PanelSelector = AccordionDefaults.PanelSelector
	}
	if opts.TriggerSelector == "" {
		opts.TriggerSelector = AccordionDefaults.TriggerSelector
	}
	if opts.PrefixID == "" {
		opts.PrefixID = AccordionDefaults.PrefixID
	}
	if opts.ClosedDefault {
		opts.ForceExpand = false
	}
	if opts.Animator == nil {
		if opts.HasAnimation {
			opts.Animator = anim.NewSlide(doc.Scheduler())
		} else {
			opts.Animator = anim.Immediate{}
		}
	}
	return opts
}

// NewAccordion returns the accordion group for the root node, creating it
// when none exists. A pre-existing instance is returned as-is and opts is
// dropped; check IsNewInstance to tell the two cases apart.
func NewAccordion(doc *dom.Document, root *dom.Element, opts AccordionOptions) *Accordion {
	opts = mergeAccordionOptions(doc, opts)
	a, isNew := core.Construct(opts.Registry, FamilyAccordion, root, opts, func() *Accordion {
		return &Accordion{
			Lifecycle:    core.NewLifecycle(opts.Registry, FamilyAccordion, root),
			doc:          doc,
			opts:         opts,
			generatedIDs: make(map[*dom.Element]string),
		}
	})
	if !isNew {
		a.MarkShared()
		return a
	}
	cfg := responsive.Config{
		Query:     opts.MediaQuery,
		Scheduler: doc.Scheduler(),
		Init:      a.Init,
		Destroy:   a.Destroy,
		Active:    a.Active,
	}
	if onCrossing := opts.OnReachBreakpoint; onCrossing != nil {
		cfg.OnReachBreakpoint = func(matches bool) {
			errors.Guard("accordion.onReachBreakpoint", func() { onCrossing(matches) })
		}
	}
	a.controller = responsive.NewController(cfg)
	return a
}

// GetAccordion looks up the accordion instance for the target without
// construction side effects. reg nil means core.Default().
func GetAccordion(reg *core.Registry, doc *dom.Document, target any) (*Accordion, bool) {
	if reg == nil {
		reg = core.Default()
	}
	return core.Instance[*Accordion](reg, FamilyAccordion, doc, target)
}

// DestroyAccordion tears down and unregisters every accordion the target
// resolves to. Targets without an instance are skipped; idempotent.
func DestroyAccordion(reg *core.Registry, doc *dom.Document, target any) {
	if reg == nil {
		reg = core.Default()
	}
	for _, node := range core.ResolveAll(doc, target) {
		if a, ok := core.Instance[*Accordion](reg, FamilyAccordion, doc, node); ok {
			a.Dispose()
		}
	}
}

// Options returns the resolved configuration.
func (a *Accordion) Options() AccordionOptions { return a.opts }

// Triggers returns the group's triggers in document order. Valid while the
// group is active.
func (a *Accordion) Triggers() []*dom.Element { return a.triggers }

// Panels returns the group's panels in document order. Valid while the
// group is active.
func (a *Accordion) Panels() []*dom.Element { return a.panels }

// ActivePanel returns the most recently opened panel, or nil. Informational
// only: the ARIA attributes own the open/closed truth.
func (a *Accordion) ActivePanel() *dom.Element { return a.activePanel }

// Init queries the trigger/panel pairs, assigns collision-probed identifier
// pairs, projects the initial layout (first panel open unless
// ClosedDefault), and attaches per-trigger listeners plus one shared
// document-level keydown listener. Re-entering init while active is a
// no-op. OnInit fires only on the first transition into the active state.
func (a *Accordion) Init() {
	if a.Active() {
		return
	}

	triggers := a.Node().QuerySelectorAll(a.opts.TriggerSelector)
	panels := a.Node().QuerySelectorAll(a.opts.PanelSelector)
	n := len(triggers)
	if len(panels) < n {
		n = len(panels)
	}
	a.triggers = triggers[:n]
	a.panels = panels[:n]

	for i := 0; i < n; i++ {
		trigger, panel := a.triggers[i], a.panels[i]
		a.wirePair(trigger, panel)

		expanded := i == 0 && !a.opts.ClosedDefault
		setExpanded(trigger, expanded)
		setHidden(panel, !expanded)
		if expanded {
			panel.RemoveStyle("display")
			a.activePanel = panel
		} else {
			panel.SetStyle("display", "none")
		}

		a.triggerRemoves = append(a.triggerRemoves,
			trigger.AddListener(dom.EventClick, a.clickHandler(trigger, panel)),
			trigger.AddListener(dom.EventFocus, func(*dom.Event) { a.focusWithinTriggers = true }),
			trigger.AddListener(dom.EventBlur, func(*dom.Event) { a.focusWithinTriggers = false }),
		)
	}

	// One keydown listener per group, registered once per init and removed
	// once per destroy; repeated init/destroy cycles must not stack them.
	a.removeDocKey = a.doc.AddListener(dom.EventKeydown, a.onKeydown)

	a.SetActive(true)
	logging.Debug(logging.SubsystemAccordion, "initialized accordion %q with %d pairs", a.Node().ID(), n)

	if !a.initedOnce {
		a.initedOnce = true
		if fn := a.opts.OnInit; fn != nil {
			root := a.Node()
			errors.Guard("accordion.onInit", func() { fn(root) })
		}
	}
}

// wirePair assigns a document-wide unique identifier pair relating the
// trigger and panel. Probing continues past taken indexes, so independent
// groups sharing a prefix never collide.
func (a *Accordion) wirePair(trigger, panel *dom.Element) {
	if panel.ID() == "" {
		id := ident.UniqueIn(a.doc, a.opts.PrefixID)
		panel.SetID(id)
		a.generatedIDs[panel] = id
	}
	if trigger.ID() == "" {
		id := ident.UniqueIn(a.doc, a.opts.PrefixID+"-trigger")
		trigger.SetID(id)
		a.generatedIDs[trigger] = id
	}
	trigger.SetAttribute(ariaControls, panel.ID())
	panel.SetAttribute(ariaLabelledBy, trigger.ID())
}

// clickHandler implements the activation matrix:
//
//   - an expanded trigger collapses when ForceExpand is off, or when
//     ForceExpand and AllowMultiple are both on and more than one panel is
//     open;
//   - the sole open trigger under ForceExpand is a no-op;
//   - a collapsed trigger first collapses every other open panel when
//     AllowMultiple is off, then expands.
func (a *Accordion) clickHandler(trigger, panel *dom.Element) dom.Handler {
	return func(*dom.Event) {
		if !a.Active() {
			return
		}
		if isExpanded(trigger) {
			canClose := !a.opts.ForceExpand ||
				(a.opts.AllowMultiple && a.expandedCount() > 1)
			if canClose {
				a.Close(panel)
			}
			return
		}
		if !a.opts.AllowMultiple {
			for i, other := range a.panels {
				if other != panel && isExpanded(a.triggers[i]) {
					a.Close(other)
				}
			}
		}
		a.Open(panel)
	}
}

func (a *Accordion) expandedCount() int {
	count := 0
	for _, trigger := range a.triggers {
		if isExpanded(trigger) {
			count++
		}
	}
	return count
}

// Open expands the panel: its trigger's expanded-state and the panel's
// hidden-state flip immediately, the cosmetic slide follows, and once the
// panel is visible the first focusable descendant receives focus (after the
// animation's completion when animated, synchronously otherwise). Opening
// an open panel — or a panel outside the active group — is a silent no-op.
func (a *Accordion) Open(panel *dom.Element) {
	i := a.indexOf(panel)
	if i < 0 || isExpanded(a.triggers[i]) {
		return
	}
	trigger := a.triggers[i]
	setExpanded(trigger, true)
	setHidden(panel, false)
	a.activePanel = panel

	a.opts.Animator.SlideDown(panel, a.opts.AnimationDuration, func() {
		if f := panel.FirstFocusableDescendant(); f != nil {
			a.doc.Focus(f)
		}
	})
	a.invoke("accordion.onOpen", a.opts.OnOpen, trigger, panel)
}

// Close collapses the panel. Purely visual and state: focus never moves.
// Closing a closed panel is a silent no-op with no callback.
func (a *Accordion) Close(panel *dom.Element) {
	i := a.indexOf(panel)
	if i < 0 || !isExpanded(a.triggers[i]) {
		return
	}
	trigger := a.triggers[i]
	setExpanded(trigger, false)
	setHidden(panel, true)
	if a.activePanel == panel {
		a.activePanel = nil
	}

	a.opts.Animator.SlideUp(panel, a.opts.AnimationDuration, nil)
	a.invoke("accordion.onClose", a.opts.OnClose, trigger, panel)
}

func (a *Accordion) indexOf(panel *dom.Element) int {
	if !a.Active() || panel == nil {
		return -1
	}
	for i, p := range a.panels {
		if p == panel {
			return i
		}
	}
	return -1
}

// onKeydown implements roving focus among the group's triggers. It runs
// only while focus sits on one of this group's triggers: ArrowUp/ArrowDown
// move with wraparound, Home/End jump to the ends, and all four suppress
// the default action. Navigation only relocates focus — it never opens or
// closes a panel.
func (a *Accordion) onKeydown(ev *dom.Event) {
	if !a.focusWithinTriggers || len(a.triggers) == 0 {
		return
	}
	current := a.focusedTriggerIndex()
	if current < 0 {
		return
	}
	var next int
	switch ev.Key {
	case dom.KeyArrowUp:
		next = wrapIndex(current-1, len(a.triggers))
	case dom.KeyArrowDown:
		next = wrapIndex(current+1, len(a.triggers))
	case dom.KeyHome:
		next = 0
	case dom.KeyEnd:
		next = len(a.triggers) - 1
	default:
		return
	}
	ev.PreventDefault()
	a.doc.Focus(a.triggers[next])
}

func (a *Accordion) focusedTriggerIndex() int {
	active := a.doc.ActiveElement()
	for i, trigger := range a.triggers {
		if trigger == active {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// Destroy strips generated identifiers and ARIA attributes from every pair,
// detaches the per-trigger and shared document listeners, and resets the
// group state. Re-entrant with a subsequent Init — the group may cycle as
// the viewport crosses its breakpoint arbitrarily many times. Destroying an
// inactive group is a no-op.
func (a *Accordion) Destroy() {
	if !a.Active() {
		return
	}
	for _, remove := range a.triggerRemoves {
		remove()
	}
	a.triggerRemoves = nil
	if a.removeDocKey != nil {
		a.removeDocKey()
		a.removeDocKey = nil
	}

	for i, trigger := range a.triggers {
		panel := a.panels[i]
		trigger.RemoveAttribute(ariaExpanded)
		trigger.RemoveAttribute(ariaControls)
		panel.RemoveAttribute(ariaHidden)
		panel.RemoveAttribute(ariaLabelledBy)
		panel.RemoveStyle("display")
		for _, el := range []*dom.Element{trigger, panel} {
			if id, ok := a.generatedIDs[el]; ok && el.ID() == id {
				el.RemoveAttribute("id")
				delete(a.generatedIDs, el)
			}
		}
	}

	a.triggers = nil
	a.panels = nil
	a.activePanel = nil
	a.focusWithinTriggers = false
	a.SetActive(false)
	logging.Debug(logging.SubsystemAccordion, "destroyed accordion %q", a.Node().ID())
}

// Dispose fully tears the group down: breakpoint subscription, listeners,
// wiring, and registry entry. The instance must not be reused afterwards.
func (a *Accordion) Dispose() {
	if a.controller != nil {
		a.controller.Close()
	}
	a.Destroy()
	a.Unregister()
}

func (a *Accordion) invoke(op string, fn func(trigger, panel *dom.Element), trigger, panel *dom.Element) {
	if fn == nil {
		return
	}
	errors.Guard(op, func() { fn(trigger, panel) })
}
