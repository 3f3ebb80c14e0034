package widgets

import (
	"fmt"
	"time"

	"github.com/go-aria/aria/pkg/anim"
	"github.com/go-aria/aria/pkg/core"
	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/ident"
	"github.com/go-aria/aria/pkg/logging"
	"github.com/go-aria/aria/pkg/responsive"
	"github.com/go-aria/aria/pkg/scrolllock"
)

// FamilyToggle is the registry family name for toggle disclosures.
const FamilyToggle = "toggle"

// ToggleOptions configures a toggle disclosure. Options are merged over
// ToggleDefaults at construction and are immutable afterwards.
type ToggleOptions struct {
	// Registry tracks the instance. Nil means core.Default().
	Registry *core.Registry

	// Target resolves the disclosed element: a selector scoped to the
	// trigger's parent, or a *dom.Element. When nil, the element referenced
	// by the trigger's existing aria-controls attribute is used. Init fails
	// when neither resolves and no OnClick callback is configured.
	Target any

	// IsOpened starts the disclosure open.
	IsOpened bool

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

	// CloseOnBlur schedules a close shortly after the trigger loses focus.
	CloseOnBlur bool

	// BlurDelay is the close delay after blur, giving focus time to land
	// inside the target. Zero means ToggleDefaults.BlurDelay.
	BlurDelay time.Duration

	// CloseOnEscPress closes the open disclosure when Escape is pressed
	// anywhere in the document, unless another handler consumed the key.
	CloseOnEscPress bool

	// BodyScrollLock holds a scroll lock on the document while the
	// disclosure is open.
	BodyScrollLock bool

	// ScrollLockMediaQuery additionally gates lock acquisition. Release is
	// never gated, so a viewport change between open and close cannot
	// leave a stuck lock.
	ScrollLockMediaQuery responsive.MediaQuery

	// ScrollLock overrides the scroll-lock port. Nil means a lock on the
	// document body.
	ScrollLock scrolllock.Locker

	// MediaQuery gates the widget's active state. Nil means always active.
	MediaQuery responsive.MediaQuery

	// PrefixID namespaces generated identifiers. Zero means
	// ToggleDefaults.PrefixID.
	PrefixID string

	// OnClick is a raw click callback invoked before the open/close logic.
	// A toggle with OnClick needs no resolvable target.
	OnClick func(*dom.Event)

	// OnOpen is invoked with the trigger and target after an actual
	// closed-to-open transition.
	OnOpen func(trigger, target *dom.Element)

	// OnClose is the symmetric counterpart of OnOpen.
	OnClose func(trigger, target *dom.Element)
}

// ToggleDefaults are the toggle family defaults.
var ToggleDefaults = ToggleOptions{
	AnimationDuration: anim.DefaultDuration,
	BlurDelay:         200 * time.Millisecond,
	PrefixID:          "toggle",
}

// Toggle is a single trigger/target disclosure. Its open state is projected
// entirely onto the trigger's aria-expanded and the target's aria-hidden
// attributes; the only state held beyond that is whether listeners are
// currently attached.
type Toggle struct {
	core.Lifecycle

	doc  *dom.Document
	opts ToggleOptions

	target     *dom.Element
	controller *responsive.Controller

	initialized bool
	// wiredIDs records that init generated the controls/labelled-by pair,
	// so destroy strips only wiring this widget added.
	wiredIDs          bool
	generatedTargetID string
	generatedNodeID   string

	removeClick     func()
	removeBlur      func()
	removeEsc       func()
	cancelBlurClose func()
}

func mergeToggleOptions(doc *dom.Document, opts ToggleOptions) ToggleOptions {
	if opts.Registry == nil {
		opts.Registry = core.Default()
	}
	if opts.AnimationDuration <= 0 {
		opts.AnimationDuration = ToggleDefaults.AnimationDuration
	}
	if opts.BlurDelay <= 0 {
		opts.BlurDelay = ToggleDefaults.BlurDelay
	}
	if opts.PrefixID == "" {
		opts.PrefixID = ToggleDefaults.PrefixID
	}
	if opts.Animator == nil {
		if opts.HasAnimation {
			opts.Animator = anim.NewSlide(doc.Scheduler())
		} else {
			opts.Animator = anim.Immediate{}
		}
	}
	if opts.ScrollLock == nil && opts.BodyScrollLock {
		opts.ScrollLock = scrolllock.New(doc.Root())
	}
	return opts
}

// NewToggle returns the toggle disclosure for the trigger node, creating it
// when none exists. A pre-existing instance is returned as-is and opts is
// dropped; check IsNewInstance to tell the two cases apart.
func NewToggle(doc *dom.Document, node *dom.Element, opts ToggleOptions) *Toggle {
	opts = mergeToggleOptions(doc, opts)
	t, isNew := core.Construct(opts.Registry, FamilyToggle, node, opts, func() *Toggle {
		return &Toggle{
			Lifecycle: core.NewLifecycle(opts.Registry, FamilyToggle, node),
			doc:       doc,
			opts:      opts,
		}
	})
	if !isNew {
		t.MarkShared()
		return t
	}
	t.controller = responsive.NewController(responsive.Config{
		Query:     opts.MediaQuery,
		Scheduler: doc.Scheduler(),
		Init:      func() { t.Init() },
		Destroy:   t.Destroy,
		Active:    func() bool { return t.initialized },
	})
	return t
}

// GetToggle looks up the toggle instance for the target without
// construction side effects. reg nil means core.Default().
func GetToggle(reg *core.Registry, doc *dom.Document, target any) (*Toggle, bool) {
	if reg == nil {
		reg = core.Default()
	}
	return core.Instance[*Toggle](reg, FamilyToggle, doc, target)
}

// DestroyToggle tears down and unregisters every toggle the target resolves
// to. Targets without an instance are skipped; the call is idempotent.
func DestroyToggle(reg *core.Registry, doc *dom.Document, target any) {
	if reg == nil {
		reg = core.Default()
	}
	for _, node := range core.ResolveAll(doc, target) {
		if t, ok := core.Instance[*Toggle](reg, FamilyToggle, doc, node); ok {
			t.Dispose()
		}
	}
}

// Options returns the resolved configuration.
func (t *Toggle) Options() ToggleOptions { return t.opts }

// Target returns the disclosed element, or nil before a successful init.
func (t *Toggle) Target() *dom.Element { return t.target }

// Init resolves the target, wires ARIA relationships, and attaches
// listeners. It reports false — and attaches nothing — when no target
// resolves and no OnClick callback is configured; that is a configuration
// error for the caller to detect, not a crash. Init on an initialized
// toggle is a no-op reporting true.
func (t *Toggle) Init() bool {
	if t.initialized {
		return true
	}

	t.target = t.resolveTarget()
	if t.target == nil && t.opts.OnClick == nil {
		errors.Report(&errors.WidgetError{
			Op:     "toggle.Init",
			Kind:   errors.KindConfig,
			Widget: FamilyToggle,
			Err:    fmt.Errorf("no resolvable target and no click callback for <%s id=%q>", t.Node().Tag(), t.Node().ID()),
		})
		return false
	}

	if t.target != nil {
		t.wire()
		// Start from the closed projection; an IsOpened toggle transitions
		// to open below, leaving the hidden-state matching the option.
		setHidden(t.target, true)
		setExpanded(t.Node(), false)
		t.target.SetStyle("display", "none")
	}

	t.removeClick = t.Node().AddListener(dom.EventClick, t.onClick)
	if t.opts.CloseOnBlur {
		t.removeBlur = t.Node().AddListener(dom.EventBlur, t.onBlur)
	}
	if t.opts.CloseOnEscPress {
		t.removeEsc = t.doc.AddListener(dom.EventKeydown, t.onKeydown)
	}

	t.initialized = true
	if t.opts.IsOpened {
		t.Open()
	}
	logging.Debug(logging.SubsystemToggle, "initialized toggle %q", t.Node().ID())
	return true
}

// resolveTarget resolves the disclosed element: the configured target
// (selector scoped to the trigger's parent, or element), else the element
// referenced by a pre-existing aria-controls attribute.
func (t *Toggle) resolveTarget() *dom.Element {
	switch target := t.opts.Target.(type) {
	case string:
		scope := t.Node().Parent()
		if scope == nil {
			scope = t.doc.Root()
		}
		if el := scope.QuerySelector(target); el != nil {
			return el
		}
	case *dom.Element:
		if target != nil {
			return target
		}
	}
	if controls := t.Node().Attr(ariaControls); controls != "" {
		return t.doc.ElementByID(controls)
	}
	return nil
}

// wire generates and assigns the controls/labelled-by identifier pair, but
// only when the trigger does not already declare one, so init is idempotent
// against pre-existing markup.
func (t *Toggle) wire() {
	if t.Node().HasAttribute(ariaControls) {
		return
	}
	if t.target.ID() == "" {
		t.generatedTargetID = ident.UniqueToken(t.doc, t.opts.PrefixID)
		t.target.SetID(t.generatedTargetID)
	}
	if t.Node().ID() == "" {
		t.generatedNodeID = ident.UniqueToken(t.doc, t.opts.PrefixID+"-label")
		t.Node().SetID(t.generatedNodeID)
	}
	t.Node().SetAttribute(ariaControls, t.target.ID())
	t.target.SetAttribute(ariaLabelledBy, t.Node().ID())
	t.wiredIDs = true
}

// IsOpen reports whether the disclosure is currently open. The answer is
// read from the ARIA-exposed state, which is the source of truth.
func (t *Toggle) IsOpen() bool {
	return t.initialized && t.target != nil && !isHidden(t.target)
}

// Open transitions the disclosure to open. The logical state is applied
// immediately; the animation is cosmetic and never blocks the transition.
// Opening an open (or uninitialized, or target-less) toggle is a no-op.
func (t *Toggle) Open() {
	if !t.initialized || t.target == nil || t.IsOpen() {
		return
	}
	setHidden(t.target, false)
	setExpanded(t.Node(), true)
	t.opts.Animator.SlideDown(t.target, t.opts.AnimationDuration, nil)

	if t.opts.BodyScrollLock {
		if t.opts.ScrollLockMediaQuery == nil || t.opts.ScrollLockMediaQuery.Matches() {
			t.opts.ScrollLock.Acquire(t.Node())
		}
	}
	t.invoke("toggle.onOpen", t.opts.OnOpen)
}

// Close transitions the disclosure to closed and releases the scroll lock
// unconditionally — release is not gated by the lock's media query, so a
// viewport change while open cannot leave a stuck lock. Closing a closed
// toggle is a no-op.
func (t *Toggle) Close() {
	if !t.initialized || t.target == nil || !t.IsOpen() {
		return
	}
	setHidden(t.target, true)
	setExpanded(t.Node(), false)
	t.opts.Animator.SlideUp(t.target, t.opts.AnimationDuration, nil)

	if t.opts.BodyScrollLock {
		t.opts.ScrollLock.Release(t.Node())
	}
	t.invoke("toggle.onClose", t.opts.OnClose)
}

func (t *Toggle) onClick(ev *dom.Event) {
	if t.opts.OnClick != nil {
		cb := t.opts.OnClick
		errors.Guard("toggle.onClick", func() { cb(ev) })
	}
	if t.target == nil {
		return
	}
	if t.IsOpen() {
		t.Close()
	} else {
		t.Open()
	}
}

// onBlur schedules a close after a short delay rather than closing
// synchronously, so focus gets a chance to land inside the target. At fire
// time the state is re-checked: if focus returned to the trigger or moved
// into the target, the close is abandoned.
func (t *Toggle) onBlur(*dom.Event) {
	if t.cancelBlurClose != nil {
		t.cancelBlurClose()
	}
	t.cancelBlurClose = t.doc.Scheduler().After(t.opts.BlurDelay, func() {
		t.cancelBlurClose = nil
		if active := t.doc.ActiveElement(); active != nil {
			if t.Node().Contains(active) || (t.target != nil && t.target.Contains(active)) {
				return
			}
		}
		t.Close()
	})
}

// onKeydown closes the disclosure on Escape by synthesizing a click on the
// trigger, but only while the target is visible and no other handler has
// consumed the key.
func (t *Toggle) onKeydown(ev *dom.Event) {
	if ev.Key != dom.KeyEscape || ev.DefaultPrevented() {
		return
	}
	if t.target == nil || isHidden(t.target) {
		return
	}
	t.doc.Click(t.Node())
}

// Destroy strips the ARIA wiring added by init, detaches listeners, and
// returns the toggle to uninitialized. Safe to call from any state; a
// subsequent breakpoint re-entry re-initializes.
func (t *Toggle) Destroy() {
	if !t.initialized {
		return
	}
	if t.cancelBlurClose != nil {
		t.cancelBlurClose()
		t.cancelBlurClose = nil
	}
	for _, remove := range []func(){t.removeClick, t.removeBlur, t.removeEsc} {
		if remove != nil {
			remove()
		}
	}
	t.removeClick, t.removeBlur, t.removeEsc = nil, nil, nil

	if t.opts.BodyScrollLock {
		t.opts.ScrollLock.Release(t.Node())
	}

	t.Node().RemoveAttribute(ariaExpanded)
	if t.target != nil {
		t.target.RemoveAttribute(ariaHidden)
		t.target.RemoveStyle("display")
	}
	if t.wiredIDs {
		t.Node().RemoveAttribute(ariaControls)
		if t.target != nil {
			t.target.RemoveAttribute(ariaLabelledBy)
			if t.generatedTargetID != "" && t.target.ID() == t.generatedTargetID {
				t.target.RemoveAttribute("id")
			}
		}
		if t.generatedNodeID != "" && t.Node().ID() == t.generatedNodeID {
			t.Node().RemoveAttribute("id")
		}
		t.wiredIDs = false
		t.generatedTargetID = ""
		t.generatedNodeID = ""
	}

	t.target = nil
	t.initialized = false
	logging.Debug(logging.SubsystemToggle, "destroyed toggle %q", t.Node().ID())
}

// Dispose fully tears the widget down: breakpoint subscription, listeners,
// wiring, and registry entry. The instance must not be reused afterwards.
func (t *Toggle) Dispose() {
	if t.controller != nil {
		t.controller.Close()
	}
	t.Destroy()
	t.Unregister()
}

func (t *Toggle) invoke(op string, fn func(trigger, target *dom.Element)) {
	if fn == nil {
		return
	}
	trigger, target := t.Node(), t.target
	errors.Guard(op, func() { fn(trigger, target) })
}
