package core

import "github.com/go-aria/aria/pkg/dom"

// Lifecycle is the abstract element base shared by every widget family.
// Widgets embed it to gain the node handle, the registry link, and the
// new/active flags. It carries no widget-specific state.
type Lifecycle struct {
	node     *dom.Element
	registry *Registry
	family   string
	isNew    bool
	active   bool
}

// NewLifecycle creates the base for a freshly constructed widget.
func NewLifecycle(registry *Registry, family string, node *dom.Element) Lifecycle {
	return Lifecycle{
		node:     node,
		registry: registry,
		family:   family,
		isNew:    true,
	}
}

// Node returns the root node this widget is attached to.
func (l *Lifecycle) Node() *dom.Element { return l.node }

// Registry returns the registry tracking this widget.
func (l *Lifecycle) Registry() *Registry { return l.registry }

// Family returns the widget family name.
func (l *Lifecycle) Family() string { return l.family }

// IsNewInstance reports whether this widget was built by the most recent
// construction, as opposed to being returned from the registry. Setup logic
// must be skipped on the shared-instance path.
func (l *Lifecycle) IsNewInstance() bool { return l.isNew }

// MarkShared flags the instance as returned-from-registry so a subsequent
// IsNewInstance call reports false.
func (l *Lifecycle) MarkShared() { l.isNew = false }

// Active reports whether the widget currently has its listeners and ARIA
// wiring attached. It flips true on init and false on destroy, potentially
// many times as the viewport crosses the configured breakpoint.
func (l *Lifecycle) Active() bool { return l.active }

// SetActive records an init/destroy transition.
func (l *Lifecycle) SetActive(active bool) { l.active = active }

// Unregister removes this widget's registry entry. Idempotent.
func (l *Lifecycle) Unregister() {
	if l.registry != nil {
		l.registry.Remove(l.node, l.family)
	}
}
