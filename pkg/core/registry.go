package core

import (
	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/logging"
)

type registryKey struct {
	node   *dom.Element
	family string
}

type registryEntry struct {
	instance any
	options  any
}

// Registry maps (node, widget family) pairs to widget instances and their
// resolved options. The zero value is not usable; create registries with
// NewRegistry or use Default.
type Registry struct {
	entries map[registryKey]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]registryEntry)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry. All widget constructors fall
// back to it when no explicit registry is configured.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns the instance registered for the node under the given
// family, or nil when absent.
func (r *Registry) Lookup(node *dom.Element, family string) any {
	e, ok := r.entries[registryKey{node: node, family: family}]
	if !ok {
		return nil
	}
	return e.instance
}

// Options returns the resolved options stored with the node's instance, or
// nil when absent.
func (r *Registry) Options(node *dom.Element, family string) any {
	e, ok := r.entries[registryKey{node: node, family: family}]
	if !ok {
		return nil
	}
	return e.options
}

// Store registers an instance for the node under the given family,
// replacing any previous entry.
func (r *Registry) Store(node *dom.Element, family string, instance, options any) {
	r.entries[registryKey{node: node, family: family}] = registryEntry{
		instance: instance,
		options:  options,
	}
	logging.Debug(logging.SubsystemRegistry, "stored %s instance for <%s id=%q>", family, node.Tag(), node.ID())
}

// Remove drops the node's entry for the given family. Removing an absent
// entry is a no-op.
func (r *Registry) Remove(node *dom.Element, family string) {
	delete(r.entries, registryKey{node: node, family: family})
}

// Len returns the number of registered instances across all families.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Construct resolves the singleton instance of family for node. When an
// instance already exists it is returned as-is and opts is discarded (the
// documented sharp edge: a second construction's overrides never reach the
// first instance). Otherwise build is called, and the result is stored
// together with the resolved options.
//
// The second return value reports whether the instance was newly built.
func Construct[T any](r *Registry, family string, node *dom.Element, opts any, build func() T) (T, bool) {
	if existing := r.Lookup(node, family); existing != nil {
		return existing.(T), false
	}
	instance := build()
	r.Store(node, family, instance, opts)
	return instance, true
}

// Instance is a pure lookup with no construction side effects. The target
// may be a selector string, a *dom.Element, or a []*dom.Element; the first
// resolved node's instance is returned. The second return value is false
// when nothing resolves or no instance is registered.
func Instance[T any](r *Registry, family string, doc *dom.Document, target any) (T, bool) {
	var zero T
	node := Resolve(doc, target)
	if node == nil {
		return zero, false
	}
	existing := r.Lookup(node, family)
	if existing == nil {
		return zero, false
	}
	inst, ok := existing.(T)
	if !ok {
		return zero, false
	}
	return inst, true
}
