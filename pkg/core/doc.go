// Package core provides the shared lifecycle machinery for widgets: the
// per-node instance registry, the abstract element base, and target
// resolution.
//
// # Instance Registry
//
// The registry is the single source of truth mapping a document node to its
// widget instance. Each widget family (accordion, toggle, tabs) is tracked
// independently: an accordion and a toggle attached to the same node do not
// interfere. At most one instance exists per node per family — constructing
// a widget twice against the same node returns the first instance, and the
// second construction's option overrides are silently dropped. Subclass
// setup logic should check IsNewInstance to skip re-running on the
// shared-instance path.
//
// Registries are explicit values. Most callers use the process-wide
// Default() registry; tests and embedders hosting several documents can
// create isolated ones with NewRegistry.
//
// # Abstract Element
//
// Lifecycle is the reusable base embedded by each widget variant. It holds
// the node, family, registry handle, and the new/active flags — composition
// rather than a class hierarchy.
package core
