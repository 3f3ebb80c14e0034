// Package widgets provides the accessible interactive widgets: the
// accordion group controller, the toggle disclosure, and tabs.
//
// Widgets attach behavior and ARIA semantics to markup that already exists
// in a document; they never render markup themselves. Construction is
// singleton-per-node: building a widget twice against the same node returns
// the first instance, and the second construction's options are dropped.
//
//	acc := widgets.NewAccordion(doc, root, widgets.AccordionOptions{
//	    AllowMultiple: false,
//	    MediaQuery:    query, // nil means always active
//	    OnOpen: func(trigger, panel *dom.Element) {
//	        // ...
//	    },
//	})
//
// # Lifecycle
//
// Each widget cycles between inactive and active as its media query flips:
// init attaches listeners and ARIA wiring, destroy strips them. The cycle
// can repeat arbitrarily many times; destroy followed by init produces the
// same wiring as a single fresh init.
//
// # State model
//
// Open/closed truth lives in the ARIA attributes the widgets project onto
// the document (aria-expanded on triggers, aria-hidden on panels) — the
// attributes are the wire format accessibility tooling observes. Logical
// state is always applied synchronously before a cosmetic animation is
// requested.
//
// # Error policy
//
// Nothing here throws. Unusable configuration makes init report false and
// the widget stays inactive; lookup and selector misses degrade to no-ops;
// panics in consumer callbacks are recovered and reported through
// pkg/errors.
package widgets
