// Package ident generates identifiers for wiring ARIA relationships.
//
// Identifiers must be unique across the whole document, not merely within a
// widget group, because independent groups can share a page. Token returns a
// random token; UniqueIn and UniqueToken additionally probe the document's
// id index until a free id is found.
package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/go-aria/aria/pkg/dom"
)

// Token returns a short random identifier fragment. It never fails.
func Token() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")[:12]
}

// UniqueIn returns an id of the form "prefix-N" that no element in doc
// currently carries. Probing continues past taken indexes: if prefix-1 is
// in use, prefix-2 is tried, and so on.
func UniqueIn(doc *dom.Document, prefix string) string {
	if prefix == "" {
		prefix = "aria"
	}
	for i := 1; ; i++ {
		id := fmt.Sprintf("%s-%d", prefix, i)
		if !doc.HasID(id) {
			return id
		}
	}
}

// UniqueToken returns an id of the form "prefix-token" that no element in
// doc currently carries. Collisions are vanishingly rare but re-probed
// anyway.
func UniqueToken(doc *dom.Document, prefix string) string {
	if prefix == "" {
		prefix = "aria"
	}
	for {
		id := prefix + "-" + Token()
		if !doc.HasID(id) {
			return id
		}
	}
}
