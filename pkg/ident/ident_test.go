package ident_test

import (
	"testing"

	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/ident"
)

func TestToken_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := ident.Token()
		if tok == "" {
			t.Fatal("empty token")
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}

func TestUniqueIn_ProbesPastCollisions(t *testing.T) {
	doc := dom.NewDocument()
	for _, id := range []string{"acc-1", "acc-2", "acc-4"} {
		el := doc.CreateElement("div")
		el.SetID(id)
		doc.Root().AppendChild(el)
	}

	if got := ident.UniqueIn(doc, "acc"); got != "acc-3" {
		t.Errorf("got %q, want acc-3", got)
	}

	el := doc.CreateElement("div")
	el.SetID("acc-3")
	doc.Root().AppendChild(el)

	if got := ident.UniqueIn(doc, "acc"); got != "acc-5" {
		t.Errorf("got %q, want acc-5", got)
	}
}

func TestUniqueIn_EmptyPrefix(t *testing.T) {
	doc := dom.NewDocument()
	if got := ident.UniqueIn(doc, ""); got != "aria-1" {
		t.Errorf("got %q, want aria-1", got)
	}
}

func TestUniqueToken_CarriesPrefix(t *testing.T) {
	doc := dom.NewDocument()
	id := ident.UniqueToken(doc, "toggle")
	if len(id) <= len("toggle-") || id[:7] != "toggle-" {
		t.Errorf("got %q, want toggle- prefix", id)
	}
}
