package showcase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-aria/aria/pkg/dom"
)

// DumpTree renders the document as an indented tree with every attribute and
// inline style each element carries, in deterministic order. The inspect
// command uses it to show the ARIA wiring a config produces.
func DumpTree(doc *dom.Document) string {
	var b strings.Builder
	dumpElement(&b, doc.Root(), 0)
	return b.String()
}

func dumpElement(b *strings.Builder, el *dom.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(el.Tag())

	for _, name := range sortedAttrNames(el) {
		fmt.Fprintf(b, " %s=%q", name, el.Attr(name))
	}
	if display := el.Style("display"); display != "" {
		fmt.Fprintf(b, " style=%q", "display:"+display)
	}
	b.WriteString(">")
	if text := el.Text(); text != "" {
		fmt.Fprintf(b, " %s", text)
	}
	b.WriteString("\n")

	for _, child := range el.Children() {
		dumpElement(b, child, depth+1)
	}
}

// attrNames lead the output; the engine-owned attributes follow
// alphabetically.
var attrNames = []string{"id", "class", "role"}

func sortedAttrNames(el *dom.Element) []string {
	var names []string
	seen := make(map[string]bool)
	for _, name := range attrNames {
		if el.HasAttribute(name) {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for _, name := range []string{
		"aria-controls", "aria-labelledby", "aria-expanded",
		"aria-hidden", "aria-selected", "tabindex", "data-animating",
		"data-scroll-locked",
	} {
		if el.HasAttribute(name) && !seen[name] {
			rest = append(rest, name)
			seen[name] = true
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
