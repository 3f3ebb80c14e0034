package dom

import "strings"

// The selector language is the small subset the widget engine needs:
// tag names, #id, .class, [attr] and [attr=value] conditions, compounds of
// those, and the descendant combinator (whitespace). Anything else fails to
// parse, and a failed parse matches nothing rather than erroring (selector
// misses degrade to no-ops).

type attrCond struct {
	name  string
	value string
	exact bool
}

type simpleSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrCond
}

func (s simpleSelector) matches(el *Element) bool {
	if s.tag != "" && el.tag != s.tag {
		return false
	}
	if s.id != "" && el.ID() != s.id {
		return false
	}
	for _, c := range s.classes {
		if !el.HasClass(c) {
			return false
		}
	}
	for _, a := range s.attrs {
		v, ok := el.Attribute(a.name)
		if !ok {
			return false
		}
		if a.exact && v != a.value {
			return false
		}
	}
	return true
}

// parseSelector parses a descendant-combinator chain of compound selectors.
func parseSelector(sel string) ([]simpleSelector, bool) {
	parts := strings.Fields(sel)
	if len(parts) == 0 {
		return nil, false
	}
	chain := make([]simpleSelector, 0, len(parts))
	for _, part := range parts {
		s, ok := parseCompound(part)
		if !ok {
			return nil, false
		}
		chain = append(chain, s)
	}
	return chain, true
}

func parseCompound(s string) (simpleSelector, bool) {
	var out simpleSelector
	i := 0
	// Leading tag name.
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	out.tag = lower(s[:i])
	for i < len(s) {
		switch s[i] {
		case '#':
			j := i + 1
			for j < len(s) && isNameByte(s[j]) {
				j++
			}
			if j == i+1 {
				return out, false
			}
			out.id = s[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(s) && isNameByte(s[j]) {
				j++
			}
			if j == i+1 {
				return out, false
			}
			out.classes = append(out.classes, s[i+1:j])
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return out, false
			}
			body := s[i+1 : i+j]
			i += j + 1
			cond, ok := parseAttrCond(body)
			if !ok {
				return out, false
			}
			out.attrs = append(out.attrs, cond)
		default:
			return out, false
		}
	}
	if out.tag == "" && out.id == "" && len(out.classes) == 0 && len(out.attrs) == 0 {
		return out, false
	}
	return out, true
}

func parseAttrCond(body string) (attrCond, bool) {
	if body == "" {
		return attrCond{}, false
	}
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		return attrCond{name: body}, true
	}
	name := body[:eq]
	value := strings.Trim(body[eq+1:], `"'`)
	if name == "" {
		return attrCond{}, false
	}
	return attrCond{name: name, value: value, exact: true}, true
}

func isNameByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// queryAll walks the subtree under scope in document order (pre-order,
// excluding scope itself) collecting elements that match the selector chain.
// limit < 0 means unbounded.
func queryAll(scope *Element, sel string, limit int) []*Element {
	chain, ok := parseSelector(sel)
	if !ok {
		return nil
	}
	var out []*Element
	var walk func(el *Element)
	walk = func(el *Element) {
		if limit >= 0 && len(out) >= limit {
			return
		}
		if matchesChain(el, scope, chain) {
			out = append(out, el)
			if limit >= 0 && len(out) >= limit {
				return
			}
		}
		for _, child := range el.children {
			walk(child)
		}
	}
	for _, child := range scope.children {
		walk(child)
	}
	return out
}

// matchesChain checks the last compound against el and earlier compounds
// against successively higher ancestors, stopping at scope.
func matchesChain(el, scope *Element, chain []simpleSelector) bool {
	last := len(chain) - 1
	if !chain[last].matches(el) {
		return false
	}
	idx := last - 1
	for n := el.parent; n != nil && n != scope && idx >= 0; n = n.parent {
		if chain[idx].matches(n) {
			idx--
		}
	}
	return idx < 0
}
