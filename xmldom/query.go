package xmldom

import (
	"strconv"
	"strings"
)

// ============================================================================
// XPATH-LITE QUERY ENGINE
//
// A read-only convenience layered on top of FindChild/FindChildren/
// Descendants, which remain the canonical navigation primitives.
// Query/QueryAll never mutate the tree.
//
// Path syntax:
//   a/b/c            descend by child name at each segment
//   a/b[2]           1-indexed pick among b's matching a given name
//   a/b[@id=x]       filter by an attribute's exact value
//   //title          deep search: e itself and every element below it whose
//                    qualified or local name is "title"
// ============================================================================

// QueryAll evaluates path against e and returns every matching Element, in
// document order. An empty path returns e itself, and a "//" search
// includes e when its name matches.
func QueryAll(e *Element, path string) []*Element {
	if path == "" {
		return []*Element{e}
	}
	if strings.HasPrefix(path, "//") {
		return findAllRecursively(e, strings.TrimPrefix(path, "//"))
	}

	candidates := []*Element{e}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		name, index, attrName, attrValue := parseQuerySegment(segment)

		var next []*Element
		for _, cand := range candidates {
			matches := FindChildren(cand, name)
			if attrName != "" {
				var filtered []*Element
				for _, m := range matches {
					if a := m.AttributeByName(attrName); a != nil && a.Value() == attrValue {
						filtered = append(filtered, m)
					}
				}
				matches = filtered
			}
			if index > 0 {
				if index <= len(matches) {
					matches = matches[index-1 : index]
				} else {
					matches = nil
				}
			}
			next = append(next, matches...)
		}
		candidates = next
	}
	return candidates
}

// Query returns the first Element QueryAll would return, and true, or
// (nil, false) if nothing matches.
func Query(e *Element, path string) (*Element, bool) {
	matches := QueryAll(e, path)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// findAllRecursively collects e itself (if its name matches) and every
// descendant whose name matches, in document order.
func findAllRecursively(e *Element, name string) []*Element {
	var out []*Element
	if e.Name().String() == name || e.Name().Local == name {
		out = append(out, e)
	}
	for _, d := range Descendants(e) {
		if d.Name().String() == name || d.Name().Local == name {
			out = append(out, d)
		}
	}
	return out
}

// parseQuerySegment splits a path segment like "book[2]" or "book[@id=5]"
// into its element name and an optional 1-indexed position or
// attribute-equality filter.
func parseQuerySegment(segment string) (name string, index int, attrName, attrValue string) {
	open := strings.IndexByte(segment, '[')
	if open < 0 {
		return segment, 0, "", ""
	}
	name = segment[:open]
	close := strings.IndexByte(segment[open:], ']')
	if close < 0 {
		return name, 0, "", ""
	}
	inner := segment[open+1 : open+close]

	if strings.HasPrefix(inner, "@") {
		if eq := strings.IndexByte(inner, '='); eq >= 0 {
			attrName = strings.TrimPrefix(inner[:eq], "@")
			attrValue = strings.Trim(inner[eq+1:], `"'`)
		}
		return name, 0, attrName, attrValue
	}
	if n, err := strconv.Atoi(inner); err == nil {
		return name, n, "", ""
	}
	return name, 0, "", ""
}
