package xmldom

import "strings"

// ============================================================================
// QUALIFIED-NAME RESOLVER
// ============================================================================

// NSXML and NSXMLNS are the two namespace bindings every element carries
// implicitly and that cannot be rebound by a document.
const (
	NSXML   = "http://www.w3.org/XML/1998/namespace"
	NSXMLNS = "http://www.w3.org/2000/xmlns/"
)

// QName is a qualified name: either a bare local name, or a prefix:local
// pair. Splitting is always on the first colon.
type QName struct {
	Prefix string
	Local  string
}

// ParseQName splits s on its first colon.
func ParseQName(s string) QName {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return QName{Prefix: s[:i], Local: s[i+1:]}
	}
	return QName{Local: s}
}

// String renders the qualified name back to its prefix:local (or bare
// local) textual form.
func (q QName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// ResolvePrefix walks from e through its ancestors looking for a
// xmlns:prefix declaration (or, when prefix is "", a bare xmlns default
// namespace declaration). The "xml" and "xmlns" prefixes always resolve to
// their built-in bindings without consulting the document. An empty string
// is returned when
// nothing resolves the prefix (including the unprefixed default namespace
// case, which is legitimately "no namespace").
func ResolvePrefix(e *Element, prefix string) string {
	attrName := "xmlns"
	if prefix != "" {
		switch prefix {
		case "xml":
			return NSXML
		case "xmlns":
			return NSXMLNS
		}
		attrName = "xmlns:" + prefix
	}

	for cur := e; cur != nil; cur = parentElement(cur) {
		if a := cur.AttributeByName(attrName); a != nil {
			return a.Value()
		}
	}
	return ""
}

// ResolvedNamespace returns the namespace URI bound to e's own qualified
// name's prefix, per ResolvePrefix.
func (e *Element) ResolvedNamespace() string {
	return ResolvePrefix(e, e.name.Prefix)
}

// parentElement returns n's parent Element, or nil if the parent is not an
// Element (e.g. the Document, or no parent at all).
func parentElement(n *Element) *Element {
	p := n.Parent()
	if p == nil {
		return nil
	}
	if pe, ok := p.(*Element); ok {
		return pe
	}
	return nil
}
