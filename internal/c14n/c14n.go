// Package c14n implements a minimal, C14N-flavored canonical form of an
// xmldom element tree, used only to compare two trees for semantic
// equivalence after a structural mutation (e.g. an editor test asserting
// that attribute order or intervening whitespace changed but meaning did
// not). It is deliberately not exported from the public xmldom package:
// the library's serializer already has one job, minimal-change emission,
// and canonical-form comparison is a test concern, not a document-shape
// opinion the library imposes on callers.
package c14n

import (
	"bytes"
	"sort"
	"strings"

	"github.com/arturoeanton/xmltrip/xmldom"
)

// Canonicalize renders e in canonical form: attributes sorted
// alphabetically by qualified name, no self-closing tags, whitespace-only
// text nodes dropped, and text content minimally escaped. Two trees that
// differ only in attribute order, quote style, or formatting whitespace
// canonicalize to the same bytes.
func Canonicalize(e *xmldom.Element) []byte {
	var buf bytes.Buffer
	writeElement(&buf, e)
	return buf.Bytes()
}

// Equivalent reports whether a and b canonicalize to the same form.
func Equivalent(a, b *xmldom.Element) bool {
	return bytes.Equal(Canonicalize(a), Canonicalize(b))
}

func writeElement(buf *bytes.Buffer, e *xmldom.Element) {
	buf.WriteByte('<')
	buf.WriteString(e.Name().String())

	attrs := append([]*xmldom.Attribute(nil), e.Attributes()...)
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Name().String() < attrs[j].Name().String()
	})
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name().String())
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(a.Value()))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	for _, c := range e.Children() {
		switch n := c.(type) {
		case *xmldom.Element:
			writeElement(buf, n)
		case *xmldom.Text:
			if !n.IsWhitespaceOnly() {
				buf.WriteString(escapeText(n.Value()))
			}
		}
	}

	buf.WriteString("</")
	buf.WriteString(e.Name().String())
	buf.WriteByte('>')
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
	return r.Replace(s)
}
