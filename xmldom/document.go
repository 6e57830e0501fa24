package xmldom

import (
	"fmt"
	"strings"
)

// Document is the root of the tree. It owns an optional XML declaration,
// an optional DOCTYPE, and an ordered sequence of top-level child nodes of
// which at most one may be an Element (the root).
type Document struct {
	children []Node

	// hasDecl reports whether an <?xml ... ?> declaration was present (or
	// has been added via SetVersion/SetEncoding/SetStandalone).
	hasDecl bool

	// declVersion/declEncoding/declStandalone are parsed out of the
	// captured declaration string at parse time; they are also the write
	// path for SetVersion/SetEncoding/SetStandalone.
	declVersion    string
	declEncoding   string
	declStandalone string  // "yes", "no", or "" if absent
	declRaw        *string // captured verbatim "<?xml ...?>" text; nil once modified

	doctype    string // verbatim "<!DOCTYPE ...>" text, or "" if absent
	hasDoctype bool
	doctypeWS  string // whitespace preceding the DOCTYPE

	// doctypeChildIndex records how many top-level children had already
	// been appended at the moment the DOCTYPE was parsed, so the
	// serializer can splice it back in at the right position even though
	// it lives in a dedicated field rather than the children sequence.
	doctypeChildIndex int

	modified bool
}

// NewDocument constructs an empty Document with no declaration, no
// DOCTYPE, and no children.
func NewDocument() *Document {
	return &Document{modified: true}
}

func (d *Document) Kind() NodeKind { return DocumentNode }
func (d *Document) Parent() Node { return nil }
func (d *Document) Modified() bool { return d.modified }
func (d *Document) setParent(Node) {}
func (d *Document) PrecedingWhitespace() string { return "" }
func (d *Document) SetPrecedingWhitespace(string) error {
	return &InvalidXMLError{Op: "set-whitespace", Msg: "a Document has no preceding whitespace slot"}
}

func (d *Document) clearModified() {
	d.modified = false
	for _, c := range d.children {
		c.clearModified()
	}
}

// Children returns the Document's top-level child nodes in order.
func (d *Document) Children() []Node { return d.children }

// Root returns the single Element child, or nil if none has been added.
func (d *Document) Root() *Element {
	for _, c := range d.children {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

// SetRoot installs e as the document's root element: it replaces an
// existing root at the same child position, or appends when the document
// has none. The replaced root is detached and may be reused.
func (d *Document) SetRoot(e *Element) error {
	if e.Parent() != nil {
		return &InvalidXMLError{Op: "set-root", Msg: "element is already attached to a parent"}
	}
	for i, c := range d.children {
		if old, ok := c.(*Element); ok {
			old.setParent(nil)
			e.setParent(d)
			d.children[i] = e
			d.modified = true
			return nil
		}
	}
	return d.AppendChild(e)
}

// AppendChild adds n as the last top-level child. It fails with
// InvalidXMLError if n is an Element and the Document already has a root,
// or if n is already attached to a different parent.
func (d *Document) AppendChild(n Node) error {
	if _, ok := n.(*Element); ok && d.Root() != nil {
		return &InvalidXMLError{Op: "append-child", Msg: "document already has a root element"}
	}
	if n.Parent() != nil {
		return &InvalidXMLError{Op: "append-child", Msg: "node is already attached to a parent"}
	}
	n.setParent(d)
	d.children = append(d.children, n)
	return nil
}

func (d *Document) indexOfChild(n Node) int {
	for i, c := range d.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (d *Document) removeChildAt(i int) Node {
	n := d.children[i]
	d.children = append(d.children[:i], d.children[i+1:]...)
	n.setParent(nil)
	return n
}

func (d *Document) insertChildAt(i int, n Node) {
	n.setParent(d)
	d.children = append(d.children, nil)
	copy(d.children[i+1:], d.children[i:])
	d.children[i] = n
}

// HasDeclaration reports whether this document has an <?xml ... ?>
// declaration.
func (d *Document) HasDeclaration() bool { return d.hasDecl }

// Version, Encoding, and Standalone return the structured fields parsed
// out of the declaration.
func (d *Document) Version() string { return d.declVersion }
func (d *Document) Encoding() string { return d.declEncoding }
func (d *Document) Standalone() string { return d.declStandalone }

// SetVersion, SetEncoding, and SetStandalone mutate the structured
// declaration fields and invalidate the captured raw declaration text, so
// an edited declaration is reconstructed rather than replayed verbatim.
func (d *Document) SetVersion(v string) {
	d.hasDecl = true
	d.declVersion = v
	d.declRaw = nil
	d.modified = true
}

func (d *Document) SetEncoding(v string) {
	d.hasDecl = true
	d.declEncoding = v
	d.declRaw = nil
	d.modified = true
}

func (d *Document) SetStandalone(v string) {
	d.hasDecl = true
	d.declStandalone = v
	d.declRaw = nil
	d.modified = true
}

// Doctype returns the verbatim "<!DOCTYPE ...>" text, and true, or ("",
// false) if the document has none.
func (d *Document) Doctype() (string, bool) {
	if !d.hasDoctype {
		return "", false
	}
	return d.doctype, true
}

// DoctypeWhitespace returns the whitespace that preceded the DOCTYPE in
// the source, so it can round-trip without a spurious newline at emit
// time.
func (d *Document) DoctypeWhitespace() string { return d.doctypeWS }

// SetDoctype replaces the verbatim DOCTYPE text.
func (d *Document) SetDoctype(raw string) {
	d.hasDoctype = true
	d.doctype = raw
	d.modified = true
}

func (d *Document) declString() string {
	if d.declRaw != nil {
		return *d.declRaw
	}
	var b strings.Builder
	b.WriteString(`<?xml version="`)
	if d.declVersion == "" {
		b.WriteString("1.0")
	} else {
		b.WriteString(d.declVersion)
	}
	b.WriteByte('"')
	if d.declEncoding != "" {
		fmt.Fprintf(&b, ` encoding="%s"`, d.declEncoding)
	}
	if d.declStandalone != "" {
		fmt.Fprintf(&b, ` standalone="%s"`, d.declStandalone)
	}
	b.WriteString("?>")
	return b.String()
}
