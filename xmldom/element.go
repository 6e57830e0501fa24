package xmldom

// Element is a tagged element node. Attribute order and child order are
// both part of the model and must be preserved.
type Element struct {
	parent Node

	name        QName
	attrs       []*Attribute
	children    []Node
	selfClosing bool

	precedingWS string // before '<'
	openTagWS   string // before '>' or '/>'
	closeTagWS  string // between '</' and name-or-'>'
	followingWS string // after this element's own closing delimiter

	modified bool

	// origOpenTag/origCloseTag are captured only while the element is
	// unmodified; any setter that changes this element's own textual
	// state clears both (see markModified).
	origOpenTag  *string
	origCloseTag *string
}

// NewElement constructs an editor-created element, born modified with no
// captured original text. It starts self-closing ("<x/>"); the flag
// clears itself as soon as a child is attached.
func NewElement(name string) (*Element, error) {
	if !ValidName(name) {
		return nil, &InvalidXMLError{Op: "new-element", Msg: "invalid element name: " + name}
	}
	return &Element{name: ParseQName(name), selfClosing: true, modified: true}, nil
}

func (e *Element) Kind() NodeKind { return ElementNode }
func (e *Element) Parent() Node { return e.parent }
func (e *Element) Modified() bool { return e.modified }

func (e *Element) setParent(p Node) { e.parent = p }

func (e *Element) PrecedingWhitespace() string { return e.precedingWS }
func (e *Element) SetPrecedingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	e.precedingWS = ws
	e.markModified()
	return nil
}

func (e *Element) OpenTagWhitespace() string { return e.openTagWS }
func (e *Element) SetOpenTagWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	e.openTagWS = ws
	e.markModified()
	return nil
}

func (e *Element) CloseTagWhitespace() string { return e.closeTagWS }
func (e *Element) SetCloseTagWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	e.closeTagWS = ws
	e.markModified()
	return nil
}

func (e *Element) FollowingWhitespace() string { return e.followingWS }
func (e *Element) SetFollowingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	e.followingWS = ws
	return nil
}

// Name returns this element's qualified name.
func (e *Element) Name() QName { return e.name }

// SetName renames the element. Marks it modified.
func (e *Element) SetName(name string) error {
	if !ValidName(name) {
		return &InvalidXMLError{Op: "set-name", Msg: "invalid element name: " + name}
	}
	e.name = ParseQName(name)
	e.markModified()
	return nil
}

// SelfClosing reports whether the element was (or should be, once
// reconstructed) written as <x/>.
func (e *Element) SelfClosing() bool { return e.selfClosing }

// SetSelfClosing toggles the self-closing flag. Per the model invariant,
// setting it true requires the element to currently have no children.
func (e *Element) SetSelfClosing(v bool) error {
	if v && len(e.children) > 0 {
		return &InvalidXMLError{Op: "set-self-closing", Msg: "element has children, cannot be self-closing"}
	}
	e.selfClosing = v
	e.markModified()
	return nil
}

// Attributes returns the attribute sequence in document order. The
// returned slice is owned by the Element; callers must not mutate it
// directly (use SetAttribute/RemoveAttribute).
func (e *Element) Attributes() []*Attribute { return e.attrs }

// AttributeByName returns the first attribute whose qualified name
// renders to name, or nil.
func (e *Element) AttributeByName(name string) *Attribute {
	for _, a := range e.attrs {
		if a.name.String() == name {
			return a
		}
	}
	return nil
}

// Children returns this element's direct child nodes in document order.
func (e *Element) Children() []Node { return e.children }

// appendAttribute appends a parsed or constructed attribute without
// touching the modified flag; used by the parser and by SetAttribute.
func (e *Element) appendAttribute(a *Attribute) {
	e.attrs = append(e.attrs, a)
}

// appendChild appends n as the last child. Modification of a child does
// not set the parent's modified flag; used by the parser while building
// the tree and by the editor for structural insertion.
func (e *Element) appendChild(n Node) {
	if e.selfClosing {
		// a self-closing element has an empty child sequence by
		// invariant; gaining a child means it now needs a real end tag
		e.selfClosing = false
		e.markModified()
	}
	n.setParent(e)
	e.children = append(e.children, n)
}

// markModified sets the modified flag and clears the captured original
// tag text. The flag is set whenever any of the element's own textual
// state changes; captured tag text must never be replayed after that,
// since it no longer matches the model.
func (e *Element) markModified() {
	e.modified = true
	e.origOpenTag = nil
	e.origCloseTag = nil
}

// clearModified recursively clears the modified flag on this element and
// all of its descendants; used once after a successful parse.
func (e *Element) clearModified() {
	e.modified = false
	for _, c := range e.children {
		c.clearModified()
	}
}

// indexOfChild returns the position of n within e.children, or -1.
func (e *Element) indexOfChild(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// removeChildAt detaches the child at index i from e's sequence.
func (e *Element) removeChildAt(i int) Node {
	n := e.children[i]
	e.children = append(e.children[:i], e.children[i+1:]...)
	n.setParent(nil)
	return n
}

// insertChildAt splices n into e.children at position i, reparenting it.
func (e *Element) insertChildAt(i int, n Node) {
	if e.selfClosing {
		e.selfClosing = false
		e.markModified()
	}
	n.setParent(e)
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = n
}
