package xmldom

// ============================================================================
// EDITOR FAÇADE
//
// These, together with Document.AppendChild and Document.SetRoot, are the
// only entry points that mutate tree structure; Element's own
// appendChild/insertChildAt/removeChildAt stay unexported so a caller can't
// splice in a node without the bookkeeping below (parent rewiring,
// attach/detach validation, indentation inference).
//
// Structural changes to a child sequence never mark the parent Element
// modified: the parent's own open/close tags are untouched by gaining or
// losing a child, and its captured tag text must keep replaying verbatim
// so that bytes outside the mutated region survive unchanged. The one
// exception, a self-closing element gaining its first child, is handled
// inside Element.insertChildAt/appendChild, where the flag genuinely is
// the element's own textual state.
// ============================================================================

// FindChild returns the first direct child Element of e whose qualified
// name renders to name, or nil.
func FindChild(e *Element, name string) *Element {
	for _, c := range e.Children() {
		if ce, ok := c.(*Element); ok && ce.Name().String() == name {
			return ce
		}
	}
	return nil
}

// FindChildren returns every direct child Element of e whose qualified name
// renders to name, in document order.
func FindChildren(e *Element, name string) []*Element {
	var out []*Element
	for _, c := range e.Children() {
		if ce, ok := c.(*Element); ok && ce.Name().String() == name {
			out = append(out, ce)
		}
	}
	return out
}

// Descendants returns every Element beneath e, in document (pre-order)
// order. e itself is not included.
func Descendants(e *Element) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(cur *Element) {
		for _, c := range cur.Children() {
			if ce, ok := c.(*Element); ok {
				out = append(out, ce)
				walk(ce)
			}
		}
	}
	walk(e)
	return out
}

// FindByNamespace returns every descendant Element of e whose resolved
// namespace URI equals nsURI and whose local name equals local, in
// document order. e itself is not considered, matching Descendants.
func FindByNamespace(e *Element, nsURI, local string) []*Element {
	var out []*Element
	for _, d := range Descendants(e) {
		if d.Name().Local == local && d.ResolvedNamespace() == nsURI {
			out = append(out, d)
		}
	}
	return out
}

// RequireChild is FindChild returning a NodeNotFoundError instead of nil
// when e has no direct child Element named name, for callers that treat a
// missing child as a failure rather than an optional result.
func RequireChild(e *Element, name string) (*Element, error) {
	if c := FindChild(e, name); c != nil {
		return c, nil
	}
	return nil, &NodeNotFoundError{Name: name}
}

// SetText removes every Text child of e and appends a single new Text node
// holding s. All Text children, including whitespace-only formatting text,
// are discarded, while Comment, ProcessingInstruction and Element children
// stay in place; use SetTextPreservingWhitespace to keep surrounding
// indentation intact.
func SetText(e *Element, s string) error {
	if e.selfClosing {
		if err := e.SetSelfClosing(false); err != nil {
			return err
		}
	}
	for i := 0; i < len(e.children); {
		if _, ok := e.children[i].(*Text); ok {
			e.removeChildAt(i)
			continue
		}
		i++
	}
	e.appendChild(NewText(s))
	return nil
}

// SetTextPreservingWhitespace replaces the first non-whitespace-only Text
// child of e with one holding s, leaving every other child (including
// leading/trailing indentation Text nodes and any Comment/PI/child
// Element) untouched. If e has no non-whitespace Text child, it falls back
// to SetText, which removes any whitespace-only Text children and appends a
// single new Text node.
func SetTextPreservingWhitespace(e *Element, s string) error {
	for _, c := range e.children {
		if t, ok := c.(*Text); ok && !t.IsWhitespaceOnly() {
			t.SetValue(s)
			return nil
		}
	}
	return SetText(e, s)
}

// InsertBefore inserts n as ref's immediately preceding sibling under ref's
// current parent. If n carries no explicit PrecedingWhitespace of its own
// (the common case for an editor-created node), one is inferred so the
// insertion lines up with its new siblings (see whitespace.go).
func InsertBefore(ref Node, n Node, cfg *Config) error {
	if n.Parent() != nil {
		return &InvalidXMLError{Op: "insert-before", Msg: "node is already attached to a parent"}
	}
	parent, idx, err := locate(ref)
	if err != nil {
		return err
	}
	applyInferredIndent(parent, n, cfg)
	parent.insertChildAt(idx, n)
	return nil
}

// InsertAfter inserts n as ref's immediately following sibling under ref's
// current parent, with the same indentation inference as InsertBefore.
func InsertAfter(ref Node, n Node, cfg *Config) error {
	if n.Parent() != nil {
		return &InvalidXMLError{Op: "insert-after", Msg: "node is already attached to a parent"}
	}
	parent, idx, err := locate(ref)
	if err != nil {
		return err
	}
	applyInferredIndent(parent, n, cfg)
	parent.insertChildAt(idx+1, n)
	return nil
}

// AppendChild inserts n as parent's new last child, with the same
// indentation inference InsertBefore/InsertAfter apply.
func AppendChild(parent *Element, n Node, cfg *Config) error {
	if n.Parent() != nil {
		return &InvalidXMLError{Op: "append-child", Msg: "node is already attached to a parent"}
	}
	applyInferredIndent(parent, n, cfg)
	parent.insertChildAt(len(parent.children), n)
	return nil
}

// Remove detaches n from its parent. It is a no-op error if n is already
// detached (including an unattached Document, which has no parent at all).
func Remove(n Node) error {
	switch p := n.Parent().(type) {
	case *Element:
		i := p.indexOfChild(n)
		if i < 0 {
			return &InvalidXMLError{Op: "remove", Msg: "node not found among parent's children"}
		}
		p.removeChildAt(i)
		return nil
	case *Document:
		i := p.indexOfChild(n)
		if i < 0 {
			return &InvalidXMLError{Op: "remove", Msg: "node not found among document's children"}
		}
		p.removeChildAt(i)
		return nil
	default:
		return &InvalidXMLError{Op: "remove", Msg: "node has no parent to remove it from"}
	}
}

// SetAttribute sets name's value on e to value, using cfg's
// DefaultQuoteStyle for a newly created attribute and leaving an existing
// attribute's quote style untouched. e is marked modified.
func SetAttribute(e *Element, name, value string, cfg *Config) error {
	if a := e.AttributeByName(name); a != nil {
		a.SetValue(value)
		e.markModified()
		return nil
	}
	a, err := NewAttribute(name, value, cfg.DefaultQuoteStyle)
	if err != nil {
		return err
	}
	e.appendAttribute(a)
	e.markModified()
	return nil
}

// SetAttributeWithQuote behaves like SetAttribute but pins the quote style
// explicitly, for both newly created and pre-existing attributes.
func SetAttributeWithQuote(e *Element, name, value string, quote QuoteStyle) error {
	if a := e.AttributeByName(name); a != nil {
		a.SetValue(value)
		a.SetQuote(quote)
		e.markModified()
		return nil
	}
	a, err := NewAttribute(name, value, quote)
	if err != nil {
		return err
	}
	e.appendAttribute(a)
	e.markModified()
	return nil
}

// RemoveAttribute deletes the attribute named name from e, if present. It
// is a no-op if e has no such attribute.
func RemoveAttribute(e *Element, name string) error {
	for i, a := range e.attrs {
		if a.name.String() == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.markModified()
			return nil
		}
	}
	return nil
}

// ToXML serializes doc with cfg (or DefaultConfig if cfg is nil); a thin
// alias over Serialize kept here so callers working through the editor
// façade don't need to import both names to round-trip an edit.
func ToXML(doc *Document, cfg *Config) string {
	return Serialize(doc, cfg)
}

// ----------------------------------------------------------------------
// internal plumbing
// ----------------------------------------------------------------------

// childContainer is the subset of Element/Document's structural helpers
// the splice operations need; both satisfy it without exporting any of it.
type childContainer interface {
	indexOfChild(Node) int
	insertChildAt(int, Node)
}

// locate returns ref's parent and ref's index within that parent's child
// sequence.
func locate(ref Node) (childContainer, int, error) {
	switch p := ref.Parent().(type) {
	case *Element:
		i := p.indexOfChild(ref)
		if i < 0 {
			return nil, 0, &InvalidXMLError{Op: "locate", Msg: "reference node not found among parent's children"}
		}
		return p, i, nil
	case *Document:
		i := p.indexOfChild(ref)
		if i < 0 {
			return nil, 0, &InvalidXMLError{Op: "locate", Msg: "reference node not found among document's children"}
		}
		return p, i, nil
	default:
		return nil, 0, &InvalidXMLError{Op: "locate", Msg: "reference node has no parent to insert relative to"}
	}
}


// applyInferredIndent gives n a PrecedingWhitespace inferred from parent's
// existing layout, but only when n has none of its own already (an editor
// caller who explicitly called SetPrecedingWhitespace before inserting is
// left alone) and n is a kind that carries one (Element, Comment, or
// ProcessingInstruction; a bare Text node inserted directly is assumed to
// be deliberately unindented, since indentation between siblings is itself
// modeled as Text). Nothing is inferred when parent is a Document rather
// than an Element.
func applyInferredIndent(parent childContainer, n Node, cfg *Config) {
	if n.PrecedingWhitespace() != "" {
		return
	}
	pe, ok := parent.(*Element)
	if !ok {
		return
	}
	switch n.(type) {
	case *Element, *Comment, *ProcessingInstruction:
		ws := inferIndentation(pe, cfg)
		if ws == "" {
			// nothing to add; don't touch the node, so a re-inserted
			// parsed node keeps its captured tag text
			return
		}
		_ = n.SetPrecedingWhitespace(ws)
	}
}
