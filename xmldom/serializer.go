package xmldom

import "strings"

// ============================================================================
// SERIALIZER
//
// Rule E (emit-original): if a node is unmodified and has a captured
// original textual form, emit it verbatim.
// Rule R (reconstruct): otherwise, rebuild the node's textual form from
// its model state.
//
// The choice is made per node, not per subtree: an unmodified Element with
// modified descendants still applies Rule E to its own open/close tags and
// recurses into children, each of which makes its own E-or-R decision.
// ============================================================================

// writer is a small append-only sink; kept as its own type (rather than a
// bare *strings.Builder) so the serializer call sites read as domain
// operations instead of raw builder calls.
type writer struct {
	b strings.Builder
}

func (w *writer) WriteString(s string) { w.b.WriteString(s) }
func (w *writer) WriteByte(b byte) { w.b.WriteByte(b) }
func (w *writer) String() string { return w.b.String() }

// Serialize renders doc per Rule E / Rule R using cfg (or DefaultConfig if
// cfg is nil). When cfg.PrettyPrint is true, the whole tree is
// reformatted regardless of modified flags, which is an explicit opt-in
// that sacrifices the round-trip property.
func Serialize(doc *Document, cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := &writer{}
	if cfg.PrettyPrint {
		serializePretty(w, doc, cfg)
		return w.String()
	}
	doc.serialize(w, cfg)
	return w.String()
}

// SerializeElement renders a single Element fragment per Rule E / Rule R,
// without requiring it to be wrapped in a Document. Useful for emitting a
// query result or any other subtree view in isolation.
func SerializeElement(e *Element, cfg *Config) string {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := &writer{}
	e.serialize(w, cfg)
	return w.String()
}

// ----------------------------------------------------------------------
// Document
// ----------------------------------------------------------------------

func (d *Document) serialize(w *writer, cfg *Config) {
	if d.hasDecl {
		w.WriteString(d.declString())
	}
	for i, c := range d.children {
		if d.hasDoctype && i == d.doctypeChildIndex {
			w.WriteString(d.doctypeWS)
			w.WriteString(d.doctype)
		}
		c.serialize(w, cfg)
	}
	if d.hasDoctype && d.doctypeChildIndex >= len(d.children) {
		w.WriteString(d.doctypeWS)
		w.WriteString(d.doctype)
	}
}

// ----------------------------------------------------------------------
// Element
// ----------------------------------------------------------------------

func (e *Element) serialize(w *writer, cfg *Config) {
	w.WriteString(e.precedingWS)

	if !e.modified && e.origOpenTag != nil {
		w.WriteString(*e.origOpenTag)
	} else {
		e.writeOpenTag(w, cfg)
	}

	if !e.selfClosing {
		for _, c := range e.children {
			c.serialize(w, cfg)
		}
		if !e.modified && e.origCloseTag != nil {
			w.WriteString(*e.origCloseTag)
		} else {
			w.WriteString("</")
			w.WriteString(e.name.String())
			w.WriteString(e.closeTagWS)
			w.WriteByte('>')
		}
	}

	w.WriteString(e.followingWS)
}

// writeOpenTag reconstructs "<name attr=... attr=...(/)>" from model state
// (Rule R for an Element's own open tag).
func (e *Element) writeOpenTag(w *writer, cfg *Config) {
	w.WriteByte('<')
	w.WriteString(e.name.String())
	for _, a := range e.attrs {
		a.serialize(w)
	}
	w.WriteString(e.openTagWS)
	if e.selfClosing {
		w.WriteString("/>")
	} else {
		w.WriteByte('>')
	}
}

// ----------------------------------------------------------------------
// Text
// ----------------------------------------------------------------------

func (t *Text) serialize(w *writer, cfg *Config) {
	if t.isCDATA {
		// CDATA never escapes: content is emitted verbatim between the
		// markers whether the node is modified or not, so the raw
		// shortcut below would only strip the markers.
		w.WriteString(t.precedingWS)
		w.WriteString("<![CDATA[")
		w.WriteString(t.value)
		w.WriteString("]]>")
		w.WriteString(t.followingWS)
		return
	}
	if !t.modified {
		if raw, ok := t.RawValue(); ok {
			w.WriteString(raw)
			return
		}
	}
	w.WriteString(t.precedingWS)
	w.WriteString(Encode(t.value, false, QuoteQuotation))
	w.WriteString(t.followingWS)
}

// ----------------------------------------------------------------------
// Comment
// ----------------------------------------------------------------------

func (c *Comment) serialize(w *writer, cfg *Config) {
	w.WriteString(c.precedingWS)
	w.WriteString("<!--")
	w.WriteString(c.content)
	w.WriteString("-->")
	w.WriteString(c.followingWS)
}

// ----------------------------------------------------------------------
// ProcessingInstruction
// ----------------------------------------------------------------------

func (p *ProcessingInstruction) serialize(w *writer, cfg *Config) {
	w.WriteString(p.precedingWS)
	if !p.modified && p.raw != nil {
		w.WriteString(*p.raw)
	} else {
		w.WriteString(p.reconstruct())
	}
	w.WriteString(p.followingWS)
}
