package xmldom

import "strings"

// ============================================================================
// PRETTY-PRINT REFORMATTING (Config.PrettyPrint)
//
// An explicit opt-in that reformats the whole tree regardless of modified
// flags, which means it does NOT preserve the round-trip property.
// Callers who want that must leave PrettyPrint off (the default).
// ============================================================================

func serializePretty(w *writer, doc *Document, cfg *Config) {
	if doc.hasDecl {
		w.WriteString(doc.declString())
		w.WriteByte('\n')
	}
	if raw, ok := doc.Doctype(); ok {
		w.WriteString(raw)
		w.WriteByte('\n')
	}
	if root := doc.Root(); root != nil {
		writePrettyElement(w, root, cfg, 0)
		w.WriteByte('\n')
	}
}

func writePrettyElement(w *writer, e *Element, cfg *Config, depth int) {
	w.WriteString(strings.Repeat(cfg.IndentUnit, depth))
	w.WriteByte('<')
	w.WriteString(e.name.String())
	for _, a := range e.attrs {
		w.WriteByte(' ')
		w.WriteString(a.name.String())
		w.WriteByte('=')
		q := a.quote.rune()
		w.WriteByte(q)
		w.WriteString(Encode(a.value, true, a.quote))
		w.WriteByte(q)
	}

	childElements, textOnly := prettyChildSummary(e)

	if e.selfClosing || len(e.children) == 0 {
		w.WriteString("/>")
		return
	}
	if textOnly != nil {
		w.WriteByte('>')
		w.WriteString(Encode(*textOnly, false, QuoteQuotation))
		w.WriteString("</")
		w.WriteString(e.name.String())
		w.WriteByte('>')
		return
	}

	w.WriteByte('>')
	if len(childElements) > 0 {
		w.WriteByte('\n')
	}
	for _, c := range childElements {
		writePrettyElement(w, c, cfg, depth+1)
		w.WriteByte('\n')
	}
	if len(childElements) > 0 {
		w.WriteString(strings.Repeat(cfg.IndentUnit, depth))
	}
	w.WriteString("</")
	w.WriteString(e.name.String())
	w.WriteByte('>')
}

// prettyChildSummary classifies e's children for pretty-printing: if e has
// no child Elements and at least one non-whitespace Text child, those texts
// are concatenated and returned so the element collapses to a single line;
// otherwise the child Elements are returned for recursive, indented
// emission (comments, processing instructions and whitespace-only Text
// nodes are dropped, since pretty-print intentionally
// sacrifices exact preservation in favor of a canonical layout).
func prettyChildSummary(e *Element) (childElements []*Element, textOnly *string) {
	var meaningfulText []string
	for _, c := range e.children {
		switch n := c.(type) {
		case *Element:
			childElements = append(childElements, n)
		case *Text:
			if !n.IsWhitespaceOnly() {
				meaningfulText = append(meaningfulText, n.Value())
			}
		}
	}
	if len(childElements) == 0 && len(meaningfulText) > 0 {
		joined := strings.Join(meaningfulText, "")
		return nil, &joined
	}
	return childElements, nil
}
