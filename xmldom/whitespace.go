package xmldom

import "strings"

// ============================================================================
// INDENTATION INFERENCE
//
// When the editor inserts a new Element/Comment/ProcessingInstruction next
// to existing siblings, it tries to make the insertion look hand-written
// rather than jammed onto one line. The algorithm runs in three steps, each
// one falling through to the next only when it has nothing to go on:
//
//  1. Sibling pattern: if the parent already has Element/Comment/
//     ProcessingInstruction children, adopt the PrecedingWhitespace of the
//     last one verbatim, even when it is empty. This is the common case of
//     inserting into a list of existing elements that are already
//     one-per-line (or all on one line).
//  2. Parent-relative: if there are no such siblings (the parent is
//     currently empty, or its only children are text), take the
//     parent's own PrecedingWhitespace, strip it down to the indentation
//     that follows its last newline, and go one level deeper by appending
//     a single indent unit. The unit is sniffed from the nearest indented
//     line among the parent's child elements, then the parent and its
//     ancestors: a tab if that line's indentation contains one, otherwise
//     the spaces it adds over the enclosing element's indentation. Without
//     any indented line the unit is cfg.IndentUnit.
//  3. Configured default: nothing to learn from at all (inserting into a
//     brand new, still-empty document); use "\n" + cfg.IndentUnit.
// ============================================================================

// inferIndentation computes the PrecedingWhitespace a newly inserted child
// of parent should carry, so that Insert{Before,After} produce output that
// reads as if a human had typed it at the right indentation level.
func inferIndentation(parent *Element, cfg *Config) string {
	if ws, ok := siblingIndentPattern(parent); ok {
		return ws
	}
	return parentRelativeIndent(parent, cfg)
}

// siblingIndentPattern reports the PrecedingWhitespace already in use among
// parent's existing Element/Comment/ProcessingInstruction children, and
// whether any such sibling exists at all. A sibling's pattern is adopted
// verbatim even when it is the empty string: an existing run of children
// written with no leading whitespace (e.g. "<r><x/></r>") is itself the
// signal that new insertions should stay unindented too, exactly as a
// "\n"+indent run is the signal to indent.
func siblingIndentPattern(parent *Element) (string, bool) {
	var found string
	var ok bool
	for _, c := range parent.Children() {
		switch c.(type) {
		case *Element, *Comment, *ProcessingInstruction:
			found = c.PrecedingWhitespace()
			ok = true
		}
	}
	return found, ok
}

// parentRelativeIndent derives an indentation one level deeper than
// parent's own PrecedingWhitespace, sniffing the prevailing indent unit
// from the document when possible.
func parentRelativeIndent(parent *Element, cfg *Config) string {
	parentIndent := trailingIndent(parent.PrecedingWhitespace())
	if parentIndent == "" && parent.Parent() == nil {
		// parent is the document root itself (or detached): nothing to
		// be relative to, fall back to the configured default.
		return "\n" + sniffIndentUnit(parent, cfg)
	}
	unit := sniffIndentUnit(parent, cfg)
	return "\n" + parentIndent + unit
}

// trailingIndent returns the run of spaces/tabs following the last newline
// in ws, or "" if ws contains no newline.
func trailingIndent(ws string) string {
	i := strings.LastIndexByte(ws, '\n')
	if i < 0 {
		return ""
	}
	return ws[i+1:]
}

// sniffIndentUnit looks at e's child elements, then walks up from e, for
// the first PrecedingWhitespace run that is indented, and derives one
// level of indentation from it: a tab if the run uses tabs, otherwise the
// spaces the run adds over its enclosing element's indentation. Absent any
// evidence, it falls back to cfg.IndentUnit.
func sniffIndentUnit(e *Element, cfg *Config) string {
	oneLevel := func(unit string, outer *Element) string {
		if unit == "\t" || outer == nil {
			return unit
		}
		if o := trailingIndent(outer.PrecedingWhitespace()); o != "" && len(o) < len(unit) && strings.HasPrefix(unit, o) {
			return unit[len(o):]
		}
		return unit
	}
	for _, c := range e.Children() {
		if child, ok := c.(*Element); ok {
			if unit, found := indentUnitFromRun(child.PrecedingWhitespace()); found {
				return oneLevel(unit, e)
			}
		}
	}
	for cur := e; cur != nil; cur = parentElement(cur) {
		if unit, found := indentUnitFromRun(cur.PrecedingWhitespace()); found {
			return oneLevel(unit, parentElement(cur))
		}
	}
	return cfg.IndentUnit
}

// indentUnitFromRun reports the indentation implied by a
// PrecedingWhitespace run: a tab if the indentation contains one,
// otherwise the whole run of spaces after the last newline (sniffIndentUnit
// strips the enclosing level from it).
func indentUnitFromRun(ws string) (string, bool) {
	indent := trailingIndent(ws)
	if indent == "" {
		return "", false
	}
	if strings.Contains(indent, "\t") {
		return "\t", true
	}
	return indent, true
}
