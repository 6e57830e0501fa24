package xmldom

// Text is a run of character data, including whitespace-only runs
// between elements; those are the mechanism by which indentation
// survives a parse/serialize round trip.
type Text struct {
	parent Node

	value   string
	raw     *string
	isCDATA bool

	precedingWS string
	followingWS string

	modified bool
}

// NewText constructs an editor-created Text node with decoded value s.
func NewText(s string) *Text {
	return &Text{value: s, modified: true}
}

// NewCDATA constructs an editor-created CDATA Text node.
func NewCDATA(s string) *Text {
	return &Text{value: s, isCDATA: true, modified: true}
}

func (t *Text) Kind() NodeKind { return TextNode }
func (t *Text) Parent() Node { return t.parent }
func (t *Text) Modified() bool { return t.modified }
func (t *Text) setParent(p Node) { t.parent = p }

func (t *Text) PrecedingWhitespace() string { return t.precedingWS }
func (t *Text) SetPrecedingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	t.precedingWS = ws
	return nil
}

func (t *Text) FollowingWhitespace() string { return t.followingWS }
func (t *Text) SetFollowingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	t.followingWS = ws
	return nil
}

// Value returns the decoded text content.
func (t *Text) Value() string { return t.value }

// IsCDATA reports whether this node was (or should be, once reconstructed)
// written inside a <![CDATA[ ]]> section.
func (t *Text) IsCDATA() bool { return t.isCDATA }

// IsWhitespaceOnly reports whether Value is entirely whitespace, which the
// editor uses to recognize indentation-only text nodes.
func (t *Text) IsWhitespaceOnly() bool { return isWhitespaceOnly(t.value) }

// RawValue returns the entity-preserving raw form captured from the
// source, and true, or ("", false) if unavailable.
func (t *Text) RawValue() (string, bool) {
	if t.raw == nil {
		return "", false
	}
	return *t.raw, true
}

// SetValue replaces the decoded value and clears the raw form, so
// serialization falls back to re-encoding.
func (t *Text) SetValue(s string) {
	t.value = s
	t.raw = nil
	t.modified = true
}

func (t *Text) clearModified() { t.modified = false }
