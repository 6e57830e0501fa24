package xmldom

// ============================================================================
// NODE MODEL
//
// Each concrete node type (Document, Element, Text, Comment,
// ProcessingInstruction) owns its children exclusively; a child holds a
// non-owning back reference to its parent used only for navigation. The
// back reference is never the source of truth for structure: insertion
// mutates both the parent's child sequence and the child's parent pointer
// in the same call (see editor.go).
//
// Nodes are plain Go pointers rather than arena handles: a node can belong
// to at most one parent at a time because every attach path (InsertBefore,
// InsertAfter, AppendChild, SetRoot...) refuses a node that is still
// attached elsewhere, and Remove clears the parent pointer. This is the
// "intrusively linked children held by owning slices, raw parent pointer
// invalidated on detach" alternative the design notes call out; it needs
// no arena because Go's garbage collector reclaims a detached subtree once
// the caller drops its last reference to it.
// ============================================================================

// NodeKind identifies the concrete type of a Node.
type NodeKind int

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
	CommentNode
	ProcessingInstructionNode
)

func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case ProcessingInstructionNode:
		return "ProcessingInstruction"
	default:
		return "Unknown"
	}
}

// Node is the common interface implemented by every member of the tree,
// including the Document itself.
type Node interface {
	Kind() NodeKind

	// Parent returns the owning node, or nil if this node is currently
	// detached (including the Document, which has no parent).
	Parent() Node

	// Modified reports whether this node's own textual state has changed
	// since it was parsed. Editor-created nodes report true from creation.
	Modified() bool

	// PrecedingWhitespace is the whitespace run immediately before this
	// node's starting delimiter, owned by this node.
	PrecedingWhitespace() string
	SetPrecedingWhitespace(ws string) error

	// internal: used by insertion/removal to rewire ownership without
	// exposing a public SetParent (structure is mutated only through the
	// editor façade's insert/remove operations).
	setParent(p Node)

	// internal: recursively clears the modified flag on this node and its
	// descendants. Used once after a successful parse.
	clearModified()

	// internal: serializes this node per Rule E / Rule R (see serializer.go).
	serialize(w *writer, cfg *Config)
}

// isWhitespaceByte reports whether b is one of the four characters a
// whitespace slot may contain: space, tab, carriage return, line feed.
func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// validateWhitespace enforces the invariant that whitespace slots contain
// only { space, tab, CR, LF }.
func validateWhitespace(ws string) error {
	for i := 0; i < len(ws); i++ {
		if !isWhitespaceByte(ws[i]) {
			return &InvalidXMLError{Op: "set-whitespace", Msg: "whitespace slot contains a non-whitespace byte"}
		}
	}
	return nil
}

// isWhitespaceOnly reports whether s consists entirely of whitespace
// bytes (used to flag whitespace-only Text nodes for editor use).
func isWhitespaceOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWhitespaceByte(s[i]) {
			return false
		}
	}
	return true
}
