package xmldom

import "fmt"

// ============================================================================
// ERROR KINDS
//
// Five structural error kinds (MalformedXMLError, EncodingError,
// EmptyInputError, InvalidXMLError, NodeNotFoundError), distinguishable by
// type (via errors.As), not
// by matching on an error's Error() string. None of them are thrown across
// an exception boundary: every fallible operation in this package returns
// one as a plain error value.
// ============================================================================

// MalformedXMLError reports a structural problem the parser cannot accept:
// an unclosed tag, a mismatched end tag, an invalid quote, or a premature
// EOF. Offset is a byte offset into the original input.
type MalformedXMLError struct {
	Offset int
	Tag    string // short descriptive tag, e.g. "unclosed-tag", "mismatched-end-tag"
	Msg    string
}

func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed xml at byte %d (%s): %s", e.Offset, e.Tag, e.Msg)
}

// EncodingError reports that a declared or detected encoding could not be
// applied, or that the byte sequence is invalid in the encoding applied.
type EncodingError struct {
	Name string
	Msg  string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("encoding error (%s): %s", e.Name, e.Msg)
	}
	return fmt.Sprintf("encoding error: %s", e.Msg)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// EmptyInputError reports that the parser was given zero bytes to parse.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string { return "empty input" }

// InvalidXMLError reports that an editor operation would violate one of the
// model's invariants: a duplicate attribute name, an element name with
// illegal characters, attaching an already-parented node without detaching
// it first, or adding a second root element to a Document.
type InvalidXMLError struct {
	Op  string
	Msg string
}

func (e *InvalidXMLError) Error() string {
	return fmt.Sprintf("invalid xml operation %q: %s", e.Op, e.Msg)
}

// NodeNotFoundError reports that a lookup-by-name operation found nothing
// where the caller expected a match.
type NodeNotFoundError struct {
	Name string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node not found: %q", e.Name)
}
