package xmldom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindChildAndFindChildren(t *testing.T) {
	doc, err := Parse(`<r><a id="1"/><b/><a id="2"/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	first := FindChild(root, "a")
	require.NotNil(t, first)
	require.Equal(t, "1", first.AttributeByName("id").Value())

	all := FindChildren(root, "a")
	require.Len(t, all, 2)
	require.Equal(t, "2", all[1].AttributeByName("id").Value())

	require.Nil(t, FindChild(root, "nope"))
}

func TestRequireChildReturnsNodeNotFound(t *testing.T) {
	doc, err := Parse(`<r><a/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	a, err := RequireChild(root, "a")
	require.NoError(t, err)
	require.NotNil(t, a)

	_, err = RequireChild(root, "nope")
	var notFound *NodeNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "nope", notFound.Name)
}

func TestAppendChildClearsSelfClosing(t *testing.T) {
	parent, err := NewElement("p")
	require.NoError(t, err)
	require.True(t, parent.SelfClosing())

	child, err := NewElement("c")
	require.NoError(t, err)
	require.NoError(t, AppendChild(parent, child, DefaultConfig()))
	require.False(t, parent.SelfClosing())
	require.True(t, child.SelfClosing())
}

func TestDescendantsPreOrder(t *testing.T) {
	doc, err := Parse(`<r><a><b/></a><c/></r>`, nil)
	require.NoError(t, err)

	names := func(els []*Element) []string {
		out := make([]string, len(els))
		for i, e := range els {
			out[i] = e.Name().String()
		}
		return out
	}
	require.Equal(t, []string{"a", "b", "c"}, names(Descendants(doc.Root())))
}

func TestSetTextRemovesOnlyTextChildren(t *testing.T) {
	doc, err := Parse(`<r>old<!--keep--><x/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	require.NoError(t, SetText(root, "new"))

	var texts, comments, elems int
	for _, c := range root.Children() {
		switch c.(type) {
		case *Text:
			texts++
		case *Comment:
			comments++
		case *Element:
			elems++
		}
	}
	require.Equal(t, 1, texts)
	require.Equal(t, 1, comments)
	require.Equal(t, 1, elems)

	var text *Text
	for _, c := range root.Children() {
		if t2, ok := c.(*Text); ok {
			text = t2
		}
	}
	require.Equal(t, "new", text.Value())
}

func TestSetTextPreservingWhitespace(t *testing.T) {
	doc, err := Parse("<r>  old  </r>", nil)
	require.NoError(t, err)

	root := doc.Root()
	require.NoError(t, SetTextPreservingWhitespace(root, "new"))
	require.Equal(t, "<r>  new  </r>", Serialize(doc, nil))
}

func TestInsertBeforeAndAfter(t *testing.T) {
	doc, err := Parse(`<r><b/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	b := FindChild(root, "b")

	a, err := NewElement("a")
	require.NoError(t, err)
	require.NoError(t, InsertBefore(b, a, DefaultConfig()))

	c, err := NewElement("c")
	require.NoError(t, err)
	require.NoError(t, InsertAfter(b, c, DefaultConfig()))

	require.Equal(t, "<r><a/><b/><c/></r>", Serialize(doc, nil))
}

func TestInsertRejectsAlreadyAttachedNode(t *testing.T) {
	doc, err := Parse(`<r><a/><b/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	a := FindChild(root, "a")
	b := FindChild(root, "b")

	err = InsertAfter(b, a, DefaultConfig())
	require.Error(t, err)
	var invalid *InvalidXMLError
	require.ErrorAs(t, err, &invalid)
}

func TestRemoveDetachesAndAllowsReattachment(t *testing.T) {
	doc, err := Parse(`<r><a/><b/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	a := FindChild(root, "a")
	require.NoError(t, Remove(a))
	require.Nil(t, a.Parent())
	require.Equal(t, "<r><b/></r>", Serialize(doc, nil))

	b := FindChild(root, "b")
	require.NoError(t, InsertAfter(b, a, DefaultConfig()))
	require.Equal(t, "<r><b/><a/></r>", Serialize(doc, nil))
}

func TestSetAttributeCreatesOrUpdates(t *testing.T) {
	doc, err := Parse(`<r a="1"/>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	cfg := DefaultConfig()
	require.NoError(t, SetAttribute(root, "a", "2", cfg))
	require.Equal(t, "2", root.AttributeByName("a").Value())

	require.NoError(t, SetAttribute(root, "b", "new", cfg))
	require.NotNil(t, root.AttributeByName("b"))
	require.Equal(t, `<r a="2" b="new"/>`, Serialize(doc, nil))
}

func TestSetAttributeWithQuotePinsStyle(t *testing.T) {
	doc, err := Parse(`<r/>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	require.NoError(t, SetAttributeWithQuote(root, "a", "v", QuoteApostrophe))
	require.Equal(t, `<r a='v'/>`, Serialize(doc, nil))
}

func TestRemoveAttribute(t *testing.T) {
	doc, err := Parse(`<r a="1" b="2"/>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	require.NoError(t, RemoveAttribute(root, "a"))
	require.Nil(t, root.AttributeByName("a"))
	require.Equal(t, `<r b="2"/>`, Serialize(doc, nil))
}

// Inserting or removing a child must leave the parent's own tag bytes
// untouched, including intra-tag whitespace the reconstruction path
// cannot reproduce (spaces around an attribute's '=', irregular gaps
// between attributes, whitespace before '>').
func TestInsertAndRemoveLeaveParentTagBytesUntouched(t *testing.T) {
	in := "<root id = \"1\"  class='x' >\n  <a/>\n  <b/>\n</root>"
	doc, err := Parse(in, nil)
	require.NoError(t, err)

	root := doc.Root()
	require.NoError(t, Remove(FindChild(root, "b")))

	c, err := NewElement("c")
	require.NoError(t, err)
	require.NoError(t, InsertAfter(FindChild(root, "a"), c, DefaultConfig()))

	want := "<root id = \"1\"  class='x' >\n  <a/>\n  <c/>\n</root>"
	require.Equal(t, want, Serialize(doc, nil))
	require.False(t, root.Modified())
}

// After any sequence of editor operations, every non-root node's
// parent.children contains it exactly once at the position implied by
// its in-sequence index.
func TestParentChildConsistency(t *testing.T) {
	doc, err := Parse(`<r><a/><b/><c/></r>`, nil)
	require.NoError(t, err)

	root := doc.Root()
	a, b, c := FindChild(root, "a"), FindChild(root, "b"), FindChild(root, "c")

	require.NoError(t, Remove(b))
	require.NoError(t, InsertBefore(a, b, DefaultConfig()))
	require.NoError(t, Remove(c))
	require.NoError(t, InsertAfter(a, c, DefaultConfig()))

	for i, child := range root.Children() {
		require.Same(t, root, child.Parent())
		require.Equal(t, i, root.indexOfChild(child))
	}
}
