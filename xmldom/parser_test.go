package xmldom

import (
	"errors"
	"testing"
)

// Mixed quote styles, unmodified: exact byte-for-byte round trip.
func TestRoundTripMixedQuoteStyles(t *testing.T) {
	in := `<r a='1' b="2"/>`
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

// A decimal numeric character reference decodes correctly and re-emits
// in its original decimal form.
func TestNumericCharRefPreservedInDecimalForm(t *testing.T) {
	in := `<r attr="line1&#10;line2"/>`
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	attr := root.AttributeByName("attr")
	if attr == nil {
		t.Fatal("expected attr attribute")
	}
	want := "line1\nline2"
	if attr.Value() != want {
		t.Errorf("decoded value = %q, want %q", attr.Value(), want)
	}
	if len(attr.Value()) != 11 {
		t.Errorf("decoded value length = %d, want 11", len(attr.Value()))
	}
	if got := Serialize(doc, nil); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

// A localized text mutation leaves every other byte (the declaration,
// the comment, the sibling element, and all whitespace) untouched.
func TestLocalizedTextEditLeavesOtherBytesUntouched(t *testing.T) {
	in := "<?xml version=\"1.0\"?>\n<!-- hdr -->\n<r>\n  <a>1</a>\n  <b>2</b>\n</r>"
	want := "<?xml version=\"1.0\"?>\n<!-- hdr -->\n<r>\n  <a>11</a>\n  <b>2</b>\n</r>"

	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	a := FindChild(doc.Root(), "a")
	if a == nil {
		t.Fatal("expected element a")
	}
	if err := SetText(a, "11"); err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

// Inserting a sibling after an unindented element infers no preceding
// whitespace.
func TestInsertAfterUnindentedSiblingStaysInline(t *testing.T) {
	in := `<r><x/></r>`
	want := `<r><x/><y/></r>`

	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	x := FindChild(doc.Root(), "x")
	y, err := NewElement("y")
	if err != nil {
		t.Fatal(err)
	}
	if err := InsertAfter(x, y, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

// Inserting a sibling after an indented element adopts the same
// "\n"+indent pattern.
func TestInsertAfterIndentedSiblingAdoptsIndent(t *testing.T) {
	in := "<r>\n    <x/>\n</r>"
	want := "<r>\n    <x/>\n    <y/>\n</r>"

	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	x := FindChild(doc.Root(), "x")
	y, err := NewElement("y")
	if err != nil {
		t.Fatal(err)
	}
	if err := InsertAfter(x, y, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestParseCDATAPreservesAngleAndAmpersand(t *testing.T) {
	in := `<r><![CDATA[a < b && c]]></r>`
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
	root := doc.Root()
	text, ok := root.Children()[0].(*Text)
	if !ok || !text.IsCDATA() {
		t.Fatal("expected a CDATA text child")
	}
	if text.Value() != "a < b && c" {
		t.Errorf("CDATA value = %q", text.Value())
	}
}

func TestParseCDATASurroundedByWhitespaceRoundTrips(t *testing.T) {
	in := "<r>\n  <![CDATA[payload]]>\n</r>"
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestParseCommentAndPIRoundTrip(t *testing.T) {
	in := "<?xml-stylesheet type=\"text/xsl\" href=\"a.xsl\"?>\n<!-- multi\nline\ncomment -->\n<r/>"
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestParseDoctypeVariants(t *testing.T) {
	cases := []string{
		`<!DOCTYPE html><r/>`,
		`<!DOCTYPE r SYSTEM "r.dtd"><r/>`,
		`<!DOCTYPE r PUBLIC "-//X//Y//EN" "r.dtd"><r/>`,
		"<!DOCTYPE r [\n<!ENTITY foo \"bar\">\n]>\n<r/>",
	}
	for _, in := range cases {
		doc, err := Parse(in, nil)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if _, ok := doc.Doctype(); !ok {
			t.Fatalf("Parse(%q): expected a doctype", in)
		}
		if got := Serialize(doc, nil); got != in {
			t.Errorf("got %q, want %q", got, in)
		}
	}
}

func TestParseEmptyAttributeValue(t *testing.T) {
	in := `<r a=""/>`
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Serialize(doc, nil); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestParseAttributeOrderPreserved(t *testing.T) {
	in := `<r z="1" a="2" m="3"/>`
	doc, err := Parse(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	attrs := doc.Root().Attributes()
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name().String()
	}
	want := []string{"z", "a", "m"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("attribute order = %v, want %v", names, want)
		}
	}
}

func TestParseEmptyInputError(t *testing.T) {
	_, err := Parse("", nil)
	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyInputError, got %v (%T)", err, err)
	}
}

func TestParseMismatchedEndTagIsMalformed(t *testing.T) {
	_, err := Parse(`<r><a></b></r>`, nil)
	var malformed *MalformedXMLError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedXMLError, got %v (%T)", err, err)
	}
	if malformed.Tag != "mismatched-end-tag" {
		t.Errorf("Tag = %q", malformed.Tag)
	}
}

func TestParseUnclosedTagIsMalformed(t *testing.T) {
	_, err := Parse(`<r><a>`, nil)
	var malformed *MalformedXMLError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedXMLError, got %v (%T)", err, err)
	}
}

func TestParseMultipleRootsIsMalformed(t *testing.T) {
	_, err := Parse(`<a/><b/>`, nil)
	var malformed *MalformedXMLError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedXMLError, got %v (%T)", err, err)
	}
	if malformed.Tag != "multiple-roots" {
		t.Errorf("Tag = %q", malformed.Tag)
	}
}

func TestParseDuplicateAttributeIsMalformed(t *testing.T) {
	_, err := Parse(`<r a="1" a="2"/>`, nil)
	var malformed *MalformedXMLError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedXMLError, got %v (%T)", err, err)
	}
}

func TestParseDeclarationStructuredFields(t *testing.T) {
	doc, err := Parse(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><r/>`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version() != "1.0" || doc.Encoding() != "UTF-8" || doc.Standalone() != "yes" {
		t.Errorf("declaration fields = %q/%q/%q", doc.Version(), doc.Encoding(), doc.Standalone())
	}
}

func TestRoundTripCorpus(t *testing.T) {
	inputs := []string{
		// predefined entities in text and attribute values
		`<r>&lt;&gt;&amp;&quot;&apos;</r>`,
		`<r a="&lt;x&gt; &amp; &quot;y&quot;"/>`,
		// numeric character references, decimal and hex, kept in their
		// original form
		`<r>&#65;&#x41;</r>`,
		`<r a='&#10;' b="&#x0A;"/>`,
		// CDATA containing markup characters
		`<r><![CDATA[if (a < b && c > d) {}]]></r>`,
		// multi-line comment
		"<r><!-- line1\nline2\nline3 --></r>",
		// processing instruction with data
		`<r><?php echo "hi"; ?></r>`,
		// DOCTYPE: system, public, internal subset
		`<!DOCTYPE r SYSTEM "r.dtd"><r/>`,
		`<!DOCTYPE r PUBLIC "-//X//DTD Y//EN" "http://x/y.dtd"><r/>`,
		"<!DOCTYPE r [\n  <!ELEMENT r EMPTY>\n]><r/>",
		// default namespace overridden in a nested scope
		`<r xmlns="urn:outer"><c xmlns="urn:inner"><d/></c></r>`,
		// prefixed namespaces declared at different depths
		`<a:r xmlns:a="urn:a"><b xmlns:c="urn:c"><c:d/></b></a:r>`,
		// empty attribute values, mixed quote styles in one element
		`<r empty="" blank='' q="v1" apos='v2'/>`,
		// attribute order and irregular intra-tag whitespace
		"<r z=\"1\"  a='2'\tm=\"3\" />",
		// whitespace-only text between elements survives
		"<r>\n\t<a/>\r\n\t<b/>\n</r>",
	}
	for _, in := range inputs {
		doc, err := Parse(in, nil)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got := Serialize(doc, nil); got != in {
			t.Errorf("round trip changed bytes:\n in  %q\n out %q", in, got)
		}
	}
}

func TestModificationFlagSufficiency(t *testing.T) {
	// If nothing is mutated, Serialize returns the original input
	// exactly.
	inputs := []string{
		`<r a='1' b="2"/>`,
		"<?xml version=\"1.0\"?>\n<!-- hdr -->\n<r>\n  <a>1</a>\n  <b>2</b>\n</r>",
		`<r><![CDATA[<raw & stuff>]]></r>`,
	}
	for _, in := range inputs {
		doc, err := Parse(in, nil)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := Serialize(doc, nil); got != in {
			t.Errorf("unmodified round trip failed:\n got  %q\n want %q", got, in)
		}
	}
}
