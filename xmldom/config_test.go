package xmldom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.PreserveComments)
	require.True(t, cfg.PreserveWhitespace)
	require.Equal(t, "  ", cfg.IndentUnit)
	require.Equal(t, QuoteQuotation, cfg.DefaultQuoteStyle)
	require.False(t, cfg.PrettyPrint)
	require.Equal(t, "utf-8", cfg.DefaultEncoding)
}

func TestNewConfigAppliesOptionsInOrder(t *testing.T) {
	cfg := NewConfig(
		WithPreserveComments(false),
		WithIndentUnit("\t"),
		WithDefaultQuoteStyle(QuoteApostrophe),
		WithPrettyPrint(true),
	)
	require.False(t, cfg.PreserveComments)
	require.Equal(t, "\t", cfg.IndentUnit)
	require.Equal(t, QuoteApostrophe, cfg.DefaultQuoteStyle)
	require.True(t, cfg.PrettyPrint)
	// Untouched fields keep their DefaultConfig value.
	require.True(t, cfg.PreserveWhitespace)
}

func TestParseConfigYAMLOverlaysOnlyPresentFields(t *testing.T) {
	yamlDoc := []byte(`
preserve_comments: false
indent_unit: "    "
default_quote_style: APOSTROPHE
`)
	cfg, err := parseConfigYAML(yamlDoc)
	require.NoError(t, err)
	require.False(t, cfg.PreserveComments)
	require.Equal(t, "    ", cfg.IndentUnit)
	require.Equal(t, QuoteApostrophe, cfg.DefaultQuoteStyle)
	// Absent from the document: stays at DefaultConfig's value.
	require.True(t, cfg.PreserveWhitespace)
	require.False(t, cfg.PrettyPrint)
}

func TestParseConfigYAMLRejectsBadQuoteStyle(t *testing.T) {
	_, err := parseConfigYAML([]byte(`default_quote_style: SINGLE`))
	require.Error(t, err)
	var invalid *InvalidXMLError
	require.ErrorAs(t, err, &invalid)
}

func TestParseConfigYAMLRejectsMalformedYAML(t *testing.T) {
	_, err := parseConfigYAML([]byte("not: [valid: yaml"))
	require.Error(t, err)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestPreserveCommentsFalseDropsComments(t *testing.T) {
	doc, err := Parse("<r><!--c--><a/></r>", NewConfig(WithPreserveComments(false)))
	require.NoError(t, err)
	for _, c := range doc.Root().Children() {
		_, isComment := c.(*Comment)
		require.False(t, isComment)
	}
}

func TestPreserveWhitespaceFalseCollapsesTrailingWhitespaceOnlyText(t *testing.T) {
	doc, err := Parse("<r><a/>\n    </r>", NewConfig(WithPreserveWhitespace(false)))
	require.NoError(t, err)
	root := doc.Root()
	text, ok := root.Children()[len(root.Children())-1].(*Text)
	require.True(t, ok)
	require.Equal(t, " ", text.Value())
}
