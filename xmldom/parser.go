package xmldom

import (
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// PARSER
//
// A hand-written, single-pass, forward scanner. It never backtracks beyond
// the bounded lookahead needed to disambiguate "<!--", "<![CDATA[",
// "<!DOCTYPE", "<?", "</", and "<": every dispatch below is a prefix check
// at the current position, never a rewind. The scanner owns the byte
// stream directly (rather than delegating to encoding/xml's tokenizer)
// because the round-trip property depends on capturing inter-token
// whitespace and raw entity-bearing spans, which encoding/xml discards
// while tokenizing.
// ============================================================================

// Parse parses XML already decoded to a Go string (i.e. already UTF-8).
// Use ParseBytes or ParseReader when the input is a raw byte stream that
// may need encoding detection first.
func Parse(src string, cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(src) == 0 {
		return nil, &EmptyInputError{}
	}
	p := &parser{src: src, cfg: cfg}
	return p.parseDocument()
}

// ParseBytes detects the encoding of data (BOM, then a declared
// encoding="..." attribute, then defaultEncoding, then UTF-8), decodes it
// to UTF-8, and parses it.
func ParseBytes(data []byte, defaultEncoding string) (*Document, error) {
	return ParseBytesWithConfig(data, defaultEncoding, nil)
}

// ParseBytesWithConfig is ParseBytes with an explicit Config.
func ParseBytesWithConfig(data []byte, defaultEncoding string, cfg *Config) (*Document, error) {
	if len(data) == 0 {
		return nil, &EmptyInputError{}
	}
	enc, err := detectEncoding(data, defaultEncoding)
	if err != nil {
		return nil, err
	}
	utf8Bytes, err := decodeToUTF8(data, enc)
	if err != nil {
		return nil, err
	}
	return Parse(string(utf8Bytes), cfg)
}

// ParseReader reads r fully, detects its encoding, and parses it.
func ParseReader(r io.Reader, defaultEncoding string) (*Document, error) {
	u, err := newUTF8Reader(r, defaultEncoding)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(u)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), nil)
}

type parser struct {
	src string
	pos int
	cfg *Config
}

func (p *parser) atEOF() bool { return p.pos >= len(p.src) }

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(p.src[p.pos:], s)
}

func (p *parser) malformed(tag, msg string) error {
	return &MalformedXMLError{Offset: p.pos, Tag: tag, Msg: msg}
}

// collapseWS implements Config.PreserveWhitespace: when whitespace
// preservation is turned off, a non-empty whitespace-only run collapses to
// a single space instead of being kept verbatim. Default (PreserveWhitespace
// true) is the identity, since the round-trip property depends on it.
func (p *parser) collapseWS(ws string) string {
	if p.cfg.PreserveWhitespace || ws == "" {
		return ws
	}
	return " "
}

// scanWhitespace consumes and returns a run of { space, tab, CR, LF }.
func (p *parser) scanWhitespace() string {
	start := p.pos
	for p.pos < len(p.src) && isWhitespaceByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// scanUntilLT consumes and returns every byte up to (not including) the
// next '<', or to EOF.
func (p *parser) scanUntilLT() string {
	start := p.pos
	idx := strings.IndexByte(p.src[p.pos:], '<')
	if idx < 0 {
		p.pos = len(p.src)
		return p.src[start:]
	}
	p.pos += idx
	return p.src[start:p.pos]
}

// scanName consumes a Name production: a NameStartChar (letter, '_', ':')
// followed by NameChars (letters, digits, '-', '_', '.', ':').
func (p *parser) scanName() string {
	start := p.pos
	if p.pos >= len(p.src) || !isNameStart(p.src[p.pos]) {
		return ""
	}
	p.pos++
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isNameStart(b byte) bool {
	return b == ':' || b == '_' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b >= 0x80
}

func isNameChar(b byte) bool {
	return isNameStart(b) || b == '-' || b == '.' || (b >= '0' && b <= '9')
}

// splitLeadTrailWS splits s into its leading whitespace run, its core
// (everything between), and its trailing whitespace run. Precondition:
// s is not entirely whitespace (isWhitespaceOnly(s) is false).
func splitLeadTrailWS(s string) (lead, core, trail string) {
	i := 0
	for i < len(s) && isWhitespaceByte(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isWhitespaceByte(s[j-1]) {
		j--
	}
	return s[:i], s[i:j], s[j:]
}

// ----------------------------------------------------------------------
// Declaration
// ----------------------------------------------------------------------

// hasXMLDecl reports whether the scanner sits on a real <?xml ...?>
// declaration, as opposed to a processing instruction whose target merely
// starts with "xml" (e.g. <?xml-stylesheet ...?>).
func (p *parser) hasXMLDecl() bool {
	if !p.hasPrefix("<?xml") {
		return false
	}
	rest := p.src[p.pos+len("<?xml"):]
	return rest != "" && (isWhitespaceByte(rest[0]) || rest[0] == '?')
}

func (p *parser) parseDeclaration() (string, error) {
	start := p.pos
	p.pos += len("<?xml")
	idx := strings.Index(p.src[p.pos:], "?>")
	if idx < 0 {
		return "", p.malformed("unclosed-declaration", "unterminated <?xml ... ?> declaration")
	}
	p.pos += idx + len("?>")
	return p.src[start:p.pos], nil
}

func parseDeclFields(doc *Document, decl string) {
	doc.declVersion = extractDeclAttr(decl, "version")
	doc.declEncoding = extractDeclAttr(decl, "encoding")
	doc.declStandalone = extractDeclAttr(decl, "standalone")
}

func extractDeclAttr(decl, name string) string {
	idx := strings.Index(decl, name)
	for idx >= 0 {
		rest := decl[idx+len(name):]
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if strings.HasPrefix(trimmed, "=") {
			trimmed = strings.TrimLeft(trimmed[1:], " \t\r\n")
			if len(trimmed) > 0 && (trimmed[0] == '"' || trimmed[0] == '\'') {
				q := trimmed[0]
				if end := strings.IndexByte(trimmed[1:], q); end >= 0 {
					return trimmed[1 : end+1]
				}
			}
		}
		nextIdx := strings.Index(decl[idx+1:], name)
		if nextIdx < 0 {
			break
		}
		idx = idx + 1 + nextIdx
	}
	return ""
}

// ----------------------------------------------------------------------
// DOCTYPE
// ----------------------------------------------------------------------

func (p *parser) parseDoctype() (string, error) {
	start := p.pos
	p.pos += len("<!DOCTYPE")
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				p.pos++
				return p.src[start:p.pos], nil
			}
		}
		p.pos++
	}
	return "", p.malformed("unclosed-doctype", "unterminated <!DOCTYPE ...>")
}

// ----------------------------------------------------------------------
// Comment, CDATA, Processing Instruction
// ----------------------------------------------------------------------

func (p *parser) parseComment(precedingWS string) (*Comment, error) {
	p.pos += len("<!--")
	idx := strings.Index(p.src[p.pos:], "-->")
	if idx < 0 {
		return nil, p.malformed("unclosed-comment", "unterminated <!-- ... -->")
	}
	content := p.src[p.pos : p.pos+idx]
	p.pos += idx + len("-->")
	return &Comment{content: content, precedingWS: precedingWS}, nil
}

func (p *parser) parseCDATA(precedingWS string) (*Text, error) {
	p.pos += len("<![CDATA[")
	idx := strings.Index(p.src[p.pos:], "]]>")
	if idx < 0 {
		return nil, p.malformed("unclosed-cdata", "unterminated <![CDATA[ ... ]]>")
	}
	content := p.src[p.pos : p.pos+idx]
	p.pos += idx + len("]]>")
	raw := content
	return &Text{value: content, raw: &raw, isCDATA: true, precedingWS: precedingWS}, nil
}

func (p *parser) parsePI(precedingWS string) (*ProcessingInstruction, error) {
	start := p.pos
	p.pos += len("<?")
	target := p.scanName()
	if target == "" {
		return nil, p.malformed("bad-pi", "expected processing-instruction target")
	}
	p.scanWhitespace()
	idx := strings.Index(p.src[p.pos:], "?>")
	if idx < 0 {
		return nil, p.malformed("unclosed-pi", "unterminated <? ... ?>")
	}
	data := p.src[p.pos : p.pos+idx]
	p.pos += idx + len("?>")
	raw := p.src[start:p.pos]
	return &ProcessingInstruction{target: target, data: data, raw: &raw, precedingWS: precedingWS}, nil
}

// ----------------------------------------------------------------------
// Attributes
// ----------------------------------------------------------------------

func (p *parser) parseAttribute(precedingWS string) (*Attribute, error) {
	name := p.scanName()
	if name == "" {
		return nil, p.malformed("bad-attribute", "expected attribute name")
	}
	p.scanWhitespace()
	if !p.hasPrefix("=") {
		return nil, p.malformed("bad-attribute", "expected '=' after attribute name "+name)
	}
	p.pos++
	p.scanWhitespace()
	if p.atEOF() {
		return nil, p.malformed("bad-attribute", "unexpected EOF reading attribute value")
	}
	quoteCh := p.src[p.pos]
	if quoteCh != '"' && quoteCh != '\'' {
		return nil, p.malformed("bad-attribute", "expected quote character for attribute value")
	}
	p.pos++
	valStart := p.pos
	idx := strings.IndexByte(p.src[p.pos:], quoteCh)
	if idx < 0 {
		return nil, p.malformed("unclosed-attribute", "unterminated attribute value")
	}
	raw := p.src[valStart : valStart+idx]
	p.pos += idx + 1

	quote := QuoteQuotation
	if quoteCh == '\'' {
		quote = QuoteApostrophe
	}
	return &Attribute{
		name:        ParseQName(name),
		value:       Decode(raw),
		raw:         &raw,
		quote:       quote,
		precedingWS: precedingWS,
	}, nil
}

// ----------------------------------------------------------------------
// Elements
// ----------------------------------------------------------------------

func (p *parser) parseElement(precedingWS string) (*Element, error) {
	startPos := p.pos
	p.pos++ // consume '<'
	name := p.scanName()
	if name == "" {
		return nil, p.malformed("bad-start-tag", "expected element name after '<'")
	}
	el := &Element{name: ParseQName(name), precedingWS: precedingWS}

	for {
		ws := p.scanWhitespace()
		if p.atEOF() {
			return nil, p.malformed("unclosed-tag", "unexpected EOF inside start tag of <"+name+">")
		}
		switch p.src[p.pos] {
		case '/':
			if !p.hasPrefix("/>") {
				return nil, p.malformed("bad-start-tag", "expected '/>' ")
			}
			el.openTagWS = ws
			el.selfClosing = true
			p.pos += 2
			orig := p.src[startPos:p.pos]
			el.origOpenTag = &orig
			return el, nil
		case '>':
			el.openTagWS = ws
			p.pos++
			orig := p.src[startPos:p.pos]
			el.origOpenTag = &orig
			return p.parseElementChildren(el, name, startPos)
		default:
			attr, err := p.parseAttribute(ws)
			if err != nil {
				return nil, err
			}
			if el.AttributeByName(attr.name.String()) != nil {
				return nil, p.malformed("duplicate-attribute", "duplicate attribute "+attr.name.String())
			}
			el.attrs = append(el.attrs, attr)
		}
	}
}

// parseElementChildren scans el's children up to and including its
// matching end tag. startPos is the byte offset of el's own '<', used only
// for error reporting.
func (p *parser) parseElementChildren(el *Element, name string, startPos int) (*Element, error) {
	pendingWS := ""
	for {
		span := p.scanUntilLT()
		if span != "" {
			if isWhitespaceOnly(span) {
				if p.atEOF() || p.hasPrefix("</") {
					full := pendingWS + span
					pendingWS = ""
					el.appendChild(&Text{value: p.collapseWS(full)})
				} else {
					pendingWS += span
				}
			} else {
				lead, core, trail := splitLeadTrailWS(span)
				rawSpan := pendingWS + span
				t := &Text{
					precedingWS: pendingWS + lead,
					value:       Decode(core),
					followingWS: trail,
					raw:         &rawSpan,
				}
				pendingWS = ""
				el.appendChild(t)
			}
		}

		if p.atEOF() {
			return nil, p.malformed("unclosed-tag", "missing end tag </"+name+"> for element opened at byte "+strconv.Itoa(startPos))
		}

		switch {
		case p.hasPrefix("</"):
			endStart := p.pos
			p.pos += 2
			endName := p.scanName()
			if endName != name {
				return nil, p.malformed("mismatched-end-tag", "expected </"+name+"> but found </"+endName+">")
			}
			wsBeforeGT := p.scanWhitespace()
			if !p.hasPrefix(">") {
				return nil, p.malformed("bad-end-tag", "expected '>' to close </"+name+">")
			}
			p.pos++
			el.closeTagWS = wsBeforeGT
			orig := p.src[endStart:p.pos]
			el.origCloseTag = &orig
			return el, nil

		case p.hasPrefix("<!--"):
			c, err := p.parseComment(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			if p.cfg.PreserveComments {
				el.appendChild(c)
			} else {
				pendingWS = c.precedingWS
			}

		case p.hasPrefix("<![CDATA["):
			t, err := p.parseCDATA(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			el.appendChild(t)

		case p.hasPrefix("<?"):
			pi, err := p.parsePI(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			el.appendChild(pi)

		default:
			child, err := p.parseElement(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			el.appendChild(child)
		}
	}
}

// ----------------------------------------------------------------------
// Document
// ----------------------------------------------------------------------

func (p *parser) parseDocument() (*Document, error) {
	doc := &Document{}

	if p.hasXMLDecl() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		doc.hasDecl = true
		doc.declRaw = &decl
		parseDeclFields(doc, decl)
	}

	pendingWS := p.scanWhitespace()

	for !p.atEOF() {
		switch {
		case p.hasPrefix("<!--"):
			c, err := p.parseComment(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			if p.cfg.PreserveComments {
				if err := doc.AppendChild(c); err != nil {
					return nil, err
				}
			} else {
				pendingWS = c.precedingWS
			}

		case p.hasPrefix("<!DOCTYPE"):
			if doc.hasDoctype {
				return nil, p.malformed("duplicate-doctype", "a Document may have at most one DOCTYPE")
			}
			raw, err := p.parseDoctype()
			if err != nil {
				return nil, err
			}
			doc.hasDoctype = true
			doc.doctype = raw
			doc.doctypeWS = pendingWS
			doc.doctypeChildIndex = len(doc.children)
			pendingWS = ""

		case p.hasPrefix("<?"):
			pi, err := p.parsePI(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			if err := doc.AppendChild(pi); err != nil {
				return nil, err
			}

		case p.hasPrefix("</"):
			return nil, p.malformed("unexpected-end-tag", "end tag with no matching start tag at document level")

		case p.hasPrefix("<"):
			if doc.Root() != nil {
				return nil, p.malformed("multiple-roots", "a Document may have at most one root element")
			}
			el, err := p.parseElement(pendingWS)
			if err != nil {
				return nil, err
			}
			pendingWS = ""
			if err := doc.AppendChild(el); err != nil {
				return nil, err
			}

		default:
			return nil, p.malformed("unexpected-content", "non-whitespace content outside the root element")
		}

		pendingWS += p.scanWhitespace()
	}

	if pendingWS != "" {
		t := &Text{value: p.collapseWS(pendingWS)}
		_ = doc.AppendChild(t)
	}

	doc.clearModified()
	return doc, nil
}
