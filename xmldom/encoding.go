package xmldom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// ============================================================================
// ENCODING DETECTION
//
// Decoding UTF-16/UTF-32/ISO-8859-1 byte streams into UTF-8 is the job
// golang.org/x/text/encoding exists to do, so this package uses it
// instead of hand-rolling a second codec. UTF-8 input (the common case,
// and the only case the byte-exact round-trip property needs) never
// passes through a transformer; it is scanned directly.
// ============================================================================

// detectedEncoding names the outcome of BOM/declaration sniffing.
type detectedEncoding struct {
	name    string
	bomLen  int
	decoder *encoding.Decoder // nil for UTF-8 (no transform needed)
}

var knownEncodings = map[string]func() *encoding.Decoder{
	"utf-8": func() *encoding.Decoder { return nil },
	"utf-16": func() *encoding.Decoder {
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	},
	"utf-16be": func() *encoding.Decoder {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	},
	"utf-16le": func() *encoding.Decoder {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	},
	"utf-32be": func() *encoding.Decoder { return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder() },
	"utf-32le": func() *encoding.Decoder { return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder() },
	"iso-8859-1": func() *encoding.Decoder {
		return charmap.ISO8859_1.NewDecoder()
	},
	"latin1": func() *encoding.Decoder {
		return charmap.ISO8859_1.NewDecoder()
	},
}

// sniffBOM inspects up to the first four bytes of data for a byte-order
// mark and returns the encoding name and the BOM's byte length, or ("", 0)
// if none is present.
func sniffBOM(data []byte) (string, int) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return "utf-8", 3
	case bytes.HasPrefix(data, []byte{0x00, 0x00, 0xFE, 0xFF}):
		return "utf-32be", 4
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE, 0x00, 0x00}):
		return "utf-32le", 4
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16be", 2
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16le", 2
	default:
		return "", 0
	}
}

// sniffDeclaredEncoding reads a short ASCII-safe prefix of data looking
// for an encoding="..." attribute inside a leading <?xml ... ?>
// declaration, returning the lower-cased name or "".
func sniffDeclaredEncoding(data []byte) string {
	prefixLen := len(data)
	if prefixLen > 256 {
		prefixLen = 256
	}
	prefix := string(data[:prefixLen])
	if !strings.HasPrefix(strings.TrimLeft(prefix, " \t\r\n"), "<?xml") {
		return ""
	}
	end := strings.Index(prefix, "?>")
	if end < 0 {
		end = len(prefix)
	}
	decl := prefix[:end]
	idx := strings.Index(decl, "encoding")
	if idx < 0 {
		return ""
	}
	rest := decl[idx+len("encoding"):]
	rest = strings.TrimLeft(rest, " \t\r\n")
	if !strings.HasPrefix(rest, "=") {
		return ""
	}
	rest = strings.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) == 0 {
		return ""
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return ""
	}
	rest = rest[1:]
	closeIdx := strings.IndexByte(rest, quote)
	if closeIdx < 0 {
		return ""
	}
	return strings.ToLower(rest[:closeIdx])
}

// detectEncoding picks the input's encoding: BOM first, then a declared
// encoding="..." name, then the caller-supplied default, then UTF-8.
func detectEncoding(data []byte, defaultName string) (*detectedEncoding, error) {
	if name, bomLen := sniffBOM(data); name != "" {
		mk, ok := knownEncodings[name]
		if !ok {
			return nil, &EncodingError{Name: name, Msg: "unsupported BOM-detected encoding"}
		}
		return &detectedEncoding{name: name, bomLen: bomLen, decoder: mk()}, nil
	}

	if name := sniffDeclaredEncoding(data); name != "" {
		mk, ok := knownEncodings[name]
		if !ok {
			return nil, &EncodingError{Name: name, Msg: "unsupported declared encoding"}
		}
		return &detectedEncoding{name: name, decoder: mk()}, nil
	}

	name := strings.ToLower(defaultName)
	if name == "" {
		name = "utf-8"
	}
	mk, ok := knownEncodings[name]
	if !ok {
		return nil, &EncodingError{Name: name, Msg: "unsupported default encoding"}
	}
	return &detectedEncoding{name: name, decoder: mk()}, nil
}

// decodeToUTF8 strips any detected BOM and, when a non-UTF-8 decoder was
// selected, transforms the remaining bytes to UTF-8.
func decodeToUTF8(data []byte, enc *detectedEncoding) ([]byte, error) {
	body := data[enc.bomLen:]
	if enc.decoder == nil {
		return body, nil
	}
	out, _, err := transform.Bytes(enc.decoder, body)
	if err != nil {
		return nil, &EncodingError{Name: enc.name, Msg: "invalid byte sequence for declared encoding", Err: err}
	}
	return out, nil
}

// newUTF8Reader wraps r so that reads come back as UTF-8, detecting the
// source encoding from a buffered prefix.
func newUTF8Reader(r io.Reader, defaultName string) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &EmptyInputError{}
	}
	enc, err := detectEncoding(data, defaultName)
	if err != nil {
		return nil, err
	}
	out, err := decodeToUTF8(data, enc)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}
