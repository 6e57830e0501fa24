// Package soapx is a thin structural convenience over xmldom for building
// a SOAP envelope as an ordinary edited document: a <soap:Envelope> root
// with an optional <soap:Header> and a <soap:Body>, wired together through
// the editor façade like any other hand-built tree.
//
// Request transport and WS-Security signing are out of scope. A caller
// who needs either builds it on top of the *xmldom.Document this package
// hands back, the same way any other domain-specific editor layers on
// the node model.
package soapx

import "github.com/arturoeanton/xmltrip/xmldom"

// Namespace is the SOAP 1.1 envelope namespace URI used when no
// WithNamespace option overrides it.
const Namespace = "http://schemas.xmlsoap.org/soap/envelope/"

// EnvelopeOption configures NewEnvelope.
type EnvelopeOption func(*envelopeConfig)

type envelopeConfig struct {
	namespace string
	prefix    string
	header    *xmldom.Element
}

// WithNamespace overrides the default SOAP 1.1 namespace (for a SOAP 1.2
// envelope, for instance).
func WithNamespace(uri string) EnvelopeOption {
	return func(c *envelopeConfig) { c.namespace = uri }
}

// WithPrefix overrides the default "soap" namespace prefix.
func WithPrefix(prefix string) EnvelopeOption {
	return func(c *envelopeConfig) { c.prefix = prefix }
}

// WithHeader attaches el as the sole child of the envelope's <soap:Header>
// element. Without
// this option, NewEnvelope omits the Header element entirely, matching
// the common case of an unauthenticated request body.
func WithHeader(el *xmldom.Element) EnvelopeOption {
	return func(c *envelopeConfig) { c.header = el }
}

// NewEnvelope builds a fresh Document containing:
//
//	<soap:Envelope xmlns:soap="...">
//	  <soap:Header>...</soap:Header>   (only if WithHeader was given)
//	  <soap:Body>
//	    body
//	  </soap:Body>
//	</soap:Envelope>
//
// The layout above is indented for readability only: the tree carries no
// indentation whitespace and serializes on a single line.
//
// body becomes the sole child of <soap:Body>; the caller builds it with
// the same Editor façade used for anything else (NewElement, SetAttribute,
// InsertBefore/InsertAfter) before handing it to NewEnvelope.
func NewEnvelope(body *xmldom.Element, opts ...EnvelopeOption) (*xmldom.Document, error) {
	cfg := &envelopeConfig{namespace: Namespace, prefix: "soap"}
	for _, opt := range opts {
		opt(cfg)
	}

	doc := xmldom.NewDocument()
	doc.SetVersion("1.0")
	doc.SetEncoding("UTF-8")

	env, err := xmldom.NewElement(cfg.prefix + ":Envelope")
	if err != nil {
		return nil, err
	}
	if err := xmldom.SetAttribute(env, "xmlns:"+cfg.prefix, cfg.namespace, xmldom.DefaultConfig()); err != nil {
		return nil, err
	}
	if err := doc.AppendChild(env); err != nil {
		return nil, err
	}

	if cfg.header != nil {
		headerWrap, err := xmldom.NewElement(cfg.prefix + ":Header")
		if err != nil {
			return nil, err
		}
		if err := appendCompact(headerWrap, cfg.header); err != nil {
			return nil, err
		}
		if err := appendCompact(env, headerWrap); err != nil {
			return nil, err
		}
	}

	bodyWrap, err := xmldom.NewElement(cfg.prefix + ":Body")
	if err != nil {
		return nil, err
	}
	if body != nil {
		if err := appendCompact(bodyWrap, body); err != nil {
			return nil, err
		}
	}
	if err := appendCompact(env, bodyWrap); err != nil {
		return nil, err
	}

	return doc, nil
}

// appendCompact attaches child to parent and strips the indentation the
// editor infers for a fresh insertion: an envelope is a wire format, sent
// as a single line, not a hand-edited document.
func appendCompact(parent, child *xmldom.Element) error {
	if err := xmldom.AppendChild(parent, child, xmldom.DefaultConfig()); err != nil {
		return err
	}
	return child.SetPrecedingWhitespace("")
}
