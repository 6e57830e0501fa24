package xmldom

import "gopkg.in/yaml.v3"

// parseConfigYAML decodes raw YAML bytes into a Config, overlaying only
// the fields present in the document onto DefaultConfig.
func parseConfigYAML(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &EncodingError{Msg: "invalid config YAML", Err: err}
	}

	cfg := DefaultConfig()
	if fc.PreserveComments != nil {
		cfg.PreserveComments = *fc.PreserveComments
	}
	if fc.PreserveWhitespace != nil {
		cfg.PreserveWhitespace = *fc.PreserveWhitespace
	}
	if fc.IndentUnit != nil {
		cfg.IndentUnit = *fc.IndentUnit
	}
	if fc.DefaultQuoteStyle != nil {
		switch *fc.DefaultQuoteStyle {
		case "APOSTROPHE":
			cfg.DefaultQuoteStyle = QuoteApostrophe
		case "QUOTATION":
			cfg.DefaultQuoteStyle = QuoteQuotation
		default:
			return nil, &InvalidXMLError{Op: "load-config", Msg: "default_quote_style must be APOSTROPHE or QUOTATION"}
		}
	}
	if fc.PrettyPrint != nil {
		cfg.PrettyPrint = *fc.PrettyPrint
	}
	if fc.DefaultEncoding != nil {
		cfg.DefaultEncoding = *fc.DefaultEncoding
	}
	return cfg, nil
}
