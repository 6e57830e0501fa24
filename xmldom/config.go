package xmldom

import "os"

// ============================================================================
// CONFIGURATION
//
// Options are immutable per call: Config is a plain value passed to the
// parser or serializer, built either directly, with functional options
// (NewConfig), or from a YAML file (LoadConfigFile).
// ============================================================================

// Config enumerates the small set of options the library exposes.
type Config struct {
	// PreserveComments, when false, drops Comment nodes during parsing
	// instead of keeping them in the tree. Default true.
	PreserveComments bool

	// PreserveWhitespace, when false, collapses whitespace-only Text
	// nodes to a single space during parsing. Default true: the
	// defining round-trip property requires whitespace preservation, so
	// turning this off is an explicit, lossy opt-in.
	PreserveWhitespace bool

	// IndentUnit is the whitespace unit used by indentation inference
	// when no signal can be found in the document itself. Default "  "
	// (two spaces).
	IndentUnit string

	// DefaultQuoteStyle is the quote style used for attributes created by
	// the editor that don't specify one explicitly.
	DefaultQuoteStyle QuoteStyle

	// PrettyPrint, when true, reformats the entire tree on every
	// serialization regardless of modified flags. This is an explicit
	// opt-in that sacrifices the round-trip property; default false.
	PrettyPrint bool

	// DefaultEncoding names the charset to assume for a byte stream that
	// carries no BOM and no detectable encoding="..." declaration.
	// Default "utf-8".
	DefaultEncoding string
}

// DefaultConfig returns the configuration used when a caller does not
// supply one: preserve comments and whitespace, two-space indentation,
// double-quote attributes, no pretty-printing, UTF-8 fallback.
func DefaultConfig() *Config {
	return &Config{
		PreserveComments:   true,
		PreserveWhitespace: true,
		IndentUnit:         "  ",
		DefaultQuoteStyle:  QuoteQuotation,
		PrettyPrint:        false,
		DefaultEncoding:    "utf-8",
	}
}

// Option mutates a Config in place; used with NewConfig.
type Option func(*Config)

// NewConfig builds a Config starting from DefaultConfig and applying opts
// in order.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func WithPreserveComments(v bool) Option { return func(c *Config) { c.PreserveComments = v } }
func WithPreserveWhitespace(v bool) Option { return func(c *Config) { c.PreserveWhitespace = v } }
func WithIndentUnit(unit string) Option { return func(c *Config) { c.IndentUnit = unit } }
func WithDefaultQuoteStyle(q QuoteStyle) Option {
	return func(c *Config) { c.DefaultQuoteStyle = q }
}
func WithPrettyPrint(v bool) Option { return func(c *Config) { c.PrettyPrint = v } }
func WithDefaultEncoding(name string) Option { return func(c *Config) { c.DefaultEncoding = name } }

// fileConfig mirrors Config's fields for YAML decoding; Config itself
// carries no yaml tags since it is also constructed programmatically via
// functional options and a tagged field set would only ever matter for
// the file-loading path.
type fileConfig struct {
	PreserveComments   *bool   `yaml:"preserve_comments"`
	PreserveWhitespace *bool   `yaml:"preserve_whitespace"`
	IndentUnit         *string `yaml:"indent_unit"`
	DefaultQuoteStyle  *string `yaml:"default_quote_style"`
	PrettyPrint        *bool   `yaml:"pretty_print"`
	DefaultEncoding    *string `yaml:"default_encoding"`
}

// LoadConfigFile reads a YAML config file and overlays the fields it
// names onto DefaultConfig. Unmarshaling happens in config_yaml.go to
// keep this file free of the yaml import for callers who only ever use
// functional options.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfigYAML(data)
}
