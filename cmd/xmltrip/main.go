// Command xmltrip is a small CLI over the xmldom library: a round-trip
// pass-through, pretty-print reformatting, and an XPath-lite query.
// Structured CLI diagnostics use zerolog; the xmldom library itself
// performs no logging.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arturoeanton/xmltrip/xmldom"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(0)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "fmt":
		err = cliFormat(args)
	case "pretty":
		err = cliPretty(args)
	case "query":
		err = cliQuery(args)
	default:
		fmt.Printf("unknown command: %s\n", command)
		printHelp()
		os.Exit(1)
	}

	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("xmltrip command failed")
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("xmltrip - lossless XML editing from the command line")
	fmt.Println("usage: xmltrip <command> [args]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  fmt   <file> [--config=cfg.yaml]  : parse and re-serialize (round-trip check)")
	fmt.Println("  pretty <file> [--config=cfg.yaml] : parse and pretty-print reformat")
	fmt.Println("  query <file> <path>               : evaluate an XPath-lite query against the root element")
}

func loadConfig(args []string) (*xmldom.Config, []string, error) {
	var configPath string
	var rest []string
	for _, a := range args {
		const prefix = "--config="
		if len(a) > len(prefix) && a[:len(prefix)] == prefix {
			configPath = a[len(prefix):]
			continue
		}
		rest = append(rest, a)
	}
	if configPath == "" {
		return xmldom.DefaultConfig(), rest, nil
	}
	cfg, err := xmldom.LoadConfigFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, rest, nil
}

func readDoc(path string, cfg *xmldom.Config) (*xmldom.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := xmldom.ParseBytesWithConfig(data, cfg.DefaultEncoding, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func cliFormat(args []string) error {
	cfg, rest, err := loadConfig(args)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("fmt requires a file argument")
	}
	doc, err := readDoc(rest[0], cfg)
	if err != nil {
		return err
	}
	log.Info().Str("file", rest[0]).Msg("round-trip parse succeeded")
	fmt.Print(xmldom.Serialize(doc, cfg))
	return nil
}

func cliPretty(args []string) error {
	cfg, rest, err := loadConfig(args)
	if err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("pretty requires a file argument")
	}
	doc, err := readDoc(rest[0], cfg)
	if err != nil {
		return err
	}
	pretty := xmldom.NewConfig(
		xmldom.WithPreserveComments(cfg.PreserveComments),
		xmldom.WithIndentUnit(cfg.IndentUnit),
		xmldom.WithDefaultQuoteStyle(cfg.DefaultQuoteStyle),
		xmldom.WithPrettyPrint(true),
	)
	fmt.Print(xmldom.Serialize(doc, pretty))
	return nil
}

func cliQuery(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("query requires a file argument and a path expression")
	}
	cfg := xmldom.DefaultConfig()
	doc, err := readDoc(args[0], cfg)
	if err != nil {
		return err
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%s has no root element", args[0])
	}
	matches := xmldom.QueryAll(root, args[1])
	log.Debug().Int("matches", len(matches)).Str("path", args[1]).Msg("query evaluated")
	for _, m := range matches {
		fmt.Println(xmldom.SerializeElement(m, cfg))
	}
	return nil
}
