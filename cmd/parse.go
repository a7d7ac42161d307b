package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/tokparse/examples/calc"
	"github.com/arr-ai/tokparse/gotree"
	"github.com/arr-ai/tokparse/grammar"
	"github.com/arr-ai/tokparse/grammarfile"
	"github.com/arr-ai/tokparse/parser"
	"github.com/arr-ai/tokparse/token"
)

var inFile string
var inGrammarFile string
var startingRule string
var maxDepth int
var verboseMode bool

var grammarFlag = cli.StringFlag{
	Name:        "grammar",
	Usage:       "grammar file (.yaml, .yml or .toml)",
	TakesFile:   true,
	Destination: &inGrammarFile,
}

var parseCommand = cli.Command{
	Name:    "parse",
	Aliases: []string{"p"},
	Usage:   "Parse a token stream and print the result tree",
	Action:  parse,
	Flags: []cli.Flag{
		grammarFlag,
		cli.StringFlag{
			Name:        "start",
			Usage:       "rule to start from instead of the grammar's start rule",
			Destination: &startingRule,
		},
		cli.StringFlag{
			Name:        "input",
			Usage:       "token stream file of KIND[:value] words; - or empty reads stdin",
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.IntFlag{
			Name:        "max-depth",
			Usage:       "maximum rule recursion depth (0 uses the grammar's or the default)",
			Destination: &maxDepth,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "trace the evaluation",
			Destination: &verboseMode,
		},
	},
}

// loadGrammar loads a grammar file, or the calc grammar when path is empty.
func loadGrammar(path string) (grammar.Grammar, parser.Options, error) {
	if path == "" {
		return calc.Grammar(), parser.Options{}, nil
	}
	f, err := grammarfile.Load(path)
	if err != nil {
		return grammar.Grammar{}, parser.Options{}, err
	}
	g, err := f.Grammar()
	if err != nil {
		return grammar.Grammar{}, parser.Options{}, err
	}
	return g, f.ParserOptions(), nil
}

func readInput(source string) (string, error) {
	var buf []byte
	var err error
	switch source {
	case "", "-":
		buf, err = io.ReadAll(os.Stdin)
	default:
		buf, err = os.ReadFile(source)
	}
	return string(buf), err
}

// parseText scans text and parses it from start, or from the grammar's start
// rule when start is empty, returning the rendered result tree.
func parseText(p *parser.Parser, start, text string) (string, error) {
	tokens, err := token.Scan(text)
	if err != nil {
		return "", err
	}
	var result interface{}
	if start == "" {
		result, err = p.Parse(tokens)
	} else {
		result, err = p.ParseRule(start, tokens)
	}
	if err != nil {
		return "", err
	}
	return gotree.FromValue("", result).Print(), nil
}

func parse(c *cli.Context) error {
	g, opts, err := loadGrammar(inGrammarFile)
	if err != nil {
		return err
	}
	if maxDepth > 0 {
		opts.MaxDepth = maxDepth
	}
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}

	input, err := readInput(inFile)
	if err != nil {
		return err
	}
	out, err := parseText(parser.New(g, opts), startingRule, input)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
