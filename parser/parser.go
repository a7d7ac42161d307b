package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/tokparse/grammar"
	"github.com/arr-ai/tokparse/token"
)

const DefaultMaxDepth = 4096

type Options struct {
	// MaxDepth bounds rule recursion. Zero selects DefaultMaxDepth.
	MaxDepth int
	// Logger receives trace output. Nil selects logrus.StandardLogger().
	Logger *logrus.Logger
}

// Parser evaluates token sequences against a built grammar. A Parser holds
// no per-parse state, so concurrent calls are safe.
type Parser struct {
	grammar grammar.Grammar
	opts    Options
}

func New(g grammar.Grammar, opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Parser{grammar: g, opts: opts}
}

func (p *Parser) Grammar() grammar.Grammar { return p.grammar }

// Parse evaluates tokens from the grammar's start rule.
func (p *Parser) Parse(tokens []token.Token) (interface{}, error) {
	start := p.grammar.Start()
	if start == "" {
		return nil, grammar.ConfigError{Msg: "no start rule"}
	}
	return p.ParseRule(start, tokens)
}

// ParseRule evaluates tokens from rule. The whole input must be consumed.
func (p *Parser) ParseRule(rule string, tokens []token.Token) (interface{}, error) {
	if !p.grammar.Has(rule) {
		return nil, grammar.UndefinedRule(rule)
	}
	e := &evaluation{
		g:        p.grammar,
		tokens:   tokens,
		maxDepth: p.opts.MaxDepth,
		log:      p.opts.Logger,
	}
	out, err := e.evaluateRule(rule)
	if err != nil {
		if f, ok := asFailure(err); ok {
			return nil, newParseError(UnexpectedToken, rule, tokens, f.index)
		}
		return nil, err
	}
	if e.index < len(tokens) {
		pe := newParseError(TrailingInput, rule, tokens, e.index)
		pe.result = out
		return nil, pe
	}
	return out, nil
}
