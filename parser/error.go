package parser

import (
	"fmt"

	"github.com/arr-ai/tokparse/token"
)

type ErrorKind int

const (
	// UnexpectedToken means no variation could continue past Index.
	UnexpectedToken ErrorKind = iota + 1
	// TrailingInput means the start rule matched a prefix of the input.
	TrailingInput
	// DepthExceeded means rule recursion went past Options.MaxDepth.
	DepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case TrailingInput:
		return "trailing input"
	case DepthExceeded:
		return "depth exceeded"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError locates the furthest point where parsing could not proceed.
// Token is nil when Index is at the end of the input.
type ParseError struct {
	Kind   ErrorKind
	Index  int
	Token  *token.Token
	Rule   string
	result interface{}
}

func newParseError(kind ErrorKind, rule string, tokens []token.Token, index int) ParseError {
	e := ParseError{Kind: kind, Index: index, Rule: rule}
	if index >= 0 && index < len(tokens) {
		tok := tokens[index]
		e.Token = &tok
	}
	return e
}

func (e ParseError) Error() string {
	at := "end of input"
	if e.Token != nil {
		at = "token " + e.Token.String()
	}
	switch e.Kind {
	case TrailingInput:
		return fmt.Sprintf("rule(%s) - unconsumed input: %s at index %d", e.Rule, at, e.Index)
	case DepthExceeded:
		return fmt.Sprintf("rule(%s) - recursion too deep at index %d", e.Rule, e.Index)
	}
	return fmt.Sprintf("rule(%s) - unexpected %s at index %d", e.Rule, at, e.Index)
}

// Result returns the value produced for the matched prefix of a
// TrailingInput error.
func (e ParseError) Result() interface{} { return e.result }

// failure is a recoverable mismatch. It never escapes the evaluator.
type failure struct {
	index int
}

func (f *failure) Error() string {
	return fmt.Sprintf("no match at index %d", f.index)
}

func asFailure(err error) (*failure, bool) {
	f, ok := err.(*failure)
	return f, ok
}

func furthest(a, b int) int {
	if a > b {
		return a
	}
	return b
}
