package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arr-ai/tokparse/token"
)

// AssertParses scans input as a token stream, parses it and compares the %v
// rendering of the result with expected.
func AssertParses(t *testing.T, p *Parser, input, expected string) bool {
	t.Helper()
	tokens, err := token.Scan(input)
	if !assert.NoError(t, err) {
		return false
	}
	v, err := p.Parse(tokens)
	if !assert.NoError(t, err, "input: %s", input) {
		return false
	}
	return assert.Equal(t, expected, fmt.Sprintf("%v", v), "input: %s", input)
}

// AssertParseError parses input and checks the kind and position of the
// resulting ParseError.
func AssertParseError(t *testing.T, p *Parser, input string, kind ErrorKind, index int) bool {
	t.Helper()
	tokens, err := token.Scan(input)
	if !assert.NoError(t, err) {
		return false
	}
	v, err := p.Parse(tokens)
	if !assert.Error(t, err, "input: %s, got %v", input, v) {
		return false
	}
	var pe ParseError
	if !assert.IsType(t, pe, err) {
		return false
	}
	pe = err.(ParseError)
	ok := assert.Equal(t, kind, pe.Kind, "input: %s: %v", input, err)
	ok = assert.Equal(t, index, pe.Index, "input: %s: %v", input, err) && ok
	if index < len(tokens) {
		ok = assert.NotNil(t, pe.Token) && assert.Equal(t, tokens[index], *pe.Token) && ok
	} else {
		ok = assert.Nil(t, pe.Token) && ok
	}
	return ok
}
