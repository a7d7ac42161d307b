package token

import (
	"fmt"
	"strings"
)

// Scan reads a whitespace separated token stream where each word is
// KIND or KIND:value. Only the first colon separates kind from value.
func Scan(text string) ([]Token, error) {
	words := strings.Fields(text)
	tokens := make([]Token, 0, len(words))
	for i, word := range words {
		kind, value, hasValue := strings.Cut(word, ":")
		if kind == "" {
			return nil, fmt.Errorf("token %d (%q): missing kind", i, word)
		}
		if hasValue {
			tokens = append(tokens, WithValue(kind, value))
		} else {
			tokens = append(tokens, New(kind))
		}
	}
	return tokens, nil
}

func MustScan(text string) []Token {
	tokens, err := Scan(text)
	if err != nil {
		panic(err)
	}
	return tokens
}
