package token

import (
	"fmt"
	"reflect"
)

// Token is a single lexeme handed to the parser. Value is an optional opaque
// payload; a nil Value means the token carries only its kind.
type Token struct {
	Kind  string
	Value interface{}
}

func New(kind string) Token {
	return Token{Kind: kind}
}

func WithValue(kind string, value interface{}) Token {
	return Token{Kind: kind, Value: value}
}

func (t Token) HasValue() bool {
	return t.Value != nil
}

func (t Token) String() string {
	if t.Value == nil || t.Value == "" {
		return fmt.Sprintf("[%s]", t.Kind)
	}
	return fmt.Sprintf("[%s:%v]", t.Kind, t.Value)
}

// ValueEqual compares token payloads structurally. A string on either side
// also matches the textual form of the other side, so "5" equals 5.
func ValueEqual(a, b interface{}) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	_, aStr := a.(string)
	_, bStr := b.(string)
	if aStr || bStr {
		return fmt.Sprint(a) == fmt.Sprint(b)
	}
	return false
}
