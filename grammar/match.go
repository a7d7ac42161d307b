package grammar

import (
	"fmt"

	"github.com/arr-ai/tokparse/token"
)

// Matches reports whether tok satisfies a token atom. A nil token (end of
// input) never matches.
func (a Atom) Matches(tok *token.Token) bool {
	if tok == nil || a.IsRule() || tok.Kind != a.Name {
		return false
	}
	return !a.HasValue || token.ValueEqual(tok.Value, a.Value)
}

// IgnoreSet lists the trivia matchers that may be skipped between tokens.
type IgnoreSet []Atom

func (s IgnoreSet) Has(tok *token.Token) bool {
	for _, a := range s {
		if a.Matches(tok) {
			return true
		}
	}
	return false
}

func toIgnoreSet(items []interface{}) (IgnoreSet, error) {
	content, err := toContent(items)
	if err != nil {
		return nil, err
	}
	set := make(IgnoreSet, 0, len(content))
	for _, item := range content {
		a, ok := item.(Atom)
		if !ok || a.IsRule() {
			return nil, fmt.Errorf("ignore entries must be token atoms, not %v", item)
		}
		set = append(set, a)
	}
	return set, nil
}
