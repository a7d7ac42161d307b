package grammar

import (
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/tokparse/token"
)

// Grammar maps rule names to their variations in priority order. A Grammar
// is produced by Builder.Build and never changes afterwards, so any number
// of parsers may share it.
type Grammar struct {
	rules  frozen.Map[string, []*Variation]
	ignore IgnoreSet
	start  string
}

func (g Grammar) Start() string { return g.start }

func (g Grammar) Has(rule string) bool {
	return g.rules.Has(rule)
}

func (g Grammar) Variations(rule string) []*Variation {
	variations, _ := g.rules.Get(rule)
	return append([]*Variation(nil), variations...)
}

// Rules returns the defined rule names in sorted order.
func (g Grammar) Rules() []string {
	return g.rules.Keys().OrderedElements(stringLess)
}

// IgnoreSet returns a copy of the global ignore set.
func (g Grammar) IgnoreSet() IgnoreSet {
	if len(g.ignore) == 0 {
		return nil
	}
	return append(IgnoreSet{}, g.ignore...)
}

// Ignores reports whether tok is trivia for v. The variation's override wins
// over the global set; a nil v uses the global set.
func (g Grammar) Ignores(tok *token.Token, v *Variation) bool {
	if v != nil && v.overridesIgnore {
		return v.ignore.Has(tok)
	}
	return g.ignore.Has(tok)
}

func (g Grammar) String() string {
	var sb strings.Builder
	if g.start != "" {
		sb.WriteString("start: " + g.start + "\n")
	}
	if len(g.ignore) > 0 {
		sb.WriteString("ignore:")
		for _, a := range g.ignore {
			sb.WriteString(" " + a.String())
		}
		sb.WriteString("\n")
	}
	for _, rule := range g.Rules() {
		for _, v := range g.Variations(rule) {
			sb.WriteString(v.String() + "\n")
		}
	}
	return sb.String()
}

func stringLess(a, b string) bool {
	return a < b
}
