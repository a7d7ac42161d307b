package grammar

import (
	"fmt"
	"strings"
)

// Item is one element of a variation's content. The set of items is closed:
// Atom, BinaryLoop, BlockLoop and Either.
type Item interface {
	fmt.Stringer
	isItem()
}

type Content []Item

func (c Content) String() string {
	parts := make([]string, 0, len(c))
	for _, item := range c {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, " ")
}

func (c Content) clone() Content {
	if c == nil {
		return nil
	}
	out := make(Content, 0, len(c))
	for _, item := range c {
		switch item := item.(type) {
		case BinaryLoop:
			item.Content = item.Content.clone()
			out = append(out, item)
		case BlockLoop:
			item.Content = item.Content.clone()
			out = append(out, item)
		case Either:
			item.Candidates = append([]Atom(nil), item.Candidates...)
			out = append(out, item)
		default:
			out = append(out, item)
		}
	}
	return out
}

type AtomKind int

const (
	TokenRef AtomKind = iota
	RuleRef
)

// Atom references a token kind, optionally constrained to a value, or a named
// rule. Skip atoms must match but are left out of the captured data.
type Atom struct {
	Kind     AtomKind
	Name     string
	Value    interface{}
	HasValue bool
	Skip     bool
}

func TokenAtom(kind string) Atom {
	return Atom{Kind: TokenRef, Name: kind}
}

func RuleAtom(rule string) Atom {
	return Atom{Kind: RuleRef, Name: rule}
}

func (a Atom) WithValue(value interface{}) Atom {
	a.Value = value
	a.HasValue = true
	return a
}

func (a Atom) Skipped() Atom {
	a.Skip = true
	return a
}

func (a Atom) IsRule() bool { return a.Kind == RuleRef }

func (a Atom) String() string {
	var sb strings.Builder
	if a.IsRule() {
		sb.WriteString("$")
	} else {
		sb.WriteString("@")
	}
	sb.WriteString(a.Name)
	if a.HasValue {
		fmt.Fprintf(&sb, ":%v", a.Value)
	}
	if a.Skip {
		sb.WriteString("&")
	}
	return sb.String()
}

// BinaryLoop repeats an operator+operand unit, folding the data captured so
// far through the variation's strategy before every pass.
type BinaryLoop struct {
	Content Content
}

func (l BinaryLoop) String() string { return "binary{" + l.Content.String() + "}" }

// BlockLoop repeats a statement+separator unit, accumulating every pass.
type BlockLoop struct {
	Content Content
}

func (l BlockLoop) String() string { return "block{" + l.Content.String() + "}" }

// Either picks the first candidate that matches, in declaration order.
type Either struct {
	Candidates []Atom
	err        error
}

func (e Either) String() string {
	parts := make([]string, 0, len(e.Candidates))
	for _, a := range e.Candidates {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

func (Atom) isItem()       {}
func (BinaryLoop) isItem() {}
func (BlockLoop) isItem()  {}
func (Either) isItem()     {}

// OneOf builds an Either from shorthand strings or Atoms. Malformed
// candidates are reported when the Either is added to a variation.
func OneOf(candidates ...interface{}) Either {
	var e Either
	for _, c := range candidates {
		switch c := c.(type) {
		case string:
			a, err := ParseAtom(c)
			if err != nil {
				if e.err == nil {
					e.err = err
				}
				continue
			}
			e.Candidates = append(e.Candidates, a)
		case Atom:
			e.Candidates = append(e.Candidates, c)
		default:
			if e.err == nil {
				e.err = fmt.Errorf("either candidate must be a string or Atom, not %T", c)
			}
		}
	}
	return e
}

// ParseAtom reads the atom shorthand:
//
//	'@' name [':' value] ['&']   token atom
//	'$' name ['&']               rule atom
func ParseAtom(s string) (Atom, error) {
	var a Atom
	switch {
	case strings.HasPrefix(s, "@"):
		a.Kind = TokenRef
	case strings.HasPrefix(s, "$"):
		a.Kind = RuleRef
	default:
		return Atom{}, fmt.Errorf("%q: expecting '@' or '$' sigil", s)
	}
	body := s[1:]
	if strings.HasSuffix(body, "&") {
		a.Skip = true
		body = body[:len(body)-1]
	}
	if name, value, ok := strings.Cut(body, ":"); ok {
		if a.IsRule() {
			return Atom{}, fmt.Errorf("%q: rule references cannot carry a value", s)
		}
		body = name
		a.Value = value
		a.HasValue = true
	}
	if body == "" {
		return Atom{}, fmt.Errorf("%q: missing name", s)
	}
	a.Name = body
	return a, nil
}

func toContent(parts []interface{}) (Content, error) {
	content := make(Content, 0, len(parts))
	for _, part := range parts {
		switch p := part.(type) {
		case string:
			a, err := ParseAtom(p)
			if err != nil {
				return nil, err
			}
			content = append(content, a)
		case Either:
			if p.err != nil {
				return nil, p.err
			}
			content = append(content, p)
		case Atom, BinaryLoop, BlockLoop:
			content = append(content, p.(Item))
		default:
			return nil, fmt.Errorf("unsupported content %T(%[1]v)", part)
		}
	}
	return content, nil
}
