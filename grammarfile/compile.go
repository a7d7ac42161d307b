package grammarfile

import (
	"fmt"
	"sort"

	"github.com/arr-ai/tokparse/grammar"
	"github.com/arr-ai/tokparse/parser"
)

// Builder feeds the file's declarations into a fresh grammar.Builder.
// Shorthand and reference errors surface from Build.
func (f *File) Builder() (*grammar.Builder, error) {
	b := grammar.NewBuilder().StartFrom(f.Start)
	b.IgnoreGlobally(shorthand(f.Ignore)...)

	names := make([]string, 0, len(f.Rules))
	for name := range f.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for i, spec := range f.Rules[name] {
			if err := spec.add(b.Rule(name)); err != nil {
				return nil, fmt.Errorf("rule(%s) variation %d: %w", name, i, err)
			}
		}
	}
	return b, nil
}

// Grammar builds the grammar declared by the file.
func (f *File) Grammar() (grammar.Grammar, error) {
	b, err := f.Builder()
	if err != nil {
		return grammar.Grammar{}, err
	}
	return b.Build()
}

// ParserOptions returns the parser options declared under options.
func (f *File) ParserOptions() parser.Options {
	return parser.Options{MaxDepth: f.Options.MaxDepth}
}

func (s VariationSpec) strategy() (grammar.Strategy, error) {
	var strategies []grammar.Strategy
	if s.Pass {
		strategies = append(strategies, grammar.Pass())
	}
	if s.Select != nil {
		strategies = append(strategies, grammar.Select(*s.Select))
	}
	if s.Node != "" {
		strategies = append(strategies, grammar.Construct(constructor(s.Node)))
	}
	if s.Fold != "" {
		strategies = append(strategies, grammar.Transform(folder(s.Fold)))
	}
	switch len(strategies) {
	case 0:
		return nil, fmt.Errorf("missing strategy: want one of pass, select, node, fold")
	case 1:
		return strategies[0], nil
	default:
		return nil, fmt.Errorf("conflicting strategies %v", strategies)
	}
}

func (s VariationSpec) add(vb *grammar.VariationBuilder) error {
	strategy, err := s.strategy()
	if err != nil {
		return err
	}
	for _, part := range []struct {
		items []interface{}
		add   func(...interface{}) *grammar.VariationBuilder
	}{
		{s.From, vb.From},
		{s.BinaryLoop, vb.BinaryLoop},
		{s.BlockLoop, vb.BlockLoop},
	} {
		if part.items == nil {
			continue
		}
		items, err := content(part.items)
		if err != nil {
			return err
		}
		part.add(items...)
	}
	if s.Ignore != nil {
		vb.Ignoring(shorthand(*s.Ignore)...)
	}
	if s.PreventRollback {
		vb.PreventRollback()
	}
	vb.Finish(strategy)
	return nil
}

// content converts decoded items: strings stay shorthand and nested lists
// become eithers.
func content(items []interface{}) ([]interface{}, error) {
	parts := make([]interface{}, 0, len(items))
	for _, item := range items {
		switch item := item.(type) {
		case string:
			parts = append(parts, item)
		case []interface{}:
			candidates := make([]interface{}, 0, len(item))
			for _, c := range item {
				s, ok := c.(string)
				if !ok {
					return nil, fmt.Errorf("either candidate %v (%T) is not a string", c, c)
				}
				candidates = append(candidates, s)
			}
			parts = append(parts, grammar.OneOf(candidates...))
		default:
			return nil, fmt.Errorf("item %v (%T) is neither a string nor a list", item, item)
		}
	}
	return parts, nil
}

func shorthand(items []string) []interface{} {
	parts := make([]interface{}, 0, len(items))
	for _, item := range items {
		parts = append(parts, item)
	}
	return parts
}
