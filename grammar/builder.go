package grammar

import (
	"github.com/arr-ai/frozen"
)

// Builder accumulates rule variations. Variations are committed in call
// order, which is also their match priority.
//
//	b := grammar.NewBuilder()
//	b.Rule("atom").From("@INT").AsNode(NewAtom)
//	b.Rule("atom").From("@OPAREN&", "$expr", "@CPAREN&").Pass()
//	b.StartFrom("atom")
//	g, err := b.Build()
type Builder struct {
	rules   frozen.Map[string, []*Variation]
	ignore  IgnoreSet
	start   string
	pending []*VariationBuilder
	errs    ConfigErrors
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) errorf(rule, format string, args ...interface{}) {
	b.errs = append(b.errs, configErrorf(rule, format, args...))
}

// Rule starts a new variation of the named rule.
func (b *Builder) Rule(name string) *VariationBuilder {
	vb := &VariationBuilder{builder: b, rule: name}
	if name == "" {
		b.errorf("", "empty rule name")
	}
	b.pending = append(b.pending, vb)
	return vb
}

// IgnoreGlobally adds token matchers, as shorthand strings or Atoms, to the
// grammar-wide ignore set.
func (b *Builder) IgnoreGlobally(items ...interface{}) *Builder {
	set, err := toIgnoreSet(items)
	if err != nil {
		b.errorf("", "IgnoreGlobally: %v", err)
		return b
	}
	b.ignore = append(b.ignore, set...)
	return b
}

func (b *Builder) StartFrom(rule string) *Builder {
	b.start = rule
	return b
}

func (b *Builder) commit(v *Variation) {
	variations, _ := b.rules.Get(v.rule)
	variations = append(append(make([]*Variation, 0, len(variations)+1), variations...), v)
	b.rules = b.rules.With(v.rule, variations)
}

// Build validates everything added so far and returns the grammar.
func (b *Builder) Build() (Grammar, error) {
	errs := append(ConfigErrors{}, b.errs...)
	for _, vb := range b.pending {
		if !vb.done {
			errs = append(errs, configErrorf(vb.rule, "variation %v was never finalized", vb.content))
		}
	}
	g := Grammar{
		rules:  b.rules,
		ignore: append(IgnoreSet{}, b.ignore...),
		start:  b.start,
	}
	errs = append(errs, g.validate()...)
	if len(errs) > 0 {
		return Grammar{}, errs
	}
	return g, nil
}

func (b *Builder) MustBuild() Grammar {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

//-----------------------------------------------------------------------------

// VariationBuilder is the chain for a single variation. It is consumed by
// exactly one finalizer: AsNode, Pass, Transform, Select or Finish.
type VariationBuilder struct {
	builder         *Builder
	rule            string
	content         Content
	ignore          IgnoreSet
	overridesIgnore bool
	preventRollback bool
	done            bool
}

func (v *VariationBuilder) open(op string) bool {
	if v.done {
		v.builder.errorf(v.rule, "%s called on a finalized variation", op)
		return false
	}
	return true
}

func (v *VariationBuilder) add(op string, parts []interface{}, wrap func(Content) Item) *VariationBuilder {
	if !v.open(op) {
		return v
	}
	content, err := toContent(parts)
	if err != nil {
		v.builder.errorf(v.rule, "%s: %v", op, err)
		return v
	}
	if wrap != nil {
		v.content = append(v.content, wrap(content))
	} else {
		v.content = append(v.content, content...)
	}
	return v
}

// From appends items given as shorthand strings, Atoms, Eithers or loops.
func (v *VariationBuilder) From(parts ...interface{}) *VariationBuilder {
	return v.add("From", parts, nil)
}

func (v *VariationBuilder) BinaryLoop(parts ...interface{}) *VariationBuilder {
	return v.add("BinaryLoop", parts, func(c Content) Item { return BinaryLoop{Content: c} })
}

func (v *VariationBuilder) BlockLoop(parts ...interface{}) *VariationBuilder {
	return v.add("BlockLoop", parts, func(c Content) Item { return BlockLoop{Content: c} })
}

// Ignoring replaces the global ignore set for this variation. With no items,
// nothing is ignored.
func (v *VariationBuilder) Ignoring(items ...interface{}) *VariationBuilder {
	if !v.open("Ignoring") {
		return v
	}
	set, err := toIgnoreSet(items)
	if err != nil {
		v.builder.errorf(v.rule, "Ignoring: %v", err)
		return v
	}
	v.ignore = append(v.ignore, set...)
	v.overridesIgnore = true
	return v
}

func (v *VariationBuilder) PreventRollback() *VariationBuilder {
	if v.open("PreventRollback") {
		v.preventRollback = true
	}
	return v
}

// AsNode finalizes with Construct(ctor).
func (v *VariationBuilder) AsNode(ctor interface{}) {
	v.Finish(Construct(ctor))
}

func (v *VariationBuilder) Pass() {
	v.Finish(Pass())
}

func (v *VariationBuilder) Transform(fn TransformFunc) {
	v.Finish(Transform(fn))
}

func (v *VariationBuilder) Select(index int) {
	v.Finish(Select(index))
}

// Finish commits the variation with the given strategy.
func (v *VariationBuilder) Finish(s Strategy) {
	if v.done {
		v.builder.errorf(v.rule, "variation %v finalized twice", v.content)
		return
	}
	v.done = true
	if s == nil {
		v.builder.errorf(v.rule, "nil strategy")
		return
	}
	if val, ok := s.(validator); ok {
		if err := val.validate(); err != nil {
			v.builder.errorf(v.rule, "%v", err)
			return
		}
	}
	v.builder.commit(&Variation{
		rule:            v.rule,
		content:         v.content,
		strategy:        s,
		ignore:          v.ignore,
		overridesIgnore: v.overridesIgnore,
		preventRollback: v.preventRollback,
	})
}
