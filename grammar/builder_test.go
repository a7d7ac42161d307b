package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreservesVariationOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Rule("atom").From("@INT").Pass()
	b.Rule("expr").From("$atom").Pass()
	b.Rule("atom").From("@FLOAT").Pass()
	b.Rule("atom").From("@OPAREN&", "$expr", "@CPAREN&").Select(0)
	g, err := b.StartFrom("expr").Build()
	require.NoError(t, err)

	assert.Equal(t, "expr", g.Start())
	assert.Equal(t, []string{"atom", "expr"}, g.Rules())
	assert.True(t, g.Has("atom"))
	assert.False(t, g.Has("term"))
	assert.Nil(t, g.Variations("term"))

	atoms := g.Variations("atom")
	require.Len(t, atoms, 3)
	assert.Equal(t, "@INT", atoms[0].Content().String())
	assert.Equal(t, "@FLOAT", atoms[1].Content().String())
	assert.Equal(t, "@OPAREN& $expr @CPAREN&", atoms[2].Content().String())
	assert.Equal(t, "atom", atoms[2].Rule())
	assert.Equal(t, "select(0)", atoms[2].Strategy().String())
}

func TestGrammarString(t *testing.T) {
	t.Parallel()

	b := NewBuilder().IgnoreGlobally("@NL", "@COMMENT")
	b.Rule("atom").From("@INT:1", "@OPAREN&").Select(0)
	b.Rule("expr").From("$atom").BinaryLoop(OneOf("@ADD", "@SUB&"), "$atom").Pass()
	b.Rule("expr").BlockLoop("$atom", "@NL&").Ignoring().PreventRollback().Pass()
	b.Rule("expr").From("$atom").Ignoring("@SP").Pass()
	g := b.StartFrom("expr").MustBuild()

	assert.Equal(t, `start: expr
ignore: @NL @COMMENT
atom -> @INT:1 @OPAREN& => select(0)
expr -> $atom binary{(@ADD | @SUB&) $atom} => pass
expr -> block{$atom @NL&} => pass ignoring[] !rollback
expr -> $atom => pass ignoring[@SP]
`, g.String())
}

func TestGrammarCannotBeMutatedThroughAccessors(t *testing.T) {
	t.Parallel()

	b := NewBuilder().IgnoreGlobally("@NL")
	b.Rule("a").From("@X").BlockLoop("$a", OneOf("@Y", "@Z")).Ignoring("@SP").Pass()
	b.Rule("a").From("@W").Pass()
	g := b.StartFrom("a").MustBuild()
	before := g.String()

	g.IgnoreSet()[0] = TokenAtom("X")
	v := g.Variations("a")
	content := v[0].Content()
	content[0] = TokenAtom("Q")
	content[1].(BlockLoop).Content[0] = TokenAtom("Q")
	content[1].(BlockLoop).Content[1].(Either).Candidates[0] = TokenAtom("Q")
	override, has := v[0].IgnoreOverride()
	require.True(t, has)
	override[0] = TokenAtom("Q")
	v[0], v[1] = v[1], v[0]

	assert.Equal(t, before, g.String())
}

func TestBuilderIsReusable(t *testing.T) {
	t.Parallel()

	b := NewBuilder().StartFrom("a")
	b.Rule("a").From("@X").Pass()
	first := b.MustBuild()
	b.Rule("a").From("@Y").Pass()
	second := b.MustBuild()

	assert.Len(t, first.Variations("a"), 1)
	assert.Len(t, second.Variations("a"), 2)
}

func TestConfigErrors(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name  string
		build func(b *Builder)
		msg   string
	}{
		{"undefined rule", func(b *Builder) {
			b.Rule("a").From("$b").Pass()
		}, "grammar: rule(a) - variation 0 references undefined rule $b"},
		{"undefined rule in either", func(b *Builder) {
			b.Rule("a").From("@X").Pass()
			b.Rule("a").From(OneOf("@X", "$c")).Pass()
		}, "grammar: rule(a) - variation 1 references undefined rule $c"},
		{"undefined rule in loop", func(b *Builder) {
			b.Rule("a").From("@X").BlockLoop("$d").Pass()
		}, "grammar: rule(a) - variation 0 references undefined rule $d"},
		{"no start rule", func(b *Builder) {
			b.StartFrom("")
		}, "grammar: no start rule"},
		{"undefined start rule", func(b *Builder) {
			b.StartFrom("missing")
		}, "grammar: rule(missing) - start rule is not defined"},
		{"empty rule name", func(b *Builder) {
			b.Rule("").From("@X").Pass()
		}, "grammar: empty rule name"},
		{"missing sigil", func(b *Builder) {
			b.Rule("a").From("X").Pass()
		}, `grammar: rule(a) - From: "X": expecting '@' or '$' sigil`},
		{"rule with value", func(b *Builder) {
			b.Rule("a").BinaryLoop("$a:1").Pass()
		}, `grammar: rule(a) - BinaryLoop: "$a:1": rule references cannot carry a value`},
		{"bad either candidate", func(b *Builder) {
			b.Rule("a").From(OneOf("@X", "Y")).Pass()
		}, `grammar: rule(a) - From: "Y": expecting '@' or '$' sigil`},
		{"empty either", func(b *Builder) {
			b.Rule("a").From(OneOf()).Pass()
		}, "grammar: rule(a) - variation 0 has an empty either"},
		{"loop not last", func(b *Builder) {
			b.Rule("a").From("@X").BinaryLoop("@ADD", "@X").From("@Y").Pass()
		}, "grammar: rule(a) - variation 0: binary{@ADD @X} must be the last item"},
		{"nested loop", func(b *Builder) {
			b.Rule("a").BlockLoop("@X", BinaryLoop{Content: Content{TokenAtom("Y")}}).Pass()
		}, "grammar: rule(a) - variation 0 nests binary{@Y} inside a loop"},
		{"empty loop", func(b *Builder) {
			b.Rule("a").From("@X").BlockLoop().Pass()
		}, "grammar: rule(a) - variation 0 has an empty loop"},
		{"rule in ignore set", func(b *Builder) {
			b.IgnoreGlobally("$ok")
		}, "grammar: IgnoreGlobally: ignore entries must be token atoms, not $ok"},
		{"rule in ignore override", func(b *Builder) {
			b.Rule("a").From("@X").Ignoring("$ok").Pass()
		}, "grammar: rule(a) - Ignoring: ignore entries must be token atoms, not $ok"},
		{"finalized twice", func(b *Builder) {
			vb := b.Rule("a").From("@X")
			vb.Pass()
			vb.Pass()
		}, "grammar: rule(a) - variation @X finalized twice"},
		{"never finalized", func(b *Builder) {
			b.Rule("a").From("@X")
		}, "grammar: rule(a) - variation @X was never finalized"},
		{"chained after finalize", func(b *Builder) {
			vb := b.Rule("a").From("@X")
			vb.Pass()
			vb.PreventRollback()
		}, "grammar: rule(a) - PreventRollback called on a finalized variation"},
		{"nil strategy", func(b *Builder) {
			b.Rule("a").From("@X").Finish(nil)
		}, "grammar: rule(a) - nil strategy"},
		{"nil transform", func(b *Builder) {
			b.Rule("a").From("@X").Transform(nil)
		}, "grammar: rule(a) - nil transform"},
		{"negative select", func(b *Builder) {
			b.Rule("a").From("@X").Select(-1)
		}, "grammar: rule(a) - negative select index -1"},
		{"constructor is not a func", func(b *Builder) {
			b.Rule("a").From("@X").AsNode(42)
		}, "grammar: rule(a) - node constructor must be a func, not int"},
		{"constructor returns too much", func(b *Builder) {
			b.Rule("a").From("@X").AsNode(func() (int, int) { return 0, 0 })
		}, "grammar: rule(a) - node constructor func() (int, int) must return (node) or (node, error)"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b := NewBuilder()
			b.Rule("ok").From("@X").Pass()
			b.StartFrom("ok")
			test.build(b)

			_, err := b.Build()
			require.Error(t, err)
			require.IsType(t, ConfigErrors{}, err)
			assert.Len(t, err.(ConfigErrors), 1)
			assert.EqualError(t, err, test.msg)
		})
	}
}

func TestConfigErrorsTree(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Rule("a").From("X").Pass()
	_, err := b.Build()
	assert.EqualError(t, err, `
invalid grammar
├── grammar: rule(a) - From: "X": expecting '@' or '$' sigil
└── grammar: no start rule
`)
}

func TestMustBuildPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewBuilder().MustBuild() })
}
