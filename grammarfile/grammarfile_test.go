package grammarfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/tokparse/gotree"
	"github.com/arr-ai/tokparse/grammar"
	"github.com/arr-ai/tokparse/parser"
	"github.com/arr-ai/tokparse/token"
)

func load(t *testing.T, path string) (*File, *parser.Parser) {
	t.Helper()
	f, err := Load(path)
	require.NoError(t, err)
	g, err := f.Grammar()
	require.NoError(t, err)
	return f, parser.New(g, f.ParserOptions())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"testdata/arith.yaml", "testdata/arith.toml"} {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			f, p := load(t, path)
			assert.Equal(t, "expr", f.Start)
			assert.Equal(t, []string{"@NL"}, f.Ignore)
			assert.Equal(t, 256, f.ParserOptions().MaxDepth)
			assert.Equal(t, []string{"atom", "expr", "list", "term"}, p.Grammar().Rules())

			parser.AssertParses(t, p, "INT:1 ADD INT:2 MUL INT:3",
				"BinaryOp(Literal([INT:1]), [ADD], BinaryOp(Literal([INT:2]), [MUL], Literal([INT:3])))")
			parser.AssertParses(t, p, "OPAREN INT:1 NL SUB INT:2 CPAREN",
				"BinaryOp(Literal([INT:1]), [SUB], Literal([INT:2]))")
			parser.AssertParseError(t, p, "INT:1 ADD", parser.TrailingInput, 1)

			v, err := p.ParseRule("list", token.MustScan("INT:1 SEMI INT:2 ADD INT:3 SEMI"))
			require.NoError(t, err)
			assert.Equal(t, "List(Literal([INT:1]), BinaryOp(Literal([INT:2]), [ADD], Literal([INT:3])))", v.(Node).String())
		})
	}
}

func TestFormatsAgree(t *testing.T) {
	t.Parallel()

	_, y := load(t, "testdata/arith.yaml")
	_, o := load(t, "testdata/arith.toml")
	assert.Equal(t, y.Grammar().String(), o.Grammar().String())
}

func TestNodeTree(t *testing.T) {
	t.Parallel()

	_, p := load(t, "testdata/arith.yaml")
	v, err := p.Parse(token.MustScan("INT:1 ADD INT:2"))
	require.NoError(t, err)
	assert.Equal(t, `BinaryOp
├── Literal
│   └── [INT:1]
├── [ADD]
└── Literal
    └── [INT:2]
`, gotree.FromValue("", v).Print())
}

func TestNodeTag(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"binary_op", "binary-op", "BinaryOp", "binaryOp", "binary op"} {
		assert.Equal(t, "BinaryOp", nodeTag(tag), tag)
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	f, err := FormatOf("x/calc.YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	f, err = FormatOf("calc.toml")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
	_, err = FormatOf("calc.json")
	assert.Error(t, err)

	_, err = Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml syntax", YAML, "rules: [\n"},
		{"yaml unknown key", YAML, "start: a\nstrat: b\n"},
		{"yaml unknown variation key", YAML, "rules:\n  a:\n    - frm: ['@X']\n"},
		{"toml syntax", TOML, "start = \n"},
		{"toml unknown key", TOML, "start = \"a\"\nstrat = \"b\"\n"},
		{"no format", 0, "start: a\n"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(test.data), test.format)
			assert.Error(t, err)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string
		data string
		msg  string
	}{
		{"missing strategy", "start: a\nrules:\n  a:\n    - from: ['@X']\n",
			"rule(a) variation 0: missing strategy: want one of pass, select, node, fold"},
		{"conflicting strategies", "start: a\nrules:\n  a:\n    - from: ['@X']\n      pass: true\n      select: 0\n",
			"rule(a) variation 0: conflicting strategies [pass select(0)]"},
		{"bad candidate", "start: a\nrules:\n  a:\n    - from: [['@X', 1]]\n      pass: true\n",
			"rule(a) variation 0: either candidate 1 (int) is not a string"},
		{"bad item", "start: a\nrules:\n  a:\n    - from: [{x: 1}]\n      pass: true\n",
			"rule(a) variation 0: item map[x:1] (map[string]interface {}) is neither a string nor a list"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			f, err := Decode([]byte(test.data), YAML)
			require.NoError(t, err)
			_, err = f.Grammar()
			assert.EqualError(t, err, test.msg)
		})
	}
}

func TestGrammarErrors(t *testing.T) {
	t.Parallel()

	f, err := Decode([]byte("start: a\nrules:\n  a:\n    - from: ['X', '$b']\n      pass: true\n"), YAML)
	require.NoError(t, err)
	_, err = f.Grammar()
	require.IsType(t, grammar.ConfigErrors{}, err)
	assert.Len(t, err.(grammar.ConfigErrors), 1)
}
