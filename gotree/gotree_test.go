package gotree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type branch struct {
	label    string
	children []interface{}
}

func (b branch) Label() string           { return b.label }
func (b branch) Branches() []interface{} { return b.children }

func TestPrint(t *testing.T) {
	t.Parallel()

	root := New("root")
	a := root.Add("a")
	a.Add("a1")
	a.Add("a2")
	root.Add("b\nmore")

	assert.Equal(t, `root
├── a
│   ├── a1
│   └── a2
└── b
    more
`, root.Print())
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	v := branch{label: "add", children: []interface{}{
		1,
		branch{label: "mul", children: []interface{}{2, nil}},
		[]interface{}{"x", "y"},
	}}

	assert.Equal(t, `result: add
├── 1
├── mul
│   ├── 2
│   └── <nil>
└── [2]
    ├── x
    └── y
`, FromValue("result", v).Print())
}
