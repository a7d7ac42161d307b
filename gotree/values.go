package gotree

import "fmt"

// Brancher is implemented by result values that have children worth drawing.
type Brancher interface {
	Label() string
	Branches() []interface{}
}

// FromValue converts a parse result into a tree. Branchers and slices become
// inner nodes; everything else is printed with %v.
func FromValue(label string, v interface{}) Tree {
	switch v := v.(type) {
	case Brancher:
		t := New(join(label, v.Label()))
		for _, child := range v.Branches() {
			t.AddTree(FromValue("", child))
		}
		return t
	case []interface{}:
		t := New(join(label, fmt.Sprintf("[%d]", len(v))))
		for _, child := range v {
			t.AddTree(FromValue("", child))
		}
		return t
	case nil:
		return New(join(label, "<nil>"))
	}
	return New(join(label, fmt.Sprintf("%v", v)))
}

func join(label, text string) string {
	if label == "" {
		return text
	}
	return label + ": " + text
}
