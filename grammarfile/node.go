package grammarfile

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Node is the generic result of a node or fold strategy.
type Node struct {
	Tag      string
	Children []interface{}
}

func (n Node) Label() string           { return n.Tag }
func (n Node) Branches() []interface{} { return n.Children }

func (n Node) String() string {
	children := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, fmt.Sprint(c))
	}
	return n.Tag + "(" + strings.Join(children, ", ") + ")"
}

// nodeTag normalises tags so that binary_op, binary-op and BinaryOp agree.
func nodeTag(tag string) string {
	return strcase.ToCamel(tag)
}

func constructor(tag string) func(children ...interface{}) Node {
	tag = nodeTag(tag)
	return func(children ...interface{}) Node {
		return Node{Tag: tag, Children: children}
	}
}

// folder builds left-nested nodes from binary loop data. A single value
// passes through.
func folder(tag string) func([]interface{}) interface{} {
	tag = nodeTag(tag)
	return func(data []interface{}) interface{} {
		if len(data) == 1 {
			return data[0]
		}
		return Node{Tag: tag, Children: append([]interface{}{}, data...)}
	}
}
