// Package gotree builds labelled trees and prints them with box-drawing
// connectors.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a labelled node with ordered children.
type Tree interface {
	Add(text string) Tree
	AddTree(tree Tree)
	Items() []Tree
	Text() string
	Print() string
}

type tree struct {
	text  string
	items []Tree
}

func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a leaf and returns it so that it can grow children.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string  { return t.text }
func (t *tree) Items() []Tree { return t.items }

func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text + newLine)
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, prefix string) {
	for i, item := range items {
		last := i == len(items)-1
		head, tail := middleItem, continueItem
		if last {
			head, tail = lastItem, emptySpace
		}
		// multi-line labels keep their continuation lines under the connector
		for j, line := range strings.Split(item.Text(), "\n") {
			if j == 0 {
				sb.WriteString(prefix + head + line + newLine)
			} else {
				sb.WriteString(prefix + tail + line + newLine)
			}
		}
		printItems(sb, item.Items(), prefix+tail)
	}
}
