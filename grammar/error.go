package grammar

import (
	"fmt"

	"github.com/arr-ai/tokparse/gotree"
)

// ConfigError is a mistake in the grammar itself rather than in the input.
type ConfigError struct {
	Rule string
	Msg  string
}

func configErrorf(rule, format string, args ...interface{}) ConfigError {
	return ConfigError{Rule: rule, Msg: fmt.Sprintf(format, args...)}
}

func UndefinedRule(rule string) ConfigError {
	return ConfigError{Rule: rule, Msg: "rule is not defined"}
}

func (e ConfigError) Error() string {
	if e.Rule == "" {
		return "grammar: " + e.Msg
	}
	return fmt.Sprintf("grammar: rule(%s) - %s", e.Rule, e.Msg)
}

// ConfigErrors is every problem found while building a grammar.
type ConfigErrors []ConfigError

func (e ConfigErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	tree := gotree.New("invalid grammar")
	for _, err := range e {
		tree.Add(err.Error())
	}
	return "\n" + tree.Print()
}
