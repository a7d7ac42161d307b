package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/tokparse/gotree"
	"github.com/arr-ai/tokparse/grammar"
)

var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Validate a grammar file and list its rules",
	Action:  check,
	Flags:   []cli.Flag{grammarFlag},
}

// describe renders the rules of g and the variations of each rule.
func describe(name string, g grammar.Grammar) string {
	tree := gotree.New(fmt.Sprintf("%s (start: %s)", name, g.Start()))
	if ignore := g.IgnoreSet(); len(ignore) > 0 {
		tree.Add(fmt.Sprintf("ignore %v", ignore))
	}
	for _, rule := range g.Rules() {
		variations := g.Variations(rule)
		r := tree.Add(fmt.Sprintf("%s [%d]", rule, len(variations)))
		for _, v := range variations {
			r.Add(v.String())
		}
	}
	return tree.Print()
}

func check(c *cli.Context) error {
	g, _, err := loadGrammar(inGrammarFile)
	if err != nil {
		return err
	}
	name := inGrammarFile
	if name == "" {
		name = "calc"
	}
	fmt.Print(describe(name, g))
	return nil
}
