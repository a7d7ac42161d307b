package grammar

import (
	"github.com/arr-ai/frozen"
)

func (g Grammar) validate() ConfigErrors {
	var errs ConfigErrors
	switch {
	case g.start == "":
		errs = append(errs, configErrorf("", "no start rule"))
	case !g.Has(g.start):
		errs = append(errs, configErrorf(g.start, "start rule is not defined"))
	}

	for _, rule := range g.Rules() {
		for i, v := range g.Variations(rule) {
			refs := frozen.NewSet[string]()
			errs = append(errs, checkContent(rule, i, v.content, false, &refs)...)
			for _, ref := range refs.OrderedElements(stringLess) {
				if !g.Has(ref) {
					errs = append(errs, configErrorf(rule, "variation %d references undefined rule $%s", i, ref))
				}
			}
		}
	}
	return errs
}

func checkContent(rule string, variation int, content Content, inLoop bool, refs *frozen.Set[string]) ConfigErrors {
	var errs ConfigErrors
	for i, item := range content {
		switch item := item.(type) {
		case Atom:
			if item.IsRule() {
				*refs = refs.With(item.Name)
			}
		case Either:
			if len(item.Candidates) == 0 {
				errs = append(errs, configErrorf(rule, "variation %d has an empty either", variation))
			}
			for _, a := range item.Candidates {
				if a.IsRule() {
					*refs = refs.With(a.Name)
				}
			}
		case BinaryLoop, BlockLoop:
			var loop Content
			switch item := item.(type) {
			case BinaryLoop:
				loop = item.Content
			case BlockLoop:
				loop = item.Content
			}
			switch {
			case inLoop:
				errs = append(errs, configErrorf(rule, "variation %d nests %v inside a loop", variation, item))
			case i != len(content)-1:
				errs = append(errs, configErrorf(rule, "variation %d: %v must be the last item", variation, item))
			case len(loop) == 0:
				errs = append(errs, configErrorf(rule, "variation %d has an empty loop", variation))
			}
			errs = append(errs, checkContent(rule, variation, loop, true, refs)...)
		}
	}
	return errs
}
