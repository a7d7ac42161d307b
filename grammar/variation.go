package grammar

import "fmt"

// Variation is one alternative of a named rule. It is immutable once a
// finalizer has committed it.
type Variation struct {
	rule            string
	content         Content
	strategy        Strategy
	ignore          IgnoreSet
	overridesIgnore bool
	preventRollback bool
}

func (v *Variation) Rule() string { return v.rule }

// Content returns a copy of the variation's content, so the variation stays
// immutable whatever the caller does with it.
func (v *Variation) Content() Content { return v.content.clone() }

func (v *Variation) Strategy() Strategy { return v.strategy }

// IgnoreOverride returns a copy of the variation's own ignore set, if it has
// one. An override replaces the grammar's global set, and may be empty.
func (v *Variation) IgnoreOverride() (IgnoreSet, bool) {
	if !v.overridesIgnore {
		return nil, false
	}
	return append(IgnoreSet{}, v.ignore...), true
}

func (v *Variation) PreventsRollback() bool { return v.preventRollback }

func (v *Variation) String() string {
	s := fmt.Sprintf("%s -> %v => %s", v.rule, v.content, v.strategy)
	if v.overridesIgnore {
		s += fmt.Sprintf(" ignoring%v", v.ignore)
	}
	if v.preventRollback {
		s += " !rollback"
	}
	return s
}
