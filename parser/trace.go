package parser

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type exiter struct {
	log    *logrus.Logger
	indent string
}

// enterf logs entry into an evaluation step. Pair with a deferred exitf:
//
//	defer e.enterf("rule %s", name).exitf("%v %v", &out, &err)
func (e *evaluation) enterf(format string, args ...interface{}) exiter {
	if !e.log.IsLevelEnabled(logrus.TraceLevel) {
		return exiter{}
	}
	indent := strings.Repeat("  ", e.depth)
	e.log.Tracef("%s--> %s", indent, fmt.Sprintf(format, args...))
	return exiter{log: e.log, indent: indent}
}

// exitf dereferences pointer arguments so deferred calls see final values.
func (x exiter) exitf(format string, args ...interface{}) {
	if x.log == nil {
		return
	}
	for i, arg := range args {
		switch p := arg.(type) {
		case *interface{}:
			args[i] = *p
		case *error:
			args[i] = *p
		}
	}
	x.log.Tracef("%s<-- %s", x.indent, fmt.Sprintf(format, args...))
}
