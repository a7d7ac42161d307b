package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/tokparse/errors"
	"github.com/arr-ai/tokparse/grammar"
	"github.com/arr-ai/tokparse/token"
)

type frameKind int

const (
	topFrame frameKind = iota
	binaryFrame
	blockFrame
)

// frame is one layer of the content stack. Loops push a frame per pass.
type frame struct {
	content grammar.Content
	kind    frameKind
	pos     int
	start   int
}

// evaluation owns all mutable state of a single parse.
type evaluation struct {
	g        grammar.Grammar
	tokens   []token.Token
	index    int
	matched  int // end of the last token matched by content
	depth    int
	maxDepth int
	log      *logrus.Logger
}

// position is a cursor snapshot taken before speculative work.
type position struct {
	index, matched int
}

func (e *evaluation) mark() position { return position{e.index, e.matched} }

func (e *evaluation) reset(p position) { e.index, e.matched = p.index, p.matched }

func (e *evaluation) current() *token.Token {
	if e.index < len(e.tokens) {
		return &e.tokens[e.index]
	}
	return nil
}

// evaluateRule tries each variation of rule in order from the same start
// index. Errors other than *failure are fatal and abort the parse.
func (e *evaluation) evaluateRule(rule string) (out interface{}, err error) {
	defer e.enterf("%s @%d", rule, e.index).exitf("%s: %v %v", rule, &out, &err)

	variations := e.g.Variations(rule)
	if len(variations) == 0 {
		return nil, grammar.UndefinedRule(rule)
	}
	if e.depth >= e.maxDepth {
		return nil, newParseError(DepthExceeded, rule, e.tokens, e.index)
	}
	e.depth++
	defer func() { e.depth-- }()

	start := e.mark()
	failAt := -1
	for _, v := range variations {
		e.reset(start)
		data, fail, err := e.attempt(v)
		if err != nil {
			return nil, err
		}
		if !v.PreventsRollback() {
			e.rollback(v, start.index)
		}
		if fail == nil {
			return v.Strategy().Adapt(data)
		}
		failAt = furthest(failAt, fail.index)
	}

	e.reset(start)
	if failAt < 0 {
		failAt = start.index
	}
	return nil, &failure{index: failAt}
}

// attempt drives one variation. A nil failure means the variation matched,
// possibly by way of a loop that had completed at least one full pass.
func (e *evaluation) attempt(v *grammar.Variation) ([]interface{}, *failure, error) {
	stack := []*frame{{content: v.Content(), kind: topFrame}}
	var data []interface{}
	completed := false

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.pos >= len(top.content) {
			break
		}

		switch item := top.content[top.pos].(type) {
		case grammar.BinaryLoop:
			stack = append(stack, &frame{content: item.Content, kind: binaryFrame, start: e.index})
			folded, err := v.Strategy().Adapt(data)
			if err != nil {
				return nil, nil, err
			}
			data = []interface{}{folded}
			continue
		case grammar.BlockLoop:
			stack = append(stack, &frame{content: item.Content, kind: blockFrame, start: e.index})
			continue
		case grammar.Atom:
			val, err := e.evaluateAtom(item, v)
			if err != nil {
				return e.settle(data, completed, err)
			}
			if !item.Skip {
				data = append(data, val)
			}
		case grammar.Either:
			val, skip, err := e.evaluateEither(item, v)
			if err != nil {
				return e.settle(data, completed, err)
			}
			if !skip {
				data = append(data, val)
			}
		default:
			panic(errors.Inconceivable)
		}

		top.pos++
		if top.kind != blockFrame {
			completed = false
		}
		if top.pos >= len(top.content) {
			stack = stack[:len(stack)-1]
			completed = true
			// a pass that consumed nothing would repeat forever
			if top.kind != topFrame && e.index == top.start {
				break
			}
		}
	}
	return data, nil, nil
}

// settle decides the outcome of an attempt that hit a mismatch.
func (e *evaluation) settle(data []interface{}, completed bool, err error) ([]interface{}, *failure, error) {
	f, ok := asFailure(err)
	if !ok {
		return nil, nil, err
	}
	if completed {
		return data, nil, nil
	}
	return nil, f, nil
}

func (e *evaluation) evaluateAtom(a grammar.Atom, v *grammar.Variation) (interface{}, error) {
	if a.IsRule() {
		return e.evaluateRule(a.Name)
	}
	e.advance(v)
	tok := e.current()
	if !a.Matches(tok) {
		return nil, &failure{index: e.index}
	}
	e.index++
	e.matched = e.index
	return *tok, nil
}

// evaluateEither returns the first matching candidate. The cursor is restored
// between candidates.
func (e *evaluation) evaluateEither(either grammar.Either, v *grammar.Variation) (interface{}, bool, error) {
	start := e.mark()
	failAt := start.index
	for _, c := range either.Candidates {
		val, err := e.evaluateAtom(c, v)
		if err == nil {
			return val, c.Skip, nil
		}
		f, ok := asFailure(err)
		if !ok {
			return nil, false, err
		}
		failAt = furthest(failAt, f.index)
		e.reset(start)
	}
	return nil, false, &failure{index: failAt}
}

// advance skips trivia at the cursor.
func (e *evaluation) advance(v *grammar.Variation) {
	for e.g.Ignores(e.current(), v) {
		e.index++
	}
}

// rollback gives back trivia skipped at the tail of an attempt. It never
// moves before the attempt's start, nor before a token that some rule
// matched explicitly, even one this variation would treat as trivia.
func (e *evaluation) rollback(v *grammar.Variation, floor int) {
	if e.matched > floor {
		floor = e.matched
	}
	for e.index > floor && e.g.Ignores(&e.tokens[e.index-1], v) {
		e.index--
	}
}
