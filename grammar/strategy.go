package grammar

import (
	"fmt"
	"reflect"
	"runtime"

	goerrors "github.com/go-errors/errors"
)

// Strategy turns the data captured by a variation into its result value.
type Strategy interface {
	Adapt(data []interface{}) (interface{}, error)
	String() string
}

// TransformFunc is a pure function over the captured data.
type TransformFunc func(data []interface{}) interface{}

// AdaptError reports a strategy that could not produce a value. These are
// programmer errors in the grammar's strategies, not input errors.
type AdaptError struct {
	Strategy string
	Msg      string
	Cause    error
}

func (e AdaptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Strategy, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Strategy, e.Msg)
}

func (e AdaptError) Unwrap() error { return e.Cause }

// Stack returns the goroutine stack captured when a strategy panicked.
func (e AdaptError) Stack() string {
	if ge, ok := e.Cause.(*goerrors.Error); ok {
		return ge.ErrorStack()
	}
	return ""
}

func recoverAdapt(s Strategy, err *error) {
	if r := recover(); r != nil {
		*err = AdaptError{Strategy: s.String(), Msg: "panicked", Cause: goerrors.Wrap(r, 2)}
	}
}

type validator interface {
	validate() error
}

//-----------------------------------------------------------------------------

type passStrategy struct{}

// Pass returns the single captured value unchanged.
func Pass() Strategy { return passStrategy{} }

func (passStrategy) String() string { return "pass" }

func (passStrategy) Adapt(data []interface{}) (interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return data[0], nil
}

//-----------------------------------------------------------------------------

type transformStrategy struct {
	fn TransformFunc
}

func Transform(fn TransformFunc) Strategy { return transformStrategy{fn: fn} }

func (s transformStrategy) String() string { return "transform(" + funcName(reflect.ValueOf(s.fn)) + ")" }

func (s transformStrategy) validate() error {
	if s.fn == nil {
		return fmt.Errorf("nil transform")
	}
	return nil
}

func (s transformStrategy) Adapt(data []interface{}) (out interface{}, err error) {
	defer recoverAdapt(s, &err)
	return s.fn(data), nil
}

//-----------------------------------------------------------------------------

type selectStrategy struct {
	index int
}

// Select returns the captured value at index.
func Select(index int) Strategy { return selectStrategy{index: index} }

func (s selectStrategy) String() string { return fmt.Sprintf("select(%d)", s.index) }

func (s selectStrategy) validate() error {
	if s.index < 0 {
		return fmt.Errorf("negative select index %d", s.index)
	}
	return nil
}

func (s selectStrategy) Adapt(data []interface{}) (interface{}, error) {
	if s.index >= len(data) {
		return nil, AdaptError{
			Strategy: s.String(),
			Msg:      fmt.Sprintf("only %d value(s) captured", len(data)),
		}
	}
	return data[s.index], nil
}

//-----------------------------------------------------------------------------

type constructStrategy struct {
	ctor reflect.Value
	err  error
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Construct calls ctor with the captured values as positional arguments.
// ctor must be a function returning the node, or the node and an error.
// Variadic constructors absorb any trailing values.
func Construct(ctor interface{}) Strategy {
	v := reflect.ValueOf(ctor)
	s := constructStrategy{ctor: v}
	switch {
	case ctor == nil || v.Kind() != reflect.Func:
		s.err = fmt.Errorf("node constructor must be a func, not %T", ctor)
	case v.IsNil():
		s.err = fmt.Errorf("nil node constructor")
	case v.Type().NumOut() == 1:
	case v.Type().NumOut() == 2 && v.Type().Out(1) == errorType:
	default:
		s.err = fmt.Errorf("node constructor %s must return (node) or (node, error)", v.Type())
	}
	return s
}

func (s constructStrategy) String() string {
	if s.err != nil {
		return "construct(?)"
	}
	return "construct(" + funcName(s.ctor) + ")"
}

func (s constructStrategy) validate() error { return s.err }

func (s constructStrategy) paramType(i int) reflect.Type {
	t := s.ctor.Type()
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func (s constructStrategy) Adapt(data []interface{}) (out interface{}, err error) {
	if s.err != nil {
		return nil, AdaptError{Strategy: s.String(), Msg: "invalid constructor", Cause: s.err}
	}
	t := s.ctor.Type()
	n := len(data)
	if t.IsVariadic() && n < t.NumIn()-1 || !t.IsVariadic() && n != t.NumIn() {
		return nil, AdaptError{
			Strategy: s.String(),
			Msg:      fmt.Sprintf("%s cannot take %d value(s)", t, n),
		}
	}
	args := make([]reflect.Value, 0, n)
	for i, d := range data {
		pt := s.paramType(i)
		if d == nil {
			args = append(args, reflect.Zero(pt))
			continue
		}
		v := reflect.ValueOf(d)
		if !v.Type().AssignableTo(pt) {
			return nil, AdaptError{
				Strategy: s.String(),
				Msg:      fmt.Sprintf("cannot use %T as %s in argument %d", d, pt, i),
			}
		}
		args = append(args, v)
	}

	defer recoverAdapt(s, &err)
	results := s.ctor.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, AdaptError{
			Strategy: s.String(),
			Msg:      "constructor failed",
			Cause:    results[1].Interface().(error),
		}
	}
	return results[0].Interface(), nil
}

func funcName(v reflect.Value) string {
	if v.Kind() != reflect.Func || v.IsNil() {
		return "?"
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return "?"
}
