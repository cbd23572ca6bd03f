package eval

import (
	"fmt"

	"github.com/sunholo/mltt/internal/syntax"
)

// Evaluator reduces terms to values. β-reduction happens eagerly whenever an
// application head evaluates to a closure; everything else becomes a neutral.
type Evaluator struct{}

// New creates a new Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates a term under an environment. A nil environment is treated
// as empty. Evaluation never fails on open terms: a free variable evaluates
// to a VarValue. The only failure mode is a term outside the five shapes,
// which is a programmer error and panics.
func (e *Evaluator) Eval(t syntax.Term, env *Environment) Value {
	if env == nil {
		env = NewEnvironment()
	}
	switch t := t.(type) {
	case *syntax.Var:
		if v, ok := env.Get(t.Name); ok {
			return v
		}
		return &VarValue{Name: t.Name}

	case *syntax.Universe:
		return &UniverseValue{Level: t.Level}

	case *syntax.Lam:
		return &ClosureValue{
			Env:    env.Snapshot(),
			Param:  t.Binder,
			Domain: t.Domain,
			Body:   t.Body,
		}

	case *syntax.App:
		fn := e.Eval(t.Fn, env)
		arg := e.Eval(t.Arg, env)
		if closure, ok := fn.(*ClosureValue); ok {
			return e.Apply(closure, arg)
		}
		// Stuck application: record the argument on the spine.
		return &NeutralValue{Head: t, Args: []Value{arg}}

	case *syntax.Pi:
		return &NeutralValue{Head: t}
	}
	panic(fmt.Sprintf("eval: unknown term shape %T", t))
}

// Apply β-reduces a closure with an argument value.
func (e *Evaluator) Apply(closure *ClosureValue, arg Value) Value {
	return e.Eval(closure.Body, closure.Env.Extend(closure.Param, arg))
}
