package eval

import (
	"github.com/sunholo/mltt/internal/syntax"
)

// Normalizer drives normalization by evaluation: it evaluates terms to
// values, reads values back as canonical terms, and decides value equality.
type Normalizer struct {
	ev *Evaluator
}

// NewNormalizer creates a Normalizer over an Evaluator.
func NewNormalizer(ev *Evaluator) *Normalizer {
	return &Normalizer{ev: ev}
}

// Normalize evaluates a term under the empty environment.
func (n *Normalizer) Normalize(t syntax.Term) Value {
	return n.ev.Eval(t, NewEnvironment())
}

// Fresh mints a name based on base that is not in the busy set.
func (n *Normalizer) Fresh(base string, busy map[string]bool) string {
	name := base
	for busy[name] {
		name += "'"
	}
	return name
}

// Reify reads a value back as a canonical term. Together with Normalize it
// yields normal forms: Normalize(Reify(Normalize(t))) equals Normalize(t).
func (n *Normalizer) Reify(v Value) syntax.Term {
	switch v := v.(type) {
	case *UniverseValue:
		return &syntax.Universe{Level: v.Level}

	case *VarValue:
		return &syntax.Var{Name: v.Name}

	case *ClosureValue:
		domain := n.Reify(n.ev.Eval(v.Domain, v.Env))
		body := n.Reify(n.ev.Apply(v, &VarValue{Name: v.Param}))
		return &syntax.Lam{Binder: v.Param, Domain: domain, Body: body}

	case *NeutralValue:
		switch head := v.Head.(type) {
		case *syntax.Pi:
			pi := &syntax.Pi{
				Binder:   head.Binder,
				Domain:   n.Reify(n.ev.Eval(head.Domain, nil)),
				Codomain: n.Reify(n.ev.Eval(head.Codomain, nil)),
			}
			return n.applySpine(pi, v.Args)
		case *syntax.App:
			fn := n.Reify(n.ev.Eval(head.Fn, nil))
			return n.applySpine(fn, v.Args)
		default:
			return n.applySpine(v.Head, v.Args)
		}
	}
	return nil
}

func (n *Normalizer) applySpine(fn syntax.Term, args []Value) syntax.Term {
	t := fn
	for _, arg := range args {
		t = &syntax.App{Fn: t, Arg: n.Reify(arg)}
	}
	return t
}

// ValuesEqual decides equality of two values. Closures are compared by
// evaluating both bodies with the same fresh free variable substituted for
// their binders, which handles α-renaming. Neutrals are equal when their
// heads are syntactically equal and their spines are pairwise equal.
func (n *Normalizer) ValuesEqual(v1, v2 Value) bool {
	switch v1 := v1.(type) {
	case *UniverseValue:
		v2, ok := v2.(*UniverseValue)
		return ok && v1.Level == v2.Level

	case *VarValue:
		v2, ok := v2.(*VarValue)
		return ok && v1.Name == v2.Name

	case *ClosureValue:
		v2, ok := v2.(*ClosureValue)
		if !ok {
			return false
		}
		busy := syntax.FreeVars(v1.Body)
		for name := range syntax.FreeVars(v2.Body) {
			busy[name] = true
		}
		busy[v1.Param] = true
		busy[v2.Param] = true
		fresh := &VarValue{Name: n.Fresh(v1.Param, busy)}
		b1 := n.ev.Eval(v1.Body, v1.Env.Extend(v1.Param, fresh))
		b2 := n.ev.Eval(v2.Body, v2.Env.Extend(v2.Param, fresh))
		return n.ValuesEqual(b1, b2)

	case *NeutralValue:
		v2, ok := v2.(*NeutralValue)
		if !ok {
			return false
		}
		if !syntax.Equal(v1.Head, v2.Head) {
			return false
		}
		if len(v1.Args) != len(v2.Args) {
			return false
		}
		for i := range v1.Args {
			if !n.ValuesEqual(v1.Args[i], v2.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
