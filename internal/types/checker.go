package types

import (
	"fmt"

	"github.com/sunholo/mltt/internal/eval"
	"github.com/sunholo/mltt/internal/syntax"
)

// Checker implements the two bidirectional judgements: Infer synthesizes the
// type of a term, Check verifies a term against a given type. The context is
// threaded through the recursion as an explicit parameter, so a failing
// sub-judgement can never leave a stale binding behind; the Checker itself
// only holds the seed context used as the root of each top-level call.
type Checker struct {
	ctx  *Context
	norm *eval.Normalizer
}

// New creates a Checker with an empty context.
func New() *Checker {
	return &Checker{
		ctx:  NewContext(),
		norm: eval.NewNormalizer(eval.New()),
	}
}

// Context returns the checker's seed context.
func (c *Checker) Context() *Context {
	return c.ctx
}

// ExtendContext seeds a free variable declaration. Typically used by the
// embedding driver before checking open terms.
func (c *Checker) ExtendContext(name string, ty syntax.Term) {
	c.ctx = c.ctx.Extend(name, ty)
}

// Infer synthesizes the type of a term under the seed context.
func (c *Checker) Infer(t syntax.Term) (syntax.Term, error) {
	return c.infer(c.ctx, t)
}

// Check verifies that a term inhabits the given type under the seed context.
func (c *Checker) Check(t syntax.Term, ty syntax.Term) error {
	return c.check(c.ctx, t, ty)
}

// IsEqual decides definitional equality of two types: equality of normal
// forms. Two universes short-circuit to a level comparison.
func (c *Checker) IsEqual(t1, t2 syntax.Term) bool {
	if u1, ok := t1.(*syntax.Universe); ok {
		if u2, ok := t2.(*syntax.Universe); ok {
			return u1.Level == u2.Level
		}
	}
	return c.norm.ValuesEqual(c.norm.Normalize(t1), c.norm.Normalize(t2))
}

func (c *Checker) infer(ctx *Context, t syntax.Term) (syntax.Term, error) {
	switch t := t.(type) {
	case *syntax.Var:
		ty, ok := ctx.Lookup(t.Name)
		if !ok {
			return nil, NewUnboundVariableError(t.Name)
		}
		return ty, nil

	case *syntax.Universe:
		// Type_n : Type_{n+1}
		return &syntax.Universe{Level: t.Level + 1}, nil

	case *syntax.Pi:
		domainLevel, err := c.inferUniverse(ctx, t.Domain)
		if err != nil {
			return nil, err
		}
		codomainLevel, err := c.inferUniverse(ctx.Extend(t.Binder, t.Domain), t.Codomain)
		if err != nil {
			return nil, err
		}
		return &syntax.Universe{Level: max(domainLevel, codomainLevel)}, nil

	case *syntax.Lam:
		// Lambdas are always checked, never inferred.
		return nil, NewNeedsAnnotationError(t)

	case *syntax.App:
		fnType, err := c.infer(ctx, t.Fn)
		if err != nil {
			return nil, err
		}
		pi, ok := c.asPi(fnType)
		if !ok {
			return nil, NewNotAFunctionError(t.Fn, fnType)
		}
		if err := c.check(ctx, t.Arg, pi.Domain); err != nil {
			return nil, NewArgTypeMismatchError(t.Arg, pi.Domain, err)
		}
		return Subst(pi.Codomain, pi.Binder, t.Arg), nil
	}
	panic(fmt.Sprintf("infer: unknown term shape %T", t))
}

func (c *Checker) check(ctx *Context, t syntax.Term, expected syntax.Term) error {
	// Universes are handled before the expected type is validated, so that
	// Type_n against a non-universe reports the universe error rather than
	// an incidental one about the expected type.
	if u, ok := t.(*syntax.Universe); ok {
		exp, ok := expected.(*syntax.Universe)
		if !ok {
			return NewUniverseMustBeTypedByUniverseError(u.Level, expected)
		}
		if u.Level >= exp.Level {
			return NewUniverseLevelError(u.Level, exp.Level)
		}
		return nil
	}

	// The expected type must itself be a type.
	if _, err := c.inferUniverse(ctx, expected); err != nil {
		return NewInvalidTypeError(expected, err)
	}

	if lam, ok := t.(*syntax.Lam); ok {
		pi, ok := c.asPi(expected)
		if !ok {
			return NewLambdaNotPiError(lam, expected)
		}
		if !c.IsEqual(lam.Domain, pi.Domain) {
			return NewTypeMismatchError(lam, pi.Domain, lam.Domain)
		}
		bodyType := Subst(pi.Codomain, pi.Binder, &syntax.Var{Name: lam.Binder})
		return c.check(ctx.Extend(lam.Binder, lam.Domain), lam.Body, bodyType)
	}

	actual, err := c.infer(ctx, t)
	if err != nil {
		return err
	}
	if !c.IsEqual(expected, actual) {
		return NewTypeMismatchError(t, expected, actual)
	}
	return nil
}

// inferUniverse infers the type of a term used in a type position and
// requires its normal form to be a universe, returning the level.
func (c *Checker) inferUniverse(ctx *Context, t syntax.Term) (int, error) {
	ty, err := c.infer(ctx, t)
	if err != nil {
		return 0, err
	}
	if u, ok := c.norm.Normalize(ty).(*eval.UniverseValue); ok {
		return u.Level, nil
	}
	return 0, NewNotATypeError(t)
}

// asPi views a type as a Π type, either directly or through its normal form.
func (c *Checker) asPi(ty syntax.Term) (*syntax.Pi, bool) {
	if pi, ok := ty.(*syntax.Pi); ok {
		return pi, true
	}
	if neutral, ok := c.norm.Normalize(ty).(*eval.NeutralValue); ok && len(neutral.Args) == 0 {
		if pi, ok := neutral.Head.(*syntax.Pi); ok {
			return pi, true
		}
	}
	return nil, false
}
