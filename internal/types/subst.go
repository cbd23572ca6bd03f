package types

import (
	"github.com/sunholo/mltt/internal/syntax"
)

// Subst replaces free occurrences of name by replacement in t, renaming
// binders where the replacement would otherwise capture them. A binder equal
// to name shadows it: the body is left untouched and only the annotation is
// substituted.
func Subst(t syntax.Term, name string, replacement syntax.Term) syntax.Term {
	switch t := t.(type) {
	case *syntax.Var:
		if t.Name == name {
			return replacement
		}
		return t

	case *syntax.Universe:
		return t

	case *syntax.Pi:
		domain := Subst(t.Domain, name, replacement)
		if t.Binder == name {
			return &syntax.Pi{Binder: t.Binder, Domain: domain, Codomain: t.Codomain}
		}
		binder, codomain := renameIfCaptured(t.Binder, t.Codomain, replacement)
		return &syntax.Pi{
			Binder:   binder,
			Domain:   domain,
			Codomain: Subst(codomain, name, replacement),
		}

	case *syntax.Lam:
		domain := Subst(t.Domain, name, replacement)
		if t.Binder == name {
			return &syntax.Lam{Binder: t.Binder, Domain: domain, Body: t.Body}
		}
		binder, body := renameIfCaptured(t.Binder, t.Body, replacement)
		return &syntax.Lam{
			Binder: binder,
			Domain: domain,
			Body:   Subst(body, name, replacement),
		}

	case *syntax.App:
		return &syntax.App{
			Fn:  Subst(t.Fn, name, replacement),
			Arg: Subst(t.Arg, name, replacement),
		}
	}
	return t
}

// renameIfCaptured α-renames a binder when the replacement has it free, so
// descending under the binder cannot capture. The fresh name avoids every
// name free in the replacement or the body.
func renameIfCaptured(binder string, body syntax.Term, replacement syntax.Term) (string, syntax.Term) {
	if !syntax.Occurs(binder, replacement) {
		return binder, body
	}
	busy := syntax.FreeVars(replacement)
	for name := range syntax.FreeVars(body) {
		busy[name] = true
	}
	fresh := binder
	for busy[fresh] {
		fresh += "'"
	}
	return fresh, Subst(body, binder, &syntax.Var{Name: fresh})
}
