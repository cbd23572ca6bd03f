package syntax

import "fmt"

// String renders the canonical textual form used in diagnostics and tests.
func (v *Var) String() string { return v.Name }

func (u *Universe) String() string { return fmt.Sprintf("Type_%d", u.Level) }

func (p *Pi) String() string {
	return fmt.Sprintf("Π(%s : %s).%s", p.Binder, p.Domain, p.Codomain)
}

func (l *Lam) String() string {
	return fmt.Sprintf("λ(%s : %s).%s", l.Binder, l.Domain, l.Body)
}

func (a *App) String() string {
	return fmt.Sprintf("%s %s", appHead(a.Fn), appArg(a.Arg))
}

// appHead parenthesizes heads that would otherwise swallow the argument.
func appHead(t Term) string {
	switch t.(type) {
	case *Lam, *Pi:
		return "(" + t.String() + ")"
	}
	return t.String()
}

// appArg parenthesizes arguments so that application stays left-associative
// on a reparse.
func appArg(t Term) string {
	switch t.(type) {
	case *App, *Lam, *Pi:
		return "(" + t.String() + ")"
	}
	return t.String()
}
