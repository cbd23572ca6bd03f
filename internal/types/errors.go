package types

import (
	"fmt"
	"strings"

	"github.com/sunholo/mltt/internal/syntax"
)

// ErrorKind represents the kind of type error.
type ErrorKind string

const (
	UnboundVariableError               ErrorKind = "unbound_variable"
	NotATypeError                      ErrorKind = "not_a_type"
	NotAFunctionError                  ErrorKind = "not_a_function"
	ArgTypeMismatchError               ErrorKind = "arg_type_mismatch"
	TypeMismatchError                  ErrorKind = "type_mismatch"
	UniverseLevelError                 ErrorKind = "universe_level"
	UniverseMustBeTypedByUniverseError ErrorKind = "universe_must_be_typed_by_universe"
	LambdaNotPiError                   ErrorKind = "lambda_not_pi"
	NeedsAnnotationError               ErrorKind = "needs_annotation"
	InvalidTypeError                   ErrorKind = "invalid_type"
)

// TypeError is a detailed judgement failure. Every failure is fatal for the
// current judgement and propagates to the caller; nothing is retried.
type TypeError struct {
	Kind       ErrorKind
	Term       syntax.Term // offending sub-term, when relevant
	Expected   syntax.Term
	Actual     syntax.Term
	Message    string
	Suggestion string
}

func (e *TypeError) Error() string {
	var parts []string

	parts = append(parts, e.Message)

	if e.Term != nil {
		parts = append(parts, fmt.Sprintf("in %s", e.Term))
	}

	if e.Expected != nil && e.Actual != nil {
		parts = append(parts, fmt.Sprintf("\n  Expected: %s\n  Actual:   %s", e.Expected, e.Actual))
	}

	if e.Suggestion != "" {
		parts = append(parts, fmt.Sprintf("\n  Suggestion: %s", e.Suggestion))
	}

	return strings.Join(parts, ": ")
}

// NewUnboundVariableError reports a variable with no binding in scope.
func NewUnboundVariableError(name string) *TypeError {
	return &TypeError{
		Kind:       UnboundVariableError,
		Term:       &syntax.Var{Name: name},
		Message:    fmt.Sprintf("unbound variable: %s", name),
		Suggestion: fmt.Sprintf("Variable '%s' is not in the context. Seed it with a declaration first.", name),
	}
}

// NewNotATypeError reports a term used in a type position whose inferred
// type is not a universe.
func NewNotATypeError(term syntax.Term) *TypeError {
	return &TypeError{
		Kind:    NotATypeError,
		Term:    term,
		Message: fmt.Sprintf("not a type: %s must inhabit a universe", term),
	}
}

// NewNotAFunctionError reports an application whose head does not have a
// Π type.
func NewNotAFunctionError(fn syntax.Term, actual syntax.Term) *TypeError {
	return &TypeError{
		Kind:    NotAFunctionError,
		Term:    fn,
		Actual:  actual,
		Message: fmt.Sprintf("cannot apply %s: its type is not a Π type", fn),
	}
}

// NewArgTypeMismatchError reports an argument that fails to check against
// the function's domain.
func NewArgTypeMismatchError(arg syntax.Term, domain syntax.Term, cause error) *TypeError {
	msg := fmt.Sprintf("argument %s does not have the function's domain type %s", arg, domain)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &TypeError{
		Kind:     ArgTypeMismatchError,
		Term:     arg,
		Expected: domain,
		Message:  msg,
	}
}

// NewTypeMismatchError reports an inferred type not definitionally equal to
// the expected one.
func NewTypeMismatchError(term syntax.Term, expected, actual syntax.Term) *TypeError {
	return &TypeError{
		Kind:     TypeMismatchError,
		Term:     term,
		Expected: expected,
		Actual:   actual,
		Message:  "type mismatch",
	}
}

// NewUniverseLevelError reports Type_n checked against Type_m with n >= m.
func NewUniverseLevelError(level, expected int) *TypeError {
	return &TypeError{
		Kind:       UniverseLevelError,
		Term:       &syntax.Universe{Level: level},
		Expected:   &syntax.Universe{Level: expected},
		Actual:     &syntax.Universe{Level: level + 1},
		Message:    fmt.Sprintf("universe level error: Type_%d is not a Type_%d", level, expected),
		Suggestion: fmt.Sprintf("Type_%d only inhabits Type_m for m > %d; the hierarchy is predicative, with no cumulativity.", level, level),
	}
}

// NewUniverseMustBeTypedByUniverseError reports a universe checked against a
// non-universe type.
func NewUniverseMustBeTypedByUniverseError(level int, expected syntax.Term) *TypeError {
	return &TypeError{
		Kind:     UniverseMustBeTypedByUniverseError,
		Term:     &syntax.Universe{Level: level},
		Expected: expected,
		Message:  fmt.Sprintf("Type_%d can only be typed by another universe, not %s", level, expected),
	}
}

// NewLambdaNotPiError reports a lambda checked against a non-Π type.
func NewLambdaNotPiError(lam syntax.Term, expected syntax.Term) *TypeError {
	return &TypeError{
		Kind:     LambdaNotPiError,
		Term:     lam,
		Expected: expected,
		Message:  fmt.Sprintf("a lambda can only be checked against a Π type, not %s", expected),
	}
}

// NewNeedsAnnotationError reports infer called on a lambda.
func NewNeedsAnnotationError(lam syntax.Term) *TypeError {
	return &TypeError{
		Kind:       NeedsAnnotationError,
		Term:       lam,
		Message:    "cannot infer the type of a lambda",
		Suggestion: "Check the lambda against an explicit Π type instead.",
	}
}

// NewInvalidTypeError reports a supplied expected type that is itself
// ill-typed.
func NewInvalidTypeError(ty syntax.Term, cause error) *TypeError {
	msg := fmt.Sprintf("invalid type: %s", ty)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &TypeError{
		Kind:    InvalidTypeError,
		Term:    ty,
		Message: msg,
	}
}
