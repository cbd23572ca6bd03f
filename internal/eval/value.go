package eval

import (
	"fmt"
	"strings"

	"github.com/sunholo/mltt/internal/syntax"
)

// Value represents a semantic value produced by evaluation.
type Value interface {
	Type() string
	String() string
}

// UniverseValue is an evaluated type universe.
type UniverseValue struct {
	Level int
}

func (u *UniverseValue) Type() string   { return "universe" }
func (u *UniverseValue) String() string { return fmt.Sprintf("Type_%d", u.Level) }

// VarValue is a free variable, a rigid atom with no arguments.
type VarValue struct {
	Name string
}

func (v *VarValue) Type() string   { return "var" }
func (v *VarValue) String() string { return v.Name }

// ClosureValue pairs an unevaluated λ-body with the environment in which it
// should later be evaluated. The environment is a snapshot taken at the λ;
// later bindings in the caller's environment never leak in. The domain
// annotation is carried along so closures can be read back as terms.
type ClosureValue struct {
	Env    *Environment
	Param  string
	Domain syntax.Term
	Body   syntax.Term
}

func (c *ClosureValue) Type() string   { return "closure" }
func (c *ClosureValue) String() string { return fmt.Sprintf("<closure %s>", c.Param) }

// NeutralValue is a stuck computation: a non-reducible head term to which
// zero or more argument values have been applied. A NeutralValue whose head
// would permit β-reduction is a bug in the evaluator.
type NeutralValue struct {
	Head syntax.Term
	Args []Value
}

func (n *NeutralValue) Type() string { return "neutral" }
func (n *NeutralValue) String() string {
	if len(n.Args) == 0 {
		return fmt.Sprintf("<neutral %s>", n.Head)
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("<neutral %s · [%s]>", n.Head, strings.Join(args, ", "))
}
