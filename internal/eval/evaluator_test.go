package eval

import (
	"testing"

	"github.com/sunholo/mltt/internal/syntax"
)

func TestEvalVar(t *testing.T) {
	ev := New()

	t.Run("bound variable returns its value", func(t *testing.T) {
		env := NewEnvironment()
		env.Set("x", &UniverseValue{Level: 3})
		got := ev.Eval(&syntax.Var{Name: "x"}, env)
		u, ok := got.(*UniverseValue)
		if !ok || u.Level != 3 {
			t.Fatalf("Eval(x) = %s, want Type_3", got)
		}
	})

	t.Run("free variable normalizes to itself", func(t *testing.T) {
		got := ev.Eval(&syntax.Var{Name: "x"}, nil)
		v, ok := got.(*VarValue)
		if !ok || v.Name != "x" {
			t.Fatalf("Eval(x) = %s, want the rigid variable x", got)
		}
	})
}

func TestEvalUniverse(t *testing.T) {
	ev := New()
	got := ev.Eval(&syntax.Universe{Level: 1}, nil)
	u, ok := got.(*UniverseValue)
	if !ok || u.Level != 1 {
		t.Fatalf("Eval(Type_1) = %s, want Type_1", got)
	}
}

func TestEvalLambdaCapturesSnapshot(t *testing.T) {
	ev := New()
	env := NewEnvironment()
	env.Set("y", &UniverseValue{Level: 0})

	lam := &syntax.Lam{Binder: "x", Domain: &syntax.Universe{Level: 0}, Body: &syntax.Var{Name: "y"}}
	closure, ok := ev.Eval(lam, env).(*ClosureValue)
	if !ok {
		t.Fatalf("Eval(λ) did not produce a closure")
	}

	// Rebinding y after the closure was built must not leak in.
	env.Set("y", &UniverseValue{Level: 9})

	got := ev.Apply(closure, &VarValue{Name: "x"})
	u, ok := got.(*UniverseValue)
	if !ok || u.Level != 0 {
		t.Fatalf("closure saw a later env mutation: got %s, want Type_0", got)
	}
}

func TestEvalBetaReduction(t *testing.T) {
	ev := New()
	// (λ(x : Type_0). x) Type_0  ⟶  Type_0
	app := &syntax.App{
		Fn:  &syntax.Lam{Binder: "x", Domain: &syntax.Universe{Level: 0}, Body: &syntax.Var{Name: "x"}},
		Arg: &syntax.Universe{Level: 0},
	}
	got := ev.Eval(app, nil)
	u, ok := got.(*UniverseValue)
	if !ok || u.Level != 0 {
		t.Fatalf("Eval((λx.x) Type_0) = %s, want Type_0", got)
	}
}

func TestEvalStuckApplication(t *testing.T) {
	ev := New()
	app := &syntax.App{Fn: &syntax.Var{Name: "f"}, Arg: &syntax.Universe{Level: 0}}

	got := ev.Eval(app, nil)
	neutral, ok := got.(*NeutralValue)
	if !ok {
		t.Fatalf("Eval(f Type_0) = %s, want a neutral", got)
	}
	if !syntax.Equal(neutral.Head, app) {
		t.Errorf("neutral head = %s, want the stuck application itself", neutral.Head)
	}
	if len(neutral.Args) != 1 {
		t.Fatalf("neutral spine has %d args, want 1", len(neutral.Args))
	}
	if u, ok := neutral.Args[0].(*UniverseValue); !ok || u.Level != 0 {
		t.Errorf("neutral spine arg = %s, want the evaluated argument Type_0", neutral.Args[0])
	}
}

func TestEvalPiIsNeutral(t *testing.T) {
	ev := New()
	pi := &syntax.Pi{Binder: "x", Domain: &syntax.Universe{Level: 0}, Codomain: &syntax.Var{Name: "x"}}

	got := ev.Eval(pi, nil)
	neutral, ok := got.(*NeutralValue)
	if !ok {
		t.Fatalf("Eval(Π) = %s, want a neutral", got)
	}
	if !syntax.Equal(neutral.Head, pi) {
		t.Errorf("neutral head = %s, want the Π term", neutral.Head)
	}
	if len(neutral.Args) != 0 {
		t.Errorf("Π neutral must have an empty spine, got %d args", len(neutral.Args))
	}
}

func TestEnvironmentExtendDoesNotMutateParent(t *testing.T) {
	parent := NewEnvironment()
	parent.Set("x", &UniverseValue{Level: 0})

	child := parent.Extend("x", &UniverseValue{Level: 1})

	if v, _ := parent.Get("x"); v.(*UniverseValue).Level != 0 {
		t.Errorf("parent binding changed after Extend")
	}
	if v, _ := child.Get("x"); v.(*UniverseValue).Level != 1 {
		t.Errorf("child does not shadow parent binding")
	}
}
