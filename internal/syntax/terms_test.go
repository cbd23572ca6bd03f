package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Term
		want bool
	}{
		{
			name: "same variable",
			a:    &Var{Name: "x"},
			b:    &Var{Name: "x"},
			want: true,
		},
		{
			name: "different variable",
			a:    &Var{Name: "x"},
			b:    &Var{Name: "y"},
			want: false,
		},
		{
			name: "same universe",
			a:    &Universe{Level: 2},
			b:    &Universe{Level: 2},
			want: true,
		},
		{
			name: "different universe level",
			a:    &Universe{Level: 0},
			b:    &Universe{Level: 1},
			want: false,
		},
		{
			name: "different shapes",
			a:    &Var{Name: "x"},
			b:    &Universe{Level: 0},
			want: false,
		},
		{
			name: "equal pi",
			a:    &Pi{Binder: "x", Domain: &Universe{Level: 0}, Codomain: &Var{Name: "x"}},
			b:    &Pi{Binder: "x", Domain: &Universe{Level: 0}, Codomain: &Var{Name: "x"}},
			want: true,
		},
		{
			name: "alpha-equivalent pi is not structurally equal",
			a:    &Pi{Binder: "x", Domain: &Universe{Level: 0}, Codomain: &Var{Name: "x"}},
			b:    &Pi{Binder: "y", Domain: &Universe{Level: 0}, Codomain: &Var{Name: "y"}},
			want: false,
		},
		{
			name: "equal lambda",
			a:    &Lam{Binder: "x", Domain: &Var{Name: "A"}, Body: &Var{Name: "x"}},
			b:    &Lam{Binder: "x", Domain: &Var{Name: "A"}, Body: &Var{Name: "x"}},
			want: true,
		},
		{
			name: "equal application",
			a:    &App{Fn: &Var{Name: "f"}, Arg: &Var{Name: "a"}},
			b:    &App{Fn: &Var{Name: "f"}, Arg: &Var{Name: "a"}},
			want: true,
		},
		{
			name: "application argument differs",
			a:    &App{Fn: &Var{Name: "f"}, Arg: &Var{Name: "a"}},
			b:    &App{Fn: &Var{Name: "f"}, Arg: &Var{Name: "b"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric.
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestFreeVars(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want map[string]bool
	}{
		{
			name: "variable is free",
			term: &Var{Name: "x"},
			want: map[string]bool{"x": true},
		},
		{
			name: "universe has no free variables",
			term: &Universe{Level: 3},
			want: map[string]bool{},
		},
		{
			name: "lambda binds its body",
			term: &Lam{Binder: "x", Domain: &Var{Name: "A"}, Body: &Var{Name: "x"}},
			want: map[string]bool{"A": true},
		},
		{
			name: "binder name free in its own domain",
			term: &Lam{Binder: "x", Domain: &Var{Name: "x"}, Body: &Var{Name: "x"}},
			want: map[string]bool{"x": true},
		},
		{
			name: "pi binds the codomain only",
			term: &Pi{Binder: "x", Domain: &Universe{Level: 0}, Codomain: &App{Fn: &Var{Name: "f"}, Arg: &Var{Name: "x"}}},
			want: map[string]bool{"f": true},
		},
		{
			name: "nested binders",
			term: &Lam{
				Binder: "A", Domain: &Universe{Level: 0},
				Body: &Lam{Binder: "x", Domain: &Var{Name: "A"}, Body: &App{Fn: &Var{Name: "g"}, Arg: &Var{Name: "x"}}},
			},
			want: map[string]bool{"g": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeVars(tt.term)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FreeVars(%s) mismatch (-want +got):\n%s", tt.term, diff)
			}
		})
	}
}

func TestOccurs(t *testing.T) {
	lam := &Lam{Binder: "x", Domain: &Var{Name: "A"}, Body: &Var{Name: "x"}}
	if Occurs("x", lam) {
		t.Errorf("x should be bound in %s", lam)
	}
	if !Occurs("A", lam) {
		t.Errorf("A should be free in %s", lam)
	}
}
