package types

import (
	"strings"

	"github.com/sunholo/mltt/internal/syntax"
)

// Binding associates a name with its declared type.
type Binding struct {
	Name string
	Type syntax.Term
}

// Context is an ordered association of names to their declared types.
// Extension is non-destructive: Extend returns a new Context and never
// mutates the receiver. A re-added name shadows the old binding; both stay
// present in order and lookup finds the newest.
type Context struct {
	bindings []Binding
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{}
}

// Extend returns a new context with an additional binding.
func (c *Context) Extend(name string, ty syntax.Term) *Context {
	bindings := make([]Binding, len(c.bindings), len(c.bindings)+1)
	copy(bindings, c.bindings)
	return &Context{bindings: append(bindings, Binding{Name: name, Type: ty})}
}

// Lookup returns the declared type of a name. The newest binding wins.
func (c *Context) Lookup(name string) (syntax.Term, bool) {
	for i := len(c.bindings) - 1; i >= 0; i-- {
		if c.bindings[i].Name == name {
			return c.bindings[i].Type, true
		}
	}
	return nil, false
}

// Has reports whether a name is bound.
func (c *Context) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Len returns the number of bindings, shadowed ones included.
func (c *Context) Len() int {
	return len(c.bindings)
}

// Bindings returns the bindings in scope order.
func (c *Context) Bindings() []Binding {
	out := make([]Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// Equal compares bindings pairwise by name and term equality.
func (c *Context) Equal(other *Context) bool {
	if len(c.bindings) != len(other.bindings) {
		return false
	}
	for i, b := range c.bindings {
		o := other.bindings[i]
		if b.Name != o.Name || !syntax.Equal(b.Type, o.Type) {
			return false
		}
	}
	return true
}

// String renders the context as "x: A, y: B" in scope order.
func (c *Context) String() string {
	if len(c.bindings) == 0 {
		return ""
	}
	parts := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		parts[i] = b.Name + ": " + b.Type.String()
	}
	return strings.Join(parts, ", ")
}
