package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Keep assertions free of ANSI escapes.
	color.NoColor = true
}

func run(t *testing.T, inputs ...string) string {
	t.Helper()
	r := New()
	var out bytes.Buffer
	for _, input := range inputs {
		if strings.HasPrefix(input, ":") {
			r.HandleCommand(input, &out)
		} else {
			r.EvalLine(input, &out)
		}
	}
	return out.String()
}

func TestEvalLine(t *testing.T) {
	out := run(t, "Type0")
	want := "Type_0 : Type_1\n"
	if out != want {
		t.Errorf("EvalLine(Type0) printed %q, want %q", out, want)
	}
}

func TestEvalLineStuckApplication(t *testing.T) {
	out := run(t, ":assume A : Type0", ":assume a : A", ":assume f : A -> A", "f a")
	if !strings.Contains(out, "f a : A") {
		t.Errorf("stuck application did not print with its type: %q", out)
	}
}

func TestEvalLineTypeError(t *testing.T) {
	out := run(t, "missing")
	if !strings.Contains(out, "Type error") || !strings.Contains(out, "unbound variable") {
		t.Errorf("expected an unbound variable report, got %q", out)
	}
}

func TestEvalLineParseError(t *testing.T) {
	out := run(t, "fun (x : ). x")
	if !strings.Contains(out, "Parse error") {
		t.Errorf("expected a parse error report, got %q", out)
	}
}

func TestAssumeAndCtx(t *testing.T) {
	out := run(t, ":assume A : Type0", ":ctx")
	if !strings.Contains(out, "assumed A : Type_0") {
		t.Errorf("assume did not report the binding: %q", out)
	}
	if !strings.Contains(out, "A: Type_0") {
		t.Errorf(":ctx did not render the context: %q", out)
	}
}

func TestAssumeRejectsNonType(t *testing.T) {
	out := run(t, ":assume A : Type0", ":assume a : A", ":assume b : a")
	if !strings.Contains(out, "is not a type") {
		t.Errorf("assuming b : a should be rejected, got %q", out)
	}
}

func TestTypeCommand(t *testing.T) {
	out := run(t, ":assume A : Type0", ":type forall (x : A). A")
	if !strings.Contains(out, "Π(x : A).A : Type_0") {
		t.Errorf(":type printed %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	out := run(t, ":bogus")
	if !strings.Contains(out, "unknown command") {
		t.Errorf("expected unknown command report, got %q", out)
	}
}

func TestQuitCommand(t *testing.T) {
	r := New()
	var out bytes.Buffer
	if quit := r.HandleCommand(":quit", &out); !quit {
		t.Error(":quit should terminate the loop")
	}
	if quit := r.HandleCommand(":help", &out); quit {
		t.Error(":help should not terminate the loop")
	}
}
