package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/mltt/internal/eval"
	"github.com/sunholo/mltt/internal/parser"
	"github.com/sunholo/mltt/internal/types"
)

// Color functions for pretty output
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL is the interactive read-check-normalize-print loop.
type REPL struct {
	checker *types.Checker
	norm    *eval.Normalizer
	history []string
	version string
}

// New creates a new REPL instance.
func New() *REPL {
	return NewWithVersion("dev")
}

// NewWithVersion creates a new REPL with version info.
func NewWithVersion(version string) *REPL {
	if version == "" {
		version = "dev"
	}
	ev := eval.New()
	return &REPL{
		checker: types.New(),
		norm:    eval.NewNormalizer(ev),
		version: version,
	}
}

// Run starts the interactive loop on stdin/stdout.
func (r *REPL) Run() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Printf("%s %s\n", bold("MLTT"), r.version)
	fmt.Printf("%s\n\n", dim("Type :help for help, :quit to exit"))

	for {
		input, err := line.Prompt("mltt> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println(green("Goodbye!"))
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if quit := r.HandleCommand(input, os.Stdout); quit {
				return
			}
			continue
		}

		r.EvalLine(input, os.Stdout)
	}
}

// HandleCommand processes a REPL command. It reports whether the loop
// should terminate.
func (r *REPL) HandleCommand(cmd string, out io.Writer) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case ":help", ":h":
		r.printHelp(out)

	case ":quit", ":q", ":exit":
		fmt.Fprintln(out, green("Goodbye!"))
		return true

	case ":type", ":t":
		if len(parts) < 2 {
			fmt.Fprintln(out, "Usage: :type <expression>")
			return false
		}
		r.showType(strings.Join(parts[1:], " "), out)

	case ":assume", ":a":
		if len(parts) < 2 {
			fmt.Fprintln(out, "Usage: :assume <name> : <type>")
			return false
		}
		r.assume(strings.Join(parts[1:], " "), out)

	case ":ctx":
		ctx := r.checker.Context()
		if ctx.Len() == 0 {
			fmt.Fprintln(out, dim("(empty context)"))
		} else {
			fmt.Fprintln(out, ctx)
		}

	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%s %s\n", dim(fmt.Sprintf("%3d", i+1)), h)
		}

	default:
		fmt.Fprintf(out, "%s: unknown command %s\n", red("Error"), parts[0])
		fmt.Fprintln(out, "Type :help for available commands")
	}
	return false
}

// EvalLine type-checks a bare expression, then prints its normal form and
// its type.
func (r *REPL) EvalLine(input string, out io.Writer) {
	term, err := parser.Parse(input)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Parse error"), err)
		return
	}

	ty, err := r.checker.Infer(term)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Type error"), err)
		return
	}

	normal := r.norm.Reify(r.norm.Normalize(term))
	fmt.Fprintf(out, "%s %s %s\n", normal, dim(":"), cyan(ty.String()))
}

func (r *REPL) showType(input string, out io.Writer) {
	term, err := parser.Parse(input)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Parse error"), err)
		return
	}
	ty, err := r.checker.Infer(term)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Type error"), err)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", term, dim(":"), cyan(ty.String()))
}

// assume seeds a free variable: `:assume A : Type0`.
func (r *REPL) assume(decl string, out io.Writer) {
	name, tySrc, ok := strings.Cut(decl, ":")
	if !ok {
		fmt.Fprintln(out, "Usage: :assume <name> : <type>")
		return
	}
	name = strings.TrimSpace(name)

	ty, err := parser.Parse(strings.TrimSpace(tySrc))
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Parse error"), err)
		return
	}

	// The declared type must itself be a type.
	tyTy, err := r.checker.Infer(ty)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("Type error"), err)
		return
	}
	if _, ok := r.norm.Normalize(tyTy).(*eval.UniverseValue); !ok {
		fmt.Fprintf(out, "%s: %s is not a type\n", red("Type error"), ty)
		return
	}

	r.checker.ExtendContext(name, ty)
	fmt.Fprintf(out, "%s %s : %s\n", green("assumed"), bold(name), ty)
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("MLTT REPL"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter an expression to type-check and normalize it.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Syntax:")
	fmt.Fprintln(out, "  Type0, Type1, ...          universes")
	fmt.Fprintln(out, "  fun (x : A). t             lambda (also λ, \\)")
	fmt.Fprintln(out, "  forall (x : A). B          dependent function type (also Π)")
	fmt.Fprintln(out, "  A -> B                     non-dependent function type")
	fmt.Fprintln(out, "  f a                        application")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  :type <expr>               show the inferred type")
	fmt.Fprintln(out, "  :assume <name> : <type>    add a variable to the context")
	fmt.Fprintln(out, "  :ctx                       show the context")
	fmt.Fprintln(out, "  :history                   show input history")
	fmt.Fprintln(out, "  :help                      show this help")
	fmt.Fprintln(out, "  :quit                      exit")
}
