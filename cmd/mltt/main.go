package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sunholo/mltt/internal/eval"
	"github.com/sunholo/mltt/internal/parser"
	"github.com/sunholo/mltt/internal/repl"
	"github.com/sunholo/mltt/internal/syntax"
	"github.com/sunholo/mltt/internal/types"
)

var (
	// Version info - set by ldflags during build
	Version = "dev"

	// Color output
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		assumeFlag  = flag.String("assume", "", "Comma-separated context seed, e.g. 'A : Type0, a : A'")
	)

	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if *versionFlag {
		fmt.Printf("mltt %s\n", bold(Version))
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch command := flag.Arg(0); command {
	case "repl":
		repl.NewWithVersion(Version).Run()

	case "infer":
		if flag.NArg() < 2 {
			fatalf("missing expression\nUsage: mltt infer <expr>")
		}
		runInfer(newChecker(*assumeFlag), strings.Join(flag.Args()[1:], " "))

	case "check":
		expr, ty, ok := strings.Cut(strings.Join(flag.Args()[1:], " "), "::")
		if !ok {
			fatalf("missing type\nUsage: mltt check <expr> :: <type>")
		}
		runCheck(newChecker(*assumeFlag), expr, ty)

	case "norm":
		if flag.NArg() < 2 {
			fatalf("missing expression\nUsage: mltt norm <expr>")
		}
		runNorm(strings.Join(flag.Args()[1:], " "))

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command '%s'\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

// newChecker builds a checker seeded from an --assume declaration list.
func newChecker(assume string) *types.Checker {
	checker := types.New()
	if assume == "" {
		return checker
	}
	for _, decl := range strings.Split(assume, ",") {
		name, tySrc, ok := strings.Cut(decl, ":")
		if !ok {
			fatalf("bad --assume entry %q, want 'name : type'", decl)
		}
		ty, err := parser.Parse(strings.TrimSpace(tySrc))
		if err != nil {
			fatalf("bad --assume type for %s: %v", strings.TrimSpace(name), err)
		}
		checker.ExtendContext(strings.TrimSpace(name), ty)
	}
	return checker
}

func runInfer(checker *types.Checker, input string) {
	term := parse(input)
	ty, err := checker.Infer(term)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("%s : %s\n", term, cyan(ty.String()))
}

func runCheck(checker *types.Checker, exprSrc, tySrc string) {
	term := parse(exprSrc)
	ty := parse(tySrc)
	if err := checker.Check(term, ty); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("%s %s : %s\n", green("ok"), term, cyan(ty.String()))
}

func runNorm(input string) {
	term := parse(input)
	ev := eval.New()
	norm := eval.NewNormalizer(ev)
	fmt.Println(norm.Reify(norm.Normalize(term)))
}

func parse(input string) syntax.Term {
	term, err := parser.Parse(strings.TrimSpace(input))
	if err != nil {
		fatalf("%v", err)
	}
	return term
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", red("Error"), fmt.Sprintf(format, args...))
	os.Exit(1)
}

func printHelp() {
	fmt.Println(bold("mltt - a type checker for a fragment of Martin-Löf Type Theory"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mltt [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  repl                       start the interactive REPL")
	fmt.Println("  infer <expr>               infer the type of an expression")
	fmt.Println("  check <expr> :: <type>     check an expression against a type")
	fmt.Println("  norm <expr>                print the normal form of an expression")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --assume 'x : T, ...'      seed the context with free variables")
	fmt.Println("  --version                  print version")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  mltt infer Type0")
	fmt.Println("  mltt check 'fun (A : Type0). fun (x : A). x' :: 'forall (A : Type0). forall (x : A). A'")
	fmt.Println("  mltt --assume 'A : Type0, a : A' infer 'a'")
}
