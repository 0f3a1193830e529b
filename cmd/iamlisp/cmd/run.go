package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/iamlisp/go-iamlisp/internal/errors"
	"github.com/iamlisp/go-iamlisp/internal/eval"
	"github.com/iamlisp/go-iamlisp/internal/lexer"
	"github.com/iamlisp/go-iamlisp/internal/log"
	"github.com/iamlisp/go-iamlisp/internal/parser"
)

var (
	evalExpr    string
	trace       bool
	profileMode string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an iamlisp file or expression",
	Long: `Evaluate an iamlisp program from a file, stdin, or an inline expression,
and print the value of the last top-level form.

Examples:
  # Run a script file
  iamlisp run script.lisp

  # Evaluate an inline expression
  iamlisp run -e "(+ 1 2)"

  # Read the program from stdin
  cat script.lisp | iamlisp run -

  # Trace each evaluator step
  iamlisp run --trace script.lisp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace evaluator steps (for debugging)")
	runCmd.Flags().StringVar(&profileMode, "profile", "", "write a cpu, mem, or trace profile to the current directory")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode: %s", profileMode)
	}

	p := parser.New(lexer.New(input), input, filename)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errors.FormatAll(errs, true))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	var opts []eval.Option
	if trace {
		logger := log.Make(os.Stderr, log.WithLevel(slog.LevelDebug))
		opts = append(opts, eval.WithTraceLogger(logger))
	}

	ev := eval.New(opts...)
	env := eval.NewRootEnvironment()
	result, err := ev.EvalProgram(program, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return fmt.Errorf("evaluation failed")
	}

	fmt.Println(result.String())
	if verbose {
		fmt.Fprintf(os.Stderr, "peak stack depth: %d\n", ev.PeakStackDepth())
	}
	return nil
}
