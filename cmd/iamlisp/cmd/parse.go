package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamlisp/go-iamlisp/internal/errors"
	"github.com/iamlisp/go-iamlisp/internal/lexer"
	"github.com/iamlisp/go-iamlisp/internal/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the parsed expression tree of an iamlisp program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		input, filename, err := readSource(parseEvalExpr, args)
		if err != nil {
			return err
		}
		p := parser.New(lexer.New(input), input, filename)
		program := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, errors.FormatAll(errs, true))
			return fmt.Errorf("parsing failed with %d error(s)", len(errs))
		}
		for _, expr := range program {
			fmt.Println(expr.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}
