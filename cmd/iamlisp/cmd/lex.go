package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamlisp/go-iamlisp/internal/lexer"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream of an iamlisp program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		input, _, err := readSource(lexEvalExpr, args)
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokenize(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return fmt.Errorf("lexing failed")
		}
		for _, tok := range tokens {
			fmt.Printf("%s\t%s\n", tok.Pos, tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "lex inline code instead of reading from file")
}
