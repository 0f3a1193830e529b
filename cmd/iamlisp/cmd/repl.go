package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamlisp/go-iamlisp/internal/config"
	"github.com/iamlisp/go-iamlisp/internal/repl"
	"github.com/iamlisp/go-iamlisp/pkg/iamlisp"
)

var configPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive iamlisp session",
	Long: `Start an interactive read-eval-print loop.

Definitions persist for the whole session. Use Up/Down for history,
Tab to cycle completions, and Ctrl+D to exit. The optional configuration
file (--config, or iamlisp/config.yaml in the user config directory) sets
the prompt, the history file, and prelude scripts.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var cfg config.Config
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
		}

		return repl.Run(iamlisp.New(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
}
