package main

import (
	"os"

	"github.com/iamlisp/go-iamlisp/cmd/iamlisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
