// Package iamlisp is the public embedding API: a persistent engine that
// lexes, parses, and evaluates iamlisp programs against one root
// environment.
package iamlisp

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/iamlisp/go-iamlisp/internal/ast"
	"github.com/iamlisp/go-iamlisp/internal/eval"
	"github.com/iamlisp/go-iamlisp/internal/parser"
)

// Engine couples an evaluator with a root environment. Definitions made by
// one Eval call are visible to later calls on the same engine.
type Engine struct {
	env *eval.Environment
	ev  *eval.Evaluator
}

// Option configures an Engine.
type Option func(*Engine)

// WithTraceLogger enables per-step evaluator tracing at debug level.
func WithTraceLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.ev = eval.New(eval.WithTraceLogger(l))
	}
}

// New creates an engine with a fresh root environment holding the native
// operations.
func New(opts ...Option) *Engine {
	e := &Engine{
		env: eval.NewRootEnvironment(),
		ev:  eval.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates a program string and returns the printed form of the last
// expression. An empty program yields "Nil".
func (e *Engine) Eval(src string) (string, error) {
	result, err := e.evalSource(src, "")
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// EvalFile evaluates a script file against the engine's environment.
func (e *Engine) EvalFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	result, err := e.evalSource(string(content), path)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func (e *Engine) evalSource(src, file string) (ast.Expression, error) {
	program, err := parser.Parse(src, file)
	if err != nil {
		return nil, err
	}
	return e.ev.EvalProgram(program, e.env)
}

// Symbols returns every name bound in the engine's environment, sorted.
// The REPL uses it for completion.
func (e *Engine) Symbols() []string {
	return e.env.Names()
}
