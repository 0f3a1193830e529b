// Package eval implements the iterative tree-walking evaluator.
//
// The evaluator never recurses in the host for expression nesting: each
// descent into a sub-expression pushes a frame onto an explicit call stack,
// and each completed frame routes its result into the frame below (or into
// the top-level return slot). Arbitrarily nested programs therefore run in
// constant host-stack space.
package eval

import (
	"fmt"
	"log/slog"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// Names of the special forms and the operators the evaluator treats
// specially. Symbols are compared by name.
const (
	symDef    = "def"
	symCond   = "cond"
	symLambda = "lambda"
	symMacro  = "macro"
	symQuote  = "quote"
	symLoop   = "loop"
	symBegin  = "begin"
	symRecur  = "recur"
)

// Evaluator drives the explicit-stack evaluation loop. Evaluation is
// single-threaded and synchronous; an Evaluator must not be shared between
// goroutines.
type Evaluator struct {
	trace     *slog.Logger
	peakDepth int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTraceLogger makes the evaluator emit one debug record per driver
// step, carrying the stack depth and the current frame's input and output.
func WithTraceLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		e.trace = l
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PeakStackDepth returns the largest call-stack depth observed so far.
// Bounded tail iteration keeps this constant regardless of recur count.
func (e *Evaluator) PeakStackDepth() int {
	return e.peakDepth
}

// EvalProgram evaluates a sequence of top-level expressions against the
// same environment and returns the last result, or Nil for an empty
// program. Bindings made by def persist across expressions.
func (e *Evaluator) EvalProgram(exprs []ast.Expression, env *Environment) (ast.Expression, error) {
	var result ast.Expression = &ast.Nil{}
	for _, expr := range exprs {
		r, err := e.Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = r
	}
	return result, nil
}

// Eval evaluates a single expression: atoms and callables are themselves,
// symbols resolve through the environment chain, and lists enter the
// frame-driven loop.
func (e *Evaluator) Eval(expr ast.Expression, env *Environment) (ast.Expression, error) {
	switch v := expr.(type) {
	case *ast.Symbol:
		val, ok := env.Get(v.Name)
		if !ok {
			return nil, fmt.Errorf("unbound symbol: %s", v.Name)
		}
		return val, nil
	case *ast.List:
		return e.evalList(v, env)
	case *ast.Dot:
		return nil, fmt.Errorf("unexpected . outside of a binding pattern")
	default:
		return expr, nil
	}
}

// machine is the per-evaluation state: the frame stack and the top-level
// return slot. Handlers route results through it so the routing invariant
// lives in one place.
type machine struct {
	ev    *Evaluator
	stack *callStack
	ret   ast.Expression
}

// route deposits a completed result into the frame below, or into the
// top-level return slot when the stack is empty.
func (m *machine) route(v ast.Expression) {
	if top, ok := m.stack.top(); ok {
		top.output.Push(v)
		return
	}
	m.ret = v
}

// evalList runs the driver loop for one list expression.
func (e *Evaluator) evalList(list *ast.List, env *Environment) (ast.Expression, error) {
	m := &machine{ev: e, stack: &callStack{}, ret: &ast.Nil{}}
	m.stack.push(newFrame(list.Clone(), env))

	for {
		fr, ok := m.stack.pop()
		if !ok {
			return m.ret, nil
		}
		if depth := m.stack.len() + 1; depth > e.peakDepth {
			e.peakDepth = depth
		}
		if e.trace != nil {
			e.trace.Debug("step",
				"depth", m.stack.len()+1,
				"input", fr.input.String(),
				"output", fr.output.String())
		}

		var err error
		switch {
		case isForm(fr, symDef):
			err = m.stepDef(fr)
		case isForm(fr, symCond):
			err = m.stepCond(fr)
		case isFreshForm(fr, symLambda):
			err = m.stepLambda(fr)
		case isFreshForm(fr, symMacro):
			err = m.stepMacro(fr)
		case isFreshForm(fr, symQuote):
			err = m.stepQuote(fr)
		case isForm(fr, symLoop):
			err = m.stepLoop(fr)
		default:
			if head, has := fr.input.Shift(); has {
				err = m.advance(fr, head)
			} else {
				err = m.apply(fr)
			}
		}
		if err != nil {
			return nil, err
		}
	}
}

// isFreshForm reports whether a frame that has evaluated nothing yet starts
// with the named special-form symbol.
func isFreshForm(fr *frame, name string) bool {
	if !fr.output.IsEmpty() {
		return false
	}
	head, ok := fr.input.Head()
	if !ok {
		return false
	}
	sym, ok := head.(*ast.Symbol)
	return ok && sym.Name == name
}

// isForm additionally matches frames that are mid-way through a multi-step
// form, recognizable by the form symbol parked at the head of output.
func isForm(fr *frame, name string) bool {
	if isFreshForm(fr, name) {
		return true
	}
	head, ok := fr.output.Head()
	if !ok {
		return false
	}
	sym, ok := head.(*ast.Symbol)
	return ok && sym.Name == name
}

// advance processes one element taken from the frame's input: atoms pass
// through to output, symbols resolve, and lists become sub-frames.
func (m *machine) advance(fr *frame, head ast.Expression) error {
	switch v := head.(type) {
	case *ast.Symbol:
		val, ok := fr.env.Get(v.Name)
		if !ok {
			return fmt.Errorf("unbound symbol: %s", v.Name)
		}
		fr.output.Push(val)
		m.stack.push(fr)
	case *ast.List:
		m.stack.push(fr)
		m.stack.push(newFrame(v.Clone(), fr.env))
	case *ast.Dot:
		return fmt.Errorf("unexpected . outside of a binding pattern")
	default:
		fr.output.Push(head)
		m.stack.push(fr)
	}
	return nil
}

// evalOperand evaluates a single operand expression on behalf of a
// special-form handler. The owning frame must already be back on the stack:
// atoms and symbols complete immediately into its output, while a list
// becomes a sub-frame whose result will be routed there.
func (m *machine) evalOperand(fr *frame, expr ast.Expression) error {
	switch v := expr.(type) {
	case *ast.Symbol:
		val, ok := fr.env.Get(v.Name)
		if !ok {
			return fmt.Errorf("unbound symbol: %s", v.Name)
		}
		fr.output.Push(val)
	case *ast.List:
		m.stack.push(newFrame(v.Clone(), fr.env))
	case *ast.Dot:
		return fmt.Errorf("unexpected . outside of a binding pattern")
	default:
		fr.output.Push(expr)
	}
	return nil
}

// apply treats a frame with exhausted input as an evaluated application:
// the head of output is the callable, the rest are argument values.
func (m *machine) apply(fr *frame) error {
	callee, ok := fr.output.Shift()
	if !ok {
		// The empty application () evaluates to the empty list.
		m.route(ast.NewList())
		return nil
	}
	args := fr.output

	switch c := callee.(type) {
	case *NativeCall:
		res, err := c.Op.Apply(args, fr.env)
		if err != nil {
			return err
		}
		m.route(res)
	case *Lambda:
		child := NewEnclosedEnvironment(c.Env)
		if err := bindList(c.Params, args, child); err != nil {
			return err
		}
		// The begin frame routes the body's result when it completes.
		m.stack.push(newFrame(beginList(c.Body), child))
	case *Macro:
		return fmt.Errorf("macro application is not implemented")
	case *recurOp:
		return m.applyRecur(c, args)
	default:
		return fmt.Errorf("not callable: %s", callee)
	}
	return nil
}

// applyRecur restarts the enclosing loop body: it truncates the stack back
// to the loop's entry depth, re-binds the loop patterns to the new values,
// and pushes a fresh body frame.
func (m *machine) applyRecur(r *recurOp, args *ast.List) error {
	if args.Len() != r.params.Len() {
		return fmt.Errorf("recur expects %d arguments, got %d", r.params.Len(), args.Len())
	}
	// While the loop runs, its body frame sits at the recorded depth in the
	// loop's environment; anything else means the loop has exited.
	if r.depth >= m.stack.len() || m.stack.frames[r.depth].env != r.env {
		return fmt.Errorf("recur called outside of its loop")
	}
	m.stack.truncate(r.depth)

	pats := r.params.Slice()
	vals := args.Slice()
	for i := range pats {
		if err := bind(pats[i], vals[i], r.env); err != nil {
			return err
		}
	}
	m.stack.push(newFrame(beginList(r.body), r.env))
	return nil
}

// beginList builds the frame input (begin body…) for a body sequence.
func beginList(body *ast.List) *ast.List {
	out := body.Clone()
	out.Unshift(&ast.Symbol{Name: symBegin})
	return out
}

// beginWrap builds the frame input (begin expr) for a single expression.
func beginWrap(expr ast.Expression) *ast.List {
	return ast.NewList(&ast.Symbol{Name: symBegin}, expr)
}
