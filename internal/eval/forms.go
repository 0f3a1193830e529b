package eval

import (
	"fmt"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// stepDef advances a variable-definition frame.
//
// Syntax: (def pat1 val1 pat2 val2 …). Each value is evaluated in order and
// destructure-bound to its pattern in the current frame's environment, so
// later values see earlier bindings. The form returns Nil.
func (m *machine) stepDef(fr *frame) error {
	out := fr.output.Slice()
	switch len(out) {
	case 0:
		head, _ := fr.input.Shift()
		fr.output.Push(head)
		m.stack.push(fr)
	case 1:
		if fr.input.IsEmpty() {
			m.route(&ast.Nil{})
			return nil
		}
		if fr.input.Len() < 2 {
			return fmt.Errorf("def expects an even number of arguments, got a trailing %s", fr.input)
		}
		pat, _ := fr.input.Shift()
		valExpr, _ := fr.input.Shift()
		switch pat.(type) {
		case *ast.Symbol, *ast.List:
		default:
			return fmt.Errorf("not a valid binding target: %s", pat)
		}
		fr.output.Push(pat)
		m.stack.push(fr)
		return m.evalOperand(fr, valExpr)
	case 3:
		// [def, pattern, value]: bind, then reset for the next pair.
		if err := bind(out[1], out[2], fr.env); err != nil {
			return err
		}
		fr.output = ast.NewList(out[0])
		m.stack.push(fr)
	default:
		return fmt.Errorf("unexpected def state: %s", fr.output)
	}
	return nil
}

// stepCond advances a conditional frame.
//
// Syntax: (cond test1 body1 test2 body2 … [default]). Tests evaluate in
// order; the body of the first true test is evaluated and returned. Bodies
// of false tests are skipped without evaluation. With no true test the
// optional trailing default is evaluated, otherwise the result is Nil.
func (m *machine) stepCond(fr *frame) error {
	out := fr.output.Slice()
	switch len(out) {
	case 0:
		head, _ := fr.input.Shift()
		fr.output.Push(head)
		m.stack.push(fr)
	case 1:
		switch {
		case fr.input.IsEmpty():
			m.route(&ast.Nil{})
		case fr.input.Len() == 1:
			// Trailing default clause replaces the frame.
			def, _ := fr.input.Shift()
			m.stack.push(newFrame(beginWrap(def), fr.env))
		default:
			test, _ := fr.input.Shift()
			m.stack.push(fr)
			return m.evalOperand(fr, test)
		}
	case 2:
		b, ok := out[1].(*ast.Boolean)
		if !ok {
			return fmt.Errorf("cond test must evaluate to a boolean, got %s", out[1])
		}
		if b.Value {
			body, _ := fr.input.Shift()
			m.stack.push(newFrame(beginWrap(body), fr.env))
			return nil
		}
		// Skip the body of the false test without evaluating it.
		fr.input.Shift()
		fr.output = ast.NewList(out[0])
		m.stack.push(fr)
	default:
		return fmt.Errorf("unexpected cond state: %s", fr.output)
	}
	return nil
}

// stepLambda constructs a closure capturing the current environment.
// No element of the body is evaluated now.
func (m *machine) stepLambda(fr *frame) error {
	fr.input.Shift() // the lambda symbol
	params, err := formParams(symLambda, fr)
	if err != nil {
		return err
	}
	m.route(&Lambda{Params: params, Body: fr.input, Env: fr.env})
	return nil
}

// stepMacro constructs a macro value. Macros capture no environment.
func (m *machine) stepMacro(fr *frame) error {
	fr.input.Shift() // the macro symbol
	params, err := formParams(symMacro, fr)
	if err != nil {
		return err
	}
	m.route(&Macro{Params: params, Body: fr.input})
	return nil
}

func formParams(kind string, fr *frame) (*ast.List, error) {
	expr, ok := fr.input.Shift()
	if !ok {
		return nil, fmt.Errorf("%s parameters must be a list", kind)
	}
	params, ok := expr.(*ast.List)
	if !ok {
		return nil, fmt.Errorf("%s parameters must be a list, got %s", kind, expr)
	}
	return params, nil
}

// stepQuote returns its first argument verbatim; a missing argument yields
// Nil and extra arguments are ignored.
func (m *machine) stepQuote(fr *frame) error {
	fr.input.Shift() // the quote symbol
	if x, ok := fr.input.Shift(); ok {
		m.route(x)
		return nil
	}
	m.route(&ast.Nil{})
	return nil
}

// stepLoop advances a loop frame.
//
// Syntax: (loop (p1 v1 p2 v2 …) body…). The initial values are evaluated
// and bound in a fresh child environment through the def machinery, recur
// is bound to an operator that restarts the body at the recorded stack
// depth, and the body runs as (begin body…).
func (m *machine) stepLoop(fr *frame) error {
	out := fr.output.Slice()
	switch len(out) {
	case 0:
		head, _ := fr.input.Shift()
		fr.output.Push(head)
		fr.env = fr.env.Child()
		m.stack.push(fr)
	case 1:
		bindsExpr, ok := fr.input.Shift()
		if !ok {
			return fmt.Errorf("loop bindings must be a list")
		}
		binds, ok2 := bindsExpr.(*ast.List)
		if !ok2 {
			return fmt.Errorf("loop bindings must be a list, got %s", bindsExpr)
		}
		items := binds.Slice()
		if len(items)%2 != 0 {
			return fmt.Errorf("loop bindings must hold pattern/value pairs: %s", binds)
		}
		patterns := ast.NewList()
		defList := ast.NewList(&ast.Symbol{Name: symDef})
		for i := 0; i < len(items); i += 2 {
			patterns.Push(items[i])
			defList.Push(items[i])
			defList.Push(items[i+1])
		}
		fr.output.Push(patterns)
		m.stack.push(fr)
		m.stack.push(newFrame(defList, fr.env))
	case 3:
		// [loop, patterns, Nil from the initial def]: the bindings are in
		// place; install recur and start the body.
		patterns, ok := out[1].(*ast.List)
		if !ok {
			return fmt.Errorf("unexpected loop state: %s", fr.output)
		}
		body := fr.input
		fr.env.Define(symRecur, &recurOp{
			params: patterns,
			body:   body,
			env:    fr.env,
			depth:  m.stack.len(),
		})
		m.stack.push(newFrame(beginList(body), fr.env))
	default:
		return fmt.Errorf("unexpected loop state: %s", fr.output)
	}
	return nil
}
