package eval

import "github.com/iamlisp/go-iamlisp/internal/ast"

type listOp struct{}

func (listOp) Name() string { return "list" }

// Apply returns the evaluated arguments as a list, in order.
func (listOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return args, nil
}

type beginOp struct{}

func (beginOp) Name() string { return "begin" }

// Apply returns the last argument, or Nil when there are none. The driver
// has already evaluated the arguments left to right, which is all the
// sequencing begin needs.
func (beginOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	var last ast.Expression = &ast.Nil{}
	for {
		v, ok := args.Shift()
		if !ok {
			return last, nil
		}
		last = v
	}
}
