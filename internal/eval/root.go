package eval

import "github.com/iamlisp/go-iamlisp/internal/ast"

// NewRootEnvironment returns a parentless environment with every native
// operation registered under its name, plus the Nil literal so that the
// printed form of Nil re-evaluates to Nil.
func NewRootEnvironment() *Environment {
	env := NewEnvironment()
	env.Define("Nil", &ast.Nil{})
	for _, op := range []Op{
		sumOp{},
		subtractOp{},
		multiplyOp{},
		divideOp{},
		powOp{},
		eqOp{},
		neOp{},
		gtOp{},
		ltOp{},
		geOp{},
		leOp{},
		listOp{},
		beginOp{},
	} {
		env.Define(op.Name(), &NativeCall{Op: op})
	}
	return env
}
