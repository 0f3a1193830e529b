package eval

import (
	"strings"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// Op is the capability shared by all native operations: apply a list of
// already-evaluated arguments in an environment and produce a result.
type Op interface {
	// Name returns the symbol the operation is registered under.
	Name() string
	// Apply invokes the operation. Arguments are evaluated left to right
	// by the driver before Apply is called.
	Apply(args *ast.List, env *Environment) (ast.Expression, error)
}

// NativeCall is a callable implemented by the host runtime.
type NativeCall struct {
	Op Op
}

// Type returns "NATIVE".
func (n *NativeCall) Type() string {
	return "NATIVE"
}

// String returns the registered name of the operation.
func (n *NativeCall) String() string {
	return n.Op.Name()
}

// Lambda is a user-defined closure. It captures the environment of its
// definition site; that environment becomes the parent of every
// invocation's child scope.
type Lambda struct {
	Params *ast.List
	Body   *ast.List
	Env    *Environment
}

// Type returns "LAMBDA".
func (l *Lambda) Type() string {
	return "LAMBDA"
}

// String returns "(lambda (params…) body…)".
func (l *Lambda) String() string {
	return callableString("lambda", l.Params, l.Body)
}

// Macro is a constructible macro value. It captures no environment.
// Applying a macro is not implemented.
type Macro struct {
	Params *ast.List
	Body   *ast.List
}

// Type returns "MACRO".
func (m *Macro) Type() string {
	return "MACRO"
}

// String returns "(macro (params…) body…)".
func (m *Macro) String() string {
	return callableString("macro", m.Params, m.Body)
}

func callableString(kind string, params, body *ast.List) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(kind)
	sb.WriteByte(' ')
	sb.WriteString(params.String())
	for _, expr := range body.Slice() {
		sb.WriteByte(' ')
		sb.WriteString(expr.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// recurOp is the callable bound to the recur symbol inside a loop body.
// When applied it truncates the call stack back to the loop's entry depth,
// re-binds the loop patterns to the new argument values, and restarts the
// body, so tail iteration never grows the stack.
type recurOp struct {
	params *ast.List
	body   *ast.List
	env    *Environment
	depth  int
}

// Type returns "RECUR".
func (r *recurOp) Type() string {
	return "RECUR"
}

// String returns the printed form of the recur operator.
func (r *recurOp) String() string {
	return "recur"
}
