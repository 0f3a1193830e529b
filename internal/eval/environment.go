package eval

import (
	"sort"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// Environment is a symbol table with lexical scoping. Lookups traverse the
// outer chain; writes always land in the local store so that bindings made
// inside a lambda body never leak into its captured parent.
//
// Environments are shared by reference: every closure created in a scope
// holds the same *Environment, and a child scope holds a pointer to its
// parent. The evaluator is single-threaded, so no locking is required.
type Environment struct {
	store map[string]ast.Expression
	outer *Environment
}

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]ast.Expression)}
}

// NewEnclosedEnvironment creates an empty environment whose outer scope is
// the given environment.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]ast.Expression), outer: outer}
}

// Child returns a new empty environment enclosed by the receiver.
func (e *Environment) Child() *Environment {
	return NewEnclosedEnvironment(e)
}

// Get retrieves a binding by name, searching the current environment first
// and then the outer chain.
func (e *Environment) Get(name string) (ast.Expression, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define binds a name in the local store only. An existing local binding is
// overwritten; outer scopes are never touched.
func (e *Environment) Define(name string, val ast.Expression) {
	e.store[name] = val
}

// Has reports whether the name is bound in this environment or any outer one.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// HasLocal reports whether the name is bound in this environment itself.
func (e *Environment) HasLocal(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Names returns every name visible from this environment, sorted. Shadowed
// outer bindings appear once.
func (e *Environment) Names() []string {
	seen := make(map[string]struct{})
	for env := e; env != nil; env = env.outer {
		for name := range env.store {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
