package eval

import (
	"strings"
	"testing"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

func sym(name string) *ast.Symbol {
	return &ast.Symbol{Name: name}
}

func intv(n int64) *ast.Integer {
	return &ast.Integer{Value: n}
}

func TestBindSymbol(t *testing.T) {
	env := NewEnvironment()
	if err := bind(sym("x"), intv(1), env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, _ := env.Get("x")
	if val.String() != "1" {
		t.Errorf("expected 1, got %s", val)
	}
}

func TestBindListExact(t *testing.T) {
	env := NewEnvironment()
	pat := ast.NewList(sym("a"), sym("b"))
	val := ast.NewList(intv(1), intv(2))
	if err := bind(pat, val, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := env.Get("a")
	b, _ := env.Get("b")
	if a.String() != "1" || b.String() != "2" {
		t.Errorf("expected 1 and 2, got %s and %s", a, b)
	}
}

func TestBindRest(t *testing.T) {
	env := NewEnvironment()
	pat := ast.NewList(sym("a"), sym("b"), &ast.Dot{}, sym("rest"))
	val := ast.NewList(intv(1), intv(2), intv(3), intv(4))
	if err := bind(pat, val, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rest, _ := env.Get("rest")
	if rest.String() != "(3 4)" {
		t.Errorf("expected (3 4), got %s", rest)
	}
}

func TestBindRestEmpty(t *testing.T) {
	env := NewEnvironment()
	pat := ast.NewList(sym("a"), sym("b"), &ast.Dot{}, sym("rest"))
	val := ast.NewList(intv(1), intv(2))
	if err := bind(pat, val, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rest, _ := env.Get("rest")
	if rest.String() != "()" {
		t.Errorf("expected (), got %s", rest)
	}
}

func TestBindRestTooFewValues(t *testing.T) {
	env := NewEnvironment()
	pat := ast.NewList(sym("a"), sym("b"), &ast.Dot{}, sym("rest"))
	val := ast.NewList(intv(1))
	err := bind(pat, val, env)
	if err == nil || !strings.Contains(err.Error(), "not enough values") {
		t.Errorf("expected a not-enough-values error, got %v", err)
	}
}

func TestBindValueMutationIsolation(t *testing.T) {
	env := NewEnvironment()
	pat := ast.NewList(sym("a"), &ast.Dot{}, sym("rest"))
	val := ast.NewList(intv(1), intv(2), intv(3))
	if err := bind(pat, val, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The bound rest is carved from a clone; the original value list is
	// untouched.
	if val.String() != "(1 2 3)" {
		t.Errorf("value list was mutated: %s", val)
	}
}

func TestBindInvalidTarget(t *testing.T) {
	env := NewEnvironment()
	err := bind(intv(5), intv(1), env)
	if err == nil || !strings.Contains(err.Error(), "not a valid binding target") {
		t.Errorf("expected an invalid-target error, got %v", err)
	}
}
