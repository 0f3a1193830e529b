package eval

import (
	"testing"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &ast.Integer{Value: 1})

	val, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if val.String() != "1" {
		t.Errorf("expected 1, got %s", val)
	}

	if _, ok := env.Get("missing"); ok {
		t.Error("expected missing to be unbound")
	}
}

func TestEnvironmentOverwrite(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &ast.Integer{Value: 1})
	env.Define("x", &ast.Integer{Value: 2})

	val, _ := env.Get("x")
	if val.String() != "2" {
		t.Errorf("expected 2, got %s", val)
	}
}

func TestEnvironmentChainLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &ast.Integer{Value: 1})
	inner := outer.Child()

	val, ok := inner.Get("x")
	if !ok || val.String() != "1" {
		t.Errorf("expected chained lookup to find 1, got %v %v", val, ok)
	}
}

func TestEnvironmentWritesStayLocal(t *testing.T) {
	outer := NewEnvironment()
	inner := outer.Child()
	inner.Define("x", &ast.Integer{Value: 1})

	if outer.Has("x") {
		t.Error("child write leaked into the parent")
	}
	if !inner.HasLocal("x") {
		t.Error("expected x in the child store")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", &ast.Integer{Value: 1})
	inner := outer.Child()
	inner.Define("x", &ast.Integer{Value: 2})

	val, _ := inner.Get("x")
	if val.String() != "2" {
		t.Errorf("expected the local binding to shadow, got %s", val)
	}
	val, _ = outer.Get("x")
	if val.String() != "1" {
		t.Errorf("expected the outer binding to be untouched, got %s", val)
	}
}

func TestEnvironmentNames(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("b", &ast.Nil{})
	outer.Define("a", &ast.Nil{})
	inner := outer.Child()
	inner.Define("a", &ast.Integer{Value: 1})
	inner.Define("c", &ast.Nil{})

	names := inner.Names()
	expected := []string{"a", "b", "c"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("expected %v, got %v", expected, names)
			break
		}
	}
}
