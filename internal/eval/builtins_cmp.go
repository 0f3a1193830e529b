package eval

import (
	"fmt"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// chainCompare applies a binary predicate across consecutive argument
// pairs: (op a b c) means (op a b) and (op b c). At least two arguments are
// required.
func chainCompare(name string, args *ast.List, cmp func(a, b ast.Expression) (bool, error)) (ast.Expression, error) {
	if args.Len() < 2 {
		return nil, fmt.Errorf("%s expects at least two arguments, got %d", name, args.Len())
	}
	items := args.Slice()
	for i := 0; i+1 < len(items); i++ {
		ok, err := cmp(items[i], items[i+1])
		if err != nil {
			return nil, err
		}
		if !ok {
			return &ast.Boolean{Value: false}, nil
		}
	}
	return &ast.Boolean{Value: true}, nil
}

// orderPair compares two numeric operands, promoting a mixed int/float pair
// to floats. It returns -1, 0, or 1.
func orderPair(name string, a, b ast.Expression) (int, error) {
	if ai, ok := a.(*ast.Integer); ok {
		if bi, ok2 := b.(*ast.Integer); ok2 {
			switch {
			case ai.Value < bi.Value:
				return -1, nil
			case ai.Value > bi.Value:
				return 1, nil
			}
			return 0, nil
		}
	}
	af, err := floatOperand(name, a)
	if err != nil {
		return 0, err
	}
	bf, err := floatOperand(name, b)
	if err != nil {
		return 0, err
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	}
	return 0, nil
}

func floatOperand(name string, expr ast.Expression) (float64, error) {
	switch v := expr.(type) {
	case *ast.Integer:
		return float64(v.Value), nil
	case *ast.Float:
		return v.Value, nil
	}
	return 0, fmt.Errorf("%s expects numeric arguments, got %s", name, expr)
}

type eqOp struct{}

func (eqOp) Name() string { return "=" }

func (eqOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return chainCompare("=", args, func(a, b ast.Expression) (bool, error) {
		return ast.Equal(a, b), nil
	})
}

type neOp struct{}

func (neOp) Name() string { return "!=" }

func (neOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return chainCompare("!=", args, func(a, b ast.Expression) (bool, error) {
		return !ast.Equal(a, b), nil
	})
}

type gtOp struct{}

func (gtOp) Name() string { return ">" }

func (gtOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return chainCompare(">", args, func(a, b ast.Expression) (bool, error) {
		c, err := orderPair(">", a, b)
		return c > 0, err
	})
}

type ltOp struct{}

func (ltOp) Name() string { return "<" }

func (ltOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return chainCompare("<", args, func(a, b ast.Expression) (bool, error) {
		c, err := orderPair("<", a, b)
		return c < 0, err
	})
}

type geOp struct{}

func (geOp) Name() string { return ">=" }

func (geOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return chainCompare(">=", args, func(a, b ast.Expression) (bool, error) {
		c, err := orderPair(">=", a, b)
		return c >= 0, err
	})
}

type leOp struct{}

func (leOp) Name() string { return "<=" }

func (leOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	return chainCompare("<=", args, func(a, b ast.Expression) (bool, error) {
		c, err := orderPair("<=", a, b)
		return c <= 0, err
	})
}
