package eval

import (
	"fmt"
	"math"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// numericArgs validates that every argument is an integer or a float.
// If any argument is a float the whole computation is promoted to floats;
// otherwise the integer values are returned.
func numericArgs(name string, args *ast.List) (ints []int64, floats []float64, isFloat bool, err error) {
	items := args.Slice()
	for _, item := range items {
		switch item.(type) {
		case *ast.Integer:
		case *ast.Float:
			isFloat = true
		default:
			return nil, nil, false, fmt.Errorf("%s expects numeric arguments, got %s", name, item)
		}
	}
	if isFloat {
		floats = make([]float64, len(items))
		for i, item := range items {
			switch v := item.(type) {
			case *ast.Integer:
				floats[i] = float64(v.Value)
			case *ast.Float:
				floats[i] = v.Value
			}
		}
		return nil, floats, true, nil
	}
	ints = make([]int64, len(items))
	for i, item := range items {
		ints[i] = item.(*ast.Integer).Value
	}
	return ints, nil, false, nil
}

type sumOp struct{}

func (sumOp) Name() string { return "+" }

func (sumOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	if args.IsEmpty() {
		return nil, fmt.Errorf("+ expects at least one argument")
	}
	ints, floats, isFloat, err := numericArgs("+", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		acc := 0.0
		for _, v := range floats {
			acc += v
		}
		return &ast.Float{Value: acc}, nil
	}
	var acc int64
	for _, v := range ints {
		acc += v
	}
	return &ast.Integer{Value: acc}, nil
}

type subtractOp struct{}

func (subtractOp) Name() string { return "-" }

func (subtractOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	if args.IsEmpty() {
		return nil, fmt.Errorf("- expects at least one argument")
	}
	ints, floats, isFloat, err := numericArgs("-", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		if len(floats) == 1 {
			return &ast.Float{Value: -floats[0]}, nil
		}
		acc := floats[0]
		for _, v := range floats[1:] {
			acc -= v
		}
		return &ast.Float{Value: acc}, nil
	}
	if len(ints) == 1 {
		return &ast.Integer{Value: -ints[0]}, nil
	}
	acc := ints[0]
	for _, v := range ints[1:] {
		acc -= v
	}
	return &ast.Integer{Value: acc}, nil
}

type multiplyOp struct{}

func (multiplyOp) Name() string { return "*" }

func (multiplyOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	if args.IsEmpty() {
		return nil, fmt.Errorf("* expects at least one argument")
	}
	ints, floats, isFloat, err := numericArgs("*", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		acc := 1.0
		for _, v := range floats {
			acc *= v
		}
		return &ast.Float{Value: acc}, nil
	}
	var acc int64 = 1
	for _, v := range ints {
		acc *= v
	}
	return &ast.Integer{Value: acc}, nil
}

type divideOp struct{}

func (divideOp) Name() string { return "/" }

func (divideOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	if args.IsEmpty() {
		return nil, fmt.Errorf("/ expects at least one argument")
	}
	ints, floats, isFloat, err := numericArgs("/", args)
	if err != nil {
		return nil, err
	}
	if isFloat {
		acc := floats[0]
		for _, v := range floats[1:] {
			if v == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			acc /= v
		}
		return &ast.Float{Value: acc}, nil
	}
	acc := ints[0]
	for _, v := range ints[1:] {
		if v == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		acc /= v
	}
	return &ast.Integer{Value: acc}, nil
}

type powOp struct{}

func (powOp) Name() string { return "pow" }

func (powOp) Apply(args *ast.List, _ *Environment) (ast.Expression, error) {
	if args.Len() != 2 {
		return nil, fmt.Errorf("pow expects exactly two arguments, got %d", args.Len())
	}
	items := args.Slice()
	switch base := items[0].(type) {
	case *ast.Integer:
		exp, ok := items[1].(*ast.Integer)
		if !ok {
			return nil, fmt.Errorf("pow expects two arguments of the same numeric kind: %s", args)
		}
		if exp.Value < 0 {
			return nil, fmt.Errorf("pow expects a non-negative exponent for integers, got %d", exp.Value)
		}
		return &ast.Integer{Value: intPow(base.Value, exp.Value)}, nil
	case *ast.Float:
		exp, ok := items[1].(*ast.Float)
		if !ok {
			return nil, fmt.Errorf("pow expects two arguments of the same numeric kind: %s", args)
		}
		return &ast.Float{Value: math.Pow(base.Value, exp.Value)}, nil
	}
	return nil, fmt.Errorf("pow expects numeric arguments, got %s", items[0])
}

// intPow computes base**exp by binary exponentiation for exp >= 0.
func intPow(base, exp int64) int64 {
	var result int64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
