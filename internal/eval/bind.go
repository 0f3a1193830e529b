package eval

import (
	"fmt"

	"github.com/iamlisp/go-iamlisp/internal/ast"
)

// bind binds a pattern to a value in the given environment.
//
// A symbol pattern binds the value to its name. A list pattern destructures
// a list value element-wise; the dot sentinel inside a list pattern marks
// the rest position, and the single pattern after it receives the remaining
// values as a (possibly empty) list. Anything else is not a valid binding
// target.
func bind(pat, val ast.Expression, env *Environment) error {
	switch p := pat.(type) {
	case *ast.Symbol:
		env.Define(p.Name, val)
		return nil
	case *ast.List:
		lv, ok := val.(*ast.List)
		if !ok {
			return fmt.Errorf("cannot destructure %s against pattern %s", val, pat)
		}
		return bindList(p, lv, env)
	}
	return fmt.Errorf("not a valid binding target: %s", pat)
}

// bindList destructures a list of values against a list of patterns.
func bindList(patterns, values *ast.List, env *Environment) error {
	pats := patterns.Slice()

	restIdx := -1
	for i, p := range pats {
		if _, isDot := p.(*ast.Dot); !isDot {
			continue
		}
		if restIdx >= 0 {
			return fmt.Errorf("more than one . in binding pattern %s", patterns)
		}
		restIdx = i
	}
	if restIdx >= 0 && restIdx != len(pats)-2 {
		return fmt.Errorf("exactly one pattern must follow . in %s", patterns)
	}

	vals := values.Clone()

	if restIdx >= 0 {
		for _, p := range pats[:restIdx] {
			v, ok := vals.Shift()
			if !ok {
				return fmt.Errorf("not enough values to bind pattern %s", patterns)
			}
			if err := bind(p, v, env); err != nil {
				return err
			}
		}
		return bind(pats[restIdx+1], vals, env)
	}

	if vals.Len() < len(pats) {
		return fmt.Errorf("not enough values to bind pattern %s", patterns)
	}
	if vals.Len() > len(pats) {
		return fmt.Errorf("too many values to bind pattern %s", patterns)
	}
	for _, p := range pats {
		v, _ := vals.Shift()
		if err := bind(p, v, env); err != nil {
			return err
		}
	}
	return nil
}
