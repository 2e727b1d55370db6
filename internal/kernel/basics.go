package kernel

import (
	"math"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

func numOp(name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) evaluator.KernelFunc {
	return func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		switch a := args[0].(type) {
		case evaluator.Int:
			switch b := args[1].(type) {
			case evaluator.Int:
				return evaluator.Int{Value: intOp(a.Value, b.Value)}, nil
			case evaluator.Float:
				return evaluator.Float{Value: floatOp(float64(a.Value), b.Value)}, nil
			}
		case evaluator.Float:
			switch b := args[1].(type) {
			case evaluator.Float:
				return evaluator.Float{Value: floatOp(a.Value, b.Value)}, nil
			case evaluator.Int:
				return evaluator.Float{Value: floatOp(a.Value, float64(b.Value))}, nil
			}
		}
		return nil, typeErr(ev, "%s expects two numbers", name)
	}
}

func typeErr(ev *evaluator.Evaluator, format string, args ...interface{}) *evaluator.EvalError {
	return evaluator.NewTypeError(format, args...)
}

func (r *Registry) registerBasics() {
	module := "Basics"

	r.Register(module, "add", 2, numOp("add", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }))
	r.Register(module, "sub", 2, numOp("sub", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }))
	r.Register(module, "mul", 2, numOp("mul", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }))

	r.Register(module, "fdiv", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		a, aok := asFloat(args[0])
		b, bok := asFloat(args[1])
		if !aok || !bok {
			return nil, evaluator.NewTypeError("/ expects two numbers")
		}
		return evaluator.Float{Value: a / b}, nil
	})

	r.Register(module, "idiv", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		a, aok := args[0].(evaluator.Int)
		b, bok := args[1].(evaluator.Int)
		if !aok || !bok {
			return nil, evaluator.NewTypeError("// expects two Int operands")
		}
		if b.Value == 0 {
			return nil, evaluator.NewTypeError("division by zero")
		}
		return evaluator.Int{Value: a.Value / b.Value}, nil
	})

	r.Register(module, "mod", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		a, aok := args[0].(evaluator.Int)
		b, bok := args[1].(evaluator.Int)
		if !aok || !bok {
			return nil, evaluator.NewTypeError("%% expects two Int operands")
		}
		if b.Value == 0 {
			return nil, evaluator.NewTypeError("division by zero")
		}
		m := a.Value % b.Value
		if m != 0 && (m < 0) != (b.Value < 0) {
			m += b.Value
		}
		return evaluator.Int{Value: m}, nil
	})

	r.Register(module, "pow", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		switch a := args[0].(type) {
		case evaluator.Int:
			if b, ok := args[1].(evaluator.Int); ok && b.Value >= 0 {
				return evaluator.Int{Value: int64(math.Pow(float64(a.Value), float64(b.Value)))}, nil
			}
		}
		a, aok := asFloat(args[0])
		b, bok := asFloat(args[1])
		if !aok || !bok {
			return nil, evaluator.NewTypeError("^ expects two numbers")
		}
		return evaluator.Float{Value: math.Pow(a, b)}, nil
	})

	cmp := func(name string, pick func(c int) bool) evaluator.KernelFunc {
		return func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
			c, ok := evaluator.CompareValues(args[0], args[1])
			if !ok {
				return nil, evaluator.NewTypeError("%s: values are not comparable", name)
			}
			return evaluator.BoolValue(pick(c)), nil
		}
	}
	r.Register(module, "lt", 2, cmp("<", func(c int) bool { return c < 0 }))
	r.Register(module, "gt", 2, cmp(">", func(c int) bool { return c > 0 }))
	r.Register(module, "le", 2, cmp("<=", func(c int) bool { return c <= 0 }))
	r.Register(module, "ge", 2, cmp(">=", func(c int) bool { return c >= 0 }))

	r.Register(module, "eq", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		return evaluator.BoolValue(evaluator.ValuesEqual(args[0], args[1])), nil
	})
	r.Register(module, "neq", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		return evaluator.BoolValue(!evaluator.ValuesEqual(args[0], args[1])), nil
	})

	r.Register(module, "append", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		switch a := args[0].(type) {
		case evaluator.String:
			b, ok := args[1].(evaluator.String)
			if !ok {
				return nil, evaluator.NewTypeError("++ expects two Strings")
			}
			return evaluator.String{Value: a.Value + b.Value}, nil
		case *evaluator.List:
			b, ok := args[1].(*evaluator.List)
			if !ok {
				return nil, evaluator.NewTypeError("++ expects two Lists")
			}
			merged := make([]evaluator.Value, 0, len(a.Elements)+len(b.Elements))
			merged = append(merged, a.Elements...)
			merged = append(merged, b.Elements...)
			return &evaluator.List{Elements: merged}, nil
		}
		return nil, evaluator.NewTypeError("++ expects two Strings or two Lists")
	})

	r.Register(module, "not", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		b, ok := args[0].(evaluator.Bool)
		if !ok {
			return nil, evaluator.NewTypeError("not expects a Bool")
		}
		return evaluator.BoolValue(!b.Value), nil
	})

	r.Register(module, "identity", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		return args[0], nil
	})
}

func asFloat(v evaluator.Value) (float64, bool) {
	switch n := v.(type) {
	case evaluator.Int:
		return float64(n.Value), true
	case evaluator.Float:
		return n.Value, true
	}
	return 0, false
}
