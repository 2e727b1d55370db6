package kernel

import (
	"unicode"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

func (r *Registry) registerChar() {
	module := "Char"

	r.Register(module, "toUpper", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		c, ok := args[0].(evaluator.Char)
		if !ok {
			return nil, evaluator.NewTypeError("Char.toUpper expects a Char")
		}
		return evaluator.Char{Value: unicode.ToUpper(c.Value)}, nil
	})

	r.Register(module, "toLower", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		c, ok := args[0].(evaluator.Char)
		if !ok {
			return nil, evaluator.NewTypeError("Char.toLower expects a Char")
		}
		return evaluator.Char{Value: unicode.ToLower(c.Value)}, nil
	})

	r.Register(module, "isDigit", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		c, ok := args[0].(evaluator.Char)
		if !ok {
			return nil, evaluator.NewTypeError("Char.isDigit expects a Char")
		}
		return evaluator.BoolValue(unicode.IsDigit(c.Value)), nil
	})

	r.Register(module, "isAlpha", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		c, ok := args[0].(evaluator.Char)
		if !ok {
			return nil, evaluator.NewTypeError("Char.isAlpha expects a Char")
		}
		return evaluator.BoolValue(unicode.IsLetter(c.Value)), nil
	})

	r.Register(module, "toCode", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		c, ok := args[0].(evaluator.Char)
		if !ok {
			return nil, evaluator.NewTypeError("Char.toCode expects a Char")
		}
		return evaluator.Int{Value: int64(c.Value)}, nil
	})

	r.Register(module, "fromCode", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		n, ok := args[0].(evaluator.Int)
		if !ok {
			return nil, evaluator.NewTypeError("Char.fromCode expects an Int")
		}
		return evaluator.Char{Value: rune(n.Value)}, nil
	})
}
