package kernel

import (
	"strconv"
	"strings"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

func (r *Registry) registerString() {
	module := "String"

	r.Register(module, "length", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.length expects a String")
		}
		return evaluator.Int{Value: int64(len([]rune(s.Value)))}, nil
	})

	r.Register(module, "isEmpty", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.isEmpty expects a String")
		}
		return evaluator.BoolValue(s.Value == ""), nil
	})

	r.Register(module, "toUpper", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.toUpper expects a String")
		}
		return evaluator.String{Value: strings.ToUpper(s.Value)}, nil
	})

	r.Register(module, "toLower", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.toLower expects a String")
		}
		return evaluator.String{Value: strings.ToLower(s.Value)}, nil
	})

	r.Register(module, "trim", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.trim expects a String")
		}
		return evaluator.String{Value: strings.TrimSpace(s.Value)}, nil
	})

	r.Register(module, "append", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		a, aok := args[0].(evaluator.String)
		b, bok := args[1].(evaluator.String)
		if !aok || !bok {
			return nil, evaluator.NewTypeError("String.append expects two Strings")
		}
		return evaluator.String{Value: a.Value + b.Value}, nil
	})

	r.Register(module, "fromInt", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		n, ok := args[0].(evaluator.Int)
		if !ok {
			return nil, evaluator.NewTypeError("String.fromInt expects an Int")
		}
		return evaluator.String{Value: strconv.FormatInt(n.Value, 10)}, nil
	})

	r.Register(module, "fromFloat", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		f, ok := args[0].(evaluator.Float)
		if !ok {
			return nil, evaluator.NewTypeError("String.fromFloat expects a Float")
		}
		return evaluator.String{Value: strconv.FormatFloat(f.Value, 'g', -1, 64)}, nil
	})

	r.Register(module, "toInt", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.toInt expects a String")
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64)
		if err != nil {
			return evaluator.MaybeNothing(), nil
		}
		return evaluator.MaybeJust(evaluator.Int{Value: n}), nil
	})

	r.Register(module, "toFloat", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.toFloat expects a String")
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
		if err != nil {
			return evaluator.MaybeNothing(), nil
		}
		return evaluator.MaybeJust(evaluator.Float{Value: f}), nil
	})

	r.Register(module, "split", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		sep, sok := args[0].(evaluator.String)
		s, ok := args[1].(evaluator.String)
		if !sok || !ok {
			return nil, evaluator.NewTypeError("String.split expects two Strings")
		}
		parts := strings.Split(s.Value, sep.Value)
		elems := make([]evaluator.Value, len(parts))
		for i, p := range parts {
			elems[i] = evaluator.String{Value: p}
		}
		return &evaluator.List{Elements: elems}, nil
	})

	r.Register(module, "join", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		sep, sok := args[0].(evaluator.String)
		list, lok := args[1].(*evaluator.List)
		if !sok || !lok {
			return nil, evaluator.NewTypeError("String.join expects a String and a List")
		}
		parts := make([]string, len(list.Elements))
		for i, v := range list.Elements {
			s, ok := v.(evaluator.String)
			if !ok {
				return nil, evaluator.NewTypeError("String.join expects a List of Strings")
			}
			parts[i] = s.Value
		}
		return evaluator.String{Value: strings.Join(parts, sep.Value)}, nil
	})

	r.Register(module, "toList", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("String.toList expects a String")
		}
		runes := []rune(s.Value)
		elems := make([]evaluator.Value, len(runes))
		for i, r := range runes {
			elems[i] = evaluator.Char{Value: r}
		}
		return &evaluator.List{Elements: elems}, nil
	})
}
