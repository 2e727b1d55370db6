package kernel

import "github.com/funvibe/mlrepl/internal/evaluator"

func asList(v evaluator.Value) (*evaluator.List, bool) {
	l, ok := v.(*evaluator.List)
	return l, ok
}

func (r *Registry) registerList() {
	module := "List"

	r.Register(module, "cons", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		tail, ok := asList(args[1])
		if !ok {
			return nil, evaluator.NewTypeError(":: expects a List tail")
		}
		elems := make([]evaluator.Value, 0, len(tail.Elements)+1)
		elems = append(elems, args[0])
		elems = append(elems, tail.Elements...)
		return &evaluator.List{Elements: elems}, nil
	})

	r.Register(module, "isEmpty", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[0])
		if !ok {
			return nil, evaluator.NewTypeError("List.isEmpty expects a List")
		}
		return evaluator.BoolValue(len(l.Elements) == 0), nil
	})

	r.Register(module, "length", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[0])
		if !ok {
			return nil, evaluator.NewTypeError("List.length expects a List")
		}
		return evaluator.Int{Value: int64(len(l.Elements))}, nil
	})

	r.Register(module, "reverse", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[0])
		if !ok {
			return nil, evaluator.NewTypeError("List.reverse expects a List")
		}
		reversed := make([]evaluator.Value, len(l.Elements))
		for i, v := range l.Elements {
			reversed[len(l.Elements)-1-i] = v
		}
		return &evaluator.List{Elements: reversed}, nil
	})

	r.Register(module, "append", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		a, aok := asList(args[0])
		b, bok := asList(args[1])
		if !aok || !bok {
			return nil, evaluator.NewTypeError("List.append expects two Lists")
		}
		merged := make([]evaluator.Value, 0, len(a.Elements)+len(b.Elements))
		merged = append(merged, a.Elements...)
		merged = append(merged, b.Elements...)
		return &evaluator.List{Elements: merged}, nil
	})

	r.Register(module, "map", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[1])
		if !ok {
			return nil, evaluator.NewTypeError("List.map expects a List")
		}
		out := make([]evaluator.Value, len(l.Elements))
		for i, v := range l.Elements {
			result, err := ev.ApplyValue(args[0], []evaluator.Value{v})
			if err != nil {
				return nil, err
			}
			out[i] = result
		}
		return &evaluator.List{Elements: out}, nil
	})

	r.Register(module, "filter", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[1])
		if !ok {
			return nil, evaluator.NewTypeError("List.filter expects a List")
		}
		var out []evaluator.Value
		for _, v := range l.Elements {
			result, err := ev.ApplyValue(args[0], []evaluator.Value{v})
			if err != nil {
				return nil, err
			}
			b, ok := result.(evaluator.Bool)
			if !ok {
				return nil, evaluator.NewTypeError("List.filter predicate must return Bool")
			}
			if b.Value {
				out = append(out, v)
			}
		}
		return &evaluator.List{Elements: out}, nil
	})

	r.Register(module, "foldl", 3, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[2])
		if !ok {
			return nil, evaluator.NewTypeError("List.foldl expects a List")
		}
		acc := args[1]
		for _, v := range l.Elements {
			var err *evaluator.EvalError
			acc, err = ev.ApplyValue(args[0], []evaluator.Value{v, acc})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	r.Register(module, "foldr", 3, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[2])
		if !ok {
			return nil, evaluator.NewTypeError("List.foldr expects a List")
		}
		acc := args[1]
		for i := len(l.Elements) - 1; i >= 0; i-- {
			var err *evaluator.EvalError
			acc, err = ev.ApplyValue(args[0], []evaluator.Value{l.Elements[i], acc})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	r.Register(module, "head", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[0])
		if !ok || len(l.Elements) == 0 {
			return evaluator.MaybeNothing(), nil
		}
		return evaluator.MaybeJust(l.Elements[0]), nil
	})

	r.Register(module, "tail", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[0])
		if !ok || len(l.Elements) == 0 {
			return evaluator.MaybeNothing(), nil
		}
		return evaluator.MaybeJust(&evaluator.List{Elements: l.Elements[1:]}), nil
	})

	r.Register(module, "member", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[1])
		if !ok {
			return nil, evaluator.NewTypeError("List.member expects a List")
		}
		for _, v := range l.Elements {
			if evaluator.ValuesEqual(args[0], v) {
				return evaluator.BoolValue(true), nil
			}
		}
		return evaluator.BoolValue(false), nil
	})

	r.Register(module, "sort", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		l, ok := asList(args[0])
		if !ok {
			return nil, evaluator.NewTypeError("List.sort expects a List")
		}
		sorted := append([]evaluator.Value(nil), l.Elements...)
		var sortErr *evaluator.EvalError
		insertionSort(sorted, func(a, b evaluator.Value) bool {
			c, ok := evaluator.CompareValues(a, b)
			if !ok && sortErr == nil {
				sortErr = evaluator.NewTypeError("List.sort: values are not comparable")
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return &evaluator.List{Elements: sorted}, nil
	})
}

// insertionSort keeps the kernel dependency-free for ordering: lists
// produced by the surface language are small enough in practice that an
// O(n^2) sort is not a concern, and it lets the less-than callback report
// a type error partway through without needing sort.Interface gymnastics.
func insertionSort(xs []evaluator.Value, less func(a, b evaluator.Value) bool) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && less(xs[j], xs[j-1]); j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
