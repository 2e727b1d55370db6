package kernel

import "github.com/funvibe/mlrepl/internal/evaluator"

func (r *Registry) registerTuple() {
	module := "Tuple"

	r.Register(module, "first", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		switch t := args[0].(type) {
		case evaluator.Tuple:
			return t.First, nil
		case evaluator.Triple:
			return t.First, nil
		}
		return nil, evaluator.NewTypeError("Tuple.first expects a Tuple")
	})

	r.Register(module, "second", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		switch t := args[0].(type) {
		case evaluator.Tuple:
			return t.Second, nil
		case evaluator.Triple:
			return t.Second, nil
		}
		return nil, evaluator.NewTypeError("Tuple.second expects a Tuple")
	})

	r.Register(module, "pair", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		return evaluator.Tuple{First: args[0], Second: args[1]}, nil
	})
}
