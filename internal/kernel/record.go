package kernel

import "github.com/funvibe/mlrepl/internal/evaluator"

// registerRecord registers Elm.Kernel.Record's one primitive, `equal`,
// structural equality through ValuesEqual. Record access, the `.field`
// accessor and record update are evaluated directly by the evaluator and
// go through no kernel primitive.
func (r *Registry) registerRecord() {
	module := "Record"

	r.Register(module, "equal", 2, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		return evaluator.BoolValue(evaluator.ValuesEqual(args[0], args[1])), nil
	})
}
