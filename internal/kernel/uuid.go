package kernel

import (
	"github.com/google/uuid"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

// registerUuid exposes github.com/google/uuid to surface programs under
// Elm.Kernel.Uuid (§9 domain stack): generation and validity checking are
// effects a tree-walking interpreter can offer safely since they never
// affect the purity of the evaluation itself — nothing in the evaluator's
// reduction rules depends on a Uuid value being referentially transparent.
func (r *Registry) registerUuid() {
	module := "Uuid"

	r.Register(module, "generate", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		if _, ok := args[0].(evaluator.Unit); !ok {
			return nil, evaluator.NewTypeError("Uuid.generate expects Unit")
		}
		return evaluator.String{Value: uuid.NewString()}, nil
	})

	r.Register(module, "isValid", 1, func(ev *evaluator.Evaluator, args []evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return nil, evaluator.NewTypeError("Uuid.isValid expects a String")
		}
		_, err := uuid.Parse(s.Value)
		return evaluator.BoolValue(err == nil), nil
	})
}
