package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

// reduce is the single-step core the Eval trampoline drives: it tries each
// family of expression forms in turn and falls through to identifier
// resolution and application, the two forms that need the Evaluator's
// Kernel/Aliases wiring.
func (ev *Evaluator) reduce(expr ast.Expr, env *Environment) step {
	if st, ok := ev.reduceLiteralsAndData(expr, env); ok {
		return st
	}
	if st, ok := ev.reduceControl(expr, env); ok {
		return st
	}
	switch e := expr.(type) {
	case *ast.FunctionOrValue:
		return ev.reduceIdentifier(e, env)
	case *ast.Application:
		return ev.reduceApplication(e, env)
	}
	return failStep(newUnsupported(env.CallStack, "cannot evaluate expression of type %T", expr))
}
