package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

func (ev *Evaluator) reduceControl(expr ast.Expr, env *Environment) (step, bool) {
	switch e := expr.(type) {
	case *ast.Negation:
		v, err := ev.Eval(e.Operand, env)
		if err != nil {
			return failStep(err), true
		}
		switch n := v.(type) {
		case Int:
			return finish(Int{Value: -n.Value}), true
		case Float:
			return finish(Float{Value: -n.Value}), true
		}
		return failStep(newTypeError(env.CallStack, "cannot negate non-numeric value %s", v.String())), true

	case *ast.BinOp:
		return ev.reduceBinOp(e, env), true

	case *ast.If:
		cond, err := ev.Eval(e.Cond, env)
		if err != nil {
			return failStep(err), true
		}
		b, ok := cond.(Bool)
		if !ok {
			return failStep(newTypeError(env.CallStack, "if condition must be Bool, got %s", cond.String())), true
		}
		if b.Value {
			return tailTo(e.Then, env), true
		}
		return tailTo(e.Else, env), true

	case *ast.LetExpr:
		extended, err := ev.bindLet(e.Decls, env)
		if err != nil {
			return failStep(err), true
		}
		return tailTo(e.Body, extended), true

	case *ast.CaseExpr:
		return ev.reduceCase(e, env), true
	}
	return step{}, false
}

// reduceBinOp implements §4.2's short-circuit rules for && and ||,
// rewrites every other operator into an application of its kernel
// function from the operator table (§4.7), and propagates the first error
// encountered left-to-right (§5).
func (ev *Evaluator) reduceBinOp(e *ast.BinOp, env *Environment) step {
	switch e.Operator {
	case "&&":
		left, err := ev.Eval(e.Left, env)
		if err != nil {
			return failStep(err)
		}
		lb, ok := left.(Bool)
		if !ok {
			return failStep(newTypeError(env.CallStack, "&& expects Bool operands, got %s", left.String()))
		}
		if !lb.Value {
			return finish(boolValue(false))
		}
		return tailTo(e.Right, env)

	case "||":
		left, err := ev.Eval(e.Left, env)
		if err != nil {
			return failStep(err)
		}
		lb, ok := left.(Bool)
		if !ok {
			return failStep(newTypeError(env.CallStack, "|| expects Bool operands, got %s", left.String()))
		}
		if lb.Value {
			return finish(boolValue(true))
		}
		return tailTo(e.Right, env)
	}

	qn, ok := lookupOperator(e.Operator)
	if !ok {
		return failStep(newUnsupported(env.CallStack, "unknown operator %q", e.Operator))
	}
	fnExpr := ast.NewFunctionOrValue(e.Pos(), qn.Module, qn.Name)
	app := ast.NewApplication(e.Pos(), fnExpr, []ast.Expr{e.Left, e.Right})
	return tailTo(app, env)
}

// reduceCase implements §4.5: try branches top-to-bottom, the first
// matching branch's body is evaluated in tail position.
func (ev *Evaluator) reduceCase(e *ast.CaseExpr, env *Environment) step {
	scrutinee, err := ev.Eval(e.Scrutinee, env)
	if err != nil {
		return failStep(err)
	}
	for _, branch := range e.Branches {
		bindings, matched, err := ev.Match(branch.Pattern, scrutinee, env.CallStack)
		if err != nil {
			return failStep(err)
		}
		if !matched {
			continue
		}
		extended := env.Extend()
		for name, v := range bindings {
			extended.Set(name, v)
		}
		return tailTo(branch.Body, extended)
	}
	return failStep(newTypeError(env.CallStack, "Missing case branch for %s", scrutinee.String()))
}
