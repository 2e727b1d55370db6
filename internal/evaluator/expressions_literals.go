package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

func (ev *Evaluator) reduceLiteralsAndData(expr ast.Expr, env *Environment) (step, bool) {
	switch e := expr.(type) {
	case *ast.UnitLiteral:
		return finish(Unit{}), true
	case *ast.IntLiteral:
		return finish(Int{Value: e.Value}), true
	case *ast.FloatLiteral:
		return finish(Float{Value: e.Value}), true
	case *ast.CharLiteral:
		return finish(Char{Value: e.Value}), true
	case *ast.StringLiteral:
		return finish(String{Value: e.Value}), true

	case *ast.TupleExpr:
		return ev.reduceTuple(e, env), true

	case *ast.ListExpr:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := ev.Eval(el, env)
			if err != nil {
				return failStep(err), true
			}
			elems[i] = v
		}
		return finish(&List{Elements: elems}), true

	case *ast.RecordExpr:
		fields := make(map[string]Value, len(e.Fields))
		for _, f := range e.Fields {
			v, err := ev.Eval(f.Value, env)
			if err != nil {
				return failStep(err), true
			}
			fields[f.Name] = v
		}
		return finish(&Record{Fields: fields}), true

	case *ast.RecordAccess:
		recVal, err := ev.Eval(e.Record, env)
		if err != nil {
			return failStep(err), true
		}
		record, ok := recVal.(*Record)
		if !ok {
			return failStep(newTypeError(env.CallStack, "cannot access field %q of non-record value %s", e.Field, recVal.String())), true
		}
		v, ok := record.Get(e.Field)
		if !ok {
			return failStep(newTypeError(env.CallStack, "record has no field %q", e.Field)), true
		}
		return finish(v), true

	case *ast.RecordAccessor:
		return finish(&PartiallyApplied{
			CapturedEnv: env,
			Parameters:  []ast.Pattern{ast.NewVarPattern(e.Pos(), "$r")},
			Body:        ast.NewRecordAccess(e.Pos(), ast.NewFunctionOrValue(e.Pos(), "", "$r"), e.Field),
		}), true

	case *ast.RecordUpdate:
		base, ok := env.Get(e.Base)
		if !ok {
			return failStep(newNameError(env.CallStack, e.Base)), true
		}
		record, ok := base.(*Record)
		if !ok {
			return failStep(newTypeError(env.CallStack, "cannot update non-record value %s", base.String())), true
		}
		updates := make(map[string]Value, len(e.Fields))
		for _, f := range e.Fields {
			v, err := ev.Eval(f.Value, env)
			if err != nil {
				return failStep(err), true
			}
			updates[f.Name] = v
		}
		return finish(record.With(updates)), true

	case *ast.Lambda:
		return finish(&PartiallyApplied{CapturedEnv: env, Parameters: e.Parameters, Body: e.Body}), true
	}
	return step{}, false
}

// reduceTuple implements the 2/3/4+-element rules of §4.2: a single
// element reduces to its own content (the parser is expected to already
// eliminate these, but the evaluator honors it defensively), 2 or 3
// elements evaluate left-to-right into Tuple/Triple, and 4+ is an
// Unsupported error.
func (ev *Evaluator) reduceTuple(e *ast.TupleExpr, env *Environment) step {
	switch len(e.Elements) {
	case 1:
		v, err := ev.Eval(e.Elements[0], env)
		if err != nil {
			return failStep(err)
		}
		return finish(v)
	case 2:
		a, err := ev.Eval(e.Elements[0], env)
		if err != nil {
			return failStep(err)
		}
		b, err := ev.Eval(e.Elements[1], env)
		if err != nil {
			return failStep(err)
		}
		return finish(Tuple{First: a, Second: b})
	case 3:
		a, err := ev.Eval(e.Elements[0], env)
		if err != nil {
			return failStep(err)
		}
		b, err := ev.Eval(e.Elements[1], env)
		if err != nil {
			return failStep(err)
		}
		c, err := ev.Eval(e.Elements[2], env)
		if err != nil {
			return failStep(err)
		}
		return finish(Triple{First: a, Second: b, Third: c})
	default:
		return failStep(newUnsupported(env.CallStack, "tuples with more than three elements are not supported"))
	}
}
