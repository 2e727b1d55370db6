package ast

// ReferencedNames returns every unqualified identifier referenced anywhere
// inside expr that is not bound by an enclosing lambda parameter, case
// branch pattern, or nested let declaration within expr itself — the
// dependency analysis a let block needs (§4.4) only cares whether a
// declaration's right-hand side mentions another declaration's name
// *free*, not one re-bound and shadowed along the way.
func ReferencedNames(expr Expr) []string {
	var names []string
	bound := make(map[string]int)

	push := func(ns []string) {
		for _, n := range ns {
			bound[n]++
		}
	}
	pop := func(ns []string) {
		for _, n := range ns {
			bound[n]--
			if bound[n] == 0 {
				delete(bound, n)
			}
		}
	}

	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case nil:
		case *FunctionOrValue:
			if e.Module == "" && bound[e.Name] == 0 {
				names = append(names, e.Name)
			}
		case *Negation:
			walk(e.Operand)
		case *BinOp:
			walk(e.Left)
			walk(e.Right)
		case *If:
			walk(e.Cond)
			walk(e.Then)
			walk(e.Else)
		case *TupleExpr:
			for _, el := range e.Elements {
				walk(el)
			}
		case *ListExpr:
			for _, el := range e.Elements {
				walk(el)
			}
		case *RecordExpr:
			for _, f := range e.Fields {
				walk(f.Value)
			}
		case *RecordAccess:
			walk(e.Record)
		case *RecordUpdate:
			if bound[e.Base] == 0 {
				names = append(names, e.Base)
			}
			for _, f := range e.Fields {
				walk(f.Value)
			}
		case *Lambda:
			var params []string
			for _, p := range e.Parameters {
				params = append(params, PatternNames(p)...)
			}
			push(params)
			walk(e.Body)
			pop(params)
		case *LetExpr:
			var declared []string
			for _, d := range e.Decls {
				declared = append(declared, d.DefinedNames()...)
			}
			push(declared)
			for _, d := range e.Decls {
				switch d := d.(type) {
				case *LetFunction:
					var params []string
					for _, p := range d.Parameters {
						params = append(params, PatternNames(p)...)
					}
					push(params)
					walk(d.Body)
					pop(params)
				case *LetDestructuring:
					walk(d.Expression)
				}
			}
			walk(e.Body)
			pop(declared)
		case *CaseExpr:
			walk(e.Scrutinee)
			for _, b := range e.Branches {
				branchNames := PatternNames(b.Pattern)
				push(branchNames)
				walk(b.Body)
				pop(branchNames)
			}
		case *Application:
			walk(e.Function)
			for _, a := range e.Arguments {
				walk(a)
			}
		}
	}
	walk(expr)
	return names
}
