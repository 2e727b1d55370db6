package evaluator

import "github.com/funvibe/mlrepl/internal/ast"

// Match tries pattern against value (§4.1). It returns:
//   - (bindings, true, nil)  — the pattern matched, with these bindings
//   - (nil, false, nil)      — the pattern did not match; try the next branch
//   - (nil, false, err)      — a structural error (the program was assumed
//     to typecheck, so this indicates an internal inconsistency)
func (ev *Evaluator) Match(pattern ast.Pattern, value Value, stack []Frame) (map[string]Value, bool, *EvalError) {
	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		return map[string]Value{}, true, nil

	case *ast.UnitPattern:
		if _, ok := value.(Unit); ok {
			return map[string]Value{}, true, nil
		}
		return nil, false, nil

	case *ast.VarPattern:
		return map[string]Value{p.Name: value}, true, nil

	case *ast.AsPattern:
		bindings, ok, err := ev.Match(p.Inner, value, stack)
		if err != nil || !ok {
			return nil, ok, err
		}
		bindings[p.Name] = value
		return bindings, true, nil

	case *ast.LiteralPattern:
		bindings := matchLiteral(p, value)
		return bindings, bindings != nil, nil

	case *ast.TuplePattern:
		return ev.matchTuple(p, value, stack)

	case *ast.ListPattern:
		return ev.matchList(p, value, stack)

	case *ast.ConsPattern:
		return ev.matchCons(p, value, stack)

	case *ast.ConstructorPattern:
		return ev.matchConstructor(p, value, stack)

	case *ast.RecordPattern:
		return ev.matchRecord(p, value, stack)
	}
	return nil, false, newTypeError(stack, "unsupported pattern form")
}

// matchLiteral returns a (possibly empty) bindings map on match, or nil on
// mismatch; literal patterns never bind names.
func matchLiteral(p *ast.LiteralPattern, value Value) map[string]Value {
	switch p.Kind {
	case ast.LiteralInt:
		if v, ok := value.(Int); ok && v.Value == p.IntValue {
			return map[string]Value{}
		}
	case ast.LiteralFloat:
		if v, ok := value.(Float); ok && v.Value == p.FloatValue {
			return map[string]Value{}
		}
	case ast.LiteralChar:
		if v, ok := value.(Char); ok && v.Value == p.CharValue {
			return map[string]Value{}
		}
	case ast.LiteralString:
		if v, ok := value.(String); ok && v.Value == p.StringValue {
			return map[string]Value{}
		}
	}
	return nil
}

func mergeBindings(dst, src map[string]Value) map[string]Value {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (ev *Evaluator) matchTuple(p *ast.TuplePattern, value Value, stack []Frame) (map[string]Value, bool, *EvalError) {
	var elems []Value
	switch v := value.(type) {
	case Tuple:
		elems = []Value{v.First, v.Second}
	case Triple:
		elems = []Value{v.First, v.Second, v.Third}
	default:
		return nil, false, nil
	}
	if len(elems) != len(p.Elements) {
		return nil, false, nil
	}
	result := map[string]Value{}
	for i, sub := range p.Elements {
		bindings, ok, err := ev.Match(sub, elems[i], stack)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		mergeBindings(result, bindings)
	}
	return result, true, nil
}

func (ev *Evaluator) matchList(p *ast.ListPattern, value Value, stack []Frame) (map[string]Value, bool, *EvalError) {
	list, ok := value.(*List)
	if !ok || len(list.Elements) != len(p.Elements) {
		return nil, false, nil
	}
	result := map[string]Value{}
	for i, sub := range p.Elements {
		bindings, ok, err := ev.Match(sub, list.Elements[i], stack)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		mergeBindings(result, bindings)
	}
	return result, true, nil
}

func (ev *Evaluator) matchCons(p *ast.ConsPattern, value Value, stack []Frame) (map[string]Value, bool, *EvalError) {
	list, ok := value.(*List)
	if !ok || len(list.Elements) == 0 {
		return nil, false, nil
	}
	headBindings, ok, err := ev.Match(p.Head, list.Elements[0], stack)
	if err != nil || !ok {
		return nil, ok, err
	}
	tailBindings, ok, err := ev.Match(p.Tail, &List{Elements: list.Elements[1:]}, stack)
	if err != nil || !ok {
		return nil, ok, err
	}
	// Right-to-left union with left precedence: the head's binding wins
	// over an identically-named tail binding (§4.1) — surface-language
	// rules forbid this from actually happening, but we honor the stated
	// precedence regardless.
	result := mergeBindings(map[string]Value{}, tailBindings)
	mergeBindings(result, headBindings)
	return result, true, nil
}

func (ev *Evaluator) matchConstructor(p *ast.ConstructorPattern, value Value, stack []Frame) (map[string]Value, bool, *EvalError) {
	// Bool isn't boxed as a Custom (§3 reduceIdentifier special-cases
	// True/False directly to Bool), so True/False constructor patterns
	// match against it here instead of falling through to the Custom
	// case below.
	if b, ok := value.(Bool); ok {
		if (p.Name == "True") == b.Value && len(p.Args) == 0 {
			return map[string]Value{}, true, nil
		}
		return nil, false, nil
	}

	custom, ok := value.(*Custom)
	if !ok || custom.Ctor.Name != p.Name {
		return nil, false, nil
	}
	if len(custom.Args) != len(p.Args) {
		return nil, false, newTypeError(stack, "constructor %q arity mismatch: pattern has %d args, value has %d", p.Name, len(p.Args), len(custom.Args))
	}
	result := map[string]Value{}
	for i, sub := range p.Args {
		bindings, ok, err := ev.Match(sub, custom.Args[i], stack)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		mergeBindings(result, bindings)
	}
	return result, true, nil
}

func (ev *Evaluator) matchRecord(p *ast.RecordPattern, value Value, stack []Frame) (map[string]Value, bool, *EvalError) {
	record, ok := value.(*Record)
	if !ok {
		return nil, false, nil
	}
	result := map[string]Value{}
	for _, field := range p.Fields {
		v, ok := record.Get(field)
		if !ok {
			return nil, false, newTypeError(stack, "record pattern field %q absent", field)
		}
		result[field] = v
	}
	return result, true, nil
}
