package evaluator

// ValuesEqual implements structural equality over the Value universe (§3),
// used by the kernel's comparison primitives and anywhere else two runtime
// values need comparing. PartiallyApplied values are never equal to
// anything, including themselves, since functions carry no notion of
// identity in the surface language.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Int:
		switch bv := b.(type) {
		case Int:
			return av.Value == bv.Value
		case Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case Float:
		switch bv := b.(type) {
		case Float:
			return av.Value == bv.Value
		case Int:
			return av.Value == float64(bv.Value)
		}
		return false
	case Char:
		bv, ok := b.(Char)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !ValuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case Tuple:
		bv, ok := b.(Tuple)
		return ok && ValuesEqual(av.First, bv.First) && ValuesEqual(av.Second, bv.Second)
	case Triple:
		bv, ok := b.(Triple)
		return ok && ValuesEqual(av.First, bv.First) && ValuesEqual(av.Second, bv.Second) && ValuesEqual(av.Third, bv.Third)
	case *Record:
		bv, ok := b.(*Record)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for k, v := range av.Fields {
			other, ok := bv.Fields[k]
			if !ok || !ValuesEqual(v, other) {
				return false
			}
		}
		return true
	case *Custom:
		bv, ok := b.(*Custom)
		if !ok || av.Ctor.Name != bv.Ctor.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !ValuesEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
