package evaluator

// MaybeJust and MaybeNothing construct the Maybe.Just/Maybe.Nothing
// variants kernel primitives return for partial operations (List.head,
// List.tail, String.toInt, ...). They are plain Custom values — Maybe gets
// no special runtime representation (§3).
func MaybeJust(v Value) *Custom {
	return &Custom{Ctor: QualifiedName{Module: "Maybe", Name: "Just"}, Args: []Value{v}}
}

func MaybeNothing() *Custom {
	return &Custom{Ctor: QualifiedName{Module: "Maybe", Name: "Nothing"}, Args: nil}
}
