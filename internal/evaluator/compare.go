package evaluator

import "strings"

// CompareValues orders two values of the same comparable kind (Int, Float,
// Char, String, or a List/Tuple built from those), returning -1/0/1. ok is
// false for values the surface language doesn't define an ordering over
// (records, custom types, functions) — the kernel reports that as a
// TypeError rather than silently picking an arbitrary order.
func CompareValues(a, b Value) (int, bool) {
	switch av := a.(type) {
	case Int:
		switch bv := b.(type) {
		case Int:
			return sign(av.Value - bv.Value), true
		case Float:
			return compareFloat(float64(av.Value), bv.Value), true
		}
	case Float:
		switch bv := b.(type) {
		case Float:
			return compareFloat(av.Value, bv.Value), true
		case Int:
			return compareFloat(av.Value, float64(bv.Value)), true
		}
	case Char:
		if bv, ok := b.(Char); ok {
			return sign(int64(av.Value) - int64(bv.Value)), true
		}
	case String:
		if bv, ok := b.(String); ok {
			return strings.Compare(av.Value, bv.Value), true
		}
	case *List:
		if bv, ok := b.(*List); ok {
			return compareLists(av.Elements, bv.Elements)
		}
	case Tuple:
		if bv, ok := b.(Tuple); ok {
			if c, ok := CompareValues(av.First, bv.First); !ok || c != 0 {
				return c, ok
			}
			return CompareValues(av.Second, bv.Second)
		}
	}
	return 0, false
}

func compareLists(a, b []Value) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		c, ok := CompareValues(a[i], b[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	return sign(int64(len(a) - len(b))), true
}

func sign(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
