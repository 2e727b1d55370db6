package kernel

import (
	"testing"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

func call(t *testing.T, module, name string, args ...evaluator.Value) (evaluator.Value, *evaluator.EvalError) {
	t.Helper()
	r := NewRegistry()
	entry, ok := r.Lookup(module, name)
	if !ok {
		t.Fatalf("no kernel entry %s.%s", module, name)
	}
	if entry.Arity != len(args) {
		t.Fatalf("%s.%s: expected arity %d, got %d args", module, name, entry.Arity, len(args))
	}
	return entry.Fn(nil, args)
}

func TestBasicsArithmetic(t *testing.T) {
	v, err := call(t, "Basics", "add", evaluator.Int{Value: 2}, evaluator.Int{Value: 3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if v.(evaluator.Int).Value != 5 {
		t.Fatalf("got %#v", v)
	}
}

func TestBasicsAddMixedIntFloat(t *testing.T) {
	v, err := call(t, "Basics", "add", evaluator.Int{Value: 2}, evaluator.Float{Value: 0.5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	f, ok := v.(evaluator.Float)
	if !ok || f.Value != 2.5 {
		t.Fatalf("got %#v", v)
	}
}

func TestBasicsAddTypeError(t *testing.T) {
	_, err := call(t, "Basics", "add", evaluator.String{Value: "x"}, evaluator.Int{Value: 1})
	if err == nil || err.Kind != evaluator.TypeError {
		t.Fatalf("expected TypeError, got %#v", err)
	}
}

func TestBasicsIdivByZero(t *testing.T) {
	_, err := call(t, "Basics", "idiv", evaluator.Int{Value: 1}, evaluator.Int{Value: 0})
	if err == nil {
		t.Fatalf("expected division-by-zero error")
	}
}

func TestBasicsComparison(t *testing.T) {
	v, err := call(t, "Basics", "lt", evaluator.Int{Value: 1}, evaluator.Int{Value: 2})
	if err != nil {
		t.Fatalf("lt: %v", err)
	}
	if v.(evaluator.Bool).Value != true {
		t.Fatalf("expected 1 < 2 to be True, got %#v", v)
	}
}

func TestListConsAndIsEmpty(t *testing.T) {
	list := &evaluator.List{Elements: nil}
	v, err := call(t, "List", "cons", evaluator.Int{Value: 1}, list)
	if err != nil {
		t.Fatalf("cons: %v", err)
	}
	consed := v.(*evaluator.List)
	if len(consed.Elements) != 1 {
		t.Fatalf("expected 1-element list, got %#v", consed)
	}

	isEmpty, err := call(t, "List", "isEmpty", &evaluator.List{})
	if err != nil {
		t.Fatalf("isEmpty: %v", err)
	}
	if isEmpty.(evaluator.Bool).Value != true {
		t.Fatalf("expected empty list to report isEmpty, got %#v", isEmpty)
	}
}

func TestListReverse(t *testing.T) {
	list := &evaluator.List{Elements: []evaluator.Value{
		evaluator.Int{Value: 1}, evaluator.Int{Value: 2}, evaluator.Int{Value: 3},
	}}
	v, err := call(t, "List", "reverse", list)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	rev := v.(*evaluator.List)
	if rev.Elements[0] != (evaluator.Int{Value: 3}) || rev.Elements[2] != (evaluator.Int{Value: 1}) {
		t.Fatalf("got %#v", rev.Elements)
	}
}

func TestStringLengthAndAppend(t *testing.T) {
	v, err := call(t, "String", "length", evaluator.String{Value: "hello"})
	if err != nil {
		t.Fatalf("length: %v", err)
	}
	if v.(evaluator.Int).Value != 5 {
		t.Fatalf("got %#v", v)
	}

	joined, err := call(t, "String", "append", evaluator.String{Value: "foo"}, evaluator.String{Value: "bar"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if joined.(evaluator.String).Value != "foobar" {
		t.Fatalf("got %#v", joined)
	}
}

func TestCharToCodeRoundTrips(t *testing.T) {
	code, err := call(t, "Char", "toCode", evaluator.Char{Value: 'a'})
	if err != nil {
		t.Fatalf("toCode: %v", err)
	}
	back, err := call(t, "Char", "fromCode", code)
	if err != nil {
		t.Fatalf("fromCode: %v", err)
	}
	if back.(evaluator.Char).Value != 'a' {
		t.Fatalf("got %#v", back)
	}
}

func TestTupleFirstSecond(t *testing.T) {
	tup := evaluator.Tuple{First: evaluator.Int{Value: 1}, Second: evaluator.Char{Value: 'x'}}
	first, err := call(t, "Tuple", "first", tup)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.(evaluator.Int).Value != 1 {
		t.Fatalf("got %#v", first)
	}
	second, err := call(t, "Tuple", "second", tup)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.(evaluator.Char).Value != 'x' {
		t.Fatalf("got %#v", second)
	}
}

func TestUuidGenerateRequiresUnit(t *testing.T) {
	_, err := call(t, "Uuid", "generate", evaluator.Int{Value: 1})
	if err == nil {
		t.Fatalf("expected TypeError for non-Unit argument")
	}

	v, err := call(t, "Uuid", "generate", evaluator.Unit{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	s, ok := v.(evaluator.String)
	if !ok || len(s.Value) == 0 {
		t.Fatalf("expected non-empty uuid string, got %#v", v)
	}
}

func TestUuidIsValid(t *testing.T) {
	generated, err := call(t, "Uuid", "generate", evaluator.Unit{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	valid, err := call(t, "Uuid", "isValid", generated)
	if err != nil {
		t.Fatalf("isValid: %v", err)
	}
	if valid.(evaluator.Bool).Value != true {
		t.Fatalf("expected generated uuid to be valid, got %#v", valid)
	}

	invalid, err := call(t, "Uuid", "isValid", evaluator.String{Value: "not-a-uuid"})
	if err != nil {
		t.Fatalf("isValid: %v", err)
	}
	if invalid.(evaluator.Bool).Value != false {
		t.Fatalf("expected garbage string to be invalid, got %#v", invalid)
	}
}

func TestLookupMissingEntry(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("Basics", "doesNotExist"); ok {
		t.Fatalf("expected missing entry to report !ok")
	}
	if _, ok := r.Lookup("NoSuchModule", "add"); ok {
		t.Fatalf("expected missing module to report !ok")
	}
}
