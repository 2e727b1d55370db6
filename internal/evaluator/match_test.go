package evaluator

import (
	"testing"

	"github.com/funvibe/mlrepl/internal/ast"
)

func newTestEvaluator() *Evaluator {
	return New(noKernel{}, noAliases{})
}

type noKernel struct{}

func (noKernel) Lookup(module, name string) (KernelEntry, bool) { return KernelEntry{}, false }

type noAliases struct{}

func (noAliases) Resolve(module string) string { return module }

func TestMatchWildcardAlwaysMatches(t *testing.T) {
	ev := newTestEvaluator()
	_, ok, err := ev.Match(&ast.WildcardPattern{}, Int{Value: 42}, nil)
	if err != nil || !ok {
		t.Fatalf("expected wildcard to match, got ok=%v err=%v", ok, err)
	}
}

func TestMatchVarBinds(t *testing.T) {
	ev := newTestEvaluator()
	bindings, ok, err := ev.Match(&ast.VarPattern{Name: "x"}, Int{Value: 7}, nil)
	if err != nil || !ok {
		t.Fatalf("expected var to match, got ok=%v err=%v", ok, err)
	}
	if bindings["x"] != (Int{Value: 7}) {
		t.Fatalf("expected x bound to 7, got %#v", bindings["x"])
	}
}

func TestMatchConstructorArityMismatchIsTypeError(t *testing.T) {
	ev := newTestEvaluator()
	pattern := &ast.ConstructorPattern{Name: "Just", Args: []ast.Pattern{&ast.VarPattern{Name: "x"}}}
	value := &Custom{Ctor: QualifiedName{Name: "Just"}, Args: []Value{Int{Value: 1}, Int{Value: 2}}}
	_, ok, err := ev.Match(pattern, value, nil)
	if ok {
		t.Fatalf("expected arity mismatch to not match")
	}
	if err == nil || err.Kind != TypeError {
		t.Fatalf("expected TypeError, got %#v", err)
	}
}

func TestMatchConstructorNameMismatchFails(t *testing.T) {
	ev := newTestEvaluator()
	pattern := &ast.ConstructorPattern{Name: "Just", Args: []ast.Pattern{&ast.VarPattern{Name: "x"}}}
	value := &Custom{Ctor: QualifiedName{Name: "Nothing"}}
	bindings, ok, err := ev.Match(pattern, value, nil)
	if err != nil || ok || bindings != nil {
		t.Fatalf("expected Nothing to never match Just _, got ok=%v err=%v bindings=%v", ok, err, bindings)
	}
}

func TestMatchConsSplitsHeadAndTail(t *testing.T) {
	ev := newTestEvaluator()
	pattern := &ast.ConsPattern{Head: &ast.VarPattern{Name: "h"}, Tail: &ast.VarPattern{Name: "t"}}
	list := &List{Elements: []Value{Int{Value: 1}, Int{Value: 2}, Int{Value: 3}}}
	bindings, ok, err := ev.Match(pattern, list, nil)
	if err != nil || !ok {
		t.Fatalf("expected cons match, got ok=%v err=%v", ok, err)
	}
	if bindings["h"] != (Int{Value: 1}) {
		t.Fatalf("expected head 1, got %#v", bindings["h"])
	}
	tail, ok := bindings["t"].(*List)
	if !ok || len(tail.Elements) != 2 {
		t.Fatalf("expected 2-element tail, got %#v", bindings["t"])
	}
}

func TestMatchConsOnEmptyListFails(t *testing.T) {
	ev := newTestEvaluator()
	pattern := &ast.ConsPattern{Head: &ast.VarPattern{Name: "h"}, Tail: &ast.VarPattern{Name: "t"}}
	_, ok, err := ev.Match(pattern, &List{}, nil)
	if err != nil || ok {
		t.Fatalf("expected empty list not to match cons, got ok=%v err=%v", ok, err)
	}
}

func TestMatchRecordPatternProjectsFields(t *testing.T) {
	ev := newTestEvaluator()
	pattern := &ast.RecordPattern{Fields: []string{"a"}}
	record := &Record{Fields: map[string]Value{"a": Int{Value: 13}, "b": Char{Value: 'c'}}}
	bindings, ok, err := ev.Match(pattern, record, nil)
	if err != nil || !ok {
		t.Fatalf("expected record pattern to match, got ok=%v err=%v", ok, err)
	}
	if bindings["a"] != (Int{Value: 13}) {
		t.Fatalf("expected a bound to 13, got %#v", bindings["a"])
	}
}

func TestMatchLiteralPatterns(t *testing.T) {
	ev := newTestEvaluator()
	if _, ok, _ := ev.Match(ast.NewIntPattern(ast.Position{}, 5), Int{Value: 5}, nil); !ok {
		t.Fatalf("expected int literal pattern to match")
	}
	if _, ok, _ := ev.Match(ast.NewIntPattern(ast.Position{}, 5), Int{Value: 6}, nil); ok {
		t.Fatalf("expected int literal mismatch not to match")
	}
	if _, ok, _ := ev.Match(ast.NewCharPattern(ast.Position{}, 'c'), Char{Value: 'c'}, nil); !ok {
		t.Fatalf("expected char literal pattern to match")
	}
}

func TestMatchBoolTotality(t *testing.T) {
	ev := newTestEvaluator()
	truePattern := &ast.ConstructorPattern{Name: "True"}
	falsePattern := &ast.ConstructorPattern{Name: "False"}
	for _, b := range []Bool{{Value: true}, {Value: false}} {
		_, tOk, tErr := ev.Match(truePattern, b, nil)
		_, fOk, fErr := ev.Match(falsePattern, b, nil)
		if tErr != nil || fErr != nil {
			t.Fatalf("expected no error matching Bool %v, got tErr=%v fErr=%v", b, tErr, fErr)
		}
		if !tOk && !fOk {
			t.Fatalf("expected Bool %v to match either True or False pattern", b)
		}
		if tOk && fOk {
			t.Fatalf("expected Bool %v to match exactly one of True/False", b)
		}
	}
}
