package driver

import (
	"testing"

	"github.com/funvibe/mlrepl/internal/evaluator"
)

func mustEval(t *testing.T, source string) evaluator.Value {
	t.Helper()
	val, err := Eval(source)
	if err != nil {
		t.Fatalf("Eval(%q): %v", source, err)
	}
	return val
}

func TestEvalStringLiteral(t *testing.T) {
	val := mustEval(t, `"Hello, World"`)
	s, ok := val.(evaluator.String)
	if !ok || s.Value != "Hello, World" {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalArithmetic(t *testing.T) {
	val := mustEval(t, "2 + 3")
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 5 {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalRecursiveFib(t *testing.T) {
	val := mustEval(t, "let fib n = if n <= 2 then 1 else fib (n - 1) + fib (n - 2) in fib 7")
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 13 {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalRecordAccess(t *testing.T) {
	val := mustEval(t, "{ a = 13, b = 'c' }.b")
	c, ok := val.(evaluator.Char)
	if !ok || c.Value != 'c' {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalJustEmptyListFallThrough(t *testing.T) {
	src := "let foo = Just [] in case foo of\n  Nothing -> -1\n  | Just [x] -> 1\n  | Just [] -> 0"
	val := mustEval(t, src)
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 0 {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalKernelModuleCall(t *testing.T) {
	val := mustEval(t, "List.isEmpty [()]")
	b, ok := val.(evaluator.Bool)
	if !ok || b.Value != false {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalTailRecursionNoStackOverflow(t *testing.T) {
	val := mustEval(t, "let boom x = if x <= 0 then False else boom (x - 1) in boom 100000")
	b, ok := val.(evaluator.Bool)
	if !ok || b.Value != false {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalClosureCapturesOuterLet(t *testing.T) {
	val := mustEval(t, "let a = 3 in let closed x = a + x in closed 2")
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 5 {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalLambdaOverappliedConstructor(t *testing.T) {
	val := mustEval(t, `(\a -> Foo a) 0 1 2`)
	c, ok := val.(*evaluator.Custom)
	if !ok {
		t.Fatalf("got %#v", val)
	}
	if c.Ctor.Name != "Foo" {
		t.Fatalf("expected constructor Foo, got %q", c.Ctor.Name)
	}
	if len(c.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(c.Args))
	}
}

func TestEvalModuleMutualRecursion(t *testing.T) {
	src := `module Fib exposing (main)

fib1 n = if n <= 2 then 1 else fib2 (n - 1) + fib2 (n - 2)
fib2 n = if n <= 2 then 1 else fib1 (n - 1) + fib1 (n - 2)
main = fib1 7
`
	val, err := EvalModule(src, "main")
	if err != nil {
		t.Fatalf("EvalModule: %v", err)
	}
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 13 {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalModuleUnknownEntryIsNameError(t *testing.T) {
	_, err := EvalModule("module M exposing (x)\nx = 1\n", "y")
	if err == nil {
		t.Fatalf("expected error for unknown entry")
	}
	de, ok := err.(*Error)
	if !ok || de.Kind != EvalError {
		t.Fatalf("expected driver.Error of kind EvalError, got %#v", err)
	}
	ee, ok := de.Cause.(*evaluator.EvalError)
	if !ok || ee.Kind != evaluator.NameError {
		t.Fatalf("expected an evaluator.NameError cause, got %#v", de.Cause)
	}
}

func TestEvalParseErrorIsParseKind(t *testing.T) {
	_, err := Eval("let x = in x")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	de, ok := err.(*Error)
	if !ok || de.Kind != ParseError {
		t.Fatalf("expected driver.Error of kind ParseError, got %#v", err)
	}
}

func TestTraceRecordsCallTree(t *testing.T) {
	val, rendered, err := Trace("let id x = x in id 5")
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 5 {
		t.Fatalf("got %#v", val)
	}
	if rendered == "" {
		t.Fatalf("expected non-empty trace render")
	}
}

func TestDeterminism(t *testing.T) {
	const src = "let f x = x * 2 in f 21"
	a := mustEval(t, src)
	b := mustEval(t, src)
	if a.String() != b.String() {
		t.Fatalf("non-deterministic: %v vs %v", a, b)
	}
}

func TestEvalIllegalDestructuringCycleIsError(t *testing.T) {
	_, err := Eval("let a = b\n    b = a\nin a")
	if err == nil {
		t.Fatalf("expected an illegal-cycle error")
	}
}

func TestEvalMutualRecursionThroughLetFunctionsIsFine(t *testing.T) {
	val := mustEval(t, "let isEven n = if n == 0 then True else isOdd (n - 1)\n    isOdd n = if n == 0 then False else isEven (n - 1)\nin isEven 10")
	b, ok := val.(evaluator.Bool)
	if !ok || b.Value != true {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalRecordUpdateDisjointFields(t *testing.T) {
	val := mustEval(t, "let r = { a = 1, b = 2 } in let r2 = { r | a = 9 } in r2.b")
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 2 {
		t.Fatalf("got %#v", val)
	}
}

func TestEvalNestedLetFunctionsDoNotShareFunctionTable(t *testing.T) {
	src := `let other = let step n = False in step 0
in
let mine n =
  let step k =
    if k <= 0 then True
    else if k == 2 then (let _ = other in step (k - 1))
    else step (k - 1)
  in step n
in mine 3`
	val := mustEval(t, src)
	b, ok := val.(evaluator.Bool)
	if !ok || b.Value != true {
		t.Fatalf("got %#v, want True — mine's step must not be clobbered by other's unrelated step", val)
	}
}

func TestEvalNullaryLetIsEagerEvenWhenUnreferenced(t *testing.T) {
	_, err := Eval(`let bad = 1 + "oops" in 42`)
	if err == nil {
		t.Fatalf("expected a TypeError from bad's RHS, even though bad is never referenced")
	}
	de, ok := err.(*Error)
	if !ok || de.Kind != EvalError {
		t.Fatalf("expected driver.Error of kind EvalError, got %#v", err)
	}
	ee, ok := de.Cause.(*evaluator.EvalError)
	if !ok || ee.Kind != evaluator.TypeError {
		t.Fatalf("expected an evaluator.TypeError cause, got %#v", de.Cause)
	}
}

func TestEvalLambdaParameterShadowingIsNotAnIllegalCycle(t *testing.T) {
	val := mustEval(t, "let x = f 1\n    f = \\x -> x\nin x")
	i, ok := val.(evaluator.Int)
	if !ok || i.Value != 1 {
		t.Fatalf("got %#v, want 1 — f's parameter x shadows the outer let-bound x, so there is no real cycle", val)
	}
}

func TestEvalLeftToRightEffectOrder(t *testing.T) {
	// The left argument's NameError must surface, not the right one's,
	// since arguments are evaluated left to right.
	_, err := Eval("let f a b = a in f undefinedLeft undefinedRight")
	if err == nil {
		t.Fatalf("expected a NameError")
	}
	de, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected a driver.Error, got %#v", err)
	}
	ee, ok := de.Cause.(*evaluator.EvalError)
	if !ok || ee.Kind != evaluator.NameError || ee.Message != "undefinedLeft" {
		t.Fatalf("expected NameError for undefinedLeft, got %#v", de.Cause)
	}
}
