package parser

import (
	"testing"

	"github.com/funvibe/mlrepl/internal/ast"
)

func parseOK(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := ParseExpression(src)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", src, err)
	}
	return e
}

func TestParseLiterals(t *testing.T) {
	if _, ok := parseOK(t, "42").(*ast.IntLiteral); !ok {
		t.Fatalf("expected IntLiteral")
	}
	if _, ok := parseOK(t, "3.14").(*ast.FloatLiteral); !ok {
		t.Fatalf("expected FloatLiteral")
	}
	if _, ok := parseOK(t, `"hi"`).(*ast.StringLiteral); !ok {
		t.Fatalf("expected StringLiteral")
	}
	if _, ok := parseOK(t, "()").(*ast.UnitLiteral); !ok {
		t.Fatalf("expected UnitLiteral")
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	e := parseOK(t, "1 + 2 * 3")
	bin, ok := e.(*ast.BinOp)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level +, got %#v", e)
	}
	rhs, ok := bin.Right.(*ast.BinOp)
	if !ok || rhs.Operator != "*" {
		t.Fatalf("expected right-hand * operand, got %#v", bin.Right)
	}
}

func TestParseConsRightAssociative(t *testing.T) {
	e := parseOK(t, "1 :: 2 :: []")
	bin, ok := e.(*ast.BinOp)
	if !ok || bin.Operator != "::" {
		t.Fatalf("expected top-level ::, got %#v", e)
	}
	if _, ok := bin.Left.(*ast.IntLiteral); !ok {
		t.Fatalf("expected int head, got %#v", bin.Left)
	}
	if _, ok := bin.Right.(*ast.BinOp); !ok {
		t.Fatalf("expected cons tail, got %#v", bin.Right)
	}
}

func TestParseApplicationByJuxtaposition(t *testing.T) {
	e := parseOK(t, "f 1 2")
	app, ok := e.(*ast.Application)
	if !ok {
		t.Fatalf("expected Application, got %#v", e)
	}
	if len(app.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(app.Arguments))
	}
}

func TestParseUnaryMinusVsSubtraction(t *testing.T) {
	e := parseOK(t, "-1")
	if _, ok := e.(*ast.Negation); !ok {
		t.Fatalf("expected Negation, got %#v", e)
	}

	e = parseOK(t, "x - 1")
	if _, ok := e.(*ast.BinOp); !ok {
		t.Fatalf("expected BinOp, got %#v", e)
	}
}

func TestParseLambda(t *testing.T) {
	e := parseOK(t, `\x y -> x`)
	lam, ok := e.(*ast.Lambda)
	if !ok {
		t.Fatalf("expected Lambda, got %#v", e)
	}
	if len(lam.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(lam.Parameters))
	}
}

func TestParseIf(t *testing.T) {
	e := parseOK(t, "if True then 1 else 2")
	if _, ok := e.(*ast.If); !ok {
		t.Fatalf("expected If, got %#v", e)
	}
}

func TestParseLetFunctionVsDestructuring(t *testing.T) {
	e := parseOK(t, "let x = 1 in x")
	let, ok := e.(*ast.LetExpr)
	if !ok || len(let.Decls) != 1 {
		t.Fatalf("expected one-decl LetExpr, got %#v", e)
	}
	if bare, ok := let.Decls[0].(*ast.LetFunction); !ok || bare.Name != "x" || len(bare.Parameters) != 0 {
		t.Fatalf("expected nullary LetFunction x for bare var, got %#v", let.Decls[0])
	}

	e = parseOK(t, "let (a, b) = (1, 2) in a")
	let = e.(*ast.LetExpr)
	if _, ok := let.Decls[0].(*ast.LetDestructuring); !ok {
		t.Fatalf("expected LetDestructuring for tuple pattern, got %#v", let.Decls[0])
	}

	e = parseOK(t, "let f x = x in f 1")
	let = e.(*ast.LetExpr)
	fn, ok := let.Decls[0].(*ast.LetFunction)
	if !ok || fn.Name != "f" || len(fn.Parameters) != 1 {
		t.Fatalf("expected LetFunction f/1, got %#v", let.Decls[0])
	}
}

func TestParseCaseBranchesSeparatedByPipe(t *testing.T) {
	e := parseOK(t, "case x of\n  Just y -> y\n  | Nothing -> 0")
	c, ok := e.(*ast.CaseExpr)
	if !ok || len(c.Branches) != 2 {
		t.Fatalf("expected 2 branches, got %#v", e)
	}
}

func TestParseTupleAndUnitAndTooMany(t *testing.T) {
	e := parseOK(t, "(1, 2)")
	tup, ok := e.(*ast.TupleExpr)
	if !ok || len(tup.Elements) != 2 {
		t.Fatalf("expected 2-tuple, got %#v", e)
	}

	// single parenthesized element unwraps to the element itself
	e = parseOK(t, "(1)")
	if _, ok := e.(*ast.IntLiteral); !ok {
		t.Fatalf("expected unwrapped IntLiteral, got %#v", e)
	}

	if _, err := ParseExpression("(1, 2, 3, 4)"); err == nil {
		t.Fatalf("expected parse error for 4-tuple")
	}
}

func TestParseRecordLiteralAndUpdate(t *testing.T) {
	e := parseOK(t, "{ x = 1, y = 2 }")
	rec, ok := e.(*ast.RecordExpr)
	if !ok || len(rec.Fields) != 2 {
		t.Fatalf("expected 2-field record, got %#v", e)
	}

	e = parseOK(t, "{ r | x = 1 }")
	upd, ok := e.(*ast.RecordUpdate)
	if !ok || upd.Base != "r" {
		t.Fatalf("expected RecordUpdate on r, got %#v", e)
	}
}

func TestParseRecordAccessAndAccessor(t *testing.T) {
	e := parseOK(t, "r.x")
	acc, ok := e.(*ast.RecordAccess)
	if !ok || acc.Field != "x" {
		t.Fatalf("expected RecordAccess on x, got %#v", e)
	}

	e = parseOK(t, ".x")
	if _, ok := e.(*ast.RecordAccessor); !ok {
		t.Fatalf("expected RecordAccessor, got %#v", e)
	}
}

func TestParseModuleQualifiedReference(t *testing.T) {
	e := parseOK(t, "List.map")
	fv, ok := e.(*ast.FunctionOrValue)
	if !ok || fv.Module != "List" || fv.Name != "map" {
		t.Fatalf("expected List.map qualified reference, got %#v", e)
	}
}

func TestParseModuleHeaderAndDecls(t *testing.T) {
	src := "module Main exposing (main)\n\nmain = 1\n"
	mod, err := ParseModule(src)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if mod.Name != "Main" {
		t.Fatalf("expected module name Main, got %q", mod.Name)
	}
	if len(mod.Exposed) != 1 || mod.Exposed[0] != "main" {
		t.Fatalf("expected exposed [main], got %v", mod.Exposed)
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(mod.Decls))
	}
}

func TestParsePatternForms(t *testing.T) {
	e := parseOK(t, "case x of\n  (a, b) -> a\n  | Just y -> y\n  | [h :: t] -> h")
	c := e.(*ast.CaseExpr)
	if len(c.Branches) != 3 {
		t.Fatalf("expected 3 branches, got %d", len(c.Branches))
	}
	if _, ok := c.Branches[0].Pattern.(*ast.TuplePattern); !ok {
		t.Fatalf("expected TuplePattern, got %#v", c.Branches[0].Pattern)
	}
	if _, ok := c.Branches[1].Pattern.(*ast.ConstructorPattern); !ok {
		t.Fatalf("expected ConstructorPattern, got %#v", c.Branches[1].Pattern)
	}
}
