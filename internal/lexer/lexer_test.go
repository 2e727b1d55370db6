package lexer

import (
	"testing"

	"github.com/funvibe/mlrepl/internal/token"
)

func collect(src string) []token.Token {
	l := New(src)
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Type == token.EOF {
			break
		}
	}
	return toks
}

func assertTypes(t *testing.T, src string, want ...token.Type) {
	t.Helper()
	toks := collect(src)
	if len(toks) != len(want) {
		var got []token.Type
		for _, tok := range toks {
			got = append(got, tok.Type)
		}
		t.Fatalf("%q: got %d tokens %v, want %d %v", src, len(toks), got, len(want), want)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("%q: token %d: got %s, want %s", src, i, toks[i].Type, w)
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	assertTypes(t, "(){}[],", token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.EOF)
}

func TestLexerOperators(t *testing.T) {
	cases := map[string]token.Type{
		"+": token.OPERATOR, "-": token.OPERATOR, "*": token.OPERATOR, "/": token.OPERATOR,
		"//": token.OPERATOR, "%": token.OPERATOR, "^": token.OPERATOR, "++": token.OPERATOR,
		"::": token.OPERATOR, "&&": token.OPERATOR, "||": token.OPERATOR, "==": token.OPERATOR,
		"/=": token.OPERATOR, "<": token.OPERATOR, ">": token.OPERATOR, "<=": token.OPERATOR,
		">=": token.OPERATOR,
	}
	for src, want := range cases {
		assertTypes(t, src, want, token.EOF)
	}
}

func TestLexerKeywordsVsIdents(t *testing.T) {
	assertTypes(t, "if then else case of let in module import exposing as",
		token.IF, token.THEN, token.ELSE, token.CASE, token.OF, token.LET, token.IN,
		token.MODULE, token.IMPORT, token.EXPOSING, token.AS, token.EOF)
	assertTypes(t, "ifx Foo _", token.IDENT, token.UIDENT, token.IDENT, token.EOF)
}

func TestLexerLiterals(t *testing.T) {
	toks := collect(`42 3.14 'a' "hi"`)
	want := []token.Type{token.INT, token.FLOAT, token.CHAR, token.STRING, token.EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Type, w)
		}
	}
	if toks[0].Literal != "42" {
		t.Errorf("int literal: got %q", toks[0].Literal)
	}
	if toks[3].Literal != "hi" {
		t.Errorf("string literal: got %q", toks[3].Literal)
	}
}

func TestLexerStringEscapes(t *testing.T) {
	toks := collect(`"a\nb\"c"`)
	if toks[0].Literal != "a\nb\"c" {
		t.Errorf("got %q", toks[0].Literal)
	}
}

func TestLexerComment(t *testing.T) {
	toks := collect("1 -- comment\n2")
	var types []token.Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []token.Type{token.INT, token.NEWLINE, token.INT, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("got %v, want %v", types, want)
		}
	}
}

func TestLexerArrowVsMinus(t *testing.T) {
	assertTypes(t, "-> -", token.ARROW, token.OPERATOR, token.EOF)
}

func TestLexerWildcardUnderscore(t *testing.T) {
	toks := collect("_")
	if toks[0].Type != token.IDENT || toks[0].Literal != "_" {
		t.Fatalf("got %+v", toks[0])
	}
}
