package parser

import (
	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/token"
)

// parseModule parses an optional `module Name exposing (...)` header, a
// run of `import` lines, and then a sequence of top-level declarations
// until end of input. A module body is structurally one top-level let
// block with no trailing expression (§4.4), so declarations reuse
// parseLetDecl.
func (p *parser) parseModule() *ast.Module {
	pos := p.pos_()
	p.skipNewlines()

	name := "Main"
	var exposed []string
	if p.cur().Type == token.MODULE {
		p.advance()
		name = p.parseModuleName()
		p.skipNewlines()
		if p.cur().Type == token.EXPOSING {
			p.advance()
			p.expect(token.LPAREN)
			exposed = p.parseExposingList()
			p.expect(token.RPAREN)
		}
		p.skipNewlines()
	}

	var imports []*ast.Import
	for p.cur().Type == token.IMPORT {
		imports = append(imports, p.parseImport())
		p.skipNewlines()
	}

	var decls []ast.LetDecl
	for p.cur().Type != token.EOF {
		decls = append(decls, p.parseLetDecl())
		p.skipNewlines()
	}

	mod := ast.NewModule(pos, name)
	mod.Exposed = exposed
	mod.Imports = imports
	mod.Decls = decls
	return mod
}

// parseModuleName reads a dotted sequence of capitalized segments, e.g.
// `List.Extra`.
func (p *parser) parseModuleName() string {
	name := p.expect(token.UIDENT).Literal
	for p.cur().Type == token.DOT && p.peek().Type == token.UIDENT {
		p.advance()
		name += "." + p.advance().Literal
	}
	return name
}

// parseExposingList parses the contents of an `exposing (...)` clause:
// either `..` (expose everything, represented as a nil/empty list) or a
// comma-separated list of names.
func (p *parser) parseExposingList() []string {
	if p.cur().Type == token.DOT && p.peek().Type == token.DOT {
		p.advance()
		p.advance()
		return nil
	}
	var names []string
	names = append(names, p.exposingName())
	for p.cur().Type == token.COMMA {
		p.advance()
		p.skipNewlines()
		names = append(names, p.exposingName())
	}
	return names
}

func (p *parser) exposingName() string {
	switch p.cur().Type {
	case token.IDENT, token.UIDENT:
		return p.advance().Literal
	}
	p.fail("expected an exposed name, got %s %q", p.cur().Type, p.cur().Literal)
	return ""
}

func (p *parser) parseImport() *ast.Import {
	pos := p.pos_()
	p.advance() // consume 'import'
	module := p.parseModuleName()
	alias := ""
	if p.cur().Type == token.AS {
		p.advance()
		alias = p.expect(token.UIDENT).Literal
	}
	if p.cur().Type == token.EXPOSING {
		p.advance()
		p.expect(token.LPAREN)
		p.parseExposingList()
		p.expect(token.RPAREN)
	}
	return ast.NewImport(pos, module, alias)
}
