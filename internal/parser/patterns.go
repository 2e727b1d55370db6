package parser

import (
	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/lexer"
	"github.com/funvibe/mlrepl/internal/token"
)

func isPatternStart(tt token.Type) bool {
	switch tt {
	case token.IDENT, token.UIDENT, token.INT, token.FLOAT, token.CHAR, token.STRING,
		token.LPAREN, token.LBRACKET, token.LBRACE:
		return true
	}
	return false
}

// parsePattern parses `::`-right-associative cons patterns over `as`
// patterns over atoms (§4.1).
func (p *parser) parsePattern() ast.Pattern {
	left := p.parseAsPattern()
	if p.cur().Type == token.OPERATOR && p.cur().Literal == "::" {
		pos := p.pos_()
		p.advance()
		p.skipNewlines()
		right := p.parsePattern()
		return ast.NewConsPattern(pos, left, right)
	}
	return left
}

func (p *parser) parseAsPattern() ast.Pattern {
	pos := p.pos_()
	inner := p.parseAtomPattern()
	if p.cur().Type == token.AS {
		p.advance()
		name := p.expect(token.IDENT).Literal
		return ast.NewAsPattern(pos, inner, name)
	}
	return inner
}

func (p *parser) parseAtomPattern() ast.Pattern {
	pos := p.pos_()
	switch p.cur().Type {
	case token.IDENT:
		name := p.advance().Literal
		if name == "_" {
			return ast.NewWildcardPattern(pos)
		}
		return ast.NewVarPattern(pos, name)

	case token.UIDENT:
		name := p.advance().Literal
		var args []ast.Pattern
		for isPatternStart(p.cur().Type) {
			args = append(args, p.parseAtomPattern())
		}
		return ast.NewConstructorPattern(pos, name, args)

	case token.INT:
		lit := p.advance().Literal
		v, err := lexer.ParseIntLiteral(lit)
		if err != nil {
			p.fail("invalid integer literal %q", lit)
		}
		return ast.NewIntPattern(pos, v)

	case token.FLOAT:
		lit := p.advance().Literal
		v, err := lexer.ParseFloatLiteral(lit)
		if err != nil {
			p.fail("invalid float literal %q", lit)
		}
		return ast.NewFloatPattern(pos, v)

	case token.CHAR:
		lit := p.advance().Literal
		return ast.NewCharPattern(pos, []rune(lit)[0])

	case token.STRING:
		lit := p.advance().Literal
		return ast.NewStringPattern(pos, lit)

	case token.LPAREN:
		p.advance()
		p.skipNewlines()
		if p.cur().Type == token.RPAREN {
			p.advance()
			return ast.NewUnitPattern(pos)
		}
		elems := []ast.Pattern{p.parsePattern()}
		p.skipNewlines()
		for p.cur().Type == token.COMMA {
			p.advance()
			p.skipNewlines()
			elems = append(elems, p.parsePattern())
			p.skipNewlines()
		}
		p.expect(token.RPAREN)
		if len(elems) == 1 {
			return elems[0]
		}
		return ast.NewTuplePattern(pos, elems)

	case token.LBRACKET:
		p.advance()
		p.skipNewlines()
		var elems []ast.Pattern
		if p.cur().Type != token.RBRACKET {
			elems = append(elems, p.parsePattern())
			p.skipNewlines()
			for p.cur().Type == token.COMMA {
				p.advance()
				p.skipNewlines()
				elems = append(elems, p.parsePattern())
				p.skipNewlines()
			}
		}
		p.expect(token.RBRACKET)
		return ast.NewListPattern(pos, elems)

	case token.LBRACE:
		p.advance()
		p.skipNewlines()
		var fields []string
		if p.cur().Type != token.RBRACE {
			fields = append(fields, p.expect(token.IDENT).Literal)
			p.skipNewlines()
			for p.cur().Type == token.COMMA {
				p.advance()
				p.skipNewlines()
				fields = append(fields, p.expect(token.IDENT).Literal)
				p.skipNewlines()
			}
		}
		p.expect(token.RBRACE)
		return ast.NewRecordPattern(pos, fields)
	}

	p.fail("expected a pattern, got %s %q", p.cur().Type, p.cur().Literal)
	return nil
}
