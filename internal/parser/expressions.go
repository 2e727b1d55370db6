package parser

import (
	"github.com/funvibe/mlrepl/internal/ast"
	"github.com/funvibe/mlrepl/internal/lexer"
	"github.com/funvibe/mlrepl/internal/token"
)

// parseExpr is the top of the precedence ladder: || binds loosest, then
// &&, comparisons, `::` (right-assoc), `+ - ++`, `* / // %`, `^`
// (right-assoc), unary minus, application-by-juxtaposition, and atoms.
func (p *parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.cur().Type == token.OPERATOR && p.cur().Literal == "||" {
		pos := p.pos_()
		p.advance()
		p.skipNewlines()
		right := p.parseAnd()
		left = ast.NewBinOp(pos, "||", left, right)
	}
	return left
}

func (p *parser) parseAnd() ast.Expr {
	left := p.parseComparison()
	for p.cur().Type == token.OPERATOR && p.cur().Literal == "&&" {
		pos := p.pos_()
		p.advance()
		p.skipNewlines()
		right := p.parseComparison()
		left = ast.NewBinOp(pos, "&&", left, right)
	}
	return left
}

var comparisonOps = map[string]bool{"==": true, "/=": true, "<": true, ">": true, "<=": true, ">=": true}

func (p *parser) parseComparison() ast.Expr {
	left := p.parseCons()
	if p.cur().Type == token.OPERATOR && comparisonOps[p.cur().Literal] {
		pos := p.pos_()
		op := p.advance().Literal
		p.skipNewlines()
		right := p.parseCons()
		return ast.NewBinOp(pos, op, left, right)
	}
	return left
}

func (p *parser) parseCons() ast.Expr {
	left := p.parseAdditive()
	if p.cur().Type == token.OPERATOR && p.cur().Literal == "::" {
		pos := p.pos_()
		p.advance()
		p.skipNewlines()
		right := p.parseCons()
		return ast.NewBinOp(pos, "::", left, right)
	}
	return left
}

var additiveOps = map[string]bool{"+": true, "-": true, "++": true}

func (p *parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.cur().Type == token.OPERATOR && additiveOps[p.cur().Literal] {
		pos := p.pos_()
		op := p.advance().Literal
		p.skipNewlines()
		right := p.parseMultiplicative()
		left = ast.NewBinOp(pos, op, left, right)
	}
	return left
}

var multiplicativeOps = map[string]bool{"*": true, "/": true, "//": true, "%": true}

func (p *parser) parseMultiplicative() ast.Expr {
	left := p.parsePow()
	for p.cur().Type == token.OPERATOR && multiplicativeOps[p.cur().Literal] {
		pos := p.pos_()
		op := p.advance().Literal
		p.skipNewlines()
		right := p.parsePow()
		left = ast.NewBinOp(pos, op, left, right)
	}
	return left
}

func (p *parser) parsePow() ast.Expr {
	left := p.parseUnary()
	if p.cur().Type == token.OPERATOR && p.cur().Literal == "^" {
		pos := p.pos_()
		p.advance()
		p.skipNewlines()
		right := p.parsePow()
		return ast.NewBinOp(pos, "^", left, right)
	}
	return left
}

func (p *parser) parseUnary() ast.Expr {
	if p.cur().Type == token.OPERATOR && p.cur().Literal == "-" {
		pos := p.pos_()
		p.advance()
		operand := p.parseUnary()
		return ast.NewNegation(pos, operand)
	}
	return p.parseApplication()
}

func isAtomStart(tt token.Type) bool {
	switch tt {
	case token.IDENT, token.UIDENT, token.INT, token.FLOAT, token.CHAR, token.STRING,
		token.LPAREN, token.LBRACKET, token.LBRACE, token.BSLASH, token.DOT, token.IF:
		return true
	}
	return false
}

// parseApplication builds `f e1 e2 ... ek` by juxtaposition (§4.6): a run
// of atoms with nothing between them.
func (p *parser) parseApplication() ast.Expr {
	pos := p.pos_()
	fn := p.parseAtom()
	var args []ast.Expr
	for isAtomStart(p.cur().Type) {
		args = append(args, p.parseAtom())
	}
	if len(args) == 0 {
		return fn
	}
	return ast.NewApplication(pos, fn, args)
}

// parseAtom parses one atom and any immediately-following `.field` chain
// (record access binds tighter than application).
func (p *parser) parseAtom() ast.Expr {
	pos := p.pos_()
	switch p.cur().Type {
	case token.IDENT:
		name := p.advance().Literal
		var e ast.Expr = ast.NewFunctionOrValue(pos, "", name)
		for p.cur().Type == token.DOT && (p.peek().Type == token.IDENT || p.peek().Type == token.UIDENT) {
			p.advance()
			field := p.advance().Literal
			e = ast.NewRecordAccess(pos, e, field)
		}
		return e

	case token.UIDENT:
		name := p.advance().Literal
		if p.cur().Type == token.DOT && (p.peek().Type == token.IDENT || p.peek().Type == token.UIDENT) {
			p.advance()
			member := p.advance().Literal
			return ast.NewFunctionOrValue(pos, name, member)
		}
		return ast.NewFunctionOrValue(pos, "", name)

	case token.INT:
		lit := p.advance().Literal
		v, err := lexer.ParseIntLiteral(lit)
		if err != nil {
			p.fail("invalid integer literal %q", lit)
		}
		return ast.NewIntLiteral(pos, v)

	case token.FLOAT:
		lit := p.advance().Literal
		v, err := lexer.ParseFloatLiteral(lit)
		if err != nil {
			p.fail("invalid float literal %q", lit)
		}
		return ast.NewFloatLiteral(pos, v)

	case token.CHAR:
		lit := p.advance().Literal
		return ast.NewCharLiteral(pos, []rune(lit)[0])

	case token.STRING:
		lit := p.advance().Literal
		return ast.NewStringLiteral(pos, lit)

	case token.DOT:
		p.advance()
		field := p.expect(token.IDENT).Literal
		return ast.NewRecordAccessor(pos, field)

	case token.BSLASH:
		return p.parseLambda()

	case token.IF:
		return p.parseIf()

	case token.LET:
		return p.parseLetExpr()

	case token.CASE:
		return p.parseCaseExpr()

	case token.LBRACKET:
		return p.parseListExpr()

	case token.LPAREN, token.LBRACE:
		var e ast.Expr
		if p.cur().Type == token.LPAREN {
			e = p.parseParenExpr()
		} else {
			e = p.parseBraceExpr()
		}
		for p.cur().Type == token.DOT && p.peek().Type == token.IDENT {
			p.advance()
			e = ast.NewRecordAccess(pos, e, p.advance().Literal)
		}
		return e
	}

	p.fail("expected an expression, got %s %q", p.cur().Type, p.cur().Literal)
	return nil
}

func (p *parser) parseLambda() ast.Expr {
	pos := p.pos_()
	p.advance() // consume '\'
	var params []ast.Pattern
	for p.cur().Type != token.ARROW {
		params = append(params, p.parseAtomPattern())
	}
	if len(params) == 0 {
		p.fail("lambda requires at least one parameter")
	}
	p.expect(token.ARROW)
	p.skipNewlines()
	body := p.parseExpr()
	return ast.NewLambda(pos, params, body)
}

func (p *parser) parseIf() ast.Expr {
	pos := p.pos_()
	p.advance() // consume 'if'
	cond := p.parseExpr()
	p.skipNewlines()
	p.expect(token.THEN)
	p.skipNewlines()
	then := p.parseExpr()
	p.skipNewlines()
	p.expect(token.ELSE)
	p.skipNewlines()
	els := p.parseExpr()
	return ast.NewIf(pos, cond, then, els)
}

func (p *parser) parseLetExpr() ast.Expr {
	pos := p.pos_()
	p.advance() // consume 'let'
	p.skipNewlines()
	decls := p.parseLetDecls()
	p.expect(token.IN)
	p.skipNewlines()
	body := p.parseExpr()
	return ast.NewLetExpr(pos, decls, body)
}

// parseLetDecls parses one or more declarations up to (but not
// consuming) the terminating `in` keyword.
func (p *parser) parseLetDecls() []ast.LetDecl {
	var decls []ast.LetDecl
	for {
		p.skipNewlines()
		if p.cur().Type == token.IN {
			break
		}
		decls = append(decls, p.parseLetDecl())
		p.skipNewlines()
		if p.cur().Type == token.IN {
			break
		}
	}
	if len(decls) == 0 {
		p.fail("let block requires at least one declaration")
	}
	return decls
}

// parseLetDecl distinguishes a function declaration (bare identifier
// optionally followed by parameter patterns) from a destructuring
// declaration (any other pattern on the left of `=`), per §4.4.
func (p *parser) parseLetDecl() ast.LetDecl {
	pos := p.pos_()
	if p.cur().Type == token.IDENT && p.cur().Literal != "_" {
		name := p.advance().Literal
		var params []ast.Pattern
		for isPatternStart(p.cur().Type) {
			params = append(params, p.parseAtomPattern())
		}
		p.expect(token.ASSIGN)
		p.skipNewlines()
		body := p.parseExpr()
		return ast.NewLetFunction(pos, name, params, body)
	}
	target := p.parsePattern()
	p.expect(token.ASSIGN)
	p.skipNewlines()
	body := p.parseExpr()
	return ast.NewLetDestructuring(pos, target, body)
}

func (p *parser) parseCaseExpr() ast.Expr {
	pos := p.pos_()
	p.advance() // consume 'case'
	scrutinee := p.parseExpr()
	p.skipNewlines()
	p.expect(token.OF)
	p.skipNewlines()
	var branches []ast.CaseBranch
	for {
		pat := p.parsePattern()
		p.expect(token.ARROW)
		p.skipNewlines()
		body := p.parseExpr()
		branches = append(branches, ast.CaseBranch{Pattern: pat, Body: body})
		save := p.pos
		p.skipNewlines()
		if p.cur().Type == token.PIPE {
			p.advance()
			p.skipNewlines()
			continue
		}
		p.pos = save
		break
	}
	return ast.NewCaseExpr(pos, scrutinee, branches)
}

func (p *parser) parseParenExpr() ast.Expr {
	pos := p.pos_()
	p.advance() // consume '('
	p.skipNewlines()
	if p.cur().Type == token.RPAREN {
		p.advance()
		return ast.NewUnitLiteral(pos)
	}
	elems := []ast.Expr{p.parseExpr()}
	p.skipNewlines()
	for p.cur().Type == token.COMMA {
		p.advance()
		p.skipNewlines()
		elems = append(elems, p.parseExpr())
		p.skipNewlines()
	}
	p.expect(token.RPAREN)
	if len(elems) == 1 {
		return elems[0]
	}
	if len(elems) > 3 {
		p.fail("tuples with more than three elements are not supported")
	}
	return ast.NewTupleExpr(pos, elems)
}

func (p *parser) parseListExpr() ast.Expr {
	pos := p.pos_()
	p.advance() // consume '['
	p.skipNewlines()
	var elems []ast.Expr
	if p.cur().Type != token.RBRACKET {
		elems = append(elems, p.parseExpr())
		p.skipNewlines()
		for p.cur().Type == token.COMMA {
			p.advance()
			p.skipNewlines()
			elems = append(elems, p.parseExpr())
			p.skipNewlines()
		}
	}
	p.expect(token.RBRACKET)
	return ast.NewListExpr(pos, elems)
}

// parseBraceExpr parses a record literal `{ f1 = e1, ... }` or a record
// update `{ x | f1 = e1, ... }`.
func (p *parser) parseBraceExpr() ast.Expr {
	pos := p.pos_()
	p.advance() // consume '{'
	p.skipNewlines()
	if p.cur().Type == token.RBRACE {
		p.advance()
		return ast.NewRecordExpr(pos, nil)
	}
	if p.cur().Type == token.IDENT && p.peek().Type == token.PIPE {
		base := p.advance().Literal
		p.advance() // consume '|'
		p.skipNewlines()
		fields := p.parseRecordFields()
		p.expect(token.RBRACE)
		return ast.NewRecordUpdate(pos, base, fields)
	}
	fields := p.parseRecordFields()
	p.expect(token.RBRACE)
	return ast.NewRecordExpr(pos, fields)
}

func (p *parser) parseRecordFields() []ast.RecordField {
	field := p.parseRecordField()
	fields := []ast.RecordField{field}
	p.skipNewlines()
	for p.cur().Type == token.COMMA {
		p.advance()
		p.skipNewlines()
		fields = append(fields, p.parseRecordField())
		p.skipNewlines()
	}
	return fields
}

func (p *parser) parseRecordField() ast.RecordField {
	name := p.expect(token.IDENT).Literal
	p.expect(token.ASSIGN)
	p.skipNewlines()
	value := p.parseExpr()
	return ast.RecordField{Name: name, Value: value}
}
