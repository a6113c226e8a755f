package parser

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/token"
)

// parseTypeExpr parses a type expression: a qualified name, optionally
// followed by array-rank suffixes (`[]`, `[,]`, ...) or a generic argument
// list (`<T, U>` is not part of Myre's grammar — generics are written
// `Name[Arg]`). parseTypeSuffix makes the choice here: empty brackets or
// bare commas give an array type, bracketed type arguments give a generic
// instantiation.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	if p.check(token.LPAREN) {
		return p.parseFunctionTypeExpr()
	}

	tok := p.current()
	name, ok := p.consume(token.IDENT, "as a type name")
	if !ok {
		return p.errorNode(tok, "expected a type name")
	}
	var base ast.TypeExpr
	parts := []string{name.Lexeme}
	for p.check(token.DOT) {
		p.advance()
		seg, ok := p.consume(token.IDENT, "after '.' in qualified type name")
		if !ok {
			break
		}
		parts = append(parts, seg.Lexeme)
	}
	if len(parts) == 1 {
		base = &ast.SimpleNameTypeExpr{Token: tok, Name: parts[0]}
	} else {
		base = &ast.QualifiedNameTypeExpr{Token: tok, Parts: parts}
	}
	p.arena.Keep(base)

	for p.check(token.LBRACKET) {
		base = p.parseTypeSuffix(base)
	}
	return base
}

// parseTypeSuffix consumes one `[...]` suffix: empty brackets (possibly
// repeated for rank, `[,]`) make an array type; a bracket holding type
// arguments makes a generic instantiation.
func (p *Parser) parseTypeSuffix(element ast.TypeExpr) ast.TypeExpr {
	tok := p.current()
	p.advance() // [

	if p.check(token.RBRACKET) || p.check(token.COMMA) {
		rank := 1
		for p.match(token.COMMA) {
			rank++
		}
		p.consume(token.RBRACKET, "to close array type")
		n := &ast.ArrayTypeExpr{Token: tok, Element: element, Rank: rank}
		p.arena.Keep(n)
		return n
	}

	var args []ast.TypeExpr
	for !p.check(token.RBRACKET) && !p.atEnd() {
		args = append(args, p.parseTypeExpr())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RBRACKET, "to close generic argument list")
	n := &ast.GenericInstantiationTypeExpr{Token: tok, Generic: element, Arguments: args}
	p.arena.Keep(n)
	return n
}

// parseFunctionTypeExpr parses `(T1, T2) -> R`.
func (p *Parser) parseFunctionTypeExpr() ast.TypeExpr {
	tok := p.current()
	p.advance() // (
	var params []ast.TypeExpr
	for !p.check(token.RPAREN) && !p.atEnd() {
		params = append(params, p.parseTypeExpr())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RPAREN, "to close function type parameter list")
	p.consume(token.FATARROW, "between function type parameters and return type")
	ret := p.parseTypeExpr()
	n := &ast.FunctionTypeExpr{Token: tok, Params: params, Return: ret}
	p.arena.Keep(n)
	return n
}

// tryParseType speculatively parses a type expression, restoring the
// stream if the next token can't begin one. Grounded on the teacher's
// try_parse_type checkpoint/restore helper (spec §4.3.4).
func (p *Parser) tryParseType() (ast.TypeExpr, bool) {
	if !p.check(token.IDENT) && !p.check(token.LPAREN) {
		return nil, false
	}
	var result ast.TypeExpr
	node := p.speculative(func() ast.Node {
		t := p.parseTypeExpr()
		if _, isErr := t.(*ast.ErrorNode); isErr {
			return nil
		}
		result = t
		return t
	})
	if node == nil {
		return nil, false
	}
	return result, true
}

// tryParseTypedIdentifier speculatively parses `Type name` (a variable
// declaration header written without `var`), used to disambiguate field/
// local declarations from expression statements (spec §4.3.4).
func (p *Parser) tryParseTypedIdentifier() (ast.TypeExpr, token.Token, bool) {
	mark := p.checkpoint()
	typeRef, ok := p.tryParseType()
	if !ok || !p.check(token.IDENT) {
		p.restore(mark)
		return nil, token.Token{}, false
	}
	nameTok := p.current()
	p.advance()
	if !p.checkAny(token.ASSIGN, token.SEMI, token.LPAREN, token.ARROW, token.LBRACE) {
		p.restore(mark)
		return nil, token.Token{}, false
	}
	return typeRef, nameTok, true
}
