package parser

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/token"
)

// Precedence levels, lowest to highest (spec §4.3.2). Assignment is
// right-associative and parsed as a separate trailing step rather than
// through the climbing loop, matching the spec's own description of the
// algorithm ("primary, then postfix, then binary climb, then an optional
// trailing right-assoc assignment").
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // = += -= *= /=  (right-assoc, handled separately)
	precLogicalOr             // ||
	precLogicalAnd            // &&
	precEquality              // == !=
	precComparison            // < <= > >=
	precRange                 // .. ..= (with optional `by` step)
	precAdditive              // + -
	precMultiplicative        // * / %
	precUnary                 // prefix ! - ++ --
	precPostfix               // . [ ( ++ -- (postfix)
	precPrimary
)

var infixPrecedence = map[token.Kind]precedence{
	token.PIPE_PIPE: precLogicalOr,
	token.AMP_AMP:   precLogicalAnd,
	token.EQ:        precEquality,
	token.NEQ:       precEquality,
	token.LT:        precComparison,
	token.LTE:       precComparison,
	token.GT:        precComparison,
	token.GTE:       precComparison,
	token.DOTDOT:    precRange,
	token.DOTDOTEQ:  precRange,
	token.PLUS:      precAdditive,
	token.MINUS:     precAdditive,
	token.STAR:      precMultiplicative,
	token.SLASH:     precMultiplicative,
	token.PERCENT:   precMultiplicative,
	token.LPAREN:    precPostfix,
	token.LBRACKET:  precPostfix,
	token.DOT:       precPostfix,
	token.INC:       precPostfix,
	token.DEC:       precPostfix,
	token.KW_AS:     precPostfix,
	token.QUESTION:  precAssignment + 1, // ternary binds just above assignment
}

var assignmentOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true,
}

func (p *Parser) peekPrecedence() precedence {
	if prec, ok := infixPrecedence[p.current().Kind]; ok {
		return prec
	}
	return precNone
}

func (p *Parser) registerExpressionFns() {
	p.prefixParseFns = map[token.Kind]func() ast.Expression{
		token.INT:      p.parseIntegerLiteral,
		token.FLOAT:    p.parseFloatLiteral,
		token.STRING:   p.parseStringLiteral,
		token.CHAR:     p.parseCharLiteral,
		token.KW_TRUE:  p.parseBoolLiteral,
		token.KW_FALSE: p.parseBoolLiteral,
		token.IDENT:    p.parseNameExpr,
		token.KW_THIS:  p.parseThisExpr,
		token.LPAREN:   p.parseGroupedExpression,
		token.LBRACKET: p.parseArrayLiteral,
		token.KW_NEW:   p.parseNewExpr,
		token.KW_MATCH: p.parseMatchExpr,
		token.BANG:     p.parsePrefixExpr,
		token.MINUS:    p.parsePrefixExpr,
		token.INC:      p.parsePrefixExpr,
		token.DEC:      p.parsePrefixExpr,
		token.DOTDOT:   p.parsePrefixRangeExpr,
		token.DOTDOTEQ: p.parsePrefixRangeExpr,
	}

	p.infixParseFns = map[token.Kind]func(ast.Expression) ast.Expression{
		token.PLUS: p.parseBinaryExpr, token.MINUS: p.parseBinaryExpr,
		token.STAR: p.parseBinaryExpr, token.SLASH: p.parseBinaryExpr, token.PERCENT: p.parseBinaryExpr,
		token.EQ: p.parseBinaryExpr, token.NEQ: p.parseBinaryExpr,
		token.LT: p.parseBinaryExpr, token.LTE: p.parseBinaryExpr,
		token.GT: p.parseBinaryExpr, token.GTE: p.parseBinaryExpr,
		token.AMP_AMP: p.parseBinaryExpr, token.PIPE_PIPE: p.parseBinaryExpr,
		token.DOTDOT: p.parseRangeExpr, token.DOTDOTEQ: p.parseRangeExpr,
		token.LPAREN: p.parseCallExpr, token.LBRACKET: p.parseIndexerExpr,
		token.DOT: p.parseMemberAccessExpr,
		token.INC: p.parsePostfixExpr, token.DEC: p.parsePostfixExpr,
		token.KW_AS:    p.parseCastExpr,
		token.QUESTION: p.parseConditionalExpr,
	}
}

// parseExpression implements the climbing algorithm of spec §4.3.2: a
// prefix/primary parse, a postfix loop (folded into the main climb via the
// infix table), a binary precedence climb bounded by minPrec, and finally
// an optional trailing right-associative assignment.
func (p *Parser) parseExpression(minPrec precedence) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()
	startTok := p.current()
	if !p.checkRecursionDepth(startTok) {
		return p.errorNode(startTok, "expression too deeply nested")
	}

	prefix, ok := p.prefixParseFns[p.current().Kind]
	if !ok {
		tok := p.current()
		p.errorf(diagnostics.ErrP003NoPrefixParseFn, tok, "no prefix parse function for %s", tok.Kind)
		p.advance()
		return p.errorNode(tok, "expected an expression")
	}
	left := prefix()

	for minPrec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.current().Kind]
		if !ok {
			break
		}
		left = infix(left)
	}

	if minPrec <= precAssignment && assignmentOps[p.current().Kind] {
		left = p.parseAssignmentTail(left)
	}

	return left
}

// ParseExpression is the public entry used by tests to parse a standalone
// expression string through a token stream.
func (p *Parser) ParseExpression() ast.Expression {
	return p.parseExpression(precNone)
}

func (p *Parser) parseAssignmentTail(target ast.Expression) ast.Expression {
	tok := p.current()
	p.advance()
	value := p.parseExpression(precAssignment - 1) // right-assoc: allow chained assignment on the right
	n := &ast.AssignmentExpr{Token: tok, Op: tok.Kind, Target: target, Value: value}
	ast.MarkErrors(n, target)
	ast.MarkErrors(n, value)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.current()
	p.advance()
	v, _ := tok.Literal.(int64)
	n := &ast.IntegerLiteral{Token: tok, Value: v}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.current()
	p.advance()
	v, _ := tok.Literal.(float64)
	n := &ast.FloatLiteral{Token: tok, Value: v}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.current()
	p.advance()
	v, _ := tok.Literal.(string)
	n := &ast.StringLiteral{Token: tok, Value: v}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.current()
	p.advance()
	v, _ := tok.Literal.(rune)
	n := &ast.CharLiteral{Token: tok, Value: v}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.current()
	p.advance()
	n := &ast.BoolLiteral{Token: tok, Value: tok.Kind == token.KW_TRUE}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseThisExpr() ast.Expression {
	tok := p.current()
	p.advance()
	n := &ast.ThisExpr{Token: tok}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseNameExpr() ast.Expression {
	tok := p.current()
	p.advance()
	n := &ast.NameExpr{Token: tok, Name: tok.Lexeme}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.current()
	p.advance() // (
	inner := p.parseExpression(precNone)
	if _, ok := p.consume(token.RPAREN, "to close grouped expression"); !ok {
		return p.errorNode(tok, "unterminated grouped expression")
	}
	n := &ast.ParenExpr{Token: tok, Inner: inner}
	ast.MarkErrors(n, inner)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.current()
	p.advance() // [
	var elems []ast.Expression
	for !p.check(token.RBRACKET) && !p.atEnd() {
		elems = append(elems, p.parseExpression(precAssignment))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RBRACKET, "to close array literal")
	n := &ast.ArrayLiteralExpr{Token: tok, Elements: elems}
	for _, e := range elems {
		ast.MarkErrors(n, e)
	}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseNewExpr() ast.Expression {
	tok := p.current()
	p.advance() // new
	typeRef := p.parseTypeExpr()
	var args []ast.Expression
	if p.match(token.LPAREN) {
		for !p.check(token.RPAREN) && !p.atEnd() {
			args = append(args, p.parseExpression(precAssignment))
			if !p.match(token.COMMA) {
				break
			}
		}
		p.consume(token.RPAREN, "to close constructor arguments")
	}
	n := &ast.NewExpr{Token: tok, TypeRef: typeRef, Args: args}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseMatchExpr() ast.Expression {
	tok := p.current()
	p.advance() // match
	subject := p.parseExpression(precAssignment)
	p.consume(token.LBRACE, "to open match body")
	var arms []ast.MatchArm
	for !p.check(token.RBRACE) && !p.atEnd() {
		pattern := p.parseExpression(precAssignment)
		var guard ast.Expression
		if p.check(token.KW_IF) {
			p.advance()
			guard = p.parseExpression(precAssignment)
		}
		p.consume(token.ARROW, "between match pattern and result")
		result := p.parseExpression(precAssignment)
		arms = append(arms, ast.MatchArm{Pattern: pattern, Guard: guard, Result: result})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RBRACE, "to close match body")
	n := &ast.MatchExpr{Token: tok, Subject: subject, Arms: arms}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	tok := p.current()
	p.advance()
	operand := p.parseExpression(precUnary)
	n := &ast.UnaryExpr{Token: tok, Op: tok.Kind, Operand: operand, Prefix: true}
	ast.MarkErrors(n, operand)
	p.arena.Keep(n)
	return n
}

// parsePrefixRangeExpr handles an open-start range like `..end` (spec
// §4.3.2 range operator, no left operand).
func (p *Parser) parsePrefixRangeExpr() ast.Expression {
	tok := p.current()
	inclusive := tok.Kind == token.DOTDOTEQ
	p.advance()
	end := p.parseExpression(precRange)
	n := &ast.RangeExpr{Token: tok, Start: nil, End: end, Inclusive: inclusive}
	n.Step = p.maybeParseRangeStep()
	ast.MarkErrors(n, end)
	p.arena.Keep(n)
	return n
}

func (p *Parser) maybeParseRangeStep() ast.Expression {
	if p.check(token.KW_BY) {
		p.advance()
		return p.parseExpression(precRange)
	}
	return nil
}

func (p *Parser) parseRangeExpr(start ast.Expression) ast.Expression {
	tok := p.current()
	inclusive := tok.Kind == token.DOTDOTEQ
	p.advance()
	var end ast.Expression
	if !p.checkAny(token.SEMI, token.RPAREN, token.RBRACE, token.RBRACKET, token.COMMA, token.KW_BY) {
		end = p.parseExpression(precRange)
	}
	n := &ast.RangeExpr{Token: tok, Start: start, End: end, Inclusive: inclusive}
	n.Step = p.maybeParseRangeStep()
	ast.MarkErrors(n, start)
	if end != nil {
		ast.MarkErrors(n, end)
	}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.current()
	prec := infixPrecedence[tok.Kind]
	p.advance()
	right := p.parseExpression(prec)
	n := &ast.BinaryExpr{Token: tok, Op: tok.Kind, Left: left, Right: right}
	ast.MarkErrors(n, left)
	ast.MarkErrors(n, right)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseConditionalExpr(cond ast.Expression) ast.Expression {
	tok := p.current()
	p.advance() // ?
	thenExpr := p.parseExpression(precAssignment)
	p.consume(token.COLON, "between conditional branches")
	elseExpr := p.parseExpression(precAssignment)
	n := &ast.ConditionalExpr{Token: tok, Cond: cond, Then: thenExpr, Else: elseExpr}
	ast.MarkErrors(n, cond)
	ast.MarkErrors(n, thenExpr)
	ast.MarkErrors(n, elseExpr)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	tok := p.current()
	p.advance() // (
	var args []ast.Expression
	for !p.check(token.RPAREN) && !p.atEnd() {
		args = append(args, p.parseExpression(precAssignment))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RPAREN, "to close call arguments")
	n := &ast.CallExpr{Token: tok, Callee: callee, Args: args}
	ast.MarkErrors(n, callee)
	for _, a := range args {
		ast.MarkErrors(n, a)
	}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseIndexerExpr(object ast.Expression) ast.Expression {
	tok := p.current()
	p.advance() // [
	index := p.parseExpression(precAssignment)
	p.consume(token.RBRACKET, "to close indexer")
	n := &ast.IndexerExpr{Token: tok, Object: object, Index: index}
	ast.MarkErrors(n, object)
	ast.MarkErrors(n, index)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseMemberAccessExpr(object ast.Expression) ast.Expression {
	tok := p.current()
	p.advance() // .
	name, ok := p.consume(token.IDENT, "as member name")
	member := name.Lexeme
	if !ok {
		member = "<error>"
	}
	n := &ast.MemberAccessExpr{Token: tok, Object: object, Member: member}
	ast.MarkErrors(n, object)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parsePostfixExpr(operand ast.Expression) ast.Expression {
	tok := p.current()
	p.advance()
	n := &ast.UnaryExpr{Token: tok, Op: tok.Kind, Operand: operand, Prefix: false}
	ast.MarkErrors(n, operand)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseCastExpr(operand ast.Expression) ast.Expression {
	tok := p.current()
	p.advance() // as
	typeRef := p.parseTypeExpr()
	n := &ast.CastExpr{Token: tok, Operand: operand, TypeRef: typeRef}
	ast.MarkErrors(n, operand)
	p.arena.Keep(n)
	return n
}
