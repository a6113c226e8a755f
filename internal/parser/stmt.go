package parser

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/token"
)

// parseStatement dispatches on the leading token to a concrete statement
// production, falling back to a declaration-or-expression statement when
// no keyword matches (spec §4.3.3).
func (p *Parser) parseStatement() ast.Statement {
	p.lastErrorWasCascade = false
	switch p.current().Kind {
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.KW_IF:
		return p.parseIfStmt()
	case token.KW_WHILE:
		return p.parseWhileStmt()
	case token.KW_FOR:
		return p.parseForOrForInStmt()
	case token.KW_RETURN:
		return p.parseReturnStmt()
	case token.KW_BREAK:
		return p.parseBreakStmt()
	case token.KW_CONTINUE:
		return p.parseContinueStmt()
	case token.KW_VAR:
		return p.parseVarDecl(ast.AccessDefault, 0, false).(ast.Statement)
	case token.SEMI:
		tok := p.current()
		p.advance()
		n := &ast.EmptyStmt{Token: tok}
		p.arena.Keep(n)
		return n
	}

	if typeRef, nameTok, ok := p.tryParseTypedIdentifier(); ok {
		d := p.parseVariableOrPropertyFromHeader(typeRef, nameTok, ast.AccessDefault, 0, false)
		if stmt, ok := d.(ast.Statement); ok {
			return stmt
		}
	}

	return p.parseExpressionStmt()
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	tok := p.current()
	p.advance() // {
	n := &ast.BlockStmt{Token: tok}
	for !p.check(token.RBRACE) && !p.atEnd() {
		stmt := p.parseStatement()
		if stmt != nil {
			n.Stmts = append(n.Stmts, stmt)
			ast.MarkErrors(n, stmt)
		}
	}
	p.consume(token.RBRACE, "to close block")
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseExpressionStmt() ast.Statement {
	tok := p.current()
	expr := p.parseExpression(precNone)
	p.consume(token.SEMI, "after expression statement")
	n := &ast.ExpressionStmt{Token: tok, Expr: expr}
	ast.MarkErrors(n, expr)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.current()
	p.advance() // if
	p.consume(token.LPAREN, "to open if condition")
	cond := p.parseExpression(precNone)
	p.consume(token.RPAREN, "to close if condition")
	then := p.parseStatement()
	n := &ast.IfStmt{Token: tok, Cond: cond, Then: then}
	if p.match(token.KW_ELSE) {
		n.Else = p.parseStatement()
	}
	ast.MarkErrors(n, cond)
	ast.MarkErrors(n, then)
	ast.MarkErrors(n, n.Else)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.current()
	p.advance() // while
	p.consume(token.LPAREN, "to open while condition")
	cond := p.parseExpression(precNone)
	p.consume(token.RPAREN, "to close while condition")
	p.pushContext(CtxLoop)
	body := p.parseStatement()
	p.popContext()
	n := &ast.WhileStmt{Token: tok, Cond: cond, Body: body}
	ast.MarkErrors(n, cond)
	ast.MarkErrors(n, body)
	p.arena.Keep(n)
	return n
}

// parseForOrForInStmt disambiguates the C-style and for-in headers by
// scanning ahead for a bare `in` token before the matching `)` (spec
// §4.3.3).
func (p *Parser) parseForOrForInStmt() ast.Statement {
	tok := p.current()
	p.advance() // for
	p.consume(token.LPAREN, "to open for header")

	if p.looksLikeForIn() {
		return p.finishForInStmt(tok)
	}
	return p.finishForStmt(tok)
}

// looksLikeForIn peeks past the header parens, counting nested brackets,
// to see whether a top-level `in` appears before the closing `)`.
func (p *Parser) looksLikeForIn() bool {
	depth := 0
	for k := 0; ; k++ {
		t := p.peek(k)
		if t.Kind == token.EOF {
			return false
		}
		switch t.Kind {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN:
			if depth == 0 {
				return false
			}
			depth--
		case token.RBRACKET, token.RBRACE:
			depth--
		case token.KW_IN:
			if depth == 0 {
				return true
			}
		}
	}
}

func (p *Parser) finishForInStmt(tok token.Token) ast.Statement {
	nameTok, _ := p.consume(token.IDENT, "as for-in loop variable")
	p.consume(token.KW_IN, "between for-in loop variable and iterable")
	iterable := p.parseExpression(precNone)
	n := &ast.ForInStmt{Token: tok, VarName: nameTok.Lexeme, Iterable: iterable}
	if p.match(token.KW_AT) {
		atTok, _ := p.consume(token.IDENT, "as for-in index binding")
		n.AtName = atTok.Lexeme
	}
	p.consume(token.RPAREN, "to close for-in header")
	p.pushContext(CtxLoop)
	n.Body = p.parseStatement()
	p.popContext()
	ast.MarkErrors(n, iterable)
	ast.MarkErrors(n, n.Body)
	p.arena.Keep(n)
	return n
}

func (p *Parser) finishForStmt(tok token.Token) ast.Statement {
	n := &ast.ForStmt{Token: tok}
	if !p.check(token.SEMI) {
		n.Init = p.parseStatement() // consumes its own trailing ';'
	} else {
		p.advance()
	}
	if !p.check(token.SEMI) {
		n.Cond = p.parseExpression(precNone)
	}
	p.consume(token.SEMI, "between for-loop condition and step")
	if !p.check(token.RPAREN) {
		n.Step = p.parseExpression(precNone)
	}
	p.consume(token.RPAREN, "to close for header")
	p.pushContext(CtxLoop)
	n.Body = p.parseStatement()
	p.popContext()
	ast.MarkErrors(n, n.Cond)
	ast.MarkErrors(n, n.Step)
	ast.MarkErrors(n, n.Body)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.current()
	p.advance() // return
	if !p.inContext(CtxFunction) && !p.inContext(CtxPropertyGetter) && !p.inContext(CtxPropertySetter) {
		p.warnf(diagnostics.WarnP007ReturnOutsideFn, tok, "return statement outside a function body")
	}
	n := &ast.ReturnStmt{Token: tok}
	if !p.check(token.SEMI) {
		n.Value = p.parseExpression(precNone)
	}
	p.consume(token.SEMI, "after return statement")
	ast.MarkErrors(n, n.Value)
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseBreakStmt() ast.Statement {
	tok := p.current()
	p.advance()
	if !p.inContext(CtxLoop) {
		p.warnf(diagnostics.WarnP006BreakOutsideLoop, tok, "break statement outside a loop")
	}
	p.consume(token.SEMI, "after break statement")
	n := &ast.BreakStmt{Token: tok}
	p.arena.Keep(n)
	return n
}

func (p *Parser) parseContinueStmt() ast.Statement {
	tok := p.current()
	p.advance()
	if !p.inContext(CtxLoop) {
		p.warnf(diagnostics.WarnP006BreakOutsideLoop, tok, "continue statement outside a loop")
	}
	p.consume(token.SEMI, "after continue statement")
	n := &ast.ContinueStmt{Token: tok}
	p.arena.Keep(n)
	return n
}
