package ast

import "github.com/myre-lang/myre/internal/token"

// ErrorNode is the placeholder the parser substitutes for any subtree it
// could not parse, keeping the tree well-formed (spec §3.2, §7). It
// satisfies Statement, Expression, Decl, and TypeExpr simultaneously so it
// can stand in for a failed production no matter what position called for.
type ErrorNode struct {
	ExprMeta
	Token   token.Token
	Message string
}

func (e *ErrorNode) Accept(v Visitor)      { v.VisitErrorNode(e) }
func (e *ErrorNode) statementNode()        {}
func (e *ErrorNode) expressionNode()       {}
func (e *ErrorNode) declNode()             {}
func (e *ErrorNode) typeExprNode()         {}
func (e *ErrorNode) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ErrorNode) GetToken() token.Token { return e.Token }

// NewErrorNode builds an ErrorNode already marked as containing an error,
// so MarkErrors propagates the flag to every ancestor automatically.
func NewErrorNode(tok token.Token, rng token.Range, message string) *ErrorNode {
	e := &ErrorNode{Token: tok, Message: message}
	e.rng = rng
	e.containsErrors = true
	return e
}
