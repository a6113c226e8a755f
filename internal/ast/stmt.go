package ast

import "github.com/myre-lang/myre/internal/token"

// BlockStmt is a brace-delimited sequence of statements; it is its own
// scope (spec §3.4 Scope kind Block).
type BlockStmt struct {
	Meta
	Token token.Token // the '{' token
	Stmts []Statement
}

func (b *BlockStmt) Accept(v Visitor)      { v.VisitBlockStmt(b) }
func (b *BlockStmt) statementNode()        {}
func (b *BlockStmt) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BlockStmt) GetToken() token.Token { return b.Token }

// ExpressionStmt is an expression used as a statement, `expr;`.
type ExpressionStmt struct {
	Meta
	Token token.Token
	Expr  Expression
}

func (e *ExpressionStmt) Accept(v Visitor)      { v.VisitExpressionStmt(e) }
func (e *ExpressionStmt) statementNode()        {}
func (e *ExpressionStmt) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ExpressionStmt) GetToken() token.Token { return e.Token }

// IfStmt is `if (cond) then [else else_]`.
type IfStmt struct {
	Meta
	Token token.Token // 'if'
	Cond  Expression
	Then  Statement
	Else  Statement // nil if no else clause
}

func (i *IfStmt) Accept(v Visitor)      { v.VisitIfStmt(i) }
func (i *IfStmt) statementNode()        {}
func (i *IfStmt) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IfStmt) GetToken() token.Token { return i.Token }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Meta
	Token token.Token
	Cond  Expression
	Body  Statement
}

func (w *WhileStmt) Accept(v Visitor)      { v.VisitWhileStmt(w) }
func (w *WhileStmt) statementNode()        {}
func (w *WhileStmt) TokenLiteral() string  { return w.Token.Lexeme }
func (w *WhileStmt) GetToken() token.Token { return w.Token }

// ForStmt is the C-style `for (init; cond; step) body` (spec §4.3.2).
type ForStmt struct {
	Meta
	Token token.Token
	Init  Statement // VariableDecl-as-statement or ExpressionStmt; nil if omitted
	Cond  Expression
	Step  Expression
	Body  Statement
}

func (f *ForStmt) Accept(v Visitor)      { v.VisitForStmt(f) }
func (f *ForStmt) statementNode()        {}
func (f *ForStmt) TokenLiteral() string  { return f.Token.Lexeme }
func (f *ForStmt) GetToken() token.Token { return f.Token }

// ForInStmt is `for (x in e [at i]) body` (spec §4.3.2); At is the optional
// index-binding name, "" if absent.
type ForInStmt struct {
	Meta
	Token       token.Token
	VarName     string
	AtName      string
	Iterable    Expression
	Body        Statement
}

func (f *ForInStmt) Accept(v Visitor)      { v.VisitForInStmt(f) }
func (f *ForInStmt) statementNode()        {}
func (f *ForInStmt) TokenLiteral() string  { return f.Token.Lexeme }
func (f *ForInStmt) GetToken() token.Token { return f.Token }

// ReturnStmt is `return [expr];`.
type ReturnStmt struct {
	Meta
	Token token.Token
	Value Expression // nil for a bare `return;`
}

func (r *ReturnStmt) Accept(v Visitor)      { v.VisitReturnStmt(r) }
func (r *ReturnStmt) statementNode()        {}
func (r *ReturnStmt) TokenLiteral() string  { return r.Token.Lexeme }
func (r *ReturnStmt) GetToken() token.Token { return r.Token }

// BreakStmt is `break;`; emits WarnP006BreakOutsideLoop if outside a Loop
// context (spec §4.3.3).
type BreakStmt struct {
	Meta
	Token token.Token
}

func (b *BreakStmt) Accept(v Visitor)      { v.VisitBreakStmt(b) }
func (b *BreakStmt) statementNode()        {}
func (b *BreakStmt) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BreakStmt) GetToken() token.Token { return b.Token }

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Meta
	Token token.Token
}

func (c *ContinueStmt) Accept(v Visitor)      { v.VisitContinueStmt(c) }
func (c *ContinueStmt) statementNode()        {}
func (c *ContinueStmt) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ContinueStmt) GetToken() token.Token { return c.Token }

// EmptyStmt is a bare `;`.
type EmptyStmt struct {
	Meta
	Token token.Token
}

func (e *EmptyStmt) Accept(v Visitor)      { v.VisitEmptyStmt(e) }
func (e *EmptyStmt) statementNode()        {}
func (e *EmptyStmt) TokenLiteral() string  { return e.Token.Lexeme }
func (e *EmptyStmt) GetToken() token.Token { return e.Token }
