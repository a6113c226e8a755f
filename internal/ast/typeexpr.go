package ast

import "github.com/myre-lang/myre/internal/token"

// SimpleNameTypeExpr is a bare type name, e.g. `i32`, `Point`.
type SimpleNameTypeExpr struct {
	Meta
	Token token.Token
	Name  string
}

func (s *SimpleNameTypeExpr) Accept(v Visitor)      { v.VisitSimpleNameTypeExpr(s) }
func (s *SimpleNameTypeExpr) typeExprNode()         {}
func (s *SimpleNameTypeExpr) TokenLiteral() string  { return s.Token.Lexeme }
func (s *SimpleNameTypeExpr) GetToken() token.Token { return s.Token }

// QualifiedNameTypeExpr is a dotted type name, e.g. `System.Collections.List`.
type QualifiedNameTypeExpr struct {
	Meta
	Token token.Token
	Parts []string
}

func (q *QualifiedNameTypeExpr) Accept(v Visitor)      { v.VisitQualifiedNameTypeExpr(q) }
func (q *QualifiedNameTypeExpr) typeExprNode()         {}
func (q *QualifiedNameTypeExpr) TokenLiteral() string  { return q.Token.Lexeme }
func (q *QualifiedNameTypeExpr) GetToken() token.Token { return q.Token }

// ArrayTypeExpr is `Element[]` or `Element[,]` for higher ranks.
type ArrayTypeExpr struct {
	Meta
	Token   token.Token // the '[' token
	Element TypeExpr
	Rank    int
}

func (a *ArrayTypeExpr) Accept(v Visitor)      { v.VisitArrayTypeExpr(a) }
func (a *ArrayTypeExpr) typeExprNode()         {}
func (a *ArrayTypeExpr) TokenLiteral() string  { return a.Token.Lexeme }
func (a *ArrayTypeExpr) GetToken() token.Token { return a.Token }

// FunctionTypeExpr is a function-type reference, e.g. `(i32, i32) -> i32`.
type FunctionTypeExpr struct {
	Meta
	Token   token.Token // the '(' token
	Params  []TypeExpr
	Return  TypeExpr
}

func (f *FunctionTypeExpr) Accept(v Visitor)      { v.VisitFunctionTypeExpr(f) }
func (f *FunctionTypeExpr) typeExprNode()         {}
func (f *FunctionTypeExpr) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionTypeExpr) GetToken() token.Token { return f.Token }

// GenericInstantiationTypeExpr is `Generic<Arg1, Arg2>`.
type GenericInstantiationTypeExpr struct {
	Meta
	Token     token.Token
	Generic   TypeExpr
	Arguments []TypeExpr
}

func (g *GenericInstantiationTypeExpr) Accept(v Visitor)      { v.VisitGenericInstantiationTypeExpr(g) }
func (g *GenericInstantiationTypeExpr) typeExprNode()         {}
func (g *GenericInstantiationTypeExpr) TokenLiteral() string  { return g.Token.Lexeme }
func (g *GenericInstantiationTypeExpr) GetToken() token.Token { return g.Token }
