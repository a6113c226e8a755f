package ast

import (
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/token"
)

// IntegerLiteral is an integer literal. The lexer has no numeric suffixes,
// and the resolver always types the literal as i32.
type IntegerLiteral struct {
	ExprMeta
	Token token.Token
	Value int64
}

func (i *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(i) }
func (i *IntegerLiteral) expressionNode()       {}
func (i *IntegerLiteral) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IntegerLiteral) GetToken() token.Token { return i.Token }

// FloatLiteral is a single-precision (`f32`) literal.
type FloatLiteral struct {
	ExprMeta
	Token token.Token
	Value float64
}

func (f *FloatLiteral) Accept(v Visitor)      { v.VisitFloatLiteral(f) }
func (f *FloatLiteral) expressionNode()       {}
func (f *FloatLiteral) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FloatLiteral) GetToken() token.Token { return f.Token }

// DoubleLiteral is a double-precision (`f64`) literal.
type DoubleLiteral struct {
	ExprMeta
	Token token.Token
	Value float64
}

func (d *DoubleLiteral) Accept(v Visitor)      { v.VisitDoubleLiteral(d) }
func (d *DoubleLiteral) expressionNode()       {}
func (d *DoubleLiteral) TokenLiteral() string  { return d.Token.Lexeme }
func (d *DoubleLiteral) GetToken() token.Token { return d.Token }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	ExprMeta
	Token token.Token
	Value bool
}

func (b *BoolLiteral) Accept(v Visitor)      { v.VisitBoolLiteral(b) }
func (b *BoolLiteral) expressionNode()       {}
func (b *BoolLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BoolLiteral) GetToken() token.Token { return b.Token }

// StringLiteral is a quoted string literal.
type StringLiteral struct {
	ExprMeta
	Token token.Token
	Value string
}

func (s *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(s) }
func (s *StringLiteral) expressionNode()       {}
func (s *StringLiteral) TokenLiteral() string  { return s.Token.Lexeme }
func (s *StringLiteral) GetToken() token.Token { return s.Token }

// CharLiteral is a single-quoted character literal.
type CharLiteral struct {
	ExprMeta
	Token token.Token
	Value rune
}

func (c *CharLiteral) Accept(v Visitor)      { v.VisitCharLiteral(c) }
func (c *CharLiteral) expressionNode()       {}
func (c *CharLiteral) TokenLiteral() string  { return c.Token.Lexeme }
func (c *CharLiteral) GetToken() token.Token { return c.Token }

// NameExpr is a bare identifier used as a value (spec §3.2 "identifier
// (name)"); the resolver fills ResolvedSymbol on success.
type NameExpr struct {
	ExprMeta
	Token          token.Token
	Name           string
	ResolvedSymbol handle.Handle
}

func (n *NameExpr) Accept(v Visitor)      { v.VisitNameExpr(n) }
func (n *NameExpr) expressionNode()       {}
func (n *NameExpr) TokenLiteral() string  { return n.Token.Lexeme }
func (n *NameExpr) GetToken() token.Token { return n.Token }

// BinaryExpr is `lhs op rhs` for any of the binary operator rows in the
// precedence table (spec §4.3.2), including the range operators.
type BinaryExpr struct {
	ExprMeta
	Token token.Token // the operator token
	Op    token.Kind
	Left  Expression
	Right Expression
}

func (b *BinaryExpr) Accept(v Visitor)      { v.VisitBinaryExpr(b) }
func (b *BinaryExpr) expressionNode()       {}
func (b *BinaryExpr) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BinaryExpr) GetToken() token.Token { return b.Token }

// UnaryExpr is a prefix (`!x`, `-x`, `++x`, `--x`) or postfix (`x++`, `x--`)
// unary operator application; Prefix distinguishes the two.
type UnaryExpr struct {
	ExprMeta
	Token   token.Token
	Op      token.Kind
	Operand Expression
	Prefix  bool
}

func (u *UnaryExpr) Accept(v Visitor)      { v.VisitUnaryExpr(u) }
func (u *UnaryExpr) expressionNode()       {}
func (u *UnaryExpr) TokenLiteral() string  { return u.Token.Lexeme }
func (u *UnaryExpr) GetToken() token.Token { return u.Token }

// AssignmentExpr is `target op= value` for `=`, `+=`, `-=`, `*=`, `/=`.
type AssignmentExpr struct {
	ExprMeta
	Token  token.Token
	Op     token.Kind
	Target Expression
	Value  Expression
}

func (a *AssignmentExpr) Accept(v Visitor)      { v.VisitAssignmentExpr(a) }
func (a *AssignmentExpr) expressionNode()       {}
func (a *AssignmentExpr) TokenLiteral() string  { return a.Token.Lexeme }
func (a *AssignmentExpr) GetToken() token.Token { return a.Token }

// CallExpr is `callee(args...)`. ResolvedCallee is filled by the resolver
// with the Function/member symbol the call bound to (spec §4.5.3).
type CallExpr struct {
	ExprMeta
	Token          token.Token // the '(' token
	Callee         Expression
	Args           []Expression
	ResolvedCallee handle.Handle
}

func (c *CallExpr) Accept(v Visitor)      { v.VisitCallExpr(c) }
func (c *CallExpr) expressionNode()       {}
func (c *CallExpr) TokenLiteral() string  { return c.Token.Lexeme }
func (c *CallExpr) GetToken() token.Token { return c.Token }

// MemberAccessExpr is `object.member`. ResolvedMember is filled by the
// resolver once the member is located on the object's DefinedType.
type MemberAccessExpr struct {
	ExprMeta
	Token          token.Token // the '.' token
	Object         Expression
	Member         string
	ResolvedMember handle.Handle
}

func (m *MemberAccessExpr) Accept(v Visitor)      { v.VisitMemberAccessExpr(m) }
func (m *MemberAccessExpr) expressionNode()       {}
func (m *MemberAccessExpr) TokenLiteral() string  { return m.Token.Lexeme }
func (m *MemberAccessExpr) GetToken() token.Token { return m.Token }

// IndexerExpr is `object[index]`.
type IndexerExpr struct {
	ExprMeta
	Token  token.Token // the '[' token
	Object Expression
	Index  Expression
}

func (i *IndexerExpr) Accept(v Visitor)      { v.VisitIndexerExpr(i) }
func (i *IndexerExpr) expressionNode()       {}
func (i *IndexerExpr) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IndexerExpr) GetToken() token.Token { return i.Token }

// ParenExpr is a parenthesised expression, kept as its own node so source
// ranges and "is this a lambda?" speculative parsing stay precise (spec
// §4.3.3).
type ParenExpr struct {
	ExprMeta
	Token token.Token // the '(' token
	Inner Expression
}

func (p *ParenExpr) Accept(v Visitor)      { v.VisitParenExpr(p) }
func (p *ParenExpr) expressionNode()       {}
func (p *ParenExpr) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParenExpr) GetToken() token.Token { return p.Token }

// NewExpr is `new Type(args...)`.
type NewExpr struct {
	ExprMeta
	Token   token.Token // the 'new' token
	TypeRef TypeExpr
	Args    []Expression
}

func (n *NewExpr) Accept(v Visitor)      { v.VisitNewExpr(n) }
func (n *NewExpr) expressionNode()       {}
func (n *NewExpr) TokenLiteral() string  { return n.Token.Lexeme }
func (n *NewExpr) GetToken() token.Token { return n.Token }

// ThisExpr is the `this` keyword used as a value inside a type's member.
type ThisExpr struct {
	ExprMeta
	Token token.Token
}

func (t *ThisExpr) Accept(v Visitor)      { v.VisitThisExpr(t) }
func (t *ThisExpr) expressionNode()       {}
func (t *ThisExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *ThisExpr) GetToken() token.Token { return t.Token }

// CastExpr is `expr as Type`; compatibility is not enforced at this layer
// (spec §4.5.3).
type CastExpr struct {
	ExprMeta
	Token   token.Token // the 'as' token
	Operand Expression
	TypeRef TypeExpr
}

func (c *CastExpr) Accept(v Visitor)      { v.VisitCastExpr(c) }
func (c *CastExpr) expressionNode()       {}
func (c *CastExpr) TokenLiteral() string  { return c.Token.Lexeme }
func (c *CastExpr) GetToken() token.Token { return c.Token }

// ConditionalExpr is the ternary `cond ? then : else`.
type ConditionalExpr struct {
	ExprMeta
	Token token.Token // the '?' token
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (c *ConditionalExpr) Accept(v Visitor)      { v.VisitConditionalExpr(c) }
func (c *ConditionalExpr) expressionNode()       {}
func (c *ConditionalExpr) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ConditionalExpr) GetToken() token.Token { return c.Token }

// RangeExpr is `start..end` / `start..=end`, either bound optional, with an
// optional `by step` suffix (spec §4.3.2 prec 5).
type RangeExpr struct {
	ExprMeta
	Token     token.Token // '..' or '..='
	Start     Expression  // nil for a prefix range `..end`
	End       Expression  // nil for an open range `start..`
	Inclusive bool
	Step      Expression // nil if no `by` suffix
}

func (r *RangeExpr) Accept(v Visitor)      { v.VisitRangeExpr(r) }
func (r *RangeExpr) expressionNode()       {}
func (r *RangeExpr) TokenLiteral() string  { return r.Token.Lexeme }
func (r *RangeExpr) GetToken() token.Token { return r.Token }

// ArrayLiteralExpr is `[e1, e2, ...]`; an empty literal stays Unresolved
// until the resolver sees it in a typed context (spec §4.5.3).
type ArrayLiteralExpr struct {
	ExprMeta
	Token    token.Token // the '[' token
	Elements []Expression
}

func (a *ArrayLiteralExpr) Accept(v Visitor)      { v.VisitArrayLiteralExpr(a) }
func (a *ArrayLiteralExpr) expressionNode()       {}
func (a *ArrayLiteralExpr) TokenLiteral() string  { return a.Token.Lexeme }
func (a *ArrayLiteralExpr) GetToken() token.Token { return a.Token }

// MatchArm is one `pattern => result` arm of a MatchExpr. Patterns are
// modelled as expressions (literal or enum-case NameExpr/CallExpr) rather
// than a separate Pattern hierarchy, matching the spec's scope (no
// destructuring pattern language beyond enum-case matching is specified).
type MatchArm struct {
	Pattern Expression
	Guard   Expression // optional `if cond` guard
	Result  Expression
}

// MatchExpr is `match (subject) { arm, arm, ... }`.
type MatchExpr struct {
	ExprMeta
	Token   token.Token // the 'match' token
	Subject Expression
	Arms    []MatchArm
}

func (m *MatchExpr) Accept(v Visitor)      { v.VisitMatchExpr(m) }
func (m *MatchExpr) expressionNode()       {}
func (m *MatchExpr) TokenLiteral() string  { return m.Token.Lexeme }
func (m *MatchExpr) GetToken() token.Token { return m.Token }

// TypedIdentifierExpr represents the `Type name` pattern that separates a
// declaration header from an expression statement (spec §4.3.2). The
// parser does not build this node: tryParseTypedIdentifier returns the
// type, the name token and a success flag directly, and a successful match
// becomes a VariableDecl or PropertyDecl.
type TypedIdentifierExpr struct {
	ExprMeta
	Token   token.Token
	TypeRef TypeExpr
	Name    string
}

func (t *TypedIdentifierExpr) Accept(v Visitor)      { v.VisitTypedIdentifierExpr(t) }
func (t *TypedIdentifierExpr) expressionNode()       {}
func (t *TypedIdentifierExpr) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TypedIdentifierExpr) GetToken() token.Token { return t.Token }
