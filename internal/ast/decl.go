package ast

import "github.com/myre-lang/myre/internal/token"

// CompilationUnit is the root node of every AST the parser produces (spec
// §3.2, §6): one source file's worth of using-directives and declarations.
type CompilationUnit struct {
	Meta
	FilePath   string
	Usings     []*UsingDirective
	Namespaces []*NamespaceDecl // file-scoped namespace(s), if any (spec §4.2)
	Decls      []Decl
}

func (c *CompilationUnit) Accept(v Visitor)         { v.VisitCompilationUnit(c) }
func (c *CompilationUnit) TokenLiteral() string     { return "" }
func (c *CompilationUnit) GetToken() token.Token    { return token.Token{} }

// UsingDirective is a `using Some.Namespace;` directive at the top of a unit.
type UsingDirective struct {
	Meta
	Token          token.Token // the 'using' token
	QualifiedName  []string
}

func (u *UsingDirective) Accept(v Visitor)      { v.VisitUsingDirective(u) }
func (u *UsingDirective) declNode()             {}
func (u *UsingDirective) TokenLiteral() string  { return u.Token.Lexeme }
func (u *UsingDirective) GetToken() token.Token { return u.Token }

// NamespaceDecl groups declarations under a dotted name. Re-entering the
// same namespace name in another block merges members (spec §3.4, §4.2).
type NamespaceDecl struct {
	Meta
	Token         token.Token // the 'namespace' token
	QualifiedName []string
	Decls         []Decl
	FileScoped    bool // `namespace Foo;` with no braces, permitted only at unit top
}

func (n *NamespaceDecl) Accept(v Visitor)      { v.VisitNamespaceDecl(n) }
func (n *NamespaceDecl) declNode()             {}
func (n *NamespaceDecl) TokenLiteral() string  { return n.Token.Lexeme }
func (n *NamespaceDecl) GetToken() token.Token { return n.Token }

// TypeKind distinguishes the two user-defined reference/value type headers.
type TypeKind int

const (
	TypeKindClass TypeKind = iota
	TypeKindStruct
)

// TypeDecl is a class or struct declaration (spec §3.2, §3.4).
type TypeDecl struct {
	Meta
	Token      token.Token // 'type' or 'struct'
	Name       string
	Kind       TypeKind
	Access     AccessLevel
	Modifiers  Modifiers
	BaseType   TypeExpr // optional base class / interface list head; nil if none
	Members    []Decl   // fields, properties, constructors, functions, nested types
}

func (t *TypeDecl) Accept(v Visitor)      { v.VisitTypeDecl(t) }
func (t *TypeDecl) declNode()             {}
func (t *TypeDecl) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TypeDecl) GetToken() token.Token { return t.Token }

// EnumDecl is an `enum` declaration with its cases (spec §3.2).
type EnumDecl struct {
	Meta
	Token     token.Token
	Name      string
	Access    AccessLevel
	Cases     []*EnumCaseDecl
	Members   []Decl // functions/properties declared inside the enum body, if any
}

func (e *EnumDecl) Accept(v Visitor)      { v.VisitEnumDecl(e) }
func (e *EnumDecl) declNode()             {}
func (e *EnumDecl) TokenLiteral() string  { return e.Token.Lexeme }
func (e *EnumDecl) GetToken() token.Token { return e.Token }

// EnumCaseDecl is one case of an enum, optionally carrying associated types
// (e.g. `case Some(i32)`).
type EnumCaseDecl struct {
	Meta
	Token            token.Token
	Name             string
	AssociatedTypes  []TypeExpr
}

func (c *EnumCaseDecl) Accept(v Visitor)      { v.VisitEnumCaseDecl(c) }
func (c *EnumCaseDecl) declNode()             {}
func (c *EnumCaseDecl) TokenLiteral() string  { return c.Token.Lexeme }
func (c *EnumCaseDecl) GetToken() token.Token { return c.Token }

// FunctionDecl is a free or member function declaration.
type FunctionDecl struct {
	Meta
	Token       token.Token // 'fn'
	Name        string
	Access      AccessLevel
	Modifiers   Modifiers
	Params      []*ParameterDecl
	ReturnType  TypeExpr // nil if omitted (return type inferred from body, spec §4.5.3)
	Body        *BlockStmt // nil for abstract/extern declarations with no body
}

func (f *FunctionDecl) Accept(v Visitor)      { v.VisitFunctionDecl(f) }
func (f *FunctionDecl) declNode()             {}
func (f *FunctionDecl) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionDecl) GetToken() token.Token { return f.Token }

// ConstructorDecl is a `new(...) { ... }` constructor, distinguished from a
// `new`-expression by the following `(` (spec §4.3.2).
type ConstructorDecl struct {
	Meta
	Token     token.Token // 'new'
	Access    AccessLevel
	Modifiers Modifiers
	Params    []*ParameterDecl
	Body      *BlockStmt
}

func (c *ConstructorDecl) Accept(v Visitor)      { v.VisitConstructorDecl(c) }
func (c *ConstructorDecl) declNode()             {}
func (c *ConstructorDecl) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ConstructorDecl) GetToken() token.Token { return c.Token }

// ParameterDecl is a single `Type name` function/constructor parameter.
type ParameterDecl struct {
	Meta
	Token        token.Token // the parameter name token
	Name         string
	TypeRef      TypeExpr
	DefaultValue Expression // optional
	Modifiers    Modifiers  // e.g. ref
}

func (p *ParameterDecl) Accept(v Visitor)      { v.VisitParameterDecl(p) }
func (p *ParameterDecl) declNode()             {}
func (p *ParameterDecl) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ParameterDecl) GetToken() token.Token { return p.Token }

// VariableDecl is a local variable or a field declaration; IsField
// distinguishes the two (spec §3.2 "variable (local/field)").
type VariableDecl struct {
	Meta
	Token        token.Token // the variable name token
	Name         string
	TypeRef      TypeExpr   // nil for `var x = e;` (type inferred from initializer)
	Initializer  Expression // optional
	IsField      bool
	Access       AccessLevel
	Modifiers    Modifiers
}

func (v *VariableDecl) Accept(vi Visitor)      { vi.VisitVariableDecl(v) }
func (v *VariableDecl) declNode()              {}

// statementNode lets a local VariableDecl (as opposed to a field) sit
// directly in a BlockStmt's Stmts, same-scope-shape as a declaration used
// as a statement (spec §3.2 "variable (local/field)").
func (v *VariableDecl) statementNode()         {}
func (v *VariableDecl) TokenLiteral() string   { return v.Token.Lexeme }
func (v *VariableDecl) GetToken() token.Token  { return v.Token }

// PropertyDecl is a property with a getter and/or setter accessor (spec
// §3.2, §4.3.2: distinguished from a field by `=>`, `{ get; set; }`, or
// `= initializer { get; set; }` after the name).
type PropertyDecl struct {
	Meta
	Token        token.Token
	Name         string
	TypeRef      TypeExpr   // nil if inferred from the getter expression
	Initializer  Expression // optional, e.g. `i32 X = 0 { get; set; }`
	Access       AccessLevel
	Modifiers    Modifiers
	GetterBody   *BlockStmt // non-nil if a getter body was written
	GetterExpr   Expression // non-nil if `=> expr` arrow-bodied getter
	HasGetter    bool
	SetterBody   *BlockStmt
	HasSetter    bool
}

func (p *PropertyDecl) Accept(v Visitor)      { v.VisitPropertyDecl(p) }
func (p *PropertyDecl) declNode()             {}
func (p *PropertyDecl) TokenLiteral() string  { return p.Token.Lexeme }
func (p *PropertyDecl) GetToken() token.Token { return p.Token }
