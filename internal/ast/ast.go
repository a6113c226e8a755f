// Package ast defines the node hierarchy produced by the parser: tagged
// variants (not a class tree) sharing a common Meta, double-dispatch
// traversal via Visitor, and arena allocation (spec §3.2).
package ast

import (
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
	Range() token.Range
	ContainsErrors() bool
	markContainsErrors()
	// ContainingScope returns the scope handle the builder stamped on this
	// node, or the zero handle.Handle if the builder has not run yet.
	ContainingScope() handle.Handle
	SetContainingScope(handle.Handle)
}

// Meta is mixed into every concrete node to provide the fields common to the
// whole hierarchy, following the "mixed in" idiom for shared node fields
// (teacher-adjacent gapil/semantic.Node uses the same embedding shape for
// Owned/owned).
type Meta struct {
	rng             token.Range
	containsErrors  bool
	containingScope handle.Handle
}

func (m *Meta) Range() token.Range                  { return m.rng }
func (m *Meta) SetRange(r token.Range)               { m.rng = r }
func (m *Meta) ContainsErrors() bool                { return m.containsErrors }
func (m *Meta) markContainsErrors()                 { m.containsErrors = true }
func (m *Meta) ContainingScope() handle.Handle       { return m.containingScope }
func (m *Meta) SetContainingScope(h handle.Handle)   { m.containingScope = h }

// ExprMeta additionally carries the resolved-type slot every expression node
// has (spec §3.2).
type ExprMeta struct {
	Meta
	resolvedType types.Type
}

func (m *ExprMeta) ResolvedType() types.Type        { return m.resolvedType }
func (m *ExprMeta) SetResolvedType(t types.Type)    { m.resolvedType = t }

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression; it additionally
// carries a resolved_type slot filled in by the type resolver.
type Expression interface {
	Node
	expressionNode()
	ResolvedType() types.Type
	SetResolvedType(types.Type)
}

// Decl is a Node that represents a declaration.
type Decl interface {
	Node
	declNode()
}

// TypeExpr is a Node that represents a type expression (as opposed to a
// value expression): simple name, qualified name, array-of, function-of,
// generic instantiation (spec §3.2).
type TypeExpr interface {
	Node
	typeExprNode()
}

// MarkErrors propagates contains_errors up from a child to its parent,
// satisfying the invariant "contains_errors on a node iff some descendant is
// an ErrorNode" (spec §8.8).
func MarkErrors(parent Node, child Node) {
	if child == nil {
		return
	}
	if child.ContainsErrors() {
		parent.markContainsErrors()
	}
}

// Arena owns every node allocated while parsing one compilation unit. Nodes
// are never individually freed; the arena lives for the compilation (spec
// §3.2, §5).
type Arena struct {
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{}
}

// Keep records a node in the arena and returns it unchanged, for call-site
// brevity: `return a.Keep(&ast.IfStmt{...})`.
func (a *Arena) Keep(n Node) Node {
	a.nodes = append(a.nodes, n)
	return n
}

func (a *Arena) Len() int { return len(a.nodes) }
