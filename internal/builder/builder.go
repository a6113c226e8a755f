// Package builder walks a parsed AST and populates a symbols.Table: every
// scope-introducing construct pushes/pops a Scope, every declaration
// defines a Symbol, and every node is stamped with its ContainingScope
// (spec §4.4). It implements ast.Visitor directly, grounded on the
// teacher's tree-walking evaluator/printer shape (one Visit method per
// node kind, descending into children explicitly).
package builder

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/types"
)

// Builder implements ast.Visitor, threading a symbols.Table through the
// traversal.
type Builder struct {
	ast.BaseVisitor
	table    *symbols.Table
	registry *types.Registry
	sink     *diagnostics.Sink
}

// New creates a Builder over a fresh symbols.Table backed by registry.
func New(registry *types.Registry, sink *diagnostics.Sink) *Builder {
	return &Builder{table: symbols.NewTable(registry, sink), registry: registry, sink: sink}
}

// Table exposes the built scope tree for the resolver.
func (b *Builder) Table() *symbols.Table { return b.table }

// Build runs the builder pass over a compilation unit (spec §4.4).
func Build(unit *ast.CompilationUnit, registry *types.Registry, sink *diagnostics.Sink) *symbols.Table {
	b := New(registry, sink)
	unit.Accept(b)
	return b.table
}

// stamp records the current scope on a node (spec §4.4 "every node is
// stamped with containing_scope as it is visited").
func (b *Builder) stamp(n ast.Node) {
	if n == nil {
		return
	}
	n.SetContainingScope(b.table.CurrentHandle())
}

// seedType returns a fresh Unresolved type carrying hints the resolver
// needs to later pin it down (spec §4.4 "type seeding rule").
func (b *Builder) seedType(typeExpr, initializer, body, getterExpr ast.Node) types.Type {
	hints := &types.InferenceHints{DefiningScope: b.table.CurrentHandle()}
	if typeExpr != nil {
		hints.TypeExpr = typeExpr
	}
	if initializer != nil {
		hints.Initializer = initializer
	}
	if body != nil {
		hints.Body = body
	}
	if getterExpr != nil {
		hints.GetterExpr = getterExpr
	}
	return b.registry.Fresh(hints)
}

func (b *Builder) VisitCompilationUnit(n *ast.CompilationUnit) {
	b.stamp(n)
	for _, u := range n.Usings {
		u.Accept(b)
	}
	for _, ns := range n.Namespaces {
		ns.Accept(b)
	}
	for _, d := range n.Decls {
		d.Accept(b)
	}
}

func (b *Builder) VisitUsingDirective(n *ast.UsingDirective) { b.stamp(n) }

func (b *Builder) VisitNamespaceDecl(n *ast.NamespaceDecl) {
	b.stamp(n)
	name := joinDotted(n.QualifiedName)
	b.table.EnterNamespace(name, n)
	for _, d := range n.Decls {
		d.Accept(b)
	}
	b.table.ExitScope()
}

func (b *Builder) VisitTypeDecl(n *ast.TypeDecl) {
	b.stamp(n)
	b.table.EnterType(n.Name, n.Access, n.Modifiers, n)
	if n.BaseType != nil {
		n.BaseType.Accept(b)
	}
	for _, m := range n.Members {
		m.Accept(b)
	}
	b.table.ExitScope()
}

func (b *Builder) VisitEnumDecl(n *ast.EnumDecl) {
	b.stamp(n)
	b.table.EnterEnum(n.Name, n.Access, n)
	for _, c := range n.Cases {
		c.Accept(b)
	}
	for _, m := range n.Members {
		m.Accept(b)
	}
	b.table.ExitScope()
}

func (b *Builder) VisitEnumCaseDecl(n *ast.EnumCaseDecl) {
	b.stamp(n)
	var associated []types.Type
	for _, te := range n.AssociatedTypes {
		te.Accept(b)
		associated = append(associated, b.seedType(te, nil, nil, nil))
	}
	b.table.DefineEnumCase(n.Name, associated, n)
}

func (b *Builder) VisitFunctionDecl(n *ast.FunctionDecl) {
	b.stamp(n)
	b.table.EnterFunction(n.Name, n.Access, n.Modifiers, n)
	for _, param := range n.Params {
		param.Accept(b)
	}
	if n.ReturnType != nil {
		n.ReturnType.Accept(b)
	}
	funcSym := b.table.LookupHandle(b.table.CurrentHandle()).Symbol
	if funcSym != nil {
		funcSym.Type = b.seedType(n.ReturnType, nil, n.Body, nil)
	}
	if n.Body != nil {
		n.Body.Accept(b)
	}
	b.table.ExitScope()
}

func (b *Builder) VisitConstructorDecl(n *ast.ConstructorDecl) {
	b.stamp(n)
	b.table.EnterFunction("new", n.Access, n.Modifiers, n)
	for _, param := range n.Params {
		param.Accept(b)
	}
	if n.Body != nil {
		n.Body.Accept(b)
	}
	b.table.ExitScope()
}

func (b *Builder) VisitParameterDecl(n *ast.ParameterDecl) {
	b.stamp(n)
	if n.TypeRef != nil {
		n.TypeRef.Accept(b)
	}
	if n.DefaultValue != nil {
		n.DefaultValue.Accept(b)
	}
	typ := b.seedType(n.TypeRef, n.DefaultValue, nil, nil)
	b.table.DefineParameter(n.Name, typ, n.Modifiers, n)
}

func (b *Builder) VisitVariableDecl(n *ast.VariableDecl) {
	b.stamp(n)
	if n.TypeRef != nil {
		n.TypeRef.Accept(b)
	}
	if n.Initializer != nil {
		n.Initializer.Accept(b)
	}
	typ := b.seedType(n.TypeRef, n.Initializer, nil, nil)
	if n.IsField {
		b.table.DefineField(n.Name, typ, n.Access, n.Modifiers, n)
	} else {
		b.table.DefineVariable(n.Name, typ, n.Modifiers, n)
	}
}

func (b *Builder) VisitPropertyDecl(n *ast.PropertyDecl) {
	b.stamp(n)
	if n.TypeRef != nil {
		n.TypeRef.Accept(b)
	}
	if n.Initializer != nil {
		n.Initializer.Accept(b)
	}
	typ := b.seedType(n.TypeRef, n.Initializer, nil, n.GetterExpr)
	b.table.DefineProperty(n.Name, typ, n.Access, n.Modifiers, n.HasGetter, n.HasSetter, n)

	if n.GetterBody != nil || n.GetterExpr != nil {
		b.table.EnterBlock("get")
		if n.GetterExpr != nil {
			n.GetterExpr.Accept(b)
		}
		if n.GetterBody != nil {
			n.GetterBody.Accept(b)
		}
		b.table.ExitScope()
	}
	if n.SetterBody != nil {
		b.table.EnterBlock("set")
		b.table.DefineParameter("value", typ, 0, n)
		n.SetterBody.Accept(b)
		b.table.ExitScope()
	}
}

func (b *Builder) VisitBlockStmt(n *ast.BlockStmt) {
	b.table.EnterBlock("")
	b.stamp(n)
	for _, s := range n.Stmts {
		s.Accept(b)
	}
	b.table.ExitScope()
}

func (b *Builder) VisitExpressionStmt(n *ast.ExpressionStmt) {
	b.stamp(n)
	n.Expr.Accept(b)
}

func (b *Builder) VisitIfStmt(n *ast.IfStmt) {
	b.stamp(n)
	n.Cond.Accept(b)
	n.Then.Accept(b)
	if n.Else != nil {
		n.Else.Accept(b)
	}
}

func (b *Builder) VisitWhileStmt(n *ast.WhileStmt) {
	b.stamp(n)
	n.Cond.Accept(b)
	n.Body.Accept(b)
}

func (b *Builder) VisitForStmt(n *ast.ForStmt) {
	b.table.EnterBlock("for")
	b.stamp(n)
	if n.Init != nil {
		n.Init.Accept(b)
	}
	if n.Cond != nil {
		n.Cond.Accept(b)
	}
	if n.Step != nil {
		n.Step.Accept(b)
	}
	n.Body.Accept(b)
	b.table.ExitScope()
}

func (b *Builder) VisitForInStmt(n *ast.ForInStmt) {
	b.table.EnterBlock("for-in")
	b.stamp(n)
	n.Iterable.Accept(b)
	elemType := b.registry.Fresh(&types.InferenceHints{DefiningScope: b.table.CurrentHandle(), Initializer: n.Iterable})
	b.table.DefineVariable(n.VarName, elemType, 0, n)
	if n.AtName != "" {
		idxType, _ := b.registry.Primitive("i32")
		b.table.DefineVariable(n.AtName, idxType, 0, n)
	}
	n.Body.Accept(b)
	b.table.ExitScope()
}

func (b *Builder) VisitReturnStmt(n *ast.ReturnStmt) {
	b.stamp(n)
	if n.Value != nil {
		n.Value.Accept(b)
	}
}

func (b *Builder) VisitBreakStmt(n *ast.BreakStmt)       { b.stamp(n) }
func (b *Builder) VisitContinueStmt(n *ast.ContinueStmt) { b.stamp(n) }
func (b *Builder) VisitEmptyStmt(n *ast.EmptyStmt)       { b.stamp(n) }

func (b *Builder) VisitIntegerLiteral(n *ast.IntegerLiteral) { b.stamp(n) }
func (b *Builder) VisitFloatLiteral(n *ast.FloatLiteral)     { b.stamp(n) }
func (b *Builder) VisitDoubleLiteral(n *ast.DoubleLiteral)   { b.stamp(n) }
func (b *Builder) VisitBoolLiteral(n *ast.BoolLiteral)       { b.stamp(n) }
func (b *Builder) VisitStringLiteral(n *ast.StringLiteral)   { b.stamp(n) }
func (b *Builder) VisitCharLiteral(n *ast.CharLiteral)       { b.stamp(n) }
func (b *Builder) VisitThisExpr(n *ast.ThisExpr)             { b.stamp(n) }

// VisitNameExpr only stamps the node's containing scope. Name lookup is
// deferred entirely to the resolver (spec §4.4 "Nothing else in this pass
// resolves names or types"; §4.5.3 NameExpr): this single top-down walk
// visits a scope's statements in order, so a forward reference to a
// sibling declared later (e.g. a function calling another function defined
// after it) would spuriously fail to resolve if looked up now, before the
// later sibling is even in the scope's member map.
func (b *Builder) VisitNameExpr(n *ast.NameExpr) {
	b.stamp(n)
}

func (b *Builder) VisitBinaryExpr(n *ast.BinaryExpr) {
	b.stamp(n)
	n.Left.Accept(b)
	n.Right.Accept(b)
}

func (b *Builder) VisitUnaryExpr(n *ast.UnaryExpr) {
	b.stamp(n)
	n.Operand.Accept(b)
}

func (b *Builder) VisitAssignmentExpr(n *ast.AssignmentExpr) {
	b.stamp(n)
	n.Target.Accept(b)
	n.Value.Accept(b)
}

func (b *Builder) VisitCallExpr(n *ast.CallExpr) {
	b.stamp(n)
	n.Callee.Accept(b)
	for _, a := range n.Args {
		a.Accept(b)
	}
}

func (b *Builder) VisitMemberAccessExpr(n *ast.MemberAccessExpr) {
	b.stamp(n)
	n.Object.Accept(b)
}

func (b *Builder) VisitIndexerExpr(n *ast.IndexerExpr) {
	b.stamp(n)
	n.Object.Accept(b)
	n.Index.Accept(b)
}

func (b *Builder) VisitParenExpr(n *ast.ParenExpr) {
	b.stamp(n)
	n.Inner.Accept(b)
}

func (b *Builder) VisitNewExpr(n *ast.NewExpr) {
	b.stamp(n)
	n.TypeRef.Accept(b)
	for _, a := range n.Args {
		a.Accept(b)
	}
}

func (b *Builder) VisitCastExpr(n *ast.CastExpr) {
	b.stamp(n)
	n.Operand.Accept(b)
	n.TypeRef.Accept(b)
}

func (b *Builder) VisitConditionalExpr(n *ast.ConditionalExpr) {
	b.stamp(n)
	n.Cond.Accept(b)
	n.Then.Accept(b)
	n.Else.Accept(b)
}

func (b *Builder) VisitRangeExpr(n *ast.RangeExpr) {
	b.stamp(n)
	if n.Start != nil {
		n.Start.Accept(b)
	}
	if n.End != nil {
		n.End.Accept(b)
	}
	if n.Step != nil {
		n.Step.Accept(b)
	}
}

func (b *Builder) VisitArrayLiteralExpr(n *ast.ArrayLiteralExpr) {
	b.stamp(n)
	for _, e := range n.Elements {
		e.Accept(b)
	}
}

func (b *Builder) VisitMatchExpr(n *ast.MatchExpr) {
	b.stamp(n)
	n.Subject.Accept(b)
	for _, arm := range n.Arms {
		arm.Pattern.Accept(b)
		if arm.Guard != nil {
			arm.Guard.Accept(b)
		}
		arm.Result.Accept(b)
	}
}

func (b *Builder) VisitTypedIdentifierExpr(n *ast.TypedIdentifierExpr) { b.stamp(n) }

func (b *Builder) VisitSimpleNameTypeExpr(n *ast.SimpleNameTypeExpr)     { b.stamp(n) }
func (b *Builder) VisitQualifiedNameTypeExpr(n *ast.QualifiedNameTypeExpr) { b.stamp(n) }

func (b *Builder) VisitArrayTypeExpr(n *ast.ArrayTypeExpr) {
	b.stamp(n)
	n.Element.Accept(b)
}

func (b *Builder) VisitFunctionTypeExpr(n *ast.FunctionTypeExpr) {
	b.stamp(n)
	for _, p := range n.Params {
		p.Accept(b)
	}
	n.Return.Accept(b)
}

func (b *Builder) VisitGenericInstantiationTypeExpr(n *ast.GenericInstantiationTypeExpr) {
	b.stamp(n)
	n.Generic.Accept(b)
	for _, a := range n.Arguments {
		a.Accept(b)
	}
}

func (b *Builder) VisitErrorNode(n *ast.ErrorNode) { b.stamp(n) }

func joinDotted(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
