package resolver

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/types"
)

// finalizer walks the finished tree once, rewriting every expression's
// resolved type to its path-compressed representative and reporting any
// that are still Unresolved at fixed point (spec §4.5.2 "final pass").
type finalizer struct {
	ast.BaseVisitor
	subst types.Subst
	sink  *diagnostics.Sink
}

func finalize(unit *ast.CompilationUnit, table *symbols.Table, subst types.Subst, sink *diagnostics.Sink) {
	f := &finalizer{subst: subst, sink: sink}
	unit.Accept(f)
	for _, sym := range table.AllSymbols() {
		if sym.Type == nil {
			continue
		}
		root := types.ApplySubstitution(sym.Type, subst)
		sym.Type = root
		if _, stillUnresolved := root.(*types.Unresolved); stillUnresolved {
			if sym.DefinitionNode == nil {
				continue
			}
			sink.Add(diagnostics.New(diagnostics.ErrT007CannotInferType, sym.DefinitionNode.GetToken(),
				"could not infer type for %q", sym.Name))
		}
	}
}

// canonicalize rewrites n's resolved type in place and reports it if it is
// still Unresolved.
func (f *finalizer) canonicalize(n ast.Expression) {
	t := n.ResolvedType()
	if t == nil {
		return
	}
	root := types.ApplySubstitution(t, f.subst)
	n.SetResolvedType(root)
	if _, stillUnresolved := root.(*types.Unresolved); stillUnresolved {
		f.sink.Add(diagnostics.New(diagnostics.ErrT007CannotInferType, n.GetToken(),
			"could not infer type for expression"))
	}
}

func (f *finalizer) VisitCompilationUnit(n *ast.CompilationUnit) {
	for _, ns := range n.Namespaces {
		ns.Accept(f)
	}
	for _, d := range n.Decls {
		d.Accept(f)
	}
}

func (f *finalizer) VisitNamespaceDecl(n *ast.NamespaceDecl) {
	for _, d := range n.Decls {
		d.Accept(f)
	}
}

func (f *finalizer) VisitTypeDecl(n *ast.TypeDecl) {
	for _, m := range n.Members {
		m.Accept(f)
	}
}

func (f *finalizer) VisitEnumDecl(n *ast.EnumDecl) {
	for _, m := range n.Members {
		m.Accept(f)
	}
}

func (f *finalizer) VisitFunctionDecl(n *ast.FunctionDecl) {
	for _, p := range n.Params {
		p.Accept(f)
	}
	if n.Body != nil {
		n.Body.Accept(f)
	}
}

func (f *finalizer) VisitConstructorDecl(n *ast.ConstructorDecl) {
	for _, p := range n.Params {
		p.Accept(f)
	}
	if n.Body != nil {
		n.Body.Accept(f)
	}
}

func (f *finalizer) VisitParameterDecl(n *ast.ParameterDecl) {
	if n.DefaultValue != nil {
		n.DefaultValue.Accept(f)
	}
}

func (f *finalizer) VisitVariableDecl(n *ast.VariableDecl) {
	if n.Initializer != nil {
		n.Initializer.Accept(f)
	}
}

func (f *finalizer) VisitPropertyDecl(n *ast.PropertyDecl) {
	if n.Initializer != nil {
		n.Initializer.Accept(f)
	}
	if n.GetterExpr != nil {
		n.GetterExpr.Accept(f)
	}
	if n.GetterBody != nil {
		n.GetterBody.Accept(f)
	}
	if n.SetterBody != nil {
		n.SetterBody.Accept(f)
	}
}

func (f *finalizer) VisitBlockStmt(n *ast.BlockStmt) {
	for _, s := range n.Stmts {
		s.Accept(f)
	}
}

func (f *finalizer) VisitExpressionStmt(n *ast.ExpressionStmt) { n.Expr.Accept(f) }

func (f *finalizer) VisitIfStmt(n *ast.IfStmt) {
	n.Cond.Accept(f)
	n.Then.Accept(f)
	if n.Else != nil {
		n.Else.Accept(f)
	}
}

func (f *finalizer) VisitWhileStmt(n *ast.WhileStmt) {
	n.Cond.Accept(f)
	n.Body.Accept(f)
}

func (f *finalizer) VisitForStmt(n *ast.ForStmt) {
	if n.Init != nil {
		n.Init.Accept(f)
	}
	if n.Cond != nil {
		n.Cond.Accept(f)
	}
	if n.Step != nil {
		n.Step.Accept(f)
	}
	n.Body.Accept(f)
}

func (f *finalizer) VisitForInStmt(n *ast.ForInStmt) {
	n.Iterable.Accept(f)
	n.Body.Accept(f)
}

func (f *finalizer) VisitReturnStmt(n *ast.ReturnStmt) {
	if n.Value != nil {
		n.Value.Accept(f)
	}
}

func (f *finalizer) VisitIntegerLiteral(n *ast.IntegerLiteral) { f.canonicalize(n) }
func (f *finalizer) VisitFloatLiteral(n *ast.FloatLiteral)     { f.canonicalize(n) }
func (f *finalizer) VisitDoubleLiteral(n *ast.DoubleLiteral)   { f.canonicalize(n) }
func (f *finalizer) VisitBoolLiteral(n *ast.BoolLiteral)       { f.canonicalize(n) }
func (f *finalizer) VisitStringLiteral(n *ast.StringLiteral)   { f.canonicalize(n) }
func (f *finalizer) VisitCharLiteral(n *ast.CharLiteral)       { f.canonicalize(n) }
func (f *finalizer) VisitThisExpr(n *ast.ThisExpr)             { f.canonicalize(n) }
func (f *finalizer) VisitNameExpr(n *ast.NameExpr)             { f.canonicalize(n) }

func (f *finalizer) VisitBinaryExpr(n *ast.BinaryExpr) {
	n.Left.Accept(f)
	n.Right.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitUnaryExpr(n *ast.UnaryExpr) {
	n.Operand.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitAssignmentExpr(n *ast.AssignmentExpr) {
	n.Target.Accept(f)
	n.Value.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitCallExpr(n *ast.CallExpr) {
	n.Callee.Accept(f)
	for _, a := range n.Args {
		a.Accept(f)
	}
	f.canonicalize(n)
}

func (f *finalizer) VisitMemberAccessExpr(n *ast.MemberAccessExpr) {
	n.Object.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitIndexerExpr(n *ast.IndexerExpr) {
	n.Object.Accept(f)
	n.Index.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitParenExpr(n *ast.ParenExpr) {
	n.Inner.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitNewExpr(n *ast.NewExpr) {
	for _, a := range n.Args {
		a.Accept(f)
	}
	f.canonicalize(n)
}

func (f *finalizer) VisitCastExpr(n *ast.CastExpr) {
	n.Operand.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitConditionalExpr(n *ast.ConditionalExpr) {
	n.Cond.Accept(f)
	n.Then.Accept(f)
	n.Else.Accept(f)
	f.canonicalize(n)
}

func (f *finalizer) VisitRangeExpr(n *ast.RangeExpr) {
	if n.Start != nil {
		n.Start.Accept(f)
	}
	if n.End != nil {
		n.End.Accept(f)
	}
	if n.Step != nil {
		n.Step.Accept(f)
	}
	f.canonicalize(n)
}

func (f *finalizer) VisitArrayLiteralExpr(n *ast.ArrayLiteralExpr) {
	for _, e := range n.Elements {
		e.Accept(f)
	}
	f.canonicalize(n)
}

func (f *finalizer) VisitMatchExpr(n *ast.MatchExpr) {
	n.Subject.Accept(f)
	for i := range n.Arms {
		arm := &n.Arms[i]
		arm.Pattern.Accept(f)
		if arm.Guard != nil {
			arm.Guard.Accept(f)
		}
		arm.Result.Accept(f)
	}
	f.canonicalize(n)
}
