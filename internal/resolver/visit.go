package resolver

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

func (r *Resolver) VisitCompilationUnit(n *ast.CompilationUnit) {
	for _, ns := range n.Namespaces {
		ns.Accept(r)
	}
	for _, d := range n.Decls {
		d.Accept(r)
	}
}

func (r *Resolver) VisitNamespaceDecl(n *ast.NamespaceDecl) {
	for _, d := range n.Decls {
		d.Accept(r)
	}
}

func (r *Resolver) VisitTypeDecl(n *ast.TypeDecl) {
	for _, m := range n.Members {
		m.Accept(r)
	}
}

func (r *Resolver) VisitEnumDecl(n *ast.EnumDecl) {
	for _, c := range n.Cases {
		c.Accept(r)
	}
	for _, m := range n.Members {
		m.Accept(r)
	}
}

func (r *Resolver) VisitEnumCaseDecl(n *ast.EnumCaseDecl) {
	entry, ok := r.table.LookupLocal(n.ContainingScope(), n.Name)
	if !ok || entry.Symbol == nil {
		return
	}
	sym := entry.Symbol
	for i, te := range n.AssociatedTypes {
		if i >= len(sym.AssociatedTypes) {
			break
		}
		root := types.ApplySubstitution(sym.AssociatedTypes[i], r.subst)
		u, stillUnresolved := root.(*types.Unresolved)
		if !stillUnresolved {
			continue
		}
		if hint := r.resolveTypeExprToType(te, n.ContainingScope()); hint != nil {
			r.unify(u, hint, n.Token, "enum case associated type")
		}
	}
}

func (r *Resolver) VisitFunctionDecl(n *ast.FunctionDecl) {
	for _, p := range n.Params {
		p.Accept(r)
	}
	entry, ok := r.lookupFunctionEntry(n.ContainingScope(), n.Name, n)
	var funcSym *symbols.Symbol
	if ok {
		funcSym = entry.Symbol
	}
	if funcSym != nil && n.ReturnType != nil {
		if root := types.ApplySubstitution(funcSym.Type, r.subst); isUnresolvedType(root) {
			if hint := r.resolveTypeExprToType(n.ReturnType, n.ContainingScope()); hint != nil {
				r.unify(root.(*types.Unresolved), hint, n.Token, "declared return type")
			}
		}
	}
	if n.Body != nil {
		n.Body.Accept(r)
	}
	if funcSym == nil {
		return
	}
	if n.Body == nil {
		if root := types.ApplySubstitution(funcSym.Type, r.subst); isUnresolvedType(root) {
			voidType := r.registry.PrimitiveByTag(types.Void)
			r.unify(root.(*types.Unresolved), voidType, n.Token, "return type of body-less function")
		}
	}
	if root := types.ApplySubstitution(funcSym.Type, r.subst); !isUnresolvedType(root) {
		r.table.MarkSymbolResolved(funcSym.Handle, root)
	}
}

// lookupFunctionEntry finds the Entry for a specific FunctionDecl, resolving
// through a FunctionGroup by DefinitionNode identity when the name was
// coalesced (spec §3.4, §4.2).
func (r *Resolver) lookupFunctionEntry(scope handle.Handle, name string, def ast.Node) (*symbols.Entry, bool) {
	entry, ok := r.table.LookupLocal(scope, name)
	if !ok || entry.Symbol == nil {
		return nil, false
	}
	if entry.Symbol.Kind != symbols.SymFunctionGroup {
		return entry, true
	}
	for _, oh := range entry.Symbol.Overloads {
		oe := r.table.LookupHandle(oh)
		if oe != nil && oe.Symbol != nil && oe.Symbol.DefinitionNode == def {
			return oe, true
		}
	}
	return nil, false
}

func (r *Resolver) VisitConstructorDecl(n *ast.ConstructorDecl) {
	for _, p := range n.Params {
		p.Accept(r)
	}
	if n.Body != nil {
		n.Body.Accept(r)
	}
}

func (r *Resolver) VisitParameterDecl(n *ast.ParameterDecl) {
	if n.DefaultValue != nil {
		n.DefaultValue.Accept(r)
	}
	entry, ok := r.table.LookupLocal(n.ContainingScope(), n.Name)
	if !ok || entry.Symbol == nil {
		return
	}
	r.resolveSymbolFromHints(entry, n.TypeRef, n.DefaultValue, nil, n.ContainingScope())
}

func (r *Resolver) VisitVariableDecl(n *ast.VariableDecl) {
	if n.Initializer != nil {
		n.Initializer.Accept(r)
	}
	entry, ok := r.table.LookupLocal(n.ContainingScope(), n.Name)
	if !ok || entry.Symbol == nil {
		return
	}
	r.resolveSymbolFromHints(entry, n.TypeRef, n.Initializer, nil, n.ContainingScope())
}

func (r *Resolver) VisitPropertyDecl(n *ast.PropertyDecl) {
	if n.Initializer != nil {
		n.Initializer.Accept(r)
	}
	if n.GetterExpr != nil {
		n.GetterExpr.Accept(r)
	}
	if n.GetterBody != nil {
		n.GetterBody.Accept(r)
	}
	if n.SetterBody != nil {
		n.SetterBody.Accept(r)
	}
	entry, ok := r.table.LookupLocal(n.ContainingScope(), n.Name)
	if !ok || entry.Symbol == nil {
		return
	}
	r.resolveSymbolFromHints(entry, n.TypeRef, n.Initializer, n.GetterExpr, n.ContainingScope())
}

func (r *Resolver) VisitBlockStmt(n *ast.BlockStmt) {
	for _, s := range n.Stmts {
		s.Accept(r)
	}
}

func (r *Resolver) VisitExpressionStmt(n *ast.ExpressionStmt) {
	n.Expr.Accept(r)
}

func (r *Resolver) boolType() types.Type { return r.registry.PrimitiveByTag(types.Bool) }

func (r *Resolver) VisitIfStmt(n *ast.IfStmt) {
	n.Cond.Accept(r)
	r.unify(n.Cond.ResolvedType(), r.boolType(), n.Token, "if condition")
	n.Then.Accept(r)
	if n.Else != nil {
		n.Else.Accept(r)
	}
}

func (r *Resolver) VisitWhileStmt(n *ast.WhileStmt) {
	n.Cond.Accept(r)
	r.unify(n.Cond.ResolvedType(), r.boolType(), n.Token, "while condition")
	n.Body.Accept(r)
}

func (r *Resolver) VisitForStmt(n *ast.ForStmt) {
	if n.Init != nil {
		n.Init.Accept(r)
	}
	if n.Cond != nil {
		n.Cond.Accept(r)
		r.unify(n.Cond.ResolvedType(), r.boolType(), n.Token, "for condition")
	}
	if n.Step != nil {
		n.Step.Accept(r)
	}
	n.Body.Accept(r)
}

func (r *Resolver) VisitForInStmt(n *ast.ForInStmt) {
	n.Iterable.Accept(r)
	n.Body.Accept(r)
	forInScope := n.ContainingScope()
	entry, ok := r.table.LookupLocal(forInScope, n.VarName)
	if !ok || entry.Symbol == nil {
		return
	}
	root := types.ApplySubstitution(entry.Symbol.Type, r.subst)
	u, stillUnresolved := root.(*types.Unresolved)
	if !stillUnresolved {
		return
	}
	it := n.Iterable.ResolvedType()
	if it == nil {
		return
	}
	ir := types.ApplySubstitution(it, r.subst)
	var elemType types.Type
	switch v := ir.(type) {
	case *types.Array:
		elemType = v.Element
	case *types.Primitive:
		if v.Tag == types.Range_ {
			elemType = r.registry.PrimitiveByTag(types.I32)
		}
	}
	if elemType != nil {
		r.unify(u, elemType, n.Token, "for-in element")
	}
}

func (r *Resolver) VisitReturnStmt(n *ast.ReturnStmt) {
	if n.Value != nil {
		n.Value.Accept(r)
	}
	fnSym, ok := r.table.EnclosingFunction(n.ContainingScope())
	if !ok {
		return
	}
	var valueType types.Type
	if n.Value != nil {
		valueType = n.Value.ResolvedType()
	} else {
		valueType = r.registry.PrimitiveByTag(types.Void)
	}
	if valueType == nil {
		return
	}
	r.unify(valueType, fnSym.Type, n.Token, "return")
	if root := types.ApplySubstitution(fnSym.Type, r.subst); !isUnresolvedType(root) {
		r.table.MarkSymbolResolved(fnSym.Handle, root)
	}
}

func (r *Resolver) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.registry.PrimitiveByTag(types.I32))
	}
}

func (r *Resolver) VisitFloatLiteral(n *ast.FloatLiteral) {
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.registry.PrimitiveByTag(types.F32))
	}
}

func (r *Resolver) VisitDoubleLiteral(n *ast.DoubleLiteral) {
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.registry.PrimitiveByTag(types.F64))
	}
}

func (r *Resolver) VisitBoolLiteral(n *ast.BoolLiteral) {
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.boolType())
	}
}

func (r *Resolver) VisitStringLiteral(n *ast.StringLiteral) {
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.registry.PrimitiveByTag(types.String_))
	}
}

func (r *Resolver) VisitCharLiteral(n *ast.CharLiteral) {
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.registry.PrimitiveByTag(types.Char))
	}
}

func (r *Resolver) VisitThisExpr(n *ast.ThisExpr) {
	if n.ResolvedType() != nil {
		return
	}
	sym, ok := r.table.EnclosingTypeLike(n.ContainingScope())
	if !ok {
		r.sink.Add(diagnostics.New(diagnostics.ErrT001IdentifierNotFound, n.Token, "'this' used outside of a type member"))
		r.ensureFresh(n)
		return
	}
	n.SetResolvedType(sym.Type)
}

// VisitNameExpr owns all identifier lookup (spec §4.4, §4.5.3): the builder
// only stamps NameExpr nodes with their containing scope, so name
// resolution is attempted here, against the builder's now-complete scope
// tree, and retried every fixed-point pass until it succeeds or the pass
// loop gives up.
func (r *Resolver) VisitNameExpr(n *ast.NameExpr) {
	if n.ResolvedSymbol == handle.Invalid {
		entry, ok := r.table.Lookup(n.ContainingScope(), n.Name)
		if !ok {
			if n.ResolvedType() == nil {
				r.sink.Add(diagnostics.New(diagnostics.ErrT001IdentifierNotFound, n.Token, "identifier %q is not defined", n.Name))
				r.ensureFresh(n)
			}
			return
		}
		n.ResolvedSymbol = entry.Handle
		r.progressed = true
	}
	entry := r.table.LookupHandle(n.ResolvedSymbol)
	if entry == nil || entry.Symbol == nil {
		return
	}
	if !entry.Symbol.IsTyped() {
		r.sink.Add(diagnostics.New(diagnostics.ErrT002NotAValue, n.Token, "%q is not a value", n.Name))
		return
	}
	if entry.Symbol.Type != nil {
		n.SetResolvedType(types.ApplySubstitution(entry.Symbol.Type, r.subst))
	}
}

func (r *Resolver) VisitBinaryExpr(n *ast.BinaryExpr) {
	n.Left.Accept(r)
	n.Right.Accept(r)
	lt, rt := n.Left.ResolvedType(), n.Right.ResolvedType()
	if lt == nil || rt == nil {
		return
	}
	if isComparisonOperator(n.Op) {
		r.unify(lt, rt, n.Token, "comparison")
		n.SetResolvedType(r.boolType())
		return
	}
	result := r.unify(lt, rt, n.Token, "binary operator")
	n.SetResolvedType(result)
}

func (r *Resolver) VisitUnaryExpr(n *ast.UnaryExpr) {
	n.Operand.Accept(r)
	ot := n.Operand.ResolvedType()
	switch n.Op {
	case token.BANG:
		r.unify(ot, r.boolType(), n.Token, "logical not")
		n.SetResolvedType(r.boolType())
	case token.AMP, token.STAR:
		r.sink.Add(diagnostics.New(diagnostics.ErrT008NotImplemented, n.Token, "address-of/dereference is not implemented"))
		r.ensureFresh(n)
	default:
		if ot != nil {
			n.SetResolvedType(ot)
		}
	}
}

func (r *Resolver) VisitAssignmentExpr(n *ast.AssignmentExpr) {
	n.Target.Accept(r)
	n.Value.Accept(r)
	tt, vt := n.Target.ResolvedType(), n.Value.ResolvedType()
	if tt == nil || vt == nil {
		return
	}
	n.SetResolvedType(r.unify(tt, vt, n.Token, "assignment"))
}

func (r *Resolver) VisitCallExpr(n *ast.CallExpr) {
	n.Callee.Accept(r)
	for _, a := range n.Args {
		a.Accept(r)
	}
	switch callee := n.Callee.(type) {
	case *ast.NameExpr:
		r.resolveNameCall(n, callee)
	case *ast.MemberAccessExpr:
		if callee.ResolvedMember == handle.Invalid {
			return
		}
		n.ResolvedCallee = callee.ResolvedMember
		if callee.ResolvedType() != nil {
			n.SetResolvedType(callee.ResolvedType())
		}
	default:
		if n.ResolvedType() == nil {
			r.sink.Add(diagnostics.New(diagnostics.ErrT004NotCallable, n.Token, "expression is not callable"))
			r.ensureFresh(n)
		}
	}
}

func (r *Resolver) resolveNameCall(n *ast.CallExpr, callee *ast.NameExpr) {
	if callee.ResolvedSymbol == handle.Invalid {
		return
	}
	entry := r.table.LookupHandle(callee.ResolvedSymbol)
	if entry == nil || entry.Symbol == nil {
		return
	}
	switch entry.Symbol.Kind {
	case symbols.SymFunctionGroup:
		if n.ResolvedType() == nil {
			r.sink.Add(diagnostics.New(diagnostics.ErrT009AmbiguousCall, n.Token, "ambiguous call to overloaded %q", callee.Name))
			r.ensureFresh(n)
		}
	case symbols.SymFunction:
		n.ResolvedCallee = callee.ResolvedSymbol
		if entry.Symbol.Type != nil {
			n.SetResolvedType(types.ApplySubstitution(entry.Symbol.Type, r.subst))
		}
	default:
		if n.ResolvedType() == nil {
			r.sink.Add(diagnostics.New(diagnostics.ErrT004NotCallable, n.Token, "%q is not callable", callee.Name))
			r.ensureFresh(n)
		}
	}
}

func (r *Resolver) VisitMemberAccessExpr(n *ast.MemberAccessExpr) {
	n.Object.Accept(r)
	objType := n.Object.ResolvedType()
	if objType == nil {
		return
	}
	objRoot := types.ApplySubstitution(objType, r.subst)
	def, ok := objRoot.(*types.DefinedType)
	if !ok {
		if isUnresolvedType(objRoot) {
			return
		}
		if n.ResolvedType() == nil {
			r.sink.Add(diagnostics.New(diagnostics.ErrT005NoSuchMember, n.Token, "%q has no members", objRoot.String()))
			r.ensureFresh(n)
		}
		return
	}
	memberEntry, ok := r.table.LookupLocal(def.Definition, n.Member)
	if !ok || memberEntry.Symbol == nil {
		if n.ResolvedType() == nil {
			r.sink.Add(diagnostics.New(diagnostics.ErrT005NoSuchMember, n.Token, "%q has no member %q", def.FullName, n.Member))
			r.ensureFresh(n)
		}
		return
	}
	n.ResolvedMember = memberEntry.Handle
	if memberEntry.Symbol.Type != nil {
		n.SetResolvedType(types.ApplySubstitution(memberEntry.Symbol.Type, r.subst))
	}
}

func (r *Resolver) VisitIndexerExpr(n *ast.IndexerExpr) {
	n.Object.Accept(r)
	n.Index.Accept(r)
	objType := n.Object.ResolvedType()
	if objType == nil {
		return
	}
	objRoot := types.ApplySubstitution(objType, r.subst)
	arr, ok := objRoot.(*types.Array)
	if !ok {
		if isUnresolvedType(objRoot) {
			return
		}
		if n.ResolvedType() == nil {
			r.sink.Add(diagnostics.New(diagnostics.ErrT006IndexingNonArray, n.Token, "cannot index into %q", objRoot.String()))
			r.ensureFresh(n)
		}
		return
	}
	if it := n.Index.ResolvedType(); it != nil {
		r.unify(it, r.registry.PrimitiveByTag(types.I32), n.Token, "index")
	}
	n.SetResolvedType(arr.Element)
}

func (r *Resolver) VisitParenExpr(n *ast.ParenExpr) {
	n.Inner.Accept(r)
	if it := n.Inner.ResolvedType(); it != nil {
		n.SetResolvedType(it)
	}
}

func (r *Resolver) VisitNewExpr(n *ast.NewExpr) {
	for _, a := range n.Args {
		a.Accept(r)
	}
	if n.ResolvedType() != nil {
		return
	}
	if t := r.resolveTypeExprToType(n.TypeRef, n.ContainingScope()); t != nil {
		n.SetResolvedType(t)
	}
}

func (r *Resolver) VisitCastExpr(n *ast.CastExpr) {
	n.Operand.Accept(r)
	if n.ResolvedType() != nil {
		return
	}
	if t := r.resolveTypeExprToType(n.TypeRef, n.ContainingScope()); t != nil {
		n.SetResolvedType(t)
	}
}

func (r *Resolver) VisitConditionalExpr(n *ast.ConditionalExpr) {
	n.Cond.Accept(r)
	n.Then.Accept(r)
	n.Else.Accept(r)
	if ct := n.Cond.ResolvedType(); ct != nil {
		r.unify(ct, r.boolType(), n.Token, "ternary condition")
	}
	tt, et := n.Then.ResolvedType(), n.Else.ResolvedType()
	if tt == nil || et == nil {
		return
	}
	n.SetResolvedType(r.unify(tt, et, n.Token, "ternary branches"))
}

func (r *Resolver) VisitRangeExpr(n *ast.RangeExpr) {
	if n.Start != nil {
		n.Start.Accept(r)
	}
	if n.End != nil {
		n.End.Accept(r)
	}
	if n.Step != nil {
		n.Step.Accept(r)
	}
	if n.ResolvedType() == nil {
		n.SetResolvedType(r.registry.PrimitiveByTag(types.Range_))
	}
}

func (r *Resolver) VisitArrayLiteralExpr(n *ast.ArrayLiteralExpr) {
	for _, e := range n.Elements {
		e.Accept(r)
	}
	if len(n.Elements) == 0 {
		return
	}
	var elemType types.Type
	for _, e := range n.Elements {
		et := e.ResolvedType()
		if et == nil {
			return
		}
		if elemType == nil {
			elemType = et
			continue
		}
		elemType = r.unify(elemType, et, n.Token, "array literal elements")
	}
	n.SetResolvedType(r.registry.Array(elemType, 1, []int{len(n.Elements)}))
}

func (r *Resolver) VisitMatchExpr(n *ast.MatchExpr) {
	n.Subject.Accept(r)
	var resultType types.Type
	for i := range n.Arms {
		arm := &n.Arms[i]
		arm.Pattern.Accept(r)
		if arm.Guard != nil {
			arm.Guard.Accept(r)
			if gt := arm.Guard.ResolvedType(); gt != nil {
				r.unify(gt, r.boolType(), n.Token, "match guard")
			}
		}
		arm.Result.Accept(r)
		rt := arm.Result.ResolvedType()
		if rt == nil {
			continue
		}
		if resultType == nil {
			resultType = rt
			continue
		}
		resultType = r.unify(resultType, rt, n.Token, "match arms")
	}
	if resultType != nil {
		n.SetResolvedType(resultType)
	}
}

func isComparisonOperator(op token.Kind) bool {
	switch op {
	case token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE:
		return true
	default:
		return false
	}
}
