// Package resolver implements the fixed-point, unification-based type
// resolver (spec §4.5): it turns the builder's seeded tree of Unresolved
// placeholders into a fully type-annotated one, grounded on the same
// tree-walking Visitor shape the builder uses.
package resolver

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/config"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

// Resolver implements ast.Visitor for one fixed-point pass over the tree. A
// fresh Resolver is created per pass but the substitution map is threaded
// across passes by Resolve.
type Resolver struct {
	ast.BaseVisitor
	table      *symbols.Table
	registry   *types.Registry
	sink       *diagnostics.Sink
	subst      types.Subst
	progressed bool // true if this pass bound at least one Unresolved variable
}

// Resolve runs the fixed-point loop over unit (spec §4.5.2), then a final
// canonicalization pass that rewrites every expression's resolved type to
// its path-compressed representative and reports any type still Unresolved.
func Resolve(unit *ast.CompilationUnit, table *symbols.Table, registry *types.Registry, sink *diagnostics.Sink, cfg config.CompilerConfig) {
	subst := make(types.Subst)
	maxPasses := cfg.MaxFixedPointPasses
	if maxPasses <= 0 {
		maxPasses = config.MaxFixedPointPasses
	}
	prevErrCount := len(sink.All())
	for pass := 0; pass < maxPasses; pass++ {
		r := &Resolver{table: table, registry: registry, sink: sink, subst: subst}
		unit.Accept(r)
		errCount := len(sink.All())
		if !r.progressed && errCount == prevErrCount {
			break
		}
		prevErrCount = errCount
	}
	finalize(unit, table, subst, sink)
}

// unify implements the solver core (spec §4.5.1) by delegating the actual
// bind/compare mechanics to types.Unify and layering diagnostic reporting
// and the pass's progress flag on top. It returns the representative the
// caller should treat as the unified type.
func (r *Resolver) unify(t1, t2 types.Type, tok token.Token, contextLabel string) types.Type {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	before := len(r.subst)
	ok := types.Unify(t1, t2, r.subst)
	if len(r.subst) != before {
		r.progressed = true
	}
	root1 := types.ApplySubstitution(t1, r.subst)
	if !ok {
		root2 := types.ApplySubstitution(t2, r.subst)
		r.sink.Add(diagnostics.New(diagnostics.ErrT003TypeMismatch, tok,
			"cannot unify %q with %q in %s", root1.String(), root2.String(), contextLabel))
	}
	return root1
}

// ensureFresh lazily seeds a placeholder resolved type on an expression that
// is blocked on something the resolver cannot yet (or ever) determine, e.g.
// an ambiguous call. It never allocates a second time for the same node, so
// it never itself drives r.progressed.
func (r *Resolver) ensureFresh(n ast.Expression) types.Type {
	if existing := n.ResolvedType(); existing != nil {
		return existing
	}
	t := r.registry.Fresh(nil)
	n.SetResolvedType(t)
	return t
}

func isUnresolvedType(t types.Type) bool {
	_, ok := t.(*types.Unresolved)
	return ok
}

// resolveSymbolFromHints implements the VariableDecl/ParameterDecl/
// PropertyDecl hint chain of spec §4.5.3: explicit type expression, then
// initializer/getter expression. Functions consume their own chain in
// VisitFunctionDecl since "body-return-inference" needs ReturnStmt, not a
// single expression.
func (r *Resolver) resolveSymbolFromHints(entry *symbols.Entry, typeExpr ast.TypeExpr, initializer, getterExpr ast.Expression, fromScope handle.Handle) {
	sym := entry.Symbol
	root := types.ApplySubstitution(sym.Type, r.subst)
	u, stillUnresolved := root.(*types.Unresolved)
	if !stillUnresolved {
		return
	}
	var hint types.Type
	if typeExpr != nil {
		hint = r.resolveTypeExprToType(typeExpr, fromScope)
	}
	tok := token.Token{}
	if sym.DefinitionNode != nil {
		tok = sym.DefinitionNode.GetToken()
	}
	// An explicit type annotation still has to agree with the initializer;
	// it doesn't just win by being listed first in the hint chain.
	if hint != nil && initializer != nil && initializer.ResolvedType() != nil {
		r.unify(hint, initializer.ResolvedType(), tok, "variable initialization of "+sym.Name)
	}
	if hint == nil && initializer != nil {
		hint = initializer.ResolvedType()
	}
	if hint == nil && getterExpr != nil {
		hint = getterExpr.ResolvedType()
	}
	if hint == nil {
		return
	}
	r.unify(u, hint, tok, "declaration of "+sym.Name)
	if resolved := types.ApplySubstitution(sym.Type, r.subst); !isUnresolvedType(resolved) {
		r.table.MarkSymbolResolved(sym.Handle, resolved)
	}
}

// resolveTypeExprToType resolves a type-expression node to a canonical
// Type, diagnosing an unknown name (spec §4.5.3 "resolve_ast_type_expr").
func (r *Resolver) resolveTypeExprToType(te ast.TypeExpr, fromScope handle.Handle) types.Type {
	switch t := te.(type) {
	case *ast.SimpleNameTypeExpr:
		typ, ok := r.table.ResolveTypeName(t.Name, fromScope)
		if !ok {
			r.sink.Add(diagnostics.New(diagnostics.ErrT001IdentifierNotFound, t.Token, "type %q is not defined", t.Name))
			return nil
		}
		return typ
	case *ast.QualifiedNameTypeExpr:
		name := joinDotted(t.Parts)
		typ, ok := r.table.ResolveTypeName(name, fromScope)
		if !ok {
			r.sink.Add(diagnostics.New(diagnostics.ErrT001IdentifierNotFound, t.Token, "type %q is not defined", name))
			return nil
		}
		return typ
	case *ast.ArrayTypeExpr:
		elem := r.resolveTypeExprToType(t.Element, fromScope)
		if elem == nil {
			return nil
		}
		return r.registry.Array(elem, t.Rank, nil)
	case *ast.FunctionTypeExpr:
		params := make([]types.Type, 0, len(t.Params))
		for _, p := range t.Params {
			pt := r.resolveTypeExprToType(p, fromScope)
			if pt == nil {
				return nil
			}
			params = append(params, pt)
		}
		var ret types.Type
		if t.Return != nil {
			ret = r.resolveTypeExprToType(t.Return, fromScope)
			if ret == nil {
				return nil
			}
		}
		return r.registry.Function(ret, params)
	case *ast.GenericInstantiationTypeExpr:
		base := r.resolveTypeExprToType(t.Generic, fromScope)
		def, ok := base.(*types.DefinedType)
		if !ok {
			r.sink.Add(diagnostics.New(diagnostics.ErrT001IdentifierNotFound, t.Token, "%q is not a generic type", t.Generic.TokenLiteral()))
			return nil
		}
		args := make([]types.Type, 0, len(t.Arguments))
		for _, a := range t.Arguments {
			at := r.resolveTypeExprToType(a, fromScope)
			if at == nil {
				return nil
			}
			args = append(args, at)
		}
		return r.registry.Generic(def.Definition, def.FullName, args)
	default:
		return nil
	}
}

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
