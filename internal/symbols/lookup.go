package symbols

import (
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/types"
)

// LookupLocal searches only the given scope's own member map (spec §3.4
// "lookup_local does not recurse").
func (t *Table) LookupLocal(scope handle.Handle, name string) (*Entry, bool) {
	sc := t.LookupHandle(scope).Scope
	if sc == nil {
		return nil, false
	}
	h, ok := sc.Members[name]
	if !ok {
		return nil, false
	}
	return t.LookupHandle(h), true
}

// Lookup searches the given scope, then walks the outer chain (spec §3.4
// "lookup first searches local, then walks parent chain").
func (t *Table) Lookup(scope handle.Handle, name string) (*Entry, bool) {
	for h := scope; h != handle.Invalid; {
		sc := t.LookupHandle(h).Scope
		if sc == nil {
			return nil, false
		}
		if mh, ok := sc.Members[name]; ok {
			return t.LookupHandle(mh), true
		}
		h = sc.Outer
	}
	return nil, false
}

// EnclosingFunction walks the scope chain from `from` outward to find the
// nearest enclosing Function symbol (spec §4.5.3 ReturnStmt).
func (t *Table) EnclosingFunction(from handle.Handle) (*Symbol, bool) {
	for h := from; h != handle.Invalid; {
		e := t.LookupHandle(h)
		if e == nil || e.Scope == nil {
			return nil, false
		}
		if e.Scope.Kind == ScopeFunction {
			return e.Symbol, true
		}
		h = e.Scope.Outer
	}
	return nil, false
}

// EnclosingTypeLike walks the scope chain from `from` outward to find the
// nearest enclosing Type/Enum symbol (spec §4.5.3 ThisExpr).
func (t *Table) EnclosingTypeLike(from handle.Handle) (*Symbol, bool) {
	for h := from; h != handle.Invalid; {
		e := t.LookupHandle(h)
		if e == nil || e.Scope == nil {
			return nil, false
		}
		if e.Scope.Kind == ScopeType {
			return e.Symbol, true
		}
		h = e.Scope.Outer
	}
	return nil, false
}

// ResolveTypeName implements `resolve_type_name` (spec §4.2): scope-
// sensitive name resolution using the registry for primitives and the
// scope tree for user types. qualifiedName is a dotted name as written in
// source (e.g. "Point" or "Shapes.Point").
func (t *Table) ResolveTypeName(qualifiedName string, fromScope handle.Handle) (types.Type, bool) {
	lookupQualified := func(full string) (types.Type, bool) {
		return t.resolveDottedType(full, fromScope)
	}
	currentNS := t.namespacePathOf(fromScope)
	return t.registry.ResolveName(qualifiedName, currentNS, lookupQualified)
}

func (t *Table) namespacePathOf(scope handle.Handle) string {
	path := ""
	chain := []handle.Handle{}
	for h := scope; h != handle.Invalid; {
		e := t.LookupHandle(h)
		if e == nil || e.Scope == nil {
			break
		}
		chain = append(chain, h)
		h = e.Scope.Outer
	}
	for i := len(chain) - 1; i >= 0; i-- {
		sc := t.LookupHandle(chain[i]).Scope
		if sc.Kind == ScopeNamespace {
			path = qualify(path, sc.Name)
		}
	}
	return path
}

// resolveDottedType resolves a dotted name by walking the scope chain from
// fromScope outward for the first segment, then descending into member
// scopes for the rest.
func (t *Table) resolveDottedType(full string, fromScope handle.Handle) (types.Type, bool) {
	segments := splitDotted(full)
	if len(segments) == 0 {
		return nil, false
	}
	entry, ok := t.Lookup(fromScope, segments[0])
	if !ok {
		return nil, false
	}
	for _, seg := range segments[1:] {
		if entry.Scope == nil {
			return nil, false
		}
		mh, ok := entry.Scope.Members[seg]
		if !ok {
			return nil, false
		}
		entry = t.LookupHandle(mh)
	}
	if entry.Symbol == nil || entry.Symbol.Type == nil {
		if entry.Symbol != nil && entry.Symbol.OwnedScope != handle.Invalid {
			return t.registry.Defined(entry.Handle, full), true
		}
		return nil, false
	}
	return entry.Symbol.Type, true
}

func splitDotted(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}
