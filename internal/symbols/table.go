package symbols

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

// Table owns the whole scope tree and symbol set for one compilation unit
// (spec §3.4, §4.2). It never shrinks once built.
type Table struct {
	entries   []*Entry
	stack     []handle.Handle
	registry  *types.Registry
	sink      *diagnostics.Sink
	// namespaces indexes every namespace scope by its fully-qualified dotted
	// name so re-entry finds and reopens the existing one (spec §4.2
	// "Re-entry into a namespace merges members rather than shadowing").
	namespaces map[string]handle.Handle
	sawFileScopedNamespace bool
	declCount int // number of top-level declarations seen before the first namespace, for the nesting check
}

// NewTable creates a fresh table with just the Global scope pushed.
func NewTable(registry *types.Registry, sink *diagnostics.Sink) *Table {
	t := &Table{
		registry:   registry,
		sink:       sink,
		namespaces: make(map[string]handle.Handle),
	}
	root := &Scope{Kind: ScopeGlobal, Members: make(map[string]handle.Handle), Outer: handle.Invalid}
	h := t.alloc(&Entry{Scope: root})
	root.Handle = h
	t.stack = []handle.Handle{h}
	return t
}

func (t *Table) alloc(e *Entry) handle.Handle {
	t.entries = append(t.entries, e)
	h := handle.Handle(len(t.entries))
	e.Handle = h
	if e.Scope != nil {
		e.Scope.Handle = h
	}
	if e.Symbol != nil {
		e.Symbol.Handle = h
	}
	return h
}

// LookupHandle is the O(1) indirection from a stable handle stored on an
// AST node back to its Entry (spec §4.2 "lookup_handle").
func (t *Table) LookupHandle(h handle.Handle) *Entry {
	if h == handle.Invalid || int(h) > len(t.entries) {
		return nil
	}
	return t.entries[h-1]
}

// AllSymbols returns every defined Symbol in the table, in definition order.
// Used by the resolver's final pass to sweep for symbols whose type never
// left Unresolved (spec §4.5.2 "final pass").
func (t *Table) AllSymbols() []*Symbol {
	out := make([]*Symbol, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Symbol != nil {
			out = append(out, e.Symbol)
		}
	}
	return out
}

// Current returns the scope at the top of the stack.
func (t *Table) Current() *Scope {
	return t.LookupHandle(t.stack[len(t.stack)-1]).Scope
}

// CurrentHandle returns the handle of the scope at the top of the stack.
func (t *Table) CurrentHandle() handle.Handle {
	return t.stack[len(t.stack)-1]
}

// Depth reports the current stack depth, for the scope-balance invariant
// (spec §4.2, §8.3).
func (t *Table) Depth() int { return len(t.stack) }

func (t *Table) push(h handle.Handle) { t.stack = append(t.stack, h) }

// ExitScope pops the current scope. Popping the Global root is a
// programmer error and panics, matching the teacher's fail-fast stance on
// stack-discipline violations that indicate a builder bug rather than bad
// user input.
func (t *Table) ExitScope() {
	if len(t.stack) <= 1 {
		panic("symbols: ExitScope called with no scope left to pop")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// currentNamespacePath walks the scope stack outward-to-inward, joining
// every namespace scope's name into a dotted path.
func (t *Table) currentNamespacePath() string {
	path := ""
	for _, h := range t.stack {
		sc := t.LookupHandle(h).Scope
		if sc.Kind == ScopeNamespace {
			path = qualify(path, sc.Name)
		}
	}
	return path
}

// EnterNamespace pushes a namespace scope, creating it on first entry and
// reopening (merging members into) the existing one on re-entry (spec
// §4.2). def is the AST node to record as the defining site the first time.
func (t *Table) EnterNamespace(name string, def ast.Node) handle.Handle {
	full := qualify(t.currentNamespacePath(), name)
	if existing, ok := t.namespaces[full]; ok {
		t.push(existing)
		return existing
	}
	scope := &Scope{Kind: ScopeNamespace, Name: name, Outer: t.CurrentHandle(), Members: make(map[string]handle.Handle)}
	sym := &Symbol{Name: name, Kind: SymNamespace, DefinitionNode: def}
	h := t.alloc(&Entry{Scope: scope, Symbol: sym})
	scope.Owner = h
	sym.OwnedScope = h
	t.defineInCurrent(name, h, def)
	t.namespaces[full] = h
	t.push(h)
	return h
}

// EnterType pushes a Type (class/struct) scope, creating the owning Type
// symbol on first entry.
func (t *Table) EnterType(name string, access ast.AccessLevel, mods ast.Modifiers, def ast.Node) handle.Handle {
	scope := &Scope{Kind: ScopeType, Name: name, Outer: t.CurrentHandle(), Members: make(map[string]handle.Handle)}
	sym := &Symbol{Name: name, Kind: SymType, Access: access, Modifiers: mods, DefinitionNode: def}
	h := t.alloc(&Entry{Scope: scope, Symbol: sym})
	scope.Owner = h
	sym.OwnedScope = h
	sym.Type = t.registry.Defined(h, t.fullNameFor(name))
	t.defineInCurrent(name, h, def)
	t.push(h)
	return h
}

// EnterEnum pushes an Enum scope. Enums are TypeLikeSymbols for member
// lookup purposes (spec §9 "TypeLikeSymbol"), so they reuse ScopeType.
func (t *Table) EnterEnum(name string, access ast.AccessLevel, def ast.Node) handle.Handle {
	scope := &Scope{Kind: ScopeType, Name: name, Outer: t.CurrentHandle(), Members: make(map[string]handle.Handle)}
	sym := &Symbol{Name: name, Kind: SymEnum, Access: access, DefinitionNode: def}
	h := t.alloc(&Entry{Scope: scope, Symbol: sym})
	scope.Owner = h
	sym.OwnedScope = h
	sym.Type = t.registry.Defined(h, t.fullNameFor(name))
	t.defineInCurrent(name, h, def)
	t.push(h)
	return h
}

// EnterFunction pushes a Function scope, coalescing same-named
// declarations in the current scope into a FunctionGroup (spec §3.4, §4.2).
func (t *Table) EnterFunction(name string, access ast.AccessLevel, mods ast.Modifiers, def ast.Node) handle.Handle {
	scope := &Scope{Kind: ScopeFunction, Name: name, Outer: t.CurrentHandle(), Members: make(map[string]handle.Handle)}
	sym := &Symbol{Name: name, Kind: SymFunction, Access: access, Modifiers: mods, DefinitionNode: def}
	h := t.alloc(&Entry{Scope: scope, Symbol: sym})
	scope.Owner = h
	sym.OwnedScope = h

	cur := t.Current()
	if existingHandle, ok := cur.Members[name]; ok {
		existing := t.LookupHandle(existingHandle).Symbol
		switch {
		case existing != nil && existing.Kind == SymFunctionGroup:
			existing.Overloads = append(existing.Overloads, h)
		case existing != nil && existing.Kind == SymFunction:
			group := &Symbol{Name: name, Kind: SymFunctionGroup, Overloads: []handle.Handle{existingHandle, h}}
			gh := t.alloc(&Entry{Symbol: group})
			cur.Members[name] = gh
		default:
			t.sink.Add(diagnostics.New(diagnostics.ErrB001DuplicateSymbol, nodeToken(def), "a symbol named %q is already defined in this scope", name))
		}
	} else {
		cur.Members[name] = h
	}
	t.push(h)
	return h
}

// EnterBlock pushes an anonymous (or labeled) block scope.
func (t *Table) EnterBlock(label string) handle.Handle {
	scope := &Scope{Kind: ScopeBlock, Name: label, Outer: t.CurrentHandle(), Members: make(map[string]handle.Handle)}
	h := t.alloc(&Entry{Scope: scope})
	t.push(h)
	return h
}

func (t *Table) fullNameFor(name string) string {
	return qualify(t.currentNamespacePath(), name)
}

// defineInCurrent records name -> h in the current scope's member map,
// diagnosing a duplicate-definition error (not fatal) if the name already
// exists locally (spec §3.4 "define fails if the name already exists
// locally").
func (t *Table) defineInCurrent(name string, h handle.Handle, def ast.Node) {
	cur := t.Current()
	if _, exists := cur.Members[name]; exists {
		t.sink.Add(diagnostics.New(diagnostics.ErrB001DuplicateSymbol, nodeToken(def), "a symbol named %q is already defined in this scope", name))
		return
	}
	cur.Members[name] = h
}

func nodeToken(n ast.Node) token.Token {
	if n == nil {
		return token.Token{}
	}
	return n.GetToken()
}
