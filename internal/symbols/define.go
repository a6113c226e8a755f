package symbols

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/types"
)

// DefineVariable adds a local variable symbol to the current scope (spec
// §4.2). typ is typically a fresh Unresolved seeded by the builder.
func (t *Table) DefineVariable(name string, typ types.Type, mods ast.Modifiers, def ast.Node) handle.Handle {
	sym := &Symbol{Name: name, Kind: SymVariable, Type: typ, Modifiers: mods, DefinitionNode: def}
	h := t.alloc(&Entry{Symbol: sym})
	t.defineInCurrent(name, h, def)
	return h
}

// DefineField adds a field symbol (a Variable payload with field-specific
// access/modifiers) to the current (Type) scope.
func (t *Table) DefineField(name string, typ types.Type, access ast.AccessLevel, mods ast.Modifiers, def ast.Node) handle.Handle {
	sym := &Symbol{Name: name, Kind: SymVariable, Type: typ, Access: access, Modifiers: mods, DefinitionNode: def}
	h := t.alloc(&Entry{Symbol: sym})
	t.defineInCurrent(name, h, def)
	return h
}

// DefineParameter adds a parameter symbol to the current (Function) scope.
func (t *Table) DefineParameter(name string, typ types.Type, mods ast.Modifiers, def ast.Node) handle.Handle {
	sym := &Symbol{Name: name, Kind: SymParameter, Type: typ, Modifiers: mods, DefinitionNode: def}
	h := t.alloc(&Entry{Symbol: sym})
	t.defineInCurrent(name, h, def)
	return h
}

// DefineProperty adds a property symbol, recording which accessors it has.
func (t *Table) DefineProperty(name string, typ types.Type, access ast.AccessLevel, mods ast.Modifiers, hasGetter, hasSetter bool, def ast.Node) handle.Handle {
	sym := &Symbol{Name: name, Kind: SymProperty, Type: typ, Access: access, Modifiers: mods, HasGetter: hasGetter, HasSetter: hasSetter, DefinitionNode: def}
	h := t.alloc(&Entry{Symbol: sym})
	t.defineInCurrent(name, h, def)
	return h
}

// DefineEnumCase adds a case to the current (Enum) scope, with its
// associated-value types if any (spec §4.2).
func (t *Table) DefineEnumCase(name string, associated []types.Type, def ast.Node) handle.Handle {
	sym := &Symbol{Name: name, Kind: SymEnumCase, AssociatedTypes: associated, DefinitionNode: def}
	h := t.alloc(&Entry{Symbol: sym})
	t.defineInCurrent(name, h, def)
	return h
}

// MarkSymbolResolved records that a previously Unresolved symbol type has
// been substituted with a concrete type (spec §4.2 "mark_symbol_resolved").
func (t *Table) MarkSymbolResolved(h handle.Handle, resolved types.Type) {
	e := t.LookupHandle(h)
	if e == nil || e.Symbol == nil {
		return
	}
	e.Symbol.Type = resolved
	e.Symbol.Resolved = true
}
