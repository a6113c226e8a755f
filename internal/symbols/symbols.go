// Package symbols implements the scope tree and symbol table (spec §3.4,
// §4.2): a persistent hierarchy of namespace/type/function/block scopes
// whose members are symbols, some of which are themselves scopes.
package symbols

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/types"
)

// ScopeKind tags what a Scope represents (spec §3.4).
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeNamespace
	ScopeType
	ScopeFunction
	ScopeBlock
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeNamespace:
		return "namespace"
	case ScopeType:
		return "type"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Scope is a node in the scope tree: a kind, a possibly-empty name, a weak
// parent link (by handle, never cyclic-owning), a member map, and an
// optional owning symbol (spec §3.4, §9).
type Scope struct {
	Handle  handle.Handle
	Kind    ScopeKind
	Name    string
	Outer   handle.Handle // handle.Invalid for the Global root
	Members map[string]handle.Handle
	Owner   handle.Handle // owning Symbol's handle, handle.Invalid if none
}

// SymbolKind tags which variant of the Symbol payload is populated (spec
// §3.4, §9 "Symbol tagged-variant").
type SymbolKind int

const (
	SymNamespace SymbolKind = iota
	SymType
	SymEnum
	SymEnumCase
	SymFunction
	SymFunctionGroup
	SymVariable
	SymParameter
	SymProperty
)

func (k SymbolKind) String() string {
	names := [...]string{"namespace", "type", "enum", "enum_case", "function",
		"function_group", "variable", "parameter", "property"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Symbol is the tagged-variant payload the spec describes in §3.4/§9: one
// struct carrying the union of every capability a symbol kind might need,
// tagged by Kind. Capability accessors (IsScope, IsTyped) stand in for the
// "as_scope"/"as_typed" optional views the design notes call for.
type Symbol struct {
	Handle         handle.Handle
	Name           string
	Kind           SymbolKind
	Access         ast.AccessLevel
	Modifiers      ast.Modifiers
	Type           types.Type // set once resolved; nil/Unresolved until then
	Resolved       bool       // true once mark_symbol_resolved has run
	DefinitionNode ast.Node

	// Scope-capable symbols (Namespace, Type, Enum, Function) point at
	// their owned Scope. handle.Invalid otherwise. Property symbols do not
	// own a scope; their getter and setter bodies are plain block scopes.
	OwnedScope handle.Handle

	// FunctionGroup only: every overload sharing this name in this scope.
	Overloads []handle.Handle

	// EnumCase only: the types of the case's associated values, if any.
	AssociatedTypes []types.Type

	// Property only: whether a getter/setter accessor was declared.
	HasGetter bool
	HasSetter bool
}

// IsScope reports whether this symbol doubles as a scope (spec §3.4).
func (s *Symbol) IsScope() bool { return s.OwnedScope != handle.Invalid }

// IsTyped reports whether this symbol carries a Type slot that
// participates in resolution (Variable, Parameter, Property, Function).
// Namespaces, types and enum cases do not; an enum case keeps its payload
// types in AssociatedTypes instead.
func (s *Symbol) IsTyped() bool {
	switch s.Kind {
	case SymVariable, SymParameter, SymProperty, SymFunction:
		return true
	default:
		return false
	}
}

// Entry is one slot of the flat table a handle.Handle indexes into (spec §9
// "indices into a flat scope table are the cleanest lowering"). Exactly one
// of Scope/Symbol is non-nil for a plain scope or plain symbol; both are
// non-nil for a symbol that is also a scope (Namespace/Type/Enum/Function).
type Entry struct {
	Handle handle.Handle
	Scope  *Scope
	Symbol *Symbol
}
