package types

import (
	"fmt"

	"github.com/myre-lang/myre/internal/handle"
)

// Registry is the canonical factory for Type values (spec §4.1). Two calls
// that would produce structurally equal non-Unresolved types return the
// identical *Type instance; Fresh always returns a distinct one.
type Registry struct {
	primitives map[PrimitiveTag]*Primitive
	byAlias    map[string]*Primitive
	byFullName map[string]*DefinedType // primitives are also reachable by System.* full name
	arrays     map[string]*Array
	functions  map[string]*Function
	defined    map[string]*DefinedType
	generics   map[string]*GenericInstance
	nextFresh  int
}

// NewRegistry builds a registry with the primitive table installed.
func NewRegistry() *Registry {
	r := &Registry{
		primitives: make(map[PrimitiveTag]*Primitive),
		byAlias:    make(map[string]*Primitive),
		byFullName: make(map[string]*DefinedType),
		arrays:     make(map[string]*Array),
		functions:  make(map[string]*Function),
		defined:    make(map[string]*DefinedType),
		generics:   make(map[string]*GenericInstance),
	}
	for tag, alias := range primitiveNames {
		p := &Primitive{Tag: tag}
		r.primitives[tag] = p
		r.byAlias[alias] = p
		// Every primitive is also installed as a TypeDefinition keyed by its
		// System-style full name (spec §4.1), so `System.Int32` resolves the
		// same underlying identity as `i32` for member lookup purposes.
		full := systemNames[tag]
		r.byFullName[full] = &DefinedType{FullName: full}
		r.byAlias[full] = p
	}
	return r
}

// Primitive looks up a primitive by its alias (`i32`) or System-style full
// name (`System.Int32`).
func (r *Registry) Primitive(alias string) (Type, bool) {
	p, ok := r.byAlias[alias]
	if !ok {
		return nil, false
	}
	return p, true
}

// PrimitiveByTag returns the canonical Primitive for a tag.
func (r *Registry) PrimitiveByTag(tag PrimitiveTag) Type {
	return r.primitives[tag]
}

// Array returns the canonical array type of element/rank, caching by
// `"array:<element.name>[<rank>]"` (spec §4.1).
func (r *Registry) Array(element Type, rank int, fixedSizes []int) Type {
	key := fmt.Sprintf("array:%s[%d]", element.String(), rank)
	if a, ok := r.arrays[key]; ok {
		return a
	}
	a := &Array{Element: element, Rank: rank, FixedSizes: fixedSizes}
	r.arrays[key] = a
	return a
}

// Function returns the canonical function type, caching by
// `"func:(<p1>,<p2>)-><ret>"` (spec §4.1).
func (r *Registry) Function(ret Type, params []Type) Type {
	key := "func:(" + joinTypeNames(params) + ")->" + nameOf(ret)
	if f, ok := r.functions[key]; ok {
		return f
	}
	f := &Function{Params: params, Return: ret}
	r.functions[key] = f
	return f
}

// Defined returns the canonical DefinedType for a declared symbol, caching
// by `"defined:<full_name>"` (spec §4.1).
func (r *Registry) Defined(sym handle.Handle, fullName string) Type {
	key := "defined:" + fullName
	if d, ok := r.defined[key]; ok {
		return d
	}
	d := &DefinedType{Definition: sym, FullName: fullName}
	r.defined[key] = d
	return d
}

// Generic returns the canonical GenericInstance, caching by
// `"<name><arg1,arg2,...>"` (spec §4.1).
func (r *Registry) Generic(def handle.Handle, fullName string, args []Type) Type {
	key := fullName + "<" + joinTypeNames(args) + ">"
	if g, ok := r.generics[key]; ok {
		return g
	}
	g := &GenericInstance{Generic: def, FullName: fullName, Arguments: args}
	r.generics[key] = g
	return g
}

// Fresh returns a brand-new Unresolved type; it is never cached, so two
// calls are never equal even in identical contexts (spec §4.1, §8.5).
func (r *Registry) Fresh(hints *InferenceHints) *Unresolved {
	r.nextFresh++
	return &Unresolved{ID: r.nextFresh, Hints: hints}
}

// ResolveName implements `resolve_name` (spec §4.1): primitive table, then
// `<current_namespace>.<name>`, then global `name`, then `System.<name>`.
// lookupQualified is supplied by the caller (the symbol table) since this
// package has no notion of scopes.
func (r *Registry) ResolveName(name, currentNamespace string, lookupQualified func(qualified string) (Type, bool)) (Type, bool) {
	if t, ok := r.Primitive(name); ok {
		return t, true
	}
	if currentNamespace != "" {
		if t, ok := lookupQualified(currentNamespace + "." + name); ok {
			return t, true
		}
	}
	if t, ok := lookupQualified(name); ok {
		return t, true
	}
	if t, ok := lookupQualified("System." + name); ok {
		return t, true
	}
	return nil, false
}

func nameOf(t Type) string {
	if t == nil {
		return "void"
	}
	return t.String()
}

func joinTypeNames(ts []Type) string {
	s := ""
	for i, t := range ts {
		if i > 0 {
			s += ","
		}
		s += nameOf(t)
	}
	return s
}
