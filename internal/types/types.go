// Package types implements the canonical Type values the compiler works
// over: a fixed primitive table, compound-type caches, and a union-find
// substitution used by the unification-based resolver (spec §3.3, §4.1).
package types

import (
	"fmt"
	"strings"

	"github.com/myre-lang/myre/internal/handle"
)

// Type is the interface every type value satisfies. Structural equality
// implies pointer equality for every variant except Unresolved, which is
// always fresh (spec §3.3 "canonicalization invariant").
type Type interface {
	String() string
	typeNode()
}

// PrimitiveTag enumerates the built-in scalar kinds (spec §3.3).
type PrimitiveTag int

const (
	I8 PrimitiveTag = iota
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
	Bool
	Char
	String_
	Void
	Range_
)

var primitiveNames = map[PrimitiveTag]string{
	I8: "i8", U8: "u8", I16: "i16", U16: "u16", I32: "i32", U32: "u32",
	I64: "i64", U64: "u64", F32: "f32", F64: "f64", Bool: "bool",
	Char: "char", String_: "string", Void: "void", Range_: "range",
}

// systemNames maps primitive aliases to their System-style full name (spec
// §3.3 "i32 <-> System.Int32"), so member lookup works uniformly whether a
// value was typed by its alias or its qualified name.
var systemNames = map[PrimitiveTag]string{
	I8: "System.SByte", U8: "System.Byte", I16: "System.Int16", U16: "System.UInt16",
	I32: "System.Int32", U32: "System.UInt32", I64: "System.Int64", U64: "System.UInt64",
	F32: "System.Single", F64: "System.Double", Bool: "System.Boolean",
	Char: "System.Char", String_: "System.String", Void: "System.Void", Range_: "System.Range",
}

// Primitive is a scalar built-in type.
type Primitive struct {
	Tag PrimitiveTag
}

func (p *Primitive) typeNode()      {}
func (p *Primitive) String() string { return primitiveNames[p.Tag] }

// Array is `element[]` with the given rank; FixedSizes holds a per-dimension
// fixed bound (0 meaning unspecified), matching the source's
// `[int] with 0 = unspecified` encoding.
type Array struct {
	Element    Type
	Rank       int
	FixedSizes []int
}

func (a *Array) typeNode() {}
func (a *Array) String() string {
	dims := strings.Repeat(",", a.Rank-1)
	return fmt.Sprintf("%s[%s]", a.Element.String(), dims)
}

// DefinedType references a declared class/struct/enum. The definition is
// named by handle + full name rather than a live *symbols.Symbol so this
// package never has to import symbols (spec §9 "shared-pointer cycles").
type DefinedType struct {
	Definition handle.Handle
	FullName   string
}

func (d *DefinedType) typeNode()      {}
func (d *DefinedType) String() string { return d.FullName }

// GenericInstance is `Generic<Arg1, Arg2, ...>`.
type GenericInstance struct {
	Generic   handle.Handle
	FullName  string
	Arguments []Type
}

func (g *GenericInstance) typeNode() {}
func (g *GenericInstance) String() string {
	args := make([]string, len(g.Arguments))
	for i, a := range g.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", g.FullName, strings.Join(args, ", "))
}

// Function is `(p1, p2, ...) -> return`.
type Function struct {
	Params []Type
	Return Type
}

func (f *Function) typeNode() {}
func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), ret)
}

// Unresolved is a unification variable: a fresh unknown produced by the
// builder and bound (or reported as unresolvable) by the resolver. Hints
// are opaque (`any`) because they may reference AST nodes or a scope
// handle, and this package must not import ast or symbols to name them
// (spec §9).
type Unresolved struct {
	ID    int
	Hints *InferenceHints
}

func (u *Unresolved) typeNode()      {}
func (u *Unresolved) String() string { return fmt.Sprintf("'t%d", u.ID) }

// InferenceHints records what the builder saw at the declaration site so
// the resolver can fall back through the hint chain in order (spec §4.4
// "type-seeding rule", §4.5.3): explicit type expression, initializer
// expression, function body (return-inference), or defining scope.
// Fields are `any` to avoid an import cycle with ast/symbols/handle's
// consumers; the resolver is the only reader and knows the concrete types.
type InferenceHints struct {
	TypeExpr     any // ast.TypeExpr, if an explicit TypeRef was written
	Initializer  any // ast.Expression, if a `= value` initializer was written
	Body         any // *ast.BlockStmt, for function return-type / getter inference
	GetterExpr   any // ast.Expression, for `=> expr` property getters
	DefiningScope handle.Handle
}

// Subst is the union-find substitution map from an Unresolved variable to
// its current representative (spec §4.5.1).
type Subst map[*Unresolved]Type

// ApplySubstitution walks t's substitution chain to its root, compressing
// the path as it goes, and returns the root. Non-Unresolved types are
// returned unchanged (spec §4.5.1, §8.6 "substitution idempotence").
func ApplySubstitution(t Type, s Subst) Type {
	u, ok := t.(*Unresolved)
	if !ok {
		return t
	}
	chain := []*Unresolved{u}
	cur := u
	for {
		next, bound := s[cur]
		if !bound {
			break
		}
		nu, isUnresolved := next.(*Unresolved)
		if !isUnresolved {
			for _, c := range chain {
				s[c] = next
			}
			return next
		}
		if nu == u {
			// self-cycle guard; should not occur, but never loop forever
			return nu
		}
		cur = nu
		chain = append(chain, cur)
	}
	root := Type(cur)
	for _, c := range chain[:len(chain)-1] {
		s[c] = root
	}
	return root
}
