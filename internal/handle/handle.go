// Package handle defines the opaque, stable identifier type shared by the
// AST, the type registry, and the symbol table, so that none of those three
// packages need to import each other just to name "a slot in the scope
// table" (spec §9: "indices into a flat scope table are the cleanest
// lowering").
package handle

// Handle is a stable index into the symbol/scope table, safe to store on AST
// nodes and inside Type values across mutations (spec GLOSSARY "Symbol
// handle").
type Handle uint32

// Invalid is the zero value, meaning "not yet assigned".
const Invalid Handle = 0
