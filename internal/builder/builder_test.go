package builder_test

import (
	"testing"

	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/builder"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/handle"
	"github.com/myre-lang/myre/internal/lexer"
	"github.com/myre-lang/myre/internal/parser"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

func build(t *testing.T, src string) (*ast.CompilationUnit, *symbols.Table, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	unit := parser.Parse("test.myre", token.NewSliceStream(lexer.Tokenize(src)), sink)
	registry := types.NewRegistry()
	table := builder.Build(unit, registry, sink)
	return unit, table, sink
}

func TestBuilderDefinesTopLevelFunction(t *testing.T) {
	_, table, sink := build(t, "fn add(i32 a, i32 b) -> i32 { return a + b; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	entry, ok := table.LookupLocal(table.CurrentHandle(), "add")
	if !ok {
		t.Fatalf("expected 'add' defined in the global scope")
	}
	if entry.Symbol.Kind != symbols.SymFunction {
		t.Fatalf("Kind = %v, want SymFunction", entry.Symbol.Kind)
	}
	if !entry.Symbol.IsScope() {
		t.Fatalf("expected the function symbol to also own a scope")
	}
}

// Name lookup is the resolver's job (spec §4.4, §4.5.3), not the builder's:
// a plain build leaves every NameExpr's ResolvedSymbol at handle.Invalid,
// whether or not the name actually exists, so that a forward reference to a
// sibling declared later in the same scope is never penalized for visit
// order.
func TestBuilderLeavesNameResolutionToResolver(t *testing.T) {
	unit, _, sink := build(t, "fn add(i32 a, i32 b) -> i32 { return a + b; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	fn := unit.Decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	left := bin.Left.(*ast.NameExpr)
	right := bin.Right.(*ast.NameExpr)
	if left.ResolvedSymbol != handle.Invalid {
		t.Fatalf("expected 'a' to stay unresolved until the resolver pass")
	}
	if right.ResolvedSymbol != handle.Invalid {
		t.Fatalf("expected 'b' to stay unresolved until the resolver pass")
	}
}

func TestBuilderDoesNotDiagnoseUndefinedIdentifiers(t *testing.T) {
	_, _, sink := build(t, "fn f() { return undefinedThing; }")
	if sink.HasErrors() {
		t.Fatalf("builder should defer identifier resolution to the resolver, got %v", sink.All())
	}
}

func TestBuilderFunctionGroupCoalescing(t *testing.T) {
	_, table, sink := build(t, "fn f(i32 a) {}\nfn f(f64 a) {}")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	entry, ok := table.LookupLocal(table.CurrentHandle(), "f")
	if !ok {
		t.Fatalf("expected 'f' defined in the global scope")
	}
	if entry.Symbol.Kind != symbols.SymFunctionGroup {
		t.Fatalf("Kind = %v, want SymFunctionGroup after a second declaration", entry.Symbol.Kind)
	}
	if len(entry.Symbol.Overloads) != 2 {
		t.Fatalf("expected 2 overloads, got %d", len(entry.Symbol.Overloads))
	}
}

func TestBuilderNamespaceReentryMergesMembers(t *testing.T) {
	_, table, sink := build(t, "namespace Foo { fn a() {} }\nnamespace Foo { fn b() {} }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	nsEntry, ok := table.LookupLocal(table.CurrentHandle(), "Foo")
	if !ok {
		t.Fatalf("expected namespace 'Foo' defined at global scope")
	}
	if len(nsEntry.Scope.Members) != 2 {
		t.Fatalf("expected both 'a' and 'b' merged into one namespace scope, got %d members", len(nsEntry.Scope.Members))
	}
}

func TestBuilderTypeFieldScope(t *testing.T) {
	_, table, sink := build(t, "type Point { i32 X; i32 Y; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	typeEntry, ok := table.LookupLocal(table.CurrentHandle(), "Point")
	if !ok {
		t.Fatalf("expected type 'Point' defined at global scope")
	}
	if _, ok := typeEntry.Scope.Members["X"]; !ok {
		t.Fatalf("expected field 'X' in the type's scope")
	}
	if _, ok := typeEntry.Scope.Members["Y"]; !ok {
		t.Fatalf("expected field 'Y' in the type's scope")
	}
}
