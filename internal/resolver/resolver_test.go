package resolver_test

import (
	"testing"

	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/builder"
	"github.com/myre-lang/myre/internal/config"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/lexer"
	"github.com/myre-lang/myre/internal/parser"
	"github.com/myre-lang/myre/internal/resolver"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

func resolve(t *testing.T, src string) (*ast.CompilationUnit, *symbols.Table, *types.Registry, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	unit := parser.Parse("test.myre", token.NewSliceStream(lexer.Tokenize(src)), sink)
	registry := types.NewRegistry()
	table := builder.Build(unit, registry, sink)
	resolver.Resolve(unit, table, registry, sink, config.Default())
	return unit, table, registry, sink
}

func TestResolverInfersVariableFromInitializer(t *testing.T) {
	unit, table, _, sink := resolve(t, "fn f() { i32 dummy = 0; var x = 1; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	fn := unit.Decls[0].(*ast.FunctionDecl)
	varDecl := fn.Body.Stmts[1].(*ast.VariableDecl)
	entry, ok := table.LookupLocal(varDecl.ContainingScope(), "x")
	if !ok {
		t.Fatalf("expected 'x' to be defined in the function body scope")
	}
	if entry.Symbol.Type == nil || entry.Symbol.Type.String() != "i32" {
		t.Fatalf("inferred type of x = %v, want i32", entry.Symbol.Type)
	}
}

func TestResolverAnnotatesLiteralsAndBinaryExpr(t *testing.T) {
	unit, _, _, sink := resolve(t, "fn f() -> i32 { return 1 + 2; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	fn := unit.Decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	if bin.ResolvedType() == nil {
		t.Fatalf("expected BinaryExpr to have a resolved type")
	}
	if bin.ResolvedType().String() != "i32" {
		t.Fatalf("ResolvedType() = %q, want i32", bin.ResolvedType().String())
	}
}

func TestResolverInfersFunctionReturnTypeFromReturnStatements(t *testing.T) {
	unit, table, _, sink := resolve(t, "fn f() { return 1; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	fn := unit.Decls[0].(*ast.FunctionDecl)
	entry, ok := table.LookupLocal(fn.ContainingScope(), "f")
	if !ok {
		t.Fatalf("expected 'f' defined at global scope")
	}
	if entry.Symbol.Type == nil || entry.Symbol.Type.String() != "i32" {
		t.Fatalf("inferred return type = %v, want i32", entry.Symbol.Type)
	}
}

func TestResolverDefaultsVoidReturnForBodylessFunction(t *testing.T) {
	_, table, _, sink := resolve(t, "fn f();")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	entry, ok := table.LookupLocal(table.CurrentHandle(), "f")
	if !ok {
		t.Fatalf("expected 'f' defined at global scope")
	}
	if entry.Symbol.Type == nil || entry.Symbol.Type.String() != "void" {
		t.Fatalf("return type = %v, want void", entry.Symbol.Type)
	}
}

func TestResolverReportsTypeMismatch(t *testing.T) {
	_, _, _, sink := resolve(t, `fn f() { i32 a = 1; string b = "x"; a = b; }`)
	found := false
	for _, d := range sink.All() {
		if d.Code == diagnostics.ErrT003TypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrT003TypeMismatch, got %v", sink.All())
	}
}

func TestResolverReportsAmbiguousCall(t *testing.T) {
	_, _, _, sink := resolve(t, "fn f(i32 a) {} fn f(f64 a) {} fn g() { f(1); }")
	found := false
	for _, d := range sink.All() {
		if d.Code == diagnostics.ErrT009AmbiguousCall {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrT009AmbiguousCall, got %v", sink.All())
	}
}

func TestResolverAnnotatesArrayLiteral(t *testing.T) {
	unit, _, _, sink := resolve(t, "fn f() { var xs = [1, 2, 3]; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	fn := unit.Decls[0].(*ast.FunctionDecl)
	v := fn.Body.Stmts[0].(*ast.VariableDecl)
	lit := v.Initializer.(*ast.ArrayLiteralExpr)
	if lit.ResolvedType() == nil {
		t.Fatalf("expected array literal to have a resolved type")
	}
	arr, ok := lit.ResolvedType().(*types.Array)
	if !ok {
		t.Fatalf("ResolvedType() = %T, want *types.Array", lit.ResolvedType())
	}
	if arr.Element.String() != "i32" {
		t.Fatalf("array element type = %q, want i32", arr.Element.String())
	}
}

func TestResolverReportsUnableToInferType(t *testing.T) {
	_, _, _, sink := resolve(t, "fn f() { var x; }")
	found := false
	for _, d := range sink.All() {
		if d.Code == diagnostics.ErrT007CannotInferType {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrT007CannotInferType, got %v", sink.All())
	}
}

func TestResolverTypedVarMismatchedInitializer(t *testing.T) {
	unit, _, _, sink := resolve(t, `var x: i32 = "hello";`)
	var mismatches []diagnostics.Diagnostic
	for _, d := range sink.All() {
		if d.Code == diagnostics.ErrT003TypeMismatch {
			mismatches = append(mismatches, d)
		}
	}
	if len(mismatches) != 1 {
		t.Fatalf("expected exactly one T003 diagnostic, got %d: %v", len(mismatches), sink.All())
	}
	v := unit.Decls[0].(*ast.VariableDecl)
	if v.Name != "x" {
		t.Fatalf("Name = %q, want x", v.Name)
	}
	if v.TypeRef == nil {
		t.Fatalf("expected the variable node to keep its explicit type annotation")
	}
}

func TestResolverForwardReferenceAcrossFunctionsWithColonReturnType(t *testing.T) {
	unit, _, _, sink := resolve(t, "fn f() { return g(); } fn g(): i32 { return 1; }")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.All())
	}
	f := unit.Decls[0].(*ast.FunctionDecl)
	ret := f.Body.Stmts[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.CallExpr)
	if call.ResolvedType() == nil || call.ResolvedType().String() != "i32" {
		t.Fatalf("expected g() call to resolve to i32, got %v", call.ResolvedType())
	}
}
