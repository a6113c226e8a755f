package compiler_test

import (
	"testing"

	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/pkg/compiler"
)

func TestCompileResolvesSimpleProgram(t *testing.T) {
	res, err := compiler.Compile("test.myre", "fn f() -> i32 { return 1 + 2; }")
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Sink.All())
	}
	fn, ok := res.Unit.Decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected FunctionDecl, got %T", res.Unit.Decls[0])
	}
	if fn.Name != "f" {
		t.Fatalf("Name = %q, want f", fn.Name)
	}
}

func TestCompileStampsUniqueUnitID(t *testing.T) {
	a, _ := compiler.Compile("a.myre", "fn a() {}")
	b, _ := compiler.Compile("b.myre", "fn b() {}")
	if a.UnitID == b.UnitID {
		t.Fatalf("expected distinct UnitIDs, got the same for both")
	}
}

func TestCompileCollectsErrorsAcrossStages(t *testing.T) {
	res, _ := compiler.Compile("test.myre", "fn f() { return undefinedThing; }")
	if !res.HasErrors() {
		t.Fatalf("expected errors")
	}
}
