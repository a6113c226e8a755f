package parser_test

import (
	"testing"

	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/lexer"
	"github.com/myre-lang/myre/internal/parser"
	"github.com/myre-lang/myre/internal/token"
)

func parseSource(t *testing.T, src string) (*ast.CompilationUnit, *diagnostics.Sink) {
	t.Helper()
	toks := lexer.Tokenize(src)
	stream := token.NewSliceStream(toks)
	sink := diagnostics.NewSink()
	unit := parser.Parse("test.myre", stream, sink)
	return unit, sink
}

func requireNoErrors(t *testing.T, sink *diagnostics.Sink) {
	t.Helper()
	if sink.HasErrors() {
		for _, d := range sink.All() {
			t.Logf("diagnostic: %s", d.Message)
		}
		t.Fatalf("expected no errors, got %d", len(sink.All()))
	}
}

func TestParseUsingDirective(t *testing.T) {
	unit, sink := parseSource(t, "using Foo.Bar;")
	requireNoErrors(t, sink)
	if len(unit.Usings) != 1 {
		t.Fatalf("expected 1 using directive, got %d", len(unit.Usings))
	}
	got := unit.Usings[0].QualifiedName
	want := []string{"Foo", "Bar"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("QualifiedName = %v, want %v", got, want)
	}
}

func TestParseNamespaceWithFunction(t *testing.T) {
	unit, sink := parseSource(t, "namespace Foo { fn bar() {} }")
	requireNoErrors(t, sink)
	if len(unit.Namespaces) != 1 {
		t.Fatalf("expected 1 namespace, got %d", len(unit.Namespaces))
	}
	ns := unit.Namespaces[0]
	if ns.FileScoped {
		t.Fatalf("expected braced namespace, got file-scoped")
	}
	if len(ns.Decls) != 1 {
		t.Fatalf("expected 1 decl in namespace, got %d", len(ns.Decls))
	}
	fn, ok := ns.Decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", ns.Decls[0])
	}
	if fn.Name != "bar" {
		t.Fatalf("Name = %q, want %q", fn.Name, "bar")
	}
}

func TestParseFileScopedNamespace(t *testing.T) {
	unit, sink := parseSource(t, "namespace Foo;\nfn bar() {}")
	requireNoErrors(t, sink)
	if len(unit.Namespaces) != 1 || !unit.Namespaces[0].FileScoped {
		t.Fatalf("expected one file-scoped namespace")
	}
	if len(unit.Namespaces[0].Decls) != 1 {
		t.Fatalf("expected the trailing function to attach to the file-scoped namespace")
	}
}

func TestParseTypeDeclWithFields(t *testing.T) {
	unit, sink := parseSource(t, "type Point { i32 X; i32 Y; }")
	requireNoErrors(t, sink)
	if len(unit.Decls) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(unit.Decls))
	}
	td, ok := unit.Decls[0].(*ast.TypeDecl)
	if !ok {
		t.Fatalf("expected *ast.TypeDecl, got %T", unit.Decls[0])
	}
	if td.Kind != ast.TypeKindClass {
		t.Fatalf("expected TypeKindClass, got %v", td.Kind)
	}
	if len(td.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(td.Members))
	}
	field, ok := td.Members[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", td.Members[0])
	}
	if field.Name != "X" {
		t.Fatalf("field Name = %q, want X", field.Name)
	}
}

func TestParseEnumWithCases(t *testing.T) {
	unit, sink := parseSource(t, "enum Color { Red, Green, Blue }")
	requireNoErrors(t, sink)
	ed, ok := unit.Decls[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected *ast.EnumDecl, got %T", unit.Decls[0])
	}
	if len(ed.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(ed.Cases))
	}
	if ed.Cases[0].Name != "Red" || ed.Cases[2].Name != "Blue" {
		t.Fatalf("unexpected case names: %v", ed.Cases)
	}
}

func TestParseEnumCaseWithAssociatedTypes(t *testing.T) {
	unit, sink := parseSource(t, "enum Shape { Circle(f64), Rect(f64, f64) }")
	requireNoErrors(t, sink)
	ed := unit.Decls[0].(*ast.EnumDecl)
	if len(ed.Cases[0].AssociatedTypes) != 1 {
		t.Fatalf("expected 1 associated type on Circle, got %d", len(ed.Cases[0].AssociatedTypes))
	}
	if len(ed.Cases[1].AssociatedTypes) != 2 {
		t.Fatalf("expected 2 associated types on Rect, got %d", len(ed.Cases[1].AssociatedTypes))
	}
}

func TestParseFunctionWithReturnTypeAndBody(t *testing.T) {
	unit, sink := parseSource(t, "fn add(i32 a, i32 b) -> i32 { return a + b; }")
	requireNoErrors(t, sink)
	fn := unit.Decls[0].(*ast.FunctionDecl)
	if fn.Name != "add" {
		t.Fatalf("Name = %q, want add", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.ReturnType == nil {
		t.Fatalf("expected an explicit return type")
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr return value, got %T", ret.Value)
	}
	if bin.Op != token.PLUS {
		t.Fatalf("Op = %s, want +", bin.Op)
	}
}

func TestParseConstructor(t *testing.T) {
	unit, sink := parseSource(t, "type Point { new(i32 x, i32 y) { this.X = x; } }")
	requireNoErrors(t, sink)
	td := unit.Decls[0].(*ast.TypeDecl)
	ctor, ok := td.Members[0].(*ast.ConstructorDecl)
	if !ok {
		t.Fatalf("expected *ast.ConstructorDecl, got %T", td.Members[0])
	}
	if len(ctor.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(ctor.Params))
	}
}

func TestParseExpressionBodiedProperty(t *testing.T) {
	unit, sink := parseSource(t, "type Point { i32 Sum => this.X; }")
	requireNoErrors(t, sink)
	td := unit.Decls[0].(*ast.TypeDecl)
	prop, ok := td.Members[0].(*ast.PropertyDecl)
	if !ok {
		t.Fatalf("expected *ast.PropertyDecl, got %T", td.Members[0])
	}
	if !prop.HasGetter || prop.GetterExpr == nil {
		t.Fatalf("expected an expression-bodied getter")
	}
}

func TestParseGetSetProperty(t *testing.T) {
	unit, sink := parseSource(t, "type Point { i32 X { get; set; } }")
	requireNoErrors(t, sink)
	td := unit.Decls[0].(*ast.TypeDecl)
	prop := td.Members[0].(*ast.PropertyDecl)
	if !prop.HasGetter || !prop.HasSetter {
		t.Fatalf("expected both a getter and a setter, got %+v", prop)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	p := parser.New(token.NewSliceStream(lexer.Tokenize("1 + 2 * 3")), diagnostics.NewSink())
	expr := p.ParseExpression()
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr at top, got %T", expr)
	}
	if bin.Op != token.PLUS {
		t.Fatalf("top operator = %s, want +", bin.Op)
	}
	right, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || right.Op != token.STAR {
		t.Fatalf("expected multiplication nested on the right, got %T", bin.Right)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	p := parser.New(token.NewSliceStream(lexer.Tokenize("a = b = 1")), diagnostics.NewSink())
	expr := p.ParseExpression()
	outer, ok := expr.(*ast.AssignmentExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignmentExpr, got %T", expr)
	}
	if _, ok := outer.Value.(*ast.AssignmentExpr); !ok {
		t.Fatalf("expected a nested assignment on the right, got %T", outer.Value)
	}
}

func TestParseRangeWithStep(t *testing.T) {
	p := parser.New(token.NewSliceStream(lexer.Tokenize("1..10 by 2")), diagnostics.NewSink())
	expr := p.ParseExpression()
	rng, ok := expr.(*ast.RangeExpr)
	if !ok {
		t.Fatalf("expected *ast.RangeExpr, got %T", expr)
	}
	if rng.Step == nil {
		t.Fatalf("expected a step expression")
	}
	if rng.Inclusive {
		t.Fatalf("expected an exclusive range for '..'")
	}
}

func TestParseMethodCallChain(t *testing.T) {
	p := parser.New(token.NewSliceStream(lexer.Tokenize("a.b().c")), diagnostics.NewSink())
	expr := p.ParseExpression()
	member, ok := expr.(*ast.MemberAccessExpr)
	if !ok {
		t.Fatalf("expected *ast.MemberAccessExpr at top, got %T", expr)
	}
	if member.Member != "c" {
		t.Fatalf("Member = %q, want c", member.Member)
	}
	if _, ok := member.Object.(*ast.CallExpr); !ok {
		t.Fatalf("expected the receiver to be a call expression, got %T", member.Object)
	}
}

func TestParseForInWithIndex(t *testing.T) {
	unit, sink := parseSource(t, "fn f() { for (x in items at i) {} }")
	requireNoErrors(t, sink)
	fn := unit.Decls[0].(*ast.FunctionDecl)
	forIn, ok := fn.Body.Stmts[0].(*ast.ForInStmt)
	if !ok {
		t.Fatalf("expected *ast.ForInStmt, got %T", fn.Body.Stmts[0])
	}
	if forIn.VarName != "x" || forIn.AtName != "i" {
		t.Fatalf("VarName=%q AtName=%q, want x/i", forIn.VarName, forIn.AtName)
	}
}

func TestParseCStyleFor(t *testing.T) {
	unit, sink := parseSource(t, "fn f() { for (i32 i = 0; i < 10; i++) {} }")
	requireNoErrors(t, sink)
	fn := unit.Decls[0].(*ast.FunctionDecl)
	forStmt, ok := fn.Body.Stmts[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", fn.Body.Stmts[0])
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Step == nil {
		t.Fatalf("expected all three for-header clauses to be present")
	}
}

func TestParseMalformedDeclRecovers(t *testing.T) {
	unit, sink := parseSource(t, "%%% fn ok() {}")
	if !sink.HasErrors() {
		t.Fatalf("expected at least one diagnostic for the malformed input")
	}
	found := false
	for _, d := range unit.Decls {
		if fn, ok := d.(*ast.FunctionDecl); ok && fn.Name == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the parser to recover and still find the valid function decl")
	}
}

func TestParseFunctionWithColonReturnType(t *testing.T) {
	unit, sink := parseSource(t, "fn add(i32 a, i32 b): i32 { return a + b; }")
	requireNoErrors(t, sink)
	fn := unit.Decls[0].(*ast.FunctionDecl)
	if fn.Name != "add" {
		t.Fatalf("Name = %q, want add", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.ReturnType == nil {
		t.Fatalf("expected an explicit return type")
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	if _, ok := ret.Value.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected *ast.BinaryExpr return value, got %T", ret.Value)
	}
}

func TestParseNestedMethodWithColonReturnType(t *testing.T) {
	unit, sink := parseSource(t, "type Point { i32 x; i32 y; fn len(): i32 { return x + y; } }")
	requireNoErrors(t, sink)
	td := unit.Decls[0].(*ast.TypeDecl)
	fn, ok := td.Members[2].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", td.Members[2])
	}
	if fn.Name != "len" {
		t.Fatalf("Name = %q, want len", fn.Name)
	}
	if fn.ReturnType == nil {
		t.Fatalf("expected an explicit return type")
	}
}

func TestParseVarWithTypeAnnotation(t *testing.T) {
	unit, sink := parseSource(t, `var x: i32 = "hello";`)
	requireNoErrors(t, sink)
	v, ok := unit.Decls[0].(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", unit.Decls[0])
	}
	if v.Name != "x" {
		t.Fatalf("Name = %q, want x", v.Name)
	}
	if v.TypeRef == nil {
		t.Fatalf("expected an explicit type annotation")
	}
	if v.Initializer == nil {
		t.Fatalf("expected an initializer")
	}
}

func TestParseFunctionGroupCoalescing(t *testing.T) {
	// Overload handling lives in the symbol table; the parser itself just
	// parses two same-named FunctionDecls side by side without complaint.
	unit, sink := parseSource(t, "fn f(i32 a) {}\nfn f(f64 a) {}")
	requireNoErrors(t, sink)
	if len(unit.Decls) != 2 {
		t.Fatalf("expected 2 function declarations, got %d", len(unit.Decls))
	}
}
