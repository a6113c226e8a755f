package pipeline_test

import (
	"testing"

	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/builder"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/lexer"
	"github.com/myre-lang/myre/internal/parser"
	"github.com/myre-lang/myre/internal/pipeline"
	"github.com/myre-lang/myre/internal/resolver"
)

func run(src string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(src)
	ctx.FilePath = "test.myre"
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&builder.BuilderProcessor{},
		&resolver.ResolverProcessor{},
	)
	return p.Run(ctx)
}

func TestPipelineResolvesSimpleFunction(t *testing.T) {
	ctx := run("fn f() -> i32 { return 1 + 2; }")
	if ctx.Sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Sink.All())
	}
	fn, ok := ctx.Unit.Decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected FunctionDecl, got %T", ctx.Unit.Decls[0])
	}
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)
	if bin.ResolvedType() == nil || bin.ResolvedType().String() != "i32" {
		t.Fatalf("ResolvedType() = %v, want i32", bin.ResolvedType())
	}
}

func TestPipelineStopsAtParserWhenLexerNeverRan(t *testing.T) {
	ctx := pipeline.NewPipelineContext("fn f() {}")
	ctx.FilePath = "test.myre"
	p := pipeline.New(&parser.ParserProcessor{})
	ctx = p.Run(ctx)
	found := false
	for _, d := range ctx.Sink.All() {
		if d.Code == diagnostics.ErrP001UnexpectedToken {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrP001UnexpectedToken for nil token stream, got %v", ctx.Sink.All())
	}
}

func TestPipelineReportsSemanticErrorsAfterParsing(t *testing.T) {
	ctx := run("fn f() { return undefinedThing; }")
	if !ctx.Sink.HasErrors() {
		t.Fatalf("expected errors")
	}
	found := false
	for _, d := range ctx.Sink.All() {
		if d.Code == diagnostics.ErrT001IdentifierNotFound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrT001IdentifierNotFound, got %v", ctx.Sink.All())
	}
}
