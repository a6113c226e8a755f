// Package compiler is the public library entry point for the front end:
// one call turns a source file's text into a type-annotated AST, a scope
// tree, and a diagnostic sink, wiring the lexer, parser, builder, and
// resolver stages together the way the teacher's cmd/funxy and pkg/embed
// wire their own lex/parse/analyze/evaluate pipeline.
package compiler

import (
	"github.com/google/uuid"

	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/builder"
	"github.com/myre-lang/myre/internal/config"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/lexer"
	"github.com/myre-lang/myre/internal/parser"
	"github.com/myre-lang/myre/internal/pipeline"
	"github.com/myre-lang/myre/internal/resolver"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/types"
)

// Result is everything a driver (CLI, LSP, test harness) needs after a
// compile: the annotated tree, the scope/symbol table backing it, the
// diagnostics collected across every stage, and a UnitID stable for the
// lifetime of this Result so a caller juggling many units (incremental
// rebuilds, a multi-file project) has a join key independent of FilePath.
type Result struct {
	UnitID   uuid.UUID
	FilePath string
	Unit     *ast.CompilationUnit
	Table    *symbols.Table
	Registry *types.Registry
	Sink     *diagnostics.Sink
}

// HasErrors reports whether any stage produced an Error-level diagnostic.
func (r *Result) HasErrors() bool { return r.Sink.HasErrors() }

// Option configures a Compile call.
type Option func(*pipeline.PipelineContext)

// WithConfig overrides the default CompilerConfig. Of its fields, only the
// fixed-point pass cap is read by a stage: the parser checks the
// config.MaxRecursionDepth constant, and nothing reads TestMode.
func WithConfig(cfg config.CompilerConfig) Option {
	return func(ctx *pipeline.PipelineContext) { ctx.Config = cfg }
}

// Compile runs the full front-end pipeline over source and returns the
// resulting Result. The error return is reserved for failures outside the
// compilation itself (none exist yet, since this package does no file I/O);
// compilation failures surface as diagnostics in Result.Sink, matching the
// teacher's stance that a parse/analysis failure is data to report, not a Go
// error to propagate.
func Compile(filePath, source string, opts ...Option) (*Result, error) {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = filePath
	for _, opt := range opts {
		opt(ctx)
	}

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&builder.BuilderProcessor{},
		&resolver.ResolverProcessor{},
	)
	ctx = p.Run(ctx)

	return &Result{
		UnitID:   uuid.New(),
		FilePath: filePath,
		Unit:     ctx.Unit,
		Table:    ctx.Table,
		Registry: ctx.Registry,
		Sink:     ctx.Sink,
	}, nil
}
