// Package pipeline wires the front end's stages — lexer, parser, builder,
// resolver — into a single ordered run over a shared context, in the same
// spirit as the teacher's internal/pipeline (Pipeline/PipelineContext/
// Processor), generalized from its lex/parse/analyze/evaluate stage list to
// lex/parse/build/resolve.
package pipeline

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/config"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/symbols"
	"github.com/myre-lang/myre/internal/token"
	"github.com/myre-lang/myre/internal/types"
)

// PipelineContext carries everything one stage hands to the next. Each
// Processor reads what it needs and stamps its own outputs; later stages
// short-circuit only on a missing input (a nil AST or symbol table). A
// populated Sink does not stop them.
type PipelineContext struct {
	FilePath string
	Source   string
	Config   config.CompilerConfig

	TokenStream token.Stream
	Unit        *ast.CompilationUnit
	Registry    *types.Registry
	Table       *symbols.Table
	Sink        *diagnostics.Sink
}

// NewPipelineContext seeds a context for one compilation unit, following the
// teacher's pipeline.NewPipelineContext(source) shape.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		Source:   source,
		Config:   config.Default(),
		Registry: types.NewRegistry(),
		Sink:     diagnostics.NewSink(),
	}
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs an ordered sequence of Processors over a PipelineContext.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered stage list.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, always continuing to the next stage
// even after one reports errors — the parser's recovery and the resolver's
// fixed point both depend on later stages seeing as much of the tree as
// earlier stages managed to build, not on an all-or-nothing abort.
func (p *Pipeline) Run(initial *PipelineContext) *PipelineContext {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
