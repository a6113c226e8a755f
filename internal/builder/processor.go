package builder

import "github.com/myre-lang/myre/internal/pipeline"

// BuilderProcessor is the pipeline's third stage, grounded on the teacher's
// analyzer.SemanticAnalyzerProcessor: it turns a parsed AST into a scope
// tree of seeded (Unresolved-typed) symbols.
type BuilderProcessor struct{}

func (bp *BuilderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil {
		return ctx
	}
	ctx.Table = Build(ctx.Unit, ctx.Registry, ctx.Sink)
	return ctx
}
