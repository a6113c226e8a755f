package resolver

import "github.com/myre-lang/myre/internal/pipeline"

// ResolverProcessor is the pipeline's fourth and final stage, grounded on
// the teacher's evaluator.EvaluatorProcessor bailing out when an earlier
// stage left nothing to work with.
type ResolverProcessor struct{}

func (rp *ResolverProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil || ctx.Table == nil {
		return ctx
	}
	Resolve(ctx.Unit, ctx.Table, ctx.Registry, ctx.Sink, ctx.Config)
	return ctx
}
