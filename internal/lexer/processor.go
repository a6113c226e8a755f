package lexer

import (
	"github.com/myre-lang/myre/internal/pipeline"
	"github.com/myre-lang/myre/internal/token"
)

// LexerProcessor is the pipeline's first stage, grounded on the teacher's
// lexer.LexerProcessor (referenced throughout its parser/analyzer/vm tests
// as the way a raw source string becomes a buffered token.Stream).
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = token.NewSliceStream(Tokenize(ctx.Source))
	return ctx
}
