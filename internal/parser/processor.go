package parser

import (
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/pipeline"
	"github.com/myre-lang/myre/internal/token"
)

// ParserProcessor is the pipeline's second stage, grounded on the teacher's
// parser.ParserProcessor: it turns a token stream into an AST, guarding
// against a nil stream the same way the teacher's version does when the
// lexer stage never ran.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Sink.Add(diagnostics.New(diagnostics.ErrP001UnexpectedToken, token.Token{}, "parser: token stream is nil"))
		return ctx
	}
	ctx.Unit = Parse(ctx.FilePath, ctx.TokenStream, ctx.Sink)
	return ctx
}
