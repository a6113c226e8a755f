// Package parser implements the hand-written, error-recovering
// recursive-descent parser: token stream -> AST, with Pratt-style operator
// precedence, a context stack, and checkpoint-based speculative parsing
// (spec §4.3). It never throws; failures surface as diagnostics plus
// ErrorNode placeholders so the tree stays well-formed.
package parser

import (
	"github.com/myre-lang/myre/internal/ast"
	"github.com/myre-lang/myre/internal/config"
	"github.com/myre-lang/myre/internal/diagnostics"
	"github.com/myre-lang/myre/internal/token"
)

// Context tags what the parser is currently inside, for break/continue/
// return validity checks (spec §4.3.3).
type Context int

const (
	CtxGlobal Context = iota
	CtxNamespace
	CtxTypeBody
	CtxFunction
	CtxLoop
	CtxPropertyGetter
	CtxPropertySetter
	CtxExpression
)

// Parser holds all mutable state for one parse (spec §4.3).
type Parser struct {
	stream token.Stream
	arena  *ast.Arena
	sink   *diagnostics.Sink

	ctxStack []Context
	depth    int // expression recursion depth (spec §5, config.MaxRecursionDepth)

	prefixParseFns map[token.Kind]func() ast.Expression
	infixParseFns  map[token.Kind]func(ast.Expression) ast.Expression

	lastErrorWasCascade bool // true once inside a subtree already tagged with an error (spec §4.3.3)
}

// New builds a Parser over a token stream, ready to call Parse.
func New(stream token.Stream, sink *diagnostics.Sink) *Parser {
	p := &Parser{
		stream:   stream,
		arena:    ast.NewArena(),
		sink:     sink,
		ctxStack: []Context{CtxGlobal},
	}
	p.registerExpressionFns()
	return p
}

// Arena exposes the AST arena the parser allocated into, for the pipeline
// to hand onward to the builder.
func (p *Parser) Arena() *ast.Arena { return p.arena }

// Parse is the public entry point: token stream -> CompilationUnit. Never
// throws (spec §4.3).
func Parse(filePath string, stream token.Stream, sink *diagnostics.Sink) *ast.CompilationUnit {
	p := New(stream, sink)
	return p.parseCompilationUnit(filePath)
}

// ParseUnit is Parse plus the backing Arena, for callers (the pipeline)
// that need to carry the arena forward to the builder and resolver.
func ParseUnit(filePath string, stream token.Stream, sink *diagnostics.Sink) (*ast.CompilationUnit, *ast.Arena) {
	p := New(stream, sink)
	unit := p.parseCompilationUnit(filePath)
	return unit, p.arena
}

// --- token stream helpers (spec §4.3.1) ---

func (p *Parser) current() token.Token { return p.stream.Current() }
func (p *Parser) peek(k int) token.Token { return p.stream.Peek(k) }
func (p *Parser) advance() token.Token { return p.stream.Advance() }
func (p *Parser) atEnd() bool { return p.stream.AtEnd() }

func (p *Parser) check(kind token.Kind) bool { return p.current().Kind == kind }

func (p *Parser) checkAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

// match advances and returns true if the current token has the given kind.
func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// consume advances past an expected token kind, or emits ErrP002 and
// (when the missing token is a cheaply-recoverable one) synthesizes it in
// place rather than aborting the whole production (spec §4.3.3
// "insertion... for simple recoverable mismatches").
func (p *Parser) consume(kind token.Kind, context string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	tok := p.current()
	p.errorf(diagnostics.ErrP002ExpectedToken, tok, "expected %s %s, found %s", kind, context, tok.Kind)
	if isCheaplyRecoverable(kind) {
		p.errorfAt(diagnostics.ErrP005InsertedToken, tok.Range, "inserted missing %s", kind)
		return token.Token{Kind: kind, Lexeme: kind.String(), Range: tok.Range}, true
	}
	return tok, false
}

func isCheaplyRecoverable(kind token.Kind) bool {
	switch kind {
	case token.SEMI, token.COMMA, token.RPAREN, token.RBRACE, token.RBRACKET:
		return true
	default:
		return false
	}
}

// checkpoint/restore (spec §4.3.3 "speculative parsing").
func (p *Parser) checkpoint() int { return p.stream.Checkpoint() }
func (p *Parser) restore(mark int) { p.stream.Restore(mark) }

// speculative runs try, and if it returns nil, restores the stream to
// where it was before try ran. This is the auto-restoring helper behind
// try_parse_type / try_parse_typed_identifier / parse_variable_pattern
// (spec §4.3.4).
func (p *Parser) speculative(try func() ast.Node) ast.Node {
	mark := p.checkpoint()
	result := try()
	if result == nil {
		p.restore(mark)
	}
	return result
}

// --- context stack (spec §4.3.3) ---

func (p *Parser) pushContext(c Context) { p.ctxStack = append(p.ctxStack, c) }
func (p *Parser) popContext()           { p.ctxStack = p.ctxStack[:len(p.ctxStack)-1] }
func (p *Parser) context() Context      { return p.ctxStack[len(p.ctxStack)-1] }

func (p *Parser) inContext(c Context) bool {
	for _, ctx := range p.ctxStack {
		if ctx == c {
			return true
		}
	}
	return false
}

// --- diagnostics ---

// errorf records a diagnostic unless an earlier one is still being
// recovered from: after the first error every later errorf call is
// dropped, whatever its position, until synchronize() or the start of the
// next statement or top-level declaration clears the flag (spec §4.3.3).
func (p *Parser) errorf(code diagnostics.Code, tok token.Token, format string, args ...any) {
	if p.lastErrorWasCascade {
		return
	}
	p.sink.Add(diagnostics.New(code, tok, format, args...))
	p.lastErrorWasCascade = true
}

func (p *Parser) errorfAt(code diagnostics.Code, rng token.Range, format string, args ...any) {
	p.sink.Add(diagnostics.NewAt(code, rng, format, args...))
}

func (p *Parser) warnf(code diagnostics.Code, tok token.Token, format string, args ...any) {
	p.sink.Add(diagnostics.Warn(code, tok, format, args...))
}

// errorNode builds an ErrorNode and records it in the arena.
func (p *Parser) errorNode(tok token.Token, message string) *ast.ErrorNode {
	n := ast.NewErrorNode(tok, tok.Range, message)
	p.arena.Keep(n)
	return n
}

// --- panic-mode synchronisation (spec §4.3.3) ---

var declStartKeywords = []token.Kind{
	token.KW_NAMESPACE, token.KW_USING, token.KW_TYPE, token.KW_STRUCT, token.KW_ENUM,
	token.KW_FN, token.KW_NEW, token.KW_VAR,
	token.KW_PUBLIC, token.KW_PRIVATE, token.KW_PROTECTED, token.KW_STATIC,
	token.KW_VIRTUAL, token.KW_OVERRIDE, token.KW_ABSTRACT, token.KW_ASYNC,
	token.KW_EXTERN, token.KW_REF, token.KW_INLINE,
}

var stmtStartKeywords = []token.Kind{
	token.KW_IF, token.KW_WHILE, token.KW_FOR, token.KW_RETURN, token.KW_BREAK,
	token.KW_CONTINUE, token.KW_MATCH, token.LBRACE,
}

// synchronize skips tokens until a declaration-start keyword,
// statement-start keyword, `;`, or `}` is seen (spec §4.3.3).
func (p *Parser) synchronize() {
	defer func() { p.lastErrorWasCascade = false }()
	for !p.atEnd() {
		if p.check(token.SEMI) {
			p.advance()
			return
		}
		if p.check(token.RBRACE) {
			return
		}
		if p.checkAny(declStartKeywords...) || p.checkAny(stmtStartKeywords...) {
			return
		}
		p.advance()
	}
}

func (p *Parser) checkRecursionDepth(tok token.Token) bool {
	if p.depth > config.MaxRecursionDepth {
		p.errorf(diagnostics.ErrP001UnexpectedToken, tok, "expression too deeply nested")
		return false
	}
	return true
}
