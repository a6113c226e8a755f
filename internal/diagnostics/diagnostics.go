// Package diagnostics models the core's diagnostic channel (spec §6, §7) as
// data rather than control flow. Nothing here renders or colors output —
// presentation is a driver concern.
package diagnostics

import (
	"fmt"
	"sort"

	"github.com/myre-lang/myre/internal/token"
)

// Level is the severity of a diagnostic.
type Level int

const (
	Error Level = iota
	Warning
	Info
	Hint
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Code is a short mnemonic identifying a diagnostic's origin and kind.
// By convention: P### (parser), B### (symbol table builder), T### (type
// resolver).
type Code string

const (
	// Parser
	ErrP001UnexpectedToken   Code = "P001"
	ErrP002ExpectedToken     Code = "P002"
	ErrP003NoPrefixParseFn   Code = "P003"
	ErrP004MalformedDecl     Code = "P004"
	ErrP005InsertedToken     Code = "P005"
	WarnP006BreakOutsideLoop Code = "P006"
	WarnP007ReturnOutsideFn  Code = "P007"

	// Builder
	ErrB001DuplicateSymbol    Code = "B001"
	ErrB002NestedFileNamespace Code = "B002"

	// Resolver
	ErrT001IdentifierNotFound     Code = "T001"
	ErrT002NotAValue              Code = "T002"
	ErrT003TypeMismatch           Code = "T003"
	ErrT004NotCallable            Code = "T004"
	ErrT005NoSuchMember           Code = "T005"
	ErrT006IndexingNonArray       Code = "T006"
	ErrT007CannotInferType        Code = "T007"
	ErrT008NotImplemented         Code = "T008"
	ErrT009AmbiguousCall          Code = "T009"
)

// Diagnostic is a single (level, message, range, suggestions) record.
type Diagnostic struct {
	Level       Level
	Code        Code
	Message     string
	Range       token.Range
	Suggestions []string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s [%s]: %s", "", d.Range.Line, d.Range.Column, d.Level, d.Code, d.Message)
}

// New builds a Diagnostic at Error level from a token's range, following the
// teacher's NewError(code, token, format, args...) call shape.
func New(code Code, tok token.Token, format string, args ...any) Diagnostic {
	return Diagnostic{
		Level:   Error,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Range:   tok.Range,
	}
}

// NewAt builds a Diagnostic directly from a range (used when no single token
// best represents the location, e.g. a whole subtree).
func NewAt(code Code, rng token.Range, format string, args ...any) Diagnostic {
	return Diagnostic{Level: Error, Code: code, Message: fmt.Sprintf(format, args...), Range: rng}
}

// Warn builds a Warning-level diagnostic.
func Warn(code Code, tok token.Token, format string, args ...any) Diagnostic {
	d := New(code, tok, format, args...)
	d.Level = Warning
	return d
}

// WithSuggestion attaches a suggested fix string to a diagnostic.
func (d Diagnostic) WithSuggestion(s string) Diagnostic {
	d.Suggestions = append(d.Suggestions, s)
	return d
}

// Sink accumulates diagnostics for one compilation and exposes them in
// deterministic, position-sorted order — grounded on the teacher's
// walker.errorSet/getErrors dedup-and-sort pattern.
type Sink struct {
	items []Diagnostic
	seen  map[string]bool
}

func NewSink() *Sink {
	return &Sink{seen: make(map[string]bool)}
}

func (s *Sink) Add(d Diagnostic) {
	key := fmt.Sprintf("%d:%d:%s:%s", d.Range.Line, d.Range.Column, d.Code, d.Message)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, d)
}

// HasErrors reports whether any Error-level diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	for _, d := range s.items {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// All returns every recorded diagnostic, sorted by (line, column, code).
func (s *Sink) All() []Diagnostic {
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Range.Line != b.Range.Line {
			return a.Range.Line < b.Range.Line
		}
		if a.Range.Column != b.Range.Column {
			return a.Range.Column < b.Range.Column
		}
		return a.Code < b.Code
	})
	return out
}
