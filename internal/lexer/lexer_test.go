package lexer_test

import (
	"testing"

	"github.com/myre-lang/myre/internal/lexer"
	"github.com/myre-lang/myre/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want ...token.Kind) {
	t.Helper()
	toks := lexer.Tokenize(input)
	got := kinds(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %s, want %s", input, i, got[i], want[i])
		}
	}
}

func TestTokenizePunctuationAndOperators(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"arrows", "=> ->", []token.Kind{token.ARROW, token.FATARROW}},
		{"range", ".. ..=", []token.Kind{token.DOTDOT, token.DOTDOTEQ}},
		{"increment_decrement", "++ --", []token.Kind{token.INC, token.DEC}},
		{"compound_assign", "+= -= *= /=", []token.Kind{token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN}},
		{"comparisons", "== != < <= > >=", []token.Kind{token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE}},
		{"logical", "&& ||", []token.Kind{token.AMP_AMP, token.PIPE_PIPE}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertKinds(t, tc.input, tc.want...)
		})
	}
}

func TestTokenizeKeywordsVsIdentifiers(t *testing.T) {
	assertKinds(t, "fn namespace namespaced",
		token.KW_FN, token.KW_NAMESPACE, token.IDENT)
}

func TestTokenizeNumberLiterals(t *testing.T) {
	toks := lexer.Tokenize("42 3.14")
	if toks[0].Kind != token.INT || toks[0].Literal.(int64) != 42 {
		t.Fatalf("expected INT 42, got %v", toks[0])
	}
	if toks[1].Kind != token.FLOAT || toks[1].Literal.(float64) != 3.14 {
		t.Fatalf("expected FLOAT 3.14, got %v", toks[1])
	}
}

func TestTokenizeStringAndCharEscapes(t *testing.T) {
	toks := lexer.Tokenize(`"a\nb" 'x' '\n'`)
	if toks[0].Literal.(string) != "a\nb" {
		t.Fatalf("expected unescaped string, got %q", toks[0].Literal)
	}
	if toks[1].Literal.(rune) != 'x' {
		t.Fatalf("expected char 'x', got %v", toks[1].Literal)
	}
	if toks[2].Literal.(rune) != '\n' {
		t.Fatalf("expected escaped newline char, got %v", toks[2].Literal)
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	assertKinds(t, "fn // a line comment\nfn /* a block\ncomment */ fn",
		token.KW_FN, token.KW_FN, token.KW_FN)
}

func TestTokenizeLineAndColumnTracking(t *testing.T) {
	toks := lexer.Tokenize("a\nbb")
	if toks[0].Range.Line != 1 {
		t.Fatalf("expected first token on line 1, got %d", toks[0].Range.Line)
	}
	if toks[1].Range.Line != 2 {
		t.Fatalf("expected second token on line 2, got %d", toks[1].Range.Line)
	}
}
