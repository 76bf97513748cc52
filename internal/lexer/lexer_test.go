package lexer

import (
	"testing"

	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `let x: number = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"let", token.LET},
		{"x", token.IDENTIFIER},
		{":", token.COLON},
		{"number", token.NUMBER},
		{"=", token.ASSIGN},
		{"5", token.NUMBER_LITERAL},
		{";", token.SEMICOLON},
		{"x", token.IDENTIFIER},
		{"=", token.ASSIGN},
		{"x", token.IDENTIFIER},
		{"+", token.PLUS},
		{"10", token.NUMBER_LITERAL},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	sink := diagnostics.NewSink(input)
	l := New(input, sink)

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
	if sink.HasErrors() {
		t.Fatalf("unexpected lexer errors")
	}
}

func TestKeywords(t *testing.T) {
	input := `let const var function class extends implements interface
		if else for while do return break continue new this super
		import export default from as typeof
		public private protected static readonly
		type number string boolean any void
		true false null undefined`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"let", token.LET}, {"const", token.CONST}, {"var", token.VAR},
		{"function", token.FUNCTION}, {"class", token.CLASS}, {"extends", token.EXTENDS},
		{"implements", token.IMPLEMENTS}, {"interface", token.INTERFACE},
		{"if", token.IF}, {"else", token.ELSE}, {"for", token.FOR}, {"while", token.WHILE},
		{"do", token.DO}, {"return", token.RETURN}, {"break", token.BREAK}, {"continue", token.CONTINUE},
		{"new", token.NEW}, {"this", token.THIS}, {"super", token.SUPER},
		{"import", token.IMPORT}, {"export", token.EXPORT}, {"default", token.DEFAULT},
		{"from", token.FROM}, {"as", token.AS}, {"typeof", token.TYPEOF},
		{"public", token.PUBLIC}, {"private", token.PRIVATE}, {"protected", token.PROTECTED},
		{"static", token.STATIC}, {"readonly", token.READONLY},
		{"type", token.TYPE}, {"number", token.NUMBER}, {"string", token.STRING},
		{"boolean", token.BOOLEAN}, {"any", token.ANY}, {"void", token.VOID},
		{"true", token.BOOLEAN_LITERAL}, {"false", token.BOOLEAN_LITERAL},
		{"null", token.NULL_LITERAL}, {"undefined", token.UNDEFINED_LITERAL},
		{"", token.EOF},
	}

	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong for %q. expected=%s, got=%s", i, tt.expectedLiteral, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	input := `= == === ! != !== > >= >> >>> < <= << & && | || + ++ += - -- -= -> * ** *= / /= ?. ? ... .`

	tests := []token.Type{
		token.ASSIGN, token.EQ, token.EQ_STRICT,
		token.BANG, token.NOT_EQ, token.NOT_EQ_STRICT,
		token.GREATER, token.GREATER_EQ, token.SHR, token.USHR,
		token.LESS, token.LESS_EQ, token.SHL,
		token.AMP, token.AND_AND, token.PIPE, token.OR_OR,
		token.PLUS, token.INC, token.PLUS_ASSIGN,
		token.MINUS, token.DEC, token.MINUS_ASSIGN, token.ARROW,
		token.STAR, token.STAR_STAR, token.STAR_ASSIGN,
		token.SLASH, token.SLASH_ASSIGN,
		token.OPTIONAL_CHAIN, token.QUESTION,
		token.ELLIPSIS, token.DOT,
		token.EOF,
	}

	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d]: expected %s, got %s (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestArrowEitherSpelling(t *testing.T) {
	for _, src := range []string{"=>", "->"} {
		sink := diagnostics.NewSink(src)
		l := New(src, sink)
		tok := l.NextToken()
		if tok.Type != token.ARROW {
			t.Fatalf("%q: expected ARROW, got %s", src, tok.Type)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	input := `"a\nb\tc\\d\"e" 'single\'quote'`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)

	tok := l.NextToken()
	if tok.Type != token.STRING_LITERAL {
		t.Fatalf("expected STRING_LITERAL, got %s", tok.Type)
	}
	want := "a\nb\tc\\d\"e"
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != token.STRING_LITERAL || tok.Literal != "single'quote" {
		t.Fatalf("expected decoded single-quote escape, got %q", tok.Literal)
	}
}

func TestUnknownEscapePassesThrough(t *testing.T) {
	input := `"\q"`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	tok := l.NextToken()
	if tok.Literal != `\q` {
		t.Fatalf("expected literal backslash-q passthrough, got %q", tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	input := `"abc`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	l.NextToken()
	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for unterminated string")
	}
	d := sink.Diagnostics()[0]
	if d.Pos.Line != 1 || d.Pos.Column != 1 {
		t.Fatalf("expected diagnostic at opening quote (1,1), got (%d,%d)", d.Pos.Line, d.Pos.Column)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	input := `/* unterminated`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	tok := l.NextToken()
	if tok.Type != token.EOF {
		t.Fatalf("expected EOF after unterminated comment, got %s", tok.Type)
	}
	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for unterminated block comment")
	}
}

func TestLineComment(t *testing.T) {
	input := "let x = 1; // trailing comment\nlet y = 2;"
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	var kinds []token.Type
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	// Comment text should never surface as tokens: the two statements of
	// 5 tokens each plus EOF make exactly 11.
	if len(kinds) != 11 {
		t.Fatalf("expected 11 tokens, got %d: %v", len(kinds), kinds)
	}
	if sink.HasErrors() {
		t.Fatalf("did not expect errors, got %v", sink.Diagnostics())
	}
}

func TestNestedBlockCommentTerminatesAtFirstCloser(t *testing.T) {
	input := `/* outer /* inner */ x`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	tok := l.NextToken()
	if tok.Type != token.IDENTIFIER || tok.Literal != "x" {
		t.Fatalf("expected identifier 'x' after comment closes at first */, got %s %q", tok.Type, tok.Literal)
	}
}

func TestNumberLiteralExponent(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"123", "123"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
		{"2E+5", "2E+5"},
	}
	for _, c := range cases {
		sink := diagnostics.NewSink(c.src)
		l := New(c.src, sink)
		tok := l.NextToken()
		if tok.Type != token.NUMBER_LITERAL || tok.Literal != c.want {
			t.Fatalf("%q: expected NUMBER_LITERAL %q, got %s %q", c.src, c.want, tok.Type, tok.Literal)
		}
		if sink.HasErrors() {
			t.Fatalf("%q: unexpected errors %v", c.src, sink.Diagnostics())
		}
	}
}

func TestNumberLiteralMissingExponentDigits(t *testing.T) {
	input := `1e`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	l.NextToken()
	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for missing exponent digits")
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	input := `@`
	sink := diagnostics.NewSink(input)
	l := New(input, sink)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for the unexpected character")
	}
}

func TestLineColumnBookkeeping(t *testing.T) {
	input := "let x\n  = 1;"
	sink := diagnostics.NewSink(input)
	l := New(input, sink)

	tok := l.NextToken() // let
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("let: expected (1,1), got (%d,%d)", tok.Pos.Line, tok.Pos.Column)
	}
	tok = l.NextToken() // x
	if tok.Pos.Line != 1 || tok.Pos.Column != 5 {
		t.Fatalf("x: expected (1,5), got (%d,%d)", tok.Pos.Line, tok.Pos.Column)
	}
	tok = l.NextToken() // =
	if tok.Pos.Line != 2 || tok.Pos.Column != 3 {
		t.Fatalf("=: expected (2,3), got (%d,%d)", tok.Pos.Line, tok.Pos.Column)
	}
}

func TestEmptySourceYieldsOnlyEOF(t *testing.T) {
	sink := diagnostics.NewSink("")
	l := New("", sink)
	tok := l.NextToken()
	if tok.Type != token.EOF {
		t.Fatalf("expected EOF for empty source, got %s", tok.Type)
	}
	tok2 := l.NextToken()
	if tok2.Type != token.EOF {
		t.Fatalf("expected EOF again on repeated call, got %s", tok2.Type)
	}
}

// TestTokenStreamEndsWithExactlyOneEOF is the property-based invariant from
// spec §8: every token stream ends with exactly one EOF token.
func TestTokenStreamEndsWithExactlyOneEOF(t *testing.T) {
	sources := []string{
		"",
		"let x = 1;",
		"class C { constructor() {} }",
		"/* comment */ 1 + 2",
		`"unterminated`,
	}
	for _, src := range sources {
		sink := diagnostics.NewSink(src)
		l := New(src, sink)
		eofCount := 0
		for i := 0; i < 1000; i++ {
			tok := l.NextToken()
			if tok.Type == token.EOF {
				eofCount++
				break
			}
		}
		if eofCount != 1 {
			t.Fatalf("source %q: expected exactly one EOF before giving up, got %d", src, eofCount)
		}
	}
}
