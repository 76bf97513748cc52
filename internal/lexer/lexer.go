// Package lexer turns TypeScript/JavaScript source text into a token
// stream. See pkg/token for the token vocabulary.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// Lexer scans source text one rune at a time, reporting lexical errors
// through a shared diagnostics.Sink rather than returning them.
//
// Column positions are rune counts from the start of the line, not byte
// offsets: a multi-byte identifier character still advances column by one,
// matching how most editors report cursor position.
type Lexer struct {
	sink *diagnostics.Sink

	input        string
	position     int // byte offset of ch
	readPosition int // byte offset of the next rune to read
	ch           rune
	line         int
	column       int
}

// New creates a Lexer over input, reporting errors to sink.
func New(input string, sink *diagnostics.Sink) *Lexer {
	l := &Lexer{
		sink:   sink,
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) newline() {
	l.line++
	l.column = 0
}

// tokenHandler scans one operator family starting at the already-current
// rune, returning the resulting token and leaving the lexer positioned on
// the rune immediately after it. Mirrors the dispatch-table pattern used
// for maximal-munch operator scanning.
type tokenHandler func(*Lexer, token.Position) token.Token

var tokenHandlers = map[rune]tokenHandler{
	'+': (*Lexer).handlePlus,
	'-': (*Lexer).handleMinus,
	'*': (*Lexer).handleStar,
	'/': (*Lexer).handleSlash,
	'%': (*Lexer).handlePercent,
	'=': (*Lexer).handleEquals,
	'!': (*Lexer).handleBang,
	'>': (*Lexer).handleGreater,
	'<': (*Lexer).handleLess,
	'&': (*Lexer).handleAmp,
	'|': (*Lexer).handlePipe,
	'^': (*Lexer).handleCaret,
	'~': (*Lexer).handleTilde,
	'?': (*Lexer).handleQuestion,
	'.': (*Lexer).handleDot,
}

func (l *Lexer) simple(t token.Type, lit string, pos token.Position) token.Token {
	l.readChar()
	return token.NewToken(t, lit, pos)
}

func (l *Lexer) handlePlus(pos token.Position) token.Token {
	switch l.peekChar() {
	case '+':
		l.readChar()
		return l.simple(token.INC, "++", pos)
	case '=':
		l.readChar()
		return l.simple(token.PLUS_ASSIGN, "+=", pos)
	}
	return l.simple(token.PLUS, "+", pos)
}

func (l *Lexer) handleMinus(pos token.Position) token.Token {
	switch l.peekChar() {
	case '-':
		l.readChar()
		return l.simple(token.DEC, "--", pos)
	case '=':
		l.readChar()
		return l.simple(token.MINUS_ASSIGN, "-=", pos)
	case '>':
		// '->' is accepted as an alternate spelling of the arrow, same as '=>'.
		l.readChar()
		return l.simple(token.ARROW, "->", pos)
	}
	return l.simple(token.MINUS, "-", pos)
}

func (l *Lexer) handleStar(pos token.Position) token.Token {
	switch l.peekChar() {
	case '*':
		l.readChar()
		return l.simple(token.STAR_STAR, "**", pos)
	case '=':
		l.readChar()
		return l.simple(token.STAR_ASSIGN, "*=", pos)
	}
	return l.simple(token.STAR, "*", pos)
}

// handleSlash is only reached once NextToken has ruled out a
// comment opener; it only ever produces '/' or '/='.
func (l *Lexer) handleSlash(pos token.Position) token.Token {
	if l.peekChar() == '=' {
		l.readChar()
		return l.simple(token.SLASH_ASSIGN, "/=", pos)
	}
	return l.simple(token.SLASH, "/", pos)
}

func (l *Lexer) handlePercent(pos token.Position) token.Token {
	if l.peekChar() == '=' {
		l.readChar()
		return l.simple(token.PERCENT_ASSIGN, "%=", pos)
	}
	return l.simple(token.PERCENT, "%", pos)
}

func (l *Lexer) handleEquals(pos token.Position) token.Token {
	if l.peekChar() == '=' {
		l.readChar()
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.EQ_STRICT, "===", pos)
		}
		return l.simple(token.EQ, "==", pos)
	}
	if l.peekChar() == '>' {
		l.readChar()
		return l.simple(token.ARROW, "=>", pos)
	}
	return l.simple(token.ASSIGN, "=", pos)
}

func (l *Lexer) handleBang(pos token.Position) token.Token {
	if l.peekChar() == '=' {
		l.readChar()
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.NOT_EQ_STRICT, "!==", pos)
		}
		return l.simple(token.NOT_EQ, "!=", pos)
	}
	return l.simple(token.BANG, "!", pos)
}

func (l *Lexer) handleGreater(pos token.Position) token.Token {
	switch l.peekChar() {
	case '=':
		l.readChar()
		return l.simple(token.GREATER_EQ, ">=", pos)
	case '>':
		l.readChar()
		if l.peekChar() == '>' {
			l.readChar()
			return l.simple(token.USHR, ">>>", pos)
		}
		return l.simple(token.SHR, ">>", pos)
	}
	return l.simple(token.GREATER, ">", pos)
}

func (l *Lexer) handleLess(pos token.Position) token.Token {
	switch l.peekChar() {
	case '=':
		l.readChar()
		return l.simple(token.LESS_EQ, "<=", pos)
	case '<':
		l.readChar()
		return l.simple(token.SHL, "<<", pos)
	}
	return l.simple(token.LESS, "<", pos)
}

func (l *Lexer) handleAmp(pos token.Position) token.Token {
	if l.peekChar() == '&' {
		l.readChar()
		return l.simple(token.AND_AND, "&&", pos)
	}
	return l.simple(token.AMP, "&", pos)
}

func (l *Lexer) handlePipe(pos token.Position) token.Token {
	if l.peekChar() == '|' {
		l.readChar()
		return l.simple(token.OR_OR, "||", pos)
	}
	return l.simple(token.PIPE, "|", pos)
}

func (l *Lexer) handleCaret(pos token.Position) token.Token {
	return l.simple(token.CARET, "^", pos)
}

func (l *Lexer) handleTilde(pos token.Position) token.Token {
	return l.simple(token.TILDE, "~", pos)
}

func (l *Lexer) handleQuestion(pos token.Position) token.Token {
	if l.peekChar() == '.' {
		l.readChar()
		return l.simple(token.OPTIONAL_CHAIN, "?.", pos)
	}
	return l.simple(token.QUESTION, "?", pos)
}

func (l *Lexer) handleDot(pos token.Position) token.Token {
	if l.peekChar() == '.' {
		// Only ".." followed by a third '.' is the spread/rest ellipsis;
		// a bare ".." is not part of this grammar and falls back to two
		// DOT tokens via normal re-entry (matches maximal-munch: we only
		// commit once we've seen all three dots).
		state := l.save()
		l.readChar() // consume second '.'
		if l.peekChar() == '.' {
			l.readChar()
			return l.simple(token.ELLIPSIS, "...", pos)
		}
		l.restore(state)
	}
	return l.simple(token.DOT, ".", pos)
}

type savedState struct {
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

func (l *Lexer) save() savedState {
	return savedState{l.position, l.readPosition, l.ch, l.line, l.column}
}

func (l *Lexer) restore(s savedState) {
	l.position, l.readPosition, l.ch, l.line, l.column = s.position, s.readPosition, s.ch, s.line, s.column
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		if l.ch == '\n' {
			l.newline()
		}
		l.readChar()
	}
}

// skipLineComment consumes a `//` comment up to (not including) the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment consumes a `/* ... */` comment, handling nested
// termination at the first `*/`. Reports an unterminated-comment
// diagnostic at the opening `/*` if EOF is reached first.
func (l *Lexer) skipBlockComment(openPos token.Position) {
	l.readChar() // skip '*'
	for {
		if l.ch == 0 {
			l.sink.Report(openPos, "unterminated block comment")
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return
		}
		if l.ch == '\n' {
			l.newline()
		}
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || ch == '$' ||
		('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch > 127
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber scans digits, an optional fractional part, and an optional
// exponent. A missing digit after 'e'/'E' is reported but scanning
// continues, consuming whatever sign/digits are actually present.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		expPos := l.currentPos()
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			l.sink.Report(expPos, "missing digits after exponent")
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// readString scans a single- or double-quoted string literal, decoding the
// escape sequences named in the scanning rules; any other `\x` sequence is
// passed through literally (both characters kept).
func (l *Lexer) readString(quote rune) string {
	startPos := l.currentPos()
	l.readChar() // skip opening quote
	var sb strings.Builder
	for {
		if l.ch == 0 || l.ch == '\n' {
			l.sink.Report(startPos, "unterminated string literal")
			return sb.String()
		}
		if l.ch == quote {
			l.readChar()
			return sb.String()
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\'':
				sb.WriteByte('\'')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte('\\')
				sb.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
}

// NextToken scans and returns the next token in the stream, or an EOF
// token once the input is exhausted. Comments are always skipped; this
// grammar never needs to preserve them.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()
		pos := l.currentPos()

		switch l.ch {
		case 0:
			return token.NewToken(token.EOF, "", pos)
		case '/':
			switch l.peekChar() {
			case '/':
				l.skipLineComment()
				continue
			case '*':
				l.readChar()
				l.skipBlockComment(pos)
				continue
			}
			return l.handleSlash(pos)
		case '(':
			return l.simple(token.LPAREN, "(", pos)
		case ')':
			return l.simple(token.RPAREN, ")", pos)
		case '{':
			return l.simple(token.LBRACE, "{", pos)
		case '}':
			return l.simple(token.RBRACE, "}", pos)
		case '[':
			return l.simple(token.LBRACK, "[", pos)
		case ']':
			return l.simple(token.RBRACK, "]", pos)
		case ',':
			return l.simple(token.COMMA, ",", pos)
		case ';':
			return l.simple(token.SEMICOLON, ";", pos)
		case ':':
			return l.simple(token.COLON, ":", pos)
		case '\'', '"':
			lit := l.readString(l.ch)
			return token.NewToken(token.STRING_LITERAL, lit, pos)
		default:
			if handler, ok := tokenHandlers[l.ch]; ok {
				return handler(l, pos)
			}
			switch {
			case isLetter(l.ch):
				lit := l.readIdentifier()
				return token.NewToken(token.LookupIdent(lit), lit, pos)
			case isDigit(l.ch):
				lit := l.readNumber()
				return token.NewToken(token.NUMBER_LITERAL, lit, pos)
			default:
				ch := l.ch
				l.sink.Report(pos, "Unexpected character %q", ch)
				l.readChar()
				return token.NewToken(token.ILLEGAL, string(ch), pos)
			}
		}
	}
}
