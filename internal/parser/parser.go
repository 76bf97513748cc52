// Package parser implements a recursive-descent parser over the token
// stream produced by internal/lexer, producing the AST defined in pkg/ast.
//
// Expression parsing follows an explicit cascade of one function per
// precedence level (assignment, conditional, logical-or, logical-and,
// equality, comparison, bitwise-or, bitwise-xor, bitwise-and, shift,
// additive, multiplicative, unary, postfix, call, primary) rather than a
// Pratt precedence table: each level calls directly into the next-tighter
// level, which keeps every precedence boundary a named, independently
// readable function.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/internal/lexer"
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// Parser turns a token stream into an AST, reporting malformed input to a
// shared diagnostics.Sink and recovering via panic-mode synchronization so
// a single syntax error doesn't abort the whole parse.
type Parser struct {
	l    *lexer.Lexer
	sink *diagnostics.Sink

	// tokens caches every token read so far so the parser can look ahead
	// (peekN) and backtrack (mark/reset) without re-scanning, since the
	// underlying Lexer is a forward-only scanner.
	tokens []token.Token
	pos    int

	errors []*ParserError
}

// New creates a Parser over l, reporting errors to sink.
func New(l *lexer.Lexer, sink *diagnostics.Sink) *Parser {
	p := &Parser{l: l, sink: sink}
	p.tokens = append(p.tokens, l.NextToken())
	return p
}

// ParseProgram parses the entire token stream into a *ast.Program. Parsing
// always returns a (possibly partial) AST; callers must check
// sink.HasErrors() before proceeding to the semantic analyzer, per the
// pipeline's halt-on-diagnostics contract.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur().Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	// Every token read is cached in p.tokens, so this sees the whole stream.
	for _, t := range p.tokens {
		if t.Type == token.IMPORT || t.Type == token.EXPORT {
			prog.IsModule = true
			break
		}
	}
	return prog
}

// Errors returns every ParserError recorded during parsing, for tests that
// want to assert on error codes directly rather than rendered diagnostics.
func (p *Parser) Errors() []*ParserError { return p.errors }

func (p *Parser) cur() token.Token { return p.tokens[p.pos] }

func (p *Parser) peek() token.Token { return p.peekN(1) }

func (p *Parser) peekN(n int) token.Token {
	for len(p.tokens) <= p.pos+n {
		p.tokens = append(p.tokens, p.l.NextToken())
	}
	return p.tokens[p.pos+n]
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos+1 >= len(p.tokens) {
		p.tokens = append(p.tokens, p.l.NextToken())
	}
	p.pos++
	return t
}

// mark returns a cursor that reset can later rewind to. Arrow-function
// detection (arrowFunctionAhead) scans with peekN and does not use it.
func (p *Parser) mark() int { return p.pos }

func (p *Parser) reset(mark int) { p.pos = mark }

func (p *Parser) curIs(t token.Type) bool  { return p.cur().Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek().Type == t }

// expect consumes the current token if it has type t, reporting an error
// and returning false (without advancing) otherwise.
func (p *Parser) expect(t token.Type, code string) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf(code, "expected %s, got %s", t, p.cur().Type)
	return false
}

func (p *Parser) expectIdentifier() (*ast.Identifier, bool) {
	if !p.curIs(token.IDENTIFIER) {
		p.errorf(ErrExpectedIdent, "expected identifier, got %s", p.cur().Type)
		return nil, false
	}
	tok := p.advance()
	return &ast.Identifier{Token: tok, Value: tok.Literal}, true
}

func (p *Parser) errorf(code, format string, args ...any) {
	pos := p.cur().Pos
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, &ParserError{Message: msg, Code: code, Pos: pos})
	p.sink.Report(pos, "%s", msg)
}

// synchronize implements panic-mode recovery: advance past tokens until a
// likely statement boundary (a semicolon, or a token that can start a new
// statement/declaration) so parsing can continue after a syntax error
// instead of cascading into spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.curIs(token.EOF) {
		if p.cur().Type == token.SEMICOLON {
			p.advance()
			return
		}
		switch p.cur().Type {
		case token.LET, token.CONST, token.VAR, token.FUNCTION, token.CLASS,
			token.INTERFACE, token.IF, token.FOR, token.WHILE, token.DO,
			token.RETURN, token.IMPORT, token.EXPORT, token.RBRACE:
			return
		}
		p.advance()
	}
}

// consumeSemicolon consumes a trailing ';' if present. Missing semicolons
// are reported but never fatal: this grammar does not implement automatic
// semicolon insertion, so a missing terminator is a diagnosed error that
// still lets the parser continue at the next token.
func (p *Parser) consumeSemicolon() {
	if p.curIs(token.SEMICOLON) {
		p.advance()
		return
	}
	p.errorf(ErrMissingSemicolon, "expected ';', got %s", p.cur().Type)
}
