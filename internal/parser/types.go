package parser

import (
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// parseType parses a full type annotation: a union of intersections of
// postfix (array) types of primary types. Binding tightest to loosest:
// primary < array-suffix < intersection < union.
func (p *Parser) parseType() *ast.TypeAnnotation {
	return p.parseUnionType()
}

// parseUnionType parses one intersection type, then loops consuming `| T`
// as long as a pipe follows, accumulating a flat list of options rather
// than nesting binary unions. This runs regardless of whether the first
// option was parenthesized, so a parenthesized function type as the first
// union member still lets the following `|` continue the union.
func (p *Parser) parseUnionType() *ast.TypeAnnotation {
	first := p.parseIntersectionType()
	if !p.curIs(token.PIPE) {
		return first
	}
	tok := p.cur()
	options := []*ast.TypeAnnotation{first}
	for p.curIs(token.PIPE) {
		p.advance()
		options = append(options, p.parseIntersectionType())
	}
	return &ast.TypeAnnotation{Kind: ast.TypeUnion, Token: tok, Options: options}
}

func (p *Parser) parseIntersectionType() *ast.TypeAnnotation {
	first := p.parsePostfixType()
	if !p.curIs(token.AMP) {
		return first
	}
	tok := p.cur()
	options := []*ast.TypeAnnotation{first}
	for p.curIs(token.AMP) {
		p.advance()
		options = append(options, p.parsePostfixType())
	}
	return &ast.TypeAnnotation{Kind: ast.TypeIntersection, Token: tok, Options: options}
}

// parsePostfixType wraps a primary type in zero or more `[]` array
// suffixes: `string[][]` is an array of arrays of string.
func (p *Parser) parsePostfixType() *ast.TypeAnnotation {
	base := p.parsePrimaryType()
	for p.curIs(token.LBRACK) && p.peekIs(token.RBRACK) {
		tok := p.advance()
		p.advance()
		base = &ast.TypeAnnotation{Kind: ast.TypeArray, Token: tok, Elem: base}
	}
	return base
}

func (p *Parser) parsePrimaryType() *ast.TypeAnnotation {
	switch p.cur().Type {
	case token.NUMBER, token.STRING, token.BOOLEAN, token.ANY, token.VOID:
		tok := p.advance()
		return ast.NewPrimitiveType(tok, tok.Literal)
	case token.NULL_LITERAL:
		tok := p.advance()
		return ast.NewPrimitiveType(tok, "null")
	case token.UNDEFINED_LITERAL:
		tok := p.advance()
		return ast.NewPrimitiveType(tok, "undefined")
	case token.IDENTIFIER:
		tok := p.advance()
		if p.curIs(token.LESS) {
			return p.parseGenericArgs(tok)
		}
		return ast.NewPrimitiveType(tok, tok.Literal)
	case token.LPAREN:
		// '(' opens a function type when followed by ')' or by a parameter
		// (a name then ':' or '?'); any other '(' groups a nested type.
		next, after := p.peek().Type, p.peekN(2).Type
		isParam := next == token.IDENTIFIER && (after == token.COLON || after == token.QUESTION)
		if next == token.RPAREN || next == token.COLON || isParam {
			return p.parseFunctionType()
		}
		p.advance()
		inner := p.parseType()
		p.expect(token.RPAREN, ErrMissingRParen)
		return inner
	case token.LBRACE:
		return p.parseObjectType()
	default:
		tok := p.cur()
		p.errorf(ErrExpectedType, "expected type, got %s", tok.Type)
		p.advance()
		return ast.AnyType
	}
}

// parseGenericArgs parses `Name<T, ...>`. `Array<T>` is spec.md §4.3's
// "keyword-style array" production: it is built as the same ast.TypeArray
// node a `T[]` suffix produces, not as a generic, so the two spellings are
// indistinguishable to the rest of the pipeline.
func (p *Parser) parseGenericArgs(nameTok token.Token) *ast.TypeAnnotation {
	p.advance() // '<'
	args := []*ast.TypeAnnotation{p.parseType()}
	for p.curIs(token.COMMA) {
		p.advance()
		args = append(args, p.parseType())
	}
	p.expect(token.GREATER, ErrExpectedType)
	if nameTok.Literal == "Array" && len(args) == 1 {
		return &ast.TypeAnnotation{Kind: ast.TypeArray, Token: nameTok, Elem: args[0]}
	}
	return &ast.TypeAnnotation{Kind: ast.TypeGeneric, Token: nameTok, Name: nameTok.Literal, Args: args}
}

// parseFunctionType parses `(p1: T1, p2: T2) => R`. A parameter name is
// skipped when present; only the parameter types are kept.
func (p *Parser) parseFunctionType() *ast.TypeAnnotation {
	tok := p.advance() // '('
	var params []*ast.TypeAnnotation
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if p.curIs(token.IDENTIFIER) {
			p.advance()
		}
		if p.curIs(token.QUESTION) {
			p.advance()
		}
		p.expect(token.COLON, ErrExpectedType)
		params = append(params, p.parseType())
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN, ErrMissingRParen)
	p.expect(token.ARROW, ErrExpectedType)
	ret := p.parseType()
	return &ast.TypeAnnotation{Kind: ast.TypeFunction, Token: tok, Params: params, Return: ret}
}

func (p *Parser) parseObjectType() *ast.TypeAnnotation {
	tok := p.advance() // '{'
	var members []ast.ObjectTypeMember
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		name, ok := p.expectIdentifier()
		if !ok {
			p.synchronize()
			break
		}
		optional := false
		if p.curIs(token.QUESTION) {
			p.advance()
			optional = true
		}
		p.expect(token.COLON, ErrExpectedType)
		typ := p.parseType()
		members = append(members, ast.ObjectTypeMember{Name: name.Value, Type: typ, Optional: optional})
		if p.curIs(token.SEMICOLON) || p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace)
	return &ast.TypeAnnotation{Kind: ast.TypeObject, Token: tok, Members: members}
}

// parseParamList parses a parenthesized, comma-separated parameter list
// shared by function declarations, function expressions, arrow functions,
// and methods.
func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LPAREN, ErrMissingLParen)
	var params []ast.Param
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		param := ast.Param{}
		if p.curIs(token.ELLIPSIS) {
			p.advance()
			param.Rest = true
		}
		name, ok := p.expectIdentifier()
		if !ok {
			p.synchronize()
			break
		}
		param.Name = name
		if p.curIs(token.QUESTION) {
			p.advance()
			param.Optional = true
		}
		if p.curIs(token.COLON) {
			p.advance()
			param.TypeAnn = p.parseType()
		}
		if p.curIs(token.ASSIGN) {
			p.advance()
			param.Default = p.parseAssignment()
		}
		params = append(params, param)
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN, ErrMissingRParen)
	return params
}
