package parser

import (
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// parseInterfaceDeclaration parses `interface Name extends Base { ... }`.
// Every member signature ends in `;`; a member followed by `(` is a method
// signature requiring a `:` return type, otherwise a property signature
// with a mandatory `: type`.
func (p *Parser) parseInterfaceDeclaration() ast.Statement {
	tok := p.advance()
	name, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()
		return nil
	}

	var extends []*ast.Identifier
	if p.curIs(token.EXTENDS) {
		p.advance()
		for {
			id, ok := p.expectIdentifier()
			if !ok {
				break
			}
			extends = append(extends, id)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}

	p.expect(token.LBRACE, ErrMissingLBrace)
	var members []ast.InterfaceMember
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		member, ok := p.parseInterfaceMember()
		if !ok {
			p.synchronize()
			continue
		}
		members = append(members, member)
	}
	p.expect(token.RBRACE, ErrMissingRBrace)

	return &ast.InterfaceDeclaration{Token: tok, Name: name, Extends: extends, Members: members}
}

func (p *Parser) parseInterfaceMember() (ast.InterfaceMember, bool) {
	if p.curIs(token.READONLY) {
		p.advance()
	}
	name, ok := p.expectIdentifier()
	if !ok {
		return ast.InterfaceMember{}, false
	}

	optional := false
	if p.curIs(token.QUESTION) {
		p.advance()
		optional = true
	}

	if p.curIs(token.LPAREN) {
		params := p.parseParamList()
		p.expect(token.COLON, ErrExpectedType)
		ret := p.parseType()
		p.consumeSemicolon()
		return ast.InterfaceMember{Name: name, Params: params, ReturnType: ret, Optional: optional}, true
	}

	p.expect(token.COLON, ErrExpectedType)
	typeAnn := p.parseType()
	p.consumeSemicolon()
	return ast.InterfaceMember{Name: name, TypeAnn: typeAnn, Optional: optional}, true
}
