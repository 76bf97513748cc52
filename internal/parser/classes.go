package parser

import (
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// parseClassDeclaration parses `class Name extends Base implements I, J { ... }`.
// Member modifiers (public/private/protected/static/readonly) are accepted
// in any order before each member; a member is a method iff the next
// non-modifier token is `function`, or an identifier immediately followed
// by `(`; otherwise it is a property.
func (p *Parser) parseClassDeclaration() ast.Statement {
	tok := p.advance()
	name, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()
		return nil
	}

	var super *ast.Identifier
	if p.curIs(token.EXTENDS) {
		p.advance()
		super, _ = p.expectIdentifier()
	}

	var interfaces []*ast.Identifier
	if p.curIs(token.IMPLEMENTS) {
		p.advance()
		for {
			id, ok := p.expectIdentifier()
			if !ok {
				break
			}
			interfaces = append(interfaces, id)
			if p.curIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}

	p.expect(token.LBRACE, ErrMissingLBrace)
	var members []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		member := p.parseClassMember()
		if member != nil {
			members = append(members, member)
		} else {
			p.synchronize()
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace)

	return &ast.ClassDeclaration{
		Token:      tok,
		Name:       name,
		SuperClass: super,
		Interfaces: interfaces,
		Members:    members,
	}
}

// classModifiers accumulates the modifier keywords accepted before a class
// member, in whatever order the source used.
type classModifiers struct {
	access   ast.Modifier
	static   bool
	readonly bool
}

func (p *Parser) parseClassMemberModifiers() classModifiers {
	m := classModifiers{access: ast.ModPublic}
	for {
		switch p.cur().Type {
		case token.PUBLIC:
			p.advance()
			m.access = ast.ModPublic
		case token.PRIVATE:
			p.advance()
			m.access = ast.ModPrivate
		case token.PROTECTED:
			p.advance()
			m.access = ast.ModProtected
		case token.STATIC:
			p.advance()
			m.static = true
		case token.READONLY:
			p.advance()
			m.readonly = true
		default:
			return m
		}
	}
}

// parseClassMember dispatches a single member to property or method
// parsing after consuming any leading modifiers: a member is a method iff
// the next non-modifier token is `function`, or an identifier immediately
// followed by `(`.
func (p *Parser) parseClassMember() ast.Statement {
	mods := p.parseClassMemberModifiers()

	if p.curIs(token.FUNCTION) {
		return p.parseMethodMember(mods, true)
	}
	if p.curIs(token.IDENTIFIER) && p.peekIs(token.LPAREN) {
		return p.parseMethodMember(mods, false)
	}
	return p.parsePropertyMember(mods)
}

func (p *Parser) parseMethodMember(mods classModifiers, hasFunctionKeyword bool) ast.Statement {
	tok := p.cur()
	if hasFunctionKeyword {
		p.advance()
	}
	name, ok := p.expectIdentifier()
	if !ok {
		return nil
	}
	params := p.parseParamList()
	var returnType *ast.TypeAnnotation
	if p.curIs(token.COLON) {
		p.advance()
		returnType = p.parseType()
	}
	body := p.parseBlockStatement()
	return &ast.MethodDeclaration{
		Token:      tok,
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Modifier:   mods.access,
		Static:     mods.static,
	}
}

func (p *Parser) parsePropertyMember(mods classModifiers) ast.Statement {
	name, ok := p.expectIdentifier()
	if !ok {
		return nil
	}
	tok := name.Token
	var typeAnn *ast.TypeAnnotation
	if p.curIs(token.COLON) {
		p.advance()
		typeAnn = p.parseType()
	}
	var init ast.Expression
	if p.curIs(token.ASSIGN) {
		p.advance()
		init = p.parseAssignment()
	}
	p.consumeSemicolon()
	return &ast.PropertyDeclaration{
		Token:    tok,
		Name:     name,
		TypeAnn:  typeAnn,
		Init:     init,
		Modifier: mods.access,
		Static:   mods.static,
		Readonly: mods.readonly,
	}
}
