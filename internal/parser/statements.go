package parser

import (
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// parseStatement dispatches on the current token to the statement-specific
// parse function. A malformed statement is synchronized past rather than
// aborting the whole parse.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		return &ast.EmptyStatement{Token: p.advance()}
	case token.LET, token.CONST, token.VAR:
		stmt := p.parseVariableDeclaration()
		p.consumeSemicolon()
		return stmt
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.INTERFACE:
		return p.parseInterfaceDeclaration()
	case token.TYPE:
		stmt := p.parseTypeAliasDeclaration()
		p.consumeSemicolon()
		return stmt
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		tok := p.advance()
		p.consumeSemicolon()
		return &ast.BreakStatement{Token: tok}
	case token.CONTINUE:
		tok := p.advance()
		p.consumeSemicolon()
		return &ast.ContinueStatement{Token: tok}
	case token.IMPORT:
		return p.parseImportDeclaration()
	case token.EXPORT:
		return p.parseExportDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.advance() // '{'
	block := &ast.BlockStatement{Token: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace)
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur()
	expr := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN, ErrMissingLParen)
	test := p.parseExpression()
	p.expect(token.RPAREN, ErrMissingRParen)
	consequent := p.parseStatement()
	var alternate ast.Statement
	if p.curIs(token.ELSE) {
		p.advance()
		alternate = p.parseStatement()
	}
	return &ast.IfStatement{Token: tok, Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN, ErrMissingLParen)
	test := p.parseExpression()
	p.expect(token.RPAREN, ErrMissingRParen)
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Test: test, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	tok := p.advance()
	body := p.parseStatement()
	p.expect(token.WHILE, ErrInvalidSyntax)
	p.expect(token.LPAREN, ErrMissingLParen)
	test := p.parseExpression()
	p.expect(token.RPAREN, ErrMissingRParen)
	p.consumeSemicolon()
	return &ast.DoWhileStatement{Token: tok, Body: body, Test: test}
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN, ErrMissingLParen)

	var init ast.Node
	switch p.cur().Type {
	case token.SEMICOLON:
		// no init clause
	case token.LET, token.CONST, token.VAR:
		init = p.parseVariableDeclaration()
	default:
		init = p.parseExpression()
	}
	p.expect(token.SEMICOLON, ErrMissingSemicolon)

	var test ast.Expression
	if !p.curIs(token.SEMICOLON) {
		test = p.parseExpression()
	}
	p.expect(token.SEMICOLON, ErrMissingSemicolon)

	var update ast.Expression
	if !p.curIs(token.RPAREN) {
		update = p.parseExpression()
	}
	p.expect(token.RPAREN, ErrMissingRParen)

	body := p.parseStatement()
	return &ast.ForStatement{Token: tok, Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.advance()
	var value ast.Expression
	if !p.curIs(token.SEMICOLON) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		value = p.parseExpression()
	}
	p.consumeSemicolon()
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	tok := p.advance()
	decl := &ast.VariableDeclaration{Token: tok, Kind: tok.Literal}
	for {
		name, ok := p.expectIdentifier()
		if !ok {
			p.synchronize()
			break
		}
		d := ast.VariableDeclarator{Name: name}
		if p.curIs(token.COLON) {
			p.advance()
			d.TypeAnn = p.parseType()
		}
		if p.curIs(token.ASSIGN) {
			p.advance()
			d.Init = p.parseAssignment()
		}
		decl.Declarators = append(decl.Declarators, d)
		if p.curIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return decl
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	tok := p.advance()
	name, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()
		return nil
	}
	params := p.parseParamList()
	var returnType *ast.TypeAnnotation
	if p.curIs(token.COLON) {
		p.advance()
		returnType = p.parseType()
	}
	body := p.parseBlockStatement()
	return &ast.FunctionDeclaration{Token: tok, Name: name, Params: params, ReturnType: returnType, Body: body}
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	tok := p.advance()
	var name *ast.Identifier
	if p.curIs(token.IDENTIFIER) {
		name, _ = p.expectIdentifier()
	}
	params := p.parseParamList()
	var returnType *ast.TypeAnnotation
	if p.curIs(token.COLON) {
		p.advance()
		returnType = p.parseType()
	}
	body := p.parseBlockStatement()
	return &ast.FunctionExpression{Token: tok, Name: name, Params: params, ReturnType: returnType, Body: body}
}

func (p *Parser) parseTypeAliasDeclaration() ast.Statement {
	tok := p.advance()
	name, ok := p.expectIdentifier()
	if !ok {
		p.synchronize()
		return nil
	}
	p.expect(token.ASSIGN, ErrInvalidSyntax)
	value := p.parseType()
	return &ast.TypeAliasDeclaration{Token: tok, Name: name, Value: value}
}

// parseImportDeclaration handles every import form the grammar recognizes:
//
//	import { a, b as c } from "m";
//	import d from "m";
//	import d, { a } from "m";
//	import * as ns from "m";
func (p *Parser) parseImportDeclaration() ast.Statement {
	tok := p.advance()
	decl := &ast.ImportDeclaration{Token: tok}

	if p.curIs(token.IDENTIFIER) {
		name, _ := p.expectIdentifier()
		decl.DefaultLocal = name
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}

	if p.curIs(token.STAR) {
		p.advance()
		p.expect(token.AS, ErrInvalidSyntax)
		name, ok := p.expectIdentifier()
		if ok {
			decl.NamespaceLocal = name
		}
	} else if p.curIs(token.LBRACE) {
		decl.Specifiers = p.parseImportSpecifierList()
	}

	p.expect(token.FROM, ErrInvalidSyntax)
	if p.curIs(token.STRING_LITERAL) {
		decl.Source = p.advance().Literal
	} else {
		p.errorf(ErrInvalidSyntax, "expected module path string, got %s", p.cur().Type)
	}
	p.consumeSemicolon()
	return decl
}

func (p *Parser) parseImportSpecifierList() []ast.ImportSpecifier {
	p.advance() // '{'
	var specs []ast.ImportSpecifier
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		imported, ok := p.expectIdentifier()
		if !ok {
			p.synchronize()
			break
		}
		local := imported
		if p.curIs(token.AS) {
			p.advance()
			local, ok = p.expectIdentifier()
			if !ok {
				p.synchronize()
				break
			}
		}
		specs = append(specs, ast.ImportSpecifier{Imported: imported, Local: local})
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace)
	return specs
}

// parseExportDeclaration handles every export form the grammar recognizes:
//
//	export default <expression>;
//	export <declaration>
//	export { a, b as c } [from "m"];
func (p *Parser) parseExportDeclaration() ast.Statement {
	tok := p.advance()
	if p.curIs(token.DEFAULT) {
		p.advance()
		decl := p.parseStatement()
		return &ast.ExportDeclaration{Token: tok, Declaration: decl, Default: true}
	}
	if p.curIs(token.LBRACE) {
		p.advance()
		var specs []ast.ExportSpecifier
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
			local, ok := p.expectIdentifier()
			if !ok {
				p.synchronize()
				break
			}
			exported := local
			if p.curIs(token.AS) {
				p.advance()
				exported, ok = p.expectIdentifier()
				if !ok {
					p.synchronize()
					break
				}
			}
			specs = append(specs, ast.ExportSpecifier{Local: local, Exported: exported})
			if p.curIs(token.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		p.expect(token.RBRACE, ErrMissingRBrace)
		source := ""
		if p.curIs(token.FROM) {
			p.advance()
			if p.curIs(token.STRING_LITERAL) {
				source = p.advance().Literal
			} else {
				p.errorf(ErrInvalidSyntax, "expected module path string, got %s", p.cur().Type)
			}
		}
		p.consumeSemicolon()
		return &ast.ExportDeclaration{Token: tok, Specifiers: specs, Source: source}
	}
	decl := p.parseStatement()
	return &ast.ExportDeclaration{Token: tok, Declaration: decl}
}
