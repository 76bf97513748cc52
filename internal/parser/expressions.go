package parser

import (
	"strconv"

	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// parseExpression is the entry point into the precedence cascade.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

var assignmentOperators = map[token.Type]bool{
	token.ASSIGN:         true,
	token.PLUS_ASSIGN:    true,
	token.MINUS_ASSIGN:   true,
	token.STAR_ASSIGN:    true,
	token.SLASH_ASSIGN:   true,
	token.PERCENT_ASSIGN: true,
}

// parseAssignment handles `target = value` and its compound forms. It is
// right-associative: `a = b = c` parses as `a = (b = c)`.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseConditional()
	if !assignmentOperators[p.cur().Type] {
		return left
	}
	if !isValidAssignTarget(left) {
		p.errorf(ErrInvalidAssignTarget, "invalid assignment target")
	}
	tok := p.advance()
	value := p.parseAssignment()
	return &ast.AssignmentExpression{Token: tok, Target: left, Operator: tok.Literal, Value: value}
}

// isValidAssignTarget enforces the invariant that an AssignExpr's target is
// one of {identifier, member access, index access}.
func isValidAssignTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	default:
		return false
	}
}

// parseConditional handles the ternary `test ? consequent : alternate`.
func (p *Parser) parseConditional() ast.Expression {
	test := p.parseLogicalOr()
	if !p.curIs(token.QUESTION) {
		return test
	}
	tok := p.advance()
	consequent := p.parseAssignment()
	p.expect(token.COLON, ErrInvalidSyntax)
	alternate := p.parseAssignment()
	return &ast.ConditionalExpression{Token: tok, Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.curIs(token.OR_OR) {
		tok := p.advance()
		right := p.parseLogicalAnd()
		left = &ast.LogicalExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	for p.curIs(token.AND_AND) {
		tok := p.advance()
		right := p.parseEquality()
		left = &ast.LogicalExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

var equalityOperators = map[token.Type]bool{
	token.EQ: true, token.NOT_EQ: true, token.EQ_STRICT: true, token.NOT_EQ_STRICT: true,
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for equalityOperators[p.cur().Type] {
		tok := p.advance()
		right := p.parseComparison()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

var comparisonOperators = map[token.Type]bool{
	token.GREATER: true, token.LESS: true, token.GREATER_EQ: true, token.LESS_EQ: true,
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseBitwiseOr()
	for comparisonOperators[p.cur().Type] {
		tok := p.advance()
		right := p.parseBitwiseOr()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseOr() ast.Expression {
	left := p.parseBitwiseXor()
	for p.curIs(token.PIPE) {
		tok := p.advance()
		right := p.parseBitwiseXor()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseXor() ast.Expression {
	left := p.parseBitwiseAnd()
	for p.curIs(token.CARET) {
		tok := p.advance()
		right := p.parseBitwiseAnd()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseBitwiseAnd() ast.Expression {
	left := p.parseShift()
	for p.curIs(token.AMP) {
		tok := p.advance()
		right := p.parseShift()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

var shiftOperators = map[token.Type]bool{token.SHL: true, token.SHR: true, token.USHR: true}

func (p *Parser) parseShift() ast.Expression {
	left := p.parseAdditive()
	for shiftOperators[p.cur().Type] {
		tok := p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		tok := p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

var multiplicativeOperators = map[token.Type]bool{
	token.STAR: true, token.SLASH: true, token.PERCENT: true, token.STAR_STAR: true,
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for multiplicativeOperators[p.cur().Type] {
		tok := p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}
	}
	return left
}

var unaryOperators = map[token.Type]bool{
	token.MINUS: true, token.PLUS: true, token.BANG: true, token.TILDE: true, token.TYPEOF: true,
}

// parseUnary handles prefix operators, including prefix `++`/`--`.
func (p *Parser) parseUnary() ast.Expression {
	if p.curIs(token.INC) || p.curIs(token.DEC) {
		tok := p.advance()
		operand := p.parseUnary()
		return &ast.UpdateExpression{Token: tok, Operator: tok.Literal, Operand: operand, Prefix: true}
	}
	if unaryOperators[p.cur().Type] {
		tok := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix handles trailing `++`/`--` after a call/member chain.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseCall()
	if p.curIs(token.INC) || p.curIs(token.DEC) {
		tok := p.advance()
		return &ast.UpdateExpression{Token: tok, Operator: tok.Literal, Operand: expr, Prefix: false}
	}
	return expr
}

// parseCall handles call, member, index, and optional-chaining suffixes
// chained onto a primary expression: `a.b[c](d).e`.
func (p *Parser) parseCall() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.cur().Type {
		case token.DOT:
			tok := p.advance()
			prop, ok := p.expectIdentifier()
			if !ok {
				return expr
			}
			expr = &ast.MemberExpression{Token: tok, Object: expr, Property: prop}
		case token.OPTIONAL_CHAIN:
			tok := p.advance()
			if p.curIs(token.LPAREN) {
				expr = p.parseArguments(expr, tok, true)
				continue
			}
			prop, ok := p.expectIdentifier()
			if !ok {
				return expr
			}
			expr = &ast.MemberExpression{Token: tok, Object: expr, Property: prop, Optional: true}
		case token.LBRACK:
			tok := p.advance()
			index := p.parseExpression()
			p.expect(token.RBRACK, ErrMissingRBracket)
			expr = &ast.MemberExpression{Token: tok, Object: expr, Property: index, Computed: true}
		case token.LPAREN:
			expr = p.parseArguments(expr, p.cur(), false)
		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments(callee ast.Expression, tok token.Token, optional bool) ast.Expression {
	p.expect(token.LPAREN, ErrMissingLParen)
	var args []ast.Expression
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseAssignment())
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN, ErrMissingRParen)
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: args, Optional: optional}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur().Type {
	case token.NUMBER_LITERAL:
		tok := p.advance()
		val, _ := strconv.ParseFloat(tok.Literal, 64)
		return &ast.NumberLiteral{Token: tok, Value: val}
	case token.STRING_LITERAL:
		tok := p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.BOOLEAN_LITERAL:
		tok := p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Literal == "true"}
	case token.NULL_LITERAL:
		return &ast.NullLiteral{Token: p.advance()}
	case token.UNDEFINED_LITERAL:
		return &ast.UndefinedLiteral{Token: p.advance()}
	case token.THIS:
		return &ast.ThisExpression{Token: p.advance()}
	case token.NEW:
		return p.parseNewExpression()
	case token.FUNCTION:
		return p.parseFunctionExpression()
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.IDENTIFIER:
		if p.peekIs(token.ARROW) {
			return p.parseArrowFunctionSingleParam()
		}
		tok := p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		if p.arrowFunctionAhead() {
			return p.parseArrowFunctionParenParams()
		}
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN, ErrMissingRParen)
		return expr
	default:
		tok := p.cur()
		p.errorf(ErrInvalidExpression, "unexpected token %s in expression", tok.Type)
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	}
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.advance()
	callee := p.parseCall()
	// parseCall already consumed a trailing call if present; if callee came
	// back as a CallExpression, its arguments are the constructor arguments.
	if call, ok := callee.(*ast.CallExpression); ok {
		return &ast.NewExpression{Token: tok, Callee: call.Callee, Arguments: call.Arguments}
	}
	return &ast.NewExpression{Token: tok, Callee: callee}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.advance()
	var elems []ast.Expression
	for !p.curIs(token.RBRACK) && !p.curIs(token.EOF) {
		elems = append(elems, p.parseAssignment())
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACK, ErrMissingRBracket)
	return &ast.ArrayLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.advance()
	var props []ast.Property
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		key, ok := p.expectIdentifier()
		if !ok {
			p.synchronize()
			break
		}
		var value ast.Expression = key
		if p.curIs(token.COLON) {
			p.advance()
			value = p.parseAssignment()
		}
		props = append(props, ast.Property{Key: key, Value: value})
		if p.curIs(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE, ErrMissingRBrace)
	return &ast.ObjectLiteral{Token: tok, Properties: props}
}

// arrowFunctionAhead speculatively scans from the current '(' to its
// matching ')' to check whether '=>' follows, either directly or after a
// `: ReturnType` annotation, without consuming any tokens — the only
// ambiguity this grammar's expression parser needs to resolve by lookahead
// rather than by precedence.
func (p *Parser) arrowFunctionAhead() bool {
	depth := 0
	i := 0
	for {
		t := p.peekN(i)
		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				j := i + 1
				if p.peekN(j).Type == token.COLON {
					// Skip a `: ReturnType` annotation up to the next '=>'.
					for t := p.peekN(j).Type; t != token.ARROW; t = p.peekN(j).Type {
						if t == token.SEMICOLON || t == token.EOF {
							return false
						}
						j++
					}
				}
				return p.peekN(j).Type == token.ARROW
			}
		case token.EOF:
			return false
		}
		i++
	}
}

func (p *Parser) parseArrowFunctionSingleParam() ast.Expression {
	nameTok := p.advance()
	arrowTok := p.advance() // '=>'
	param := ast.Param{Name: &ast.Identifier{Token: nameTok, Value: nameTok.Literal}}
	body := p.parseArrowBody()
	return &ast.FunctionExpression{Token: arrowTok, Params: []ast.Param{param}, Body: body, Arrow: true}
}

func (p *Parser) parseArrowFunctionParenParams() ast.Expression {
	tok := p.cur()
	params := p.parseParamList()
	var returnType *ast.TypeAnnotation
	if p.curIs(token.COLON) {
		p.advance()
		returnType = p.parseType()
	}
	p.expect(token.ARROW, ErrInvalidSyntax)
	body := p.parseArrowBody()
	return &ast.FunctionExpression{Token: tok, Params: params, ReturnType: returnType, Body: body, Arrow: true}
}

// parseArrowBody accepts either a `{ ... }` block body or a single
// expression body, wrapping the latter in an implicit return so the code
// generator only ever deals with block bodies.
func (p *Parser) parseArrowBody() *ast.BlockStatement {
	if p.curIs(token.LBRACE) {
		return p.parseBlockStatement()
	}
	tok := p.cur()
	expr := p.parseAssignment()
	return &ast.BlockStatement{
		Token:      tok,
		Statements: []ast.Statement{&ast.ReturnStatement{Token: tok, Value: expr}},
	}
}
