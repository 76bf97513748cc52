// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and walked by the semantic analyzer and code generator.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/go-tsc/pkg/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal of the token this node starts with,
	// useful in tests and debug dumps.
	TokenLiteral() string

	// String renders the node back to source-like text, used by debug
	// tooling (the `parse` subcommand) and by the code generator only for
	// the comments it emits in place of import/export declarations.
	String() string

	// Pos returns the node's source position for diagnostic reporting.
	Pos() token.Position

	// Accept dispatches to the appropriate Visit method on v.
	Accept(v Visitor)
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Typed is implemented by every expression node, carrying the type the
// semantic analyzer inferred or validated for it. Nil until analysis runs.
type Typed interface {
	GetType() *TypeAnnotation
	SetType(t *TypeAnnotation)
}

// Program is the root of the AST: an ordered sequence of top-level
// statements. IsModule is set when any import/export keyword token
// appeared anywhere in the token stream, independent of where it
// ultimately landed in the tree.
type Program struct {
	Statements []Statement
	IsModule   bool
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Identifier is a bare name reference: a variable, function, class, or
// parameter name used as an expression.
type Identifier struct {
	Token token.Token
	Value string
	Type  *TypeAnnotation
}

func (i *Identifier) expressionNode()          {}
func (i *Identifier) TokenLiteral() string     { return i.Token.Literal }
func (i *Identifier) String() string           { return i.Value }
func (i *Identifier) Pos() token.Position      { return i.Token.Pos }
func (i *Identifier) Accept(v Visitor)         { v.VisitIdentifier(i) }
func (i *Identifier) GetType() *TypeAnnotation { return i.Type }
func (i *Identifier) SetType(t *TypeAnnotation) { i.Type = t }

// NumberLiteral is a numeric literal. Token keeps the raw source text; the
// code generator emits the decoded Value in shortest form ('g'
// formatting), so integral values print without a fractional part.
type NumberLiteral struct {
	Token token.Token
	Value float64
	Type  *TypeAnnotation
}

func (n *NumberLiteral) expressionNode()           {}
func (n *NumberLiteral) TokenLiteral() string      { return n.Token.Literal }
func (n *NumberLiteral) String() string            { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position       { return n.Token.Pos }
func (n *NumberLiteral) Accept(v Visitor)          { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) GetType() *TypeAnnotation  { return n.Type }
func (n *NumberLiteral) SetType(t *TypeAnnotation) { n.Type = t }

// StringLiteral is a quoted string literal; Value is the decoded text with
// escapes already resolved by the lexer.
type StringLiteral struct {
	Token token.Token
	Value string
	Type  *TypeAnnotation
}

func (s *StringLiteral) expressionNode()           {}
func (s *StringLiteral) TokenLiteral() string      { return s.Token.Literal }
func (s *StringLiteral) String() string            { return "\"" + s.Value + "\"" }
func (s *StringLiteral) Pos() token.Position       { return s.Token.Pos }
func (s *StringLiteral) Accept(v Visitor)          { v.VisitStringLiteral(s) }
func (s *StringLiteral) GetType() *TypeAnnotation  { return s.Type }
func (s *StringLiteral) SetType(t *TypeAnnotation) { s.Type = t }

// BooleanLiteral is the `true` or `false` literal.
type BooleanLiteral struct {
	Token token.Token
	Value bool
	Type  *TypeAnnotation
}

func (b *BooleanLiteral) expressionNode()           {}
func (b *BooleanLiteral) TokenLiteral() string      { return b.Token.Literal }
func (b *BooleanLiteral) String() string            { return b.Token.Literal }
func (b *BooleanLiteral) Pos() token.Position       { return b.Token.Pos }
func (b *BooleanLiteral) Accept(v Visitor)          { v.VisitBooleanLiteral(b) }
func (b *BooleanLiteral) GetType() *TypeAnnotation  { return b.Type }
func (b *BooleanLiteral) SetType(t *TypeAnnotation) { b.Type = t }

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Token token.Token
	Type  *TypeAnnotation
}

func (n *NullLiteral) expressionNode()           {}
func (n *NullLiteral) TokenLiteral() string      { return n.Token.Literal }
func (n *NullLiteral) String() string            { return "null" }
func (n *NullLiteral) Pos() token.Position       { return n.Token.Pos }
func (n *NullLiteral) Accept(v Visitor)          { v.VisitNullLiteral(n) }
func (n *NullLiteral) GetType() *TypeAnnotation  { return n.Type }
func (n *NullLiteral) SetType(t *TypeAnnotation) { n.Type = t }

// UndefinedLiteral is the `undefined` literal.
type UndefinedLiteral struct {
	Token token.Token
	Type  *TypeAnnotation
}

func (u *UndefinedLiteral) expressionNode()           {}
func (u *UndefinedLiteral) TokenLiteral() string      { return u.Token.Literal }
func (u *UndefinedLiteral) String() string            { return "undefined" }
func (u *UndefinedLiteral) Pos() token.Position       { return u.Token.Pos }
func (u *UndefinedLiteral) Accept(v Visitor)          { v.VisitUndefinedLiteral(u) }
func (u *UndefinedLiteral) GetType() *TypeAnnotation  { return u.Type }
func (u *UndefinedLiteral) SetType(t *TypeAnnotation) { u.Type = t }

// ThisExpression is the `this` keyword used inside a method or
// constructor body.
type ThisExpression struct {
	Token token.Token
	Type  *TypeAnnotation
}

func (t *ThisExpression) expressionNode()            {}
func (t *ThisExpression) TokenLiteral() string       { return t.Token.Literal }
func (t *ThisExpression) String() string             { return "this" }
func (t *ThisExpression) Pos() token.Position        { return t.Token.Pos }
func (t *ThisExpression) Accept(v Visitor)           { v.VisitThisExpression(t) }
func (t *ThisExpression) GetType() *TypeAnnotation   { return t.Type }
func (t *ThisExpression) SetType(typ *TypeAnnotation) { t.Type = typ }

// ArrayLiteral is an `[elem, elem, ...]` expression.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
	Type     *TypeAnnotation
}

func (a *ArrayLiteral) expressionNode()      {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() token.Position  { return a.Token.Pos }
func (a *ArrayLiteral) Accept(v Visitor)     { v.VisitArrayLiteral(a) }
func (a *ArrayLiteral) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
func (a *ArrayLiteral) GetType() *TypeAnnotation  { return a.Type }
func (a *ArrayLiteral) SetType(t *TypeAnnotation) { a.Type = t }

// Property is a single `key: value` pair in an ObjectLiteral.
type Property struct {
	Key   *Identifier
	Value Expression
}

// ObjectLiteral is a `{ key: value, ... }` expression.
type ObjectLiteral struct {
	Token      token.Token
	Properties []Property
	Type       *TypeAnnotation
}

func (o *ObjectLiteral) expressionNode()      {}
func (o *ObjectLiteral) TokenLiteral() string { return o.Token.Literal }
func (o *ObjectLiteral) Pos() token.Position  { return o.Token.Pos }
func (o *ObjectLiteral) Accept(v Visitor)     { v.VisitObjectLiteral(o) }
func (o *ObjectLiteral) String() string {
	props := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		props[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(props, ", ") + "}"
}
func (o *ObjectLiteral) GetType() *TypeAnnotation  { return o.Type }
func (o *ObjectLiteral) SetType(t *TypeAnnotation) { o.Type = t }

// BinaryExpression is `left OP right` for any arithmetic, comparison,
// equality, or bitwise operator (`&&`/`||` are LogicalExpression).
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
	Type     *TypeAnnotation
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpression) Pos() token.Position  { return b.Token.Pos }
func (b *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(b) }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}
func (b *BinaryExpression) GetType() *TypeAnnotation  { return b.Type }
func (b *BinaryExpression) SetType(t *TypeAnnotation) { b.Type = t }

// LogicalExpression is `left && right` or `left || right`, kept distinct
// from BinaryExpression because the semantic analyzer types it by its own
// rule (boolean operands, boolean result); the code generator emits both
// node kinds the same way.
type LogicalExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
	Type     *TypeAnnotation
}

func (l *LogicalExpression) expressionNode()      {}
func (l *LogicalExpression) TokenLiteral() string { return l.Token.Literal }
func (l *LogicalExpression) Pos() token.Position  { return l.Token.Pos }
func (l *LogicalExpression) Accept(v Visitor)     { v.VisitLogicalExpression(l) }
func (l *LogicalExpression) String() string {
	return "(" + l.Left.String() + " " + l.Operator + " " + l.Right.String() + ")"
}
func (l *LogicalExpression) GetType() *TypeAnnotation  { return l.Type }
func (l *LogicalExpression) SetType(t *TypeAnnotation) { l.Type = t }

// UnaryExpression is a prefix operator applied to a single operand:
// `-x`, `+x`, `!x`, `~x`, `typeof x`. Prefix `++x`/`--x` are
// UpdateExpression.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
	Type     *TypeAnnotation
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpression) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryExpression) Accept(v Visitor)     { v.VisitUnaryExpression(u) }
func (u *UnaryExpression) String() string {
	sep := ""
	if len(u.Operator) > 0 && isLetterByte(u.Operator[0]) {
		sep = " "
	}
	return "(" + u.Operator + sep + u.Operand.String() + ")"
}
func (u *UnaryExpression) GetType() *TypeAnnotation  { return u.Type }
func (u *UnaryExpression) SetType(t *TypeAnnotation) { u.Type = t }

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// UpdateExpression is `++x`/`--x` (Prefix true) or `x++`/`x--`.
type UpdateExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
	Prefix   bool
	Type     *TypeAnnotation
}

func (u *UpdateExpression) expressionNode()      {}
func (u *UpdateExpression) TokenLiteral() string { return u.Token.Literal }
func (u *UpdateExpression) Pos() token.Position  { return u.Token.Pos }
func (u *UpdateExpression) Accept(v Visitor)     { v.VisitUpdateExpression(u) }
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return u.Operator + u.Operand.String()
	}
	return u.Operand.String() + u.Operator
}
func (u *UpdateExpression) GetType() *TypeAnnotation  { return u.Type }
func (u *UpdateExpression) SetType(t *TypeAnnotation) { u.Type = t }

// AssignmentExpression is `target OP value` for `=`, `+=`, `-=`, `*=`,
// `/=`, `%=`.
type AssignmentExpression struct {
	Token    token.Token
	Target   Expression
	Operator string
	Value    Expression
	Type     *TypeAnnotation
}

func (a *AssignmentExpression) expressionNode()      {}
func (a *AssignmentExpression) TokenLiteral() string { return a.Token.Literal }
func (a *AssignmentExpression) Pos() token.Position  { return a.Token.Pos }
func (a *AssignmentExpression) Accept(v Visitor)     { v.VisitAssignmentExpression(a) }
func (a *AssignmentExpression) String() string {
	return a.Target.String() + " " + a.Operator + " " + a.Value.String()
}
func (a *AssignmentExpression) GetType() *TypeAnnotation  { return a.Type }
func (a *AssignmentExpression) SetType(t *TypeAnnotation) { a.Type = t }

// ConditionalExpression is the ternary `test ? consequent : alternate`.
type ConditionalExpression struct {
	Token       token.Token
	Test        Expression
	Consequent  Expression
	Alternate   Expression
	Type        *TypeAnnotation
}

func (c *ConditionalExpression) expressionNode()      {}
func (c *ConditionalExpression) TokenLiteral() string { return c.Token.Literal }
func (c *ConditionalExpression) Pos() token.Position  { return c.Token.Pos }
func (c *ConditionalExpression) Accept(v Visitor)     { v.VisitConditionalExpression(c) }
func (c *ConditionalExpression) String() string {
	return "(" + c.Test.String() + " ? " + c.Consequent.String() + " : " + c.Alternate.String() + ")"
}
func (c *ConditionalExpression) GetType() *TypeAnnotation  { return c.Type }
func (c *ConditionalExpression) SetType(t *TypeAnnotation) { c.Type = t }

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
	Optional  bool // true when reached via `?.(`
	Type      *TypeAnnotation
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Pos() token.Position  { return c.Token.Pos }
func (c *CallExpression) Accept(v Visitor)     { v.VisitCallExpression(c) }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
func (c *CallExpression) GetType() *TypeAnnotation  { return c.Type }
func (c *CallExpression) SetType(t *TypeAnnotation) { c.Type = t }

// NewExpression is `new Callee(arguments...)`.
type NewExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
	Type      *TypeAnnotation
}

func (n *NewExpression) expressionNode()      {}
func (n *NewExpression) TokenLiteral() string { return n.Token.Literal }
func (n *NewExpression) Pos() token.Position  { return n.Token.Pos }
func (n *NewExpression) Accept(v Visitor)     { v.VisitNewExpression(n) }
func (n *NewExpression) String() string {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = a.String()
	}
	return "new " + n.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}
func (n *NewExpression) GetType() *TypeAnnotation  { return n.Type }
func (n *NewExpression) SetType(t *TypeAnnotation) { n.Type = t }

// MemberExpression is `object.property` or, when Computed, `object[property]`.
type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression
	Computed bool
	Optional bool // true when reached via `?.`
	Type     *TypeAnnotation
}

func (m *MemberExpression) expressionNode()      {}
func (m *MemberExpression) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpression) Pos() token.Position  { return m.Token.Pos }
func (m *MemberExpression) Accept(v Visitor)     { v.VisitMemberExpression(m) }
func (m *MemberExpression) String() string {
	if m.Computed {
		return m.Object.String() + "[" + m.Property.String() + "]"
	}
	op := "."
	if m.Optional {
		op = "?."
	}
	return m.Object.String() + op + m.Property.String()
}
func (m *MemberExpression) GetType() *TypeAnnotation  { return m.Type }
func (m *MemberExpression) SetType(t *TypeAnnotation) { m.Type = t }

// Param is a single function/method parameter.
type Param struct {
	Name     *Identifier
	TypeAnn  *TypeAnnotation
	Optional bool
	Default  Expression
	Rest     bool
}

// FunctionExpression is a `function(...) { ... }` or arrow-function
// expression. Arrow is true when the source used `=>` syntax; it selects
// arrow-form emission in the code generator, and the semantic analyzer
// treats both forms alike.
type FunctionExpression struct {
	Token      token.Token
	Name       *Identifier // nil for anonymous function expressions and arrows
	Params     []Param
	ReturnType *TypeAnnotation
	Body       *BlockStatement
	Arrow      bool
	Type       *TypeAnnotation
}

func (f *FunctionExpression) expressionNode()      {}
func (f *FunctionExpression) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionExpression) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionExpression) Accept(v Visitor)     { v.VisitFunctionExpression(f) }
func (f *FunctionExpression) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name.String()
	}
	name := ""
	if f.Name != nil {
		name = " " + f.Name.Value
	}
	if f.Arrow {
		return "(" + strings.Join(params, ", ") + ") => " + f.Body.String()
	}
	return "function" + name + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}
func (f *FunctionExpression) GetType() *TypeAnnotation  { return f.Type }
func (f *FunctionExpression) SetType(t *TypeAnnotation) { f.Type = t }

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// BlockStatement is a `{ ... }` sequence of statements, used for function
// bodies and control-flow bodies.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStatement) statementNode()       {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BlockStatement) Accept(v Visitor)     { v.VisitBlockStatement(b) }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	Token token.Token
}

func (e *EmptyStatement) statementNode()       {}
func (e *EmptyStatement) TokenLiteral() string { return e.Token.Literal }
func (e *EmptyStatement) Pos() token.Position  { return e.Token.Pos }
func (e *EmptyStatement) Accept(v Visitor)     { v.VisitEmptyStatement(e) }
func (e *EmptyStatement) String() string       { return ";" }

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() token.Position  { return e.Token.Pos }
func (e *ExpressionStatement) Accept(v Visitor)     { v.VisitExpressionStatement(e) }
func (e *ExpressionStatement) String() string {
	if e.Expression != nil {
		return e.Expression.String() + ";"
	}
	return ";"
}

// VariableDeclarator binds one name to an optional initializer within a
// VariableDeclaration (TypeScript/JS allows comma-separated declarators:
// `let a = 1, b = 2;`).
type VariableDeclarator struct {
	Name    *Identifier
	TypeAnn *TypeAnnotation
	Init    Expression
}

// VariableDeclaration is a `let`/`const`/`var` statement.
type VariableDeclaration struct {
	Token        token.Token // LET, CONST, or VAR
	Kind         string
	Declarators  []VariableDeclarator
}

func (v *VariableDeclaration) statementNode()       {}
func (v *VariableDeclaration) TokenLiteral() string { return v.Token.Literal }
func (v *VariableDeclaration) Pos() token.Position  { return v.Token.Pos }
func (v *VariableDeclaration) Accept(vi Visitor)    { vi.VisitVariableDeclaration(v) }
func (v *VariableDeclaration) String() string {
	parts := make([]string, len(v.Declarators))
	for i, d := range v.Declarators {
		s := d.Name.Value
		if d.Init != nil {
			s += " = " + d.Init.String()
		}
		parts[i] = s
	}
	return v.Kind + " " + strings.Join(parts, ", ") + ";"
}

// FunctionDeclaration is a named top-level or nested function declaration.
type FunctionDeclaration struct {
	Token      token.Token
	Name       *Identifier
	Params     []Param
	ReturnType *TypeAnnotation
	Body       *BlockStatement
}

func (f *FunctionDeclaration) statementNode()       {}
func (f *FunctionDeclaration) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclaration) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionDeclaration) Accept(v Visitor)     { v.VisitFunctionDeclaration(f) }
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name.String()
	}
	return "function " + f.Name.Value + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// Modifier is a class-member access/mutability modifier.
type Modifier int

const (
	ModNone Modifier = iota
	ModPublic
	ModPrivate
	ModProtected
)

// Property/method declarations inside a ClassDeclaration body.

// PropertyDeclaration is a class field, with an optional initializer.
type PropertyDeclaration struct {
	Token      token.Token
	Name       *Identifier
	TypeAnn    *TypeAnnotation
	Init       Expression
	Modifier   Modifier
	Static     bool
	Readonly   bool
}

func (p *PropertyDeclaration) statementNode()       {}
func (p *PropertyDeclaration) TokenLiteral() string { return p.Token.Literal }
func (p *PropertyDeclaration) Pos() token.Position  { return p.Token.Pos }
func (p *PropertyDeclaration) Accept(v Visitor)     { v.VisitPropertyDeclaration(p) }
func (p *PropertyDeclaration) String() string {
	s := p.Name.Value
	if p.Init != nil {
		s += " = " + p.Init.String()
	}
	return s + ";"
}

// MethodDeclaration is a class method, including the constructor (Name ==
// "constructor").
type MethodDeclaration struct {
	Token      token.Token
	Name       *Identifier
	Params     []Param
	ReturnType *TypeAnnotation
	Body       *BlockStatement
	Modifier   Modifier
	Static     bool
}

func (m *MethodDeclaration) statementNode()       {}
func (m *MethodDeclaration) TokenLiteral() string { return m.Token.Literal }
func (m *MethodDeclaration) Pos() token.Position  { return m.Token.Pos }
func (m *MethodDeclaration) Accept(v Visitor)     { v.VisitMethodDeclaration(m) }
func (m *MethodDeclaration) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Name.String()
	}
	return m.Name.Value + "(" + strings.Join(params, ", ") + ") " + m.Body.String()
}

// ClassDeclaration is a `class Name extends Base implements I, J { ... }`
// declaration. Members is the body in source order (PropertyDeclaration
// and MethodDeclaration mixed).
type ClassDeclaration struct {
	Token      token.Token
	Name       *Identifier
	SuperClass *Identifier
	Interfaces []*Identifier
	Members    []Statement
}

func (c *ClassDeclaration) statementNode()       {}
func (c *ClassDeclaration) TokenLiteral() string { return c.Token.Literal }
func (c *ClassDeclaration) Pos() token.Position  { return c.Token.Pos }
func (c *ClassDeclaration) Accept(v Visitor)     { v.VisitClassDeclaration(c) }
func (c *ClassDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("class " + c.Name.Value)
	if c.SuperClass != nil {
		out.WriteString(" extends " + c.SuperClass.Value)
	}
	out.WriteString(" {\n")
	for _, m := range c.Members {
		out.WriteString("  " + m.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// InterfaceMember is a single method or property signature inside an
// InterfaceDeclaration. A method signature sets ReturnType (its Params may
// be nil when it takes no parameters); a property signature instead sets
// TypeAnn and leaves Params and ReturnType nil. Method parameters keep their names (not just their
// annotations) so the semantic analyzer can report a missing-annotation
// diagnostic against the right identifier, the same way it does for
// function declarations and methods.
type InterfaceMember struct {
	Name       *Identifier
	Params     []Param         // non-nil for a method signature
	ReturnType *TypeAnnotation // method signature's declared return type
	TypeAnn    *TypeAnnotation // property signature's declared type
	Optional   bool
}

// InterfaceDeclaration is a `interface Name extends Base { ... }`
// declaration. Interfaces are compile-time only: erased entirely by the
// code generator.
type InterfaceDeclaration struct {
	Token   token.Token
	Name    *Identifier
	Extends []*Identifier
	Members []InterfaceMember
}

func (i *InterfaceDeclaration) statementNode()       {}
func (i *InterfaceDeclaration) TokenLiteral() string { return i.Token.Literal }
func (i *InterfaceDeclaration) Pos() token.Position  { return i.Token.Pos }
func (i *InterfaceDeclaration) Accept(v Visitor)     { v.VisitInterfaceDeclaration(i) }
func (i *InterfaceDeclaration) String() string {
	return "interface " + i.Name.Value + " { ... }"
}

// TypeAliasDeclaration is a `type Name = TypeAnnotation;` declaration.
// Erased entirely by the code generator, same as interfaces.
type TypeAliasDeclaration struct {
	Token token.Token
	Name  *Identifier
	Value *TypeAnnotation
}

func (t *TypeAliasDeclaration) statementNode()       {}
func (t *TypeAliasDeclaration) TokenLiteral() string { return t.Token.Literal }
func (t *TypeAliasDeclaration) Pos() token.Position  { return t.Token.Pos }
func (t *TypeAliasDeclaration) Accept(v Visitor)     { v.VisitTypeAliasDeclaration(t) }
func (t *TypeAliasDeclaration) String() string {
	return "type " + t.Name.Value + " = " + t.Value.String() + ";"
}

// IfStatement is an `if (test) consequent else alternate` statement.
// Alternate is nil when there is no else clause.
type IfStatement struct {
	Token      token.Token
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (f *IfStatement) statementNode()       {}
func (f *IfStatement) TokenLiteral() string { return f.Token.Literal }
func (f *IfStatement) Pos() token.Position  { return f.Token.Pos }
func (f *IfStatement) Accept(v Visitor)     { v.VisitIfStatement(f) }
func (f *IfStatement) String() string {
	s := "if (" + f.Test.String() + ") " + f.Consequent.String()
	if f.Alternate != nil {
		s += " else " + f.Alternate.String()
	}
	return s
}

// WhileStatement is a `while (test) body` loop.
type WhileStatement struct {
	Token token.Token
	Test  Expression
	Body  Statement
}

func (w *WhileStatement) statementNode()       {}
func (w *WhileStatement) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStatement) Pos() token.Position  { return w.Token.Pos }
func (w *WhileStatement) Accept(v Visitor)     { v.VisitWhileStatement(w) }
func (w *WhileStatement) String() string {
	return "while (" + w.Test.String() + ") " + w.Body.String()
}

// DoWhileStatement is a `do body while (test);` loop.
type DoWhileStatement struct {
	Token token.Token
	Body  Statement
	Test  Expression
}

func (d *DoWhileStatement) statementNode()       {}
func (d *DoWhileStatement) TokenLiteral() string { return d.Token.Literal }
func (d *DoWhileStatement) Pos() token.Position  { return d.Token.Pos }
func (d *DoWhileStatement) Accept(v Visitor)     { v.VisitDoWhileStatement(d) }
func (d *DoWhileStatement) String() string {
	return "do " + d.Body.String() + " while (" + d.Test.String() + ");"
}

// ForStatement is a classic C-style `for (init; test; update) body` loop.
// Init, Test, and Update are each nil when that clause is omitted.
type ForStatement struct {
	Token  token.Token
	Init   Node // *VariableDeclaration or Expression, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode()       {}
func (f *ForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForStatement) Pos() token.Position  { return f.Token.Pos }
func (f *ForStatement) Accept(v Visitor)     { v.VisitForStatement(f) }
func (f *ForStatement) String() string {
	init, test, update := "", "", ""
	if f.Init != nil {
		init = f.Init.String()
	}
	if f.Test != nil {
		test = f.Test.String()
	}
	if f.Update != nil {
		update = f.Update.String()
	}
	return "for (" + init + "; " + test + "; " + update + ") " + f.Body.String()
}

// ReturnStatement is `return expr;` or a bare `return;`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for a bare return
}

func (r *ReturnStatement) statementNode()       {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Pos() token.Position  { return r.Token.Pos }
func (r *ReturnStatement) Accept(v Visitor)     { v.VisitReturnStatement(r) }
func (r *ReturnStatement) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}

// BreakStatement is a `break;` statement.
type BreakStatement struct {
	Token token.Token
}

func (b *BreakStatement) statementNode()       {}
func (b *BreakStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BreakStatement) Accept(v Visitor)     { v.VisitBreakStatement(b) }
func (b *BreakStatement) String() string       { return "break;" }

// ContinueStatement is a `continue;` statement.
type ContinueStatement struct {
	Token token.Token
}

func (c *ContinueStatement) statementNode()       {}
func (c *ContinueStatement) TokenLiteral() string { return c.Token.Literal }
func (c *ContinueStatement) Pos() token.Position  { return c.Token.Pos }
func (c *ContinueStatement) Accept(v Visitor)     { v.VisitContinueStatement(c) }
func (c *ContinueStatement) String() string       { return "continue;" }

// ImportSpecifier binds one imported name, optionally renamed with `as`.
type ImportSpecifier struct {
	Imported *Identifier
	Local    *Identifier // same as Imported when there is no `as` clause
}

// ImportDeclaration covers every import form recognized by the grammar:
//
//	import { a, b as c } from "m";    -> Specifiers only
//	import d from "m";                -> DefaultLocal only
//	import d, { a } from "m";         -> DefaultLocal + Specifiers
//	import * as ns from "m";          -> NamespaceLocal only
//
// Erased to a comment by the code generator: no module resolution or
// linking is performed.
type ImportDeclaration struct {
	Token          token.Token
	DefaultLocal   *Identifier // nil unless a default import binding is present
	NamespaceLocal *Identifier // nil unless `* as ns` is present
	Specifiers     []ImportSpecifier
	Source         string
}

func (i *ImportDeclaration) statementNode()       {}
func (i *ImportDeclaration) TokenLiteral() string { return i.Token.Literal }
func (i *ImportDeclaration) Pos() token.Position  { return i.Token.Pos }
func (i *ImportDeclaration) Accept(v Visitor)     { v.VisitImportDeclaration(i) }
func (i *ImportDeclaration) String() string {
	var parts []string
	if i.DefaultLocal != nil {
		parts = append(parts, i.DefaultLocal.Value)
	}
	if i.NamespaceLocal != nil {
		parts = append(parts, "* as "+i.NamespaceLocal.Value)
	}
	if i.Specifiers != nil {
		names := make([]string, len(i.Specifiers))
		for idx, s := range i.Specifiers {
			if s.Local.Value != s.Imported.Value {
				names[idx] = s.Imported.Value + " as " + s.Local.Value
			} else {
				names[idx] = s.Imported.Value
			}
		}
		parts = append(parts, "{ "+strings.Join(names, ", ")+" }")
	}
	return "import " + strings.Join(parts, ", ") + " from \"" + i.Source + "\";"
}

// ExportSpecifier binds one locally-scoped name to the name it is exported
// under, optionally renamed with `as`.
type ExportSpecifier struct {
	Local    *Identifier
	Exported *Identifier // same as Local when there is no `as` clause
}

// ExportDeclaration covers every export form recognized by the grammar:
//
//	export default <expression>;          -> Default + Declaration
//	export <declaration>                  -> Declaration
//	export { a, b as c } [from "m"];       -> Specifiers (+ optional Source)
type ExportDeclaration struct {
	Token       token.Token
	Declaration Statement // nil for the named-specifier-list form
	Default     bool
	Specifiers  []ExportSpecifier
	Source      string // non-empty only for a re-export `from "m"` clause
}

func (e *ExportDeclaration) statementNode()       {}
func (e *ExportDeclaration) TokenLiteral() string { return e.Token.Literal }
func (e *ExportDeclaration) Pos() token.Position  { return e.Token.Pos }
func (e *ExportDeclaration) Accept(v Visitor)     { v.VisitExportDeclaration(e) }
func (e *ExportDeclaration) String() string {
	if e.Specifiers != nil {
		names := make([]string, len(e.Specifiers))
		for idx, s := range e.Specifiers {
			if s.Local.Value != s.Exported.Value {
				names[idx] = s.Local.Value + " as " + s.Exported.Value
			} else {
				names[idx] = s.Local.Value
			}
		}
		out := "export { " + strings.Join(names, ", ") + " }"
		if e.Source != "" {
			out += " from \"" + e.Source + "\""
		}
		return out + ";"
	}
	prefix := "export "
	if e.Default {
		prefix += "default "
	}
	return prefix + e.Declaration.String()
}
