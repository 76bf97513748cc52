// Package codegen implements the final pipeline stage: walking a
// type-checked AST back into ES-compatible JavaScript text, erasing every
// TypeScript-only syntax form (annotations, interfaces, access modifiers)
// along the way.
package codegen

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-tsc/pkg/ast"
)

// Generator implements ast.Visitor, rendering the tree it walks into
// source text. Like the Analyzer, Visit methods return nothing, so
// expression text flows back through the expr scratch field: expression
// saves/restores it around each Accept call so nested expressions compose
// correctly. Statements instead write directly into out, since emission is
// inherently sequential rather than a single composed value.
type Generator struct {
	ast.BaseVisitor

	out    *strings.Builder
	indent int
	expr   string
}

// NewGenerator creates a Generator ready to call Generate on.
func NewGenerator() *Generator {
	return &Generator{out: &strings.Builder{}}
}

// Generate renders program to JavaScript text. A declaration that erases
// to nothing (a type alias) is dropped along with its blank-line
// separator rather than leaving a stray empty line.
func (g *Generator) Generate(program *ast.Program) string {
	var result strings.Builder
	for _, stmt := range program.Statements {
		text := g.statementText(stmt)
		if text == "" {
			continue
		}
		result.WriteString(text)
		result.WriteString("\n")
		if _, isBlock := stmt.(*ast.BlockStatement); !isBlock {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// statementText renders s in isolation, preserving g.indent so a nested
// call (a function expression's body, for instance) lines up with its
// surrounding context.
func (g *Generator) statementText(s ast.Statement) string {
	saved := g.out
	g.out = &strings.Builder{}
	s.Accept(g)
	text := g.out.String()
	g.out = saved
	return text
}

// expression renders e in isolation and restores the previous scratch
// value, so a caller mid-composition (e.g. a binary expression building
// its own text from two recursive calls) is unaffected by the recursion.
func (g *Generator) expression(e ast.Expression) string {
	if e == nil {
		return ""
	}
	saved := g.expr
	g.expr = ""
	e.Accept(g)
	result := g.expr
	g.expr = saved
	return result
}

func (g *Generator) emitIndent() {
	g.out.WriteString(strings.Repeat("  ", g.indent))
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (g *Generator) VisitBlockStatement(n *ast.BlockStatement) {
	g.out.WriteString("{\n")
	g.indent++
	for _, stmt := range n.Statements {
		text := g.statementText(stmt)
		if text == "" {
			continue
		}
		g.emitIndent()
		g.out.WriteString(text)
		g.out.WriteString("\n")
	}
	g.indent--
	g.emitIndent()
	g.out.WriteString("}")
}

func (g *Generator) VisitEmptyStatement(n *ast.EmptyStatement) {}

func (g *Generator) VisitExpressionStatement(n *ast.ExpressionStatement) {
	g.out.WriteString(g.expression(n.Expression) + ";")
}

// variableDeclText renders a declaration without its trailing semicolon,
// shared between VisitVariableDeclaration and the for-header case, which
// needs the bare text inline.
func (g *Generator) variableDeclText(n *ast.VariableDeclaration) string {
	parts := make([]string, len(n.Declarators))
	for i, d := range n.Declarators {
		s := d.Name.Value
		if d.Init != nil {
			s += " = " + g.expression(d.Init)
		}
		parts[i] = s
	}
	return n.Kind + " " + strings.Join(parts, ", ")
}

func (g *Generator) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	g.out.WriteString(g.variableDeclText(n) + ";")
}

func (g *Generator) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Name.Value
	}
	g.out.WriteString("function " + n.Name.Value + "(" + strings.Join(params, ", ") + ") ")
	n.Body.Accept(g)
}

func (g *Generator) VisitIfStatement(n *ast.IfStatement) {
	g.out.WriteString("if (" + g.expression(n.Test) + ") ")
	n.Consequent.Accept(g)
	if n.Alternate != nil {
		g.out.WriteString(" else ")
		n.Alternate.Accept(g)
	}
}

func (g *Generator) VisitWhileStatement(n *ast.WhileStatement) {
	g.out.WriteString("while (" + g.expression(n.Test) + ") ")
	n.Body.Accept(g)
}

func (g *Generator) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	g.out.WriteString("do ")
	n.Body.Accept(g)
	g.out.WriteString(" while (" + g.expression(n.Test) + ");")
}

func (g *Generator) VisitForStatement(n *ast.ForStatement) {
	g.out.WriteString("for (")
	switch init := n.Init.(type) {
	case *ast.VariableDeclaration:
		g.out.WriteString(g.variableDeclText(init))
	case ast.Expression:
		g.out.WriteString(g.expression(init))
	}
	g.out.WriteString("; ")
	if n.Test != nil {
		g.out.WriteString(g.expression(n.Test))
	}
	g.out.WriteString("; ")
	if n.Update != nil {
		g.out.WriteString(g.expression(n.Update))
	}
	g.out.WriteString(") ")
	n.Body.Accept(g)
}

func (g *Generator) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Value == nil {
		g.out.WriteString("return;")
		return
	}
	g.out.WriteString("return " + g.expression(n.Value) + ";")
}

func (g *Generator) VisitBreakStatement(n *ast.BreakStatement) { g.out.WriteString("break;") }

func (g *Generator) VisitContinueStatement(n *ast.ContinueStatement) {
	g.out.WriteString("continue;")
}

// VisitImportDeclaration erases the statement to a comment: the generator
// performs no module resolution, so the source text is preserved only as
// a breadcrumb. ast.ImportDeclaration.String already renders every import
// form cleanly.
func (g *Generator) VisitImportDeclaration(n *ast.ImportDeclaration) {
	g.out.WriteString("// " + n.String())
}

// VisitExportDeclaration keeps the wrapped declaration's own emission (the
// `export`/`export default` keyword is erased like any other TS-only
// syntax) so an exported class or function still appears in the output.
// The named-specifier-list form wraps no declaration, so it is reduced to
// a comment, same as an import.
func (g *Generator) VisitExportDeclaration(n *ast.ExportDeclaration) {
	if n.Declaration != nil {
		n.Declaration.Accept(g)
		return
	}
	g.out.WriteString("// " + n.String())
}

// VisitInterfaceDeclaration erases the declaration to a single comment
// line, per spec.
func (g *Generator) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	g.out.WriteString("// Interface " + n.Name.Value + " (not emitted in JavaScript)")
}

// VisitTypeAliasDeclaration erases entirely: type aliases have no runtime
// representation, so nothing is written (Generate drops the resulting
// empty statement rather than leaving a blank line for it).
func (g *Generator) VisitTypeAliasDeclaration(n *ast.TypeAliasDeclaration) {}

// ---------------------------------------------------------------------------
// Classes
// ---------------------------------------------------------------------------

func (g *Generator) VisitClassDeclaration(n *ast.ClassDeclaration) {
	g.out.WriteString("class " + n.Name.Value)
	if n.SuperClass != nil {
		g.out.WriteString(" extends " + n.SuperClass.Value)
	}
	g.out.WriteString(" {\n")
	g.indent++

	var userCtor *ast.MethodDeclaration
	for _, m := range n.Members {
		if md, ok := m.(*ast.MethodDeclaration); ok && md.Name.Value == "constructor" {
			userCtor = md
		}
	}
	switch {
	case userCtor != nil:
		g.emitMethod(userCtor)
	case needsSyntheticConstructor(n):
		g.emitSyntheticConstructor(n)
	}

	for _, m := range n.Members {
		switch member := m.(type) {
		case *ast.MethodDeclaration:
			if member.Name.Value == "constructor" {
				continue
			}
			g.emitMethod(member)
		case *ast.PropertyDeclaration:
			if !member.Static {
				continue
			}
			g.emitIndent()
			s := "static " + member.Name.Value
			if member.Init != nil {
				s += " = " + g.expression(member.Init)
			}
			g.out.WriteString(s + ";\n")
		}
	}

	g.indent--
	g.emitIndent()
	g.out.WriteString("}")
}

// needsSyntheticConstructor reports whether a constructor must be
// synthesized: a superclass needs its super() call, and any non-static
// property initializer needs somewhere to run.
func needsSyntheticConstructor(n *ast.ClassDeclaration) bool {
	if n.SuperClass != nil {
		return true
	}
	for _, m := range n.Members {
		if p, ok := m.(*ast.PropertyDeclaration); ok && !p.Static && p.Init != nil {
			return true
		}
	}
	return false
}

func (g *Generator) emitSyntheticConstructor(n *ast.ClassDeclaration) {
	g.emitIndent()
	g.out.WriteString("constructor() {\n")
	g.indent++
	if n.SuperClass != nil {
		g.emitIndent()
		g.out.WriteString("super();\n")
	}
	for _, m := range n.Members {
		if p, ok := m.(*ast.PropertyDeclaration); ok && !p.Static && p.Init != nil {
			g.emitIndent()
			g.out.WriteString("this." + p.Name.Value + " = " + g.expression(p.Init) + ";\n")
		}
	}
	g.indent--
	g.emitIndent()
	g.out.WriteString("}\n")
}

func (g *Generator) emitMethod(m *ast.MethodDeclaration) {
	g.emitIndent()
	if m.Static {
		g.out.WriteString("static ")
	}
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Name.Value
	}
	g.out.WriteString(m.Name.Value + "(" + strings.Join(params, ", ") + ") ")
	m.Body.Accept(g)
	g.out.WriteString("\n")
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (g *Generator) VisitIdentifier(n *ast.Identifier)     { g.expr = n.Value }
func (g *Generator) VisitNumberLiteral(n *ast.NumberLiteral) {
	g.expr = strconv.FormatFloat(n.Value, 'g', -1, 64)
}
func (g *Generator) VisitStringLiteral(n *ast.StringLiteral)   { g.expr = quoteString(n.Value) }
func (g *Generator) VisitBooleanLiteral(n *ast.BooleanLiteral) { g.expr = strconv.FormatBool(n.Value) }
func (g *Generator) VisitNullLiteral(n *ast.NullLiteral)       { g.expr = "null" }
func (g *Generator) VisitUndefinedLiteral(n *ast.UndefinedLiteral) { g.expr = "undefined" }
func (g *Generator) VisitThisExpression(n *ast.ThisExpression)     { g.expr = "this" }

func (g *Generator) VisitArrayLiteral(n *ast.ArrayLiteral) {
	elems := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = g.expression(e)
	}
	g.expr = "[" + strings.Join(elems, ", ") + "]"
}

func (g *Generator) VisitObjectLiteral(n *ast.ObjectLiteral) {
	props := make([]string, len(n.Properties))
	for i, p := range n.Properties {
		props[i] = p.Key.Value + ": " + g.expression(p.Value)
	}
	g.expr = "{ " + strings.Join(props, ", ") + " }"
}

// VisitBinaryExpression always parenthesizes the result, per spec, as the
// simplest correct way to preserve precedence through a text emitter.
func (g *Generator) VisitBinaryExpression(n *ast.BinaryExpression) {
	left := g.expression(n.Left)
	right := g.expression(n.Right)
	g.expr = "(" + left + " " + n.Operator + " " + right + ")"
}

func (g *Generator) VisitLogicalExpression(n *ast.LogicalExpression) {
	left := g.expression(n.Left)
	right := g.expression(n.Right)
	g.expr = "(" + left + " " + n.Operator + " " + right + ")"
}

func (g *Generator) VisitUnaryExpression(n *ast.UnaryExpression) {
	operand := g.expression(n.Operand)
	sep := ""
	if n.Operator == "typeof" {
		sep = " "
	}
	g.expr = n.Operator + sep + operand
}

func (g *Generator) VisitUpdateExpression(n *ast.UpdateExpression) {
	operand := g.expression(n.Operand)
	if n.Prefix {
		g.expr = n.Operator + operand
	} else {
		g.expr = operand + n.Operator
	}
}

func (g *Generator) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	target := g.expression(n.Target)
	value := g.expression(n.Value)
	g.expr = target + " " + n.Operator + " " + value
}

// VisitConditionalExpression is parenthesized, same rationale as binary.
func (g *Generator) VisitConditionalExpression(n *ast.ConditionalExpression) {
	test := g.expression(n.Test)
	cons := g.expression(n.Consequent)
	alt := g.expression(n.Alternate)
	g.expr = "(" + test + " ? " + cons + " : " + alt + ")"
}

func (g *Generator) VisitCallExpression(n *ast.CallExpression) {
	callee := g.expression(n.Callee)
	args := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		args[i] = g.expression(arg)
	}
	open := "("
	if n.Optional {
		open = "?.("
	}
	g.expr = callee + open + strings.Join(args, ", ") + ")"
}

func (g *Generator) VisitNewExpression(n *ast.NewExpression) {
	callee := g.expression(n.Callee)
	args := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		args[i] = g.expression(arg)
	}
	g.expr = "new " + callee + "(" + strings.Join(args, ", ") + ")"
}

func (g *Generator) VisitMemberExpression(n *ast.MemberExpression) {
	obj := g.expression(n.Object)
	if n.Computed {
		prop := g.expression(n.Property)
		g.expr = obj + "[" + prop + "]"
		return
	}
	sep := "."
	if n.Optional {
		sep = "?."
	}
	g.expr = obj + sep + g.expression(n.Property)
}

func (g *Generator) VisitFunctionExpression(n *ast.FunctionExpression) {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Name.Value
	}
	body := g.statementText(n.Body)
	if n.Arrow {
		g.expr = "(" + strings.Join(params, ", ") + ") => " + body
		return
	}
	name := ""
	if n.Name != nil {
		name = " " + n.Name.Value
	}
	g.expr = "function" + name + "(" + strings.Join(params, ", ") + ") " + body
}

// quoteString re-escapes a decoded string literal's runtime value back
// into JavaScript source text: backslash, double quote, and the three
// whitespace escapes the lexer recognizes.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
