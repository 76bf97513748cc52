package semantic

import "github.com/cwbudde/go-tsc/pkg/ast"

// VisitProgram is never reached through Accept in practice: Analyze walks
// program.Statements directly so it can run the hoisting pass first.
// Implemented anyway so Analyzer satisfies ast.Visitor without relying on
// the embedded BaseVisitor for this one method.
func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitBlockStatement(n *ast.BlockStatement) {
	a.symbols.Push()
	for _, stmt := range n.Statements {
		stmt.Accept(a)
	}
	a.symbols.Pop()
}

func (a *Analyzer) VisitEmptyStatement(n *ast.EmptyStatement) {}

func (a *Analyzer) VisitExpressionStatement(n *ast.ExpressionStatement) {
	a.infer(n.Expression)
}

// VisitVariableDeclaration checks each declarator's initializer against its
// annotation (when both are present), reports the TypeScript-mode missing-
// annotation diagnostic, and records the resolved type back onto the
// declarator's symbol and identifier node.
func (a *Analyzer) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for i := range n.Declarators {
		d := &n.Declarators[i]
		var declType *ast.TypeAnnotation
		switch {
		case d.TypeAnn != nil:
			a.checkTypeWellFormed(d.TypeAnn)
			declType = d.TypeAnn
			if d.Init != nil {
				initType := a.infer(d.Init)
				if !a.assignable(initType, declType) {
					a.sink.Report(d.Init.Pos(), "type '%s' is not assignable to type '%s'", initType.String(), declType.String())
				}
			}
		case d.Init != nil:
			declType = a.infer(d.Init)
		default:
			if a.isTypeScript {
				a.sink.Report(d.Name.Pos(), "variable '%s' is missing a type annotation", d.Name.Value)
			}
			declType = ast.AnyType
		}
		d.Name.SetType(declType)
		a.symbols.Define(&Symbol{Name: d.Name.Value, Kind: SymVariable, Type: declType, IsConst: n.Kind == "const"})
	}
}

// VisitFunctionDeclaration checks parameter/return annotations, pushes a
// scope for the body with parameters bound, and checks every return
// statement in the body against the declared return type.
func (a *Analyzer) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	a.checkFunctionLike(n.Params, n.ReturnType, n.Body)
}

// checkFunctionLike is shared by function declarations, methods, and
// function expressions: bind parameters in a fresh scope, push a
// funcContext for return-statement checking, walk the body, then restore.
func (a *Analyzer) checkFunctionLike(params []ast.Param, returnType *ast.TypeAnnotation, body *ast.BlockStatement) {
	a.symbols.Push()
	for i := range params {
		p := &params[i]
		pt := a.paramType(p)
		a.symbols.Define(&Symbol{Name: p.Name.Value, Kind: SymParameter, Type: pt})
		p.Name.SetType(pt)
		if p.Default != nil {
			defType := a.infer(p.Default)
			if !a.assignable(defType, pt) {
				a.sink.Report(p.Default.Pos(), "type '%s' is not assignable to type '%s'", defType.String(), pt.String())
			}
		}
	}
	if returnType != nil {
		a.checkTypeWellFormed(returnType)
	}
	a.funcStack = append(a.funcStack, funcContext{returnType: returnType, hasReturnType: returnType != nil})
	if body != nil {
		for _, stmt := range body.Statements {
			stmt.Accept(a)
		}
	}
	a.funcStack = a.funcStack[:len(a.funcStack)-1]
	a.symbols.Pop()
}

func (a *Analyzer) VisitIfStatement(n *ast.IfStatement) {
	a.checkBooleanOrAny(a.infer(n.Test), n.Test)
	n.Consequent.Accept(a)
	if n.Alternate != nil {
		n.Alternate.Accept(a)
	}
}

func (a *Analyzer) VisitWhileStatement(n *ast.WhileStatement) {
	a.checkBooleanOrAny(a.infer(n.Test), n.Test)
	n.Body.Accept(a)
}

func (a *Analyzer) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	n.Body.Accept(a)
	a.checkBooleanOrAny(a.infer(n.Test), n.Test)
}

func (a *Analyzer) VisitForStatement(n *ast.ForStatement) {
	a.symbols.Push()
	if n.Init != nil {
		switch init := n.Init.(type) {
		case *ast.VariableDeclaration:
			init.Accept(a)
		case ast.Expression:
			a.infer(init)
		}
	}
	if n.Test != nil {
		a.checkBooleanOrAny(a.infer(n.Test), n.Test)
	}
	if n.Update != nil {
		a.infer(n.Update)
	}
	n.Body.Accept(a)
	a.symbols.Pop()
}

// checkBooleanOrAny reports a diagnostic unless t is boolean or any: used
// for every condition position (if/while/do-while/for test, ternary test,
// logical operands).
func (a *Analyzer) checkBooleanOrAny(t *ast.TypeAnnotation, at ast.Expression) {
	if t.Kind == ast.TypeIdentifier && (t.Name == "boolean" || t.Name == "any") {
		return
	}
	a.sink.Report(at.Pos(), "type '%s' is not assignable to type 'boolean'", t.String())
}

// VisitReturnStatement checks the returned value (or its absence) against
// the enclosing function's declared return type. A return outside any
// function body is reported.
func (a *Analyzer) VisitReturnStatement(n *ast.ReturnStatement) {
	if len(a.funcStack) == 0 {
		a.sink.Report(n.Pos(), "return statement outside of a function")
		return
	}
	ctx := a.funcStack[len(a.funcStack)-1]
	if !ctx.hasReturnType {
		if n.Value != nil {
			a.infer(n.Value)
		}
		return
	}
	if n.Value == nil {
		if !a.assignable(ast.VoidType, ctx.returnType) && !a.assignable(ast.UndefinedType, ctx.returnType) {
			a.sink.Report(n.Pos(), "type 'void' is not assignable to type '%s'", ctx.returnType.String())
		}
		return
	}
	valType := a.infer(n.Value)
	if !a.assignable(valType, ctx.returnType) {
		a.sink.Report(n.Value.Pos(), "type '%s' is not assignable to type '%s'", valType.String(), ctx.returnType.String())
	}
}

// VisitBreakStatement and VisitContinueStatement perform no checking: this
// analyzer does no control-flow analysis, so it never validates that
// break/continue only appear inside a loop.
func (a *Analyzer) VisitBreakStatement(n *ast.BreakStatement)       {}
func (a *Analyzer) VisitContinueStatement(n *ast.ContinueStatement) {}

// VisitImportDeclaration has nothing left to do at walk time: every
// binding it introduces was already registered during hoisting.
func (a *Analyzer) VisitImportDeclaration(n *ast.ImportDeclaration) {}

// VisitExportDeclaration delegates to the wrapped declaration for the
// `export <declaration>` and `export default <declaration>` forms. The
// named-specifier-list form instead checks that every local name it
// re-exports actually resolves.
func (a *Analyzer) VisitExportDeclaration(n *ast.ExportDeclaration) {
	if n.Declaration != nil {
		n.Declaration.Accept(a)
		return
	}
	for _, spec := range n.Specifiers {
		if _, ok := a.symbols.Resolve(spec.Local.Value); !ok {
			a.sink.Report(spec.Local.Pos(), "'%s' is not defined", spec.Local.Value)
		}
	}
}

// VisitTypeAliasDeclaration validates that the alias target only refers to
// known type names; the alias itself was already bound during hoisting.
func (a *Analyzer) VisitTypeAliasDeclaration(n *ast.TypeAliasDeclaration) {
	a.checkTypeWellFormed(n.Value)
}
