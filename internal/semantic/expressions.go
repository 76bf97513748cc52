package semantic

import "github.com/cwbudde/go-tsc/pkg/ast"

func (a *Analyzer) VisitIdentifier(n *ast.Identifier) {
	sym, ok := a.symbols.Resolve(n.Value)
	if !ok {
		a.sink.Report(n.Pos(), "'%s' is not defined", n.Value)
		a.result = ast.AnyType
		return
	}
	if sym.Type == nil {
		a.result = ast.AnyType
	} else {
		a.result = sym.Type
	}
	n.SetType(a.result)
}

func (a *Analyzer) VisitNumberLiteral(n *ast.NumberLiteral) {
	a.result = ast.NumberType
	n.SetType(a.result)
}

func (a *Analyzer) VisitStringLiteral(n *ast.StringLiteral) {
	a.result = ast.StringType
	n.SetType(a.result)
}

func (a *Analyzer) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	a.result = ast.BooleanType
	n.SetType(a.result)
}

func (a *Analyzer) VisitNullLiteral(n *ast.NullLiteral) {
	a.result = ast.NullType
	n.SetType(a.result)
}

func (a *Analyzer) VisitUndefinedLiteral(n *ast.UndefinedLiteral) {
	a.result = ast.UndefinedType
	n.SetType(a.result)
}

// VisitThisExpression types `this` from the innermost enclosing class,
// reporting a diagnostic when used outside of one.
func (a *Analyzer) VisitThisExpression(n *ast.ThisExpression) {
	if len(a.classStack) == 0 {
		a.sink.Report(n.Pos(), "'this' used outside of a class")
		a.result = ast.AnyType
		return
	}
	a.result = a.classStack[len(a.classStack)-1].thisType
	n.SetType(a.result)
}

// VisitArrayLiteral infers an element type from the first element and
// checks every other element is assignable to it both ways, collapsing to
// `any[]` the moment two elements disagree (no union-array synthesis).
func (a *Analyzer) VisitArrayLiteral(n *ast.ArrayLiteral) {
	if len(n.Elements) == 0 {
		a.result = &ast.TypeAnnotation{Kind: ast.TypeArray, Token: n.Token, Elem: ast.AnyType}
		n.SetType(a.result)
		return
	}
	elem := a.infer(n.Elements[0])
	for _, el := range n.Elements[1:] {
		t := a.infer(el)
		if !a.assignable(t, elem) || !a.assignable(elem, t) {
			elem = ast.AnyType
			break
		}
	}
	a.result = &ast.TypeAnnotation{Kind: ast.TypeArray, Token: n.Token, Elem: elem}
	n.SetType(a.result)
}

// VisitObjectLiteral synthesizes a TypeObject annotation from the literal's
// properties. Duplicate keys follow JavaScript's own last-wins evaluation
// order, so a later property with the same name overwrites an earlier
// member's recorded type.
func (a *Analyzer) VisitObjectLiteral(n *ast.ObjectLiteral) {
	members := make([]ast.ObjectTypeMember, 0, len(n.Properties))
	index := map[string]int{}
	for _, prop := range n.Properties {
		t := a.infer(prop.Value)
		if i, ok := index[prop.Key.Value]; ok {
			members[i].Type = t
			continue
		}
		index[prop.Key.Value] = len(members)
		members = append(members, ast.ObjectTypeMember{Name: prop.Key.Value, Type: t})
	}
	a.result = &ast.TypeAnnotation{Kind: ast.TypeObject, Token: n.Token, Members: members}
	n.SetType(a.result)
}

// VisitBinaryExpression implements the per-operator typing rule: `+` is
// string concatenation when either operand is a string, else numeric
// arithmetic; the other arithmetic/bitwise/shift operators require numeric
// operands; comparison and equality operators always yield boolean.
func (a *Analyzer) VisitBinaryExpression(n *ast.BinaryExpression) {
	left := a.infer(n.Left)
	right := a.infer(n.Right)

	switch n.Operator {
	case "+":
		leftIsString := left.Kind == ast.TypeIdentifier && left.Name == "string"
		rightIsString := right.Kind == ast.TypeIdentifier && right.Name == "string"
		if leftIsString || rightIsString {
			a.result = ast.StringType
		} else {
			a.checkNumericOrAny(left, n.Left)
			a.checkNumericOrAny(right, n.Right)
			a.result = ast.NumberType
		}
	case "-", "*", "/", "%", "**", "&", "|", "^", "<<", ">>", ">>>":
		a.checkNumericOrAny(left, n.Left)
		a.checkNumericOrAny(right, n.Right)
		a.result = ast.NumberType
	case "==", "!=", "===", "!==", "<", "<=", ">", ">=":
		a.result = ast.BooleanType
	default:
		a.result = ast.AnyType
	}
	n.SetType(a.result)
}

func isStringOrAny(t *ast.TypeAnnotation) bool {
	return t.Kind == ast.TypeIdentifier && (t.Name == "string" || t.Name == "any")
}

func (a *Analyzer) checkNumericOrAny(t *ast.TypeAnnotation, at ast.Expression) {
	if t.Kind == ast.TypeIdentifier && (t.Name == "number" || t.Name == "any") {
		return
	}
	a.sink.Report(at.Pos(), "type '%s' is not assignable to type 'number'", t.String())
}

// VisitLogicalExpression requires boolean-or-any operands for `&&`/`||`
// and always yields boolean.
func (a *Analyzer) VisitLogicalExpression(n *ast.LogicalExpression) {
	a.checkBooleanOrAny(a.infer(n.Left), n.Left)
	a.checkBooleanOrAny(a.infer(n.Right), n.Right)
	a.result = ast.BooleanType
	n.SetType(a.result)
}

// VisitUnaryExpression types each prefix operator:
// `!` always yields boolean, `typeof` always yields string, the
// arithmetic/bitwise operators require a numeric-or-any operand and yield
// number.
func (a *Analyzer) VisitUnaryExpression(n *ast.UnaryExpression) {
	operandType := a.infer(n.Operand)
	switch n.Operator {
	case "!":
		a.result = ast.BooleanType
	case "typeof":
		a.result = ast.StringType
	case "-", "+", "~", "++", "--":
		a.checkNumericOrAny(operandType, n.Operand)
		a.result = ast.NumberType
	default:
		a.result = ast.AnyType
	}
	n.SetType(a.result)
}

// VisitUpdateExpression types prefix `++x`/`--x` and postfix `x++`/`x--`,
// requiring a numeric-or-any operand.
func (a *Analyzer) VisitUpdateExpression(n *ast.UpdateExpression) {
	operandType := a.infer(n.Operand)
	a.checkNumericOrAny(operandType, n.Operand)
	a.result = ast.NumberType
	n.SetType(a.result)
}

// VisitAssignmentExpression checks the value against the target's type.
// Compound `+=` follows the same string-or-numeric rule as binary `+`;
// every other compound operator requires numeric operands.
func (a *Analyzer) VisitAssignmentExpression(n *ast.AssignmentExpression) {
	targetType := a.infer(n.Target)
	valueType := a.infer(n.Value)

	switch n.Operator {
	case "=":
		if !a.assignable(valueType, targetType) {
			a.sink.Report(n.Value.Pos(), "type '%s' is not assignable to type '%s'", valueType.String(), targetType.String())
		}
	case "+=":
		if !isStringOrAny(targetType) {
			a.checkNumericOrAny(targetType, n.Target)
			a.checkNumericOrAny(valueType, n.Value)
		}
	default:
		a.checkNumericOrAny(targetType, n.Target)
		a.checkNumericOrAny(valueType, n.Value)
	}
	a.result = targetType
	n.SetType(a.result)
}

// VisitConditionalExpression checks the test is boolean-or-any, then types
// the expression as whichever branch type the other is assignable to; when
// neither branch is assignable to the other, TypeScript mode synthesizes a
// union while JavaScript mode (lacking static unions in its own type
// system) collapses to `any`.
func (a *Analyzer) VisitConditionalExpression(n *ast.ConditionalExpression) {
	a.checkBooleanOrAny(a.infer(n.Test), n.Test)
	consType := a.infer(n.Consequent)
	altType := a.infer(n.Alternate)

	switch {
	case a.assignable(altType, consType):
		a.result = consType
	case a.assignable(consType, altType):
		a.result = altType
	case a.isTypeScript:
		a.result = &ast.TypeAnnotation{Kind: ast.TypeUnion, Token: n.Token, Options: []*ast.TypeAnnotation{consType, altType}}
	default:
		a.result = ast.AnyType
	}
	n.SetType(a.result)
}

// VisitCallExpression checks arity and per-argument assignability against
// the callee's function type, with `any` callees exempted from both
// checks (the failure-model escape hatch).
func (a *Analyzer) VisitCallExpression(n *ast.CallExpression) {
	calleeType := a.infer(n.Callee)
	if calleeType.Kind == ast.TypeIdentifier && calleeType.Name == "any" {
		for _, arg := range n.Arguments {
			a.infer(arg)
		}
		a.result = ast.AnyType
		n.SetType(a.result)
		return
	}
	if calleeType.Kind != ast.TypeFunction {
		a.sink.Report(n.Callee.Pos(), "type '%s' is not callable", calleeType.String())
		for _, arg := range n.Arguments {
			a.infer(arg)
		}
		a.result = ast.AnyType
		n.SetType(a.result)
		return
	}
	if len(n.Arguments) != len(calleeType.Params) {
		a.sink.Report(n.Pos(), "Expected %d arguments, but got %d", len(calleeType.Params), len(n.Arguments))
	}
	for i, arg := range n.Arguments {
		argType := a.infer(arg)
		if i < len(calleeType.Params) {
			if !a.assignable(argType, calleeType.Params[i]) {
				a.sink.Report(arg.Pos(), "type '%s' is not assignable to type '%s'", argType.String(), calleeType.Params[i].String())
			}
		}
	}
	if calleeType.Return != nil {
		a.result = calleeType.Return
	} else {
		a.result = ast.AnyType
	}
	n.SetType(a.result)
}

// VisitNewExpression resolves the constructed class by its identifier
// callee and types the expression as an instance of that class.
func (a *Analyzer) VisitNewExpression(n *ast.NewExpression) {
	for _, arg := range n.Arguments {
		a.infer(arg)
	}
	ident, ok := n.Callee.(*ast.Identifier)
	if !ok {
		a.result = ast.AnyType
		n.SetType(a.result)
		return
	}
	sym, ok := a.symbols.Resolve(ident.Value)
	if !ok || sym.Kind != SymClass {
		a.sink.Report(n.Callee.Pos(), "'%s' is not a class", ident.Value)
		a.result = ast.AnyType
		n.SetType(a.result)
		return
	}
	a.result = ast.NewPrimitiveType(ident.Token, ident.Value)
	n.SetType(a.result)
}

// VisitMemberExpression resolves `object.property`/`object[property]`
// against the object's type: a class instance looks up the member through
// lookupClassMember (walking the superclass chain), a structural
// TypeObject looks itself up by name, and anything else (including `any`
// and computed member access) falls back to `any`.
func (a *Analyzer) VisitMemberExpression(n *ast.MemberExpression) {
	objType := a.infer(n.Object)
	if n.Computed {
		a.infer(n.Property)
		a.result = ast.AnyType
		n.SetType(a.result)
		return
	}

	prop, ok := n.Property.(*ast.Identifier)
	if !ok {
		a.result = ast.AnyType
		n.SetType(a.result)
		return
	}

	switch objType.Kind {
	case ast.TypeIdentifier:
		if sym, ok := a.symbols.Resolve(objType.Name); ok && sym.Kind == SymClass && sym.Class != nil {
			if t := a.lookupClassMember(sym.Class, prop.Value); t != nil {
				a.result = t
				n.SetType(a.result)
				return
			}
			if !n.Optional {
				a.sink.Report(prop.Pos(), "property '%s' does not exist on type '%s'", prop.Value, objType.Name)
			}
		}
		a.result = ast.AnyType
	case ast.TypeObject:
		if m, ok := findMember(objType.Members, prop.Value); ok {
			a.result = m.Type
		} else {
			if !n.Optional {
				a.sink.Report(prop.Pos(), "property '%s' does not exist on type '%s'", prop.Value, objType.String())
			}
			a.result = ast.AnyType
		}
	default:
		a.result = ast.AnyType
	}
	n.SetType(a.result)
}

// VisitFunctionExpression checks the body like any other function and
// synthesizes a TypeFunction annotation for the expression's own type, used
// when the expression is assigned to a variable or passed as an argument.
func (a *Analyzer) VisitFunctionExpression(n *ast.FunctionExpression) {
	params := make([]*ast.TypeAnnotation, len(n.Params))
	for i := range n.Params {
		params[i] = hoistParamType(&n.Params[i])
	}
	ret := n.ReturnType
	if ret == nil {
		ret = ast.AnyType
	}
	a.checkFunctionLike(n.Params, n.ReturnType, n.Body)
	a.result = &ast.TypeAnnotation{Kind: ast.TypeFunction, Token: n.Token, Params: params, Return: ret}
	n.SetType(a.result)
}
