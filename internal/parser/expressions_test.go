package parser

import (
	"testing"

	"github.com/cwbudde/go-tsc/pkg/ast"
)

func exprOf(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog, _, sink := parseSource(t, src+";")
	requireNoErrors(t, sink)
	stmt, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", prog.Statements[0])
	}
	return stmt.Expression
}

func TestPrecedenceArithmeticBindsTighterThanAdditive(t *testing.T) {
	expr := exprOf(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level '+', got %+v", expr)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("expected right operand '2 * 3', got %+v", bin.Right)
	}
}

func TestPrecedenceComparisonBeforeEquality(t *testing.T) {
	expr := exprOf(t, "a < b == c < d")
	eq, ok := expr.(*ast.BinaryExpression)
	if !ok || eq.Operator != "==" {
		t.Fatalf("expected top-level '==', got %+v", expr)
	}
	if _, ok := eq.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected left side to itself be a comparison, got %+v", eq.Left)
	}
}

func TestLogicalAndBindsTighterThanLogicalOr(t *testing.T) {
	expr := exprOf(t, "a || b && c")
	or, ok := expr.(*ast.LogicalExpression)
	if !ok || or.Operator != "||" {
		t.Fatalf("expected top-level '||', got %+v", expr)
	}
	and, ok := or.Right.(*ast.LogicalExpression)
	if !ok || and.Operator != "&&" {
		t.Fatalf("expected right side '&&', got %+v", or.Right)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	expr := exprOf(t, "a = b = 1")
	outer, ok := expr.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expected *ast.AssignmentExpression, got %T", expr)
	}
	inner, ok := outer.Value.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expected nested assignment on the right, got %+v", outer.Value)
	}
	if inner.Target.(*ast.Identifier).Value != "b" {
		t.Fatalf("expected inner target 'b', got %+v", inner.Target)
	}
}

func TestConditionalIsRightAssociative(t *testing.T) {
	expr := exprOf(t, "a ? b : c ? d : e")
	outer, ok := expr.(*ast.ConditionalExpression)
	if !ok {
		t.Fatalf("expected *ast.ConditionalExpression, got %T", expr)
	}
	if _, ok := outer.Alternate.(*ast.ConditionalExpression); !ok {
		t.Fatalf("expected nested conditional in alternate position, got %+v", outer.Alternate)
	}
}

func TestUnaryOperators(t *testing.T) {
	expr := exprOf(t, "!x")
	un, ok := expr.(*ast.UnaryExpression)
	if !ok || un.Operator != "!" {
		t.Fatalf("expected unary '!', got %+v", expr)
	}

	expr = exprOf(t, "typeof x")
	un, ok = expr.(*ast.UnaryExpression)
	if !ok || un.Operator != "typeof" {
		t.Fatalf("expected unary 'typeof', got %+v", expr)
	}
}

func TestPrefixAndPostfixUpdate(t *testing.T) {
	expr := exprOf(t, "++x")
	up, ok := expr.(*ast.UpdateExpression)
	if !ok || !up.Prefix || up.Operator != "++" {
		t.Fatalf("expected prefix '++', got %+v", expr)
	}

	expr = exprOf(t, "x--")
	up, ok = expr.(*ast.UpdateExpression)
	if !ok || up.Prefix || up.Operator != "--" {
		t.Fatalf("expected postfix '--', got %+v", expr)
	}
}

func TestMemberAndOptionalChainAndComputed(t *testing.T) {
	expr := exprOf(t, "a.b?.c[d]")
	outer, ok := expr.(*ast.MemberExpression)
	if !ok || !outer.Computed {
		t.Fatalf("expected outer computed member, got %+v", expr)
	}
	mid, ok := outer.Object.(*ast.MemberExpression)
	if !ok || !mid.Optional {
		t.Fatalf("expected optional-chain member in the middle, got %+v", outer.Object)
	}
	if _, ok := mid.Object.(*ast.MemberExpression); !ok {
		t.Fatalf("expected plain member at the base, got %+v", mid.Object)
	}
}

func TestCallChain(t *testing.T) {
	expr := exprOf(t, "a.b(1, 2).c()")
	outer, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected *ast.CallExpression, got %T", expr)
	}
	member, ok := outer.Callee.(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expected member callee, got %T", outer.Callee)
	}
	inner, ok := member.Object.(*ast.CallExpression)
	if !ok || len(inner.Arguments) != 2 {
		t.Fatalf("expected inner call with 2 arguments, got %+v", member.Object)
	}
}

func TestNewExpressionCapturesConstructorArguments(t *testing.T) {
	expr := exprOf(t, "new Point(1, 2)")
	n, ok := expr.(*ast.NewExpression)
	if !ok {
		t.Fatalf("expected *ast.NewExpression, got %T", expr)
	}
	if n.Callee.(*ast.Identifier).Value != "Point" {
		t.Fatalf("expected callee 'Point', got %+v", n.Callee)
	}
	if len(n.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(n.Arguments))
	}
}

func TestArrayAndObjectLiterals(t *testing.T) {
	expr := exprOf(t, "[1, 2, 3]")
	arr, ok := expr.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("expected 3-element array, got %+v", expr)
	}

	expr = exprOf(t, "({ a: 1, b: 2 })")
	obj, ok := expr.(*ast.ObjectLiteral)
	if !ok || len(obj.Properties) != 2 {
		t.Fatalf("expected 2-property object, got %+v", expr)
	}
	if obj.Properties[0].Key.Value != "a" {
		t.Fatalf("expected first key 'a', got %+v", obj.Properties[0].Key)
	}
}

func TestParenthesizedExpressionIsNotAnArrowFunction(t *testing.T) {
	expr := exprOf(t, "(1 + 2) * 3")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "*" {
		t.Fatalf("expected top-level '*', got %+v", expr)
	}
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected left operand to be the parenthesized addition, got %+v", bin.Left)
	}
}

func TestArrowFunctionSingleParam(t *testing.T) {
	expr := exprOf(t, "x => x + 1")
	fn, ok := expr.(*ast.FunctionExpression)
	if !ok || !fn.Arrow {
		t.Fatalf("expected arrow function, got %+v", expr)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name.Value != "x" {
		t.Fatalf("expected single param 'x', got %+v", fn.Params)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected a single implicit-return statement, got %d", len(fn.Body.Statements))
	}
	if _, ok := fn.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Fatalf("expected expression body to be wrapped in a return, got %T", fn.Body.Statements[0])
	}
}

func TestArrowFunctionParenParams(t *testing.T) {
	expr := exprOf(t, "(a: number, b: number): number => a + b")
	fn, ok := expr.(*ast.FunctionExpression)
	if !ok || !fn.Arrow {
		t.Fatalf("expected arrow function, got %+v", expr)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.ReturnType == nil || fn.ReturnType.Name != "number" {
		t.Fatalf("expected return type 'number', got %+v", fn.ReturnType)
	}
}

func TestArrowFunctionWithBlockBody(t *testing.T) {
	expr := exprOf(t, "(x) => { return x; }")
	fn, ok := expr.(*ast.FunctionExpression)
	if !ok || !fn.Arrow {
		t.Fatalf("expected arrow function, got %+v", expr)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in block body, got %d", len(fn.Body.Statements))
	}
}

func TestFunctionExpression(t *testing.T) {
	expr := exprOf(t, "(function named(x) { return x; })")
	fn, ok := expr.(*ast.FunctionExpression)
	if !ok {
		t.Fatalf("expected *ast.FunctionExpression, got %T", expr)
	}
	if fn.Arrow {
		t.Fatalf("expected a non-arrow function expression")
	}
	if fn.Name == nil || fn.Name.Value != "named" {
		t.Fatalf("expected name 'named', got %+v", fn.Name)
	}
}
