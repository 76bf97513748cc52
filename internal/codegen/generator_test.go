package codegen

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/internal/lexer"
	"github.com/cwbudde/go-tsc/internal/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	sink := diagnostics.NewSink(src)
	l := lexer.New(src, sink)
	p := parser.New(l, sink)
	prog := p.ParseProgram()
	if sink.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", src, sink.Diagnostics())
	}
	return NewGenerator().Generate(prog)
}

func TestVariableDeclarationErasesTypeAnnotation(t *testing.T) {
	out := generate(t, `let x: number = 42;`)
	if strings.TrimSpace(out) != "let x = 42;" {
		t.Fatalf("expected type annotation erased, got %q", out)
	}
}

func TestMultiDeclaratorVariableDeclaration(t *testing.T) {
	out := generate(t, `let a = 1, b = 2;`)
	if strings.TrimSpace(out) != "let a = 1, b = 2;" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFunctionDeclarationErasesParamAndReturnTypes(t *testing.T) {
	out := generate(t, `function add(a: number, b: number): number { return a + b; }`)
	want := "function add(a, b) {\n  return (a + b);\n}"
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %q, got %q", want, strings.TrimSpace(out))
	}
}

func TestTypeAliasDeclarationErasesToNothing(t *testing.T) {
	out := generate(t, `type ID = number; let x = 1;`)
	if strings.Contains(out, "ID") {
		t.Fatalf("expected the type alias to leave no trace, got %q", out)
	}
	if !strings.Contains(out, "let x = 1;") {
		t.Fatalf("expected the following declaration to still emit, got %q", out)
	}
}

func TestInterfaceDeclarationErasesToSingleComment(t *testing.T) {
	out := generate(t, `interface Shape { area(): number; }`)
	trimmed := strings.TrimSpace(out)
	if trimmed != "// Interface Shape (not emitted in JavaScript)" {
		t.Fatalf("unexpected interface erasure, got %q", trimmed)
	}
}

func TestImportDeclarationErasesToComment(t *testing.T) {
	out := generate(t, `import { a, b } from "mod";`)
	if !strings.HasPrefix(strings.TrimSpace(out), "//") {
		t.Fatalf("expected import erased to a comment, got %q", out)
	}
}

func TestExportedDeclarationStillEmitsItsBody(t *testing.T) {
	out := generate(t, `export function f(): void {}`)
	trimmed := strings.TrimSpace(out)
	if !strings.HasPrefix(trimmed, "function f()") {
		t.Fatalf("expected exported function body to still emit, got %q", trimmed)
	}
	if strings.Contains(trimmed, "export") {
		t.Fatalf("expected 'export' keyword erased, got %q", trimmed)
	}
}

func TestBareExportSpecifierListErasesToComment(t *testing.T) {
	out := generate(t, `let a = 1; export { a };`)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "//") {
		t.Fatalf("expected the bare export specifier list to erase to a comment, got %q", last)
	}
}

func TestBinaryExpressionIsAlwaysParenthesized(t *testing.T) {
	out := generate(t, `let x = 1 + 2 * 3;`)
	if strings.TrimSpace(out) != "let x = (1 + (2 * 3));" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConditionalExpressionIsParenthesized(t *testing.T) {
	out := generate(t, `let x = a ? 1 : 2;`)
	if strings.TrimSpace(out) != "let x = (a ? 1 : 2);" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestForLoopEmitsInlineDeclarationAndParenthesizedTest(t *testing.T) {
	out := generate(t, `for (let i = 0; i < 5; i++) { console.log(i); }`)
	want := "for (let i = 0; (i < 5); i++) {\n  console.log(i);\n}"
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %q, got %q", want, strings.TrimSpace(out))
	}
}

func TestStringLiteralReEscapesSpecialCharacters(t *testing.T) {
	out := generate(t, "let x = \"a\\nb\\tc\\\"d\";")
	if strings.TrimSpace(out) != `let x = "a\nb\tc\"d";` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestArrowFunctionEmission(t *testing.T) {
	out := generate(t, `let f = (x: number): number => x + 1;`)
	want := `let f = (x) => {
  return (x + 1);
};`
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %q, got %q", want, strings.TrimSpace(out))
	}
}

func TestClassWithoutSuperOrInitializersHasNoSyntheticConstructor(t *testing.T) {
	out := generate(t, `class Plain { greet(): void { console.log("hi"); } }`)
	if strings.Contains(out, "constructor") {
		t.Fatalf("expected no synthesized constructor, got %q", out)
	}
}

func TestClassWithPropertyInitializerGetsSyntheticConstructor(t *testing.T) {
	out := generate(t, `class Counter { count: number = 0; }`)
	want := "class Counter {\n  constructor() {\n    this.count = 0;\n  }\n}"
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %q, got %q", want, strings.TrimSpace(out))
	}
}

func TestClassWithSuperclassGetsSuperCallInSyntheticConstructor(t *testing.T) {
	out := generate(t, `class Dog extends Animal { }`)
	want := "class Dog extends Animal {\n  constructor() {\n    super();\n  }\n}"
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected %q, got %q", want, strings.TrimSpace(out))
	}
}

func TestUserWrittenConstructorIsNotAugmented(t *testing.T) {
	src := `class Point {
		x: number = 0;
		constructor(x: number) { this.x = x; }
	}`
	out := generate(t, src)
	if strings.Contains(out, "this.x = 0") {
		t.Fatalf("expected no synthesized initializer injected into a user-written constructor, got %q", out)
	}
	if !strings.Contains(out, "constructor(x) {") {
		t.Fatalf("expected the user's own constructor signature to survive, got %q", out)
	}
}

func TestStaticMethodAndPropertyEmission(t *testing.T) {
	src := `class Registry {
		static count: number = 0;
		static bump(): void { Registry.count = Registry.count + 1; }
	}`
	out := generate(t, src)
	if !strings.Contains(out, "static count = 0;") {
		t.Fatalf("expected a static property assignment, got %q", out)
	}
	if !strings.Contains(out, "static bump() {") {
		t.Fatalf("expected a static method, got %q", out)
	}
}

func TestOptionalChainingAndComputedMemberEmission(t *testing.T) {
	out := generate(t, `let x = a?.b[c];`)
	if strings.TrimSpace(out) != "let x = a?.b[c];" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewExpressionEmission(t *testing.T) {
	out := generate(t, `let p = new Point(1, 2);`)
	if strings.TrimSpace(out) != "let p = new Point(1, 2);" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUpdateExpressionPrefixAndPostfix(t *testing.T) {
	out := generate(t, `++x; y--;`)
	if !strings.Contains(out, "++x;") || !strings.Contains(out, "y--;") {
		t.Fatalf("unexpected output %q", out)
	}
}
