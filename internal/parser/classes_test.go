package parser

import (
	"testing"

	"github.com/cwbudde/go-tsc/pkg/ast"
)

func TestParseClassWithExtendsAndImplements(t *testing.T) {
	src := `class Dog extends Animal implements Pet, Named {
		name: string;
		constructor(name: string) { this.name = name; }
		bark(): void { console.log("woof"); }
	}`
	prog, _, sink := parseSource(t, src)
	requireNoErrors(t, sink)

	cls, ok := prog.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ClassDeclaration, got %T", prog.Statements[0])
	}
	if cls.Name.Value != "Dog" {
		t.Fatalf("expected name 'Dog', got %q", cls.Name.Value)
	}
	if cls.SuperClass == nil || cls.SuperClass.Value != "Animal" {
		t.Fatalf("expected superclass 'Animal', got %+v", cls.SuperClass)
	}
	if len(cls.Interfaces) != 2 || cls.Interfaces[0].Value != "Pet" || cls.Interfaces[1].Value != "Named" {
		t.Fatalf("expected interfaces [Pet, Named], got %+v", cls.Interfaces)
	}
	if len(cls.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(cls.Members))
	}
	if _, ok := cls.Members[0].(*ast.PropertyDeclaration); !ok {
		t.Fatalf("expected first member to be a property, got %T", cls.Members[0])
	}
	ctor, ok := cls.Members[1].(*ast.MethodDeclaration)
	if !ok || ctor.Name.Value != "constructor" {
		t.Fatalf("expected second member to be the constructor, got %+v", cls.Members[1])
	}
	bark, ok := cls.Members[2].(*ast.MethodDeclaration)
	if !ok || bark.Name.Value != "bark" {
		t.Fatalf("expected third member 'bark', got %+v", cls.Members[2])
	}
}

func TestClassMemberModifiersAnyOrder(t *testing.T) {
	src := `class C {
		private static readonly x: number = 1;
		readonly private y: number = 2;
		protected static greet(): void {}
	}`
	prog, _, sink := parseSource(t, src)
	requireNoErrors(t, sink)
	cls := prog.Statements[0].(*ast.ClassDeclaration)

	x := cls.Members[0].(*ast.PropertyDeclaration)
	if x.Modifier != ast.ModPrivate || !x.Static || !x.Readonly {
		t.Fatalf("expected private static readonly on x, got %+v", x)
	}
	y := cls.Members[1].(*ast.PropertyDeclaration)
	if y.Modifier != ast.ModPrivate || !y.Readonly {
		t.Fatalf("expected private readonly on y (order-independent), got %+v", y)
	}
	greet := cls.Members[2].(*ast.MethodDeclaration)
	if greet.Modifier != ast.ModProtected || !greet.Static {
		t.Fatalf("expected protected static on greet, got %+v", greet)
	}
}

func TestMethodVsPropertyDisambiguation(t *testing.T) {
	src := `class C {
		area: number;
		area(): number { return 1; }
	}`
	prog, _, sink := parseSource(t, src)
	requireNoErrors(t, sink)
	cls := prog.Statements[0].(*ast.ClassDeclaration)
	if _, ok := cls.Members[0].(*ast.PropertyDeclaration); !ok {
		t.Fatalf("expected property for bare 'area: number;', got %T", cls.Members[0])
	}
	if _, ok := cls.Members[1].(*ast.MethodDeclaration); !ok {
		t.Fatalf("expected method for 'area(): number {...}', got %T", cls.Members[1])
	}
}

func TestClassWithoutSuperOrInterfaces(t *testing.T) {
	prog, _, sink := parseSource(t, `class Plain { }`)
	requireNoErrors(t, sink)
	cls := prog.Statements[0].(*ast.ClassDeclaration)
	if cls.SuperClass != nil {
		t.Fatalf("expected no superclass, got %+v", cls.SuperClass)
	}
	if cls.Interfaces != nil {
		t.Fatalf("expected no interfaces, got %+v", cls.Interfaces)
	}
}

func TestParseInterfaceDeclaration(t *testing.T) {
	src := `interface Shape extends Named {
		readonly id: number;
		area(): number;
		label?: string;
	}`
	prog, _, sink := parseSource(t, src)
	requireNoErrors(t, sink)

	iface, ok := prog.Statements[0].(*ast.InterfaceDeclaration)
	if !ok {
		t.Fatalf("expected *ast.InterfaceDeclaration, got %T", prog.Statements[0])
	}
	if len(iface.Extends) != 1 || iface.Extends[0].Value != "Named" {
		t.Fatalf("expected extends [Named], got %+v", iface.Extends)
	}
	if len(iface.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(iface.Members))
	}
	if iface.Members[0].Name.Value != "id" || iface.Members[0].TypeAnn.Name != "number" {
		t.Fatalf("expected 'id: number', got %+v", iface.Members[0])
	}
	area := iface.Members[1]
	if area.Name.Value != "area" || area.ReturnType == nil || area.ReturnType.Name != "number" {
		t.Fatalf("expected method signature 'area(): number', got %+v", area)
	}
	if !iface.Members[2].Optional {
		t.Fatalf("expected 'label' to be optional")
	}
}
