package semantic

import (
	"github.com/cwbudde/go-tsc/internal/diagnostics"
	"github.com/cwbudde/go-tsc/pkg/ast"
	"github.com/cwbudde/go-tsc/pkg/token"
)

// funcContext tracks the declared return type of the function or method
// whose body is currently being walked, so a nested ReturnStatement can be
// checked against it.
type funcContext struct {
	returnType    *ast.TypeAnnotation
	hasReturnType bool
}

// classContext tracks the class whose body is currently being walked, so a
// nested `this` expression can be typed and member lookups know which
// class's members are in scope.
type classContext struct {
	decl     *ast.ClassDeclaration
	thisType *ast.TypeAnnotation
}

// Analyzer implements ast.Visitor, walking the tree once to type-check it.
// Visit methods return nothing (per ast.Visitor's signature), so inferred
// expression types flow back through the result scratch field: infer calls
// Accept and reads result immediately afterward.
type Analyzer struct {
	ast.BaseVisitor

	sink         *diagnostics.Sink
	symbols      *SymbolTable
	isTypeScript bool

	result     *ast.TypeAnnotation
	funcStack  []funcContext
	classStack []*classContext
}

// NewAnalyzer creates an Analyzer reporting to sink, with isTypeScript
// selecting which of the mode-gated checks (missing-annotation
// diagnostics, the `undefined`-assignability exception) apply.
func NewAnalyzer(sink *diagnostics.Sink, isTypeScript bool) *Analyzer {
	a := &Analyzer{sink: sink, symbols: NewSymbolTable(), isTypeScript: isTypeScript}
	a.installBuiltins()
	return a
}

// installBuiltins binds the global-scope names present at program entry:
// the type-position keywords as BuiltinType symbols, and the
// ambient runtime values as BuiltinValue symbols typed `any` (this
// compiler does not model their structural shape, only that they exist).
func (a *Analyzer) installBuiltins() {
	typeNames := []string{"any", "void", "number", "string", "boolean", "undefined", "null"}
	for _, name := range typeNames {
		a.symbols.Define(&Symbol{Name: name, Kind: SymBuiltinType, Type: ast.NewPrimitiveType(token.Token{}, name)})
	}
	valueNames := []string{"console", "Math", "Date", "Array", "Object", "String", "Number", "Boolean"}
	for _, name := range valueNames {
		a.symbols.Define(&Symbol{Name: name, Kind: SymBuiltinValue, Type: ast.AnyType})
	}
}

// Analyze runs the hoisting first pass followed by the recursive walk.
func (a *Analyzer) Analyze(program *ast.Program) {
	a.hoist(program)
	for _, stmt := range program.Statements {
		stmt.Accept(a)
	}
}

// infer walks e and returns the type Accept deposited in a.result,
// defaulting to `any` for a nil expression or an unset result (the
// failure-model rule: an offending expression is typed `any` rather than
// aborting the traversal).
func (a *Analyzer) infer(e ast.Expression) *ast.TypeAnnotation {
	if e == nil {
		return ast.AnyType
	}
	a.result = nil
	e.Accept(a)
	if a.result == nil {
		return ast.AnyType
	}
	return a.result
}

// paramType resolves a parameter's declared type, reporting the TypeScript-
// mode "missing annotation" diagnostic for function declarations, method
// declarations, and function expressions.
func (a *Analyzer) paramType(p *ast.Param) *ast.TypeAnnotation {
	if p.TypeAnn != nil {
		return p.TypeAnn
	}
	if a.isTypeScript {
		a.sink.Report(p.Name.Pos(), "parameter '%s' is missing a type annotation", p.Name.Value)
	}
	return ast.AnyType
}

// checkTypeWellFormed recursively resolves the named types referenced by a
// type annotation (interface member signatures, type-alias targets),
// reporting unknown names instead of silently accepting them.
func (a *Analyzer) checkTypeWellFormed(t *ast.TypeAnnotation) {
	if t == nil {
		return
	}
	switch t.Kind {
	case ast.TypeIdentifier:
		switch t.Name {
		case "any", "void", "number", "string", "boolean", "undefined", "null":
			return
		default:
			sym, ok := a.symbols.Resolve(t.Name)
			if !ok || (sym.Kind != SymClass && sym.Kind != SymInterface && sym.Kind != SymTypeAlias) {
				a.sink.Report(t.Pos(), "type '%s' is not defined", t.Name)
			}
		}
	case ast.TypeArray:
		a.checkTypeWellFormed(t.Elem)
	case ast.TypeFunction:
		for _, p := range t.Params {
			a.checkTypeWellFormed(p)
		}
		a.checkTypeWellFormed(t.Return)
	case ast.TypeObject:
		for _, m := range t.Members {
			a.checkTypeWellFormed(m.Type)
		}
	case ast.TypeUnion, ast.TypeIntersection:
		for _, o := range t.Options {
			a.checkTypeWellFormed(o)
		}
	case ast.TypeGeneric:
		for _, arg := range t.Args {
			a.checkTypeWellFormed(arg)
		}
	}
}

// unwrapExportDecl strips an ExportDeclaration wrapper down to the
// statement it exports, so hoisting and member lookups see the real
// declaration kind regardless of whether it was exported. Returns stmt
// unchanged for the named-specifier-list export form, which wraps nothing.
func unwrapExportDecl(stmt ast.Statement) ast.Statement {
	if ed, ok := stmt.(*ast.ExportDeclaration); ok && ed.Declaration != nil {
		return ed.Declaration
	}
	return stmt
}
