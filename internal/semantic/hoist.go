package semantic

import "github.com/cwbudde/go-tsc/pkg/ast"

// hoist is the first pass over the program: pre-register every
// top-level function, class, interface, type-alias, and variable name (and
// import binding) into the global scope before the recursive walk, so a
// forward reference to a later declaration resolves. Declarations wrapped
// in `export` are unwrapped first so an exported class is hoisted exactly
// like an unexported one.
func (a *Analyzer) hoist(program *ast.Program) {
	for _, raw := range program.Statements {
		switch s := unwrapExportDecl(raw).(type) {
		case *ast.FunctionDeclaration:
			a.hoistFunction(s)
		case *ast.ClassDeclaration:
			a.hoistClass(s)
		case *ast.InterfaceDeclaration:
			a.hoistInterface(s)
		case *ast.TypeAliasDeclaration:
			a.symbols.Define(&Symbol{Name: s.Name.Value, Kind: SymTypeAlias, Type: s.Value})
		case *ast.VariableDeclaration:
			a.hoistVariable(s)
		case *ast.ImportDeclaration:
			a.bindImport(s)
		}
	}
}

// hoistFunction registers a function declaration's name and shape without
// reporting any diagnostic: missing parameter/return annotations are
// reported once, when the recursive walk actually visits the declaration.
func (a *Analyzer) hoistFunction(s *ast.FunctionDeclaration) {
	params := make([]*ast.TypeAnnotation, len(s.Params))
	for i, p := range s.Params {
		params[i] = hoistParamType(&p)
	}
	ret := s.ReturnType
	if ret == nil {
		ret = ast.AnyType
	}
	fnType := &ast.TypeAnnotation{Kind: ast.TypeFunction, Token: s.Token, Params: params, Return: ret}
	a.symbols.Define(&Symbol{Name: s.Name.Value, Kind: SymFunction, Type: fnType})
}

func hoistParamType(p *ast.Param) *ast.TypeAnnotation {
	if p.TypeAnn != nil {
		return p.TypeAnn
	}
	return ast.AnyType
}

func (a *Analyzer) hoistClass(s *ast.ClassDeclaration) {
	a.symbols.Define(&Symbol{
		Name:  s.Name.Value,
		Kind:  SymClass,
		Type:  ast.NewPrimitiveType(s.Token, s.Name.Value),
		Class: s,
	})
}

func (a *Analyzer) hoistInterface(s *ast.InterfaceDeclaration) {
	a.symbols.Define(&Symbol{
		Name:      s.Name.Value,
		Kind:      SymInterface,
		Type:      ast.NewPrimitiveType(s.Token, s.Name.Value),
		Interface: s,
	})
}

// hoistVariable registers each declarator's name with its annotated type,
// when present. An unannotated declarator is left with a nil Type,
// resolved lazily to `any` by VisitIdentifier until the recursive walk
// reaches its own VariableDeclaration and fills in the inferred type.
func (a *Analyzer) hoistVariable(s *ast.VariableDeclaration) {
	for _, d := range s.Declarators {
		a.symbols.Define(&Symbol{
			Name:    d.Name.Value,
			Kind:    SymVariable,
			Type:    d.TypeAnn,
			IsConst: s.Kind == "const",
		})
	}
}

// bindImport registers every name an import statement brings into scope as
// an `any`-typed variable binding: this analyzer does not resolve modules,
// so it has no way to know the real shape of an imported value.
func (a *Analyzer) bindImport(s *ast.ImportDeclaration) {
	if s.DefaultLocal != nil {
		a.symbols.Define(&Symbol{Name: s.DefaultLocal.Value, Kind: SymVariable, Type: ast.AnyType})
	}
	if s.NamespaceLocal != nil {
		a.symbols.Define(&Symbol{Name: s.NamespaceLocal.Value, Kind: SymVariable, Type: ast.AnyType})
	}
	for _, spec := range s.Specifiers {
		a.symbols.Define(&Symbol{Name: spec.Local.Value, Kind: SymVariable, Type: ast.AnyType})
	}
}
