package semantic

import "github.com/cwbudde/go-tsc/pkg/ast"

// VisitClassDeclaration resolves the superclass and implemented interfaces
// (reporting unknown names), then walks the body with a classContext on
// the stack so `this` and bare member lookups inside methods resolve
// against this class.
func (a *Analyzer) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if n.SuperClass != nil {
		sym, ok := a.symbols.Resolve(n.SuperClass.Value)
		if !ok || sym.Kind != SymClass {
			a.sink.Report(n.SuperClass.Pos(), "class '%s' is not defined", n.SuperClass.Value)
		}
	}
	for _, iface := range n.Interfaces {
		sym, ok := a.symbols.Resolve(iface.Value)
		if !ok || sym.Kind != SymInterface {
			a.sink.Report(iface.Pos(), "interface '%s' is not defined", iface.Value)
		}
	}

	thisType := ast.NewPrimitiveType(n.Token, n.Name.Value)
	a.classStack = append(a.classStack, &classContext{decl: n, thisType: thisType})
	a.symbols.Push()
	for _, member := range n.Members {
		member.Accept(a)
	}
	a.symbols.Pop()
	a.classStack = a.classStack[:len(a.classStack)-1]
}

// VisitPropertyDeclaration checks the initializer against the declared
// type when both are present.
func (a *Analyzer) VisitPropertyDeclaration(n *ast.PropertyDeclaration) {
	if n.TypeAnn != nil {
		a.checkTypeWellFormed(n.TypeAnn)
	}
	if n.Init == nil {
		return
	}
	initType := a.infer(n.Init)
	if n.TypeAnn != nil && !a.assignable(initType, n.TypeAnn) {
		a.sink.Report(n.Init.Pos(), "type '%s' is not assignable to type '%s'", initType.String(), n.TypeAnn.String())
	}
}

// VisitMethodDeclaration type-checks a method body the same way a function
// declaration's body is checked, relying on the classContext the enclosing
// VisitClassDeclaration already pushed for `this` typing.
func (a *Analyzer) VisitMethodDeclaration(n *ast.MethodDeclaration) {
	a.checkFunctionLike(n.Params, n.ReturnType, n.Body)
}

// VisitInterfaceDeclaration resolves the extended interfaces and checks
// that every member's type annotation is well-formed. A method signature's
// parameters are checked the same way checkFunctionLike checks a function
// declaration's: the TypeScript-mode missing-annotation diagnostic applies
// here too, per spec.md §4.4 ("applies to ... interface methods"), even
// though a signature has no body to walk. Interfaces carry no runtime
// behavior, so there is nothing else to walk.
func (a *Analyzer) VisitInterfaceDeclaration(n *ast.InterfaceDeclaration) {
	for _, ext := range n.Extends {
		sym, ok := a.symbols.Resolve(ext.Value)
		if !ok || sym.Kind != SymInterface {
			a.sink.Report(ext.Pos(), "interface '%s' is not defined", ext.Value)
		}
	}
	for _, m := range n.Members {
		if m.ReturnType != nil {
			// Method signature: Params may legitimately be empty (e.g.
			// `area(): number;`), so ReturnType (always present for a
			// method signature, never for a property one) is what
			// distinguishes the two member forms here.
			for i := range m.Params {
				a.checkTypeWellFormed(a.paramType(&m.Params[i]))
			}
			a.checkTypeWellFormed(m.ReturnType)
			continue
		}
		if m.TypeAnn != nil {
			a.checkTypeWellFormed(m.TypeAnn)
		}
	}
}

// lookupClassMember walks decl's own members, then its superclass chain,
// looking for a property or method named name. Returns nil if the class
// hierarchy (or any link in it) can't be resolved.
func (a *Analyzer) lookupClassMember(decl *ast.ClassDeclaration, name string) *ast.TypeAnnotation {
	for decl != nil {
		for _, member := range decl.Members {
			switch m := member.(type) {
			case *ast.PropertyDeclaration:
				if m.Name.Value == name {
					if m.TypeAnn != nil {
						return m.TypeAnn
					}
					if m.Init != nil {
						return a.infer(m.Init)
					}
					return ast.AnyType
				}
			case *ast.MethodDeclaration:
				if m.Name.Value == name {
					params := make([]*ast.TypeAnnotation, len(m.Params))
					for i := range m.Params {
						params[i] = hoistParamType(&m.Params[i])
					}
					ret := m.ReturnType
					if ret == nil {
						ret = ast.AnyType
					}
					return &ast.TypeAnnotation{Kind: ast.TypeFunction, Token: m.Token, Params: params, Return: ret}
				}
			}
		}
		if decl.SuperClass == nil {
			return nil
		}
		sym, ok := a.symbols.Resolve(decl.SuperClass.Value)
		if !ok || sym.Class == nil {
			return nil
		}
		decl = sym.Class
	}
	return nil
}
