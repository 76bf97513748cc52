package semantic

import "github.com/cwbudde/go-tsc/pkg/ast"

// assignable reports whether a value of type source may be assigned to a
// location declared with type target. The relation is deliberately
// structural and permissive: the goal is to
// catch clear mismatches (a string literal assigned to a number-typed
// variable) rather than to implement a sound type system.
func (a *Analyzer) assignable(source, target *ast.TypeAnnotation) bool {
	if source == nil || target == nil {
		return true
	}
	// A type-alias name stands for the type it was declared as.
	if source.Kind == ast.TypeIdentifier {
		if sym, ok := a.symbols.Resolve(source.Name); ok && sym.Kind == SymTypeAlias && sym.Type != source {
			return a.assignable(sym.Type, target)
		}
	}
	if target.Kind == ast.TypeIdentifier {
		if sym, ok := a.symbols.Resolve(target.Name); ok && sym.Kind == SymTypeAlias && sym.Type != target {
			return a.assignable(source, sym.Type)
		}
	}
	if source.Kind == ast.TypeIdentifier && source.Name == "any" {
		return true
	}
	if target.Kind == ast.TypeIdentifier && target.Name == "any" {
		return true
	}
	if source.Kind == ast.TypeIdentifier && source.Name == "null" {
		return !(target.Kind == ast.TypeIdentifier && isPrimitiveName(target.Name))
	}
	if source.Kind == ast.TypeIdentifier && source.Name == "undefined" {
		return !a.isTypeScript
	}
	if target.Kind == ast.TypeUnion {
		for _, opt := range target.Options {
			if a.assignable(source, opt) {
				return true
			}
		}
		return false
	}
	if source.Kind == ast.TypeIntersection {
		for _, opt := range source.Options {
			if !a.assignable(opt, target) {
				return false
			}
		}
		return true
	}
	if source.Kind == ast.TypeIdentifier && target.Kind == ast.TypeIdentifier {
		return source.Name == target.Name
	}
	if source.Kind == ast.TypeArray && target.Kind == ast.TypeArray {
		return a.assignable(source.Elem, target.Elem)
	}
	if source.Kind == ast.TypeObject && target.Kind == ast.TypeObject {
		return a.objectAssignable(source, target)
	}
	if source.Kind == ast.TypeFunction && target.Kind == ast.TypeFunction {
		return a.functionAssignable(source, target)
	}
	if source.Kind == ast.TypeGeneric && target.Kind == ast.TypeGeneric {
		return source.Name == target.Name
	}
	return false
}

func isPrimitiveName(name string) bool {
	switch name {
	case "number", "string", "boolean", "void":
		return true
	default:
		return false
	}
}

// objectAssignable implements TypeObject/TypeObject structural
// assignability: every non-optional member of target must be present on
// source with an assignable type. Extra members on source are allowed
// (width subtyping).
func (a *Analyzer) objectAssignable(source, target *ast.TypeAnnotation) bool {
	for _, tm := range target.Members {
		sm, ok := findMember(source.Members, tm.Name)
		if !ok {
			if tm.Optional {
				continue
			}
			return false
		}
		if !a.assignable(sm.Type, tm.Type) {
			return false
		}
	}
	return true
}

func findMember(members []ast.ObjectTypeMember, name string) (ast.ObjectTypeMember, bool) {
	for _, m := range members {
		if m.Name == name {
			return m, true
		}
	}
	return ast.ObjectTypeMember{}, false
}

// functionAssignable requires identical arity, contravariant parameter
// types (the target's parameter type must be assignable to the source's,
// since the source function must accept anything callers expect to pass
// under the target's signature), and a covariant return type.
func (a *Analyzer) functionAssignable(source, target *ast.TypeAnnotation) bool {
	if len(source.Params) != len(target.Params) {
		return false
	}
	for i := range source.Params {
		if !a.assignable(target.Params[i], source.Params[i]) {
			return false
		}
	}
	return a.assignable(source.Return, target.Return)
}
