// Package semantic implements the scoped type-checking pass that runs
// between the parser and the code generator: symbol resolution, type
// inference, and assignability checking over the AST produced by
// internal/parser.
package semantic

import "github.com/cwbudde/go-tsc/pkg/ast"

// SymbolKind classifies what a Symbol refers to.
type SymbolKind int

const (
	SymVariable SymbolKind = iota
	SymParameter
	SymFunction
	SymClass
	SymInterface
	SymBuiltinType
	SymBuiltinValue
	// SymTypeAlias is its own symbol kind rather than reusing SymVariable: a
	// `type Name = ...;` declaration needs a binding of its own so later
	// type annotations can resolve the alias name the same way they resolve
	// a class or interface name.
	SymTypeAlias
)

// Symbol is one binding in a SymbolTable: a name paired with its kind and
// inferred/declared type. Class and interface symbols additionally carry a
// pointer back to their declaration so member/superclass lookups don't need
// a second table.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Type      *ast.TypeAnnotation
	IsConst   bool
	Class     *ast.ClassDeclaration
	Interface *ast.InterfaceDeclaration
}

// SymbolTable is a stack of scopes, innermost last. JavaScript/TypeScript
// identifiers are case-sensitive, so names are stored and looked up
// verbatim.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable creates a table with a single (global) scope already
// pushed.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{}
	st.Push()
	return st
}

// Push opens a new innermost scope, used at program start, block entry,
// function/method bodies, a for-header, and class bodies.
func (st *SymbolTable) Push() {
	st.scopes = append(st.scopes, make(map[string]*Symbol))
}

// Pop closes the innermost scope.
func (st *SymbolTable) Pop() {
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Depth reports how many scopes are currently pushed, used by tests to
// assert the stack returns to its starting depth after analysis.
func (st *SymbolTable) Depth() int { return len(st.scopes) }

// Define binds name in the innermost scope, silently shadowing any outer
// binding of the same name.
func (st *SymbolTable) Define(sym *Symbol) {
	st.scopes[len(st.scopes)-1][sym.Name] = sym
}

// Resolve searches innermost-outermost for name, returning (nil, false) if
// unbound in any scope.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DefinedInCurrentScope reports whether name is bound in the innermost
// scope specifically, used to detect redeclaration within one scope
// without false-positiving on legitimate shadowing of an outer binding.
func (st *SymbolTable) DefinedInCurrentScope(name string) bool {
	_, ok := st.scopes[len(st.scopes)-1][name]
	return ok
}
