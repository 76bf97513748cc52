package ast

import (
	"strings"

	"github.com/cwbudde/go-tsc/pkg/token"
)

// TypeKind classifies a TypeAnnotation's shape. The source language is
// structurally typed, so a single TypeAnnotation node with a kind tag and
// kind-specific fields stands in for the whole family of shapes, rather
// than a separate node type per kind.
type TypeKind int

const (
	// TypeIdentifier is a named type: a primitive (number, string,
	// boolean, any, void) or a reference to a class/interface/alias name.
	TypeIdentifier TypeKind = iota
	// TypeArray is `T[]`.
	TypeArray
	// TypeFunction is `(p1: T1, p2: T2) => R`.
	TypeFunction
	// TypeObject is an inline `{ key: T; ... }` object type.
	TypeObject
	// TypeUnion is `T1 | T2 | ...`.
	TypeUnion
	// TypeIntersection is `T1 & T2 & ...`.
	TypeIntersection
	// TypeGeneric is `Name<Arg1, Arg2, ...>`. Non-goal: no generic
	// instantiation is performed; this records the syntax so it can be
	// erased faithfully and so assignability can treat it nominally by
	// base name.
	TypeGeneric
)

// ObjectTypeMember is one `key: Type` or `key?: Type` entry in a
// TypeObject annotation.
type ObjectTypeMember struct {
	Name     string
	Type     *TypeAnnotation
	Optional bool
}

// TypeAnnotation is a parsed type expression. Which fields are populated
// depends on Kind:
//
//	TypeIdentifier:    Name
//	TypeArray:         Elem
//	TypeFunction:      Params, Return
//	TypeObject:        Members
//	TypeUnion:         Options
//	TypeIntersection:  Options
//	TypeGeneric:       Name, Args
type TypeAnnotation struct {
	Kind    TypeKind
	Token   token.Token
	Name    string
	Elem    *TypeAnnotation
	Params  []*TypeAnnotation
	Return  *TypeAnnotation
	Members []ObjectTypeMember
	Options []*TypeAnnotation
	Args    []*TypeAnnotation
}

// TokenLiteral returns the literal of the token the annotation started at.
func (t *TypeAnnotation) TokenLiteral() string { return t.Token.Literal }

// Pos returns the annotation's source position.
func (t *TypeAnnotation) Pos() token.Position { return t.Token.Pos }

func (t *TypeAnnotation) typeExpressionNode() {}

// String renders the annotation back to TypeScript syntax.
func (t *TypeAnnotation) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeIdentifier:
		return t.Name
	case TypeArray:
		return t.Elem.String() + "[]"
	case TypeFunction:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.String()
		}
		return "(" + strings.Join(params, ", ") + ") => " + t.Return.String()
	case TypeObject:
		members := make([]string, len(t.Members))
		for i, m := range t.Members {
			opt := ""
			if m.Optional {
				opt = "?"
			}
			members[i] = m.Name + opt + ": " + m.Type.String()
		}
		return "{ " + strings.Join(members, "; ") + " }"
	case TypeUnion:
		parts := make([]string, len(t.Options))
		for i, o := range t.Options {
			parts[i] = o.String()
		}
		return strings.Join(parts, " | ")
	case TypeIntersection:
		parts := make([]string, len(t.Options))
		for i, o := range t.Options {
			parts[i] = o.String()
		}
		return strings.Join(parts, " & ")
	case TypeGeneric:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	default:
		return t.Name
	}
}

// NewPrimitiveType builds a TypeIdentifier annotation for one of the
// built-in type-position keywords (number/string/boolean/any/void) or a
// bare class/interface name.
func NewPrimitiveType(tok token.Token, name string) *TypeAnnotation {
	return &TypeAnnotation{Kind: TypeIdentifier, Token: tok, Name: name}
}

// Built-in singleton annotations reused by the analyzer for inferred
// expression types, avoiding an allocation per literal node.
var (
	NumberType    = &TypeAnnotation{Kind: TypeIdentifier, Name: "number"}
	StringType    = &TypeAnnotation{Kind: TypeIdentifier, Name: "string"}
	BooleanType   = &TypeAnnotation{Kind: TypeIdentifier, Name: "boolean"}
	AnyType       = &TypeAnnotation{Kind: TypeIdentifier, Name: "any"}
	VoidType      = &TypeAnnotation{Kind: TypeIdentifier, Name: "void"}
	NullType      = &TypeAnnotation{Kind: TypeIdentifier, Name: "null"}
	UndefinedType = &TypeAnnotation{Kind: TypeIdentifier, Name: "undefined"}
)
