package parser

import (
	"fmt"

	"github.com/cwbudde/go-tsc/pkg/token"
)

// ParserError is a structured parsing error with position information,
// recorded in addition to (not instead of) the shared diagnostics.Sink so
// the parser's own tests can assert on error codes directly.
type ParserError struct {
	Message string
	Code    string
	Pos     token.Position
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Error code constants for programmatic error handling.
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrMissingLParen    = "E_MISSING_LPAREN"
	ErrMissingRParen    = "E_MISSING_RPAREN"
	ErrMissingRBracket  = "E_MISSING_RBRACKET"
	ErrMissingLBrace    = "E_MISSING_LBRACE"
	ErrMissingRBrace    = "E_MISSING_RBRACE"
	ErrInvalidExpression = "E_INVALID_EXPRESSION"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrExpectedType     = "E_EXPECTED_TYPE"
	ErrInvalidSyntax    = "E_INVALID_SYNTAX"
	ErrInvalidAssignTarget = "E_INVALID_ASSIGN_TARGET"
	ErrDuplicateModifier   = "E_DUPLICATE_MODIFIER"
)
