package errors

import (
	"strings"

	"grishex/internal/ast"
	"grishex/internal/parser"
)

// FromScanError lifts a lexical diagnostic into a renderable
// CompilerError, classifying its code from the message.
func FromScanError(filename string, se parser.ScanError) CompilerError {
	code := ErrorUnexpectedCharacter
	switch {
	case strings.HasPrefix(se.Message, "Unterminated string"):
		code = ErrorUnterminatedString
	case strings.HasPrefix(se.Message, "Unterminated block comment"):
		code = ErrorUnterminatedComment
	case strings.HasPrefix(se.Message, "Invalid number"):
		code = ErrorInvalidNumber
	}

	ce := CompilerError{
		Level:   Error,
		Code:    code,
		Message: se.Message,
		Position: ast.Position{
			Filename: filename,
			Offset:   se.Position.Offset,
			Line:     se.Position.Line,
			Column:   se.Position.Column,
		},
		Length: se.Length,
	}

	// The scanner phrases fixable mistakes as questions ("did you
	// mean '&&'?"); surface those as suggestions too.
	if idx := strings.Index(se.Message, "did you mean "); idx >= 0 {
		ce.Suggestions = append(ce.Suggestions, Suggestion{
			Message: strings.TrimSuffix(se.Message[idx:], "?"),
		})
	}

	return ce
}

// FromParseError lifts a syntax diagnostic into a renderable
// CompilerError.
func FromParseError(filename string, pe parser.ParseError) CompilerError {
	code := ErrorSyntax
	switch {
	case strings.HasPrefix(pe.Message, "Expected expression"):
		code = ErrorExpectedExpression
	case strings.Contains(pe.Message, "Expected ';'"):
		code = ErrorMissingSemicolon
	case strings.HasPrefix(pe.Message, "Invalid assignment target"):
		code = ErrorInvalidAssignmentTarget
	case strings.HasPrefix(pe.Message, "Expected contract member"),
		strings.HasPrefix(pe.Message, "Expected interface member"):
		code = ErrorInvalidDeclaration
	}

	return CompilerError{
		Level:   Error,
		Code:    code,
		Message: pe.Message,
		Position: ast.Position{
			Filename: filename,
			Offset:   pe.Position.Offset,
			Line:     pe.Position.Line,
			Column:   pe.Position.Column,
		},
		Length: pe.Length,
	}
}
