package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"grishex/internal/parser"
	"grishex/token"
)

func TestFromScanErrorClassification(t *testing.T) {
	cases := []struct {
		message string
		code    string
	}{
		{"Unexpected character '@'.", ErrorUnexpectedCharacter},
		{"Unterminated string.", ErrorUnterminatedString},
		{"Unterminated block comment.", ErrorUnterminatedComment},
		{"Invalid number literal.", ErrorInvalidNumber},
	}

	for _, tc := range cases {
		ce := FromScanError("test.gx", parser.ScanError{
			Message:  tc.message,
			Position: token.Position{Line: 2, Column: 4, Offset: 10},
			Length:   1,
		})

		assert.Equal(t, tc.code, ce.Code, "wrong code for %q", tc.message)
		assert.Equal(t, Error, ce.Level)
		assert.Equal(t, "test.gx", ce.Position.Filename)
		assert.Equal(t, 2, ce.Position.Line)
		assert.Equal(t, 4, ce.Position.Column)
	}
}

func TestFromScanErrorExtractsSuggestion(t *testing.T) {
	ce := FromScanError("test.gx", parser.ScanError{
		Message:  "Unexpected character '&': did you mean '&&'?",
		Position: token.Position{Line: 1, Column: 7},
		Length:   1,
	})

	assert.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "did you mean '&&'", ce.Suggestions[0].Message)
}

func TestFromParseErrorClassification(t *testing.T) {
	cases := []struct {
		message string
		code    string
	}{
		{"Expected expression.", ErrorExpectedExpression},
		{"Expected ';' after expression.", ErrorMissingSemicolon},
		{"Invalid assignment target.", ErrorInvalidAssignmentTarget},
		{"Expected contract member.", ErrorInvalidDeclaration},
		{"Expected interface member.", ErrorInvalidDeclaration},
		{"Expected type name.", ErrorSyntax},
	}

	for _, tc := range cases {
		ce := FromParseError("test.gx", parser.ParseError{
			Message:  tc.message,
			Position: token.Position{Line: 5, Column: 9},
			Length:   3,
		})

		assert.Equal(t, tc.code, ce.Code, "wrong code for %q", tc.message)
		assert.Equal(t, 3, ce.Length)
		assert.Equal(t, 5, ce.Position.Line)
	}
}
