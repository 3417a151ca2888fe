package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"grishex/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `contract Test {
    public function test() -> uint {
        let x = ;
        return x;
    }
}`

	reporter := NewErrorReporter("test.gx", source)

	err := CompilerError{
		Level:   Error,
		Code:    ErrorExpectedExpression,
		Message: "Expected expression.",
		Position: ast.Position{
			Filename: "test.gx",
			Line:     3,
			Column:   17,
		},
		Length: 1,
	}
	formatted := reporter.FormatError(err)

	// Header with level and code
	assert.Contains(t, formatted, "error["+ErrorExpectedExpression+"]")
	assert.Contains(t, formatted, "Expected expression.")

	// Location line
	assert.Contains(t, formatted, "test.gx:3:17")

	// Offending line plus surrounding context
	assert.Contains(t, formatted, "let x = ;")
	assert.Contains(t, formatted, "public function test()")
	assert.Contains(t, formatted, "return x;")
	assert.Contains(t, formatted, "^")
}

func TestErrorReporterSuggestions(t *testing.T) {
	source := `let a = b & c;`
	reporter := NewErrorReporter("test.gx", source)

	err := CompilerError{
		Level:    Error,
		Code:     ErrorUnexpectedCharacter,
		Message:  "Unexpected character '&': did you mean '&&'?",
		Position: ast.Position{Line: 1, Column: 11},
		Length:   1,
		Suggestions: []Suggestion{
			{Message: "did you mean '&&'"},
		},
	}
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "help")
	assert.Contains(t, formatted, "did you mean '&&'")
}

func TestErrorReporterNotesAndHelp(t *testing.T) {
	source := `contract C {}`
	reporter := NewErrorReporter("test.gx", source)

	err := CompilerError{
		Level:    Error,
		Message:  "Expected contract member.",
		Position: ast.Position{Line: 1, Column: 13},
		Length:   1,
		Notes:    []string{"contract bodies hold state, events, errors, and functions"},
		HelpText: "move top-level statements outside the contract",
	}
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "note:")
	assert.Contains(t, formatted, "contract bodies hold state")
	assert.Contains(t, formatted, "help:")
	assert.Contains(t, formatted, "move top-level statements")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `let variable = value;`
	reporter := NewErrorReporter("test.gx", source)

	marker := reporter.createMarker(5, 8, Error) // "variable" is 8 chars at column 5

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestErrorMarkerMinimumWidth(t *testing.T) {
	reporter := NewErrorReporter("test.gx", "x")

	marker := reporter.createMarker(1, 0, Error)
	assert.Equal(t, 1, strings.Count(marker, "^"))
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.gx", "test")
	pos := ast.Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "test error", Position: pos})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "test warning", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestErrorCodeDescriptions(t *testing.T) {
	assert.NotEmpty(t, GetErrorDescription(ErrorExpectedExpression))
	assert.Equal(t, "Lexical", GetErrorCategory(ErrorUnterminatedString))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorMissingSemicolon))
}
