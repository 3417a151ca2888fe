package errors

// Error codes for the Grishex compiler front end, used in diagnostics
// and documentation for consistent identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parser errors
// E0200-E0299: Reserved for the type checker
// E0300-E0399: Reserved for import resolution
// E0800-E0899: Warning codes

const (
	// Lexical errors (E0001-E0099)

	// E0001: A byte that cannot begin any token
	ErrorUnexpectedCharacter = "E0001"

	// E0002: String literal still open at end of file
	ErrorUnterminatedString = "E0002"

	// E0003: Block comment still open at end of file
	ErrorUnterminatedComment = "E0003"

	// E0004: Number literal that does not parse
	ErrorInvalidNumber = "E0004"

	// Parser errors (E0100-E0199)

	// E0100: Generic syntax error
	ErrorSyntax = "E0100"

	// E0101: Expression expected but something else found
	ErrorExpectedExpression = "E0101"

	// E0102: Statement terminator missing
	ErrorMissingSemicolon = "E0102"

	// E0103: Assignment to something that is not a variable,
	// field, or index target
	ErrorInvalidAssignmentTarget = "E0103"

	// E0104: Malformed declaration header
	ErrorInvalidDeclaration = "E0104"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Character cannot begin any token"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorUnterminatedComment:
		return "Block comment is missing its closing */"
	case ErrorInvalidNumber:
		return "Number literal is malformed"
	case ErrorSyntax:
		return "Source does not match the Grishex grammar"
	case ErrorExpectedExpression:
		return "An expression was expected at this position"
	case ErrorMissingSemicolon:
		return "Statement is missing its ';' terminator"
	case ErrorInvalidAssignmentTarget:
		return "Left side of assignment is not assignable"
	case ErrorInvalidDeclaration:
		return "Declaration header is malformed"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexical"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	default:
		return "Unknown"
	}
}
