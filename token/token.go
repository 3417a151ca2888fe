// Package token defines the lexical vocabulary of the Grishex language:
// token kinds, the keyword table, and source positions. It is shared by
// the scanner, the parser, the AST, and external tooling that consumes
// raw token streams (syntax highlighting, formatters).
package token

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Punctuation
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
	COMMA
	DOT
	SEMICOLON
	COLON

	// Operators
	PLUS
	PLUS_EQUAL
	MINUS
	MINUS_EQUAL
	ARROW
	STAR
	STAR_EQUAL
	SLASH
	SLASH_EQUAL
	PERCENT
	PERCENT_EQUAL
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR

	// Declaration keywords
	CONTRACT
	INTERFACE
	STRUCT
	ENUM
	EVENT
	ERROR
	FUNCTION
	CONSTRUCTOR
	IMPORT
	PRAGMA
	STATE

	// Statement keywords
	LET
	IF
	ELSE
	WHILE
	FOR
	FOREACH
	RETURN
	REQUIRE
	ASSERT
	REVERT
	EMIT
	TRY
	CATCH

	// Expression keywords
	THIS
	TRUE
	FALSE

	// Visibility and behavior modifiers
	PUBLIC
	PRIVATE
	VIEW
	PAYABLE

	// Storage-class qualifiers for parameters
	STORAGE
	MEMORY
	CALLDATA

	// Primitive type names
	INT_TYPE
	UINT_TYPE
	BOOL_TYPE
	ADDRESS_TYPE
	STRING_TYPE
	BYTES_TYPE
	HASH_TYPE
	ARRAY_TYPE
	MAP_TYPE
)

// Position locates a lexeme in the source buffer. Line and Column are
// 1-based and refer to the lexeme's first character; Offset is the
// 0-based byte index into the input.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is one lexical unit. Lexeme is the exact source substring the
// token was built from (string literals keep their quotes). Literal
// holds the parsed value for NUMBER (float64) and STRING (unquoted
// contents) tokens and is nil for everything else.
type Token struct {
	Type     TokenType
	Lexeme   string
	Literal  any
	Position Position
}

var keywords = map[string]TokenType{
	"contract":    CONTRACT,
	"interface":   INTERFACE,
	"struct":      STRUCT,
	"enum":        ENUM,
	"event":       EVENT,
	"error":       ERROR,
	"function":    FUNCTION,
	"constructor": CONSTRUCTOR,
	"import":      IMPORT,
	"pragma":      PRAGMA,
	"state":       STATE,
	"let":         LET,
	"if":          IF,
	"else":        ELSE,
	"while":       WHILE,
	"for":         FOR,
	"foreach":     FOREACH,
	"return":      RETURN,
	"require":     REQUIRE,
	"assert":      ASSERT,
	"revert":      REVERT,
	"emit":        EMIT,
	"try":         TRY,
	"catch":       CATCH,
	"this":        THIS,
	"true":        TRUE,
	"false":       FALSE,
	"public":      PUBLIC,
	"private":     PRIVATE,
	"view":        VIEW,
	"payable":     PAYABLE,
	"storage":     STORAGE,
	"memory":      MEMORY,
	"calldata":    CALLDATA,
	"int":         INT_TYPE,
	"uint":        UINT_TYPE,
	"bool":        BOOL_TYPE,
	"address":     ADDRESS_TYPE,
	"string":      STRING_TYPE,
	"bytes":       BYTES_TYPE,
	"hash":        HASH_TYPE,
	"array":       ARRAY_TYPE,
	"map":         MAP_TYPE,
}

// LookupIdent maps an identifier lexeme to its keyword token type, or
// IDENTIFIER when it is not a reserved word.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENTIFIER
}

var tokenNames = map[TokenType]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "identifier",
	NUMBER:        "number",
	STRING:        "string",
	LEFT_PAREN:    "'('",
	RIGHT_PAREN:   "')'",
	LEFT_BRACE:    "'{'",
	RIGHT_BRACE:   "'}'",
	LEFT_BRACKET:  "'['",
	RIGHT_BRACKET: "']'",
	COMMA:         "','",
	DOT:           "'.'",
	SEMICOLON:     "';'",
	COLON:         "':'",
	PLUS:          "'+'",
	PLUS_EQUAL:    "'+='",
	MINUS:         "'-'",
	MINUS_EQUAL:   "'-='",
	ARROW:         "'->'",
	STAR:          "'*'",
	STAR_EQUAL:    "'*='",
	SLASH:         "'/'",
	SLASH_EQUAL:   "'/='",
	PERCENT:       "'%'",
	PERCENT_EQUAL: "'%='",
	BANG:          "'!'",
	BANG_EQUAL:    "'!='",
	EQUAL:         "'='",
	EQUAL_EQUAL:   "'=='",
	LESS:          "'<'",
	LESS_EQUAL:    "'<='",
	GREATER:       "'>'",
	GREATER_EQUAL: "'>='",
	AND:           "'&&'",
	OR:            "'||'",
	CONTRACT:      "'contract'",
	INTERFACE:     "'interface'",
	STRUCT:        "'struct'",
	ENUM:          "'enum'",
	EVENT:         "'event'",
	ERROR:         "'error'",
	FUNCTION:      "'function'",
	CONSTRUCTOR:   "'constructor'",
	IMPORT:        "'import'",
	PRAGMA:        "'pragma'",
	STATE:         "'state'",
	LET:           "'let'",
	IF:            "'if'",
	ELSE:          "'else'",
	WHILE:         "'while'",
	FOR:           "'for'",
	FOREACH:       "'foreach'",
	RETURN:        "'return'",
	REQUIRE:       "'require'",
	ASSERT:        "'assert'",
	REVERT:        "'revert'",
	EMIT:          "'emit'",
	TRY:           "'try'",
	CATCH:         "'catch'",
	THIS:          "'this'",
	TRUE:          "'true'",
	FALSE:         "'false'",
	PUBLIC:        "'public'",
	PRIVATE:       "'private'",
	VIEW:          "'view'",
	PAYABLE:       "'payable'",
	STORAGE:       "'storage'",
	MEMORY:        "'memory'",
	CALLDATA:      "'calldata'",
	INT_TYPE:      "'int'",
	UINT_TYPE:     "'uint'",
	BOOL_TYPE:     "'bool'",
	ADDRESS_TYPE:  "'address'",
	STRING_TYPE:   "'string'",
	BYTES_TYPE:    "'bytes'",
	HASH_TYPE:     "'hash'",
	ARRAY_TYPE:    "'array'",
	MAP_TYPE:      "'map'",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "unknown"
}
