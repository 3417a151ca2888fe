package parser

import (
	"fmt"
	"strconv"

	"grishex/token"
)

// Scanner turns a source buffer into an eager token sequence. Each
// Scanner is single-use: all cursor state is rebuilt by NewScanner, so
// independent inputs can be scanned concurrently with no coordination.
type Scanner struct {
	source      string
	tokens      []token.Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	errors      []ScanError
}

// ScanError is a non-fatal lexical diagnostic. Scanning never aborts;
// errors accumulate for batch reporting.
type ScanError struct {
	Message  string
	Position token.Position
	Length   int // how many source characters the diagnostic covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans source in one pass and returns the token sequence
// (always terminated by exactly one EOF token) plus any lexical
// diagnostics.
func Tokenize(source string) ([]token.Token, []ScanError) {
	s := NewScanner(source)
	return s.ScanTokens(), s.errors
}

// ScanTokens runs the scan loop to completion and appends the single
// EOF marker.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{
		Type:     token.EOF,
		Position: token.Position{Line: s.line, Column: s.column, Offset: s.current},
	})
	return s.tokens
}

// Errors returns the lexical diagnostics accumulated during the scan.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case '[':
		s.addToken(token.LEFT_BRACKET)
	case ']':
		s.addToken(token.RIGHT_BRACKET)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case ';':
		s.addToken(token.SEMICOLON)
	case ':':
		s.addToken(token.COLON)

	// Operators with potential multi-character variants
	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '%':
		s.scanPercentOperator()
	case '!':
		s.scanBangOperator()
	case '=':
		s.scanEqualOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Line counting handled in advance()

	// String literals, either quote style
	case '"', '\'':
		s.scanString(c)

	default:
		s.scanDefault(c)
	}
}

// Operator scanning methods for better organization

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('=') {
		s.addToken(token.PLUS_EQUAL)
	} else {
		s.addToken(token.PLUS)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('=') {
		s.addToken(token.MINUS_EQUAL)
	} else if s.matchNext('>') {
		s.addToken(token.ARROW)
	} else {
		s.addToken(token.MINUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('=') {
		s.addToken(token.STAR_EQUAL)
	} else {
		s.addToken(token.STAR)
	}
}

func (s *Scanner) scanPercentOperator() {
	if s.matchNext('=') {
		s.addToken(token.PERCENT_EQUAL)
	} else {
		s.addToken(token.PERCENT)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(token.BANG_EQUAL)
	} else {
		s.addToken(token.BANG)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(token.EQUAL_EQUAL)
	} else {
		s.addToken(token.EQUAL)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(token.LESS_EQUAL)
	} else {
		s.addToken(token.LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(token.GREATER_EQUAL)
	} else {
		s.addToken(token.GREATER)
	}
}

// Grishex has no bitwise operators: '&' and '|' are only valid doubled.
// A lone one gets a diagnostic rather than being swallowed silently.
func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(token.AND)
	} else {
		s.reportError("Unexpected character '&': did you mean '&&'?")
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('|') {
		s.addToken(token.OR)
	} else {
		s.reportError("Unexpected character '|': did you mean '||'?")
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('=') {
		s.addToken(token.SLASH_EQUAL)
	} else if s.matchNext('/') {
		s.scanLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else {
		s.addToken(token.SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else if c >= 0x80 {
		// Consume the remaining UTF-8 continuation bytes so one
		// non-ASCII character yields one diagnostic, not one per byte.
		for s.peek() >= 0x80 && s.peek() < 0xC0 {
			s.advance()
		}
		s.reportError(fmt.Sprintf("Unexpected character: %q", s.source[s.start:s.current]))
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tt token.TokenType) {
	s.addLiteralToken(tt, nil)
}

func (s *Scanner) addLiteralToken(tt token.TokenType, literal any) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.Token{
		Type:    tt,
		Lexeme:  text,
		Literal: literal,
		Position: token.Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: token.Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isAlpha is deliberately ASCII-only: a byte of a multi-byte UTF-8
// sequence must not pass as an identifier character.
func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(token.LookupIdent(text))
}

// scanNumber reads the longest digit run, optionally followed by a
// single '.' and another digit run. No exponents, radix prefixes, or
// digit separators. The literal value is parsed as a float64 whether or
// not a decimal point was present; the exact lexeme stays on the token
// for consumers that need full precision.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	value, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		s.reportError("Invalid number literal.")
		return
	}
	s.addLiteralToken(token.NUMBER, value)
}

// scanString reads a literal delimited by the quote character that
// opened it. Newlines are allowed inside and tracked for positions.
func (s *Scanner) scanString(quote byte) {
	for s.peek() != quote && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}
	s.advance() // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(token.STRING, value)
}

func (s *Scanner) scanLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return
		}
		s.advance()
	}
	s.reportError("Unterminated block comment.")
}
