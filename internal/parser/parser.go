package parser

import (
	"fmt"

	"grishex/internal/ast"
	"grishex/token"
)

// ParseError is a syntax diagnostic. Parse failures travel up the
// descent as ordinary error values; the top-level declaration loop is
// the only place that records them and resynchronizes.
type ParseError struct {
	Message  string
	Position token.Position
	Length   int // source characters the diagnostic covers
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// Parser builds an AST from an eagerly scanned token sequence using
// recursive descent with one token of lookahead.
type Parser struct {
	filename string
	tokens   []token.Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, tokens []token.Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

// ParseSource scans and parses a whole source buffer in one call,
// returning the program alongside all syntax and lexical diagnostics.
// The returned program is never nil: recovery keeps every declaration
// that parsed cleanly.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	tokens, scanErrors := Tokenize(source)
	parser := NewParser(path, tokens)
	program := parser.ParseProgram()
	return program, parser.errors, scanErrors
}

// ParseProgram parses top-level declarations until EOF. When a
// declaration fails the error is recorded and tokens are discarded up
// to the next safe point; a failed attempt that consumed nothing
// discards one token first so the loop always makes progress.
func (p *Parser) ParseProgram() *ast.Program {
	startPos := p.makePos(p.peek())
	var decls []ast.Decl

	for !p.isAtEnd() {
		before := p.current
		decl, err := p.parseDecl()
		if err != nil {
			p.recordError(err)
			if p.current == before {
				p.advance()
			}
			p.synchronize()
			continue
		}
		decls = append(decls, decl)
	}

	return &ast.Program{
		Pos:    startPos,
		EndPos: p.makePos(p.peek()),
		Decls:  decls,
	}
}

// Errors returns the syntax diagnostics accumulated so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) recordError(err error) {
	if pe, ok := err.(*ParseError); ok {
		p.errors = append(p.errors, *pe)
		return
	}
	p.errors = append(p.errors, ParseError{
		Message:  err.Error(),
		Position: p.peek().Position,
	})
}
