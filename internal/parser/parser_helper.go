package parser

import (
	"fmt"
	"strings"

	"grishex/internal/ast"
	"grishex/token"
)

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt token.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances over the expected token or fails with a diagnostic
// anchored at the token actually found.
func (p *Parser) consume(tt token.TokenType, message string) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAtCurrent(message)
}

func (p *Parser) errorAtCurrent(message string) *ParseError {
	return p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) *ParseError {
	length := len(tok.Lexeme)
	if tok.Type == token.EOF {
		length = 1
		message = fmt.Sprintf("%s Found end of file.", message)
	}
	return &ParseError{
		Message:  message,
		Position: tok.Position,
		Length:   length,
	}
}

// synchronize discards tokens until the previously consumed token ends
// a statement or the next token can begin one. Checking before
// advancing means a failure that stopped right in front of the next
// declaration loses nothing.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.current > 0 && p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CONTRACT, token.INTERFACE, token.STRUCT, token.ENUM,
			token.EVENT, token.ERROR, token.FUNCTION, token.CONSTRUCTOR,
			token.IMPORT, token.PRAGMA, token.STATE,
			token.LET, token.IF, token.WHILE, token.FOR, token.FOREACH,
			token.RETURN, token.REQUIRE, token.ASSERT, token.REVERT,
			token.EMIT, token.TRY:
			return
		}

		p.advance()
	}
}

// Position plumbing from tokens to AST nodes.

func (p *Parser) makePos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

// makeEndPos points just past tok's lexeme. Strings are the only
// multi-line lexemes; their end position is computed from the last
// line of the literal.
func (p *Parser) makeEndPos(tok token.Token) ast.Position {
	line := tok.Position.Line
	column := tok.Position.Column + len(tok.Lexeme)
	if idx := strings.LastIndexByte(tok.Lexeme, '\n'); idx >= 0 {
		line += strings.Count(tok.Lexeme, "\n")
		column = len(tok.Lexeme) - idx
	}
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     line,
		Column:   column,
	}
}

func (p *Parser) makeIdent(tok token.Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

func (p *Parser) consumeIdent(message string) (ast.Ident, error) {
	tok, err := p.consume(token.IDENTIFIER, message)
	if err != nil {
		return ast.Ident{}, err
	}
	return p.makeIdent(tok), nil
}
