package parser

import (
	"grishex/internal/ast"
	"grishex/token"
)

// binaryPrecedence drives the precedence-climbing loop. Higher binds
// tighter; operators absent from the map never start a binary node.
var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment handles "=" and the compound forms. Assignment is
// right-associative; the left side is parsed first as an ordinary
// expression and then reshaped into the matching assignment node, which
// is how a single-lookahead parser distinguishes "a.b = c" from "a.b".
func (p *Parser) parseAssignment() (ast.Expr, error) {
	expr, err := p.parseBinaryExpr(1)
	if err != nil {
		return nil, err
	}

	if !isAssignOperator(p.peek().Type) {
		return expr, nil
	}
	op := p.advance()

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	switch target := expr.(type) {
	case *ast.IdentExpr:
		return &ast.AssignExpr{
			Pos:    target.Pos,
			EndPos: value.NodeEndPos(),
			Name:   target.Name,
			Op:     op,
			Value:  value,
		}, nil
	case *ast.FieldAccessExpr:
		return &ast.FieldAssignExpr{
			Pos:    target.Pos,
			EndPos: value.NodeEndPos(),
			Object: target.Object,
			Field:  target.Field,
			Op:     op,
			Value:  value,
		}, nil
	case *ast.IndexExpr:
		return &ast.IndexAssignExpr{
			Pos:    target.Pos,
			EndPos: value.NodeEndPos(),
			Object: target.Object,
			Index:  target.Index,
			Op:     op,
			Value:  value,
		}, nil
	default:
		return nil, p.errorAt(op, "Invalid assignment target.")
	}
}

func isAssignOperator(tt token.TokenType) bool {
	switch tt {
	case token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL,
		token.STAR_EQUAL, token.SLASH_EQUAL, token.PERCENT_EQUAL:
		return true
	}
	return false
}

// parseBinaryExpr is the precedence-climbing core: parse a unary
// operand, then fold in operators at or above minPrec, recursing one
// level tighter for the right side so equal-precedence operators
// associate left.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := binaryPrecedence[p.peek().Lexeme]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.advance()

		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op,
			Left:   left,
			Right:  right,
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		value, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op,
			Value:  value,
		}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// calls, field accesses, and index accesses, left to right.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			var args []ast.Expr
			if !p.check(token.RIGHT_PAREN) {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			rparen, err := p.consume(token.RIGHT_PAREN, "Expected ')' after arguments.")
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(rparen),
				Callee: expr,
				Args:   args,
			}

		case p.match(token.DOT):
			field, err := p.consume(token.IDENTIFIER, "Expected field name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.FieldAccessExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(field),
				Object: expr,
				Field:  field,
			}

		case p.match(token.LEFT_BRACKET):
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			rbracket, err := p.consume(token.RIGHT_BRACKET, "Expected ']' after index.")
			if err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(rbracket),
				Object: expr,
				Index:  index,
			}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.peek().Type {
	case token.NUMBER, token.STRING:
		tok := p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Tok:    tok,
			Value:  tok.Literal,
		}, nil

	case token.TRUE:
		tok := p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Tok:    tok,
			Value:  true,
		}, nil

	case token.FALSE:
		tok := p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Tok:    tok,
			Value:  false,
		}, nil

	case token.THIS:
		tok := p.advance()
		return &ast.ThisExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Tok:    tok,
		}, nil

	case token.IDENTIFIER:
		tok := p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok,
		}, nil

	case token.LEFT_PAREN:
		lparen := p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rparen, err := p.consume(token.RIGHT_PAREN, "Expected ')' after expression.")
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{
			Pos:    p.makePos(lparen),
			EndPos: p.makeEndPos(rparen),
			Value:  inner,
		}, nil

	default:
		return nil, p.errorAtCurrent("Expected expression.")
	}
}
