package parser

import (
	"grishex/internal/ast"
	"grishex/token"
)

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.peek().Type {
	case token.LEFT_BRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.FOREACH:
		return p.parseForeachStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.LET:
		return p.parseVarDecl()
	case token.REQUIRE:
		return p.parseRequireStmt()
	case token.ASSERT:
		return p.parseAssertStmt()
	case token.REVERT:
		return p.parseRevertStmt()
	case token.EMIT:
		return p.parseEmitStmt()
	case token.TRY:
		return p.parseTryCatchStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.consume(token.LEFT_BRACE, "Expected '{' to open block.")
	if err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	rbrace, err := p.consume(token.RIGHT_BRACE, "Expected '}' to close block.")
	if err != nil {
		return nil, err
	}

	return &ast.BlockStmt{
		Pos:    p.makePos(lbrace),
		EndPos: p.makeEndPos(rbrace),
		Stmts:  stmts,
	}, nil
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	kw := p.advance() // 'if'

	if _, err := p.consume(token.LEFT_PAREN, "Expected '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{
		Pos:    p.makePos(kw),
		EndPos: then.NodeEndPos(),
		Cond:   cond,
		Then:   then,
	}

	if p.match(token.ELSE) {
		els, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
		stmt.EndPos = els.NodeEndPos()
	}

	return stmt, nil
}

func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	kw := p.advance() // 'while'

	if _, err := p.consume(token.LEFT_PAREN, "Expected '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after loop condition."); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{
		Pos:    p.makePos(kw),
		EndPos: body.NodeEndPos(),
		Cond:   cond,
		Body:   body,
	}, nil
}

// parseForStmt parses a C-style for. Initializer, condition, and post
// expression are each optional; the initializer may be a let
// declaration or an expression statement, both of which own their ';'.
func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	kw := p.advance() // 'for'

	if _, err := p.consume(token.LEFT_PAREN, "Expected '(' after 'for'."); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	if p.match(token.SEMICOLON) {
		init = nil
	} else if p.check(token.LET) {
		init, err = p.parseVarDecl()
		if err != nil {
			return nil, err
		}
	} else {
		init, err = p.parseExprStmt()
		if err != nil {
			return nil, err
		}
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expected ';' after loop condition."); err != nil {
		return nil, err
	}

	var post ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		post, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	return &ast.ForStmt{
		Pos:    p.makePos(kw),
		EndPos: body.NodeEndPos(),
		Init:   init,
		Cond:   cond,
		Post:   post,
		Body:   body,
	}, nil
}

// parseForeachStmt parses "foreach (name : iterable) { body }".
func (p *Parser) parseForeachStmt() (*ast.ForeachStmt, error) {
	kw := p.advance() // 'foreach'

	if _, err := p.consume(token.LEFT_PAREN, "Expected '(' after 'foreach'."); err != nil {
		return nil, err
	}
	name, err := p.consumeIdent("Expected loop variable name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "Expected ':' after loop variable."); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after foreach clause."); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForeachStmt{
		Pos:      p.makePos(kw),
		EndPos:   body.EndPos,
		Name:     name,
		Iterable: iterable,
		Body:     body,
	}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	kw := p.advance() // 'return'

	var value ast.Expr
	var err error
	if !p.check(token.SEMICOLON) {
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	semi, err := p.consume(token.SEMICOLON, "Expected ';' after return statement.")
	if err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Value:  value,
	}, nil
}

// parseVarDecl parses "let [public|private] name [: type] [= expr];".
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	kw := p.advance() // 'let'

	var visibility *ast.Ident
	if p.check(token.PUBLIC) || p.check(token.PRIVATE) {
		vis := p.makeIdent(p.advance())
		visibility = &vis
	}

	name, err := p.consumeIdent("Expected variable name.")
	if err != nil {
		return nil, err
	}

	var typ *ast.VariableType
	if p.match(token.COLON) {
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	var value ast.Expr
	if p.match(token.EQUAL) {
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	semi, err := p.consume(token.SEMICOLON, "Expected ';' after variable declaration.")
	if err != nil {
		return nil, err
	}

	return &ast.VarDecl{
		Pos:        p.makePos(kw),
		EndPos:     p.makeEndPos(semi),
		Visibility: visibility,
		Name:       name,
		Type:       typ,
		Value:      value,
	}, nil
}

func (p *Parser) parseRequireStmt() (*ast.RequireStmt, error) {
	kw := p.advance() // 'require'

	args, semi, err := p.parseCallArgsStmt("require")
	if err != nil {
		return nil, err
	}

	return &ast.RequireStmt{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Args:   args,
	}, nil
}

func (p *Parser) parseAssertStmt() (*ast.AssertStmt, error) {
	kw := p.advance() // 'assert'

	args, semi, err := p.parseCallArgsStmt("assert")
	if err != nil {
		return nil, err
	}

	return &ast.AssertStmt{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Args:   args,
	}, nil
}

// parseRevertStmt parses `revert("msg");` and "revert ErrorName(args);".
func (p *Parser) parseRevertStmt() (*ast.RevertStmt, error) {
	kw := p.advance() // 'revert'

	var errName *ast.Ident
	if p.check(token.IDENTIFIER) {
		name := p.makeIdent(p.advance())
		errName = &name
	}

	args, semi, err := p.parseCallArgsStmt("revert")
	if err != nil {
		return nil, err
	}

	return &ast.RevertStmt{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Error:  errName,
		Args:   args,
	}, nil
}

func (p *Parser) parseEmitStmt() (*ast.EmitStmt, error) {
	kw := p.advance() // 'emit'

	event, err := p.consumeIdent("Expected event name after 'emit'.")
	if err != nil {
		return nil, err
	}

	args, semi, err := p.parseCallArgsStmt("emit")
	if err != nil {
		return nil, err
	}

	return &ast.EmitStmt{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Event:  event,
		Args:   args,
	}, nil
}

// parseCallArgsStmt parses the shared "(args);" tail of require,
// assert, revert, and emit statements and returns the closing
// semicolon for end positions.
func (p *Parser) parseCallArgsStmt(keyword string) ([]ast.Expr, token.Token, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expected '(' after '"+keyword+"'."); err != nil {
		return nil, token.Token{}, err
	}

	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, token.Token{}, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after arguments."); err != nil {
		return nil, token.Token{}, err
	}
	semi, err := p.consume(token.SEMICOLON, "Expected ';' after statement.")
	if err != nil {
		return nil, token.Token{}, err
	}
	return args, semi, nil
}

func (p *Parser) parseTryCatchStmt() (*ast.TryCatchStmt, error) {
	kw := p.advance() // 'try'

	try, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.CATCH, "Expected 'catch' after try block."); err != nil {
		return nil, err
	}

	var catchParam *ast.Ident
	if p.match(token.LEFT_PAREN) {
		name, err := p.consumeIdent("Expected catch variable name.")
		if err != nil {
			return nil, err
		}
		catchParam = &name
		if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after catch variable."); err != nil {
			return nil, err
		}
	}

	catch, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.TryCatchStmt{
		Pos:        p.makePos(kw),
		EndPos:     catch.EndPos,
		Try:        try,
		CatchParam: catchParam,
		Catch:      catch,
	}, nil
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON, "Expected ';' after expression.")
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: p.makeEndPos(semi),
		Expr:   expr,
	}, nil
}
