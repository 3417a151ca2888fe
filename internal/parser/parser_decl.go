package parser

import (
	"grishex/internal/ast"
	"grishex/token"
)

// parseDecl dispatches on the leading token. Anything that does not
// open a declaration is tried as a statement, which keeps script-style
// sources and the REPL working.
func (p *Parser) parseDecl() (ast.Decl, error) {
	switch p.peek().Type {
	case token.PRAGMA:
		return p.parsePragma()
	case token.IMPORT:
		return p.parseImport()
	case token.CONTRACT:
		return p.parseContract()
	case token.INTERFACE:
		return p.parseInterface()
	case token.STRUCT:
		return p.parseStruct()
	case token.ENUM:
		return p.parseEnum()
	case token.EVENT:
		return p.parseEvent()
	case token.ERROR:
		return p.parseErrorDecl()
	case token.FUNCTION, token.PUBLIC, token.PRIVATE, token.VIEW, token.PAYABLE:
		return p.parseFunction()
	default:
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		return stmt.(ast.Decl), nil
	}
}

// parsePragma parses "pragma grishex 1.0;".
func (p *Parser) parsePragma() (*ast.Pragma, error) {
	kw := p.advance() // 'pragma'

	name, err := p.consumeIdent("Expected language name after 'pragma'.")
	if err != nil {
		return nil, err
	}
	version, err := p.consume(token.NUMBER, "Expected version number in pragma.")
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON, "Expected ';' after pragma.")
	if err != nil {
		return nil, err
	}

	return &ast.Pragma{
		Pos:     p.makePos(kw),
		EndPos:  p.makeEndPos(semi),
		Name:    name,
		Version: version,
	}, nil
}

// parseImport parses `import "path";` and `import "path" { A, B };`.
func (p *Parser) parseImport() (*ast.Import, error) {
	kw := p.advance() // 'import'

	path, err := p.consume(token.STRING, "Expected import path string.")
	if err != nil {
		return nil, err
	}

	var symbols []ast.Ident
	if p.match(token.LEFT_BRACE) {
		for {
			sym, err := p.consumeIdent("Expected imported symbol name.")
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, sym)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.consume(token.RIGHT_BRACE, "Expected '}' after import symbols."); err != nil {
			return nil, err
		}
	}

	semi, err := p.consume(token.SEMICOLON, "Expected ';' after import.")
	if err != nil {
		return nil, err
	}

	return &ast.Import{
		Pos:     p.makePos(kw),
		EndPos:  p.makeEndPos(semi),
		Path:    path,
		Symbols: symbols,
	}, nil
}

// parseContract parses a contract declaration and sorts its members
// into the separate state/constructor/function/struct/event/error
// lists the AST keeps.
func (p *Parser) parseContract() (*ast.Contract, error) {
	kw := p.advance() // 'contract'

	name, err := p.consumeIdent("Expected contract name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expected '{' after contract name."); err != nil {
		return nil, err
	}

	contract := &ast.Contract{
		Pos:  p.makePos(kw),
		Name: name,
	}

	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		switch p.peek().Type {
		case token.STATE:
			if err := p.parseStateBlock(contract); err != nil {
				return nil, err
			}
		case token.CONSTRUCTOR:
			ctor, err := p.parseConstructor()
			if err != nil {
				return nil, err
			}
			if contract.Constructor != nil {
				return nil, p.errorAt(p.previous(), "Contract already has a constructor.")
			}
			contract.Constructor = ctor
		case token.FUNCTION, token.PUBLIC, token.PRIVATE, token.VIEW, token.PAYABLE:
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			contract.Functions = append(contract.Functions, fn)
		case token.STRUCT:
			s, err := p.parseStruct()
			if err != nil {
				return nil, err
			}
			contract.Structs = append(contract.Structs, s)
		case token.EVENT:
			e, err := p.parseEvent()
			if err != nil {
				return nil, err
			}
			contract.Events = append(contract.Events, e)
		case token.ERROR:
			e, err := p.parseErrorDecl()
			if err != nil {
				return nil, err
			}
			contract.Errors = append(contract.Errors, e)
		default:
			return nil, p.errorAtCurrent("Expected contract member.")
		}
	}

	rbrace, err := p.consume(token.RIGHT_BRACE, "Expected '}' to close contract body.")
	if err != nil {
		return nil, err
	}
	contract.EndPos = p.makeEndPos(rbrace)
	return contract, nil
}

// parseStateBlock parses "state { field declarations }" and appends the
// fields to the contract.
func (p *Parser) parseStateBlock(contract *ast.Contract) error {
	p.advance() // 'state'
	if _, err := p.consume(token.LEFT_BRACE, "Expected '{' after 'state'."); err != nil {
		return err
	}

	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		field, err := p.parseStateField()
		if err != nil {
			return err
		}
		contract.Fields = append(contract.Fields, field)
	}

	_, err := p.consume(token.RIGHT_BRACE, "Expected '}' to close state block.")
	return err
}

// parseStateField parses one state variable:
// "[let] [public|private] name: type [= expr];". The 'let' is optional
// so state blocks read the same as local declarations.
func (p *Parser) parseStateField() (*ast.VarDecl, error) {
	start := p.peek()
	p.match(token.LET)

	var visibility *ast.Ident
	if p.check(token.PUBLIC) || p.check(token.PRIVATE) {
		vis := p.makeIdent(p.advance())
		visibility = &vis
	}

	name, err := p.consumeIdent("Expected state variable name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "Expected ':' after state variable name."); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var value ast.Expr
	if p.match(token.EQUAL) {
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	semi, err := p.consume(token.SEMICOLON, "Expected ';' after state variable.")
	if err != nil {
		return nil, err
	}

	return &ast.VarDecl{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(semi),
		Visibility: visibility,
		Name:       name,
		Type:       typ,
		Value:      value,
	}, nil
}

// parseInterface parses "interface Name { signatures and events }".
func (p *Parser) parseInterface() (*ast.Interface, error) {
	kw := p.advance() // 'interface'

	name, err := p.consumeIdent("Expected interface name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expected '{' after interface name."); err != nil {
		return nil, err
	}

	iface := &ast.Interface{
		Pos:  p.makePos(kw),
		Name: name,
	}

	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		switch p.peek().Type {
		case token.EVENT:
			e, err := p.parseEvent()
			if err != nil {
				return nil, err
			}
			iface.Events = append(iface.Events, e)
		case token.FUNCTION, token.PUBLIC, token.PRIVATE, token.VIEW, token.PAYABLE:
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			iface.Functions = append(iface.Functions, fn)
		default:
			return nil, p.errorAtCurrent("Expected interface member.")
		}
	}

	rbrace, err := p.consume(token.RIGHT_BRACE, "Expected '}' to close interface body.")
	if err != nil {
		return nil, err
	}
	iface.EndPos = p.makeEndPos(rbrace)
	return iface, nil
}

// parseStruct parses "struct Name { field: type; ... }".
func (p *Parser) parseStruct() (*ast.Struct, error) {
	kw := p.advance() // 'struct'

	name, err := p.consumeIdent("Expected struct name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expected '{' after struct name."); err != nil {
		return nil, err
	}

	var fields []*ast.StructField
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		field, err := p.parseStructField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	rbrace, err := p.consume(token.RIGHT_BRACE, "Expected '}' to close struct body.")
	if err != nil {
		return nil, err
	}

	return &ast.Struct{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(rbrace),
		Name:   name,
		Fields: fields,
	}, nil
}

func (p *Parser) parseStructField() (*ast.StructField, error) {
	name, err := p.consumeIdent("Expected field name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "Expected ':' after field name."); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON, "Expected ';' after struct field.")
	if err != nil {
		return nil, err
	}

	return &ast.StructField{
		Pos:    name.Pos,
		EndPos: p.makeEndPos(semi),
		Name:   name,
		Type:   typ,
	}, nil
}

// parseEnum parses "enum Name { A, B, C }".
func (p *Parser) parseEnum() (*ast.Enum, error) {
	kw := p.advance() // 'enum'

	name, err := p.consumeIdent("Expected enum name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "Expected '{' after enum name."); err != nil {
		return nil, err
	}

	var variants []ast.Ident
	if !p.check(token.RIGHT_BRACE) {
		for {
			variant, err := p.consumeIdent("Expected enum variant name.")
			if err != nil {
				return nil, err
			}
			variants = append(variants, variant)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	rbrace, err := p.consume(token.RIGHT_BRACE, "Expected '}' to close enum body.")
	if err != nil {
		return nil, err
	}

	return &ast.Enum{
		Pos:      p.makePos(kw),
		EndPos:   p.makeEndPos(rbrace),
		Name:     name,
		Variants: variants,
	}, nil
}

// parseEvent parses "event Name(params);".
func (p *Parser) parseEvent() (*ast.Event, error) {
	kw := p.advance() // 'event'

	name, err := p.consumeIdent("Expected event name.")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON, "Expected ';' after event declaration.")
	if err != nil {
		return nil, err
	}

	return &ast.Event{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Name:   name,
		Params: params,
	}, nil
}

// parseErrorDecl parses "error Name(params);".
func (p *Parser) parseErrorDecl() (*ast.ErrorDecl, error) {
	kw := p.advance() // 'error'

	name, err := p.consumeIdent("Expected error name.")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(token.SEMICOLON, "Expected ';' after error declaration.")
	if err != nil {
		return nil, err
	}

	return &ast.ErrorDecl{
		Pos:    p.makePos(kw),
		EndPos: p.makeEndPos(semi),
		Name:   name,
		Params: params,
	}, nil
}

// parseFunction parses
// "[public|private] [view|payable]* function name(params) [-> type]"
// followed by either a body block or, for interface signatures, ';'.
func (p *Parser) parseFunction() (*ast.Function, error) {
	start := p.peek()

	var visibility *ast.Ident
	if p.check(token.PUBLIC) || p.check(token.PRIVATE) {
		vis := p.makeIdent(p.advance())
		visibility = &vis
	}

	var modifiers []ast.Ident
	for p.check(token.VIEW) || p.check(token.PAYABLE) {
		modifiers = append(modifiers, p.makeIdent(p.advance()))
	}

	if _, err := p.consume(token.FUNCTION, "Expected 'function' keyword."); err != nil {
		return nil, err
	}
	name, err := p.consumeIdent("Expected function name.")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	var ret *ast.VariableType
	if p.match(token.ARROW) {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	fn := &ast.Function{
		Pos:        p.makePos(start),
		Visibility: visibility,
		Modifiers:  modifiers,
		Name:       name,
		Params:     params,
		Return:     ret,
	}

	if p.check(token.SEMICOLON) {
		semi := p.advance()
		fn.EndPos = p.makeEndPos(semi)
		return fn, nil
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.EndPos = body.EndPos
	return fn, nil
}

// parseConstructor parses "constructor(params) { body }".
func (p *Parser) parseConstructor() (*ast.Constructor, error) {
	kw := p.advance() // 'constructor'

	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.Constructor{
		Pos:    p.makePos(kw),
		EndPos: body.EndPos,
		Params: params,
		Body:   body,
	}, nil
}

// parseParamList parses "(name: [storage-class] type, ...)", possibly
// empty.
func (p *Parser) parseParamList() ([]*ast.Param, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expected '(' before parameter list."); err != nil {
		return nil, err
	}

	var params []*ast.Param
	if !p.check(token.RIGHT_PAREN) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RIGHT_PAREN, "Expected ')' after parameter list."); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParam() (*ast.Param, error) {
	name, err := p.consumeIdent("Expected parameter name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "Expected ':' after parameter name."); err != nil {
		return nil, err
	}

	var storage *ast.Ident
	switch p.peek().Type {
	case token.STORAGE, token.MEMORY, token.CALLDATA:
		sc := p.makeIdent(p.advance())
		storage = &sc
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	return &ast.Param{
		Pos:     name.Pos,
		EndPos:  typ.EndPos,
		Name:    name,
		Storage: storage,
		Type:    typ,
	}, nil
}

// parseType parses a type name with optional generic arguments, e.g.
// "uint", "array<int>", "map<address, array<uint>>". Nested closers
// work because '>' is always lexed as a single token.
func (p *Parser) parseType() (*ast.VariableType, error) {
	if !p.checkTypeName() {
		return nil, p.errorAtCurrent("Expected type name.")
	}
	name := p.makeIdent(p.advance())

	typ := &ast.VariableType{
		Pos:    name.Pos,
		EndPos: name.EndPos,
		Name:   name,
	}

	if p.match(token.LESS) {
		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			typ.Generics = append(typ.Generics, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
		gt, err := p.consume(token.GREATER, "Expected '>' after generic arguments.")
		if err != nil {
			return nil, err
		}
		typ.EndPos = p.makeEndPos(gt)
	}

	return typ, nil
}

// checkTypeName reports whether the current token can begin a type:
// a primitive type keyword or a user-defined type identifier.
func (p *Parser) checkTypeName() bool {
	switch p.peek().Type {
	case token.IDENTIFIER,
		token.INT_TYPE, token.UINT_TYPE, token.BOOL_TYPE,
		token.ADDRESS_TYPE, token.STRING_TYPE, token.BYTES_TYPE,
		token.HASH_TYPE, token.ARRAY_TYPE, token.MAP_TYPE:
		return true
	}
	return false
}
