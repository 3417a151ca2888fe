package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"grishex/token"
)

func op(lexeme string, tt token.TokenType) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme}
}

func TestBinaryExprString(t *testing.T) {
	expr := &BinaryExpr{
		Op:    op("+", token.PLUS),
		Left:  &LiteralExpr{Tok: op("1", token.NUMBER), Value: float64(1)},
		Right: &LiteralExpr{Tok: op("2", token.NUMBER), Value: float64(2)},
	}

	assert.Equal(t, "1 + 2", expr.String())
}

func TestAssignExprString(t *testing.T) {
	expr := &AssignExpr{
		Name:  op("total", token.IDENTIFIER),
		Op:    op("+=", token.PLUS_EQUAL),
		Value: &IdentExpr{Name: op("amount", token.IDENTIFIER)},
	}

	assert.Equal(t, "total += amount", expr.String())
}

func TestFieldAndIndexExprString(t *testing.T) {
	access := &FieldAccessExpr{
		Object: &ThisExpr{Tok: op("this", token.THIS)},
		Field:  op("owner", token.IDENTIFIER),
	}
	assert.Equal(t, "this.owner", access.String())

	index := &IndexExpr{
		Object: &IdentExpr{Name: op("balances", token.IDENTIFIER)},
		Index:  &IdentExpr{Name: op("owner", token.IDENTIFIER)},
	}
	assert.Equal(t, "balances[owner]", index.String())

	assign := &IndexAssignExpr{
		Object: &IdentExpr{Name: op("balances", token.IDENTIFIER)},
		Index:  &IdentExpr{Name: op("owner", token.IDENTIFIER)},
		Op:     op("=", token.EQUAL),
		Value:  &IdentExpr{Name: op("amount", token.IDENTIFIER)},
	}
	assert.Equal(t, "balances[owner] = amount", assign.String())
}

func TestVariableTypeString(t *testing.T) {
	plain := &VariableType{Name: Ident{Value: "uint"}}
	assert.Equal(t, "uint", plain.String())

	generic := &VariableType{
		Name: Ident{Value: "map"},
		Generics: []*VariableType{
			{Name: Ident{Value: "address"}},
			{Name: Ident{Value: "uint"}},
		},
	}
	assert.Equal(t, "map<address, uint>", generic.String())
}

func TestFunctionString(t *testing.T) {
	vis := Ident{Value: "public"}
	fn := &Function{
		Visibility: &vis,
		Modifiers:  []Ident{{Value: "view"}},
		Name:       Ident{Value: "balanceOf"},
		Params: []*Param{
			{Name: Ident{Value: "owner"}, Type: &VariableType{Name: Ident{Value: "address"}}},
		},
		Return: &VariableType{Name: Ident{Value: "uint"}},
	}

	// Without a body it renders as a signature.
	assert.Equal(t, "public view function balanceOf(owner: address) -> uint;", fn.String())

	fn.Body = &BlockStmt{
		Stmts: []Stmt{
			&ReturnStmt{Value: &LiteralExpr{Tok: op("0", token.NUMBER), Value: float64(0)}},
		},
	}
	assert.Equal(t, "public view function balanceOf(owner: address) -> uint {\n  return 0;\n}", fn.String())
}

func TestParamWithStorageClassString(t *testing.T) {
	storage := Ident{Value: "calldata"}
	param := &Param{
		Name:    Ident{Value: "payload"},
		Storage: &storage,
		Type:    &VariableType{Name: Ident{Value: "bytes"}},
	}

	assert.Equal(t, "payload: calldata bytes", param.String())
}

func TestContractString(t *testing.T) {
	contract := &Contract{
		Name: Ident{Value: "Token"},
		Fields: []*VarDecl{
			{
				Name:  Ident{Value: "total"},
				Type:  &VariableType{Name: Ident{Value: "uint"}},
				Value: &LiteralExpr{Tok: op("0", token.NUMBER), Value: float64(0)},
			},
		},
		Events: []*Event{
			{
				Name: Ident{Value: "Transfer"},
				Params: []*Param{
					{Name: Ident{Value: "value"}, Type: &VariableType{Name: Ident{Value: "uint"}}},
				},
			},
		},
	}

	result := contract.String()
	assert.Contains(t, result, "contract Token {")
	assert.Contains(t, result, "let total: uint = 0;")
	assert.Contains(t, result, "event Transfer(value: uint);")
}

func TestStatementStrings(t *testing.T) {
	emit := &EmitStmt{
		Event: Ident{Value: "Transfer"},
		Args: []Expr{
			&IdentExpr{Name: op("from", token.IDENTIFIER)},
			&IdentExpr{Name: op("to", token.IDENTIFIER)},
		},
	}
	assert.Equal(t, "emit Transfer(from, to);", emit.String())

	errName := Ident{Value: "Unauthorized"}
	revert := &RevertStmt{
		Error: &errName,
		Args:  []Expr{&IdentExpr{Name: op("caller", token.IDENTIFIER)}},
	}
	assert.Equal(t, "revert Unauthorized(caller);", revert.String())

	bareRevert := &RevertStmt{
		Args: []Expr{&LiteralExpr{Tok: op(`"denied"`, token.STRING), Value: "denied"}},
	}
	assert.Equal(t, `revert("denied");`, bareRevert.String())

	foreach := &ForeachStmt{
		Name:     Ident{Value: "holder"},
		Iterable: &IdentExpr{Name: op("holders", token.IDENTIFIER)},
		Body:     &BlockStmt{},
	}
	assert.Equal(t, "foreach (holder : holders) {\n}", foreach.String())
}

func TestPragmaAndImportString(t *testing.T) {
	pragma := &Pragma{
		Name:    Ident{Value: "grishex"},
		Version: op("1.0", token.NUMBER),
	}
	assert.Equal(t, "pragma grishex 1.0;", pragma.String())

	imp := &Import{
		Path:    op(`"./erc20.gx"`, token.STRING),
		Symbols: []Ident{{Value: "Transfer"}, {Value: "Approval"}},
	}
	assert.Equal(t, `import "./erc20.gx" { Transfer, Approval };`, imp.String())

	bare := &Import{Path: op(`"./util.gx"`, token.STRING)}
	assert.Equal(t, `import "./util.gx";`, bare.String())
}

func TestEnumString(t *testing.T) {
	enum := &Enum{
		Name:     Ident{Value: "Phase"},
		Variants: []Ident{{Value: "Setup"}, {Value: "Open"}, {Value: "Closed"}},
	}
	assert.Equal(t, "enum Phase { Setup, Open, Closed }", enum.String())
}
