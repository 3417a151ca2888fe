package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"grishex/internal/ast"
)

func TestParseEmptyContract(t *testing.T) {
	source := `contract Empty {
}`

	program, parseErrors, scanErrors := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors, "Should have no parse errors")
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Len(t, program.Decls, 1)

	contract, ok := program.Decls[0].(*ast.Contract)
	assert.True(t, ok, "Declaration should be a contract")
	assert.Equal(t, "Empty", contract.Name.Value)
	assert.Empty(t, contract.Fields)
	assert.Nil(t, contract.Constructor)
}

func TestParsePragmaAndImport(t *testing.T) {
	source := `pragma grishex 1.0;
import "./erc20.gx" { Transfer, Approval };
import "./util.gx";`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)
	assert.Len(t, program.Decls, 3)

	pragma, ok := program.Decls[0].(*ast.Pragma)
	assert.True(t, ok, "First declaration should be a pragma")
	assert.Equal(t, "grishex", pragma.Name.Value)
	assert.Equal(t, "1.0", pragma.Version.Lexeme)

	imp := program.Decls[1].(*ast.Import)
	assert.Equal(t, `"./erc20.gx"`, imp.Path.Lexeme)
	assert.Len(t, imp.Symbols, 2)
	assert.Equal(t, "Transfer", imp.Symbols[0].Value)
	assert.Equal(t, "Approval", imp.Symbols[1].Value)

	bare := program.Decls[2].(*ast.Import)
	assert.Empty(t, bare.Symbols)
}

func TestParseContractMembers(t *testing.T) {
	source := `contract Token {
    state {
        total: uint = 0;
        private owner: address;
        balances: map<address, uint>;
    }

    event Transfer(from: address, to: address, value: uint);
    error InsufficientBalance(needed: uint, available: uint);

    struct Checkpoint {
        block: uint;
        value: uint;
    }

    constructor(initial: uint) {
        this.total = initial;
    }

    public function transfer(to: address, amount: uint) -> bool {
        return true;
    }
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	contract := program.Decls[0].(*ast.Contract)
	assert.Equal(t, "Token", contract.Name.Value)
	assert.Len(t, contract.Fields, 3)
	assert.Len(t, contract.Events, 1)
	assert.Len(t, contract.Errors, 1)
	assert.Len(t, contract.Structs, 1)
	assert.Len(t, contract.Functions, 1)
	assert.NotNil(t, contract.Constructor)

	// State fields keep declaration order and visibility.
	assert.Equal(t, "total", contract.Fields[0].Name.Value)
	assert.NotNil(t, contract.Fields[0].Value, "total has an initializer")
	assert.Nil(t, contract.Fields[0].Visibility)
	assert.Equal(t, "private", contract.Fields[1].Visibility.Value)

	// Generic type arguments on the map field.
	balances := contract.Fields[2]
	assert.Equal(t, "map", balances.Type.Name.Value)
	assert.Len(t, balances.Type.Generics, 2)
	assert.Equal(t, "address", balances.Type.Generics[0].Name.Value)
	assert.Equal(t, "uint", balances.Type.Generics[1].Name.Value)

	fn := contract.Functions[0]
	assert.Equal(t, "transfer", fn.Name.Value)
	assert.Equal(t, "public", fn.Visibility.Value)
	assert.Equal(t, "bool", fn.Return.Name.Value)
	assert.Len(t, fn.Params, 2)
}

func TestParseFunctionModifiersAndStorageClass(t *testing.T) {
	source := `public view function balanceOf(owner: address) -> uint {
    return 0;
}
private payable function deposit(payload: calldata bytes) {
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)
	assert.Len(t, program.Decls, 2)

	balanceOf := program.Decls[0].(*ast.Function)
	assert.Equal(t, "public", balanceOf.Visibility.Value)
	assert.Len(t, balanceOf.Modifiers, 1)
	assert.Equal(t, "view", balanceOf.Modifiers[0].Value)
	assert.Nil(t, balanceOf.Params[0].Storage)

	deposit := program.Decls[1].(*ast.Function)
	assert.Equal(t, "payable", deposit.Modifiers[0].Value)
	assert.NotNil(t, deposit.Params[0].Storage)
	assert.Equal(t, "calldata", deposit.Params[0].Storage.Value)
	assert.Equal(t, "bytes", deposit.Params[0].Type.Name.Value)
	assert.Nil(t, deposit.Return)
}

func TestParseInterface(t *testing.T) {
	source := `interface IToken {
    event Transfer(from: address, to: address, value: uint);
    function balanceOf(owner: address) -> uint;
    function transfer(to: address, amount: uint) -> bool;
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	iface := program.Decls[0].(*ast.Interface)
	assert.Equal(t, "IToken", iface.Name.Value)
	assert.Len(t, iface.Events, 1)
	assert.Len(t, iface.Functions, 2)
	assert.Nil(t, iface.Functions[0].Body, "Interface signatures have no body")
}

func TestParseEnum(t *testing.T) {
	source := `enum Phase { Setup, Open, Closed }`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	enum := program.Decls[0].(*ast.Enum)
	assert.Equal(t, "Phase", enum.Name.Value)
	assert.Len(t, enum.Variants, 3)
	assert.Equal(t, "Setup", enum.Variants[0].Value)
	assert.Equal(t, "Closed", enum.Variants[2].Value)
}

func TestParseStatements(t *testing.T) {
	source := `function run() {
    let x: uint = 1;
    if (x > 0) {
        x = 2;
    } else {
        x = 3;
    }
    while (x < 10) {
        x += 1;
    }
    for (let i = 0; i < 10; i += 1) {
        x = x + i;
    }
    foreach (holder : holders) {
        x += 1;
    }
    require(x > 0, "x must be positive");
    assert(x < 100);
    emit Moved(x);
    try {
        x = 4;
    } catch (err) {
        revert("failed");
    }
    return x;
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	fn := program.Decls[0].(*ast.Function)
	stmts := fn.Body.Stmts
	assert.Len(t, stmts, 10)

	_, ok := stmts[0].(*ast.VarDecl)
	assert.True(t, ok)
	ifStmt, ok := stmts[1].(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Else)
	_, ok = stmts[2].(*ast.WhileStmt)
	assert.True(t, ok)

	forStmt, ok := stmts[3].(*ast.ForStmt)
	assert.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Post)

	foreachStmt, ok := stmts[4].(*ast.ForeachStmt)
	assert.True(t, ok)
	assert.Equal(t, "holder", foreachStmt.Name.Value)

	requireStmt, ok := stmts[5].(*ast.RequireStmt)
	assert.True(t, ok)
	assert.Len(t, requireStmt.Args, 2)

	_, ok = stmts[6].(*ast.AssertStmt)
	assert.True(t, ok)

	emitStmt, ok := stmts[7].(*ast.EmitStmt)
	assert.True(t, ok)
	assert.Equal(t, "Moved", emitStmt.Event.Value)

	tryStmt, ok := stmts[8].(*ast.TryCatchStmt)
	assert.True(t, ok)
	assert.Equal(t, "err", tryStmt.CatchParam.Value)
	revertStmt, ok := tryStmt.Catch.Stmts[0].(*ast.RevertStmt)
	assert.True(t, ok)
	assert.Nil(t, revertStmt.Error)

	returnStmt, ok := stmts[9].(*ast.ReturnStmt)
	assert.True(t, ok)
	assert.NotNil(t, returnStmt.Value)
}

func TestParseRevertWithErrorName(t *testing.T) {
	source := `function guard(caller: address) {
    revert Unauthorized(caller);
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	fn := program.Decls[0].(*ast.Function)
	revertStmt := fn.Body.Stmts[0].(*ast.RevertStmt)
	assert.NotNil(t, revertStmt.Error)
	assert.Equal(t, "Unauthorized", revertStmt.Error.Value)
	assert.Len(t, revertStmt.Args, 1)
}

func TestBinaryExpressionStructure(t *testing.T) {
	program, parseErrors, _ := ParseSource("test.gx", "1 + 2;")
	assert.Empty(t, parseErrors)

	exprStmt := program.Decls[0].(*ast.ExprStmt)
	bin, ok := exprStmt.Expr.(*ast.BinaryExpr)
	assert.True(t, ok, "Should be a binary expression")
	assert.Equal(t, "+", bin.Op.Lexeme)

	left := bin.Left.(*ast.LiteralExpr)
	right := bin.Right.(*ast.LiteralExpr)
	assert.Equal(t, float64(1), left.Value)
	assert.Equal(t, float64(2), right.Value)
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	program, parseErrors, _ := ParseSource("test.gx", "1 + 2 * 3 == 7 && !done;")
	assert.Empty(t, parseErrors)

	exprStmt := program.Decls[0].(*ast.ExprStmt)

	// && binds loosest here.
	and := exprStmt.Expr.(*ast.BinaryExpr)
	assert.Equal(t, "&&", and.Op.Lexeme)

	eq := and.Left.(*ast.BinaryExpr)
	assert.Equal(t, "==", eq.Op.Lexeme)

	plus := eq.Left.(*ast.BinaryExpr)
	assert.Equal(t, "+", plus.Op.Lexeme)

	times := plus.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", times.Op.Lexeme)

	not := and.Right.(*ast.UnaryExpr)
	assert.Equal(t, "!", not.Op.Lexeme)

	// Left associativity: a - b - c is (a - b) - c.
	program, parseErrors, _ = ParseSource("test.gx", "a - b - c;")
	assert.Empty(t, parseErrors)
	outer := program.Decls[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	inner, ok := outer.Left.(*ast.BinaryExpr)
	assert.True(t, ok, "Left operand should be the nested subtraction")
	assert.Equal(t, "-", inner.Op.Lexeme)
}

func TestAssignmentForms(t *testing.T) {
	source := `x = 1;
total += amount;
this.owner = sender;
balances[owner] = amount;
a = b = c;`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)
	assert.Len(t, program.Decls, 5)

	simple := program.Decls[0].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	assert.Equal(t, "x", simple.Name.Lexeme)
	assert.Equal(t, "=", simple.Op.Lexeme)

	compound := program.Decls[1].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	assert.Equal(t, "+=", compound.Op.Lexeme)

	field := program.Decls[2].(*ast.ExprStmt).Expr.(*ast.FieldAssignExpr)
	assert.Equal(t, "owner", field.Field.Lexeme)
	_, ok := field.Object.(*ast.ThisExpr)
	assert.True(t, ok, "Object should be 'this'")

	index := program.Decls[3].(*ast.ExprStmt).Expr.(*ast.IndexAssignExpr)
	_, ok = index.Index.(*ast.IdentExpr)
	assert.True(t, ok)

	// Right associativity: a = (b = c).
	chained := program.Decls[4].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	_, ok = chained.Value.(*ast.AssignExpr)
	assert.True(t, ok, "Value of chained assignment should itself be an assignment")
}

func TestInvalidAssignmentTarget(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.gx", "1 = 2;")
	assert.Len(t, parseErrors, 1)
	assert.Contains(t, parseErrors[0].Message, "Invalid assignment target")
}

func TestPostfixChains(t *testing.T) {
	program, parseErrors, _ := ParseSource("test.gx", "this.registry[key].lookup(a, b)(c);")
	assert.Empty(t, parseErrors)

	// Outermost is the (c) call.
	outer := program.Decls[0].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	assert.Len(t, outer.Args, 1)

	inner := outer.Callee.(*ast.CallExpr)
	assert.Len(t, inner.Args, 2)

	access := inner.Callee.(*ast.FieldAccessExpr)
	assert.Equal(t, "lookup", access.Field.Lexeme)

	index := access.Object.(*ast.IndexExpr)
	registry := index.Object.(*ast.FieldAccessExpr)
	assert.Equal(t, "registry", registry.Field.Lexeme)
	_, ok := registry.Object.(*ast.ThisExpr)
	assert.True(t, ok)
}

func TestRecoveryKeepsFollowingStatements(t *testing.T) {
	// The first declaration is missing its ';'. Exactly one diagnostic,
	// and the second declaration still parses.
	source := "let x = 1 let y = 2;"

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Len(t, parseErrors, 1, "Exactly one diagnostic for the missing ';'")
	assert.Contains(t, parseErrors[0].Message, "Expected ';'")
	assert.Len(t, program.Decls, 1, "The recovered declaration survives")

	decl := program.Decls[0].(*ast.VarDecl)
	assert.Equal(t, "y", decl.Name.Value)
}

func TestRecoveryAcrossDeclarations(t *testing.T) {
	source := `event Broken(;
contract Fine {
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.NotEmpty(t, parseErrors)

	var contract *ast.Contract
	for _, decl := range program.Decls {
		if c, ok := decl.(*ast.Contract); ok {
			contract = c
		}
	}
	assert.NotNil(t, contract, "Contract after the broken event must parse")
	assert.Equal(t, "Fine", contract.Name.Value)
}

func TestRecoveryNeverLoops(t *testing.T) {
	// Nothing here can start a declaration; the parser must still
	// terminate and report errors.
	_, parseErrors, _ := ParseSource("test.gx", "} ) ]")
	assert.NotEmpty(t, parseErrors)
}

func TestExpressionErrorPosition(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.gx", "let x = ;")
	assert.Len(t, parseErrors, 1)
	assert.Equal(t, "Expected expression.", parseErrors[0].Message)
	assert.Equal(t, 1, parseErrors[0].Position.Line)
	assert.Equal(t, 9, parseErrors[0].Position.Column)
}

func TestNodePositions(t *testing.T) {
	source := `contract Token {
}`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	contract := program.Decls[0].(*ast.Contract)
	assert.Equal(t, "test.gx", contract.Pos.Filename)
	assert.Equal(t, 1, contract.Pos.Line)
	assert.Equal(t, 1, contract.Pos.Column)
	assert.Equal(t, 0, contract.Pos.Offset)
	assert.Equal(t, 2, contract.EndPos.Line)
	assert.Equal(t, 2, contract.EndPos.Column)
}

func TestNestedGenericTypes(t *testing.T) {
	source := `let ledger: map<address, array<uint>> = x;`

	program, parseErrors, _ := ParseSource("test.gx", source)
	assert.Empty(t, parseErrors)

	decl := program.Decls[0].(*ast.VarDecl)
	assert.Equal(t, "map", decl.Type.Name.Value)
	assert.Len(t, decl.Type.Generics, 2)

	inner := decl.Type.Generics[1]
	assert.Equal(t, "array", inner.Name.Value)
	assert.Len(t, inner.Generics, 1)
	assert.Equal(t, "uint", inner.Generics[0].Name.Value)
}

func TestParseStateFieldsWithLet(t *testing.T) {
	source := `contract Vault {
    state {
        let owner: address;
        let private total: uint = 0;
        let balances: map<address, uint>;
    }
}`

	program, parseErrors, scanErrors := ParseSource("test.gx", source)
	assert.Empty(t, scanErrors)
	assert.Empty(t, parseErrors)
	assert.Len(t, program.Decls, 1)

	contract := program.Decls[0].(*ast.Contract)
	assert.Len(t, contract.Fields, 3)
	assert.Equal(t, "owner", contract.Fields[0].Name.Value)
	assert.Equal(t, "address", contract.Fields[0].Type.Name.Value)
	assert.NotNil(t, contract.Fields[1].Visibility)
	assert.Equal(t, "private", contract.Fields[1].Visibility.Value)
	assert.Equal(t, "balances", contract.Fields[2].Name.Value)
}

func TestMultilineStringEndPosition(t *testing.T) {
	program, parseErrors, scanErrors := ParseSource("test.gx", "\"a\nbc\";")
	assert.Empty(t, scanErrors)
	assert.Empty(t, parseErrors)

	stmt := program.Decls[0].(*ast.ExprStmt)
	lit := stmt.Expr.(*ast.LiteralExpr)
	assert.Equal(t, 1, lit.Pos.Line)
	assert.Equal(t, 2, lit.EndPos.Line)
	assert.Equal(t, 4, lit.EndPos.Column)
	assert.Equal(t, 6, lit.EndPos.Offset)
}
