package ast

import "grishex/token"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Program is the root of a parsed compilation unit: an ordered sequence
// of top-level declarations.
// Example: "pragma grishex 1.0; contract Token { ... }"
type Program struct {
	Pos    Position
	EndPos Position
	Decls  []Decl
}

// Ident represents any identifier like variable names, type names, etc.
// Example: "Token", "balanceOf", "owner", "amount"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BadNode contains error information for failed parsing
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
}

// BadDecl represents parse errors at declaration level
type BadDecl struct {
	Bad BadNode
}

// BadExpr represents parse errors in expressions
type BadExpr struct {
	Bad BadNode
}

// Pragma represents the language version marker
// Example: "pragma grishex 1.0;"
type Pragma struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Version token.Token
}

// Import represents import declarations. Only the syntactic shape is
// recorded; resolving the path to another source buffer is the build
// orchestrator's job.
// Example: `import "./erc20.gx" { Transfer, Approval };`
type Import struct {
	Pos     Position
	EndPos  Position
	Path    token.Token
	Symbols []Ident
}

// Contract represents contract declarations, aggregating state fields,
// an optional constructor, methods, and nested struct/event/error
// declarations.
// Example: "contract Token { state { total: uint; } function mint(...) { ... } }"
type Contract struct {
	Pos         Position
	EndPos      Position
	Name        Ident
	Fields      []*VarDecl
	Constructor *Constructor
	Functions   []*Function
	Structs     []*Struct
	Events      []*Event
	Errors      []*ErrorDecl
}

// Interface represents interface declarations: function signatures and
// events without bodies.
// Example: "interface IToken { function balanceOf(owner: address) -> uint; }"
type Interface struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	Functions []*Function
	Events    []*Event
}

// Struct represents struct declarations
// Example: "struct Point { x: int; y: int; }"
type Struct struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []*StructField
}

// StructField represents individual fields within a struct
// Example: "x: int", "balances: map<address, uint>"
type StructField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *VariableType
}

// Enum represents enum declarations
// Example: "enum Phase { Setup, Open, Closed }"
type Enum struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Variants []Ident
}

// Event represents event declarations, the log/notification shapes a
// contract can emit.
// Example: "event Transfer(from: address, to: address, value: uint);"
type Event struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
}

// ErrorDecl represents error declarations, the structured failure
// shapes a contract can revert with.
// Example: "error InsufficientBalance(needed: uint, available: uint);"
type ErrorDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
}

// Function represents function declarations. A nil Body marks an
// interface signature. Visibility is "public" or "private" when
// present; Modifiers collects behavior markers like "view" and
// "payable".
// Example: "public view function balanceOf(owner: address) -> uint { ... }"
type Function struct {
	Pos        Position
	EndPos     Position
	Visibility *Ident
	Modifiers  []Ident
	Name       Ident
	Params     []*Param
	Return     *VariableType
	Body       *BlockStmt
}

// Constructor represents the contract constructor
// Example: "constructor(name: string) { this.name = name; }"
type Constructor struct {
	Pos    Position
	EndPos Position
	Params []*Param
	Body   *BlockStmt
}

// Param represents function, constructor, event, and error parameters.
// Storage is the optional storage-class qualifier ("storage", "memory",
// "calldata") distinguishing reference-like from value-like passing.
// Example: "owner: address", "payload: calldata bytes"
type Param struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Storage *Ident
	Type    *VariableType
}

// VariableType represents type specifications
// Example: "uint", "address", "map<address, uint>", "array<int>"
type VariableType struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Generics []*VariableType
}

// BlockStmt represents a brace-delimited statement list
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// ExprStmt represents an expression used as a statement
// Example: "transfer(to, amount);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// IfStmt represents conditional statements
// Example: "if (balance >= amount) { ... } else { ... }"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when there is no else branch
}

// WhileStmt represents while loops
// Example: "while (i < n) { ... }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// ForStmt represents C-style for loops. Init, Cond, and Post are all
// optional.
// Example: "for (let i = 0; i < n; i += 1) { ... }"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   Stmt // *VarDecl or *ExprStmt, nil when omitted
	Cond   Expr
	Post   Expr
	Body   Stmt
}

// ForeachStmt represents foreach loops over a collection
// Example: "foreach (holder : holders) { ... }"
type ForeachStmt struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Iterable Expr
	Body     *BlockStmt
}

// ReturnStmt represents return statements
// Example: "return balance;", "return;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare "return;"
}

// VarDecl represents variable declarations, both locals and contract
// state fields. Type, Value, and Visibility are each optional;
// Visibility only appears on state fields.
// Example: "let balance: uint = 0;", "private owner: address;"
type VarDecl struct {
	Pos        Position
	EndPos     Position
	Visibility *Ident
	Name       Ident
	Type       *VariableType
	Value      Expr
}

// RequireStmt represents require statements
// Example: `require(amount > 0, "amount must be positive");`
type RequireStmt struct {
	Pos    Position
	EndPos Position
	Args   []Expr
}

// AssertStmt represents assert statements
// Example: "assert(total == checked);"
type AssertStmt struct {
	Pos    Position
	EndPos Position
	Args   []Expr
}

// RevertStmt represents revert statements, optionally naming a declared
// error shape.
// Example: `revert("not allowed");`, "revert Unauthorized(caller);"
type RevertStmt struct {
	Pos    Position
	EndPos Position
	Error  *Ident // nil for a bare message revert
	Args   []Expr
}

// EmitStmt represents event emission
// Example: "emit Transfer(from, to, amount);"
type EmitStmt struct {
	Pos    Position
	EndPos Position
	Event  Ident
	Args   []Expr
}

// TryCatchStmt represents try/catch blocks
// Example: "try { ... } catch (err) { ... }"
type TryCatchStmt struct {
	Pos        Position
	EndPos     Position
	Try        *BlockStmt
	CatchParam *Ident // nil when the catch binds no variable
	Catch      *BlockStmt
}

// BinaryExpr represents binary operations. Op is the full operator
// token so later passes keep the exact lexeme and source position.
// Example: "amount + fee", "balance >= amount"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     token.Token
	Left   Expr
	Right  Expr
}

// UnaryExpr represents prefix unary operations
// Example: "-amount", "!approved"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     token.Token
	Value  Expr
}

// LiteralExpr represents literal values. Value holds the parsed form:
// float64 for numbers, string for strings, bool for true/false.
// Example: "100", "45.67", `"hello"`, "true"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Tok    token.Token
	Value  any
}

// IdentExpr represents a variable reference
// Example: "amount", "owner"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   token.Token
}

// ThisExpr represents the receiver contract reference
// Example: "this.owner"
type ThisExpr struct {
	Pos    Position
	EndPos Position
	Tok    token.Token
}

// AssignExpr represents assignment to a variable. Op is the assignment
// operator token ("=", "+=", ...).
// Example: "total += amount"
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Name   token.Token
	Op     token.Token
	Value  Expr
}

// FieldAssignExpr represents assignment to a field of an object
// Example: "this.owner = sender"
type FieldAssignExpr struct {
	Pos    Position
	EndPos Position
	Object Expr
	Field  token.Token
	Op     token.Token
	Value  Expr
}

// IndexAssignExpr represents assignment through an index
// Example: "balances[owner] = amount"
type IndexAssignExpr struct {
	Pos    Position
	EndPos Position
	Object Expr
	Index  Expr
	Op     token.Token
	Value  Expr
}

// CallExpr represents function calls
// Example: "balanceOf(owner)", "this.transfer(to, amount)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// FieldAccessExpr represents field access
// Example: "this.total", "point.x"
type FieldAccessExpr struct {
	Pos    Position
	EndPos Position
	Object Expr
	Field  token.Token
}

// IndexExpr represents array/map indexing
// Example: "balances[owner]", "entries[i]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Object Expr
	Index  Expr
}

// ParenExpr represents parenthesized expressions
// Example: "(amount + fee)"
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}
