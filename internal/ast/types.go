package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_DECL
	BAD_EXPR

	// High-level constructs
	PROGRAM
	PRAGMA
	IMPORT
	CONTRACT
	INTERFACE

	// Named declarations
	STRUCT
	STRUCT_FIELD
	ENUM
	EVENT
	ERROR_DECL
	FUNCTION
	CONSTRUCTOR

	// Support nodes
	IDENT
	PARAM
	TYPE

	// Statements
	BLOCK_STMT
	EXPR_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	FOREACH_STMT
	RETURN_STMT
	VAR_DECL
	REQUIRE_STMT
	ASSERT_STMT
	REVERT_STMT
	EMIT_STMT
	TRY_CATCH_STMT

	// Expressions
	BINARY_EXPR
	UNARY_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	THIS_EXPR
	ASSIGN_EXPR
	FIELD_ASSIGN_EXPR
	INDEX_ASSIGN_EXPR
	CALL_EXPR
	FIELD_ACCESS_EXPR
	INDEX_EXPR
	PAREN_EXPR
)
