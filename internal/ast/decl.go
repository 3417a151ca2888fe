package ast

// Decl is anything that may appear at the top level of a compilation
// unit. Statements qualify too: script-style sources and the REPL
// accept bare statements outside any contract.
type Decl interface {
	Node
	isDecl()
}

func (*BadDecl) isDecl()   {}
func (*Pragma) isDecl()    {}
func (*Import) isDecl()    {}
func (*Contract) isDecl()  {}
func (*Interface) isDecl() {}
func (*Struct) isDecl()    {}
func (*Enum) isDecl()      {}
func (*Event) isDecl()     {}
func (*ErrorDecl) isDecl() {}
func (*Function) isDecl()  {}

// Statements double as top-level declarations.

func (*BlockStmt) isDecl()    {}
func (*ExprStmt) isDecl()     {}
func (*IfStmt) isDecl()       {}
func (*WhileStmt) isDecl()    {}
func (*ForStmt) isDecl()      {}
func (*ForeachStmt) isDecl()  {}
func (*ReturnStmt) isDecl()   {}
func (*VarDecl) isDecl()      {}
func (*RequireStmt) isDecl()  {}
func (*AssertStmt) isDecl()   {}
func (*RevertStmt) isDecl()   {}
func (*EmitStmt) isDecl()     {}
func (*TryCatchStmt) isDecl() {}
