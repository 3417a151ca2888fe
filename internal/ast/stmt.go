package ast

type Stmt interface {
	Node
	isStmt()
}

func (*BlockStmt) isStmt()    {}
func (*ExprStmt) isStmt()     {}
func (*IfStmt) isStmt()       {}
func (*WhileStmt) isStmt()    {}
func (*ForStmt) isStmt()      {}
func (*ForeachStmt) isStmt()  {}
func (*ReturnStmt) isStmt()   {}
func (*VarDecl) isStmt()      {}
func (*RequireStmt) isStmt()  {}
func (*AssertStmt) isStmt()   {}
func (*RevertStmt) isStmt()   {}
func (*EmitStmt) isStmt()     {}
func (*TryCatchStmt) isStmt() {}
