package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*LiteralExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ThisExpr) isExpr() {}

func (*AssignExpr) isExpr() {}

func (*FieldAssignExpr) isExpr() {}

func (*IndexAssignExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*FieldAccessExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*ParenExpr) isExpr() {}
