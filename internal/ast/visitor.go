package ast

// Visitor is the extension point for tree passes. Each concrete node
// forwards Accept to its own VisitX method, so a new pass (checker,
// optimizer, code generator) is a new Visitor implementation and no
// node definition changes.
type Visitor interface {
	VisitProgram(*Program)
	VisitIdent(*Ident)
	VisitBadDecl(*BadDecl)
	VisitBadExpr(*BadExpr)

	VisitPragma(*Pragma)
	VisitImport(*Import)
	VisitContract(*Contract)
	VisitInterface(*Interface)
	VisitStruct(*Struct)
	VisitStructField(*StructField)
	VisitEnum(*Enum)
	VisitEvent(*Event)
	VisitErrorDecl(*ErrorDecl)
	VisitFunction(*Function)
	VisitConstructor(*Constructor)
	VisitParam(*Param)
	VisitVariableType(*VariableType)

	VisitBlockStmt(*BlockStmt)
	VisitExprStmt(*ExprStmt)
	VisitIfStmt(*IfStmt)
	VisitWhileStmt(*WhileStmt)
	VisitForStmt(*ForStmt)
	VisitForeachStmt(*ForeachStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitVarDecl(*VarDecl)
	VisitRequireStmt(*RequireStmt)
	VisitAssertStmt(*AssertStmt)
	VisitRevertStmt(*RevertStmt)
	VisitEmitStmt(*EmitStmt)
	VisitTryCatchStmt(*TryCatchStmt)

	VisitBinaryExpr(*BinaryExpr)
	VisitUnaryExpr(*UnaryExpr)
	VisitLiteralExpr(*LiteralExpr)
	VisitIdentExpr(*IdentExpr)
	VisitThisExpr(*ThisExpr)
	VisitAssignExpr(*AssignExpr)
	VisitFieldAssignExpr(*FieldAssignExpr)
	VisitIndexAssignExpr(*IndexAssignExpr)
	VisitCallExpr(*CallExpr)
	VisitFieldAccessExpr(*FieldAccessExpr)
	VisitIndexExpr(*IndexExpr)
	VisitParenExpr(*ParenExpr)
}

func (p *Program) Accept(v Visitor)         { v.VisitProgram(p) }
func (i *Ident) Accept(v Visitor)           { v.VisitIdent(i) }
func (bd *BadDecl) Accept(v Visitor)        { v.VisitBadDecl(bd) }
func (be *BadExpr) Accept(v Visitor)        { v.VisitBadExpr(be) }
func (p *Pragma) Accept(v Visitor)          { v.VisitPragma(p) }
func (im *Import) Accept(v Visitor)         { v.VisitImport(im) }
func (c *Contract) Accept(v Visitor)        { v.VisitContract(c) }
func (i *Interface) Accept(v Visitor)       { v.VisitInterface(i) }
func (s *Struct) Accept(v Visitor)          { v.VisitStruct(s) }
func (sf *StructField) Accept(v Visitor)    { v.VisitStructField(sf) }
func (e *Enum) Accept(v Visitor)            { v.VisitEnum(e) }
func (e *Event) Accept(v Visitor)           { v.VisitEvent(e) }
func (e *ErrorDecl) Accept(v Visitor)       { v.VisitErrorDecl(e) }
func (f *Function) Accept(v Visitor)        { v.VisitFunction(f) }
func (c *Constructor) Accept(v Visitor)     { v.VisitConstructor(c) }
func (p *Param) Accept(v Visitor)           { v.VisitParam(p) }
func (t *VariableType) Accept(v Visitor)    { v.VisitVariableType(t) }
func (b *BlockStmt) Accept(v Visitor)       { v.VisitBlockStmt(b) }
func (e *ExprStmt) Accept(v Visitor)        { v.VisitExprStmt(e) }
func (i *IfStmt) Accept(v Visitor)          { v.VisitIfStmt(i) }
func (w *WhileStmt) Accept(v Visitor)       { v.VisitWhileStmt(w) }
func (f *ForStmt) Accept(v Visitor)         { v.VisitForStmt(f) }
func (f *ForeachStmt) Accept(v Visitor)     { v.VisitForeachStmt(f) }
func (r *ReturnStmt) Accept(v Visitor)      { v.VisitReturnStmt(r) }
func (vd *VarDecl) Accept(v Visitor)        { v.VisitVarDecl(vd) }
func (r *RequireStmt) Accept(v Visitor)     { v.VisitRequireStmt(r) }
func (a *AssertStmt) Accept(v Visitor)      { v.VisitAssertStmt(a) }
func (r *RevertStmt) Accept(v Visitor)      { v.VisitRevertStmt(r) }
func (e *EmitStmt) Accept(v Visitor)        { v.VisitEmitStmt(e) }
func (t *TryCatchStmt) Accept(v Visitor)    { v.VisitTryCatchStmt(t) }
func (b *BinaryExpr) Accept(v Visitor)      { v.VisitBinaryExpr(b) }
func (u *UnaryExpr) Accept(v Visitor)       { v.VisitUnaryExpr(u) }
func (l *LiteralExpr) Accept(v Visitor)     { v.VisitLiteralExpr(l) }
func (i *IdentExpr) Accept(v Visitor)       { v.VisitIdentExpr(i) }
func (t *ThisExpr) Accept(v Visitor)        { v.VisitThisExpr(t) }
func (a *AssignExpr) Accept(v Visitor)      { v.VisitAssignExpr(a) }
func (f *FieldAssignExpr) Accept(v Visitor) { v.VisitFieldAssignExpr(f) }
func (i *IndexAssignExpr) Accept(v Visitor) { v.VisitIndexAssignExpr(i) }
func (c *CallExpr) Accept(v Visitor)        { v.VisitCallExpr(c) }
func (f *FieldAccessExpr) Accept(v Visitor) { v.VisitFieldAccessExpr(f) }
func (i *IndexExpr) Accept(v Visitor)       { v.VisitIndexExpr(i) }
func (p *ParenExpr) Accept(v Visitor)       { v.VisitParenExpr(p) }

// BaseVisitor is a no-op implementation of every Visitor method.
// Concrete passes embed it and override only the node kinds they care
// about, pairing it with Walk for full-tree descent.
type BaseVisitor struct{}

func (*BaseVisitor) VisitProgram(*Program)                 {}
func (*BaseVisitor) VisitIdent(*Ident)                     {}
func (*BaseVisitor) VisitBadDecl(*BadDecl)                 {}
func (*BaseVisitor) VisitBadExpr(*BadExpr)                 {}
func (*BaseVisitor) VisitPragma(*Pragma)                   {}
func (*BaseVisitor) VisitImport(*Import)                   {}
func (*BaseVisitor) VisitContract(*Contract)               {}
func (*BaseVisitor) VisitInterface(*Interface)             {}
func (*BaseVisitor) VisitStruct(*Struct)                   {}
func (*BaseVisitor) VisitStructField(*StructField)         {}
func (*BaseVisitor) VisitEnum(*Enum)                       {}
func (*BaseVisitor) VisitEvent(*Event)                     {}
func (*BaseVisitor) VisitErrorDecl(*ErrorDecl)             {}
func (*BaseVisitor) VisitFunction(*Function)               {}
func (*BaseVisitor) VisitConstructor(*Constructor)         {}
func (*BaseVisitor) VisitParam(*Param)                     {}
func (*BaseVisitor) VisitVariableType(*VariableType)       {}
func (*BaseVisitor) VisitBlockStmt(*BlockStmt)             {}
func (*BaseVisitor) VisitExprStmt(*ExprStmt)               {}
func (*BaseVisitor) VisitIfStmt(*IfStmt)                   {}
func (*BaseVisitor) VisitWhileStmt(*WhileStmt)             {}
func (*BaseVisitor) VisitForStmt(*ForStmt)                 {}
func (*BaseVisitor) VisitForeachStmt(*ForeachStmt)         {}
func (*BaseVisitor) VisitReturnStmt(*ReturnStmt)           {}
func (*BaseVisitor) VisitVarDecl(*VarDecl)                 {}
func (*BaseVisitor) VisitRequireStmt(*RequireStmt)         {}
func (*BaseVisitor) VisitAssertStmt(*AssertStmt)           {}
func (*BaseVisitor) VisitRevertStmt(*RevertStmt)           {}
func (*BaseVisitor) VisitEmitStmt(*EmitStmt)               {}
func (*BaseVisitor) VisitTryCatchStmt(*TryCatchStmt)       {}
func (*BaseVisitor) VisitBinaryExpr(*BinaryExpr)           {}
func (*BaseVisitor) VisitUnaryExpr(*UnaryExpr)             {}
func (*BaseVisitor) VisitLiteralExpr(*LiteralExpr)         {}
func (*BaseVisitor) VisitIdentExpr(*IdentExpr)             {}
func (*BaseVisitor) VisitThisExpr(*ThisExpr)               {}
func (*BaseVisitor) VisitAssignExpr(*AssignExpr)           {}
func (*BaseVisitor) VisitFieldAssignExpr(*FieldAssignExpr) {}
func (*BaseVisitor) VisitIndexAssignExpr(*IndexAssignExpr) {}
func (*BaseVisitor) VisitCallExpr(*CallExpr)               {}
func (*BaseVisitor) VisitFieldAccessExpr(*FieldAccessExpr) {}
func (*BaseVisitor) VisitIndexExpr(*IndexExpr)             {}
func (*BaseVisitor) VisitParenExpr(*ParenExpr)             {}

// Walk dispatches node to v via Accept, then descends into node's
// children in source order. Passes that embed BaseVisitor get a full
// preorder traversal with their overrides invoked at every depth;
// passes that need custom descent order implement Visitor directly and
// recurse themselves.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	node.Accept(v)
	walkChildren(v, node)
}

func walkChildren(v Visitor, node Node) {
	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(v, d)
		}

	case *Pragma:
		Walk(v, &n.Name)

	case *Import:
		for i := range n.Symbols {
			Walk(v, &n.Symbols[i])
		}

	case *Contract:
		Walk(v, &n.Name)
		for _, f := range n.Fields {
			Walk(v, f)
		}
		if n.Constructor != nil {
			Walk(v, n.Constructor)
		}
		for _, fn := range n.Functions {
			Walk(v, fn)
		}
		for _, s := range n.Structs {
			Walk(v, s)
		}
		for _, e := range n.Events {
			Walk(v, e)
		}
		for _, e := range n.Errors {
			Walk(v, e)
		}

	case *Interface:
		Walk(v, &n.Name)
		for _, fn := range n.Functions {
			Walk(v, fn)
		}
		for _, e := range n.Events {
			Walk(v, e)
		}

	case *Struct:
		Walk(v, &n.Name)
		for _, f := range n.Fields {
			Walk(v, f)
		}

	case *StructField:
		Walk(v, &n.Name)
		Walk(v, n.Type)

	case *Enum:
		Walk(v, &n.Name)
		for i := range n.Variants {
			Walk(v, &n.Variants[i])
		}

	case *Event:
		Walk(v, &n.Name)
		for _, p := range n.Params {
			Walk(v, p)
		}

	case *ErrorDecl:
		Walk(v, &n.Name)
		for _, p := range n.Params {
			Walk(v, p)
		}

	case *Function:
		Walk(v, &n.Name)
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Return != nil {
			Walk(v, n.Return)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *Constructor:
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *Param:
		Walk(v, &n.Name)
		if n.Storage != nil {
			Walk(v, n.Storage)
		}
		Walk(v, n.Type)

	case *VariableType:
		Walk(v, &n.Name)
		for _, g := range n.Generics {
			Walk(v, g)
		}

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(v, s)
		}

	case *ExprStmt:
		Walk(v, n.Expr)

	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)

	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Post != nil {
			Walk(v, n.Post)
		}
		Walk(v, n.Body)

	case *ForeachStmt:
		Walk(v, &n.Name)
		Walk(v, n.Iterable)
		Walk(v, n.Body)

	case *ReturnStmt:
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *VarDecl:
		if n.Visibility != nil {
			Walk(v, n.Visibility)
		}
		Walk(v, &n.Name)
		if n.Type != nil {
			Walk(v, n.Type)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}

	case *RequireStmt:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *AssertStmt:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *RevertStmt:
		if n.Error != nil {
			Walk(v, n.Error)
		}
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *EmitStmt:
		Walk(v, &n.Event)
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *TryCatchStmt:
		Walk(v, n.Try)
		if n.CatchParam != nil {
			Walk(v, n.CatchParam)
		}
		if n.Catch != nil {
			Walk(v, n.Catch)
		}

	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *UnaryExpr:
		Walk(v, n.Value)

	case *AssignExpr:
		Walk(v, n.Value)

	case *FieldAssignExpr:
		Walk(v, n.Object)
		Walk(v, n.Value)

	case *IndexAssignExpr:
		Walk(v, n.Object)
		Walk(v, n.Index)
		Walk(v, n.Value)

	case *CallExpr:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *FieldAccessExpr:
		Walk(v, n.Object)

	case *IndexExpr:
		Walk(v, n.Object)
		Walk(v, n.Index)

	case *ParenExpr:
		Walk(v, n.Value)
	}
}
