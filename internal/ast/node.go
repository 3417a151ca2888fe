package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string

	// Double dispatch entry point for tree passes
	Accept(Visitor)
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (bd *BadDecl) NodePos() Position    { return bd.Bad.Pos }
func (bd *BadDecl) NodeEndPos() Position { return bd.Bad.EndPos }
func (*BadDecl) NodeType() NodeType      { return BAD_DECL }

func (be *BadExpr) NodePos() Position    { return be.Bad.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.Bad.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (p *Pragma) NodePos() Position    { return p.Pos }
func (p *Pragma) NodeEndPos() Position { return p.EndPos }
func (*Pragma) NodeType() NodeType     { return PRAGMA }

func (im *Import) NodePos() Position    { return im.Pos }
func (im *Import) NodeEndPos() Position { return im.EndPos }
func (*Import) NodeType() NodeType      { return IMPORT }

func (c *Contract) NodePos() Position    { return c.Pos }
func (c *Contract) NodeEndPos() Position { return c.EndPos }
func (*Contract) NodeType() NodeType     { return CONTRACT }

func (i *Interface) NodePos() Position    { return i.Pos }
func (i *Interface) NodeEndPos() Position { return i.EndPos }
func (*Interface) NodeType() NodeType     { return INTERFACE }

func (s *Struct) NodePos() Position    { return s.Pos }
func (s *Struct) NodeEndPos() Position { return s.EndPos }
func (*Struct) NodeType() NodeType     { return STRUCT }

func (sf *StructField) NodePos() Position    { return sf.Pos }
func (sf *StructField) NodeEndPos() Position { return sf.EndPos }
func (*StructField) NodeType() NodeType      { return STRUCT_FIELD }

func (e *Enum) NodePos() Position    { return e.Pos }
func (e *Enum) NodeEndPos() Position { return e.EndPos }
func (*Enum) NodeType() NodeType     { return ENUM }

func (e *Event) NodePos() Position    { return e.Pos }
func (e *Event) NodeEndPos() Position { return e.EndPos }
func (*Event) NodeType() NodeType     { return EVENT }

func (e *ErrorDecl) NodePos() Position    { return e.Pos }
func (e *ErrorDecl) NodeEndPos() Position { return e.EndPos }
func (*ErrorDecl) NodeType() NodeType     { return ERROR_DECL }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (c *Constructor) NodePos() Position    { return c.Pos }
func (c *Constructor) NodeEndPos() Position { return c.EndPos }
func (*Constructor) NodeType() NodeType     { return CONSTRUCTOR }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (t *VariableType) NodePos() Position    { return t.Pos }
func (t *VariableType) NodeEndPos() Position { return t.EndPos }
func (*VariableType) NodeType() NodeType     { return TYPE }

func (b *BlockStmt) NodePos() Position    { return b.Pos }
func (b *BlockStmt) NodeEndPos() Position { return b.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (f *ForeachStmt) NodePos() Position    { return f.Pos }
func (f *ForeachStmt) NodeEndPos() Position { return f.EndPos }
func (*ForeachStmt) NodeType() NodeType     { return FOREACH_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (r *RequireStmt) NodePos() Position    { return r.Pos }
func (r *RequireStmt) NodeEndPos() Position { return r.EndPos }
func (*RequireStmt) NodeType() NodeType     { return REQUIRE_STMT }

func (a *AssertStmt) NodePos() Position    { return a.Pos }
func (a *AssertStmt) NodeEndPos() Position { return a.EndPos }
func (*AssertStmt) NodeType() NodeType     { return ASSERT_STMT }

func (r *RevertStmt) NodePos() Position    { return r.Pos }
func (r *RevertStmt) NodeEndPos() Position { return r.EndPos }
func (*RevertStmt) NodeType() NodeType     { return REVERT_STMT }

func (e *EmitStmt) NodePos() Position    { return e.Pos }
func (e *EmitStmt) NodeEndPos() Position { return e.EndPos }
func (*EmitStmt) NodeType() NodeType     { return EMIT_STMT }

func (t *TryCatchStmt) NodePos() Position    { return t.Pos }
func (t *TryCatchStmt) NodeEndPos() Position { return t.EndPos }
func (*TryCatchStmt) NodeType() NodeType     { return TRY_CATCH_STMT }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (t *ThisExpr) NodePos() Position    { return t.Pos }
func (t *ThisExpr) NodeEndPos() Position { return t.EndPos }
func (*ThisExpr) NodeType() NodeType     { return THIS_EXPR }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (f *FieldAssignExpr) NodePos() Position    { return f.Pos }
func (f *FieldAssignExpr) NodeEndPos() Position { return f.EndPos }
func (*FieldAssignExpr) NodeType() NodeType     { return FIELD_ASSIGN_EXPR }

func (i *IndexAssignExpr) NodePos() Position    { return i.Pos }
func (i *IndexAssignExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexAssignExpr) NodeType() NodeType     { return INDEX_ASSIGN_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (f *FieldAccessExpr) NodePos() Position    { return f.Pos }
func (f *FieldAccessExpr) NodeEndPos() Position { return f.EndPos }
func (*FieldAccessExpr) NodeType() NodeType     { return FIELD_ACCESS_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }
