package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, d := range p.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (bd *BadDecl) String() string {
	return fmt.Sprintf("BadDecl: %s", bd.Bad.Message)
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Bad.Message)
}

func (p *Pragma) String() string {
	return fmt.Sprintf("pragma %s %s;", p.Name.Value, p.Version.Lexeme)
}

func (im *Import) String() string {
	var b strings.Builder

	b.WriteString("import ")
	b.WriteString(im.Path.Lexeme)

	for i, sym := range im.Symbols {
		if i == 0 {
			b.WriteString(" { ")
		}

		b.WriteString(sym.String())

		if i < len(im.Symbols)-1 {
			b.WriteString(", ")
		} else {
			b.WriteString(" }")
		}
	}

	return b.String() + ";"
}

func (c *Contract) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("contract %s {\n", c.Name.Value))

	if len(c.Fields) > 0 {
		b.WriteString("  state {\n")
		for _, f := range c.Fields {
			b.WriteString("    " + f.String() + "\n")
		}
		b.WriteString("  }\n")
	}
	for _, s := range c.Structs {
		writeIndented(&b, s.String())
	}
	for _, e := range c.Events {
		writeIndented(&b, e.String())
	}
	for _, e := range c.Errors {
		writeIndented(&b, e.String())
	}
	if c.Constructor != nil {
		writeIndented(&b, c.Constructor.String())
	}
	for _, fn := range c.Functions {
		writeIndented(&b, fn.String())
	}

	b.WriteString("}")
	return b.String()
}

// writeIndented prints a nested declaration at one indent level,
// keeping multi-line bodies aligned.
func writeIndented(b *strings.Builder, s string) {
	b.WriteString("  " + strings.ReplaceAll(s, "\n", "\n  ") + "\n")
}

func (i *Interface) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("interface %s {\n", i.Name.Value))
	for _, e := range i.Events {
		writeIndented(&b, e.String())
	}
	for _, fn := range i.Functions {
		writeIndented(&b, fn.String())
	}
	b.WriteString("}")
	return b.String()
}

func (s *Struct) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("struct %s { ", s.Name.Value))
	for i, field := range s.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (sf *StructField) String() string {
	return fmt.Sprintf("%s: %s", sf.Name.Value, sf.Type.String())
}

func (e *Enum) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("enum %s { ", e.Name.Value))
	for i, variant := range e.Variants {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(variant.Value)
	}
	b.WriteString(" }")
	return b.String()
}

func (e *Event) String() string {
	return fmt.Sprintf("event %s(%s);", e.Name.Value, paramList(e.Params))
}

func (e *ErrorDecl) String() string {
	return fmt.Sprintf("error %s(%s);", e.Name.Value, paramList(e.Params))
}

func paramList(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func (f *Function) String() string {
	var b strings.Builder

	if f.Visibility != nil {
		b.WriteString(f.Visibility.Value + " ")
	}
	for _, m := range f.Modifiers {
		b.WriteString(m.Value + " ")
	}

	b.WriteString(fmt.Sprintf("function %s(%s)", f.Name.Value, paramList(f.Params)))

	if f.Return != nil {
		b.WriteString(" -> " + f.Return.String())
	}

	if f.Body == nil {
		return b.String() + ";"
	}
	b.WriteString(" " + f.Body.String())
	return b.String()
}

func (c *Constructor) String() string {
	return fmt.Sprintf("constructor(%s) %s", paramList(c.Params), c.Body.String())
}

func (p *Param) String() string {
	if p.Storage != nil {
		return fmt.Sprintf("%s: %s %s", p.Name.Value, p.Storage.Value, p.Type.String())
	}
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type.String())
}

func (t *VariableType) String() string {
	if len(t.Generics) == 0 {
		return t.Name.Value
	}
	parts := make([]string, len(t.Generics))
	for i, g := range t.Generics {
		parts[i] = g.String()
	}
	return fmt.Sprintf("%s<%s>", t.Name.Value, strings.Join(parts, ", "))
}

func (b *BlockStmt) String() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for _, s := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (i *IfStmt) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String())
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond.String(), w.Body.String())
}

func (f *ForStmt) String() string {
	var b strings.Builder

	b.WriteString("for (")
	if f.Init != nil {
		// Init carries its own ';'
		b.WriteString(f.Init.String())
	} else {
		b.WriteString(";")
	}
	if f.Cond != nil {
		b.WriteString(" " + f.Cond.String())
	}
	b.WriteString(";")
	if f.Post != nil {
		b.WriteString(" " + f.Post.String())
	}
	b.WriteString(") " + f.Body.String())
	return b.String()
}

func (f *ForeachStmt) String() string {
	return fmt.Sprintf("foreach (%s : %s) %s", f.Name.Value, f.Iterable.String(), f.Body.String())
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (v *VarDecl) String() string {
	var b strings.Builder

	b.WriteString("let ")
	if v.Visibility != nil {
		b.WriteString(v.Visibility.Value + " ")
	}
	b.WriteString(v.Name.Value)
	if v.Type != nil {
		b.WriteString(": " + v.Type.String())
	}
	if v.Value != nil {
		b.WriteString(" = " + v.Value.String())
	}
	return b.String() + ";"
}

func (r *RequireStmt) String() string {
	return fmt.Sprintf("require(%s);", exprList(r.Args))
}

func (a *AssertStmt) String() string {
	return fmt.Sprintf("assert(%s);", exprList(a.Args))
}

func (r *RevertStmt) String() string {
	if r.Error != nil {
		return fmt.Sprintf("revert %s(%s);", r.Error.Value, exprList(r.Args))
	}
	return fmt.Sprintf("revert(%s);", exprList(r.Args))
}

func (e *EmitStmt) String() string {
	return fmt.Sprintf("emit %s(%s);", e.Event.Value, exprList(e.Args))
}

func (t *TryCatchStmt) String() string {
	s := "try " + t.Try.String() + " catch"
	if t.CatchParam != nil {
		s += " (" + t.CatchParam.Value + ")"
	}
	return s + " " + t.Catch.String()
}

func exprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op.Lexeme, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", u.Op.Lexeme, u.Value.String())
}

func (l *LiteralExpr) String() string {
	return l.Tok.Lexeme
}

func (i *IdentExpr) String() string {
	return i.Name.Lexeme
}

func (t *ThisExpr) String() string {
	return "this"
}

func (a *AssignExpr) String() string {
	return fmt.Sprintf("%s %s %s", a.Name.Lexeme, a.Op.Lexeme, a.Value.String())
}

func (f *FieldAssignExpr) String() string {
	return fmt.Sprintf("%s.%s %s %s", f.Object.String(), f.Field.Lexeme, f.Op.Lexeme, f.Value.String())
}

func (i *IndexAssignExpr) String() string {
	return fmt.Sprintf("%s[%s] %s %s", i.Object.String(), i.Index.String(), i.Op.Lexeme, i.Value.String())
}

func (c *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee.String(), exprList(c.Args))
}

func (f *FieldAccessExpr) String() string {
	return fmt.Sprintf("%s.%s", f.Object.String(), f.Field.Lexeme)
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", i.Object.String(), i.Index.String())
}

func (p *ParenExpr) String() string {
	return fmt.Sprintf("(%s)", p.Value.String())
}
