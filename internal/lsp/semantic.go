package lsp

import (
	"sort"

	"grishex/internal/ast"
	"grishex/token"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes; TokenModifiers is a bitmask over
// SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// semanticTokenCollector is an ast.Visitor that tags the identifiers a
// highlighter cares about. Paired with ast.Walk it sees every node of
// the tree; the preorder visit can emit a parent's trailing token
// before a child's leading one (field accesses do), so the result is
// position-sorted before delta encoding.
type semanticTokenCollector struct {
	ast.BaseVisitor
	tokens []SemanticToken
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	if program == nil {
		return nil
	}
	collector := &semanticTokenCollector{}
	ast.Walk(collector, program)

	sort.Slice(collector.tokens, func(i, j int) bool {
		a, b := collector.tokens[i], collector.tokens[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.StartChar < b.StartChar
	})
	return collector.tokens
}

func (c *semanticTokenCollector) VisitPragma(p *ast.Pragma) {
	c.addIdent(p.Name, "namespace", 0)
}

func (c *semanticTokenCollector) VisitImport(im *ast.Import) {
	for _, sym := range im.Symbols {
		c.addIdent(sym, "type", 0)
	}
}

func (c *semanticTokenCollector) VisitContract(ct *ast.Contract) {
	c.addIdent(ct.Name, "type", 1)
}

func (c *semanticTokenCollector) VisitInterface(i *ast.Interface) {
	c.addIdent(i.Name, "type", 1)
}

func (c *semanticTokenCollector) VisitStruct(s *ast.Struct) {
	c.addIdent(s.Name, "type", 1)
}

func (c *semanticTokenCollector) VisitStructField(sf *ast.StructField) {
	c.addIdent(sf.Name, "property", 1)
}

func (c *semanticTokenCollector) VisitEnum(e *ast.Enum) {
	c.addIdent(e.Name, "type", 1)
	for _, variant := range e.Variants {
		c.addIdent(variant, "property", 1)
	}
}

func (c *semanticTokenCollector) VisitEvent(e *ast.Event) {
	c.addIdent(e.Name, "type", 1)
}

func (c *semanticTokenCollector) VisitErrorDecl(e *ast.ErrorDecl) {
	c.addIdent(e.Name, "type", 1)
}

func (c *semanticTokenCollector) VisitFunction(f *ast.Function) {
	if f.Visibility != nil {
		c.addIdent(*f.Visibility, "modifier", 0)
	}
	for _, m := range f.Modifiers {
		c.addIdent(m, "modifier", 0)
	}
	c.addIdent(f.Name, "function", 1)
}

func (c *semanticTokenCollector) VisitParam(p *ast.Param) {
	c.addIdent(p.Name, "parameter", 0)
	if p.Storage != nil {
		c.addIdent(*p.Storage, "modifier", 0)
	}
}

func (c *semanticTokenCollector) VisitVariableType(t *ast.VariableType) {
	c.addIdent(t.Name, "type", 0)
}

func (c *semanticTokenCollector) VisitVarDecl(v *ast.VarDecl) {
	if v.Visibility != nil {
		c.addIdent(*v.Visibility, "modifier", 0)
	}
	c.addIdent(v.Name, "variable", 1)
}

func (c *semanticTokenCollector) VisitForeachStmt(f *ast.ForeachStmt) {
	c.addIdent(f.Name, "variable", 1)
}

func (c *semanticTokenCollector) VisitEmitStmt(e *ast.EmitStmt) {
	c.addIdent(e.Event, "type", 0)
}

func (c *semanticTokenCollector) VisitRevertStmt(r *ast.RevertStmt) {
	if r.Error != nil {
		c.addIdent(*r.Error, "type", 0)
	}
}

func (c *semanticTokenCollector) VisitIdentExpr(i *ast.IdentExpr) {
	c.addToken(i.Name, "variable", 0)
}

func (c *semanticTokenCollector) VisitThisExpr(t *ast.ThisExpr) {
	c.addToken(t.Tok, "keyword", 0)
}

func (c *semanticTokenCollector) VisitAssignExpr(a *ast.AssignExpr) {
	c.addToken(a.Name, "variable", 0)
}

func (c *semanticTokenCollector) VisitFieldAssignExpr(f *ast.FieldAssignExpr) {
	c.addToken(f.Field, "property", 0)
}

func (c *semanticTokenCollector) VisitFieldAccessExpr(f *ast.FieldAccessExpr) {
	c.addToken(f.Field, "property", 0)
}

func (c *semanticTokenCollector) VisitLiteralExpr(l *ast.LiteralExpr) {
	if l.Tok.Type == token.NUMBER {
		c.addToken(l.Tok, "number", 0)
	}
}

func (c *semanticTokenCollector) addIdent(ident ast.Ident, tokenType string, declModifier int) {
	if ident.Value == "" {
		return
	}
	c.add(ident.Pos.Line, ident.Pos.Column, len(ident.Value), tokenType, declModifier)
}

func (c *semanticTokenCollector) addToken(tok token.Token, tokenType string, declModifier int) {
	if tok.Lexeme == "" {
		return
	}
	c.add(tok.Position.Line, tok.Position.Column, len(tok.Lexeme), tokenType, declModifier)
}

// add converts 1-based source positions to the 0-based ones the LSP
// wire format wants.
func (c *semanticTokenCollector) add(line, column, length int, tokenType string, declModifier int) {
	c.tokens = append(c.tokens, SemanticToken{
		Line:           uint32(line - 1),
		StartChar:      uint32(column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	})
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
