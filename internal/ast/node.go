package ast

// Node is implemented by every syntax tree node. Each node carries the span
// it was built from and can render itself as a compact string or as a
// structural map for external tooling.
type Node interface {
	NodeSpan() Span
	NodeType() NodeType
	String() string
	ToMap() map[string]any
}

func (n *NumberLiteral) NodeSpan() Span { return n.Span }
func (*NumberLiteral) NodeType() NodeType { return NUMBER_LITERAL }

func (s *StringLiteral) NodeSpan() Span { return s.Span }
func (*StringLiteral) NodeType() NodeType { return STRING_LITERAL }

func (i *IdentExpr) NodeSpan() Span { return i.Span }
func (*IdentExpr) NodeType() NodeType { return IDENT_EXPR }

func (b *BinaryExpr) NodeSpan() Span { return b.Span }
func (*BinaryExpr) NodeType() NodeType { return BINARY_EXPR }

func (v *VarDecl) NodeSpan() Span { return v.Span }
func (*VarDecl) NodeType() NodeType { return VAR_DECL }
