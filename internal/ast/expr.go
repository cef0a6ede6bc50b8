package ast

type Expr interface {
	Node
	isExpr()
}

func (*NumberLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*VarDecl) isExpr() {}
