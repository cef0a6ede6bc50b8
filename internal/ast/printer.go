package ast

import (
	"fmt"
	"strconv"
)

func (n *NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (s *StringLiteral) String() string {
	return strconv.Quote(s.Value)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (v *VarDecl) String() string {
	if v.Mutable {
		return fmt.Sprintf("new mut %s: %s = %s", v.Name, v.DeclaredType, v.Value.String())
	}
	return fmt.Sprintf("new %s: %s = %s", v.Name, v.DeclaredType, v.Value.String())
}
