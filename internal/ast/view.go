package ast

import "encoding/json"

// The structural view renders nodes as plain maps so external consumers
// (printers, interpreters, tooling) can walk the tree without depending on
// the concrete node types. Every map carries at least "kind" and "loc";
// absent children encode as explicit nulls, never missing keys.

func (s Span) locMap() map[string]any {
	return map[string]any{
		"line":         s.Line,
		"start_column": s.StartColumn,
		"end_column":   s.EndColumn,
	}
}

func childMap(e Expr) any {
	if e == nil {
		return nil
	}
	return e.ToMap()
}

func (n *NumberLiteral) ToMap() map[string]any {
	return map[string]any{
		"kind":  "number",
		"value": n.Value,
		"loc":   n.Span.locMap(),
	}
}

func (s *StringLiteral) ToMap() map[string]any {
	return map[string]any{
		"kind":  "string",
		"value": s.Value,
		"loc":   s.Span.locMap(),
	}
}

func (i *IdentExpr) ToMap() map[string]any {
	return map[string]any{
		"kind":  "identifier",
		"value": i.Name,
		"loc":   i.Span.locMap(),
	}
}

func (b *BinaryExpr) ToMap() map[string]any {
	return map[string]any{
		"kind":     "binaryOp",
		"operator": b.Op,
		"left":     childMap(b.Left),
		"right":    childMap(b.Right),
		"loc":      b.Span.locMap(),
	}
}

func (v *VarDecl) ToMap() map[string]any {
	return map[string]any{
		"kind":       "varDeclaration",
		"identifier": v.Name,
		"type":       v.DeclaredType,
		"mutable":    v.Mutable,
		"value":      childMap(v.Value),
		"loc":        v.Span.locMap(),
	}
}

// ToJSON encodes a sequence of top-level nodes as indented JSON.
func ToJSON(nodes []Node) ([]byte, error) {
	views := make([]map[string]any, len(nodes))
	for i, node := range nodes {
		views[i] = node.ToMap()
	}
	return json.MarshalIndent(views, "", "  ")
}
