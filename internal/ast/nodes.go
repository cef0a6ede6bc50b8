package ast

// NumberLiteral represents an integer literal scanned from source.
// The grammar has no fractional form yet, but values are held as float64 so
// widening the literal grammar later does not change the node layout.
// Example: "42"
type NumberLiteral struct {
	Span  Span
	Value float64
}

// StringLiteral represents a double-quoted string literal. The value holds
// the characters between the quotes verbatim; the grammar has no escape
// sequences.
// Example: "\"hello\""
type StringLiteral struct {
	Span  Span
	Value string
}

// IdentExpr represents a bare identifier used in expression position.
// Example: "counter"
type IdentExpr struct {
	Span Span
	Name string
}

// BinaryExpr represents an infix operation. Op is the operator's literal
// text and the span points at the operator token, so diagnostics underline
// the operator rather than the whole expression.
// Example: "a + b"
type BinaryExpr struct {
	Span  Span
	Op    string
	Left  Expr
	Right Expr
}

// VarDecl represents a variable declaration introduced by 'new'. The
// declared type name is carried along but not checked by the front end.
// Example: "new mut counter: i32 = 0"
type VarDecl struct {
	Span         Span
	Name         string
	DeclaredType string
	Mutable      bool
	Value        Expr
}
