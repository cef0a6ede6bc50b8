package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota

	// Expressions
	NUMBER_LITERAL
	STRING_LITERAL
	IDENT_EXPR
	BINARY_EXPR

	// Declarations
	VAR_DECL
)
