package parser

import "farpy/internal/ast"

type Parser struct {
	tokens  []Token
	current int
	errors  []ParseError
}

type ParseError struct {
	Message string
	Span    ast.Span
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the token stream and returns the top-level nodes in source
// order. Parsing stops at the first syntax error; nodes parsed before the
// error are still returned, alongside Errors.
func (p *Parser) Parse() []ast.Node {
	var statements []ast.Node

	for !p.isAtEnd() && len(p.errors) == 0 {
		stmt := p.parseExpr(0)
		if stmt == nil {
			break
		}
		statements = append(statements, stmt)
	}

	return statements
}

func (p *Parser) Errors() []ParseError { return p.errors }
