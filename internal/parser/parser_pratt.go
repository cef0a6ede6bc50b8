package parser

import (
	"strconv"

	"farpy/internal/ast"
)

// Binding powers follow C-style precedence; a token with no entry has
// power zero and terminates the climb.
var binaryPrecedence = map[TokenType]int{
	EQUAL: 1, PLUS_EQUAL: 1, MINUS_EQUAL: 1, STAR_EQUAL: 1, SLASH_EQUAL: 1, PERCENT_EQUAL: 1,
	OR:          2,
	AND:         3,
	EQUAL_EQUAL: 7, BANG_EQUAL: 7,
	LESS: 8, LESS_EQUAL: 8, GREATER: 8, GREATER_EQUAL: 8,
	AMPERSAND: 9, PIPE: 9, CARET: 9,
	PLUS: 10, MINUS: 10,
	STAR: 20, SLASH: 20, PERCENT: 20,
	STAR_STAR: 30,
}

// Right-associative operators recurse with one less binding power so an
// equal-precedence operator on the right claims the operand.
var rightAssociative = map[TokenType]bool{
	EQUAL:         true,
	PLUS_EQUAL:    true,
	MINUS_EQUAL:   true,
	STAR_EQUAL:    true,
	SLASH_EQUAL:   true,
	PERCENT_EQUAL: true,
	STAR_STAR:     true,
}

func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrefixExpr()
	if left == nil {
		return nil
	}

	for !p.isAtEnd() {
		prec := binaryPrecedence[p.peek().Type]
		if prec <= minPrec {
			break
		}

		op := p.advance()
		next := prec
		if rightAssociative[op.Type] {
			next = prec - 1
		}

		right := p.parseExpr(next)
		if right == nil {
			return nil
		}

		left = &ast.BinaryExpr{
			Span:  op.Span,
			Op:    op.Lexeme,
			Left:  left,
			Right: right,
		}
	}

	return left
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	tok := p.advance()
	switch tok.Type {
	case NUMBER:
		// The scanner only emits maximal digit runs, so this cannot fail.
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.NumberLiteral{Span: tok.Span, Value: value}
	case STRING:
		return &ast.StringLiteral{Span: tok.Span, Value: tok.Lexeme}
	case IDENTIFIER:
		return &ast.IdentExpr{Span: tok.Span, Name: tok.Lexeme}
	case NEW:
		return p.parseVarDecl(tok)
	case EOF:
		p.errorAt(tok, "unexpected end of input")
		return nil
	default:
		p.errorAt(tok, "invalid token at start of expression: '"+tok.Lexeme+"'")
		return nil
	}
}

// parseVarDecl parses the declaration form introduced by 'new':
//
//	new [mut] name: type = expr
func (p *Parser) parseVarDecl(newTok Token) ast.Expr {
	mutable := p.match(MUT)

	name, ok := p.consume(IDENTIFIER, "expected identifier for variable name")
	if !ok {
		return nil
	}
	if _, ok := p.consume(COLON, "expected ':' after variable name"); !ok {
		return nil
	}
	declaredType, ok := p.consume(IDENTIFIER, "expected type after ':'")
	if !ok {
		return nil
	}
	if _, ok := p.consume(EQUAL, "expected '=' after type"); !ok {
		return nil
	}

	value := p.parseExpr(0)
	if value == nil {
		return nil
	}

	return &ast.VarDecl{
		Span:         newTok.Span,
		Name:         name.Lexeme,
		DeclaredType: declaredType.Lexeme,
		Mutable:      mutable,
		Value:        value,
	}
}
