package parser

import "fmt"

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the next token when it has the wanted type; otherwise it
// records a syntax error naming what was found instead and reports failure.
func (p *Parser) consume(tt TokenType, message string) (Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), fmt.Sprintf("%s, got %s", message, describe(p.peek())))
	return Token{Type: ILLEGAL, Span: p.peek().Span}, false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.peek().Type == EOF
}

func (p *Parser) errorAt(tok Token, message string) {
	p.errors = append(p.errors, ParseError{
		Message: message,
		Span:    tok.Span,
	})
}

func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}
