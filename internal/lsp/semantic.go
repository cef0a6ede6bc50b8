package lsp

import (
	"farpy/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens maps the scanner's token stream onto the LSP
// legend. Farpy has no name resolution yet, so highlighting is purely
// lexical: every identifier is reported as a variable.
func collectSemanticTokens(tokens []parser.Token) []SemanticToken {
	var result []SemanticToken

	for _, tok := range tokens {
		category, ok := tokenCategory(tok.Type)
		if !ok {
			continue
		}

		length := tok.Span.Width()
		if length <= 0 {
			continue
		}

		result = append(result, SemanticToken{
			Line:      uint32(tok.Span.Line - 1),
			StartChar: uint32(tok.Span.StartColumn),
			Length:    uint32(length),
			TokenType: legendIndex(category),
		})
	}

	return result
}

func tokenCategory(tt parser.TokenType) (string, bool) {
	switch tt {
	case parser.NUMBER:
		return "number", true
	case parser.STRING:
		return "string", true
	case parser.IDENTIFIER:
		return "variable", true
	case parser.IF, parser.ELSE, parser.WHILE, parser.FOR, parser.FOREACH,
		parser.DO, parser.BREAK, parser.CONTINUE, parser.RETURN,
		parser.TRUE, parser.FALSE, parser.NEW, parser.MUT:
		return "keyword", true
	case parser.PLUS, parser.INCREMENT, parser.MINUS, parser.DECREMENT,
		parser.STAR, parser.STAR_STAR, parser.SLASH, parser.PERCENT,
		parser.BANG, parser.BANG_EQUAL, parser.EQUAL, parser.EQUAL_EQUAL,
		parser.LESS, parser.LESS_EQUAL, parser.GREATER, parser.GREATER_EQUAL,
		parser.AND, parser.AMPERSAND, parser.OR, parser.PIPE, parser.CARET,
		parser.TILDE, parser.QUESTION,
		parser.PLUS_EQUAL, parser.MINUS_EQUAL, parser.STAR_EQUAL,
		parser.SLASH_EQUAL, parser.PERCENT_EQUAL:
		return "operator", true
	default:
		// Separators and brackets carry no highlighting.
		return "", false
	}
}

func legendIndex(category string) int {
	for i, name := range SemanticTokenTypes {
		if name == category {
			return i
		}
	}
	return 0
}
