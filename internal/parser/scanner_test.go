package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "if else while for foreach do break continue return true false new mut customIdent"
	expected := []TokenType{
		IF, ELSE, WHILE, FOR, FOREACH, DO, BREAK, CONTINUE,
		RETURN, TRUE, FALSE, NEW, MUT, IDENTIFIER,
	}

	scanner := NewScanner("test.fp", input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "+ ++ += - -- -= * ** *= / /= % %= = == ! != < <= > >= & && | || ^ ~ ?"
	expected := []TokenType{
		PLUS, INCREMENT, PLUS_EQUAL, MINUS, DECREMENT, MINUS_EQUAL,
		STAR, STAR_STAR, STAR_EQUAL, SLASH, SLASH_EQUAL, PERCENT, PERCENT_EQUAL,
		EQUAL, EQUAL_EQUAL, BANG, BANG_EQUAL, LESS, LESS_EQUAL,
		GREATER, GREATER_EQUAL, AMPERSAND, AND, PIPE, OR, CARET, TILDE, QUESTION,
	}
	expectedLexemes := []string{
		"+", "++", "+=", "-", "--", "-=", "*", "**", "*=", "/", "/=", "%", "%=",
		"=", "==", "!", "!=", "<", "<=", ">", ">=", "&", "&&", "|", "||", "^", "~", "?",
	}

	scanner := NewScanner("test.fp", input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme '%s', got '%s'", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestSeparators(t *testing.T) {
	input := "( ) { } [ ] , . ; :"
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		LEFT_BRACKET, RIGHT_BRACKET, COMMA, DOT, SEMICOLON, COLON,
	}

	scanner := NewScanner("test.fp", input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "world"`
	scanner := NewScanner("test.fp", input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != "world" {
		t.Errorf("expected STRING 'world', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}

	// Spans cover the quotes even though the lexeme is the raw content.
	if tokens[0].Span.StartColumn != 0 || tokens[0].Span.EndColumn != 7 {
		t.Errorf("expected span 0-7, got %d-%d", tokens[0].Span.StartColumn, tokens[0].Span.EndColumn)
	}
}

func TestNumberSpans(t *testing.T) {
	scanner := NewScanner("test.fp", "42")
	tokens := scanner.ScanTokens()

	if tokens[0].Type != NUMBER || tokens[0].Lexeme != "42" {
		t.Fatalf("expected NUMBER '42', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	span := tokens[0].Span
	if span.Line != 1 || span.StartColumn != 0 || span.EndColumn != 2 {
		t.Errorf("expected span 1:0-2, got %d:%d-%d", span.Line, span.StartColumn, span.EndColumn)
	}
	if span.LineContent != "42" {
		t.Errorf("expected line content '42', got %q", span.LineContent)
	}
}

func TestWhitespaceOnlyYieldsEOF(t *testing.T) {
	scanner := NewScanner("test.fp", " \t\r\n  ")
	tokens := scanner.ScanTokens()

	if len(tokens) != 1 {
		t.Fatalf("expected a single EOF token, got %d tokens", len(tokens))
	}
	if tokens[0].Type != EOF {
		t.Errorf("expected EOF, got %s", tokens[0].Type)
	}
}

func TestColumnsResetAcrossLines(t *testing.T) {
	scanner := NewScanner("test.fp", "a\n  b")
	tokens := scanner.ScanTokens()

	if tokens[1].Span.Line != 2 {
		t.Errorf("expected line 2, got %d", tokens[1].Span.Line)
	}
	if tokens[1].Span.StartColumn != 2 {
		t.Errorf("expected start column 2, got %d", tokens[1].Span.StartColumn)
	}
	if tokens[1].Span.LineContent != "  b" {
		t.Errorf("expected line content '  b', got %q", tokens[1].Span.LineContent)
	}
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner("test.fp", `"abc`)
	_ = scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected an unterminated string error, got %d errors", len(errs))
	}
	if errs[0].Message != "Unterminated string." {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
	if errs[0].Span.Line != 1 || errs[0].Span.StartColumn != 0 {
		t.Errorf("expected error at 1:0, got %d:%d", errs[0].Span.Line, errs[0].Span.StartColumn)
	}
}

func TestUnknownCharacterStopsScan(t *testing.T) {
	scanner := NewScanner("test.fp", "1 @ @ 2")
	tokens := scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(errs))
	}
	if errs[0].Message != `Unknown character: '@'` {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
	if errs[0].Span.Width() != 1 {
		t.Errorf("expected a one-column span, got width %d", errs[0].Span.Width())
	}

	// Tokens scanned before the error survive; EOF is still appended.
	if tokens[0].Type != NUMBER {
		t.Errorf("expected NUMBER before the error, got %s", tokens[0].Type)
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected trailing EOF, got %s", tokens[len(tokens)-1].Type)
	}
}

func TestMultiLineStringSpanClamped(t *testing.T) {
	scanner := NewScanner("test.fp", "\"ab\ncd\"")
	tokens := scanner.ScanTokens()

	if tokens[0].Type != STRING {
		t.Fatalf("expected STRING, got %s", tokens[0].Type)
	}
	span := tokens[0].Span
	if span.Line != 1 {
		t.Errorf("expected span anchored on line 1, got %d", span.Line)
	}
	if span.EndColumn != len(span.LineContent) {
		t.Errorf("expected end column clamped to line end %d, got %d", len(span.LineContent), span.EndColumn)
	}
}
