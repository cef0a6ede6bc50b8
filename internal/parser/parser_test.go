package parser

import (
	"testing"

	"farpy/internal/ast"
)

func prepareParser(source string) *Parser {
	scanner := NewScanner("test.fp", source)
	tokens := scanner.ScanTokens()

	return NewParser(tokens)
}

func TestParseEmptyInput(t *testing.T) {
	parser := prepareParser("")
	nodes := parser.Parse()

	if len(nodes) != 0 {
		t.Errorf("expected no nodes, got %d", len(nodes))
	}
	if len(parser.Errors()) != 0 {
		t.Errorf("expected no errors, got %d", len(parser.Errors()))
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	parser := prepareParser("42 ; 7")
	nodes := parser.Parse()

	if len(parser.Errors()) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(parser.Errors()))
	}
	if len(nodes) != 1 {
		t.Fatalf("expected the node before the error to survive, got %d nodes", len(nodes))
	}
	if nodes[0].NodeType() != ast.NUMBER_LITERAL {
		t.Errorf("expected NUMBER_LITERAL, got %s", nodes[0].NodeType())
	}
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	parser := prepareParser("1 +")
	nodes := parser.Parse()

	if len(nodes) != 0 {
		t.Errorf("expected no nodes, got %d", len(nodes))
	}
	errs := parser.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Message != "unexpected end of input" {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
}

func TestParseVarDecl(t *testing.T) {
	parser := prepareParser("new mut counter: i32 = 10")
	nodes := parser.Parse()

	if len(parser.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", parser.Errors())
	}
	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(nodes))
	}

	decl, ok := nodes[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", nodes[0])
	}
	if decl.Name != "counter" {
		t.Errorf("expected name 'counter', got %q", decl.Name)
	}
	if decl.DeclaredType != "i32" {
		t.Errorf("expected type 'i32', got %q", decl.DeclaredType)
	}
	if !decl.Mutable {
		t.Errorf("expected a mutable declaration")
	}
	if _, ok := decl.Value.(*ast.NumberLiteral); !ok {
		t.Errorf("expected number initializer, got %T", decl.Value)
	}
}

func TestParseImmutableVarDecl(t *testing.T) {
	parser := prepareParser(`new greeting: string = "hi"`)
	nodes := parser.Parse()

	if len(parser.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", parser.Errors())
	}

	decl := nodes[0].(*ast.VarDecl)
	if decl.Mutable {
		t.Errorf("expected an immutable declaration")
	}
	if decl.String() != `new greeting: string = "hi"` {
		t.Errorf("unexpected render: %s", decl.String())
	}
}

func TestParseVarDeclMissingColon(t *testing.T) {
	parser := prepareParser("new x i32 = 1")
	nodes := parser.Parse()

	if len(nodes) != 0 {
		t.Errorf("expected no nodes, got %d", len(nodes))
	}
	errs := parser.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Message != "expected ':' after variable name, got 'i32'" {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
}

func TestParseVarDeclMissingValue(t *testing.T) {
	parser := prepareParser("new x: i32 =")
	_ = parser.Parse()

	errs := parser.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Message != "unexpected end of input" {
		t.Errorf("unexpected message: %q", errs[0].Message)
	}
}

func TestParseMultipleStatements(t *testing.T) {
	parser := prepareParser("new x: i32 = 1 x + 2")
	nodes := parser.Parse()

	if len(parser.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", parser.Errors())
	}
	if len(nodes) != 2 {
		t.Fatalf("expected two nodes, got %d", len(nodes))
	}
	if nodes[0].NodeType() != ast.VAR_DECL {
		t.Errorf("expected VAR_DECL, got %s", nodes[0].NodeType())
	}
	if nodes[1].NodeType() != ast.BINARY_EXPR {
		t.Errorf("expected BINARY_EXPR, got %s", nodes[1].NodeType())
	}
}
