package parser

import "farpy/internal/ast"

// ParseSource runs the scanner and parser over source and returns the
// top-level nodes plus any errors from either stage. A lexical error stops
// the pipeline before parsing, mirroring how the stages chain.
func ParseSource(filename, source string) ([]ast.Node, []ParseError, []ScanError) {
	scanner := NewScanner(filename, source)
	tokens := scanner.ScanTokens()

	if len(scanner.Errors()) > 0 {
		return nil, nil, scanner.Errors()
	}

	parser := NewParser(tokens)
	nodes := parser.Parse()

	return nodes, parser.Errors(), nil
}
