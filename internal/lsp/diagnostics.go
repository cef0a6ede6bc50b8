package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"farpy/internal/ast"
	"farpy/internal/parser"
)

// ConvertScanErrors transforms scanner errors into LSP diagnostics.
// Spans already use 0-based columns; only the line needs rebasing.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanToRange(scanErr.Span),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("farpy-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertParseErrors transforms parser errors into LSP diagnostics.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanToRange(parseErr.Span),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("farpy-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

func spanToRange(span ast.Span) protocol.Range {
	line := uint32(span.Line - 1)
	end := span.EndColumn
	if end <= span.StartColumn {
		end = span.StartColumn + 1 // keep the marker visible for empty spans
	}

	return protocol.Range{
		Start: protocol.Position{Line: line, Character: uint32(span.StartColumn)},
		End:   protocol.Position{Line: line, Character: uint32(end)},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
