package main

import (
	"fmt"
	"os"

	"farpy/internal/errors"
	"farpy/internal/parser"
)

// reportDiagnostics prints every scan and parse error in caret style and
// reports whether any were printed.
func reportDiagnostics(parseErrors []parser.ParseError, scanErrors []parser.ScanError) bool {
	for _, e := range scanErrors {
		fmt.Fprint(os.Stderr, errors.Format(errors.Diagnostic{
			Stage:   "lex",
			Message: e.Message,
			Span:    e.Span,
		}))
	}
	for _, e := range parseErrors {
		fmt.Fprint(os.Stderr, errors.Format(errors.Diagnostic{
			Stage:   "parse",
			Message: e.Message,
			Span:    e.Span,
		}))
	}
	return len(scanErrors) > 0 || len(parseErrors) > 0
}
