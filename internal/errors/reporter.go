package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"farpy/internal/ast"
)

// Diagnostic is a renderable error from any front-end stage. Stage is the
// classification label shown to the user ("lex", "parse").
type Diagnostic struct {
	Stage   string
	Message string
	Span    ast.Span
}

// Format renders a diagnostic in the caret style used across the toolchain:
//
//	lex error: Unterminated string.
//	    ---> demo.fp:1:4
//	    |
//	  1 | new s: string = "abc
//	    |                 ^^^^
func Format(d Diagnostic) string {
	var result strings.Builder

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	result.WriteString(fmt.Sprintf("%s: %s\n", red(d.Stage+" error"), d.Message))

	width := lineNumberWidth(d.Span.Line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("--->"), d.Span.Filename, d.Span.Line, d.Span.StartColumn))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("|")))
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, d.Span.Line)), dim("|"), d.Span.LineContent))
	result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("|"), marker(d.Span)))

	return result.String()
}

// marker builds the caret underline sized and positioned to the span.
func marker(span ast.Span) string {
	width := span.Width()
	if width <= 0 {
		width = 1
	}

	carets := color.New(color.FgRed, color.Bold).SprintFunc()
	return strings.Repeat(" ", max(0, span.StartColumn)) + carets(strings.Repeat("^", width))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
