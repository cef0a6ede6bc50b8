package ast

// Span tracks the source range a token or node occupies, for error
// reporting and tooling. Line is 1-based; columns are 0-based offsets
// within the line. LineContent holds the full text of the starting line so
// diagnostics can be rendered without re-reading the file.
type Span struct {
	Filename    string
	Line        int
	StartColumn int
	EndColumn   int
	LineContent string
}

// Width is the number of characters the span covers on its line.
func (s Span) Width() int {
	return s.EndColumn - s.StartColumn
}
