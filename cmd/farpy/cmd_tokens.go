package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"farpy/internal/parser"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Scan a source file and dump its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			scanner := parser.NewScanner(args[0], string(source))
			tokens := scanner.ScanTokens()

			for _, tok := range tokens {
				fmt.Printf("%d:%d-%d\t%s\t%q\n",
					tok.Span.Line, tok.Span.StartColumn, tok.Span.EndColumn,
					tok.Type, tok.Lexeme)
			}

			if reportDiagnostics(nil, scanner.Errors()) {
				os.Exit(1)
			}
			return nil
		},
	}
}
