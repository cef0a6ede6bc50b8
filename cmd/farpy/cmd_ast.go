package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"farpy/internal/ast"
	"farpy/internal/parser"
)

func newAstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Parse a source file and print its AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			nodes, parseErrors, scanErrors := parser.ParseSource(args[0], string(source))
			if reportDiagnostics(parseErrors, scanErrors) {
				os.Exit(1)
			}

			out, err := ast.ToJSON(nodes)
			if err != nil {
				return fmt.Errorf("encode AST: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
