// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"farpy/internal/errors"
	"farpy/internal/parser"
)

const PROMPT = ">> "

// Start reads lines from in and runs each through the scanner and parser,
// printing either diagnostics or the parsed nodes.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		nodes, parseErrors, scanErrors := parser.ParseSource("repl", line)

		failed := false
		for _, e := range scanErrors {
			fmt.Print(errors.Format(errors.Diagnostic{Stage: "lex", Message: e.Message, Span: e.Span}))
			failed = true
		}
		for _, e := range parseErrors {
			fmt.Print(errors.Format(errors.Diagnostic{Stage: "parse", Message: e.Message, Span: e.Span}))
			failed = true
		}
		if failed {
			continue
		}

		for _, node := range nodes {
			fmt.Println(node.String())
		}
	}
}
