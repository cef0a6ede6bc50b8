// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"farpy/internal/lsp"
)

const lsName = "farpy" // Name identifier for the language server

var (
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	farpyHandler := lsp.NewFarpyHandler()

	handler = protocol.Handler{
		Initialize:                     farpyHandler.Initialize,
		Initialized:                    farpyHandler.Initialized,
		Shutdown:                       farpyHandler.Shutdown,
		SetTrace:                       farpyHandler.SetTrace,
		TextDocumentDidOpen:            farpyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           farpyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          farpyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         farpyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: farpyHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Farpy LSP server...")

	// Serve over standard input/output, as editors expect.
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Farpy LSP server:", err)
		os.Exit(1)
	}
}
