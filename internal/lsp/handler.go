package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"farpy/internal/parser"
)

// The set of semantic token types advertised to clients; indices into this
// slice appear on the wire.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
}

// FarpyHandler implements the LSP server handlers for the Farpy language.
type FarpyHandler struct {
	mu      sync.RWMutex
	content map[string]string
	tokens  map[string][]parser.Token
}

// NewFarpyHandler creates and returns a new FarpyHandler instance.
func NewFarpyHandler() *FarpyHandler {
	return &FarpyHandler{
		content: make(map[string]string),
		tokens:  make(map[string][]parser.Token),
	}
}

// Initialize responds to the LSP client's initialize request and advertises
// the server's capabilities.
func (h *FarpyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: []string{},
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *FarpyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Farpy LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *FarpyHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Farpy LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes; tracing is not used.
func (h *FarpyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *FarpyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.refresh(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to refresh document: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *FarpyHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *FarpyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.refresh(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to refresh document: %w", err)
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentCompletion offers the keyword table as completions; there is
// no symbol table to draw from yet.
func (h *FarpyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	keywords := make([]string, 0, len(parser.KEYWORDS))
	for kw := range parser.KEYWORDS {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	items := make([]protocol.CompletionItem, len(keywords))
	for i, kw := range keywords {
		kind := protocol.CompletionItemKindKeyword
		items[i] = protocol.CompletionItem{
			Label: kw,
			Kind:  &kind,
		}
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the
// entire document.
func (h *FarpyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	tokens, ok := h.tokens[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.refresh(params.TextDocument.URI)
		if err != nil {
			return nil, err
		}
		sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

		h.mu.RLock()
		tokens = h.tokens[path]
		h.mu.RUnlock()
	}

	semanticTokens := collectSemanticTokens(tokens)

	// Encode tokens into the LSP wire format (delta-line, delta-start).
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range semanticTokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// refresh re-reads a document from disk, re-runs the pipeline and returns
// the diagnostics to publish (empty when the file is clean).
func (h *FarpyHandler) refresh(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	scanner := parser.NewScanner(path, string(content))
	tokens := scanner.ScanTokens()

	diagnostics := ConvertScanErrors(scanner.Errors())
	if len(scanner.Errors()) == 0 {
		p := parser.NewParser(tokens)
		p.Parse()
		diagnostics = append(diagnostics, ConvertParseErrors(p.Errors())...)
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.tokens[path] = tokens
	h.mu.Unlock()

	return diagnostics, nil
}

// Convert URI to platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{} // clear previously published ones
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
