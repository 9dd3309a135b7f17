// Package lsp serves kv documents over the Language Server Protocol.
package lsp

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/parsec/config"
	"github.com/dhamidi/parsec/kv"
	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/workspace"
)

var log = commonlog.GetLogger("parsec.lsp")

type Server struct {
	cfg       config.LSPConfig
	version   string
	workspace *workspace.Workspace
	handler   protocol.Handler
	server    *server.Server
}

func NewServer(version string, cfg config.LSPConfig) *Server {
	s := &Server{
		cfg:     cfg,
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentCompletion: s.textDocumentCompletion,
		TextDocumentFormatting: s.textDocumentFormatting,
	}

	s.server = server.NewServer(&s.handler, cfg.Name, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	s.workspace = workspace.New(rootDir, s.cfg.Extensions)

	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"=", ",", "["},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    s.cfg.Name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := s.workspace.ScanAll(); err != nil {
		log.Errorf("%s", err)
		return nil
	}
	for _, f := range s.workspace.Files() {
		s.publishDiagnostics(ctx, f)
	}
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.update(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.update(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	f, err := s.workspace.ScanFile(path)
	if err != nil {
		log.Warningf("%s", err)
		return nil
	}
	s.publishDiagnostics(ctx, f)
	return nil
}

func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	path, err := uriToPath(uri)
	if err != nil {
		log.Warningf("bad document uri %q: %s", uri, err)
		return
	}
	s.publishDiagnostics(ctx, s.workspace.UpdateFile(path, []byte(text)))
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, f *workspace.File) {
	diagnostics := []protocol.Diagnostic{}

	var serr *kv.SyntaxError
	if errors.As(f.Err, &serr) {
		content := string(f.Content)
		start := serr.Position.Offset
		end := start
		if end < len(content) {
			_, size := utf8.DecodeRuneInString(content[end:])
			end += size
		}
		severity := protocol.DiagnosticSeverityError
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: offsetToPosition(content, start),
				End:   offsetToPosition(content, end),
			},
			Severity: &severity,
			Source:   &s.cfg.Name,
			Message:  parse.DescribeExpected(serr.Expected),
		})
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(f.Path),
		Diagnostics: diagnostics,
	})
}

// textDocumentCompletion offers the literal tokens the parser would accept
// at the cursor.
func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := s.workspace.GetFile(path)
	if f == nil {
		return nil, nil
	}

	content := string(f.Content)
	prefix := content[:positionToOffset(content, params.Position)]

	var items []protocol.CompletionItem
	for _, label := range kv.ExpectedAt(prefix) {
		if !kv.IsToken(label) {
			continue
		}
		kind := protocol.CompletionItemKindOperator
		items = append(items, protocol.CompletionItem{
			Label: label,
			Kind:  &kind,
		})
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

func (s *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := s.workspace.GetFile(path)
	if f == nil || f.Document == nil {
		return nil, nil
	}

	content := string(f.Content)
	formatted := string(kv.Format(f.Document))
	if formatted == content {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   offsetToPosition(content, len(content)),
		},
		NewText: formatted,
	}}, nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
