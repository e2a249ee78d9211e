// Package lsp provides the language server side of star: a cache of open
// documents kept parsed, diagnostics publishing and completion of operators
// and directives.
//
// The server methods follow the shapes of the protocol package handlers so
// they can be mounted on any JSON-RPC transport.
package lsp

import (
	"context"
	"sort"

	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog"

	"github.com/starlang/star"
	"github.com/starlang/star/ast"
	"github.com/starlang/star/meta"
)

// Publisher sends diagnostics to the client.
type Publisher func(ctx context.Context, params *protocol.PublishDiagnosticsParams) error

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPublisher sets the function used to publish diagnostics.
func WithPublisher(publish Publisher) Option {
	return func(s *Server) {
		s.publish = publish
	}
}

// WithParseOptions sets options applied to every parse.
func WithParseOptions(options ...star.Option) Option {
	return func(s *Server) {
		s.parseOptions = append(s.parseOptions, options...)
	}
}

// Server keeps open documents parsed and reports their problems.
type Server struct {
	name         string
	version      string
	cache        *cache
	publish      Publisher
	parseOptions []star.Option
	logger       zerolog.Logger
}

// NewServer returns a server identified by name and version.
func NewServer(name, version string, options ...Option) *Server {
	s := &Server{
		name:    name,
		version: version,
		cache:   newCache(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Server) String() string {
	return s.name + " " + s.version
}

// DidOpen parses a newly opened document and publishes its diagnostics.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return s.update(ctx, params.TextDocument)
}

// DidChange reparses a document. Only full document sync is supported: the
// last content change holds the whole text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		return err
	}
	item := doc.item
	item.Version = params.TextDocument.Version
	item.Text = params.ContentChanges[len(params.ContentChanges)-1].Text
	return s.update(ctx, item)
}

// DidSave reparses a document when the client includes its text.
func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		return err
	}
	item := doc.item
	item.Text = *params.Text
	return s.update(ctx, item)
}

// DidClose drops a document and clears its diagnostics.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.cache.remove(params.TextDocument.URI)
	return s.publishDiagnostics(ctx, params.TextDocument.URI, 0, nil)
}

func (s *Server) update(ctx context.Context, item protocol.TextDocumentItem) error {
	doc := &document{item: item}
	options := append([]star.Option{star.WithFilename(string(item.URI))}, s.parseOptions...)
	doc.ast, doc.err = star.Parse(item.Text, options...)
	if err := s.cache.put(doc); err != nil {
		return err
	}
	s.logger.Debug().
		Str("uri", string(item.URI)).
		Int32("version", item.Version).
		Bool("ok", doc.err == nil).
		Msg("document parsed")
	return s.publishDiagnostics(ctx, item.URI, item.Version, doc.err)
}

// Diagnostics returns the diagnostics of an open document.
func (s *Server) Diagnostics(uri protocol.DocumentURI) ([]protocol.Diagnostic, error) {
	doc, err := s.cache.get(uri)
	if err != nil {
		return nil, err
	}
	return Diagnostics(doc.err), nil
}

func (s *Server) publishDiagnostics(ctx context.Context, uri protocol.DocumentURI, version int32, err error) error {
	if s.publish == nil {
		return nil
	}
	return s.publish(ctx, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: Diagnostics(err),
	})
}

// Completion offers the operators of the grammar, the directives and the
// operators declared in the document. Grammar and directives follow the
// parse options of the server.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc, err := s.cache.get(params.TextDocument.URI)
	if err != nil {
		s.logger.Error().Err(err).Str("call", "Completion").Msg("failed to get document")
		return &protocol.CompletionList{IsIncomplete: false, Items: nil}, nil
	}

	var items []protocol.CompletionItem
	reg := star.Grammar(s.parseOptions...)
	seen := map[string]bool{}
	for _, group := range []meta.Group{meta.PrefixOperator, meta.InfixOperator} {
		for _, name := range reg.Names(group) {
			if seen[name] {
				continue
			}
			seen[name] = true
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   24, // Operator
				Detail: "Operator",
			})
		}
	}

	for _, name := range star.Directives(s.parseOptions...) {
		items = append(items, protocol.CompletionItem{
			Label:      "#" + name,
			Kind:       14, // Keyword
			Detail:     "Directive",
			InsertText: "#" + name,
		})
	}

	if doc.ast != nil {
		for _, name := range declaredOperators(doc.ast) {
			if seen[name] {
				continue
			}
			seen[name] = true
			items = append(items, protocol.CompletionItem{
				Label:  name,
				Kind:   24, // Operator
				Detail: "Declared operator",
			})
		}
	}

	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

// declaredOperators returns the names of operators declared with directives
// anywhere in the block, sorted.
func declaredOperators(block *ast.Block) []string {
	var names []string
	ast.Inspect(block, func(node ast.Expr) bool {
		d, ok := node.(*ast.Directive)
		if !ok {
			return true
		}
		switch d.Name {
		case "InfixOperator", "PrefixOperator", "PostfixOperator":
			if len(d.Args) > 0 {
				if ident, ok := d.Args[0].(*ast.Ident); ok {
					names = append(names, ident.Name)
				}
			}
		}
		return true
	})
	sort.Strings(names)
	return names
}
