// Package mcp exposes the inspection service over the Model Context
// Protocol. It wraps github.com/modelcontextprotocol/go-sdk to register the
// debug_page tool, one resource per cataloged PDF, and the inspect_page
// prompt.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/felixgeelhaar/pdfscope/application"
	"github.com/felixgeelhaar/pdfscope/domain/catalog"
	"github.com/felixgeelhaar/pdfscope/infrastructure/logging"
)

// ServerConfig configures an inspection MCP server.
type ServerConfig struct {
	// Name is the server name.
	Name string

	// Version is the server version.
	Version string

	// Catalog is the immutable resource catalog built at startup.
	Catalog *catalog.Catalog

	// Inspection is the page-dump service.
	Inspection *application.InspectionService

	// Instructions provides usage instructions for clients.
	Instructions string
}

// Server wraps an MCP server exposing the PDF inspection surface.
type Server struct {
	srv        *mcpsdk.Server
	catalog    *catalog.Catalog
	inspection *application.InspectionService
}

// DebugPageInput is the input for the debug_page tool.
type DebugPageInput struct {
	// URI addresses a previously cataloged resource (pdf://<name>).
	URI string `json:"uri"`

	// Page is the 1-based page number.
	Page int `json:"page"`
}

// NewServer creates a new MCP server exposing the inspection service over
// the given catalog.
func NewServer(cfg ServerConfig) (*Server, error) {
	impl := &mcpsdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}
	opts := &mcpsdk.ServerOptions{
		Instructions: cfg.Instructions,
	}

	s := &Server{
		srv:        mcpsdk.NewServer(impl, opts),
		catalog:    cfg.Catalog,
		inspection: cfg.Inspection,
	}

	if err := s.registerDebugPage(); err != nil {
		return nil, err
	}
	s.registerResources()
	s.registerPrompt()

	return s, nil
}

// Server returns the underlying SDK server.
func (s *Server) Server() *mcpsdk.Server {
	return s.srv
}

// registerDebugPage registers the debug_page tool with explicit schemas.
func (s *Server) registerDebugPage() error {
	inputSchema, err := jsonschema.For[DebugPageInput](nil)
	if err != nil {
		return fmt.Errorf("build input schema: %w", err)
	}

	// The contents shape depends on the page's filters, so it stays
	// unconstrained.
	outputSchema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"contents":  {},
			"resources": {Type: "object"},
		},
		Required: []string{"contents", "resources"},
	}

	mcpsdk.AddTool(s.srv, &mcpsdk.Tool{
		Name:         "debug_page",
		Description:  "Debug raw page contents in a PDF.",
		InputSchema:  inputSchema,
		OutputSchema: outputSchema,
	}, s.handleDebugPage)

	return nil
}

// handleDebugPage resolves the resource, reads its bytes and dumps the
// requested page.
func (s *Server) handleDebugPage(ctx context.Context, req *mcpsdk.CallToolRequest, in DebugPageInput) (*mcpsdk.CallToolResult, *application.PageDump, error) {
	start := time.Now()

	entry, err := s.catalog.Resolve(in.URI)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", catalog.ErrNotFound, in.URI, err)
	}

	dump, err := s.inspection.DumpPage(ctx, data, in.Page)
	if err != nil {
		logging.Warn().
			Add(logging.ResourceURI(in.URI)).
			Add(logging.PageNumber(in.Page)).
			Add(logging.ErrorField(err)).
			Msg("debug_page failed")
		return nil, nil, err
	}

	logging.Info().
		Add(logging.ResourceURI(in.URI)).
		Add(logging.PageNumber(in.Page)).
		Add(logging.Duration(time.Since(start))).
		Msg("debug_page served")

	return nil, dump, nil
}

// registerResources registers one readable resource per catalog entry.
func (s *Server) registerResources() {
	for _, e := range s.catalog.Entries() {
		entry := e
		s.srv.AddResource(&mcpsdk.Resource{
			URI:      entry.URI,
			Name:     entry.Name,
			MIMEType: entry.MediaType,
		}, func(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
			data, err := os.ReadFile(entry.Path)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", catalog.ErrNotFound, entry.URI, err)
			}
			return &mcpsdk.ReadResourceResult{
				Contents: []*mcpsdk.ResourceContents{{
					URI:      entry.URI,
					MIMEType: entry.MediaType,
					Blob:     data,
				}},
			}, nil
		})
	}
}

// registerPrompt registers the inspect_page prompt template.
func (s *Server) registerPrompt() {
	s.srv.AddPrompt(&mcpsdk.Prompt{
		Name:        "inspect_page",
		Description: "Guide an analysis of one PDF page's raw contents.",
		Arguments: []*mcpsdk.PromptArgument{
			{Name: "uri", Description: "URI of a cataloged PDF resource", Required: true},
			{Name: "page", Description: "1-based page number", Required: true},
		},
	}, s.handleInspectPrompt)
}

func (s *Server) handleInspectPrompt(ctx context.Context, req *mcpsdk.GetPromptRequest) (*mcpsdk.GetPromptResult, error) {
	args := req.Params.Arguments
	return &mcpsdk.GetPromptResult{
		Description: "PDF page inspection instructions",
		Messages: []*mcpsdk.PromptMessage{
			{Role: "user", Content: &mcpsdk.TextContent{Text: inspectPromptText(args["uri"], args["page"])}},
		},
	}, nil
}

// inspectPromptText renders the advisory text for the inspect_page prompt.
func inspectPromptText(uri, page string) string {
	return fmt.Sprintf("Run the MCP tool debug_page on resource %s and page %s. "+
		"Inspect the page contents and resources for any parameters or values "+
		"that are undefined or invalid according to the PDF specification, and for any "+
		"parameters or values that may be valid but are still uncommon in PDF. "+
		"Output your findings and include references to the relevant parts of the PDF "+
		"specification when possible.", uri, page)
}

// ServeStdio runs the server over stdin/stdout until ctx is done.
func (s *Server) ServeStdio(ctx context.Context) error {
	logging.Info().
		Add(logging.Transport("stdio")).
		Add(logging.EntryCount(s.catalog.Len())).
		Msg("serving")
	return s.srv.Run(ctx, &mcpsdk.StdioTransport{})
}

// ServeHTTP runs the server over the streamable HTTP transport until ctx is
// done.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	handler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return s.srv
	}, nil)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logging.Info().
		Add(logging.Transport("http")).
		Add(logging.EntryCount(s.catalog.Len())).
		Msg("serving")

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
