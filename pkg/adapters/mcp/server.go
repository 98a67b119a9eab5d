package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/camelgraph"
	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/runner"
)

// TemplateURI exposes the draw.io CSV import template.
const TemplateURI = "camelgraph://template/drawio"

// ValidateArgs are the arguments of the validate_routes tool.
type ValidateArgs struct {
	XML   string `json:"xml"`
	Beans bool   `json:"beans"`
}

// ValidateResponse reports the outcome of validate_routes.
type ValidateResponse struct {
	Valid  bool           `json:"valid" jsonschema_description:"True when the document converts without error"`
	Nodes  int            `json:"nodes" jsonschema_description:"Number of graph nodes"`
	Routes int            `json:"routes" jsonschema_description:"Number of route roots"`
	Shapes map[string]int `json:"shapes,omitempty" jsonschema_description:"Node count per shape"`
	Error  string         `json:"error,omitempty" jsonschema_description:"Conversion failure, if any"`
	Tag    string         `json:"tag,omitempty" jsonschema_description:"Element that caused the failure"`
	Line   int            `json:"line,omitempty" jsonschema_description:"Source line of that element"`
}

// Server exposes conversion as an MCP Server.
type Server struct {
	runner    *runner.Runner
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(r *runner.Runner) *Server {
	s := &Server{
		runner:    r,
		mcpServer: server.NewMCPServer("camelgraph-mcp", strings.TrimSpace(camelgraph.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: convert_routes
	convertTool := mcp.NewTool("convert_routes",
		mcp.WithDescription("Convert Apache Camel Spring XML routes into a diagram (draw.io CSV, Mermaid, JSON or YAML)."),
		mcp.WithString("xml", mcp.Required(), mcp.Description("The route document (camelContext, routeContext or Spring beans file)")),
		mcp.WithString("format", mcp.Description("Output format: drawio (default), mermaid, json or yaml"),
			mcp.Enum("drawio", "mermaid", "json", "yaml")),
		mcp.WithString("layout", mcp.Description("draw.io layout: tree (default) or positioned"),
			mcp.Enum("tree", "positioned")),
		mcp.WithBoolean("beans", mcp.Description("Label bean and process steps with their implementation type")),
	)
	s.mcpServer.AddTool(convertTool, s.HandleConvert)

	// TOOL: validate_routes
	validateTool := mcp.NewTool("validate_routes",
		mcp.WithDescription("Check that a route document converts, and report its node counts or the failing element."),
		mcp.WithString("xml", mcp.Required(), mcp.Description("The route document")),
		mcp.WithBoolean("beans", mcp.Description("Enable collaborator-aware labelling")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.HandleValidate))
}

// HandleConvert serves convert_routes.
func (s *Server) HandleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	xml, err := request.RequireString("xml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.runner.Run(ctx, runner.Request{
		Document:      []byte(xml),
		Format:        diagram.Format(request.GetString("format", "")),
		Layout:        diagram.Layout(request.GetString("layout", "")),
		Collaborators: request.GetBool("beans", false),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("conversion failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(res.Output)), nil
}

// HandleValidate serves validate_routes. Conversion failures are reported in the
// response, not as tool errors.
func (s *Server) HandleValidate(ctx context.Context, request mcp.CallToolRequest, args ValidateArgs) (ValidateResponse, error) {
	if args.XML == "" {
		return ValidateResponse{}, errors.New("xml is required")
	}

	g, err := s.runner.Validate(ctx, []byte(args.XML), args.Beans)
	if err != nil {
		resp := ValidateResponse{Error: err.Error()}
		resp.Tag, resp.Line, _ = domain.Locate(err)
		return resp, nil
	}

	shapes := make(map[string]int)
	for shape, n := range g.CountByShape() {
		shapes[shape.Name()] = n
	}
	return ValidateResponse{
		Valid:  true,
		Nodes:  g.Len(),
		Routes: len(g.Roots()),
		Shapes: shapes,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: camelgraph://template/drawio
	s.mcpServer.AddResource(mcp.NewResource(TemplateURI, "draw.io CSV import template",
		mcp.WithResourceDescription("Header used for draw.io output; rows replace the routes marker"),
		mcp.WithMIMEType("text/csv"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      TemplateURI,
				MIMEType: "text/csv",
				Text:     diagram.Template(),
			},
		}, nil
	})
}
