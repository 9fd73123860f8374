// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the template converter to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/villert/popthings/internal/convert"
	"github.com/villert/popthings/internal/placeholder"
)

// Server wraps the MCP server with popthings tools.
type Server struct {
	mcp    *server.MCPServer
	symbol string
}

// New creates a new MCP server with all popthings tools registered.
func New(symbol string) *Server {
	if symbol == "" {
		symbol = placeholder.DefaultSymbol
	}
	s := &Server{symbol: symbol}

	s.mcp = server.NewMCPServer(
		"popthings",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("convert_template",
		mcp.WithDescription("Convert a TaskPaper template into the Things JSON import payload. "+
			"Read the format first via the get_template_contract tool or the "+
			"popthings://template-format resource."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Template document text (tab-indented)")),
		mcp.WithString("placeholders", mcp.Description("JSON object mapping placeholder names to values")),
	), s.convertTemplate)

	s.mcp.AddTool(mcp.NewTool("build_things_url",
		mcp.WithDescription("Convert a TaskPaper template and return the things:///json launch URL."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Template document text (tab-indented)")),
		mcp.WithString("placeholders", mcp.Description("JSON object mapping placeholder names to values")),
	), s.buildThingsURL)

	s.mcp.AddTool(mcp.NewTool("get_template_contract",
		mcp.WithDescription("Returns the canonical TaskPaper template format contract. "+
			"Call this before authoring templates to ensure correct structure."),
	), s.getTemplateContract)

	// Resource: template format contract.
	s.mcp.AddResource(
		mcp.NewResource("popthings://template-format", "Template Format Contract",
			mcp.WithResourceDescription("Canonical TaskPaper template format accepted by the converter."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readTemplateFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// convertRequest resolves the common content+placeholders arguments into
// substituted document text.
func (s *Server) convertRequest(req mcp.CallToolRequest) (string, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return "", err
	}

	raw := ""
	if v, err := req.RequireString("placeholders"); err == nil {
		raw = v
	}
	values := map[string]string{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return "", fmt.Errorf("placeholders must be a JSON object: %w", err)
		}
	}
	return placeholder.Apply(content, s.symbol, values)
}

func (s *Server) convertTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.convertRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := convert.Document(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(res.JSON)), nil
}

func (s *Server) buildThingsURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := s.convertRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := convert.Document(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.URL), nil
}

func (s *Server) getTemplateContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(TemplateFormatContract), nil
}

func (s *Server) readTemplateFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "popthings://template-format",
			MIMEType: "text/markdown",
			Text:     TemplateFormatContract,
		},
	}, nil
}
