package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/sbmltab"
	"github.com/aretw0/sbmltab/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GenerateResponse is the structured result of generate_sbml_tab.
type GenerateResponse struct {
	Module  string            `json:"module" jsonschema_description:"Python source of sbml_def.py"`
	Entries []domain.MapEntry `json:"entries" jsonschema_description:"Map entries turned into widget rows"`
}

// ListResponse is the structured result of list_maps.
type ListResponse struct {
	Entries []domain.MapEntry `json:"entries" jsonschema_description:"Map entries in document order"`
	Skipped int               `json:"skipped" jsonschema_description:"Children of the intracellular element that are not map entries"`
}

// Options configures the generators built for each tool call.
type Options struct {
	Logger      *slog.Logger
	Palette     domain.Palette
	FoldTagCase bool
}

// Server exposes the generator as an MCP server.
type Server struct {
	opts      Options
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Palette == (domain.Palette{}) {
		opts.Palette = domain.DefaultPalette()
	}
	s := &Server{
		opts:      opts,
		mcpServer: server.NewMCPServer("sbmltab-mcp", strings.TrimSpace(sbmltab.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_sbml_tab",
		mcp.WithDescription("Generate the SBMLDefTab Jupyter widget module (sbml_def.py) from a PhysiCell XML configuration."),
		mcp.WithString("config_xml", mcp.Required(), mcp.Description("Full text of the XML configuration")),
		mcp.WithString("color1", mcp.Description("Primary row color (default lightgreen)")),
		mcp.WithString("color2", mcp.Description("Secondary row color (default tan)")),
		mcp.WithOutputSchema[GenerateResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	listTool := mcp.NewTool("list_maps",
		mcp.WithDescription("List the species/substrate map entries under the first intracellular element."),
		mcp.WithString("config_xml", mcp.Required(), mcp.Description("Full text of the XML configuration")),
		mcp.WithOutputSchema[ListResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	data, err := configArg(args)
	if err != nil {
		return GenerateResponse{}, err
	}

	palette := s.opts.Palette
	if c, _ := args["color1"].(string); c != "" {
		palette.Primary = c
	}
	if c, _ := args["color2"].(string); c != "" {
		palette.Secondary = c
	}

	res, err := s.generator(palette).Generate(ctx, "config_xml", data)
	if err != nil {
		s.opts.Logger.Warn("MCP generate failed", "error", err)
		return GenerateResponse{}, fmt.Errorf("generate failed: %w", err)
	}
	return GenerateResponse{Module: string(res.Code), Entries: res.Model.Entries}, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	data, err := configArg(args)
	if err != nil {
		return ListResponse{}, err
	}

	model, err := s.generator(s.opts.Palette).Model(ctx, "config_xml", data)
	if err != nil {
		return ListResponse{}, fmt.Errorf("inspect failed: %w", err)
	}
	return ListResponse{Entries: model.Entries, Skipped: model.Skipped}, nil
}

func (s *Server) generator(p domain.Palette) *sbmltab.Generator {
	return sbmltab.New(
		sbmltab.WithLogger(s.opts.Logger),
		sbmltab.WithPalette(p),
		sbmltab.WithFoldTagCase(s.opts.FoldTagCase),
	)
}

func configArg(args map[string]interface{}) ([]byte, error) {
	text, _ := args["config_xml"].(string)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("config_xml is required")
	}
	return []byte(text), nil
}
