package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

// Server exposes the documentation corpus to MCP clients over stdio.
// The HTTP transport dispatches JSON-RPC itself; this server exists for
// clients that spawn the binary directly (Claude Code, Cursor).
type Server struct {
	mcp     *mcp.Server
	engine  *query.Engine
	version string
	logger  *slog.Logger
}

// NewServer creates a stdio MCP server backed by the given query engine.
func NewServer(engine *query.Engine, version string, logger *slog.Logger) (*Server, error) {
	if engine == nil {
		return nil, errors.New("query engine is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:  engine,
		version: version,
		logger:  logger,
	}

	s.mcp = mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		},
		nil, // capabilities are inferred from registered tools/resources/prompts
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Serve runs the server over stdio until ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting MCP server", slog.String("transport", "stdio"))

	err := s.mcp.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("MCP server stopped with error", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("MCP server stopped")
	return nil
}

// registerTools registers the documentation tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolSearchDocumentation,
		Description: "Search NextMCP documentation for relevant articles. Matches titles, content, and tags; results are ranked by relevance.",
	}, s.searchHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolGetFullDoc,
		Description: "Get the complete documentation article for a specific topic.",
	}, s.getFullDocHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolListCategories,
		Description: "List all documentation categories with article counts.",
	}, s.listCategoriesHandler)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolGetExampleCode,
		Description: "Get runnable example code for common NextMCP patterns.",
	}, s.getExampleHandler)

	s.logger.Debug("tools registered", slog.Int("count", 4))
}

func (s *Server) searchHandler(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (
	*mcp.CallToolResult,
	SearchOutput,
	error,
) {
	if input.Query == "" {
		return nil, SearchOutput{}, NewInvalidParamsError("query parameter is required")
	}
	results := s.engine.Search(input.Query, input.Limit)
	return nil, SearchOutput{Query: input.Query, Count: len(results), Results: results}, nil
}

func (s *Server) getFullDocHandler(_ context.Context, _ *mcp.CallToolRequest, input DocInput) (
	*mcp.CallToolResult,
	DocOutput,
	error,
) {
	if strings.TrimSpace(input.DocID) == "" {
		return nil, DocOutput{}, NewInvalidParamsError("doc_id parameter is required")
	}
	article, err := s.engine.FullDoc(input.DocID)
	if err != nil {
		return nil, DocOutput{}, MapError(err)
	}
	return nil, articleOutput(article), nil
}

func (s *Server) listCategoriesHandler(_ context.Context, _ *mcp.CallToolRequest, _ CategoriesInput) (
	*mcp.CallToolResult,
	CategoriesOutput,
	error,
) {
	return nil, CategoriesOutput{Categories: s.engine.Categories()}, nil
}

func (s *Server) getExampleHandler(_ context.Context, _ *mcp.CallToolRequest, input ExampleInput) (
	*mcp.CallToolResult,
	ExampleOutput,
	error,
) {
	if strings.TrimSpace(input.ExampleName) == "" {
		return nil, ExampleOutput{}, NewInvalidParamsError("example_name parameter is required")
	}
	example, err := s.engine.Example(input.ExampleName)
	if err != nil {
		return nil, ExampleOutput{}, NewInvalidParamsError(fmt.Sprintf(
			"example %q not found (available: %s)",
			input.ExampleName, strings.Join(s.engine.ExampleNames(), ", ")))
	}
	return nil, exampleOutput(example), nil
}

// registerResources registers the stats resource plus one resource per
// article and per code example.
func (s *Server) registerResources() {
	s.mcp.AddResource(
		&mcp.Resource{
			Name:        "Documentation Statistics",
			URI:         statsURI,
			Description: "Corpus statistics: document and example counts per category.",
			MIMEType:    jsonMIMEType,
		},
		s.statsResourceHandler,
	)

	s.mcp.AddResourceTemplate(
		&mcp.ResourceTemplate{
			Name:        "Documentation Article",
			URITemplate: docSchemePrefix + "{doc_id}",
			Description: "Full documentation article by ID.",
			MIMEType:    markdownMIMEType,
		},
		s.docTemplateHandler,
	)

	for _, name := range s.engine.ExampleNames() {
		example, err := s.engine.Example(name)
		if err != nil {
			continue
		}
		s.mcp.AddResource(
			&mcp.Resource{
				Name:        example.Title,
				URI:         exampleSchemePrefix + name,
				Description: example.Explanation,
				MIMEType:    pythonMIMEType,
			},
			s.makeExampleHandler(name),
		)
	}
}

func (s *Server) statsResourceHandler(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	counts := make(map[string]int)
	for _, info := range s.engine.Categories() {
		counts[info.Name] = info.Count
	}
	stats := StatsOutput{
		TotalDocuments: s.engine.Docs().Len(),
		TotalExamples:  len(s.engine.ExampleNames()),
		Categories:     counts,
		ExampleNames:   s.engine.ExampleNames(),
		ServerVersion:  s.version,
	}
	text, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, err
	}
	return readResourceResult(statsURI, jsonMIMEType, string(text)), nil
}

func (s *Server) docTemplateHandler(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	id := strings.TrimPrefix(uri, docSchemePrefix)
	if id == uri || id == "" {
		return nil, NewInvalidParamsError(fmt.Sprintf("unknown resource URI %q", uri))
	}

	article, err := s.engine.FullDoc(id)
	if err != nil {
		return nil, MapError(err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", article.Title)
	fmt.Fprintf(&sb, "Category: %s\n", article.Category.DisplayName())
	if len(article.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(article.Tags, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(article.Content)
	return readResourceResult(uri, markdownMIMEType, sb.String()), nil
}

func (s *Server) makeExampleHandler(name string) mcp.ResourceHandler {
	return func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		example, err := s.engine.Example(name)
		if err != nil {
			return nil, MapError(err)
		}
		return readResourceResult(exampleSchemePrefix+name, pythonMIMEType, example.Code), nil
	}
}

func readResourceResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: mimeType, Text: text},
		},
	}
}

// registerPrompts registers the workflow prompts.
func (s *Server) registerPrompts() {
	for _, desc := range promptDescriptors() {
		prompt := &mcp.Prompt{
			Name:        desc.Name,
			Description: desc.Description,
		}
		for _, arg := range desc.Arguments {
			prompt.Arguments = append(prompt.Arguments, &mcp.PromptArgument{
				Name:        arg.Name,
				Description: arg.Description,
				Required:    arg.Required,
			})
		}
		s.mcp.AddPrompt(prompt, s.makePromptHandler(desc.Name))
	}
}

func (s *Server) makePromptHandler(name string) mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var (
			description string
			text        string
			err         error
		)
		switch name {
		case PromptBuildServer:
			description = "Build a NextMCP server"
			text, err = renderBuildServer(req.Params.Arguments)
		case PromptDebug:
			description = "Debug a NextMCP server issue"
			text, err = renderDebug(req.Params.Arguments)
		case PromptLearn:
			description = "Learn NextMCP topics"
			text, err = renderLearn(req.Params.Arguments)
		default:
			return nil, NewInvalidParamsError(fmt.Sprintf("unknown prompt %q", name))
		}
		if err != nil {
			return nil, MapError(err)
		}
		return &mcp.GetPromptResult{
			Description: description,
			Messages: []*mcp.PromptMessage{
				{Role: "user", Content: &mcp.TextContent{Text: text}},
			},
		}, nil
	}
}
