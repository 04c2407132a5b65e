package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

// Tool names exposed over tools/list and tools/call.
const (
	ToolSearchDocumentation = "search_documentation"
	ToolGetFullDoc          = "get_full_doc"
	ToolListCategories      = "list_categories"
	ToolGetExampleCode      = "get_example_code"
)

// SearchInput defines the input schema for the search_documentation tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query, e.g. tools, authentication, deployment"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results, default 10"`
}

// SearchOutput defines the output schema for the search_documentation tool.
type SearchOutput struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []query.Result `json:"results"`
}

// DocInput defines the input schema for the get_full_doc tool.
type DocInput struct {
	DocID string `json:"doc_id" jsonschema:"document ID, e.g. tools, deployment, examples"`
}

// DocOutput is the full article returned by get_full_doc.
type DocOutput struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// CategoriesInput defines the (empty) input schema for list_categories.
type CategoriesInput struct{}

// CategoriesOutput defines the output schema for list_categories.
type CategoriesOutput struct {
	Categories []query.CategoryInfo `json:"categories"`
}

// ExampleInput defines the input schema for the get_example_code tool.
type ExampleInput struct {
	ExampleName string `json:"example_name" jsonschema:"example to retrieve, e.g. simple-tool, auth-setup, resource-template"`
}

// ExampleOutput is the example returned by get_example_code.
type ExampleOutput struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Code        string   `json:"code"`
	Explanation string   `json:"explanation"`
	Tags        []string `json:"tags"`
}

// toolDescriptors lists every tool in registration order.
func (d *Dispatcher) toolDescriptors() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name:        ToolSearchDocumentation,
			Description: "Search NextMCP documentation for relevant articles. Matches titles, content, and tags; results are ranked by relevance.",
			InputSchema: objectSchema(map[string]any{
				"query": map[string]any{"type": "string", "description": "Search query"},
				"limit": map[string]any{"type": "integer", "description": "Maximum number of results (default 10)"},
			}, "query"),
		},
		{
			Name:        ToolGetFullDoc,
			Description: "Get the complete documentation article for a specific topic.",
			InputSchema: objectSchema(map[string]any{
				"doc_id": map[string]any{"type": "string", "description": "Document ID, e.g. tools, deployment"},
			}, "doc_id"),
		},
		{
			Name:        ToolListCategories,
			Description: "List all documentation categories with article counts.",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        ToolGetExampleCode,
			Description: "Get runnable example code for common NextMCP patterns.",
			InputSchema: objectSchema(map[string]any{
				"example_name": map[string]any{"type": "string", "description": "Example name, e.g. simple-tool"},
			}, "example_name"),
		},
	}
}

// handleToolsList returns the tool catalog.
func (d *Dispatcher) handleToolsList(_ context.Context, _ json.RawMessage) (any, error) {
	return ToolsListResult{Tools: d.toolDescriptors()}, nil
}

// handleToolsCall validates the call envelope and routes to the named tool.
func (d *Dispatcher) handleToolsCall(ctx context.Context, params json.RawMessage) (any, error) {
	var call ToolsCallParams
	if err := unmarshalParams(params, &call); err != nil {
		return nil, err
	}
	if call.Name == "" {
		return nil, NewInvalidParamsError(`tools/call requires a "name" parameter`)
	}

	var (
		output any
		err    error
	)
	switch call.Name {
	case ToolSearchDocumentation:
		output, err = d.callSearch(call.Arguments)
	case ToolGetFullDoc:
		output, err = d.callGetFullDoc(call.Arguments)
	case ToolListCategories:
		output = CategoriesOutput{Categories: d.engine.Categories()}
	case ToolGetExampleCode:
		output, err = d.callGetExample(call.Arguments)
	default:
		return nil, NewInvalidParamsError(fmt.Sprintf("unknown tool %q", call.Name))
	}
	if err != nil {
		return nil, err
	}

	text, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return ToolsCallResult{
		Content: []ContentBlock{{Type: "text", Text: string(text)}},
	}, nil
}

// callSearch executes the search_documentation tool.
func (d *Dispatcher) callSearch(args map[string]any) (SearchOutput, error) {
	q, ok := stringArg(args, "query")
	if !ok {
		return SearchOutput{}, NewInvalidParamsError("query parameter is required and must be a string")
	}
	limit := intArg(args, "limit")

	results := d.engine.Search(q, limit)
	return SearchOutput{
		Query:   q,
		Count:   len(results),
		Results: results,
	}, nil
}

// callGetFullDoc executes the get_full_doc tool.
func (d *Dispatcher) callGetFullDoc(args map[string]any) (DocOutput, error) {
	id, ok := stringArg(args, "doc_id")
	if !ok || strings.TrimSpace(id) == "" {
		return DocOutput{}, NewInvalidParamsError("doc_id parameter is required and must be a non-empty string")
	}

	article, err := d.engine.FullDoc(id)
	if err != nil {
		return DocOutput{}, err
	}
	return articleOutput(article), nil
}

// callGetExample executes the get_example_code tool. A miss reports
// the available names so the caller can self-correct.
func (d *Dispatcher) callGetExample(args map[string]any) (ExampleOutput, error) {
	name, ok := stringArg(args, "example_name")
	if !ok || strings.TrimSpace(name) == "" {
		return ExampleOutput{}, NewInvalidParamsError("example_name parameter is required and must be a non-empty string")
	}

	example, err := d.engine.Example(name)
	if err != nil {
		return ExampleOutput{}, NewInvalidParamsError(fmt.Sprintf(
			"example %q not found (available: %s)",
			name, strings.Join(d.engine.ExampleNames(), ", ")))
	}
	return exampleOutput(example), nil
}

func articleOutput(a *docs.Article) DocOutput {
	return DocOutput{
		ID:       a.ID,
		Title:    a.Title,
		Content:  a.Content,
		Category: string(a.Category),
		Tags:     a.Tags,
	}
}

func exampleOutput(e *docs.Example) ExampleOutput {
	return ExampleOutput{
		Name:        e.Name,
		Title:       e.Title,
		Code:        e.Code,
		Explanation: e.Explanation,
		Tags:        e.Tags,
	}
}

// objectSchema builds a minimal JSON Schema object description.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// unmarshalParams decodes params into dst, mapping decode failures to
// invalid params rather than parse errors: the envelope itself was
// already valid JSON.
func unmarshalParams(params json.RawMessage, dst any) error {
	if len(params) == 0 {
		return NewInvalidParamsError("missing params")
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return NewInvalidParamsError("malformed params: " + err.Error())
	}
	return nil
}

// stringArg extracts a string argument.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

// intArg extracts an integer argument. JSON numbers decode as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
