package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	engine := query.NewEngine(docs.DefaultStore(), docs.DefaultExampleStore(), query.Options{})
	return NewDispatcher(engine, "test", nil)
}

// dispatch round-trips the response through JSON so assertions see
// exactly what a client would.
func dispatch(t *testing.T, d *Dispatcher, body string) map[string]any {
	t.Helper()
	resp := d.Dispatch(context.Background(), []byte(body))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2.0", decoded["jsonrpc"])
	return decoded
}

func errorCode(t *testing.T, decoded map[string]any) int {
	t.Helper()
	errObj, ok := decoded["error"].(map[string]any)
	require.True(t, ok, "expected an error object, got %v", decoded)
	return int(errObj["code"].(float64))
}

func TestDispatch_MalformedJSON(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{not json`)
	assert.Equal(t, ErrCodeParseError, errorCode(t, decoded))
	assert.Nil(t, decoded["id"], "unparseable request gets a null id")
}

func TestDispatch_MissingJSONRPCVersion(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"method":"ping","id":1}`)
	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, decoded))
}

func TestDispatch_WrongJSONRPCVersion(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"1.0","method":"ping","id":1}`)
	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, decoded))
}

func TestDispatch_MissingMethod(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","id":1}`)
	assert.Equal(t, ErrCodeInvalidRequest, errorCode(t, decoded))
}

func TestDispatch_UnknownMethod(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"tools/destroy","id":1}`)
	assert.Equal(t, ErrCodeMethodNotFound, errorCode(t, decoded))
}

func TestDispatch_IDEchoedVerbatim(t *testing.T) {
	d := newTestDispatcher(t)

	num := dispatch(t, d, `{"jsonrpc":"2.0","method":"ping","id":42}`)
	assert.Equal(t, float64(42), num["id"])

	str := dispatch(t, d, `{"jsonrpc":"2.0","method":"ping","id":"req-7"}`)
	assert.Equal(t, "req-7", str["id"])
}

func TestDispatch_ErrorKeepsRequestID(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"nope","id":"abc"}`)
	assert.Equal(t, "abc", decoded["id"])
	assert.Equal(t, ErrCodeMethodNotFound, errorCode(t, decoded))
}

func TestDispatch_Initialize(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"initialize","id":1}`)
	result := decoded["result"].(map[string]any)

	assert.Equal(t, ProtocolVersion, result["protocolVersion"])

	info := result["serverInfo"].(map[string]any)
	assert.Equal(t, ServerName, info["name"])
	assert.Equal(t, "test", info["version"])

	caps := result["capabilities"].(map[string]any)
	assert.Contains(t, caps, "tools")
	assert.Contains(t, caps, "resources")
	assert.Contains(t, caps, "prompts")
}

func TestDispatch_ToolsList(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"tools/list","id":1}`)
	result := decoded["result"].(map[string]any)
	tools := result["tools"].([]any)
	require.Len(t, tools, 4)

	var names []string
	for _, tool := range tools {
		entry := tool.(map[string]any)
		names = append(names, entry["name"].(string))
		assert.NotEmpty(t, entry["description"])
		schema := entry["inputSchema"].(map[string]any)
		assert.Equal(t, "object", schema["type"])
	}
	assert.Equal(t, []string{
		ToolSearchDocumentation, ToolGetFullDoc, ToolListCategories, ToolGetExampleCode,
	}, names)
}

func TestDispatch_ToolsCall_Search(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"search_documentation","arguments":{"query":"authentication","limit":3}}
	}`)
	result := decoded["result"].(map[string]any)
	content := result["content"].([]any)
	require.Len(t, content, 1)

	block := content[0].(map[string]any)
	assert.Equal(t, "text", block["type"])

	var out SearchOutput
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &out))
	assert.Equal(t, "authentication", out.Query)
	require.NotEmpty(t, out.Results)
	assert.LessOrEqual(t, len(out.Results), 3)
	assert.Equal(t, "authentication", out.Results[0].ID)
}

func TestDispatch_ToolsCall_MissingQuery(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"search_documentation","arguments":{}}
	}`)
	assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded))
}

func TestDispatch_ToolsCall_UnknownDoc(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"get_full_doc","arguments":{"doc_id":"nonexistent"}}
	}`)
	assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded))
}

func TestDispatch_ToolsCall_UnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"drop_tables","arguments":{}}
	}`)
	assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded))
}

func TestDispatch_ToolsCall_MissingParams(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"tools/call","id":1}`)
	assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded))
}

func TestDispatch_ToolsCall_ListCategories(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"list_categories","arguments":{}}
	}`)
	result := decoded["result"].(map[string]any)
	block := result["content"].([]any)[0].(map[string]any)

	var out CategoriesOutput
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &out))
	require.NotEmpty(t, out.Categories)

	total := 0
	for _, c := range out.Categories {
		total += c.Count
	}
	assert.Equal(t, 8, total, "every article belongs to exactly one category")
}

func TestDispatch_ToolsCall_GetExample(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"get_example_code","arguments":{"example_name":"simple-tool"}}
	}`)
	result := decoded["result"].(map[string]any)
	block := result["content"].([]any)[0].(map[string]any)

	var out ExampleOutput
	require.NoError(t, json.Unmarshal([]byte(block["text"].(string)), &out))
	assert.Equal(t, "simple-tool", out.Name)
	assert.NotEmpty(t, out.Code)
}

func TestDispatch_ToolsCall_UnknownExampleListsAvailable(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), []byte(`{
		"jsonrpc":"2.0","method":"tools/call","id":1,
		"params":{"name":"get_example_code","arguments":{"example_name":"nope"}}
	}`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidParams, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "simple-tool")
}

func TestDispatch_ResourcesList(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"resources/list","id":1}`)
	result := decoded["result"].(map[string]any)
	resources := result["resources"].([]any)

	// stats + 8 articles + 3 examples
	require.Len(t, resources, 12)

	first := resources[0].(map[string]any)
	assert.Equal(t, "docs://stats", first["uri"])
}

func TestDispatch_ResourcesRead_Stats(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"resources/read","id":1,
		"params":{"uri":"docs://stats"}
	}`)
	result := decoded["result"].(map[string]any)
	contents := result["contents"].([]any)
	require.Len(t, contents, 1)

	item := contents[0].(map[string]any)
	assert.Equal(t, "docs://stats", item["uri"])
	assert.Equal(t, "application/json", item["mimeType"])

	var stats StatsOutput
	require.NoError(t, json.Unmarshal([]byte(item["text"].(string)), &stats))
	assert.Equal(t, 8, stats.TotalDocuments)
	assert.Equal(t, 3, stats.TotalExamples)
	assert.Contains(t, stats.ExampleNames, "simple-tool")
	assert.Equal(t, "test", stats.ServerVersion)
}

func TestDispatch_ResourcesRead_Doc(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"resources/read","id":1,
		"params":{"uri":"docs://deployment"}
	}`)
	result := decoded["result"].(map[string]any)
	item := result["contents"].([]any)[0].(map[string]any)

	assert.Equal(t, "docs://deployment", item["uri"])
	assert.Equal(t, "text/markdown", item["mimeType"])
	assert.Contains(t, item["text"].(string), "Category: Deployment")
}

func TestDispatch_ResourcesRead_Example(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"resources/read","id":1,
		"params":{"uri":"examples://simple-tool"}
	}`)
	result := decoded["result"].(map[string]any)
	item := result["contents"].([]any)[0].(map[string]any)
	assert.Equal(t, "text/x-python", item["mimeType"])
	assert.NotEmpty(t, item["text"])
}

func TestDispatch_ResourcesRead_UnknownURI(t *testing.T) {
	d := newTestDispatcher(t)

	for _, uri := range []string{"docs://missing", "examples://missing", "ftp://nope"} {
		body, err := json.Marshal(Request{
			JSONRPC: "2.0",
			Method:  MethodResourcesRead,
			Params:  json.RawMessage(`{"uri":"` + uri + `"}`),
			ID:      json.RawMessage("1"),
		})
		require.NoError(t, err)

		decoded := dispatch(t, d, string(body))
		assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded), "uri %s", uri)
	}
}

func TestDispatch_PromptsList(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"prompts/list","id":1}`)
	result := decoded["result"].(map[string]any)
	prompts := result["prompts"].([]any)
	require.Len(t, prompts, 3)

	first := prompts[0].(map[string]any)
	assert.Equal(t, PromptBuildServer, first["name"])
	args := first["arguments"].([]any)
	required := args[0].(map[string]any)
	assert.Equal(t, "server_type", required["name"])
	assert.Equal(t, true, required["required"])
}

func TestDispatch_PromptsGet_BuildServer(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"prompts/get","id":1,
		"params":{"name":"build_server_prompt","arguments":{"server_type":"hybrid","features":"auth, metrics"}}
	}`)
	result := decoded["result"].(map[string]any)
	messages := result["messages"].([]any)
	require.Len(t, messages, 1)

	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	text := msg["content"].(map[string]any)["text"].(string)
	assert.Contains(t, text, "hybrid")
	assert.Contains(t, text, "Add Authentication")
	assert.Contains(t, text, "Add Metrics")
}

func TestDispatch_PromptsGet_InvalidServerType(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"prompts/get","id":1,
		"params":{"name":"build_server_prompt","arguments":{"server_type":"serverless"}}
	}`)
	assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded))
}

func TestDispatch_PromptsGet_Debug(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"prompts/get","id":1,
		"params":{"name":"debug_prompt","arguments":{"issue":"auth-failing"}}
	}`)
	result := decoded["result"].(map[string]any)
	text := result["messages"].([]any)[0].(map[string]any)["content"].(map[string]any)["text"].(string)
	assert.Contains(t, text, "Debugging authentication")
}

func TestDispatch_PromptsGet_Learn(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"prompts/get","id":1,
		"params":{"name":"learn_prompt","arguments":{"topics":"deployment,tools","level":"advanced"}}
	}`)
	result := decoded["result"].(map[string]any)
	text := result["messages"].([]any)[0].(map[string]any)["content"].(map[string]any)["text"].(string)
	assert.Contains(t, text, "Topic 1: tools")
	assert.Contains(t, text, "Topic 2: deployment")
	assert.Contains(t, text, "advanced")
}

func TestDispatch_PromptsGet_UnknownPrompt(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{
		"jsonrpc":"2.0","method":"prompts/get","id":1,
		"params":{"name":"world_domination_prompt","arguments":{}}
	}`)
	assert.Equal(t, ErrCodeInvalidParams, errorCode(t, decoded))
}

func TestDispatch_Ping(t *testing.T) {
	d := newTestDispatcher(t)

	decoded := dispatch(t, d, `{"jsonrpc":"2.0","method":"ping","id":9}`)
	assert.NotContains(t, decoded, "error")
	assert.Equal(t, float64(9), decoded["id"])
}

func TestMapError_Fallback(t *testing.T) {
	me := MapError(assert.AnError)
	assert.Equal(t, ErrCodeInternalError, me.Code)
	assert.NotContains(t, me.Message, assert.AnError.Error(),
		"internal error details must not leak to clients")
}
