package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/prompts"
)

// Prompt names exposed over prompts/list and prompts/get.
const (
	PromptBuildServer = "build_server_prompt"
	PromptDebug       = "debug_prompt"
	PromptLearn       = "learn_prompt"
)

// promptDescriptors lists every prompt in registration order.
func promptDescriptors() []PromptDescriptor {
	return []PromptDescriptor{
		{
			Name:        PromptBuildServer,
			Description: "Step-by-step workflow for building a NextMCP server of a given type with optional features.",
			Arguments: []PromptArgumentDescriptor{
				{Name: "server_type", Description: "Server style: tool-based, resource-based, or hybrid", Required: true},
				{Name: "features", Description: "Comma-separated extras: auth, metrics, rate-limiting", Required: false},
			},
		},
		{
			Name:        PromptDebug,
			Description: "Troubleshooting guide for a NextMCP server issue.",
			Arguments: []PromptArgumentDescriptor{
				{Name: "issue", Description: "Issue keyword, e.g. server-not-starting, auth-failing", Required: true},
			},
		},
		{
			Name:        PromptLearn,
			Description: "Structured learning path through NextMCP topics for a given experience level.",
			Arguments: []PromptArgumentDescriptor{
				{Name: "topics", Description: "Comma-separated topics to cover", Required: true},
				{Name: "level", Description: "Experience level: beginner, intermediate, or advanced", Required: false},
			},
		},
	}
}

// handlePromptsList returns the prompt catalog.
func (d *Dispatcher) handlePromptsList(_ context.Context, _ json.RawMessage) (any, error) {
	return PromptsListResult{Prompts: promptDescriptors()}, nil
}

// handlePromptsGet renders the named prompt with the given arguments.
func (d *Dispatcher) handlePromptsGet(_ context.Context, params json.RawMessage) (any, error) {
	var get PromptsGetParams
	if err := unmarshalParams(params, &get); err != nil {
		return nil, err
	}
	if get.Name == "" {
		return nil, NewInvalidParamsError(`prompts/get requires a "name" parameter`)
	}

	var (
		description string
		text        string
		err         error
	)
	switch get.Name {
	case PromptBuildServer:
		description = "Build a NextMCP server"
		text, err = renderBuildServer(get.Arguments)
	case PromptDebug:
		description = "Debug a NextMCP server issue"
		text, err = renderDebug(get.Arguments)
	case PromptLearn:
		description = "Learn NextMCP topics"
		text, err = renderLearn(get.Arguments)
	default:
		return nil, NewInvalidParamsError(fmt.Sprintf("unknown prompt %q", get.Name))
	}
	if err != nil {
		return nil, err
	}

	return PromptsGetResult{
		Description: description,
		Messages: []PromptMessage{
			{Role: "user", Content: ContentBlock{Type: "text", Text: text}},
		},
	}, nil
}

func renderBuildServer(args map[string]string) (string, error) {
	serverType, ok := args["server_type"]
	if !ok || strings.TrimSpace(serverType) == "" {
		return "", NewInvalidParamsError("server_type argument is required")
	}
	features := splitList(args["features"])
	return prompts.BuildServer(prompts.ServerType(strings.TrimSpace(serverType)), features)
}

func renderDebug(args map[string]string) (string, error) {
	issue, ok := args["issue"]
	if !ok || strings.TrimSpace(issue) == "" {
		return "", NewInvalidParamsError("issue argument is required")
	}
	return prompts.Debug(strings.TrimSpace(issue)), nil
}

func renderLearn(args map[string]string) (string, error) {
	topics := splitList(args["topics"])
	if len(topics) == 0 {
		return "", NewInvalidParamsError("topics argument is required")
	}
	level := prompts.LevelBeginner
	if v := strings.TrimSpace(args["level"]); v != "" {
		level = prompts.Level(v)
	}
	return prompts.Learn(topics, level)
}

// splitList parses a comma-separated argument, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
