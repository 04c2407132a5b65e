package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	docSchemePrefix     = "docs://"
	exampleSchemePrefix = "examples://"
	statsURI            = "docs://stats"

	jsonMIMEType     = "application/json"
	markdownMIMEType = "text/markdown"
	pythonMIMEType   = "text/x-python"
)

// StatsOutput is the payload served at docs://stats.
type StatsOutput struct {
	TotalDocuments int            `json:"total_documents"`
	TotalExamples  int            `json:"total_examples"`
	Categories     map[string]int `json:"categories"`
	ExampleNames   []string       `json:"example_names"`
	ServerVersion  string         `json:"server_version"`
}

// handleResourcesList enumerates the stats resource, one resource per
// article, and one per code example.
func (d *Dispatcher) handleResourcesList(_ context.Context, _ json.RawMessage) (any, error) {
	resources := []ResourceDescriptor{
		{
			URI:         statsURI,
			Name:        "Documentation Statistics",
			Description: "Corpus statistics: document and example counts per category.",
			MIMEType:    jsonMIMEType,
		},
	}

	for _, article := range d.engine.Docs().All() {
		resources = append(resources, ResourceDescriptor{
			URI:         docSchemePrefix + article.ID,
			Name:        article.Title,
			Description: fmt.Sprintf("Documentation article in the %s category.", article.Category.DisplayName()),
			MIMEType:    markdownMIMEType,
		})
	}

	for _, name := range d.engine.ExampleNames() {
		example, err := d.engine.Example(name)
		if err != nil {
			continue
		}
		resources = append(resources, ResourceDescriptor{
			URI:         exampleSchemePrefix + name,
			Name:        example.Title,
			Description: example.Explanation,
			MIMEType:    pythonMIMEType,
		})
	}

	return ResourcesListResult{Resources: resources}, nil
}

// handleResourcesRead resolves a resource URI to its contents.
func (d *Dispatcher) handleResourcesRead(_ context.Context, params json.RawMessage) (any, error) {
	var read ResourcesReadParams
	if err := unmarshalParams(params, &read); err != nil {
		return nil, err
	}
	if read.URI == "" {
		return nil, NewInvalidParamsError(`resources/read requires a "uri" parameter`)
	}

	switch {
	case read.URI == statsURI:
		return d.readStats(read.URI)
	case strings.HasPrefix(read.URI, docSchemePrefix):
		return d.readDoc(read.URI, strings.TrimPrefix(read.URI, docSchemePrefix))
	case strings.HasPrefix(read.URI, exampleSchemePrefix):
		return d.readExample(read.URI, strings.TrimPrefix(read.URI, exampleSchemePrefix))
	default:
		return nil, NewInvalidParamsError(fmt.Sprintf("unknown resource URI %q", read.URI))
	}
}

func (d *Dispatcher) readStats(uri string) (any, error) {
	counts := make(map[string]int)
	for _, info := range d.engine.Categories() {
		counts[info.Name] = info.Count
	}

	stats := StatsOutput{
		TotalDocuments: d.engine.Docs().Len(),
		TotalExamples:  len(d.engine.ExampleNames()),
		Categories:     counts,
		ExampleNames:   d.engine.ExampleNames(),
		ServerVersion:  d.version,
	}
	text, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, err
	}
	return readResult(uri, jsonMIMEType, string(text)), nil
}

func (d *Dispatcher) readDoc(uri, id string) (any, error) {
	article, err := d.engine.FullDoc(id)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", article.Title)
	fmt.Fprintf(&sb, "Category: %s\n", article.Category.DisplayName())
	if len(article.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(article.Tags, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(article.Content)

	return readResult(uri, markdownMIMEType, sb.String()), nil
}

func (d *Dispatcher) readExample(uri, name string) (any, error) {
	example, err := d.engine.Example(name)
	if err != nil {
		return nil, NewInvalidParamsError(fmt.Sprintf(
			"example %q not found (available: %s)",
			name, strings.Join(d.engine.ExampleNames(), ", ")))
	}
	return readResult(uri, pythonMIMEType, example.Code), nil
}

func readResult(uri, mimeType, text string) ResourcesReadResult {
	return ResourcesReadResult{
		Contents: []ResourceContents{{URI: uri, MIMEType: mimeType, Text: text}},
	}
}
