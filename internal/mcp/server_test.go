package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

func TestNewServer(t *testing.T) {
	engine := query.NewEngine(docs.DefaultStore(), docs.DefaultExampleStore(), query.Options{})

	srv, err := NewServer(engine, "test", nil)
	require.NoError(t, err)
	assert.NotNil(t, srv.mcp)
}

func TestNewServer_RequiresEngine(t *testing.T) {
	_, err := NewServer(nil, "test", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query engine")
}
