package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, TransportHTTP, cfg.Server.Transport)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Search.TitleWeight)
	assert.Equal(t, 3, cfg.Search.ContentWeight)
	assert.Equal(t, 1, cfg.Search.TagWeight)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, 50, cfg.Search.MaxLimit)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9000
  log_level: debug
search:
  default_limit: 5
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nextmcp-docs.yaml"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	// Unset values keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 10, cfg.Search.TitleWeight)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nextmcp-docs.yaml"), []byte("server: ["), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".nextmcp-docs.yaml"),
		[]byte("server:\n  port: 9000\n"), 0o644))
	t.Setenv("PORT", "3000")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port, "environment must take precedence over the file")
}

func TestLoad_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoad_WeightEnvOverrides(t *testing.T) {
	t.Setenv("NEXTMCP_DOCS_TITLE_WEIGHT", "20")
	t.Setenv("NEXTMCP_DOCS_CONTENT_WEIGHT", "5")
	t.Setenv("NEXTMCP_DOCS_TAG_WEIGHT", "2")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	title, content, tag := cfg.Weights()
	assert.Equal(t, 20, title)
	assert.Equal(t, 5, content)
	assert.Equal(t, 2, tag)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			errMsg: "server.port",
		},
		{
			name:   "unknown transport",
			mutate: func(c *Config) { c.Server.Transport = "grpc" },
			errMsg: "server.transport",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Server.LogLevel = "verbose" },
			errMsg: "log_level",
		},
		{
			name:   "non-positive weight",
			mutate: func(c *Config) { c.Search.TagWeight = 0 },
			errMsg: "positive",
		},
		{
			name: "weights not strictly ordered",
			mutate: func(c *Config) {
				c.Search.TitleWeight = 3
				c.Search.ContentWeight = 3
			},
			errMsg: "title > content > tag",
		},
		{
			name:   "max limit below default",
			mutate: func(c *Config) { c.Search.MaxLimit = 5 },
			errMsg: "default_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := New()
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 9090
	assert.Equal(t, "localhost:9090", cfg.Addr())
}
