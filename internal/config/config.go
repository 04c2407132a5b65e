// Package config loads server configuration from defaults, an optional
// YAML file, and environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Transport names supported by the serve command.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config is the complete server configuration.
type Config struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Search SearchConfig `yaml:"search" json:"search"`
}

// ServerConfig configures the transport layer.
type ServerConfig struct {
	// Host is the bind address for the HTTP transport.
	Host string `yaml:"host" json:"host"`
	// Port is the HTTP listen port.
	Port int `yaml:"port" json:"port"`
	// Transport selects "http" or "stdio".
	Transport string `yaml:"transport" json:"transport"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// SearchConfig holds the relevance scoring policy. The weights are a
// tunable policy constant, not an algorithmic contract; Validate only
// enforces that a title match outranks a content match, and a content
// match outranks a tag match.
type SearchConfig struct {
	TitleWeight   int `yaml:"title_weight" json:"title_weight"`
	ContentWeight int `yaml:"content_weight" json:"content_weight"`
	TagWeight     int `yaml:"tag_weight" json:"tag_weight"`
	DefaultLimit  int `yaml:"default_limit" json:"default_limit"`
	MaxLimit      int `yaml:"max_limit" json:"max_limit"`
}

// New creates a Config with sensible defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8000,
			Transport: TransportHTTP,
			LogLevel:  "info",
		},
		Search: SearchConfig{
			TitleWeight:   10,
			ContentWeight: 3,
			TagWeight:     1,
			DefaultLimit:  10,
			MaxLimit:      50,
		},
	}
}

// Load loads configuration from the given directory, applying in order
// of increasing precedence:
//  1. Hardcoded defaults
//  2. .nextmcp-docs.yaml (or .yml) in dir
//  3. Environment variables (PORT, HOST, LOG_LEVEL, NEXTMCP_DOCS_*)
func Load(dir string) (*Config, error) {
	cfg := New()

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromFile merges .nextmcp-docs.yaml or .nextmcp-docs.yml if present.
func (c *Config) loadFromFile(dir string) error {
	for _, name := range []string{".nextmcp-docs.yaml", ".nextmcp-docs.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return c.loadYAML(path)
		}
	}
	// No config file is fine - use defaults
	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Server.Host != "" {
		c.Server.Host = other.Server.Host
	}
	if other.Server.Port != 0 {
		c.Server.Port = other.Server.Port
	}
	if other.Server.Transport != "" {
		c.Server.Transport = other.Server.Transport
	}
	if other.Server.LogLevel != "" {
		c.Server.LogLevel = other.Server.LogLevel
	}

	if other.Search.TitleWeight != 0 {
		c.Search.TitleWeight = other.Search.TitleWeight
	}
	if other.Search.ContentWeight != 0 {
		c.Search.ContentWeight = other.Search.ContentWeight
	}
	if other.Search.TagWeight != 0 {
		c.Search.TagWeight = other.Search.TagWeight
	}
	if other.Search.DefaultLimit != 0 {
		c.Search.DefaultLimit = other.Search.DefaultLimit
	}
	if other.Search.MaxLimit != 0 {
		c.Search.MaxLimit = other.Search.MaxLimit
	}
}

// applyEnvOverrides applies environment variable overrides.
// PORT, HOST, and LOG_LEVEL match the deployment conventions documented
// in the corpus; scoring knobs use the NEXTMCP_DOCS_ prefix.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p <= 65535 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Server.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("NEXTMCP_DOCS_TRANSPORT"); v != "" {
		c.Server.Transport = v
	}
	if v := os.Getenv("NEXTMCP_DOCS_TITLE_WEIGHT"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			c.Search.TitleWeight = w
		}
	}
	if v := os.Getenv("NEXTMCP_DOCS_CONTENT_WEIGHT"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			c.Search.ContentWeight = w
		}
	}
	if v := os.Getenv("NEXTMCP_DOCS_TAG_WEIGHT"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			c.Search.TagWeight = w
		}
	}
}

// Validate checks the final configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	switch c.Server.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("server.transport must be %q or %q, got %q",
			TransportHTTP, TransportStdio, c.Server.Transport)
	}
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("server.log_level: unknown level %q", c.Server.LogLevel)
	}

	s := c.Search
	if s.TitleWeight <= 0 || s.ContentWeight <= 0 || s.TagWeight <= 0 {
		return fmt.Errorf("search weights must be positive")
	}
	if s.TitleWeight <= s.ContentWeight || s.ContentWeight <= s.TagWeight {
		return fmt.Errorf("search weights must satisfy title > content > tag, got %d/%d/%d",
			s.TitleWeight, s.ContentWeight, s.TagWeight)
	}
	if s.DefaultLimit <= 0 || s.MaxLimit < s.DefaultLimit {
		return fmt.Errorf("search limits must satisfy 0 < default_limit <= max_limit, got %d/%d",
			s.DefaultLimit, s.MaxLimit)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Weights returns the scoring weights in engine order.
func (c *Config) Weights() (title, content, tag int) {
	return c.Search.TitleWeight, c.Search.ContentWeight, c.Search.TagWeight
}
