package mcp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
)

// ServerName is the implementation name reported to clients.
const ServerName = "nextmcp-docs"

// methodHandler executes one JSON-RPC method. A returned *MCPError is
// sent to the client verbatim; any other error becomes internal error.
type methodHandler func(ctx context.Context, params json.RawMessage) (any, error)

// Dispatcher routes JSON-RPC requests to the query engine and prompt
// generator. It is stateless: every request is independent and the
// underlying stores are immutable, so a single Dispatcher serves all
// connections concurrently without locking.
type Dispatcher struct {
	engine  *query.Engine
	version string
	logger  *slog.Logger
	methods map[string]methodHandler
}

// NewDispatcher creates a dispatcher over the given engine.
func NewDispatcher(engine *query.Engine, version string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		engine:  engine,
		version: version,
		logger:  logger,
	}
	// The method table is fixed at construction; an unmapped name is a
	// MethodNotFound error, never a panic.
	d.methods = map[string]methodHandler{
		MethodInitialize:    d.handleInitialize,
		MethodPing:          d.handlePing,
		MethodToolsList:     d.handleToolsList,
		MethodToolsCall:     d.handleToolsCall,
		MethodResourcesList: d.handleResourcesList,
		MethodResourcesRead: d.handleResourcesRead,
		MethodPromptsList:   d.handlePromptsList,
		MethodPromptsGet:    d.handlePromptsGet,
	}
	return d
}

// Dispatch parses a raw JSON-RPC request body and produces the
// response envelope. It never returns an error: every failure mode is
// expressed as a well-formed JSON-RPC error response.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte) Response {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return NewErrorResponse(nil, ErrCodeParseError, "parse error: invalid JSON")
	}
	return d.DispatchRequest(ctx, req)
}

// DispatchRequest validates the envelope and routes to the handler.
func (d *Dispatcher) DispatchRequest(ctx context.Context, req Request) Response {
	if req.JSONRPC != "2.0" {
		return NewErrorResponse(req.ID, ErrCodeInvalidRequest,
			`invalid request: "jsonrpc" must be "2.0"`)
	}
	if req.Method == "" {
		return NewErrorResponse(req.ID, ErrCodeInvalidRequest,
			`invalid request: missing "method"`)
	}

	handler, ok := d.methods[req.Method]
	if !ok {
		return NewErrorResponse(req.ID, ErrCodeMethodNotFound,
			NewMethodNotFoundError(req.Method).Message)
	}

	start := time.Now()
	requestID := generateRequestID()
	d.logger.Debug("request dispatched",
		slog.String("request_id", requestID),
		slog.String("method", req.Method))

	result, err := handler(ctx, req.Params)
	duration := time.Since(start)

	if err != nil {
		me := MapError(err)
		d.logger.Warn("request failed",
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.Duration("duration", duration),
			slog.Int("code", me.Code),
			slog.String("error", err.Error()))
		return NewErrorResponse(req.ID, me.Code, me.Message)
	}

	d.logger.Info("request completed",
		slog.String("request_id", requestID),
		slog.String("method", req.Method),
		slog.Duration("duration", duration))
	return NewSuccessResponse(req.ID, result)
}

// handleInitialize reports protocol version and capabilities.
func (d *Dispatcher) handleInitialize(_ context.Context, _ json.RawMessage) (any, error) {
	return InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: ServerCapabilities{
			Tools:     &struct{}{},
			Resources: &struct{}{},
			Prompts:   &struct{}{},
		},
		ServerInfo: ServerInfo{Name: ServerName, Version: d.version},
	}, nil
}

// handlePing answers liveness probes with an empty result.
func (d *Dispatcher) handlePing(_ context.Context, _ json.RawMessage) (any, error) {
	return struct{}{}, nil
}

// generateRequestID creates a short unique request ID for log correlation.
func generateRequestID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
