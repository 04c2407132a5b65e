// Package mcp implements the Model Context Protocol dispatch layer for
// the NextMCP documentation server: a stateless JSON-RPC 2.0 endpoint
// exposing the documentation tools, resources, and prompts.
package mcp

import (
	"errors"
	"fmt"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/prompts"
)

// MCPError is a protocol error carrying a JSON-RPC code. Handlers
// return it when the failure is the caller's fault; everything else is
// mapped to an internal error at the dispatch boundary.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// MapError converts handler errors to MCP errors.
//
// Unknown document and example lookups are user errors, never server
// faults: they map to invalid params, not internal error, and are never
// silently swallowed.
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	var me *MCPError
	if errors.As(err, &me) {
		return me
	}

	switch {
	case errors.Is(err, docs.ErrNotFound):
		return &MCPError{Code: ErrCodeInvalidParams, Message: err.Error()}
	case errors.Is(err, prompts.ErrInvalidServerType),
		errors.Is(err, prompts.ErrInvalidLevel):
		return &MCPError{Code: ErrCodeInvalidParams, Message: err.Error()}
	default:
		return &MCPError{Code: ErrCodeInternalError, Message: "internal server error"}
	}
}

// NewInvalidParamsError creates an invalid-params error with a custom message.
func NewInvalidParamsError(msg string) *MCPError {
	return &MCPError{Code: ErrCodeInvalidParams, Message: msg}
}

// NewMethodNotFoundError creates an error for an unmapped method name.
func NewMethodNotFoundError(method string) *MCPError {
	return &MCPError{
		Code:    ErrCodeMethodNotFound,
		Message: fmt.Sprintf("method %q not found", method),
	}
}
