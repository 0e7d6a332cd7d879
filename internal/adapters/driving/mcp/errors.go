// Package mcp provides an MCP (Model Context Protocol) server adapter for menugen.
// It lets AI assistants generate and read daily menus, browse the food
// catalog and size portions.
package mcp

import (
	"errors"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/logger"
)

// ErrMissingMenuService is returned when the menu service is not provided.
var ErrMissingMenuService = errors.New("mcp: menu service is required")

// ErrRateLimited is returned when generation is requested faster than allowed.
var ErrRateLimited = errors.New("too many requests, please wait a moment and try again")

// publicError converts err into one safe to return to the client.
// Internal failures are logged and replaced with a generic message.
func publicError(op string, err error) error {
	msg, public := domain.PublicMessage(err)
	if !public {
		logger.Error("mcp %s: %v", op, err)
	}
	return errors.New(msg)
}
