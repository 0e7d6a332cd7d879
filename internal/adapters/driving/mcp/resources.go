package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for menugen resources.
	uriScheme = "menugen://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "foods",
		Name:        "foods",
		Description: "The food catalog with per-100g macros",
		MIMEType:    mimeJSON,
	}, s.handleFoodsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profile",
		Name:        "profile",
		Description: "The user's nutrition profile and daily targets",
		MIMEType:    mimeJSON,
	}, s.handleProfileResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "menus/{date}",
		Name:        "menu",
		Description: "The stored menu for a calendar day (YYYY-MM-DD)",
		MIMEType:    mimeJSON,
	}, s.handleMenuResource)
}

// jsonResource wraps v as the single JSON content of a resource.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// handleFoodsResource returns the whole catalog.
func (s *Server) handleFoodsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return jsonResource(req.Params.URI, []FoodOutput{})
	}

	foods, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, publicError("read foods", err)
	}

	out := make([]FoodOutput, len(foods))
	for i := range foods {
		out[i] = toFood(&foods[i])
	}
	return jsonResource(req.Params.URI, out)
}

// handleProfileResource returns the user's nutrition profile.
func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Profile == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	profile, err := s.ports.Profile.Get(ctx, s.userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, publicError("read profile", err)
	}
	return jsonResource(req.Params.URI, profile)
}

// handleMenuResource returns the stored menu for the date in the URI.
func (s *Server) handleMenuResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	raw := extractMenuDate(req.Params.URI)
	if raw == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	day, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}

	menu, err := s.ports.Menu.Get(ctx, s.userID, day)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, publicError("read menu", err)
	}
	return jsonResource(req.Params.URI, toMenu(menu))
}

// extractMenuDate extracts the date from a URI like menugen://menus/{date}.
func extractMenuDate(uri string) string {
	const prefix = uriScheme + "menus/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	date := strings.TrimPrefix(uri, prefix)
	if strings.Contains(date, "/") {
		return ""
	}
	return date
}
