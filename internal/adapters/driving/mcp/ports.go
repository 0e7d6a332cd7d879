package mcp

import (
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Menu generates and reads menus.
	Menu driving.MenuService

	// Profile exposes the user's nutrition profile.
	Profile driving.ProfileService

	// Catalog lists foods.
	Catalog driving.CatalogService

	// Portion sizes portions.
	Portion driving.PortionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Menu == nil {
		return ErrMissingMenuService
	}
	// The remaining ports only gate their own tools and resources.
	return nil
}
