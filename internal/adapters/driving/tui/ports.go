// Package tui provides an interactive terminal viewer for daily menus.
// It is a driving adapter: all data flows through the driving ports.
package tui

import (
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Menu generates and reads menus. Required.
	Menu driving.MenuService

	// Profile supplies the daily targets shown against each menu.
	Profile driving.ProfileService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(menu driving.MenuService, profile driving.ProfileService) *Ports {
	return &Ports{Menu: menu, Profile: profile}
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Menu == nil {
		return ErrMissingMenuService
	}
	return nil
}
