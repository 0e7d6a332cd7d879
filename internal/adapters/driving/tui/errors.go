package tui

import "errors"

// ErrMissingMenuService is returned when the menu service is not provided.
var ErrMissingMenuService = errors.New("tui: menu service is required")

// ErrInvalidPorts is returned when no ports are given at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
