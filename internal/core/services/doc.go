// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// MenuService is the entry point for menu generation; the numeric work is
// delegated to the planner package so it can be tested without stores.
package services
