// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - FoodStore: Food catalog persistence
//   - ProfileStore: Nutrition profile persistence
//   - PreferenceStore: Liked and disliked foods per user
//   - MenuStore: Generated menu persistence, one menu per user and date
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CatalogSource: Reads foods from outside the store (TOML files, the
//     embedded starter catalog). Without it, catalog import is disabled.
//   - SchedulerStore: Pre-generation task state and run history. Without it,
//     the scheduler reports domain.ErrNotImplemented.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
