// Package sqlite provides a unified SQLite-based implementation of the menugen
// store interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. One database connection pool backs every store:
//
//   - FoodStore: the food catalog
//   - ProfileStore: nutrition profiles and daily targets
//   - PreferenceStore: liked and disliked foods
//   - MenuStore: generated menus and their items
//   - SchedulerStore: menu pre-generation state and history
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Each migration is a pair of NNN_name.up.sql and NNN_name.down.sql
// files; applied versions are recorded in schema_migrations.
//
// A menu is unique per (user_id, date). Concurrent attempts to create the same
// menu fail on that constraint and surface as domain.ErrAlreadyExists.
//
// # Data Location
//
// By default, the database is stored at ~/.menugen/data/menugen.db
package sqlite
