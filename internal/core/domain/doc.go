// Package domain defines the core business entities for menugen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Food: A read-only catalog entry with per-100g macro values
//   - MacroVector: Calories, protein, carbs and fat as one quantity
//   - Meal and MealItem: Portions of food grouped by meal type
//   - GeneratedMenu: A day of meals for one user and one date
//   - NutritionProfile: A user's body metrics and daily targets
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
