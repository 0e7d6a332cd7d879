// Package planner implements the daily-menu generation engine.
//
// The package is split by concern:
//
//   - solver.go: macro arithmetic (MacrosFor, GramsForTarget, Sum, Deviation)
//   - portion.go: category portion bounds, clamping and calorie rescaling
//   - selector.go: preference and restriction filtering, bucket ordering,
//     no-repeat food selection
//   - builder.go: per-meal slot filling and proportional convergence
//
// Everything here is free of I/O. FoodSelector and MealBuilder hold state
// for a single generation run and must not be shared between runs.
//
// # Import Rules
//
//   - Can Import: domain package, golang.org/x/text
//   - Cannot Import: ports, services, adapters
package planner
