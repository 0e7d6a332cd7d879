// Package tomlfile loads catalog foods from TOML documents.
//
// A catalog file is a list of [[food]] tables:
//
//	[[food]]
//	name = "Chicken Breast"
//	category = "protein"
//	calories_per_100g = 165
//	protein_per_100g = 31
//	carbs_per_100g = 0
//	fat_per_100g = 3.6
//	tags = ["gluten-free", "dairy-free"]
//
// A starter catalog is embedded in the binary and served by NewEmbeddedSource.
// Watcher reports changes to a catalog file so it can be re-imported.
package tomlfile
