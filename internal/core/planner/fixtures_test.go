package planner

import "github.com/custodia-labs/menugen/internal/core/domain"

var allFree = []string{"vegan", "vegetarian", "gluten-free", "dairy-free", "nut-free"}

func food(id int64, name string, cat domain.FoodCategory, cal, protein, carbs, fat float64, tags ...string) domain.Food {
	return domain.Food{
		ID:                  id,
		Name:                name,
		Category:            cat,
		CaloriesPer100g:     cal,
		ProteinPer100g:      protein,
		CarbsPer100g:        carbs,
		FatPer100g:          fat,
		Tags:                tags,
		DefaultServingGrams: domain.DefaultServingGrams,
	}
}

// testCatalog is deliberately not in alphabetical order.
func testCatalog() []domain.Food {
	return []domain.Food{
		food(1, "Salmon", domain.CategoryProtein, 208, 20, 0, 13, "gluten-free", "dairy-free", "nut-free"),
		food(2, "Chicken Breast", domain.CategoryProtein, 165, 31, 0, 3.6, "gluten-free", "dairy-free", "halal", "nut-free"),
		food(3, "Greek Yogurt", domain.CategoryProtein, 59, 10, 3.6, 0.4, "vegetarian", "gluten-free", "nut-free"),
		food(4, "Eggs", domain.CategoryProtein, 155, 13, 1.1, 11, "vegetarian", "gluten-free", "dairy-free", "nut-free"),
		food(5, "Oats", domain.CategoryCarb, 389, 16.9, 66.3, 6.9, "vegan", "vegetarian", "dairy-free", "nut-free"),
		food(6, "Brown Rice", domain.CategoryCarb, 112, 2.6, 23.5, 0.9, allFree...),
		food(7, "Sweet Potato", domain.CategoryCarb, 86, 1.6, 20, 0.1, allFree...),
		food(8, "Whole Wheat Pasta", domain.CategoryCarb, 124, 5.3, 26.5, 0.5, "vegan", "vegetarian", "dairy-free", "nut-free"),
		food(9, "Olive Oil", domain.CategoryFat, 884, 0, 0, 100, allFree...),
		food(10, "Almonds", domain.CategoryFat, 579, 21, 22, 50, "vegan", "vegetarian", "gluten-free", "dairy-free"),
		food(11, "Avocado", domain.CategoryFat, 160, 2, 8.5, 14.7, allFree...),
		food(12, "Spinach", domain.CategoryVegetable, 23, 2.9, 3.6, 0.4, allFree...),
		food(13, "Broccoli", domain.CategoryVegetable, 34, 2.8, 7, 0.4, allFree...),
		food(14, "Carrot", domain.CategoryVegetable, 41, 0.9, 10, 0.2, allFree...),
		food(15, "Banana", domain.CategoryFruit, 89, 1.1, 22.8, 0.3, allFree...),
		food(16, "Apple", domain.CategoryFruit, 52, 0.3, 14, 0.2, allFree...),
		food(17, "Blueberries", domain.CategoryFruit, 57, 0.7, 14.5, 0.3, allFree...),
		food(18, "Lentils", domain.CategoryMixed, 116, 9, 20, 0.4, allFree...),
		food(19, "Chili Con Carne", domain.CategoryMixed, 130, 12, 10, 6, "gluten-free", "dairy-free", "nut-free"),
	}
}

func byName(t interface{ Fatalf(string, ...any) }, name string) domain.Food {
	for _, f := range testCatalog() {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no fixture food %q", name)
	return domain.Food{}
}

func names(foods []domain.Food) []string {
	out := make([]string, len(foods))
	for i := range foods {
		out[i] = foods[i].Name
	}
	return out
}

var dayTarget = domain.MacroVector{Calories: 2000, Protein: 150, Carbs: 200, Fat: 70}
