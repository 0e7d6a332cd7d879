package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodCategory_IsValid(t *testing.T) {
	for _, c := range FoodCategories() {
		assert.True(t, c.IsValid(), c.String())
	}
	assert.False(t, FoodCategory("dessert").IsValid())
	assert.False(t, FoodCategory("").IsValid())
}

func TestFood_HasTag_CaseInsensitive(t *testing.T) {
	f := Food{Name: "Tofu", Tags: []string{"Vegan", "gluten-free"}}

	assert.True(t, f.HasTag("vegan"))
	assert.True(t, f.HasTag(" GLUTEN-FREE "))
	assert.False(t, f.HasTag("halal"))
}

func TestFood_Key(t *testing.T) {
	f := Food{Name: "  Brown Rice "}
	assert.Equal(t, "brown rice", f.Key())
}

func TestFood_Per100g(t *testing.T) {
	f := Food{CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6}
	assert.Equal(t, MacroVector{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}, f.Per100g())
}

func TestFood_Validate(t *testing.T) {
	valid := Food{Name: "Oats", Category: CategoryCarb, CaloriesPer100g: 389, DefaultServingGrams: 40}
	require.NoError(t, valid.Validate())

	bad := Food{Name: " ", Category: "snackfood", CaloriesPer100g: -1}
	err := bad.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name   string
		food   Food
		want   Bucket
		wantOK bool
	}{
		{"protein", Food{Category: CategoryProtein}, BucketProteins, true},
		{"carb", Food{Category: CategoryCarb}, BucketCarbs, true},
		{"fat", Food{Category: CategoryFat}, BucketFats, true},
		{"vegetable", Food{Category: CategoryVegetable}, BucketVegetables, true},
		{"fruit", Food{Category: CategoryFruit}, BucketFruits, true},
		{"mixed high protein", Food{Category: CategoryMixed, ProteinPer100g: 12}, BucketProteins, true},
		{"mixed at threshold", Food{Category: CategoryMixed, ProteinPer100g: 10}, BucketProteins, true},
		{"mixed low protein", Food{Category: CategoryMixed, ProteinPer100g: 9.9}, BucketCarbs, true},
		{"unknown", Food{Category: "dessert"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BucketFor(&tt.food)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBucket_String(t *testing.T) {
	assert.Equal(t, "proteins", BucketProteins.String())
	assert.Equal(t, "fruits", BucketFruits.String())
	assert.Equal(t, "unknown", Bucket(42).String())
	assert.Len(t, Buckets(), 5)
}

func TestCategorizedFoods_Counts(t *testing.T) {
	c := CategorizedFoods{
		BucketProteins: {{Name: "Chicken"}, {Name: "Tofu"}},
		BucketFruits:   {{Name: "Apple"}},
	}
	assert.Equal(t, 2, c.Len(BucketProteins))
	assert.Equal(t, 0, c.Len(BucketFats))
	assert.Equal(t, 3, c.Total())
}
