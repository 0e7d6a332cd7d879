package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

func TestFoodSelector_Categorize_Ordering(t *testing.T) {
	s := NewFoodSelector(nil, nil)
	c := s.Categorize(testCatalog())

	assert.Equal(t, []string{"Chicken Breast", "Chili Con Carne", "Eggs", "Greek Yogurt", "Salmon"}, names(c[domain.BucketProteins]))
	assert.Equal(t, []string{"Brown Rice", "Lentils", "Oats", "Sweet Potato", "Whole Wheat Pasta"}, names(c[domain.BucketCarbs]))
	assert.Equal(t, []string{"Almonds", "Avocado", "Olive Oil"}, names(c[domain.BucketFats]))
	assert.Equal(t, []string{"Broccoli", "Carrot", "Spinach"}, names(c[domain.BucketVegetables]))
	assert.Equal(t, []string{"Apple", "Banana", "Blueberries"}, names(c[domain.BucketFruits]))
}

func TestFoodSelector_Categorize_LikedFirst(t *testing.T) {
	prefs := []domain.FoodPreference{
		{FoodName: "salmon", Liked: true},
		{FoodName: "EGGS", Liked: true},
		{FoodName: "Broccoli", Liked: false},
	}
	s := NewFoodSelector(prefs, []string{"Gluten-Free"})
	c := s.Categorize(testCatalog())

	assert.Equal(t, []string{"Eggs", "Salmon", "Chicken Breast", "Chili Con Carne", "Greek Yogurt"}, names(c[domain.BucketProteins]))
	assert.Equal(t, []string{"Brown Rice", "Lentils", "Sweet Potato"}, names(c[domain.BucketCarbs]))
	assert.Equal(t, []string{"Carrot", "Spinach"}, names(c[domain.BucketVegetables]))
}

func TestFoodSelector_Categorize_Disjoint(t *testing.T) {
	s := NewFoodSelector(nil, nil)
	c := s.Categorize(testCatalog())

	seen := make(map[string]domain.Bucket)
	for _, b := range domain.Buckets() {
		for _, f := range c[b] {
			prev, dup := seen[f.Name]
			require.False(t, dup, "%s in both %s and %s", f.Name, prev, b)
			seen[f.Name] = b
		}
	}
	assert.Len(t, seen, len(testCatalog()))
	assert.Equal(t, domain.BucketCarbs, seen["Lentils"])
	assert.Equal(t, domain.BucketProteins, seen["Chili Con Carne"])
}

func TestFoodSelector_Categorize_IgnoresCatalogOrder(t *testing.T) {
	catalog := testCatalog()
	reversed := make([]domain.Food, len(catalog))
	for i := range catalog {
		reversed[len(catalog)-1-i] = catalog[i]
	}

	a := NewFoodSelector(nil, nil).Categorize(catalog)
	b := NewFoodSelector(nil, nil).Categorize(reversed)
	assert.Equal(t, a, b)
}

func TestFoodSelector_Restrictions(t *testing.T) {
	t.Run("vegan leaves no proteins", func(t *testing.T) {
		c := NewFoodSelector(nil, []string{"vegan"}).Categorize(testCatalog())
		assert.Empty(t, c[domain.BucketProteins])
		assert.NotEmpty(t, c[domain.BucketCarbs])
	})

	t.Run("restrictions are conjunctive", func(t *testing.T) {
		c := NewFoodSelector(nil, []string{"vegetarian", "dairy-free"}).Categorize(testCatalog())
		assert.Equal(t, []string{"Eggs"}, names(c[domain.BucketProteins]))
	})

	t.Run("synonym maps to canonical tag", func(t *testing.T) {
		c := NewFoodSelector(nil, []string{"lactose-free"}).Categorize(testCatalog())
		assert.NotContains(t, names(c[domain.BucketProteins]), "Greek Yogurt")
		assert.Contains(t, names(c[domain.BucketProteins]), "Eggs")
	})
}

func TestFoodSelector_Allows(t *testing.T) {
	s := NewFoodSelector([]domain.FoodPreference{{FoodName: "Broccoli", Liked: false}}, []string{"halal"})

	broccoli := byName(t, "Broccoli")
	chicken := byName(t, "Chicken Breast")
	salmon := byName(t, "Salmon")

	assert.False(t, s.Allows(&broccoli))
	assert.True(t, s.Allows(&chicken))
	assert.False(t, s.Allows(&salmon))
}

func TestFoodSelector_SelectFood_NoRepeatUntilExhausted(t *testing.T) {
	s := NewFoodSelector(nil, nil)
	c := s.Categorize(testCatalog())

	n := c.Len(domain.BucketProteins)
	seen := make(map[int64]bool)
	for i := 0; i < n; i++ {
		f, ok := s.SelectFood(domain.BucketProteins)
		require.True(t, ok)
		assert.False(t, seen[f.ID], "repeated %s", f.Name)
		seen[f.ID] = true
	}
	assert.Len(t, seen, n)
}

func TestFoodSelector_SelectFood_Fallbacks(t *testing.T) {
	t.Run("repeats first liked food", func(t *testing.T) {
		s := NewFoodSelector([]domain.FoodPreference{{FoodName: "Banana", Liked: true}}, nil)
		s.Categorize(testCatalog())

		for i := 0; i < 3; i++ {
			_, ok := s.SelectFood(domain.BucketFruits)
			require.True(t, ok)
		}
		f, ok := s.SelectFood(domain.BucketFruits)
		require.True(t, ok)
		assert.Equal(t, "Banana", f.Name)
	})

	t.Run("repeats first food when none liked", func(t *testing.T) {
		s := NewFoodSelector(nil, nil)
		s.Categorize(testCatalog())

		for i := 0; i < 3; i++ {
			s.SelectFood(domain.BucketFats)
		}
		f, ok := s.SelectFood(domain.BucketFats)
		require.True(t, ok)
		assert.Equal(t, "Almonds", f.Name)
	})

	t.Run("empty bucket", func(t *testing.T) {
		s := NewFoodSelector(nil, []string{"vegan"})
		s.Categorize(testCatalog())

		_, ok := s.SelectFood(domain.BucketProteins)
		assert.False(t, ok)
	})

	t.Run("before categorize", func(t *testing.T) {
		s := NewFoodSelector(nil, nil)
		_, ok := s.SelectFood(domain.BucketCarbs)
		assert.False(t, ok)
	})
}

func TestFoodSelector_Reset(t *testing.T) {
	s := NewFoodSelector(nil, nil)
	s.Categorize(testCatalog())

	first, _ := s.SelectFood(domain.BucketVegetables)
	second, _ := s.SelectFood(domain.BucketVegetables)
	assert.NotEqual(t, first.Name, second.Name)

	s.Reset()
	again, _ := s.SelectFood(domain.BucketVegetables)
	assert.Equal(t, first.Name, again.Name)
}

func TestFoodSelector_Categorized_ReturnsLastResult(t *testing.T) {
	prefs := []domain.FoodPreference{{FoodName: "Apple", Liked: false}}
	s := NewFoodSelector(prefs, nil)
	c := s.Categorize(testCatalog())

	assert.NotContains(t, names(c[domain.BucketFruits]), "Apple")
	assert.Equal(t, c, s.Categorized())
}
