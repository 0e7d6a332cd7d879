package planner

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// FoodSelector filters a catalog by a user's dislikes and dietary
// restrictions, orders each bucket, and hands out foods without repeating
// one until the bucket is exhausted.
//
// A FoodSelector belongs to exactly one generation run.
type FoodSelector struct {
	liked        map[string]struct{}
	disliked     map[string]struct{}
	restrictions []string
	collator     *collate.Collator

	categorized domain.CategorizedFoods
	used        map[string]struct{}
}

// NewFoodSelector builds a selector from a preference list and a set of
// dietary restrictions. Restrictions are mapped to their canonical tags.
func NewFoodSelector(prefs []domain.FoodPreference, restrictions []string) *FoodSelector {
	s := &FoodSelector{
		liked:        make(map[string]struct{}),
		disliked:     make(map[string]struct{}),
		restrictions: make([]string, 0, len(restrictions)),
		collator:     collate.New(language.Und),
		categorized:  make(domain.CategorizedFoods),
		used:         make(map[string]struct{}),
	}
	for _, p := range prefs {
		key := domain.NormalizeName(p.FoodName)
		if p.Liked {
			s.liked[key] = struct{}{}
		} else {
			s.disliked[key] = struct{}{}
		}
	}
	for _, r := range restrictions {
		s.restrictions = append(s.restrictions, domain.CanonicalRestriction(r))
	}
	return s
}

// IsLiked reports whether the user explicitly liked the food.
func (s *FoodSelector) IsLiked(f *domain.Food) bool {
	_, ok := s.liked[f.Key()]
	return ok
}

// Allows reports whether the food survives dislike and restriction filtering.
// Every restriction must appear among the food's tags.
func (s *FoodSelector) Allows(f *domain.Food) bool {
	if _, ok := s.disliked[f.Key()]; ok {
		return false
	}
	for _, r := range s.restrictions {
		if !f.HasTag(r) {
			return false
		}
	}
	return true
}

// Categorize filters the catalog, routes each survivor into its bucket and
// orders every bucket liked-first, then alphabetically. Catalog order is
// irrelevant. The result is kept for SelectFood.
func (s *FoodSelector) Categorize(catalog []domain.Food) domain.CategorizedFoods {
	categorized := make(domain.CategorizedFoods, len(domain.Buckets()))
	for _, b := range domain.Buckets() {
		categorized[b] = []domain.Food{}
	}

	for i := range catalog {
		f := catalog[i]
		if !s.Allows(&f) {
			continue
		}
		b, ok := domain.BucketFor(&f)
		if !ok {
			continue
		}
		categorized[b] = append(categorized[b], f)
	}

	for b := range categorized {
		s.sortBucket(categorized[b])
	}

	s.categorized = categorized
	return categorized
}

// Categorized returns the buckets from the last Categorize call.
func (s *FoodSelector) Categorized() domain.CategorizedFoods {
	return s.categorized
}

func (s *FoodSelector) sortBucket(foods []domain.Food) {
	sort.SliceStable(foods, func(i, j int) bool {
		li, lj := s.IsLiked(&foods[i]), s.IsLiked(&foods[j])
		if li != lj {
			return li
		}
		return s.collator.CompareString(foods[i].Name, foods[j].Name) < 0
	})
}

// SelectFood returns the first unused food in bucket b and marks it used.
// Once every food has been used it repeats the first liked food, and
// failing that the first food. The second return is false only when the
// bucket is empty.
func (s *FoodSelector) SelectFood(b domain.Bucket) (domain.Food, bool) {
	foods := s.categorized[b]
	for i := range foods {
		key := foods[i].Key()
		if _, used := s.used[key]; !used {
			s.used[key] = struct{}{}
			return foods[i], true
		}
	}
	for i := range foods {
		if s.IsLiked(&foods[i]) {
			return foods[i], true
		}
	}
	if len(foods) > 0 {
		return foods[0], true
	}
	return domain.Food{}, false
}

// Reset clears the used set. Call once at the start of a run.
func (s *FoodSelector) Reset() {
	s.used = make(map[string]struct{})
}
