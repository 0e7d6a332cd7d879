package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
	"github.com/custodia-labs/menugen/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the food catalog.
type CatalogService struct {
	foodStore driven.FoodStore
	seed      driven.CatalogSource
}

// NewCatalogService creates a new catalog service. seed may be nil, in
// which case Seed returns domain.ErrNotImplemented.
func NewCatalogService(foodStore driven.FoodStore, seed driven.CatalogSource) *CatalogService {
	return &CatalogService{foodStore: foodStore, seed: seed}
}

// List returns every food sorted by category, then name.
func (s *CatalogService) List(ctx context.Context) ([]domain.Food, error) {
	if s.foodStore == nil {
		return nil, domain.ErrNotImplemented
	}
	foods, err := s.foodStore.List(ctx)
	if err != nil {
		return nil, err
	}

	rank := make(map[domain.FoodCategory]int)
	for i, c := range domain.FoodCategories() {
		rank[c] = i
	}
	sort.SliceStable(foods, func(i, j int) bool {
		if foods[i].Category != foods[j].Category {
			return rank[foods[i].Category] < rank[foods[j].Category]
		}
		return foods[i].Key() < foods[j].Key()
	})
	return foods, nil
}

// Get returns a food by case-insensitive name.
func (s *CatalogService) Get(ctx context.Context, name string) (*domain.Food, error) {
	if s.foodStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.foodStore.GetByName(ctx, name)
}

// Import validates every food first and writes nothing if any is invalid.
// Foods are then upserted by name.
func (s *CatalogService) Import(ctx context.Context, foods []domain.Food) (*domain.ImportResult, error) {
	if s.foodStore == nil {
		return nil, domain.ErrNotImplemented
	}

	var errs domain.ValidationErrors
	seen := make(map[string]int, len(foods))
	for i := range foods {
		normalizeFood(&foods[i])
		if err := foods[i].Validate(); err != nil {
			var fieldErrs domain.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					errs.Add(fmt.Sprintf("foods[%d].%s", i, fe.Field), fe.Message)
				}
			}
			continue
		}
		if prev, dup := seen[foods[i].Key()]; dup {
			errs.Add(fmt.Sprintf("foods[%d].name", i), fmt.Sprintf("duplicates foods[%d]", prev))
			continue
		}
		seen[foods[i].Key()] = i
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{}
	for i := range foods {
		_, err := s.foodStore.GetByName(ctx, foods[i].Name)
		switch {
		case err == nil:
			result.Updated++
		case errors.Is(err, domain.ErrNotFound):
			result.Created++
		default:
			return nil, fmt.Errorf("lookup food %q: %w", foods[i].Name, err)
		}
		if err := s.foodStore.Save(ctx, &foods[i]); err != nil {
			return nil, fmt.Errorf("save food %q: %w", foods[i].Name, err)
		}
	}
	logger.Info("Imported %d foods (%d new, %d updated)", result.Total(), result.Created, result.Updated)
	return result, nil
}

// Seed imports the built-in starter catalog.
func (s *CatalogService) Seed(ctx context.Context) (*domain.ImportResult, error) {
	if s.seed == nil {
		return nil, domain.ErrNotImplemented
	}
	foods, err := s.seed.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.seed.Name(), err)
	}
	result, err := s.Import(ctx, foods)
	if err != nil {
		return nil, err
	}
	result.Source = s.seed.Name()
	return result, nil
}

// normalizeFood trims names and tags and fills the default serving size.
func normalizeFood(f *domain.Food) {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = domain.FoodCategory(strings.ToLower(strings.TrimSpace(string(f.Category))))
	tags := make([]string, 0, len(f.Tags))
	for _, t := range f.Tags {
		if t = domain.NormalizeName(t); t != "" {
			tags = append(tags, t)
		}
	}
	f.Tags = tags
	if f.DefaultServingGrams == 0 {
		f.DefaultServingGrams = domain.DefaultServingGrams
	}
}
