package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// Ensure FoodStore implements the interface.
var _ driven.FoodStore = (*FoodStore)(nil)

// FoodStore is an in-memory implementation of driven.FoodStore.
type FoodStore struct {
	mu     sync.RWMutex
	nextID int64
	foods  map[int64]domain.Food
	byName map[string]int64
}

// NewFoodStore creates a new in-memory food store.
func NewFoodStore() *FoodStore {
	return &FoodStore{
		foods:  make(map[int64]domain.Food),
		byName: make(map[string]int64),
	}
}

// Save inserts a food or replaces the entry with the same name.
func (s *FoodStore) Save(_ context.Context, food *domain.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := food.Key()
	if id, ok := s.byName[key]; ok {
		food.ID = id
	} else {
		s.nextID++
		food.ID = s.nextID
	}
	s.foods[food.ID] = cloneFood(*food)
	s.byName[key] = food.ID
	return nil
}

// Get retrieves a food by ID.
func (s *FoodStore) Get(_ context.Context, id int64) (*domain.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	food, ok := s.foods[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	food = cloneFood(food)
	return &food, nil
}

// GetByName retrieves a food by case-insensitive name.
func (s *FoodStore) GetByName(ctx context.Context, name string) (*domain.Food, error) {
	s.mu.RLock()
	id, ok := s.byName[domain.NormalizeName(name)]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.Get(ctx, id)
}

// List returns every food.
func (s *FoodStore) List(_ context.Context) ([]domain.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Food, 0, len(s.foods))
	for _, food := range s.foods {
		result = append(result, cloneFood(food))
	}
	return result, nil
}

// Delete removes a food by ID.
func (s *FoodStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	food, ok := s.foods[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(s.byName, food.Key())
	delete(s.foods, id)
	return nil
}

func cloneFood(f domain.Food) domain.Food {
	f.Tags = append([]string(nil), f.Tags...)
	return f
}
