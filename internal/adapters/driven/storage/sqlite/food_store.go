package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// ==================== Food Store ====================

// foodStore implements driven.FoodStore.
type foodStore struct {
	store *Store
}

var _ driven.FoodStore = (*foodStore)(nil)

const foodColumns = `id, name, category, calories_per_100g, protein_per_100g, carbs_per_100g,
	fat_per_100g, fiber_per_100g, tags, default_serving_grams, density_factor`

// Save inserts a food or updates the entry with the same name.
func (s *foodStore) Save(ctx context.Context, food *domain.Food) error {
	if food == nil {
		return domain.ErrInvalidInput
	}

	tags := food.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	serving := food.DefaultServingGrams
	if serving == 0 {
		serving = domain.DefaultServingGrams
	}

	now := formatTime(time.Now())
	row := s.store.db.QueryRowContext(ctx, `
		INSERT INTO foods (name, name_key, category, calories_per_100g, protein_per_100g, carbs_per_100g,
			fat_per_100g, fiber_per_100g, tags, default_serving_grams, density_factor, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name_key) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			calories_per_100g = excluded.calories_per_100g,
			protein_per_100g = excluded.protein_per_100g,
			carbs_per_100g = excluded.carbs_per_100g,
			fat_per_100g = excluded.fat_per_100g,
			fiber_per_100g = excluded.fiber_per_100g,
			tags = excluded.tags,
			default_serving_grams = excluded.default_serving_grams,
			density_factor = excluded.density_factor,
			updated_at = excluded.created_at
		RETURNING id
	`, strings.TrimSpace(food.Name), domain.NormalizeName(food.Name), string(food.Category),
		food.CaloriesPer100g, food.ProteinPer100g, food.CarbsPer100g, food.FatPer100g,
		nullFloat(food.FiberPer100g), string(tagsJSON), serving, nullFloat(food.DensityFactor), now)

	var id int64
	if err := row.Scan(&id); err != nil {
		return fmt.Errorf("saving food: %w", err)
	}
	food.ID = id
	food.DefaultServingGrams = serving
	return nil
}

// Get retrieves a food by ID.
func (s *foodStore) Get(ctx context.Context, id int64) (*domain.Food, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM foods WHERE id = ?", id)
	return scanFood(row)
}

// GetByName retrieves a food by case-insensitive name.
func (s *foodStore) GetByName(ctx context.Context, name string) (*domain.Food, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE name_key = ?", domain.NormalizeName(name))
	return scanFood(row)
}

// List returns every food ordered by ID.
func (s *foodStore) List(ctx context.Context) ([]domain.Food, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT "+foodColumns+" FROM foods ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying foods: %w", err)
	}
	defer rows.Close()

	var foods []domain.Food //nolint:prealloc // size unknown from query
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, *food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating foods: %w", err)
	}
	return foods, nil
}

// Delete removes a food by ID. Foods referenced by a stored menu cannot be
// removed and yield domain.ErrInvalidInput.
func (s *foodStore) Delete(ctx context.Context, id int64) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM foods WHERE id = ?", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("food %d is used by a stored menu: %w", id, domain.ErrInvalidInput)
		}
		return fmt.Errorf("deleting food: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting food: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanFood scans a row selected with foodColumns.
func scanFood(row rowScanner) (*domain.Food, error) {
	var food domain.Food
	var category, tagsJSON string
	var fiber, density sql.NullFloat64

	if err := row.Scan(&food.ID, &food.Name, &category,
		&food.CaloriesPer100g, &food.ProteinPer100g, &food.CarbsPer100g, &food.FatPer100g,
		&fiber, &tagsJSON, &food.DefaultServingGrams, &density); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning food: %w", err)
	}

	food.Category = domain.FoodCategory(category)
	food.FiberPer100g = floatPtr(fiber)
	food.DensityFactor = floatPtr(density)
	if err := json.Unmarshal([]byte(tagsJSON), &food.Tags); err != nil {
		return nil, fmt.Errorf("unmarshalling tags: %w", err)
	}
	return &food, nil
}
