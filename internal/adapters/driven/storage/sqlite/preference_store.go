package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// ==================== Preference Store ====================

// preferenceStore implements driven.PreferenceStore.
type preferenceStore struct {
	store *Store
}

var _ driven.PreferenceStore = (*preferenceStore)(nil)

// Set stores or replaces a preference.
func (s *preferenceStore) Set(ctx context.Context, userID string, pref domain.FoodPreference) error {
	name := strings.TrimSpace(pref.FoodName)
	if userID == "" || name == "" {
		return domain.ErrInvalidInput
	}
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO food_preferences (user_id, food_name, food_key, liked, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, food_key) DO UPDATE SET
			food_name = excluded.food_name,
			liked = excluded.liked,
			updated_at = excluded.updated_at
	`, userID, name, domain.NormalizeName(name), boolToInt(pref.Liked), formatTime(pref.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving preference: %w", err)
	}
	return nil
}

// Delete removes the preference for foodName.
func (s *preferenceStore) Delete(ctx context.Context, userID, foodName string) error {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM food_preferences WHERE user_id = ? AND food_key = ?",
		userID, domain.NormalizeName(foodName))
	if err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all of a user's preferences ordered by food name.
func (s *preferenceStore) List(ctx context.Context, userID string) ([]domain.FoodPreference, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT food_name, liked, updated_at FROM food_preferences
		WHERE user_id = ? ORDER BY food_key
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.FoodPreference //nolint:prealloc // size unknown from query
	for rows.Next() {
		var pref domain.FoodPreference
		var liked int
		var updatedAt string
		if err := rows.Scan(&pref.FoodName, &liked, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		pref.Liked = liked == 1
		pref.UpdatedAt = parseTime(updatedAt)
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating preferences: %w", err)
	}
	return prefs, nil
}
