package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// ==================== Menu Store ====================

// menuStore implements driven.MenuStore.
type menuStore struct {
	store *Store
}

var _ driven.MenuStore = (*menuStore)(nil)

// Create writes the menu row and its items in one transaction. The
// (user_id, date) unique constraint turns a concurrent duplicate into
// domain.ErrAlreadyExists.
func (s *menuStore) Create(ctx context.Context, menu *domain.StoredMenu) error {
	if menu == nil || menu.ID == "" || menu.UserID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := insertMenu(ctx, tx, menu); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing menu: %w", err)
	}
	return nil
}

// Replace deletes the user's menu for the date and inserts menu in the same
// transaction, so a failed insert leaves the previous menu in place.
func (s *menuStore) Replace(ctx context.Context, menu *domain.StoredMenu) error {
	if menu == nil || menu.ID == "" || menu.UserID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM menus WHERE user_id = ? AND date = ?", menu.UserID, domain.FormatDate(menu.Date)); err != nil {
		return fmt.Errorf("deleting menu: %w", err)
	}
	if err := insertMenu(ctx, tx, menu); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing menu: %w", err)
	}
	return nil
}

func insertMenu(ctx context.Context, tx *sql.Tx, menu *domain.StoredMenu) error {
	createdAt := menu.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO menus (id, user_id, date, total_calories, protein_total, carbs_total, fat_total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, menu.ID, menu.UserID, domain.FormatDate(menu.Date),
		menu.Totals.Calories, menu.Totals.Protein, menu.Totals.Carbs, menu.Totals.Fat,
		formatTime(createdAt))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("inserting menu: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO menu_items (menu_id, food_id, grams, meal_type, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing menu items: %w", err)
	}
	defer stmt.Close()

	for i := range menu.Items {
		item := &menu.Items[i]
		foodID, err := resolveFoodID(ctx, tx, &item.Food)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, menu.ID, foodID, item.Grams, string(item.MealType), item.Position); err != nil {
			return fmt.Errorf("inserting menu item %d: %w", i, err)
		}
	}
	return nil
}

// resolveFoodID returns the stored ID for food, looking it up by name when
// the caller did not carry one.
func resolveFoodID(ctx context.Context, tx *sql.Tx, food *domain.Food) (int64, error) {
	if food.ID != 0 {
		return food.ID, nil
	}
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM foods WHERE name_key = ?", domain.NormalizeName(food.Name)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("food %q is not in the catalog: %w", food.Name, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("resolving food %q: %w", food.Name, err)
	}
	return id, nil
}

// FindByDate returns the user's menu for the calendar day of date.
func (s *menuStore) FindByDate(ctx context.Context, userID string, date time.Time) (*domain.StoredMenu, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, user_id, date, total_calories, protein_total, carbs_total, fat_total, created_at
		FROM menus WHERE user_id = ? AND date = ?
	`, userID, domain.FormatDate(date))

	var menu domain.StoredMenu
	var day, createdAt string
	if err := row.Scan(&menu.ID, &menu.UserID, &day,
		&menu.Totals.Calories, &menu.Totals.Protein, &menu.Totals.Carbs, &menu.Totals.Fat,
		&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning menu: %w", err)
	}

	parsed, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return nil, fmt.Errorf("parsing menu date %q: %w", day, err)
	}
	menu.Date = parsed
	menu.CreatedAt = parseTime(createdAt)

	items, err := s.items(ctx, menu.ID)
	if err != nil {
		return nil, err
	}
	menu.Items = items
	return &menu, nil
}

func (s *menuStore) items(ctx context.Context, menuID string) ([]domain.StoredMenuItem, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT i.grams, i.meal_type, i.position,
			f.id, f.name, f.category, f.calories_per_100g, f.protein_per_100g, f.carbs_per_100g,
			f.fat_per_100g, f.fiber_per_100g, f.tags, f.default_serving_grams, f.density_factor
		FROM menu_items i
		JOIN foods f ON f.id = i.food_id
		WHERE i.menu_id = ?
		ORDER BY i.position, i.id
	`, menuID)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.StoredMenuItem //nolint:prealloc // size unknown from query
	for rows.Next() {
		var item domain.StoredMenuItem
		var mealType string
		food, err := scanFood(prefixScanner{rows: rows, prefix: []any{&item.Grams, &mealType, &item.Position}})
		if err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		item.Food = *food
		item.MealType = domain.MealType(mealType)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu items: %w", err)
	}
	return items, nil
}

// prefixScanner scans leading columns into prefix before handing the rest
// to the wrapped destinations.
type prefixScanner struct {
	rows   *sql.Rows
	prefix []any
}

func (p prefixScanner) Scan(dest ...any) error {
	return p.rows.Scan(append(append([]any{}, p.prefix...), dest...)...)
}

// Delete removes the user's menu for date. Items cascade.
func (s *menuStore) Delete(ctx context.Context, userID string, date time.Time) error {
	result, err := s.store.db.ExecContext(ctx,
		"DELETE FROM menus WHERE user_id = ? AND date = ?", userID, domain.FormatDate(date))
	if err != nil {
		return fmt.Errorf("deleting menu: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting menu: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns summaries of the user's menus, newest first.
func (s *menuStore) List(ctx context.Context, userID string) ([]domain.MenuSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT m.id, m.date, m.total_calories, m.protein_total, m.carbs_total, m.fat_total, COUNT(i.id)
		FROM menus m
		LEFT JOIN menu_items i ON i.menu_id = m.id
		WHERE m.user_id = ?
		GROUP BY m.id
		ORDER BY m.date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying menus: %w", err)
	}
	defer rows.Close()

	var summaries []domain.MenuSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sum domain.MenuSummary
		if err := rows.Scan(&sum.ID, &sum.Date,
			&sum.Totals.Calories, &sum.Totals.Protein, &sum.Totals.Carbs, &sum.Totals.Fat,
			&sum.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning menu summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menus: %w", err)
	}
	return summaries, nil
}
