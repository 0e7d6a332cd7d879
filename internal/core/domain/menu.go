package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day format used for menu dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar day.
// Malformed input returns a ValidationError for the "date" field.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Message: "invalid date format, use YYYY-MM-DD"}
	}
	return t, nil
}

// FormatDate renders the calendar day of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local calendar day at midnight UTC.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GeneratedMenu is the response shape returned to callers.
type GeneratedMenu struct {
	// ID is the persisted menu identifier.
	ID string `json:"id"`

	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date"`

	// Meals holds only non-empty meals, in breakfast, lunch, dinner, snack order.
	Meals []Meal `json:"meals"`

	// Totals are the day totals recorded when the menu was created.
	Totals MacroVector `json:"totals"`
}

// Meal returns the meal of type t, or false when that meal is absent.
func (m *GeneratedMenu) Meal(t MealType) (Meal, bool) {
	for _, meal := range m.Meals {
		if meal.Type == t {
			return meal, true
		}
	}
	return Meal{}, false
}

// ItemCount returns the number of items across all meals.
func (m *GeneratedMenu) ItemCount() int {
	n := 0
	for _, meal := range m.Meals {
		n += len(meal.Items)
	}
	return n
}

// StoredMenu is a persisted menu row with its items.
type StoredMenu struct {
	// ID is the unique identifier for the menu.
	ID string

	// UserID owns the menu. At most one menu exists per user and date.
	UserID string

	// Date is the calendar day the menu is for.
	Date time.Time

	// Totals are the day totals computed at generation time.
	Totals MacroVector

	// Items are ordered by Position.
	Items []StoredMenuItem

	// CreatedAt is when the menu was persisted.
	CreatedAt time.Time
}

// StoredMenuItem is a persisted portion within a menu.
type StoredMenuItem struct {
	Food     Food
	Grams    float64
	MealType MealType

	// Position preserves build order across the whole day.
	Position int
}

// MenuSummary is a lightweight listing entry for stored menus.
type MenuSummary struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Totals    MacroVector `json:"totals"`
	ItemCount int         `json:"itemCount"`
}
