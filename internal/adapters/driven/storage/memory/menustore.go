package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// Ensure MenuStore implements the interface.
var _ driven.MenuStore = (*MenuStore)(nil)

type menuKey struct {
	userID string
	date   string
}

// MenuStore is an in-memory implementation of driven.MenuStore.
type MenuStore struct {
	mu    sync.RWMutex
	menus map[menuKey]domain.StoredMenu
}

// NewMenuStore creates a new in-memory menu store.
func NewMenuStore() *MenuStore {
	return &MenuStore{
		menus: make(map[menuKey]domain.StoredMenu),
	}
}

func keyFor(userID string, date time.Time) menuKey {
	return menuKey{userID: userID, date: domain.FormatDate(date)}
}

// Create stores a new menu. A second menu for the same user and date
// returns domain.ErrAlreadyExists.
func (s *MenuStore) Create(_ context.Context, menu *domain.StoredMenu) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := keyFor(menu.UserID, menu.Date)
	if _, exists := s.menus[key]; exists {
		return domain.ErrAlreadyExists
	}
	s.menus[key] = cloneMenu(*menu)
	return nil
}

// Replace overwrites the user's menu for the menu's date.
func (s *MenuStore) Replace(_ context.Context, menu *domain.StoredMenu) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus[keyFor(menu.UserID, menu.Date)] = cloneMenu(*menu)
	return nil
}

// FindByDate returns the user's menu for date.
func (s *MenuStore) FindByDate(_ context.Context, userID string, date time.Time) (*domain.StoredMenu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	menu, ok := s.menus[keyFor(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	menu = cloneMenu(menu)
	sort.SliceStable(menu.Items, func(i, j int) bool { return menu.Items[i].Position < menu.Items[j].Position })
	return &menu, nil
}

// Delete removes the user's menu for date.
func (s *MenuStore) Delete(_ context.Context, userID string, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := keyFor(userID, date)
	if _, ok := s.menus[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.menus, key)
	return nil
}

// List returns summaries of the user's menus, newest first.
func (s *MenuStore) List(_ context.Context, userID string) ([]domain.MenuSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.MenuSummary, 0)
	for key, menu := range s.menus {
		if key.userID != userID {
			continue
		}
		result = append(result, domain.MenuSummary{
			ID:        menu.ID,
			Date:      key.date,
			Totals:    menu.Totals,
			ItemCount: len(menu.Items),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

// Count returns the number of stored menus.
func (s *MenuStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.menus)
}

func cloneMenu(m domain.StoredMenu) domain.StoredMenu {
	m.Items = append([]domain.StoredMenuItem(nil), m.Items...)
	return m
}
