package driving

import "github.com/custodia-labs/menugen/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and stores one setting by key.
	Set(key, value string) error

	// Keys returns the settable keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
