package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyUserID       = "user.id"
	keyDataDir      = "storage.data_dir"
	keyMCPPort      = "mcp.port"
	keyMCPRate      = "mcp.requests_per_second"
	keyMCPBurst     = "mcp.burst"
	keyOutputFormat = "output.format"
	keyLogVerbose   = "log.verbose"

	keySchedulerEnabled   = "scheduler.enabled"
	keySchedulerInterval  = "scheduler.interval"
	keySchedulerLookahead = "scheduler.lookahead_days"
)

// maxLookaheadDays bounds how far ahead the scheduler generates.
const maxLookaheadDays = 31

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		User: domain.UserSettings{
			ID: s.getString(keyUserID, defaults.User.ID),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyDataDir), // Empty means the store's default
		},
		MCP: domain.MCPSettings{
			Port:              s.getInt(keyMCPPort, defaults.MCP.Port),
			RequestsPerSecond: s.getFloat(keyMCPRate, defaults.MCP.RequestsPerSecond),
			Burst:             s.getInt(keyMCPBurst, defaults.MCP.Burst),
		},
		Output: domain.OutputSettings{
			Format: s.getOutputFormat(defaults.Output.Format),
		},
		Log: domain.LogSettings{
			Verbose: s.getBool(keyLogVerbose, defaults.Log.Verbose),
		},
		Scheduler: domain.SchedulerSettings{
			Enabled:       s.getBool(keySchedulerEnabled, defaults.Scheduler.Enabled),
			Interval:      s.getDuration(keySchedulerInterval, defaults.Scheduler.Interval),
			LookaheadDays: s.getInt(keySchedulerLookahead, defaults.Scheduler.LookaheadDays),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Set(keyUserID, settings.User.ID); err != nil {
		return fmt.Errorf("save user id: %w", err)
	}
	if err := s.configStore.Set(keyDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	if err := s.configStore.Set(keyMCPPort, settings.MCP.Port); err != nil {
		return fmt.Errorf("save mcp port: %w", err)
	}
	if err := s.configStore.Set(keyMCPRate, settings.MCP.RequestsPerSecond); err != nil {
		return fmt.Errorf("save mcp rate: %w", err)
	}
	if err := s.configStore.Set(keyMCPBurst, settings.MCP.Burst); err != nil {
		return fmt.Errorf("save mcp burst: %w", err)
	}
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyLogVerbose, settings.Log.Verbose); err != nil {
		return fmt.Errorf("save log verbose: %w", err)
	}
	if err := s.configStore.Set(keySchedulerEnabled, settings.Scheduler.Enabled); err != nil {
		return fmt.Errorf("save scheduler enabled: %w", err)
	}
	if err := s.configStore.Set(keySchedulerInterval, settings.Scheduler.Interval.String()); err != nil {
		return fmt.Errorf("save scheduler interval: %w", err)
	}
	if err := s.configStore.Set(keySchedulerLookahead, settings.Scheduler.LookaheadDays); err != nil {
		return fmt.Errorf("save scheduler lookahead: %w", err)
	}
	return nil
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keyUserID, keyDataDir,
		keyMCPPort, keyMCPRate, keyMCPBurst,
		keyOutputFormat, keyLogVerbose,
		keySchedulerEnabled, keySchedulerInterval, keySchedulerLookahead,
	}
}

// Set parses and stores one setting by key.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyUserID:
		if value == "" {
			return &domain.ValidationError{Field: key, Message: "must not be empty"}
		}
		parsed = value
	case keyDataDir:
		parsed = value
	case keyMCPPort, keyMCPBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || (key == keyMCPPort && n > 65535) {
			return &domain.ValidationError{Field: key, Message: "must be a non-negative integer"}
		}
		parsed = n
	case keyMCPRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return &domain.ValidationError{Field: key, Message: "must be a positive number"}
		}
		parsed = f
	case keyOutputFormat:
		format := domain.OutputFormat(strings.ToLower(value))
		if !format.IsValid() {
			return &domain.ValidationError{Field: key, Message: "must be table or json"}
		}
		parsed = format.String()
	case keySchedulerInterval:
		d, err := time.ParseDuration(value)
		if err != nil || d < time.Minute {
			return &domain.ValidationError{Field: key, Message: "must be a duration of at least 1m"}
		}
		parsed = d.String()
	case keySchedulerLookahead:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > maxLookaheadDays {
			return &domain.ValidationError{Field: key, Message: fmt.Sprintf("must be between 1 and %d", maxLookaheadDays)}
		}
		parsed = n
	case keyLogVerbose, keySchedulerEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &domain.ValidationError{Field: key, Message: "must be true or false"}
		}
		parsed = b
	default:
		return &domain.ValidationError{Field: key, Message: "unknown setting"}
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s.configStore.GetString(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
