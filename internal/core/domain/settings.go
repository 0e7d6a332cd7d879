package domain

const unknownDescription = "Unknown"

// OutputFormat defines how the CLI renders menus.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatTable renders styled tables on terminals and plain text otherwise.
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSON renders the JSON response shape.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatTable, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatTable:
		return "Table (human readable)"
	case OutputFormatJSON:
		return "JSON (machine readable)"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatTable, OutputFormatJSON}
}

// UserSettings identifies whose menus the CLI works with.
type UserSettings struct {
	// ID is the user identifier used for profiles, preferences and menus.
	ID string
}

// StorageSettings locates persistent data.
type StorageSettings struct {
	// DataDir holds the sqlite database. Empty means ~/.menugen/data.
	DataDir string
}

// MCPSettings configures the MCP server.
type MCPSettings struct {
	// Port is the HTTP port for the streamable transport. Zero means stdio.
	Port int

	// RequestsPerSecond limits generate_menu calls.
	RequestsPerSecond float64

	// Burst is the limiter's bucket size.
	Burst int
}

// OutputSettings controls CLI rendering.
type OutputSettings struct {
	Format OutputFormat
}

// LogSettings controls the verbose logger.
type LogSettings struct {
	Verbose bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	User      UserSettings
	Storage   StorageSettings
	MCP       MCPSettings
	Output    OutputSettings
	Log       LogSettings
	Scheduler SchedulerSettings
}

// DefaultUserID is used until a user ID is configured.
const DefaultUserID = "default"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		User: UserSettings{ID: DefaultUserID},
		MCP: MCPSettings{
			Port:              0,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output:    OutputSettings{Format: OutputFormatTable},
		Scheduler: DefaultSchedulerSettings(),
	}
}
