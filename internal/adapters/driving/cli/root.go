// Package cli provides the cobra command tree for menugen.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
	"github.com/custodia-labs/menugen/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by the composition root. Commands check for nil and
// report the service as not configured.
var (
	menuService     driving.MenuService
	profileService  driving.ProfileService
	catalogService  driving.CatalogService
	portionService  driving.PortionService
	settingsService driving.SettingsService
	scheduler       driving.Scheduler

	// userID is the user every command acts for.
	userID = domain.DefaultUserID

	// envOverrides lists config keys currently set from the environment.
	envOverrides []string
)

var (
	verbose  bool
	userFlag string
)

var rootCmd = &cobra.Command{
	Use:   "menugen",
	Short: "Generate balanced daily menus from a food catalog",
	Long: `menugen builds a daily menu of breakfast, lunch, dinner and a snack that
matches your calorie and macro targets, using foods from a local catalog.

Get started:
  menugen catalog seed
  menugen profile set --age 30 --gender female --height 168 --weight 62 \
      --activity moderate --goal maintain
  menugen generate`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "act as this user instead of the configured one")
}

// Services holds the driving ports the commands use.
type Services struct {
	Menu      driving.MenuService
	Profile   driving.ProfileService
	Catalog   driving.CatalogService
	Portion   driving.PortionService
	Settings  driving.SettingsService
	Scheduler driving.Scheduler

	// UserID defaults to domain.DefaultUserID when empty.
	UserID string

	// EnvOverrides are shown by "settings show".
	EnvOverrides []string
}

// SetServices wires the services used by the commands.
func SetServices(s Services) {
	menuService = s.Menu
	profileService = s.Profile
	catalogService = s.Catalog
	portionService = s.Portion
	settingsService = s.Settings
	scheduler = s.Scheduler
	envOverrides = s.EnvOverrides

	userID = s.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}
}

// SetVersion sets the version reported by "menugen version".
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentUser returns the --user flag if given, else the configured user.
func currentUser() string {
	if userFlag != "" {
		return userFlag
	}
	return userID
}

// publicError turns a generation error into one fit for the terminal.
// Internal failures are logged and replaced with a generic message.
func publicError(err error) error {
	msg, public := domain.PublicMessage(err)
	if !public {
		logger.Error("%v", err)
	}
	return errors.New(msg)
}
