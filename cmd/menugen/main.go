// Command menugen generates daily menus from a food catalog and a
// nutrition profile.
package main

import (
	"os"

	"github.com/custodia-labs/menugen/internal/adapters/driven/catalog/tomlfile"
	"github.com/custodia-labs/menugen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/menugen/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/menugen/internal/adapters/driving/cli"
	"github.com/custodia-labs/menugen/internal/core/services"
	"github.com/custodia-labs/menugen/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if err := file.LoadDotEnv(".env"); err != nil {
		logger.Error("loading .env: %v", err)
		return 1
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		logger.Error("reading settings: %v", err)
		return 1
	}
	logger.SetVerbose(settings.Log.Verbose)

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		logger.Error("opening database: %v", err)
		return 1
	}
	defer store.Close()

	menuService := services.NewMenuService(
		store.FoodStore(), store.ProfileStore(), store.PreferenceStore(), store.MenuStore(),
	)

	cli.SetServices(cli.Services{
		Menu:      menuService,
		Profile:   services.NewProfileService(store.ProfileStore(), store.PreferenceStore()),
		Catalog:   services.NewCatalogService(store.FoodStore(), tomlfile.NewEmbeddedSource()),
		Portion:   services.NewPortionService(store.FoodStore()),
		Settings:  settingsService,
		Scheduler: services.NewScheduler(settings.Scheduler, settings.User.ID, store.SchedulerStore(), menuService),

		UserID:       settings.User.ID,
		EnvOverrides: file.EnvOverrides(),
	})
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		// cobra has already printed the error.
		return 1
	}
	return 0
}
