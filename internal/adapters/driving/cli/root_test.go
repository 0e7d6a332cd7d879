package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/adapters/driven/catalog/tomlfile"
	"github.com/custodia-labs/menugen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/services"
)

const testUser = "alice"

var testDay = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

// testEnv holds the real services wired over in-memory stores.
type testEnv struct {
	menus    *services.MenuService
	profiles *services.ProfileService
	catalog  *services.CatalogService
	settings *services.SettingsService
	config   *memory.ConfigStore
}

// setupTestServices wires every command to real services over in-memory
// stores, seeded with the starter catalog and a complete profile for
// testUser. Everything is reset when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	foods := memory.NewFoodStore()
	profileStore := memory.NewProfileStore()
	prefStore := memory.NewPreferenceStore()
	menuStore := memory.NewMenuStore()
	config := memory.NewConfigStore()

	env := &testEnv{
		menus:    services.NewMenuService(foods, profileStore, prefStore, menuStore),
		profiles: services.NewProfileService(profileStore, prefStore),
		catalog:  services.NewCatalogService(foods, tomlfile.NewEmbeddedSource()),
		settings: services.NewSettingsService(config),
		config:   config,
	}

	_, err := env.catalog.Seed(ctx)
	require.NoError(t, err)
	_, err = env.profiles.Onboard(ctx, testUser, domain.ProfileInput{
		Age:           30,
		Gender:        "female",
		HeightCm:      168,
		WeightKg:      62,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	})
	require.NoError(t, err)

	sched := services.NewScheduler(
		domain.SchedulerSettings{Interval: time.Hour, LookaheadDays: 2},
		testUser, memory.NewSchedulerStore(), env.menus,
	)

	SetServices(Services{
		Menu:      env.menus,
		Profile:   env.profiles,
		Catalog:   env.catalog,
		Portion:   services.NewPortionService(foods),
		Settings:  env.settings,
		Scheduler: sched,
		UserID:    testUser,
	})
	t.Cleanup(func() { SetServices(Services{}) })

	return env
}

// execute runs the root command with args and returns everything written.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default so state does
// not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCmd(t *testing.T) {
	assert.Equal(t, "menugen", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"generate", "menu", "profile", "prefs", "catalog", "portion", "settings", "schedule", "mcp", "view", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestSetServices_DefaultsUser(t *testing.T) {
	SetServices(Services{})
	t.Cleanup(func() { SetServices(Services{}) })

	assert.Equal(t, domain.DefaultUserID, currentUser())
}

func TestCurrentUser_FlagWins(t *testing.T) {
	SetServices(Services{UserID: "alice"})
	t.Cleanup(func() {
		userFlag = ""
		SetServices(Services{})
	})

	assert.Equal(t, "alice", currentUser())
	userFlag = "bob"
	assert.Equal(t, "bob", currentUser())
}

func TestPublicError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "profile incomplete", err: domain.ErrProfileIncomplete, want: domain.MsgCompleteOnboarding},
		{name: "catalog", err: domain.ErrNoProteinFoods, want: domain.ErrNoProteinFoods.Error()},
		{name: "internal", err: errors.New("disk full"), want: domain.MsgGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, publicError(tt.err), tt.want)
		})
	}
}

func TestCommands_NotConfigured(t *testing.T) {
	SetServices(Services{})

	tests := [][]string{
		{"generate"},
		{"menu", "list"},
		{"profile", "show"},
		{"prefs", "list"},
		{"catalog", "list"},
		{"portion", "scale", "Oats:50", "--calories", "200"},
		{"settings", "show"},
		{"schedule", "run"},
		{"view"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not configured")
		})
	}
}
