package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

func TestScheduleRunCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "schedule", "run")

	require.NoError(t, err)
	assert.Contains(t, out, "Generated 2 menus")
}

func TestScheduleRunCmd_UserFlag(t *testing.T) {
	env := setupTestServices(t)
	ctx := context.Background()
	_, err := env.profiles.Onboard(ctx, "bob", domain.ProfileInput{
		Age:           41,
		Gender:        "male",
		HeightCm:      180,
		WeightKg:      82,
		ActivityLevel: "light",
		Goal:          "cut",
	})
	require.NoError(t, err)

	out, err := execute(t, "schedule", "run", "--user", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 2 menus")

	bob, err := env.menus.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bob, 2)
	alice, err := env.menus.List(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, alice)
}

func TestScheduleHistoryCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "schedule", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")

	_, err = execute(t, "schedule", "run")
	require.NoError(t, err)

	out, err = execute(t, "schedule", "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Started")
	assert.Contains(t, out, "ok")
}

func TestStartScheduler_Disabled(t *testing.T) {
	setupTestServices(t)

	stop := startScheduler(context.Background())

	require.NotNil(t, stop)
	assert.NotPanics(t, stop)
}

func TestStartScheduler_Enabled(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.settings.Set("scheduler.enabled", "true"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := startScheduler(ctx)

	assert.NotPanics(t, stop)
}

func TestStartScheduler_NotConfigured(t *testing.T) {
	SetServices(Services{})

	stop := startScheduler(context.Background())

	assert.NotPanics(t, stop)
}
