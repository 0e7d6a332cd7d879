package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// seedFoods saves a small catalog and returns it with IDs assigned.
func seedFoods(t *testing.T, store *Store) []domain.Food {
	t.Helper()
	fiber := 2.6
	foods := []domain.Food{
		{
			Name: "Chicken Breast", Category: domain.CategoryProtein,
			CaloriesPer100g: 165, ProteinPer100g: 31, FatPer100g: 3.6,
			Tags: []string{"gluten-free", "halal"}, DefaultServingGrams: 150,
		},
		{
			Name: "Brown Rice", Category: domain.CategoryCarb,
			CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 23.5, FatPer100g: 0.9,
			Tags: []string{"vegan"},
		},
		{
			Name: "Banana", Category: domain.CategoryFruit,
			CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 22.8, FatPer100g: 0.3,
			FiberPer100g: &fiber,
		},
	}
	ctx := context.Background()
	for i := range foods {
		require.NoError(t, store.FoodStore().Save(ctx, &foods[i]))
	}
	return foods
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(dir, DatabaseName)
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".menugen", "data", DatabaseName), store.Path())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "path", "to", "db")
	store, err := NewStore(nested)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nested)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)

	tables := []string{
		"foods",
		"nutrition_profiles",
		"food_preferences",
		"menus",
		"menu_items",
		"scheduled_tasks",
		"task_results",
	}
	for _, table := range tables {
		var exists int
		err := store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.Equal(t, 1, exists, "table %s should exist", table)
	}
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	seedFoods(t, store)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	foods, err := reopened.FoodStore().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, foods, 3)

	var count int
	require.NoError(t, reopened.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count, "migrations must not be re-applied")
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store := setupTestStore(t)

	var fkEnabled int
	require.NoError(t, store.db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled))
	assert.Equal(t, 1, fkEnabled)
}

func TestStore_Migrate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"002_extra.up.sql":   {Data: []byte("CREATE TABLE extra (id INTEGER PRIMARY KEY);")},
		"002_extra.down.sql": {Data: []byte("DROP TABLE extra;")},
		"README.md":          {Data: []byte("ignored")},
		"notes.up.sql":       {Data: []byte("this is not sql")},
	}
	require.NoError(t, store.migrate(ctx, fsys))
	require.NoError(t, store.migrate(ctx, fsys), "second run is a no-op")

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)

	t.Run("failed migration is rolled back", func(t *testing.T) {
		broken := fstest.MapFS{
			"003_broken.up.sql": {Data: []byte("CREATE TABLE partial (id INTEGER); SELECT * FROM missing_table;")},
		}
		err := store.migrate(ctx, broken)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "003_broken.up.sql")

		var exists int
		require.NoError(t, store.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='partial'").Scan(&exists))
		assert.Zero(t, exists)
	})
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_FilePermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}
