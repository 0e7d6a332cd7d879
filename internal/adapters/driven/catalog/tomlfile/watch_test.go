package tomlfile

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_HandleEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foods.toml")
	w := NewWatcher(path)

	tests := []struct {
		name     string
		file     string
		op       fsnotify.Op
		expected bool
	}{
		{name: "write", file: path, op: fsnotify.Write, expected: true},
		{name: "create", file: path, op: fsnotify.Create, expected: true},
		{name: "rename", file: path, op: fsnotify.Rename, expected: true},
		{name: "write with chmod", file: path, op: fsnotify.Write | fsnotify.Chmod, expected: true},
		{name: "chmod only", file: path, op: fsnotify.Chmod, expected: false},
		{name: "remove", file: path, op: fsnotify.Remove, expected: false},
		{name: "other file", file: filepath.Join(dir, "other.toml"), op: fsnotify.Write, expected: false},
		{name: "editor swap file", file: path + ".swp", op: fsnotify.Create, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.handleEvent(fsnotify.Event{Name: tt.file, Op: tt.op})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWatcher_Path(t *testing.T) {
	w := NewWatcher("/tmp/catalog/../catalog/foods.toml")
	assert.Equal(t, "/tmp/catalog/foods.toml", w.Path())
}

func TestWatcher_Watch(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	w := NewWatcher(path)
	w.SetDebounce(20 * time.Millisecond)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() { calls.Add(1) })
	}()

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog+"\n"), 0600))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "foods.toml"))
	err := w.Watch(context.Background(), func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}
