package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := isolateXDG(t)
	path := filepath.Join(dir, "config.toml")
	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr, path
}

func TestManager_HandleChange_ReloadsAndNotifies(t *testing.T) {
	mgr, path := loadedManager(t)

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	require.NoError(t, os.WriteFile(path, []byte("[search]\nmax_results = 7\n"), 0o600))
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.NotNil(t, got)
	assert.Equal(t, 7, got.Search.MaxResults)
	assert.Equal(t, 7, mgr.Get().Search.MaxResults)
}

func TestManager_HandleChange_KeepsConfigOnInvalidFile(t *testing.T) {
	mgr, path := loadedManager(t)

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(path, []byte("[refresh]\ntimeout_ms = 0\n"), 0o600))
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, 5000, mgr.Get().Refresh.TimeoutMs)
}

func TestManager_HandleChange_SkipsOwnSave(t *testing.T) {
	mgr, path := loadedManager(t)
	mgr.watching = true

	require.NoError(t, mgr.Set("search.max_results", "9"))
	assert.True(t, mgr.pendingSelfWrite)

	calls := 0
	mgr.OnConfigChange(func(c *Config) {
		calls++
		assert.Equal(t, 9, c.Search.MaxResults)
	})
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.Equal(t, 1, calls)
	assert.False(t, mgr.pendingSelfWrite)
}

func TestManager_Watch_Idempotent(t *testing.T) {
	mgr, _ := loadedManager(t)
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()))
	assert.True(t, mgr.watching)
}
