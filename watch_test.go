package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/siftly-timepicker/timepanel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [1, 1]\n"), 0o600))

	msgs := make(chan tea.Msg, 4)
	w, err := newConfigWatcher(path, func(msg tea.Msg) { msgs <- msg })
	require.NoError(t, err)
	w.debounce = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("steps: [1, 15]\n"), 0o600))

	select {
	case msg := <-msgs:
		reloaded, ok := msg.(configReloadedMsg)
		require.True(t, ok)
		require.NoError(t, reloaded.err)
		assert.Equal(t, timepanel.Steps{1, 15, 1, 1}, reloaded.cfg.Steps)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after config write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestConfigWatcherMissingDir(t *testing.T) {
	_, err := newConfigWatcher(filepath.Join(t.TempDir(), "nope", "config.yaml"), func(tea.Msg) {})
	assert.Error(t, err)
}
