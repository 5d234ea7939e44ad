package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-timepicker/config"
	"github.com/andareed/siftly-timepicker/timepanel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	urfavecli "github.com/urfave/cli/v2"
)

// runFlags parses args with the real flag set and applies them to cfg.
func runFlags(t *testing.T, cfg *config.Config, args ...string) error {
	t.Helper()
	var applyErr error
	app := &urfavecli.App{
		Name:  "sftime",
		Flags: globalFlags(),
		Action: func(c *urfavecli.Context) error {
			applyErr = applyFlags(cfg, c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"sftime"}, args...)))
	return applyErr
}

func TestApplyFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	err := runFlags(t, cfg,
		"-f", "hh:mm A",
		"--value", "02:15 PM",
		"--steps", "1,15",
		"--position", "End",
		"--hide-disabled",
		"--min-time", "08:00",
		"--state", "/tmp/s.json",
	)
	require.NoError(t, err)

	assert.Equal(t, "hh:mm A", cfg.Format)
	assert.Equal(t, "02:15 PM", cfg.Value)
	assert.Equal(t, timepanel.Steps{1, 15, 1, 1}, cfg.Steps)
	assert.Equal(t, timepanel.PositionEnd, cfg.Position)
	assert.True(t, cfg.HideDisabledTime)
	assert.Equal(t, &config.Bound{Hour: 8}, cfg.MinTime)
	assert.Nil(t, cfg.MaxTime)
	assert.Equal(t, "/tmp/s.json", cfg.StateFile)
}

func TestApplyFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format = "HH:mm"
	cfg.HideDisabledTime = true
	require.NoError(t, runFlags(t, cfg))

	assert.Equal(t, "HH:mm", cfg.Format)
	assert.True(t, cfg.HideDisabledTime)
}

func TestApplyFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad position", args: []string{"--position", "middle"}},
		{name: "too many steps", args: []string{"--steps", "1,1,1,1,1"}},
		{name: "bad bound", args: []string{"--max-time", "25:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, runFlags(t, config.DefaultConfig(), tt.args...))
		})
	}
}

func TestWriteResult(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeResult("", "14:05:30", &out))
	assert.Equal(t, "14:05:30\n", out.String())

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeResult(path, "14:05:30", &out))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "14:05:30\n", string(data))
}
