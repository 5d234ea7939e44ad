// Package main is the entry point for sftime, a terminal time picker.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andareed/siftly-timepicker/config"
	"github.com/andareed/siftly-timepicker/logging"
	"github.com/andareed/siftly-timepicker/timepanel"
	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

func main() {
	cliApp := &urfavecli.App{
		Name:    "sftime",
		Usage:   "Pick a time of day from scrollable columns",
		Version: version,
		Flags:   globalFlags(),
		Action:  runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// globalFlags returns all flags of the picker.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug",
			Usage: "Write debug logs to file",
		},
		&urfavecli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Time format, e.g. HH:mm:ss or hh:mm A",
		},
		&urfavecli.StringFlag{
			Name:  "value",
			Usage: "Initial value in the chosen format",
		},
		&urfavecli.StringFlag{
			Name:  "steps",
			Usage: "Steps for hour,minute,second,millisecond, e.g. 1,5,1,1",
		},
		&urfavecli.StringFlag{
			Name:  "position",
			Usage: "Which end of a range is being picked (start or end)",
		},
		&urfavecli.BoolFlag{
			Name:  "hide-disabled",
			Usage: "Leave disabled values out of the columns",
		},
		&urfavecli.StringFlag{
			Name:  "min-time",
			Usage: "Earliest selectable time (HH:mm:ss)",
		},
		&urfavecli.StringFlag{
			Name:  "max-time",
			Usage: "Latest selectable time (HH:mm:ss)",
		},
		&urfavecli.StringFlag{
			Name:  "state",
			Usage: "Session file remembering the last accepted value",
		},
		&urfavecli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the accepted value to a file instead of stdout",
		},
	}
}

// applyFlags lets command line flags override the loaded configuration.
func applyFlags(cfg *config.Config, c *urfavecli.Context) error {
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("value") {
		cfg.Value = c.String("value")
	}
	if c.IsSet("steps") {
		steps, err := config.ParseSteps(c.String("steps"))
		if err != nil {
			return fmt.Errorf("--steps: %w", err)
		}
		cfg.Steps = steps
	}
	if c.IsSet("position") {
		pos := timepanel.Position(strings.ToLower(strings.TrimSpace(c.String("position"))))
		if pos != timepanel.PositionStart && pos != timepanel.PositionEnd {
			return fmt.Errorf("--position: want start or end, got %q", c.String("position"))
		}
		cfg.Position = pos
	}
	if c.IsSet("hide-disabled") {
		cfg.HideDisabledTime = c.Bool("hide-disabled")
	}
	if c.IsSet("min-time") {
		b, err := config.ParseBound(c.String("min-time"))
		if err != nil {
			return fmt.Errorf("--min-time: %w", err)
		}
		cfg.MinTime = b
	}
	if c.IsSet("max-time") {
		b, err := config.ParseBound(c.String("max-time"))
		if err != nil {
			return fmt.Errorf("--max-time: %w", err)
		}
		cfg.MaxTime = b
	}
	if c.IsSet("debug") {
		cfg.DebugLog = c.String("debug")
	}
	if c.IsSet("state") {
		cfg.StateFile = c.String("state")
	}
	return nil
}

// runTUI loads configuration, runs the picker and prints the accepted value.
func runTUI(c *urfavecli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		path := cfg.Path
		cfg = config.DefaultConfig()
		cfg.Path = path
	}
	if err := applyFlags(cfg, c); err != nil {
		return err
	}

	cleanup, err := logging.SetupLogging(cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()
	logging.Infof("sftime %s: started", version)

	statePath := cfg.StateFile
	if statePath == "" {
		statePath = defaultSessionPath()
	}
	if cfg.Value == "" && statePath != "" {
		s, err := LoadSession(statePath)
		if err != nil {
			logging.Warnf("load session %s: %v", statePath, err)
		} else if v, ok := s.restoreValue(cfg.Format); ok {
			cfg.Value = v
		}
	}

	m := newModel(cfg, withStatePath(statePath))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var final tea.Model
	g.Go(func() error {
		// the watcher stops once the program exits
		defer cancel()
		var err error
		final, err = p.Run()
		return err
	})
	if cfg.Path != "" {
		w, err := newConfigWatcher(cfg.Path, p.Send)
		if err != nil {
			logging.Warnf("config watcher disabled: %v", err)
		} else {
			g.Go(func() error { return w.Run(ctx) })
		}
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("tea program: %w", err)
	}

	fm, ok := final.(*model)
	if !ok || !fm.accepted {
		return nil
	}
	return writeResult(c.String("output"), fm.value, os.Stdout)
}

// writeResult prints value, or writes it to path when one is given.
func writeResult(path, value string, stdout io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, value)
		return err
	}
	return writeValueFile(path, value)
}
