package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/andareed/siftly-timepicker/timepanel"
)

// --- Wire format ---

const sessionVersion = 1

type sessionDTO struct {
	Version  int                `json:"version"`
	Format   string             `json:"format"`
	Value    string             `json:"value"`
	Position timepanel.Position `json:"position,omitempty"`
	SavedAt  time.Time          `json:"savedAt"`
}

// SaveSession records the accepted value so the next run can start from it.
func SaveSession(path string, format, value string, pos timepanel.Position, now time.Time) error {
	dto := sessionDTO{
		Version:  sessionVersion,
		Format:   format,
		Value:    value,
		Position: pos,
		SavedAt:  now.UTC(),
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSession reads a saved session. A missing file returns a zero session
// and no error.
func LoadSession(path string) (sessionDTO, error) {
	var dto sessionDTO
	// #nosec G304 -- the path is chosen by the user
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return dto, nil
	}
	if err != nil {
		return dto, err
	}
	if err := json.Unmarshal(data, &dto); err != nil {
		return dto, fmt.Errorf("parse session: %w", err)
	}
	if dto.Version != sessionVersion {
		return sessionDTO{}, fmt.Errorf("session version %d not supported (want %d)", dto.Version, sessionVersion)
	}
	return dto, nil
}

// restoreValue returns the saved value when it was written for format.
func (s sessionDTO) restoreValue(format string) (string, bool) {
	if s.Value == "" || s.Format != format {
		return "", false
	}
	return s.Value, true
}

// writeValueFile saves the picked value as a single line of text.
func writeValueFile(path, value string) error {
	if value == "" {
		return errors.New("no value picked yet")
	}
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func defaultSessionPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "sftime", "session.json")
}
