package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveLearner returns the learner identity in priority order:
// explicit value (flag), TOPIQ_LEARNER, then the saved profile.
// Returns "" when none is set; the welcome screen collects it then.
func ResolveLearner(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if l := os.Getenv("TOPIQ_LEARNER"); l != "" {
		return l
	}
	name, err := loadProfile()
	if err != nil {
		return ""
	}
	return name
}

// profilePath resolves $XDG_DATA_HOME/topiq/learner with the usual
// ~/.local/share fallback.
func profilePath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "topiq", "learner"), nil
}

func loadProfile() (string, error) {
	p, err := profilePath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveLearner persists the learner name for future runs.
func SaveLearner(name string) error {
	p, err := profilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(name+"\n"), 0o644)
}
