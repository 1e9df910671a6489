package config

import (
	"os"
	"path/filepath"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // build version; "dev" also looks in the working directory
	OverridePath string
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration. A missing file yields defaults.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// DefaultPath is where a new config file is written when none exists yet.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sketchpad", "config.rc"), nil
}

// candidates lists the config locations in search order.
func (l *Loader) candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".sketchpadrc"))
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".config", "sketchpad")
		paths = append(paths, filepath.Join(dir, "config.rc"), filepath.Join(dir, "sketchpad.rc"))
	}
	return paths
}

// GetConfigPath returns the first existing candidate, or "" when there is none.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.candidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
