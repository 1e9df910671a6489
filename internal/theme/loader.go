package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading themes from various sources.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Inline holds themes defined in the configuration file. They are
	// consulted before any file lookup.
	Inline map[string]*Theme
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "sketchpad", "themes"),
		SystemDir: "/usr/share/sketchpad/themes",
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. Inline themes from the config file.
// 2. If it's a file path that exists, load it.
// 3. Check embedded themes.
// 4. Check ConfigDir.
// 5. Check SystemDir.
// An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}

	if t, ok := l.Inline[strings.ToLower(name)]; ok {
		cp := *t
		return &cp, nil
	}

	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}

	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, filename)
		if _, err := os.Stat(p); err == nil {
			return parseFile(p)
		}
	}

	return nil, fmt.Errorf("theme '%s' not found", name)
}

// Builtin lists the names of the embedded themes.
func Builtin() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
	}
	sort.Strings(names)
	return names
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}
