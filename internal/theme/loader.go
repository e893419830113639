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
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "colorbook", "themes"),
		SystemDir: "/usr/share/colorbook/themes",
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. If it's a file path that exists, load it.
// 2. Check embedded themes.
// 3. Check ConfigDir.
// 4. Check SystemDir.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}

	// 1. File path
	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	// Normalize name (ensure .theme extension for lookup if missing)
	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}

	// 2. Embedded
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	// 3. Config Dir, 4. System Dir
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}

	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Embedded lists the names of the themes shipped with the binary.
func Embedded() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".theme") {
			names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
		}
	}
	sort.Strings(names)
	return names
}
