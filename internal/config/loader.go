package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader locates, reads and writes the configuration file.
type Loader struct {
	Version      string // Build version; "dev" also looks for .colorbookrc in the working directory
	OverridePath string // Set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the configuration file, or returns defaults when none exists.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the configuration file in use, or "" when there is none.
// Search order: override path, .colorbookrc in the working directory for
// dev builds, then the user config directory.
func (l *Loader) Path() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			local := filepath.Join(wd, ".colorbookrc")
			if _, err := os.Stat(local); err == nil {
				return local
			}
		}
	}

	dir, err := userDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.rc", "colorbook.rc"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Save writes cfg to the file in use, or to the user config directory when
// there is none, and returns the path written.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.Path()
	if path == "" {
		dir, err := userDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate config directory: %w", err)
		}
		path = filepath.Join(dir, "config.rc")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(cfg.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return path, nil
}

// userDir honours XDG_CONFIG_HOME and falls back to ~/.config.
func userDir() (string, error) {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "colorbook"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "colorbook"), nil
}
