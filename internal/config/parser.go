package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/colorbook/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	// Context for parsing
	var currentSection string
	var currentTheme *theme.Theme
	paletteSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")))
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			if currentSection == "palette" && !paletteSeen {
				// A configured palette replaces the built-in one.
				cfg.Palette = nil
				paletteSeen = true
			}
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = currentTheme.Set(key, value)
		case currentSection == "fill":
			err = setFillField(&cfg.Fill, key, value)
		case currentSection == "palette":
			err = addSwatch(cfg, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func setFillField(f *Fill, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n < 0 {
		return fmt.Errorf("key %s must not be negative", key)
	}
	switch strings.ToLower(key) {
	case "min_alpha":
		if n > 255 {
			return fmt.Errorf("key %s must be at most 255", key)
		}
		f.MinAlpha = n
	case "tolerance":
		f.Tolerance = n
	case "radius":
		f.Radius = n
	case "wall_alpha_min":
		if n > 255 {
			return fmt.Errorf("key %s must be at most 255", key)
		}
		f.WallAlphaMin = n
	case "wall_luma_max":
		f.WallLumaMax = n
	}
	return nil
}

func addSwatch(cfg *Config, name, value string) error {
	c, err := theme.ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for swatch %s: %w", name, err)
	}
	c.A = 0xFF
	for i, s := range cfg.Palette {
		if strings.EqualFold(s.Name, name) {
			cfg.Palette[i].Color = c
			return nil
		}
	}
	cfg.Palette = append(cfg.Palette, Swatch{Name: name, Color: c})
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
