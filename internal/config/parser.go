package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// missing keys keep the defaults
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case currentTheme != nil:
			err = currentTheme.Set(key, value)
		case currentSection == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "":
			setRootField(cfg, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d: error in section [%s]: %w", lineNo, section, err)
		}
	}

	return cfg, scanner.Err()
}

// splitKeyValue accepts both "key = value" and "Key: value".
func splitKeyValue(line string) (string, string, bool) {
	var parts []string
	if strings.Contains(line, "=") {
		parts = strings.SplitN(line, "=", 2)
	} else if strings.Contains(line, ":") {
		parts = strings.SplitN(line, ":", 2)
	} else {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func setRootField(cfg *Config, key, value string) {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	}
}

func setCanvasField(c *Canvas, key, value string) error {
	switch strings.ToLower(key) {
	case "width", "height", "pen_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for key %s: %w", key, err)
		}
		switch strings.ToLower(key) {
		case "width":
			c.Width = n
		case "height":
			c.Height = n
		default:
			c.PenSize = n
		}
	case "black_pen":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		c.BlackPen = b
	}
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
