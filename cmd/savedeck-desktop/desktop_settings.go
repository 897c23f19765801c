package main

import (
	"bytes"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultWidth        = 1200
	defaultHeight       = 800
	defaultDevServerURL = "http://localhost:5173"
)

// DesktopConfig represents the [desktop] section of config.toml
type DesktopConfig struct {
	Width            int    `toml:"width"`             // Initial window width, 640-3840
	Height           int    `toml:"height"`            // Initial window height, 480-2160
	DevServerURL     string `toml:"dev_server_url"`    // Frontend dev server used in dev mode
	DefaultDirectory string `toml:"default_directory"` // Folder picker start when no folder was picked yet
}

func defaultDesktopConfig() *DesktopConfig {
	return &DesktopConfig{
		Width:        defaultWidth,
		Height:       defaultHeight,
		DevServerURL: defaultDevServerURL,
	}
}

// DesktopSettingsManager manages desktop settings in config.toml
type DesktopSettingsManager struct {
	configPath string
}

// NewDesktopSettingsManager creates a new desktop settings manager
func NewDesktopSettingsManager() *DesktopSettingsManager {
	return &DesktopSettingsManager{
		configPath: filepath.Join(appDataDir(), "config.toml"),
	}
}

// fullConfig represents the entire config.toml structure we care about
type fullConfig struct {
	Desktop DesktopConfig `toml:"desktop"`
}

// Load loads the desktop section from config.toml.
// Missing or invalid values fall back to defaults.
func (dsm *DesktopSettingsManager) Load() (*DesktopConfig, error) {
	data, err := os.ReadFile(dsm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultDesktopConfig(), nil
		}
		return nil, err
	}

	var config fullConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return defaultDesktopConfig(), nil // Return defaults on parse error
	}

	desktop := &config.Desktop
	desktop.Width = clampDimension(desktop.Width, defaultWidth, 640, 3840)
	desktop.Height = clampDimension(desktop.Height, defaultHeight, 480, 2160)

	if !isValidDevServerURL(desktop.DevServerURL) {
		desktop.DevServerURL = defaultDevServerURL
	}

	desktop.DefaultDirectory = expandHome(strings.TrimSpace(desktop.DefaultDirectory))

	return desktop, nil
}

// Save writes the desktop config, preserving other sections
func (dsm *DesktopSettingsManager) Save(desktop *DesktopConfig) error {
	existingData, _ := os.ReadFile(dsm.configPath)

	// Parse existing config into a map to preserve unknown sections
	existingConfig := make(map[string]interface{})
	if len(existingData) > 0 {
		if err := toml.Unmarshal(existingData, &existingConfig); err != nil {
			existingConfig = make(map[string]interface{})
		}
	}

	section := map[string]interface{}{
		"width":          desktop.Width,
		"height":         desktop.Height,
		"dev_server_url": desktop.DevServerURL,
	}
	if desktop.DefaultDirectory != "" {
		section["default_directory"] = desktop.DefaultDirectory
	}
	existingConfig["desktop"] = section

	if err := os.MkdirAll(filepath.Dir(dsm.configPath), 0700); err != nil {
		return err
	}

	var buf bytes.Buffer
	if len(existingData) == 0 {
		buf.WriteString("# SaveDeck Configuration\n\n")
	}
	if err := toml.NewEncoder(&buf).Encode(existingConfig); err != nil {
		return err
	}

	return os.WriteFile(dsm.configPath, buf.Bytes(), 0600)
}

// EnsureExists writes a config.toml with default values if none exists yet,
// so users have a file to edit.
func (dsm *DesktopSettingsManager) EnsureExists() error {
	if _, err := os.Stat(dsm.configPath); err == nil || !os.IsNotExist(err) {
		return err
	}
	return dsm.Save(defaultDesktopConfig())
}

// clampDimension returns def for unset values and clamps the rest to [lo, hi].
func clampDimension(v, def, lo, hi int) int {
	switch {
	case v == 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func isValidDevServerURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// appDataDir returns ~/.savedeck, falling back to the temp dir when the
// home directory is unknown.
func appDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".savedeck")
	}
	return filepath.Join(home, ".savedeck")
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
