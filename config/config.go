package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/Wthomas48/smart-deals-iq-sub002/log"
)

const (
	ConfigFileName = "config.json"

	// ConfigDirEnv overrides the config directory location when set.
	// Used by tests and by installs that keep state out of $HOME.
	ConfigDirEnv = "SDIQ_CONFIG_DIR"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".smart-deals-iq"), nil
}

// Accepted ForcePlatform values.
const (
	ForcePlatformIOS     = "ios"
	ForcePlatformAndroid = "android"
	ForcePlatformWeb     = "web"
)

// Config represents the application configuration
type Config struct {
	// FallbackWidth is the viewport width assumed when the host cannot be
	// measured, in device-independent pixels.
	FallbackWidth float64 `json:"fallback_width"`
	// FallbackHeight is the viewport height assumed when the host cannot be
	// measured, in device-independent pixels.
	FallbackHeight float64 `json:"fallback_height"`
	// CellWidth is the estimated pixel width of one terminal cell, used when
	// the host reports cells but not pixels. Zero means the built-in estimate.
	CellWidth float64 `json:"cell_width"`
	// CellHeight is the estimated pixel height of one terminal cell.
	CellHeight float64 `json:"cell_height"`
	// ForcePlatform pretends to be a native host: "ios", "android" or "web".
	// Empty means detect from the build.
	ForcePlatform string `json:"force_platform"`
	// ForceDesktopShell marks this install as desktop-shell embedded without
	// the environment flag.
	ForceDesktopShell bool `json:"force_desktop_shell"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FallbackWidth:  1280,
		FallbackHeight: 800,
		CellWidth:      8,
		CellHeight:     16,
	}
}

// Normalize repairs values a hand-edited config file can carry that the app
// cannot work with. Malformed fallback dimensions revert to the defaults,
// malformed cell sizes to the built-in estimate, and an unrecognized
// ForcePlatform is logged and cleared.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	if !validLength(c.FallbackWidth) {
		log.Warning("config: fallback_width %v is invalid, using %g", c.FallbackWidth, defaults.FallbackWidth)
		c.FallbackWidth = defaults.FallbackWidth
	}
	if !validLength(c.FallbackHeight) {
		log.Warning("config: fallback_height %v is invalid, using %g", c.FallbackHeight, defaults.FallbackHeight)
		c.FallbackHeight = defaults.FallbackHeight
	}
	if !validLength(c.CellWidth) {
		c.CellWidth = 0
	}
	if !validLength(c.CellHeight) {
		c.CellHeight = 0
	}

	switch c.ForcePlatform {
	case "", ForcePlatformIOS, ForcePlatformAndroid, ForcePlatformWeb:
	default:
		log.Warning("config: unknown force_platform %q, ignoring", c.ForcePlatform)
		c.ForcePlatform = ""
	}
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.Error("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.Warning("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.Warning("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		// Log the error with more context about what failed
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.Error("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.Info("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.Normalize()
	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
