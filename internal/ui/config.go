package ui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pesislab/kentta/pkg/render"
)

// AppConfig stores persistent application settings
type AppConfig struct {
	ColorTheme       int    `json:"color_theme"`
	Profile          string `json:"profile"`
	ShowMeasurements bool   `json:"show_measurements"`
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	// Use platform-appropriate config directory
	if os.Getenv("APPDATA") != "" {
		configDir = filepath.Join(os.Getenv("APPDATA"), "Kentta")
	} else {
		configDir = filepath.Join(homeDir, ".config", "kentta")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the application configuration
func LoadConfig() (*AppConfig, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves the application configuration
func SaveConfig(config *AppConfig) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		ColorTheme:       int(render.ThemeClassic),
		Profile:          "men",
		ShowMeasurements: true,
	}
}
