package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tableforge/tableforge/internal/model"
)

// DefaultAppConfigPath returns the default file path for the app config.
// This is located at ~/.tableforge/config.json.
func DefaultAppConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, "config.json"), nil
}

// SaveAppConfig writes the app config to the specified JSON file.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the app config from the specified JSON file.
// If the file does not exist, defaults are returned and saved.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := model.DefaultAppConfig()
			if saveErr := SaveAppConfig(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return model.AppConfig{}, err
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}

// RememberQuote prepends a quote file path to the recent list, dropping
// duplicates and capping the list at ten entries.
func RememberQuote(cfg *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range cfg.RecentQuotes {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	cfg.RecentQuotes = recent
}
