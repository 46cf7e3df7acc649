// Package store persists catalog data, application preferences, and saved
// quotes as JSON files under the user's home directory.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tableforge/tableforge/internal/model"
)

// configDirName is the per-user directory all tableforge files live in.
const configDirName = ".tableforge"

// DefaultCatalogPath returns the default file path for the catalog file.
// This is located at ~/.tableforge/catalog.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, "catalog.json"), nil
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return model.DefaultCatalog(), "", err
	}
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// MergeCatalog merges imported materials and labour rules into an existing
// catalog. Entries whose IDs already exist are skipped.
func MergeCatalog(existing model.Catalog, materials []model.MaterialCatalogEntry, labour []model.LabourRule) model.Catalog {
	materialIDs := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		materialIDs[m.ID] = true
	}
	labourIDs := make(map[string]bool, len(existing.Labour))
	for _, r := range existing.Labour {
		labourIDs[r.ID] = true
	}

	for _, m := range materials {
		if !materialIDs[m.ID] {
			existing.Materials = append(existing.Materials, m)
			materialIDs[m.ID] = true
		}
	}
	for _, r := range labour {
		if !labourIDs[r.ID] {
			existing.Labour = append(existing.Labour, r)
			labourIDs[r.ID] = true
		}
	}
	return existing
}
