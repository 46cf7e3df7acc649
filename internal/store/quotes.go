package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tableforge/tableforge/internal/model"
)

// SaveQuote writes a quote to the specified JSON file.
func SaveQuote(path string, q model.Quote) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadQuote reads a quote from the specified JSON file.
func LoadQuote(path string) (model.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Quote{}, err
	}
	var q model.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return model.Quote{}, fmt.Errorf("cannot parse quote file: %w", err)
	}
	return q, nil
}
