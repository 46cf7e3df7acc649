package model

import "github.com/google/uuid"

// ThicknessRecord holds the manufacturing limits for one material thickness:
// the maximum sheet that can be supplied at that thickness.
type ThicknessRecord struct {
	ThicknessMM float64 `json:"thickness_mm"`
	MaxLengthMM float64 `json:"max_length_mm"`
	MaxWidthMM  float64 `json:"max_width_mm"`
}

// MaterialCatalogEntry describes one orderable material. It is read-only
// reference data supplied by the catalog; the engine never mutates it.
type MaterialCatalogEntry struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Family      string            `json:"family"` // e.g. "MDF", "Plywood", "Laminate"
	Finish      string            `json:"finish"` // e.g. "Raw", "Melamine", "Oak veneer"
	RatePerSqm  float64           `json:"rate_per_sqm"`
	Thicknesses []ThicknessRecord `json:"thicknesses"`
}

// NewMaterialCatalogEntry creates a catalog entry with a generated ID.
func NewMaterialCatalogEntry(name, family, finish string, ratePerSqm float64, thicknesses []ThicknessRecord) MaterialCatalogEntry {
	return MaterialCatalogEntry{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Family:      family,
		Finish:      finish,
		RatePerSqm:  ratePerSqm,
		Thicknesses: thicknesses,
	}
}

// Catalog holds the material entries and labour rules available for pricing.
type Catalog struct {
	Materials []MaterialCatalogEntry `json:"materials"`
	Labour    []LabourRule           `json:"labour"`
}

// DefaultCatalog returns a catalog populated with common sheet materials
// and a baseline labour schedule.
func DefaultCatalog() Catalog {
	return Catalog{
		Materials: []MaterialCatalogEntry{
			NewMaterialCatalogEntry("MDF Raw", "MDF", "Raw", 14.50, []ThicknessRecord{
				{ThicknessMM: 18, MaxLengthMM: 3660, MaxWidthMM: 1830},
				{ThicknessMM: 25, MaxLengthMM: 3660, MaxWidthMM: 1830},
				{ThicknessMM: 32, MaxLengthMM: 3050, MaxWidthMM: 1525},
			}),
			NewMaterialCatalogEntry("MDF White Melamine", "MDF", "Melamine", 21.00, []ThicknessRecord{
				{ThicknessMM: 18, MaxLengthMM: 2800, MaxWidthMM: 2070},
				{ThicknessMM: 25, MaxLengthMM: 2800, MaxWidthMM: 2070},
			}),
			NewMaterialCatalogEntry("Birch Plywood", "Plywood", "Raw", 38.00, []ThicknessRecord{
				{ThicknessMM: 18, MaxLengthMM: 2440, MaxWidthMM: 1220},
				{ThicknessMM: 24, MaxLengthMM: 2440, MaxWidthMM: 1220},
				{ThicknessMM: 30, MaxLengthMM: 2440, MaxWidthMM: 1220},
			}),
			NewMaterialCatalogEntry("Oak Veneered MDF", "MDF", "Oak veneer", 47.50, []ThicknessRecord{
				{ThicknessMM: 19, MaxLengthMM: 3050, MaxWidthMM: 1220},
				{ThicknessMM: 25, MaxLengthMM: 3050, MaxWidthMM: 1220},
			}),
			NewMaterialCatalogEntry("Compact Laminate", "Laminate", "Black core", 96.00, []ThicknessRecord{
				{ThicknessMM: 12, MaxLengthMM: 3050, MaxWidthMM: 1300},
				{ThicknessMM: 20, MaxLengthMM: 3050, MaxWidthMM: 1300},
			}),
		},
		Labour: DefaultLabourRules(),
	}
}

// FindMaterialByID returns a pointer to the material with the given ID, or nil.
func (c *Catalog) FindMaterialByID(id string) *MaterialCatalogEntry {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindMaterialByName returns a pointer to the first material with the given
// name, or nil.
func (c *Catalog) FindMaterialByName(name string) *MaterialCatalogEntry {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// MaterialNames returns the material names for UI dropdowns.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		names[i] = m.Name
	}
	return names
}
