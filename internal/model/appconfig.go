package model

// AppConfig holds application-wide preferences and pricing defaults.
type AppConfig struct {
	DefaultProfitPercent float64     `json:"default_profit_percent"`
	DefaultThicknessMM   float64     `json:"default_thickness_mm"`
	DefaultMaterialName  string      `json:"default_material_name"`
	DefaultEdge          EdgeProfile `json:"default_edge"`

	RecentQuotes []string `json:"recent_quotes"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultProfitPercent: 30.0,
		DefaultThicknessMM:   25.0,
		DefaultMaterialName:  "MDF Raw",
		DefaultEdge:          EdgeSquare,
		RecentQuotes:         []string{},
	}
}

// ApplyTo copies the saved defaults into a configuration. Dimensions and
// shape are left untouched; only the pricing-relevant defaults transfer.
func (c AppConfig) ApplyTo(cfg *TabletopConfiguration) {
	cfg.ThicknessMM = c.DefaultThicknessMM
	cfg.Edge = c.DefaultEdge
	cfg.Normalize()
}
