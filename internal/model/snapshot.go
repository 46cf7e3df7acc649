package model

// LabourLine is one applied labour rule inside a costing snapshot, with the
// computed basis quantity and the resulting cost.
type LabourLine struct {
	RuleID   string    `json:"rule_id"`
	Label    string    `json:"label"`
	Basis    CostBasis `json:"basis"`
	BasisQty float64   `json:"basis_qty"`
	Rate     float64   `json:"rate"`
	Cost     float64   `json:"cost"`
}

// CostingSnapshot is the complete cost breakdown for one configuration at
// one quantity. It is a value object: every recompute fully replaces the
// previous snapshot, never patches it.
//
// When sheet limits were unavailable the material fields (SheetAreaM2,
// PiecesPerSheet, SheetsRequired, MaterialCost) are left at zero and
// omitted from JSON rather than fabricated; BaseCost then carries labour
// only.
type CostingSnapshot struct {
	Quantity    int     `json:"quantity"`
	AreaM2      float64 `json:"area_m2"`
	EdgeLengthM float64 `json:"edge_length_m"`

	SheetAreaM2    float64 `json:"sheet_area_m2,omitempty"`
	PiecesPerSheet int     `json:"pieces_per_sheet,omitempty"`
	SheetsRequired int     `json:"sheets_required,omitempty"`
	MaterialCost   float64 `json:"material_cost,omitempty"`

	LabourItems []LabourLine `json:"labour_items"`
	LabourTotal float64      `json:"labour_total"`

	BaseCost      float64 `json:"base_cost"`
	ProfitPercent float64 `json:"profit_percent"`
	Profit        float64 `json:"profit"`
	Total         float64 `json:"total"`

	// Approximate is true only when the snapshot was produced by the
	// proportional quantity-scaling fallback instead of a full recompute.
	// Callers should warn users that such a figure is approximate.
	Approximate bool `json:"approximate,omitempty"`
}

// HasMaterial reports whether the snapshot includes a material costing
// (sheet limits were available at estimation time).
func (s CostingSnapshot) HasMaterial() bool {
	return s.PiecesPerSheet > 0
}
