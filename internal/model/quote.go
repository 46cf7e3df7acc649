package model

import (
	"time"

	"github.com/google/uuid"
)

// Quote ties a tabletop configuration to a material selection and the last
// computed costing snapshot, for save/load and for re-pricing at a new
// quantity later.
type Quote struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Config        TabletopConfiguration `json:"config"`
	Outline       *CustomOutline        `json:"outline,omitempty"` // present only for Custom shapes
	MaterialName  string                `json:"material_name"`
	ProfitPercent float64               `json:"profit_percent"`

	Snapshot *CostingSnapshot `json:"snapshot,omitempty"`
}

// NewQuote creates a quote with a generated ID and timestamps.
func NewQuote(name string, cfg TabletopConfiguration, materialName string, profitPercent float64) Quote {
	now := time.Now().UTC().Format(time.RFC3339)
	return Quote{
		ID:            uuid.New().String()[:8],
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
		Config:        cfg,
		MaterialName:  materialName,
		ProfitPercent: profitPercent,
	}
}

// Clone returns a copy with a fresh ID and timestamps, independent of the
// original. The snapshot is not carried over; the clone must be re-priced.
func (q Quote) Clone(name string) Quote {
	clone := NewQuote(name, q.Config, q.MaterialName, q.ProfitPercent)
	if q.Outline != nil {
		o := *q.Outline
		clone.Outline = &o
	}
	return clone
}

// Touch updates the UpdatedAt timestamp.
func (q *Quote) Touch() {
	q.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
