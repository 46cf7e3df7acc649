package model

import "github.com/google/uuid"

// CostBasis selects how a labour rule's basis quantity is derived.
type CostBasis int

const (
	PerEdgeLength CostBasis = iota // edge length (m) x quantity
	PerArea                        // area (m²) x quantity
	PerTable                       // quantity itself
	PerOrder                       // flat 1 per order
)

func (b CostBasis) String() string {
	switch b {
	case PerEdgeLength:
		return "per edge metre"
	case PerArea:
		return "per m²"
	case PerTable:
		return "per table"
	case PerOrder:
		return "per order"
	default:
		return "unknown"
	}
}

// LabourRule is a named, rate-bearing cost component. A rule applies either
// to any edge profile (Applies == EdgeAny) or to exactly one profile.
type LabourRule struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Basis   CostBasis   `json:"basis"`
	Rate    float64     `json:"rate"`
	Applies EdgeProfile `json:"applies"`
}

// NewLabourRule creates a labour rule with a generated ID.
func NewLabourRule(label string, basis CostBasis, rate float64, applies EdgeProfile) LabourRule {
	return LabourRule{
		ID:      uuid.New().String()[:8],
		Label:   label,
		Basis:   basis,
		Rate:    rate,
		Applies: applies,
	}
}

// Matches reports whether the rule applies under the given edge profile.
func (r LabourRule) Matches(edge EdgeProfile) bool {
	return r.Applies == EdgeAny || r.Applies == edge
}

// DefaultLabourRules returns the baseline labour schedule.
func DefaultLabourRules() []LabourRule {
	return []LabourRule{
		NewLabourRule("CNC cutting", PerEdgeLength, 4.20, EdgeAny),
		NewLabourRule("ABS edge banding", PerEdgeLength, 6.80, EdgeSquare),
		NewLabourRule("Bevel machining & paint", PerEdgeLength, 11.50, EdgeBevel),
		NewLabourRule("Sanding & finishing", PerArea, 9.00, EdgeAny),
		NewLabourRule("Handling & packing", PerTable, 7.50, EdgeAny),
		NewLabourRule("Job setup", PerOrder, 35.00, EdgeAny),
	}
}
