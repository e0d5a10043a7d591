package valuation

import "RiverSight/internal/domain/models"

// GenerateBands multiplies the model's fixed ascending multipliers by a
// single base value, yielding the five river boundaries for one day.
// Ordering follows from the multipliers whenever base >= 0.
//
// A zero or negative base (negative EPS slipping through, or a
// long-window average collapsing below zero) produces zero or inverted
// boundaries. That is accepted behavior; callers must not clamp it away.
func GenerateBands(m models.ValuationModel, base float64) [5]float64 {
	var bands [5]float64
	for i, mult := range m.Multipliers {
		bands[i] = base * mult
	}
	return bands
}
