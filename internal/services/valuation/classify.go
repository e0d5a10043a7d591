package valuation

import "RiverSight/internal/domain/models"

// Classify maps a price to its valuation zone. Comparisons are strict
// greater-than evaluated top-down, so a price equal to a boundary
// resolves to the lower zone.
func Classify(price float64, bands [5]float64) models.Zone {
	switch {
	case price > bands[4]:
		return models.ZoneExtremelyHigh
	case price > bands[3]:
		return models.ZoneHigh
	case price > bands[2]:
		return models.ZoneFair
	case price > bands[1]:
		return models.ZoneLow
	default:
		return models.ZoneExtremelyLow
	}
}

// ClassifyLatest classifies the most recent assembled day. With no
// history at all there is nothing to classify and the zone is Unknown.
func ClassifyLatest(days []models.DayRecord) models.Zone {
	if len(days) == 0 {
		return models.ZoneUnknown
	}
	last := days[len(days)-1]
	return Classify(last.Price, last.Bands)
}
