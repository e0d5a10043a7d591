package valuation

import (
	"RiverSight/internal/domain/models"
	"RiverSight/pkg/util"
)

// AssembleHistory joins the raw series, both moving averages and the
// per-day bands into one record per input day. It is a pure join: no
// filtering, input length and order preserved exactly. Dates are the
// UTC calendar day of the point's timestamp.
//
// Absent closes are carried through as a 0 price, mirroring the
// smoothing engine's missing-value policy.
func AssembleHistory(points []models.PricePoint, shortAvg, longAvg []float64, m models.ValuationModel) []models.DayRecord {
	days := make([]models.DayRecord, len(points))
	for i, p := range points {
		price := 0.0
		if p.Price != nil {
			price = *p.Price
		}
		days[i] = models.DayRecord{
			Date:      util.FormatDate(p.Timestamp),
			Timestamp: p.Timestamp,
			Price:     price,
			ShortAvg:  shortAvg[i],
			LongAvg:   longAvg[i],
			Bands:     GenerateBands(m, m.Base(longAvg[i])),
		}
	}
	return days
}
