package valuation

import "RiverSight/internal/domain/models"

// SelectModel decides the valuation basis from aggregate fundamentals.
// The choice is made once per analysis so a security with a fluctuating
// EPS sign does not flip models mid-history.
//
// Earnings-multiple applies only to equities with positive trailing
// earnings; everything else (ETFs, indices, missing fundamentals,
// negative earnings) is valued around its long-window trend.
func SelectModel(f models.Fundamentals) models.ValuationModel {
	if f.TrailingEPS > 0 && f.InstrumentType == "EQUITY" {
		return models.EarningsMultipleModel(f.TrailingEPS)
	}
	return models.TrendCenterModel()
}
