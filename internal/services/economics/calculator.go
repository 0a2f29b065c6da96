// Package economics derives mission business metrics from a parameter
// snapshot. Every function is pure and total over the valid domain.
package economics

import "orbitscore/internal/models"

// Compute returns the capital cost, operating cost, total cost of
// ownership, revenue, and return on investment for the scenario.
//
// When TCO is zero (zero unit costs) ROI saturates to 0 instead of
// dividing by zero; that is a defined outcome, not an error.
func Compute(p models.MissionParameters) models.BusinessResult {
	n := float64(p.SatelliteCount)

	capex := n * p.CostPerSatellite
	opex := n * p.AnnualOpexPerSatellite * float64(p.MissionYears)
	tco := capex + opex
	revenue := n * p.ExpectedRevenuePerSatellite

	var roi float64
	if tco != 0 {
		roi = (revenue - tco) / tco
	}

	return models.BusinessResult{
		Capex:   capex,
		Opex:    opex,
		TCO:     tco,
		Revenue: revenue,
		ROI:     roi,
	}
}
