// Package sustainability combines business economics and debris risk
// into a single bounded score with a discrete band.
package sustainability

import "orbitscore/internal/models"

// Composite weights. They must sum to 1.0; risk deliberately outweighs
// economics.
const (
	weightEconomics = 0.4
	weightRisk      = 0.6
)

// Band thresholds partition [0,1] into three half-open intervals. The
// comparison is strict-less-than, so a score exactly on a boundary
// belongs to the higher band.
const (
	thresholdYellow = 0.4 // below: red
	thresholdGreen  = 0.7 // below: yellow, at or above: green
)

// roiShift maps ROI in [-0.5, 0.5] onto [0,1]; outside that range the
// economics component saturates.
const roiShift = 0.5

// Compute derives the composite sustainability result from the two
// calculator outputs. It depends only on those outputs, never on the
// mission parameters directly.
func Compute(debris models.DebrisResult, business models.BusinessResult) models.SustainabilityResult {
	roiScore := clamp(business.ROI + roiShift)
	riskScore := 1 - debris.CollisionRisk
	score := clamp(weightEconomics*roiScore + weightRisk*riskScore)

	return models.SustainabilityResult{
		Score: score,
		Band:  BandFor(score),
	}
}

// BandFor maps a score in [0,1] to its classification.
func BandFor(score float64) models.Band {
	switch {
	case score < thresholdYellow:
		return models.BandRed
	case score < thresholdGreen:
		return models.BandYellow
	default:
		return models.BandGreen
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
