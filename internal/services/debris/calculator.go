// Package debris estimates collision risk and a relative debris
// severity index for a constellation scenario. The model is a simple
// heuristic for comparing scenarios, not a physical simulation.
package debris

import (
	"math"

	"orbitscore/internal/models"
)

// Blend weights for the base risk: fleet size and operational lifetime
// contribute equally. They must sum to 1.0.
const (
	weightFleet    = 0.5
	weightLifetime = 0.5
)

// ModelFactors are the tunable inputs of the risk heuristic. Today
// they come from the canned datasource stubs; a future real data
// integration replaces the values without touching the calculator
// contract.
type ModelFactors struct {
	// StrategyFactors scale the base risk per disposal policy.
	StrategyFactors map[models.EOLStrategy]float64

	// FleetNorm and LifetimeNorm are the satellite count and lifetime
	// at which each base-risk term saturates.
	FleetNorm    float64
	LifetimeNorm float64

	// Index* drive the projected debris index.
	IndexFleetNorm      float64
	IndexLifetimeNorm   float64
	IndexNoDisposalMult float64 // multiplier when there is no EOL plan
	IndexDisposalMult   float64 // multiplier for any disposal policy
}

// DefaultFactors returns the baseline heuristic tuning.
func DefaultFactors() ModelFactors {
	return ModelFactors{
		StrategyFactors: map[models.EOLStrategy]float64{
			models.EOLDeorbit:   0.4,
			models.EOLGraveyard: 0.7,
			models.EOLNone:      1.0,
		},
		FleetNorm:           200,
		LifetimeNorm:        15,
		IndexFleetNorm:      300,
		IndexLifetimeNorm:   10,
		IndexNoDisposalMult: 1.2,
		IndexDisposalMult:   0.7,
	}
}

// Calculator computes debris metrics with a fixed set of model factors.
type Calculator struct {
	factors ModelFactors
}

// NewCalculator returns a calculator using the given factors.
func NewCalculator(factors ModelFactors) Calculator {
	return Calculator{factors: factors}
}

// Compute derives collision risk and the projected debris index from
// the parameter snapshot. Pure and total; collision risk is clamped to
// [0,1] and the index to >= 0.
func (c Calculator) Compute(p models.MissionParameters) models.DebrisResult {
	f := c.factors
	n := float64(p.SatelliteCount)
	lifetime := float64(p.LifetimeYears)

	base := n/f.FleetNorm*weightFleet + lifetime/f.LifetimeNorm*weightLifetime
	if base > 1 {
		base = 1
	}

	risk := base * c.strategyFactor(p.EOLStrategy)
	if risk > 1 {
		risk = 1
	}
	if risk < 0 {
		risk = 0
	}

	mult := f.IndexDisposalMult
	if p.EOLStrategy == models.EOLNone {
		mult = f.IndexNoDisposalMult
	}
	index := int(math.Round(100 * (n / f.IndexFleetNorm) * (lifetime / f.IndexLifetimeNorm) * mult))
	if index < 0 {
		index = 0
	}

	return models.DebrisResult{
		CollisionRisk:        risk,
		ProjectedDebrisIndex: index,
	}
}

// strategyFactor returns the disposal-policy multiplier. An unknown
// strategy falls back to the no-disposal worst case.
func (c Calculator) strategyFactor(s models.EOLStrategy) float64 {
	if f, ok := c.factors.StrategyFactors[s]; ok {
		return f
	}
	return c.factors.StrategyFactors[models.EOLNone]
}
