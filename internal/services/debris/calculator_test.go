package debris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitscore/internal/models"
)

func params(count, lifetime int, strategy models.EOLStrategy) models.MissionParameters {
	return models.MissionParameters{
		SatelliteCount:              count,
		MissionYears:                5,
		ExpectedRevenuePerSatellite: 8,
		CostPerSatellite:            5,
		AnnualOpexPerSatellite:      0.8,
		LifetimeYears:               lifetime,
		EOLStrategy:                 strategy,
	}
}

func TestCompute_SaturatedFleetNoDisposal(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	got := calc.Compute(params(200, 15, models.EOLNone))

	// Both base-risk terms saturate, strategy factor is 1.0.
	assert.Equal(t, 1.0, got.CollisionRisk)
	// round(100 * (200/300) * (15/10) * 1.2) = round(120) = 120
	assert.Equal(t, 120, got.ProjectedDebrisIndex)
}

func TestCompute_ModestFleetWithDeorbit(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	got := calc.Compute(params(60, 7, models.EOLDeorbit))

	// base = 60/200*0.5 + 7/15*0.5 = 0.383333..., x0.4 = 0.153333...
	assert.InDelta(t, 0.153333, got.CollisionRisk, 1e-6)
	// round(100 * 0.2 * 0.7 * 0.7) = round(9.8) = 10
	assert.Equal(t, 10, got.ProjectedDebrisIndex)
}

func TestCompute_StrategyOrdering(t *testing.T) {
	calc := NewCalculator(DefaultFactors())
	p := params(100, 8, models.EOLDeorbit)

	deorbit := calc.Compute(p)
	p.EOLStrategy = models.EOLGraveyard
	graveyard := calc.Compute(p)
	p.EOLStrategy = models.EOLNone
	none := calc.Compute(p)

	assert.Less(t, deorbit.CollisionRisk, graveyard.CollisionRisk)
	assert.Less(t, graveyard.CollisionRisk, none.CollisionRisk)
	assert.Less(t, deorbit.ProjectedDebrisIndex, none.ProjectedDebrisIndex)
}

func TestCompute_RiskStaysInUnitInterval(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	scenarios := []models.MissionParameters{
		params(1, 1, models.EOLDeorbit),
		params(5000, 50, models.EOLNone),
		params(200, 1, models.EOLGraveyard),
		params(1, 100, models.EOLNone),
	}

	for _, p := range scenarios {
		got := calc.Compute(p)
		assert.GreaterOrEqual(t, got.CollisionRisk, 0.0)
		assert.LessOrEqual(t, got.CollisionRisk, 1.0)
		assert.GreaterOrEqual(t, got.ProjectedDebrisIndex, 0)
	}
}

func TestCompute_UnknownStrategyUsesWorstCase(t *testing.T) {
	calc := NewCalculator(DefaultFactors())
	p := params(100, 8, "experimental")

	got := calc.Compute(p)
	p.EOLStrategy = models.EOLNone
	worst := calc.Compute(p)

	assert.Equal(t, worst.CollisionRisk, got.CollisionRisk)
}

func TestCompute_FactorsAreInjectable(t *testing.T) {
	factors := DefaultFactors()
	factors.StrategyFactors[models.EOLDeorbit] = 0.2
	calc := NewCalculator(factors)

	tightened := calc.Compute(params(60, 7, models.EOLDeorbit))
	baseline := NewCalculator(DefaultFactors()).Compute(params(60, 7, models.EOLDeorbit))

	assert.Less(t, tightened.CollisionRisk, baseline.CollisionRisk,
		"a stricter deorbit factor should lower risk without changing the contract")
}

func TestCompute_IsDeterministic(t *testing.T) {
	calc := NewCalculator(DefaultFactors())
	p := params(130, 9, models.EOLGraveyard)

	assert.Equal(t, calc.Compute(p), calc.Compute(p))
}
