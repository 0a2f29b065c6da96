package economics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitscore/internal/models"
)

func TestCompute_BaselineScenario(t *testing.T) {
	p := models.MissionParameters{
		SatelliteCount:              60,
		MissionYears:                5,
		ExpectedRevenuePerSatellite: 8,
		CostPerSatellite:            5,
		AnnualOpexPerSatellite:      0.8,
		LifetimeYears:               7,
		EOLStrategy:                 models.EOLDeorbit,
	}

	got := Compute(p)

	assert.Equal(t, 300.0, got.Capex)
	assert.Equal(t, 240.0, got.Opex)
	assert.Equal(t, 540.0, got.TCO)
	assert.Equal(t, 480.0, got.Revenue)
	assert.InDelta(t, -0.111111, got.ROI, 1e-6)
}

func TestCompute_ZeroTCOSaturatesROI(t *testing.T) {
	p := models.MissionParameters{
		SatelliteCount:              10,
		MissionYears:                5,
		ExpectedRevenuePerSatellite: 8,
		CostPerSatellite:            0,
		AnnualOpexPerSatellite:      0,
		LifetimeYears:               5,
		EOLStrategy:                 models.EOLDeorbit,
	}

	got := Compute(p)

	assert.Equal(t, 0.0, got.TCO)
	assert.Equal(t, 0.0, got.ROI, "roi saturates to 0 at zero tco")
	assert.Equal(t, 80.0, got.Revenue)
}

func TestCompute_TCOIsExactlyCapexPlusOpex(t *testing.T) {
	scenarios := []models.MissionParameters{
		{SatelliteCount: 1, MissionYears: 1, CostPerSatellite: 0.1, AnnualOpexPerSatellite: 0.01},
		{SatelliteCount: 250, MissionYears: 12, ExpectedRevenuePerSatellite: 3.3, CostPerSatellite: 7.7, AnnualOpexPerSatellite: 1.9},
		{SatelliteCount: 999, MissionYears: 30, ExpectedRevenuePerSatellite: 100, CostPerSatellite: 42.5, AnnualOpexPerSatellite: 6.25},
	}

	for _, p := range scenarios {
		got := Compute(p)
		assert.Equal(t, got.Capex+got.Opex, got.TCO, "tco must equal capex+opex bit-exactly")
	}
}

func TestCompute_ProfitableScenarioHasPositiveROI(t *testing.T) {
	p := models.DefaultMissionParameters()
	p.ExpectedRevenuePerSatellite = 20

	got := Compute(p)

	assert.Greater(t, got.ROI, 0.0)
}

func TestCompute_IsDeterministic(t *testing.T) {
	p := models.DefaultMissionParameters()
	assert.Equal(t, Compute(p), Compute(p))
}
