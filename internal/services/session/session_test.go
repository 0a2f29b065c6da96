package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbitscore/internal/models"
	"orbitscore/internal/services/debris"
)

type fakeRecorder struct {
	computed int
	cached   int
}

func (f *fakeRecorder) AnalysisComputed(models.SustainabilityResult) { f.computed++ }
func (f *fakeRecorder) AnalysisCached()                              { f.cached++ }

func newTestSession(rec Recorder) *Session {
	return New(debris.NewCalculator(debris.DefaultFactors()), rec)
}

func TestNewSessionStartsAtDefaults(t *testing.T) {
	s := newTestSession(nil)

	params, version := s.Snapshot()

	assert.Equal(t, models.DefaultMissionParameters(), params)
	assert.Equal(t, uint64(1), version)
	assert.NotEmpty(t, s.ID())
}

func TestAnalysisBundleComesFromOneSnapshot(t *testing.T) {
	s := newTestSession(nil)

	a := s.Analysis()

	params, version := s.Snapshot()
	assert.Equal(t, params, a.Parameters)
	assert.Equal(t, version, a.Version)
	assert.Equal(t, s.ID(), a.SessionID)

	// Derived values match direct recomputation on the same snapshot.
	assert.Equal(t, a.Business.Capex+a.Business.Opex, a.Business.TCO)
	assert.InDelta(t, -0.111111, a.Business.ROI, 1e-6)
	assert.InDelta(t, 0.153333, a.Debris.CollisionRisk, 1e-6)
	assert.Equal(t, models.BandYellow, a.Sustainability.Band)
}

func TestAnalysisIsIdempotentAndCached(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(rec)

	first := s.Analysis()
	second := s.Analysis()

	assert.Equal(t, first, second, "repeat analysis of an unchanged session must be bit-identical")
	assert.Equal(t, 1, rec.computed)
	assert.Equal(t, 1, rec.cached)
}

func TestUpdateInvalidatesCacheAndBumpsVersion(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(rec)

	before := s.Analysis()

	count := 200
	strategy := models.EOLNone
	lifetime := 15
	_, err := s.Update(models.ParameterPatch{
		SatelliteCount: &count,
		LifetimeYears:  &lifetime,
		EOLStrategy:    &strategy,
	})
	require.NoError(t, err)

	after := s.Analysis()

	assert.Equal(t, before.Version+1, after.Version)
	assert.Equal(t, 1.0, after.Debris.CollisionRisk)
	assert.Equal(t, 120, after.Debris.ProjectedDebrisIndex)
	assert.Equal(t, 2, rec.computed, "mutation must force a recompute")
}

func TestUpdateRejectsInvalidPatchAndKeepsState(t *testing.T) {
	s := newTestSession(nil)
	before, version := s.Snapshot()

	bad := -5
	_, err := s.Update(models.ParameterPatch{SatelliteCount: &bad})
	assert.Error(t, err)

	params, v := s.Snapshot()
	assert.Equal(t, before, params, "failed update must not leave partial state")
	assert.Equal(t, version, v)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	s := newTestSession(nil)

	_, err := s.Update(models.ParameterPatch{})
	assert.Error(t, err)
}

func TestApplyPresetReplacesEveryField(t *testing.T) {
	s := newTestSession(nil)

	// Drift the session away from defaults first.
	years := 30
	opex := 9.5
	_, err := s.Update(models.ParameterPatch{MissionYears: &years, AnnualOpexPerSatellite: &opex})
	require.NoError(t, err)

	preset := models.MissionParameters{
		SatelliteCount:              80,
		MissionYears:                4,
		ExpectedRevenuePerSatellite: 6,
		CostPerSatellite:            3.5,
		AnnualOpexPerSatellite:      0.6,
		LifetimeYears:               5,
		EOLStrategy:                 models.EOLDeorbit,
	}
	got := s.ApplyPreset(preset)

	assert.Equal(t, preset, got, "no field from the prior scenario may survive")

	params, _ := s.Snapshot()
	assert.Equal(t, preset, params)
}

func TestAnalysisAfterPresetUsesNewSnapshot(t *testing.T) {
	s := newTestSession(nil)
	s.Analysis() // warm the cache on defaults

	s.ApplyPreset(models.MissionParameters{
		SatelliteCount:              150,
		MissionYears:                8,
		ExpectedRevenuePerSatellite: 14,
		CostPerSatellite:            9,
		AnnualOpexPerSatellite:      1.5,
		LifetimeYears:               9,
		EOLStrategy:                 models.EOLGraveyard,
	})

	a := s.Analysis()
	assert.Equal(t, 150, a.Parameters.SatelliteCount)
	assert.Equal(t, 150*9.0, a.Business.Capex)
}
