// Package session owns the live mission parameter set. It is the
// single writer: every mutation is applied atomically, bumps the
// version, and invalidates the derived-analysis cache, so consumers
// can never pair derived values with a newer parameter set or mix
// results from two snapshots.
package session

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"orbitscore/internal/models"
	"orbitscore/internal/services/debris"
	"orbitscore/internal/services/economics"
	"orbitscore/internal/services/sustainability"
)

// Recorder receives engine events so an observability layer can export
// them. A nil recorder disables reporting.
type Recorder interface {
	AnalysisComputed(models.SustainabilityResult)
	AnalysisCached()
}

// Session is the single logical owner of the MissionParameters
// instance for one interactive exploration.
type Session struct {
	id         string
	debrisCalc debris.Calculator
	recorder   Recorder

	mu       sync.Mutex
	params   models.MissionParameters
	version  uint64
	cacheKey string
	cached   models.MissionAnalysis
}

// New creates a session with the documented default parameters.
func New(debrisCalc debris.Calculator, recorder Recorder) *Session {
	return &Session{
		id:         uuid.NewString(),
		debrisCalc: debrisCalc,
		recorder:   recorder,
		params:     models.DefaultMissionParameters(),
		version:    1,
	}
}

// ID returns the session identity.
func (s *Session) ID() string { return s.id }

// Snapshot returns the current parameters and their version.
func (s *Session) Snapshot() (models.MissionParameters, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params, s.version
}

// Update applies a field-by-field patch atomically. The patched
// parameter set is validated before it is committed; on error the
// session keeps its previous state.
func (s *Session) Update(patch models.ParameterPatch) (models.MissionParameters, error) {
	if patch.Empty() {
		return models.MissionParameters{}, fmt.Errorf("update: no fields to change")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := patch.ApplyTo(s.params)
	if err := next.Validate(); err != nil {
		return models.MissionParameters{}, fmt.Errorf("update: %w", err)
	}

	s.commit(next)
	return s.params, nil
}

// ApplyPreset replaces all seven parameters with the preset bundle in
// one atomic step. No field of the previous scenario survives.
func (s *Session) ApplyPreset(p models.MissionParameters) models.MissionParameters {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(p)
	return s.params
}

// commit installs a new parameter set. Caller must hold s.mu.
func (s *Session) commit(p models.MissionParameters) {
	s.params = p
	s.version++
	s.cacheKey = ""
}

// Analysis runs all three calculators on the current snapshot and
// returns the bundled results. Recomputation is side-effect free and
// idempotent: for an unchanged parameter set the cached bundle is
// returned, and recomputing yields bit-identical results.
func (s *Session) Analysis() models.MissionAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := paramsHash(s.params)
	if key != "" && key == s.cacheKey {
		if s.recorder != nil {
			s.recorder.AnalysisCached()
		}
		return s.cached
	}

	business := economics.Compute(s.params)
	debrisResult := s.debrisCalc.Compute(s.params)
	score := sustainability.Compute(debrisResult, business)

	analysis := models.MissionAnalysis{
		SessionID:      s.id,
		Version:        s.version,
		Parameters:     s.params,
		Business:       business,
		Debris:         debrisResult,
		Sustainability: score,
	}

	s.cacheKey = key
	s.cached = analysis
	if s.recorder != nil {
		s.recorder.AnalysisComputed(score)
	}
	return analysis
}

// paramsHash keys the analysis cache by the JSON encoding of the
// parameter set. An empty key disables caching for that read.
func paramsHash(p models.MissionParameters) string {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum[:8])
}
