package models

// BusinessResult contains the mission economics derived from a
// parameter snapshot.
type BusinessResult struct {
	Capex   float64 `json:"capex"`
	Opex    float64 `json:"opex"`
	TCO     float64 `json:"tco"` // capex + opex
	Revenue float64 `json:"revenue"`
	ROI     float64 `json:"roi"` // (revenue - tco) / tco; 0 when tco is 0
}

// DebrisResult contains the collision-risk heuristic outputs.
// ProjectedDebrisIndex is a relative severity score, not a percentage,
// even though typical values land in a 0-100-ish range.
type DebrisResult struct {
	CollisionRisk        float64 `json:"collision_risk"` // always in [0,1]
	ProjectedDebrisIndex int     `json:"projected_debris_index"`
}

// Band is the discrete sustainability classification.
type Band string

const (
	BandGreen  Band = "green"
	BandYellow Band = "yellow"
	BandRed    Band = "red"
)

// SustainabilityResult is the composite of economics and debris risk.
type SustainabilityResult struct {
	Score float64 `json:"score"` // always in [0,1]
	Band  Band    `json:"band"`
}

// MissionAnalysis bundles a parameter snapshot with every derived
// result computed from it. All fields come from the same snapshot;
// consumers never see results from two different parameter versions
// mixed in one bundle.
type MissionAnalysis struct {
	SessionID      string               `json:"session_id"`
	Version        uint64               `json:"version"`
	Parameters     MissionParameters    `json:"parameters"`
	Business       BusinessResult       `json:"business"`
	Debris         DebrisResult         `json:"debris"`
	Sustainability SustainabilityResult `json:"sustainability"`
}
