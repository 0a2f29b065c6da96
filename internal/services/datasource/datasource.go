// Package datasource stands in for the remote debris-environment
// services. Everything here returns fixed canned values; a real
// integration would swap the stub for live clients while keeping the
// same read-only shape toward the calculators.
package datasource

import "orbitscore/internal/services/debris"

// DatasetSummary describes one upstream debris dataset.
type DatasetSummary struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Records int    `json:"records"`
	Updated string `json:"updated"`
}

// Stub serves the canned values.
type Stub struct{}

// NewStub returns the canned data source.
func NewStub() *Stub {
	return &Stub{}
}

// DebrisModelFactors returns the scaling factors consumed by the
// debris risk calculator.
func (s *Stub) DebrisModelFactors() debris.ModelFactors {
	return debris.DefaultFactors()
}

// DatasetSummaries returns the upstream dataset descriptions shown in
// the data panel.
func (s *Stub) DatasetSummaries() []DatasetSummary {
	return []DatasetSummary{
		{
			Name:    "Tracked objects catalog",
			Source:  "Space-Track",
			Records: 27541,
			Updated: "2025-11-02",
		},
		{
			Name:    "Fragmentation events",
			Source:  "ESA DISCOS",
			Records: 643,
			Updated: "2025-10-18",
		},
		{
			Name:    "Conjunction alerts, trailing 30 days",
			Source:  "LeoLabs sample feed",
			Records: 1189,
			Updated: "2025-11-05",
		},
	}
}

// ImagerySampleURL returns the demo orbital imagery asset.
func (s *Stub) ImagerySampleURL() string {
	return "https://images-assets.nasa.gov/image/iss056e201225/iss056e201225~orig.jpg"
}
