package models

import "fmt"

// EOLStrategy is the end-of-life disposal policy for spacecraft.
type EOLStrategy string

const (
	EOLDeorbit   EOLStrategy = "deorbit"   // active deorbit at end of mission
	EOLGraveyard EOLStrategy = "graveyard" // boost to a graveyard orbit
	EOLNone      EOLStrategy = "none"      // no disposal plan
)

// Valid reports whether the strategy is one of the known policies.
func (s EOLStrategy) Valid() bool {
	switch s {
	case EOLDeorbit, EOLGraveyard, EOLNone:
		return true
	}
	return false
}

// MissionParameters contains all user-adjustable inputs for a
// constellation scenario. It is a plain value; calculators take a
// snapshot as an explicit argument and never read shared state.
type MissionParameters struct {
	SatelliteCount              int         `json:"satellite_count"`                // number of spacecraft
	MissionYears                int         `json:"mission_years"`                  // revenue-generating mission duration
	ExpectedRevenuePerSatellite float64     `json:"expected_revenue_per_satellite"` // monetary units over the mission
	CostPerSatellite            float64     `json:"cost_per_satellite"`             // capital cost per spacecraft
	AnnualOpexPerSatellite      float64     `json:"annual_opex_per_satellite"`      // operating cost per spacecraft per year
	LifetimeYears               int         `json:"lifetime_years"`                 // operational lifetime used for debris accrual
	EOLStrategy                 EOLStrategy `json:"eol_strategy"`
}

// DefaultMissionParameters returns the session-start scenario.
func DefaultMissionParameters() MissionParameters {
	return MissionParameters{
		SatelliteCount:              60,
		MissionYears:                5,
		ExpectedRevenuePerSatellite: 8.0,
		CostPerSatellite:            5.0,
		AnnualOpexPerSatellite:      0.8,
		LifetimeYears:               7,
		EOLStrategy:                 EOLDeorbit,
	}
}

// Validate checks the parameter constraints. The calculators themselves
// are total over valid inputs; this is the host-side guard applied
// before a mutation is accepted.
func (p MissionParameters) Validate() error {
	if p.SatelliteCount < 1 {
		return fmt.Errorf("satellite_count must be at least 1, got %d", p.SatelliteCount)
	}
	if p.MissionYears < 1 {
		return fmt.Errorf("mission_years must be at least 1, got %d", p.MissionYears)
	}
	if p.LifetimeYears < 1 {
		return fmt.Errorf("lifetime_years must be at least 1, got %d", p.LifetimeYears)
	}
	if p.ExpectedRevenuePerSatellite < 0 {
		return fmt.Errorf("expected_revenue_per_satellite must not be negative, got %v", p.ExpectedRevenuePerSatellite)
	}
	if p.CostPerSatellite < 0 {
		return fmt.Errorf("cost_per_satellite must not be negative, got %v", p.CostPerSatellite)
	}
	if p.AnnualOpexPerSatellite < 0 {
		return fmt.Errorf("annual_opex_per_satellite must not be negative, got %v", p.AnnualOpexPerSatellite)
	}
	if !p.EOLStrategy.Valid() {
		return fmt.Errorf("eol_strategy must be one of deorbit, graveyard, none; got %q", p.EOLStrategy)
	}
	return nil
}

// ParameterPatch is a partial update to MissionParameters. Nil fields
// keep their current value; applying a patch is the field-by-field
// mutation path, as opposed to the wholesale replacement a preset does.
type ParameterPatch struct {
	SatelliteCount              *int         `json:"satellite_count,omitempty"`
	MissionYears                *int         `json:"mission_years,omitempty"`
	ExpectedRevenuePerSatellite *float64     `json:"expected_revenue_per_satellite,omitempty"`
	CostPerSatellite            *float64     `json:"cost_per_satellite,omitempty"`
	AnnualOpexPerSatellite      *float64     `json:"annual_opex_per_satellite,omitempty"`
	LifetimeYears               *int         `json:"lifetime_years,omitempty"`
	EOLStrategy                 *EOLStrategy `json:"eol_strategy,omitempty"`
}

// ApplyTo returns a copy of p with the patch's non-nil fields applied.
func (pp ParameterPatch) ApplyTo(p MissionParameters) MissionParameters {
	if pp.SatelliteCount != nil {
		p.SatelliteCount = *pp.SatelliteCount
	}
	if pp.MissionYears != nil {
		p.MissionYears = *pp.MissionYears
	}
	if pp.ExpectedRevenuePerSatellite != nil {
		p.ExpectedRevenuePerSatellite = *pp.ExpectedRevenuePerSatellite
	}
	if pp.CostPerSatellite != nil {
		p.CostPerSatellite = *pp.CostPerSatellite
	}
	if pp.AnnualOpexPerSatellite != nil {
		p.AnnualOpexPerSatellite = *pp.AnnualOpexPerSatellite
	}
	if pp.LifetimeYears != nil {
		p.LifetimeYears = *pp.LifetimeYears
	}
	if pp.EOLStrategy != nil {
		p.EOLStrategy = *pp.EOLStrategy
	}
	return p
}

// Empty reports whether the patch carries no changes.
func (pp ParameterPatch) Empty() bool {
	return pp.SatelliteCount == nil &&
		pp.MissionYears == nil &&
		pp.ExpectedRevenuePerSatellite == nil &&
		pp.CostPerSatellite == nil &&
		pp.AnnualOpexPerSatellite == nil &&
		pp.LifetimeYears == nil &&
		pp.EOLStrategy == nil
}
