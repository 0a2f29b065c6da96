// Package presets holds the named scenario bundles. Applying a preset
// replaces every mission parameter at once; there is no merging with
// the previous scenario.
package presets

import (
	"fmt"
	"sort"

	"orbitscore/internal/models"
)

// Built-in preset names.
const (
	LowCost  = "lowcost"
	Luxury   = "luxury"
	Research = "research"
)

// Registry maps preset names to complete, immutable parameter bundles.
type Registry struct {
	presets map[string]models.MissionParameters
	builtin map[string]bool
}

// NewRegistry returns a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{
		presets: make(map[string]models.MissionParameters),
		builtin: make(map[string]bool),
	}
	for name, p := range builtinPresets() {
		r.presets[name] = p
		r.builtin[name] = true
	}
	return r
}

// builtinPresets returns the literal scenario bundles. Every value set
// is complete; a preset never inherits fields from the current state.
func builtinPresets() map[string]models.MissionParameters {
	return map[string]models.MissionParameters{
		LowCost: {
			SatelliteCount:              80,
			MissionYears:                4,
			ExpectedRevenuePerSatellite: 6,
			CostPerSatellite:            3.5,
			AnnualOpexPerSatellite:      0.6,
			LifetimeYears:               5,
			EOLStrategy:                 models.EOLDeorbit,
		},
		Luxury: {
			SatelliteCount:              150,
			MissionYears:                8,
			ExpectedRevenuePerSatellite: 14,
			CostPerSatellite:            9,
			AnnualOpexPerSatellite:      1.5,
			LifetimeYears:               9,
			EOLStrategy:                 models.EOLGraveyard,
		},
		Research: {
			SatelliteCount:              12,
			MissionYears:                6,
			ExpectedRevenuePerSatellite: 2,
			CostPerSatellite:            4,
			AnnualOpexPerSatellite:      0.5,
			LifetimeYears:               8,
			EOLStrategy:                 models.EOLDeorbit,
		},
	}
}

// Get returns a copy of the named preset's parameter bundle.
func (r *Registry) Get(name string) (models.MissionParameters, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// Names returns all registered preset names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add registers an extra preset, typically sourced from configuration.
// Built-in names cannot be overridden and every bundle must be a valid
// complete parameter set.
func (r *Registry) Add(name string, p models.MissionParameters) error {
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	if r.builtin[name] {
		return fmt.Errorf("preset %q is built in and cannot be overridden", name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	r.presets[name] = p
	return nil
}
