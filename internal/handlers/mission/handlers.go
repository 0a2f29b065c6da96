// Package mission exposes the scoring engine to the presentation
// layer as a JSON API. All decision logic lives in the services; this
// layer only parses, validates, and serializes.
package mission

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"orbitscore/internal/logging"
	"orbitscore/internal/models"
	"orbitscore/internal/services/datasource"
	"orbitscore/internal/services/presets"
	"orbitscore/internal/services/session"
)

var (
	sess     *session.Session
	registry *presets.Registry
	source   *datasource.Stub
	logger   logging.Logger
)

// Initialize sets up the mission package with required dependencies.
func Initialize(s *session.Session, r *presets.Registry, d *datasource.Stub, l logging.Logger) {
	sess = s
	registry = r
	source = d
	logger = l
	if logger == nil {
		logger = logging.Noop()
	}
}

// RegisterRoutes registers all mission routes.
func RegisterRoutes(r chi.Router) {
	r.Get("/api/mission", handleMission)
	r.Patch("/api/mission/parameters", handleUpdateParameters)
	r.Get("/api/mission/presets", handleListPresets)
	r.Post("/api/mission/preset/{name}", handleApplyPreset)
	r.Get("/api/datasource/summary", handleDatasetSummary)
}

// handleMission returns the full analysis for the current parameters.
// Derived values are always recomputed (or served from the snapshot
// cache) before the response is built, so the bundle is consistent
// with the latest inputs.
func handleMission(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sess.Analysis())
}

// handleUpdateParameters applies a partial parameter update. Invalid
// input is a 400 here; the calculators themselves never fail.
func handleUpdateParameters(w http.ResponseWriter, r *http.Request) {
	var patch models.ParameterPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	params, err := sess.Update(patch)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	analysis := sess.Analysis()
	logger.Info(r.Context(), "parameters updated",
		logging.Uint64("version", analysis.Version),
		logging.Int("satellites", params.SatelliteCount),
		logging.String("eol_strategy", string(params.EOLStrategy)))

	writeJSON(w, http.StatusOK, analysis)
}

// handleApplyPreset replaces the whole parameter set with a named
// scenario bundle.
func handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(chi.URLParam(r, "name"))

	bundle, ok := registry.Get(name)
	if !ok {
		jsonError(w, "unknown preset: "+name, http.StatusNotFound)
		return
	}

	sess.ApplyPreset(bundle)

	analysis := sess.Analysis()
	logger.Info(r.Context(), "preset applied",
		logging.String("preset", name),
		logging.Uint64("version", analysis.Version))

	writeJSON(w, http.StatusOK, analysis)
}

// presetEntry pairs a preset name with its bundle for listing.
type presetEntry struct {
	Name       string                   `json:"name"`
	Parameters models.MissionParameters `json:"parameters"`
}

func handleListPresets(w http.ResponseWriter, r *http.Request) {
	names := registry.Names()
	entries := make([]presetEntry, 0, len(names))
	for _, name := range names {
		p, _ := registry.Get(name)
		entries = append(entries, presetEntry{Name: name, Parameters: p})
	}
	writeJSON(w, http.StatusOK, map[string]any{"presets": entries})
}

func handleDatasetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"datasets":           source.DatasetSummaries(),
		"imagery_sample_url": source.ImagerySampleURL(),
	})
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(context.Background(), "encode response", logging.Err(err))
	}
}

// jsonError renders a JSON error payload.
func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
