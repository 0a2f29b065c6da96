package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"orbitscore/internal/config"
	"orbitscore/internal/handlers/mission"
	"orbitscore/internal/logging"
	"orbitscore/internal/observability"
	"orbitscore/internal/services/datasource"
	"orbitscore/internal/services/debris"
	"orbitscore/internal/services/presets"
	"orbitscore/internal/services/session"
	"orbitscore/internal/version"
)

var (
	logger    logging.Logger
	collector *observability.Collector
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("ORBITSCORE_CONFIG"))
	if err != nil {
		logging.New(logging.Config{}).Error(ctx, "load config", logging.Err(err))
		os.Exit(1)
	}

	logger = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Info(ctx, "starting constellation scoring server",
		logging.String("listen_addr", cfg.Server.ListenAddr),
		logging.String("version", version.Get().String()))

	if err := SetupDependencies(cfg); err != nil {
		logger.Error(ctx, "setup dependencies", logging.Err(err))
		os.Exit(1)
	}

	r := SetupRouter()

	if err := http.ListenAndServe(cfg.Server.ListenAddr, r); err != nil {
		logger.Error(ctx, "server stopped", logging.Err(err))
		os.Exit(1)
	}
}

// SetupDependencies wires the engine: datasource stubs feed the debris
// calculator, the session owns the parameter state, and the metrics
// collector observes every recompute.
func SetupDependencies(cfg *config.Config) error {
	if logger == nil {
		logger = logging.Noop()
	}

	var err error
	collector, err = observability.NewCollector(nil)
	if err != nil {
		return err
	}

	source := datasource.NewStub()
	calc := debris.NewCalculator(source.DebrisModelFactors())

	registry := presets.NewRegistry()
	for name, pc := range cfg.Presets {
		if err := registry.Add(name, pc.Parameters()); err != nil {
			logger.Warn(context.Background(), "skipping config preset", logging.Err(err))
		}
	}

	sess := session.New(calc, collector)
	mission.Initialize(sess, registry, source, logger)

	return nil
}

// SetupRouter builds the chi router with the full middleware stack.
func SetupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(collector.Middleware)

	mission.RegisterRoutes(r)

	r.Get("/api/health", handleHealth)
	r.Get("/api/version", handleVersion)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Get())
}
