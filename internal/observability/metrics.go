// Package observability exports Prometheus metrics for the scoring
// engine and its HTTP surface.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orbitscore/internal/models"
)

// Collector bundles the engine and HTTP metrics. It satisfies the
// session Recorder interface so the session can drive the engine
// series directly from its recompute path.
type Collector struct {
	gatherer prometheus.Gatherer

	Recomputes prometheus.Counter
	CacheHits  prometheus.Counter

	Score prometheus.Gauge
	Bands *prometheus.GaugeVec

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// NewCollector registers the engine metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	recomputes, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_recomputes_total",
		Help: "Number of full analysis recomputations triggered by parameter changes.",
	}), "engine_recomputes_total")
	if err != nil {
		return nil, err
	}
	cacheHits, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "engine_analysis_cache_hits_total",
		Help: "Number of analysis reads served from the snapshot cache.",
	}), "engine_analysis_cache_hits_total")
	if err != nil {
		return nil, err
	}

	score, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mission_sustainability_score",
		Help: "Composite sustainability score of the current scenario, in [0,1].",
	}), "mission_sustainability_score")
	if err != nil {
		return nil, err
	}

	bands := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mission_sustainability_band",
		Help: "1 for the active sustainability band of the current scenario, 0 otherwise.",
	}, []string{"band"})
	bands, err = registerGaugeVec(reg, bands, "mission_sustainability_band")
	if err != nil {
		return nil, err
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total handled HTTP requests, labeled by method, route, and status code.",
	}, []string{"method", "route", "code"})
	requests, err = registerCounterVec(reg, requests, "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"})
	durations, err = registerHistogramVec(reg, durations, "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		Recomputes:    recomputes,
		CacheHits:     cacheHits,
		Score:         score,
		Bands:         bands,
		HTTPRequests:  requests,
		HTTPDurations: durations,
	}, nil
}

// AnalysisComputed records a full recomputation and updates the
// current-scenario gauges.
func (c *Collector) AnalysisComputed(res models.SustainabilityResult) {
	if c == nil {
		return
	}
	c.Recomputes.Inc()
	c.Score.Set(res.Score)
	for _, band := range []models.Band{models.BandGreen, models.BandYellow, models.BandRed} {
		v := 0.0
		if band == res.Band {
			v = 1
		}
		c.Bands.WithLabelValues(string(band)).Set(v)
	}
}

// AnalysisCached records an analysis read served from cache.
func (c *Collector) AnalysisCached() {
	if c == nil {
		return
	}
	c.CacheHits.Inc()
}

// Middleware records request counts and durations, labeled by the chi
// route pattern so parameterized paths collapse into one series.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if c == nil {
			return
		}
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		c.HTTPRequests.WithLabelValues(r.Method, route, fmt.Sprintf("%d", ww.Status())).Inc()
		c.HTTPDurations.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
