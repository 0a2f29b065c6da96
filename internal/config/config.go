// Package config loads server configuration from an optional YAML
// file, a .env file, and environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"orbitscore/internal/models"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig            `yaml:"server"`
	Log     LogConfig               `yaml:"log"`
	Presets map[string]PresetConfig `yaml:"presets"` // extra scenario presets by name
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// PresetConfig is a complete scenario bundle declared in the config
// file. All seven fields are required; partial presets are rejected at
// registry load.
type PresetConfig struct {
	SatelliteCount              int     `yaml:"satellite_count"`
	MissionYears                int     `yaml:"mission_years"`
	ExpectedRevenuePerSatellite float64 `yaml:"expected_revenue_per_satellite"`
	CostPerSatellite            float64 `yaml:"cost_per_satellite"`
	AnnualOpexPerSatellite      float64 `yaml:"annual_opex_per_satellite"`
	LifetimeYears               int     `yaml:"lifetime_years"`
	EOLStrategy                 string  `yaml:"eol_strategy"`
}

// Parameters converts the config bundle to the engine's parameter type.
func (p PresetConfig) Parameters() models.MissionParameters {
	return models.MissionParameters{
		SatelliteCount:              p.SatelliteCount,
		MissionYears:                p.MissionYears,
		ExpectedRevenuePerSatellite: p.ExpectedRevenuePerSatellite,
		CostPerSatellite:            p.CostPerSatellite,
		AnnualOpexPerSatellite:      p.AnnualOpexPerSatellite,
		LifetimeYears:               p.LifetimeYears,
		EOLStrategy:                 models.EOLStrategy(p.EOLStrategy),
	}
}

// Load reads configuration. An empty path means defaults plus
// environment overrides; .env is loaded silently if present. Env vars
// win over the YAML file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	return cfg, nil
}

// applyEnvOverrides overrides values with environment variables when
// present.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ORBITSCORE_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults fills required values that are still unset.
func setDefaults(cfg *Config) {
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
