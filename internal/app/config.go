package app

import (
	"fmt"

	"github.com/specialistvlad/zipweather/internal/report"
	"github.com/specialistvlad/zipweather/internal/weather"
)

// APIKeyEnv is the environment variable holding the OpenWeatherMap key.
const APIKeyEnv = "OWM_API_KEY"

// ZipkinURLEnv optionally points at a Zipkin collector.
const ZipkinURLEnv = "OWM_ZIPKIN_URL"

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// Config holds everything a single run needs.
type Config struct {
	Query    weather.Query
	Endpoint string

	ColorMode report.ColorMode
	LogFormat string
	LogLevel  string
	ZipkinURL string
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Query.APIKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrMissingCredential, APIKeyEnv)
	}
	if cfg.Query.CountryCode == "" {
		cfg.Query.CountryCode = weather.CountryCode
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = weather.DefaultEndpoint
	}
	if cfg.ColorMode == "" {
		cfg.ColorMode = report.ColorAuto
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return &cfg, nil
}
