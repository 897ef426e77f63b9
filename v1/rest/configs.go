package rest

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultHTTPTimeoutS is the request timeout applied when the config does
// not set one.
const DefaultHTTPTimeoutS = 30

// Config defines the configuration for the transport client. It is copied
// into the client at construction time and immutable afterwards; there is
// no hidden global state.
type Config struct {
	// APIKey authenticates every request via the Api-Key header.
	// Required — construction fails fast with ErrMissingAPIKey before any
	// network call is attempted.
	APIKey string `envconfig:"API_KEY"`

	// ControlPlaneHost is the fixed host for management operations
	// (indexes, collections, assistants), e.g. "https://api.example.io".
	// Required. Data-plane hosts are per resource and resolved at runtime
	// from describe calls, not configured here.
	ControlPlaneHost string `envconfig:"CONTROL_PLANE_HOST"`

	// HTTPTimeoutS is the per-request timeout in seconds.
	// Default: 30
	HTTPTimeoutS int `envconfig:"HTTP_TIMEOUT_SECONDS" default:"30"`

	// SourceTag is an optional integration identifier appended to the
	// User-Agent header.
	SourceTag string `envconfig:"SOURCE_TAG"`
}

// NewConfigFromEnv reads the configuration from VECTORHUB_* environment
// variables and validates it.
//
//	VECTORHUB_API_KEY
//	VECTORHUB_CONTROL_PLANE_HOST
//	VECTORHUB_HTTP_TIMEOUT_SECONDS
//	VECTORHUB_SOURCE_TAG
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vectorhub", &cfg); err != nil {
		return nil, fmt.Errorf("rest: read config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.ControlPlaneHost == "" {
		return ErrMissingControlPlaneHost
	}
	return nil
}
