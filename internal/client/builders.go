package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coursekit/course-api/internal/config"
)

// DefaultTimeout applies when HTTPConfig.Timeout is zero.
const DefaultTimeout = 100 * time.Second

// HTTPConfig configures the HTTP clients built by this package.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger

	// Coverage, if set, records every request.
	Coverage *CoverageTracker

	// Transport is the innermost RoundTripper. Nil means
	// http.DefaultTransport.
	Transport http.RoundTripper
}

// NewHTTPConfig builds an HTTPConfig from the client section of the
// configuration. coverage may be nil.
func NewHTTPConfig(cfg config.ClientConfig, log *slog.Logger, coverage *CoverageTracker) HTTPConfig {
	return HTTPConfig{
		BaseURL:  cfg.BaseURL,
		Timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:   log,
		Coverage: coverage,
	}
}

// NewPublicHTTPClient builds a client without credentials, for the
// endpoints that do not require authentication.
func NewPublicHTTPClient(cfg HTTPConfig) (*APIClient, error) {
	return newHTTPClient(cfg)
}

func newHTTPClient(cfg HTTPConfig, extra ...Middleware) (*APIClient, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	middlewares := append([]Middleware{}, extra...)
	middlewares = append(middlewares, CurlLogger(log.With(slog.String("component", "api_client"))))
	if cfg.Coverage != nil {
		middlewares = append(middlewares, cfg.Coverage.Middleware())
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: Chain(cfg.Transport, middlewares...),
	}
	return NewAPIClient(httpClient, cfg.BaseURL)
}
