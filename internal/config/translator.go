package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kmoussa/dragoman/internal/translator"
)

const (
	EnvTranslatorRequestTimeout     = "DRAGOMAN_TRANSLATOR_REQUEST_TIMEOUT"
	EnvTranslatorTolerance          = "DRAGOMAN_TRANSLATOR_TOLERANCE"
	EnvTranslatorBreakerMaxFailures = "DRAGOMAN_TRANSLATOR_BREAKER_MAX_FAILURES"
	EnvTranslatorBreakerOpenTimeout = "DRAGOMAN_TRANSLATOR_BREAKER_OPEN_TIMEOUT"
)

// TranslatorConfig tunes the translation pipeline: per-call timeout,
// unresolved-token tolerance, and circuit breaker thresholds.
type TranslatorConfig struct {
	RequestTimeout     string  `toml:"request_timeout"`
	Tolerance          float64 `toml:"tolerance"`
	BreakerMaxFailures int     `toml:"breaker_max_failures"`
	BreakerOpenTimeout string  `toml:"breaker_open_timeout"`
}

// Options converts the config into translator pipeline options.
func (c *TranslatorConfig) Options() translator.Options {
	requestTimeout, _ := time.ParseDuration(c.RequestTimeout)
	openTimeout, _ := time.ParseDuration(c.BreakerOpenTimeout)

	return translator.Options{
		RequestTimeout:     requestTimeout,
		Tolerance:          c.Tolerance,
		BreakerMaxFailures: uint32(c.BreakerMaxFailures),
		BreakerOpenTimeout: openTimeout,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *TranslatorConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *TranslatorConfig) Merge(overlay *TranslatorConfig) {
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.Tolerance != 0 {
		c.Tolerance = overlay.Tolerance
	}
	if overlay.BreakerMaxFailures != 0 {
		c.BreakerMaxFailures = overlay.BreakerMaxFailures
	}
	if overlay.BreakerOpenTimeout != "" {
		c.BreakerOpenTimeout = overlay.BreakerOpenTimeout
	}
}

func (c *TranslatorConfig) loadDefaults() {
	if c.RequestTimeout == "" {
		c.RequestTimeout = "2m"
	}
	if c.Tolerance == 0 {
		c.Tolerance = 0.2
	}
	if c.BreakerMaxFailures == 0 {
		c.BreakerMaxFailures = 5
	}
	if c.BreakerOpenTimeout == "" {
		c.BreakerOpenTimeout = "1m"
	}
}

func (c *TranslatorConfig) loadEnv() {
	if v := os.Getenv(EnvTranslatorRequestTimeout); v != "" {
		c.RequestTimeout = v
	}
	if v := os.Getenv(EnvTranslatorTolerance); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Tolerance = t
		}
	}
	if v := os.Getenv(EnvTranslatorBreakerMaxFailures); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BreakerMaxFailures = n
		}
	}
	if v := os.Getenv(EnvTranslatorBreakerOpenTimeout); v != "" {
		c.BreakerOpenTimeout = v
	}
}

func (c *TranslatorConfig) validate() error {
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	if c.Tolerance < 0 || c.Tolerance > 1 {
		return fmt.Errorf("tolerance must be between 0 and 1: %v", c.Tolerance)
	}
	if c.BreakerMaxFailures < 1 {
		return fmt.Errorf("breaker_max_failures must be positive: %d", c.BreakerMaxFailures)
	}
	if _, err := time.ParseDuration(c.BreakerOpenTimeout); err != nil {
		return fmt.Errorf("invalid breaker_open_timeout: %w", err)
	}
	return nil
}
