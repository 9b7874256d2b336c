package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SuiteConfig holds configuration for the browser test suite
type SuiteConfig struct {
	// BaseURL of the login page. Empty means the suite starts the stand-in app itself.
	BaseURL       string        `validate:"omitempty,url"`
	Browser       string        `validate:"oneof=chromium firefox webkit"`
	Headless      bool
	SlowMo        time.Duration `validate:"gte=0"`
	Timeout       time.Duration `validate:"gt=0"`
	Retries       int           `validate:"gte=0,lte=10"`
	RetryDelay    time.Duration `validate:"gte=0"`
	DataDir       string        `validate:"required"`
	ArtifactsDir  string        `validate:"required"`
	RecordResults bool
	LogLevel      string        `validate:"oneof=trace debug info warn error"`
}

var suiteEnvKeys = map[string]string{
	"BaseURL":      "BASE_URL",
	"Browser":      "BROWSER",
	"SlowMo":       "SLOW_MO",
	"Timeout":      "SUITE_TIMEOUT",
	"Retries":      "SUITE_RETRIES",
	"RetryDelay":   "SUITE_RETRY_DELAY",
	"DataDir":      "DATA_DIR",
	"ArtifactsDir": "ARTIFACTS_DIR",
	"LogLevel":     "LOG_LEVEL",
}

// Suite defaults
const (
	DefaultBrowser    = "chromium"
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	config := &SuiteConfig{
		BaseURL:      strings.TrimRight(getenv("BASE_URL"), "/"),
		Browser:      strings.ToLower(valueOr(getenv("BROWSER"), DefaultBrowser)),
		Headless:     getenv("HEADLESS") != "false",
		DataDir:      valueOr(getenv("DATA_DIR"), "testdata"),
		ArtifactsDir: valueOr(getenv("ARTIFACTS_DIR"), "test-results"),
		LogLevel:     strings.ToLower(valueOr(getenv("LOG_LEVEL"), "info")),
	}

	var err error
	if config.SlowMo, err = durationOr(getenv("SLOW_MO"), 0); err != nil {
		return nil, fmt.Errorf("SLOW_MO: %w", err)
	}
	if config.Timeout, err = durationOr(getenv("SUITE_TIMEOUT"), DefaultTimeout); err != nil {
		return nil, fmt.Errorf("SUITE_TIMEOUT: %w", err)
	}
	if config.RetryDelay, err = durationOr(getenv("SUITE_RETRY_DELAY"), DefaultRetryDelay); err != nil {
		return nil, fmt.Errorf("SUITE_RETRY_DELAY: %w", err)
	}

	config.Retries = DefaultRetries
	if v := getenv("SUITE_RETRIES"); v != "" {
		if config.Retries, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("SUITE_RETRIES: %w", err)
		}
	}

	if v := getenv("RECORD_RESULTS"); v != "" {
		if config.RecordResults, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("RECORD_RESULTS: %w", err)
		}
	}

	if err := validateStruct(config, suiteEnvKeys); err != nil {
		return nil, err
	}

	return config, nil
}

// TimeoutMillis returns the step timeout in the unit playwright expects
func (c *SuiteConfig) TimeoutMillis() float64 {
	return float64(c.Timeout.Milliseconds())
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(v string, fallback time.Duration) (time.Duration, error) {
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}
