package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultTimeout is the per-request timeout.
	// A URL that does not respond within this duration is recorded as an error.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent with every request.
	// Some image hosts reject requests that do not look like a browser.
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultReportFile is the report written in the working directory.
	DefaultReportFile = "results.txt"

	// AppName is the application name.
	AppName = "urlstatus"
)

// Config holds the settings of a single run.
type Config struct {
	// Timeout bounds each request, from dial to response headers.
	Timeout time.Duration

	// UserAgent is the value of the User-Agent request header.
	UserAgent string

	// ReportFile is the path of the report. It is truncated on every run.
	ReportFile string

	// Targets is the ordered list of URLs to check.
	Targets []string

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// NewConfig creates a Config with default values and no targets.
func NewConfig() *Config {
	return &Config{
		Timeout:    DefaultTimeout,
		UserAgent:  DefaultUserAgent,
		ReportFile: DefaultReportFile,
	}
}

// Validate checks that the configuration can be used for a run.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.ReportFile == "" {
		return ErrNoReportFile
	}

	for _, target := range c.Targets {
		if err := validateTarget(target); err != nil {
			return err
		}
	}

	return nil
}

// validateTarget accepts absolute http and https URLs with a host.
func validateTarget(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidTarget, target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidTarget, target)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q: missing host", ErrInvalidTarget, target)
	}
	return nil
}
