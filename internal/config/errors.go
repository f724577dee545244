package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can match them with errors.Is.
var (
	// ErrNoTarget is returned when the URL list is empty.
	ErrNoTarget = errors.New("no target specified: the URL list is empty")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrNoReportFile is returned when the report file path is empty.
	ErrNoReportFile = errors.New("no report file specified")

	// ErrInvalidTarget is returned when a URL in the list is not an absolute
	// http or https URL. It is wrapped together with the offending URL.
	ErrInvalidTarget = errors.New("invalid target URL")
)
