package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Report layout constants.
const (
	// StatusColumnWidth is the minimum width of the status column.
	// Shorter labels are left-justified and padded with spaces.
	StatusColumnWidth = 10

	// ColumnSeparator separates the status column from the URL column.
	ColumnSeparator = " | "

	// SeparatorWidth is the number of dashes under the report header.
	SeparatorWidth = 120

	// ErrorLabel is written in the status column when no response was received.
	ErrorLabel = "Error"
)

// CheckResult is the outcome of checking a single URL.
//
// Exactly one of the following holds:
//   - the server responded: StatusCode is set and Err is nil
//   - the request failed: Err is set, StatusCode is zero and Kind is not ErrorKindNone
//
// A CheckResult is built once by NewStatusResult or NewErrorResult and
// must not be modified afterwards.
type CheckResult struct {
	// URL is the checked URL, exactly as given in the input list.
	URL string `json:"url"`

	// StatusCode is the HTTP status returned by the server, including non-2xx codes.
	StatusCode int `json:"status_code,omitempty"`

	// Err is the transport failure. Nil when the server responded.
	Err error `json:"-"`

	// Kind classifies Err.
	Kind ErrorKind `json:"-"`
}

// NewStatusResult creates a result for a URL whose server responded.
func NewStatusResult(url string, statusCode int) *CheckResult {
	return &CheckResult{
		URL:        url,
		StatusCode: statusCode,
		Kind:       ErrorKindNone,
	}
}

// NewErrorResult creates a result for a URL that produced no response.
// A nil err is replaced with a generic message so Reason never returns "".
func NewErrorResult(url string, kind ErrorKind, err error) *CheckResult {
	if err == nil {
		err = fmt.Errorf("%s error", kind)
	}
	if kind == ErrorKindNone {
		kind = ErrorKindUnknown
	}
	return &CheckResult{
		URL:  url,
		Err:  err,
		Kind: kind,
	}
}

// Failed reports whether the check produced no HTTP response.
func (r *CheckResult) Failed() bool {
	return r.Err != nil
}

// Success reports whether the server responded with a 2xx status.
func (r *CheckResult) Success() bool {
	return !r.Failed() && r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusLabel returns the text of the status column: the numeric status
// code, or ErrorLabel for failures.
func (r *CheckResult) StatusLabel() string {
	if r.Failed() {
		return ErrorLabel
	}
	return strconv.Itoa(r.StatusCode)
}

// Reason returns the failure description, or "" when the server responded.
func (r *CheckResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Line formats the result as a report line without a trailing newline.
//
//	200        | https://example.com/logo.png
//	Error      | https://nonexistent.invalid/logo.png (dial tcp: lookup nonexistent.invalid: no such host)
func (r *CheckResult) Line() string {
	line := formatRow(r.StatusLabel(), r.URL)
	if r.Failed() {
		line += " (" + r.Reason() + ")"
	}
	return line
}

// HeaderLine returns the column header of the report file.
func HeaderLine() string {
	return formatRow("Status", "URL")
}

// SeparatorLine returns the dashed line written under the header.
func SeparatorLine() string {
	return strings.Repeat("-", SeparatorWidth)
}

// formatRow left-justifies label to StatusColumnWidth and appends value.
func formatRow(label, value string) string {
	return fmt.Sprintf("%-*s%s%s", StatusColumnWidth, label, ColumnSeparator, value)
}
