package checker

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/url"

	"github.com/nao1215/urlstatus/internal/model"
)

// Classify maps a request error to an ErrorKind.
// Checks run from the most specific cause to the most generic one: a DNS
// failure is reported as DNS even when the lookup timed out, and a TLS
// handshake timeout is reported as a timeout.
func Classify(err error) model.ErrorKind {
	if err == nil {
		return model.ErrorKindNone
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return model.ErrorKindDNS
	}

	if isTimeout(err) {
		return model.ErrorKindTimeout
	}

	if isTLSError(err) {
		return model.ErrorKindTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return model.ErrorKindConnection
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return model.ErrorKindProtocol
	}

	return model.ErrorKindUnknown
}

// isTimeout reports whether err is a deadline or timeout error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isTLSError reports whether err came from the TLS layer.
func isTLSError(err error) bool {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return true
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	// Alerts sent by the server during the handshake surface as an OpError
	// with Op "remote error" wrapping an unexported alert type.
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "remote error"
}
