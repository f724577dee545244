package model

// ErrorKind classifies why a check produced no HTTP response.
// The report keeps a single "Error" label for every kind; the kind is
// carried for diagnostics and tests.
type ErrorKind int

const (
	// ErrorKindNone means the server responded with a status code.
	ErrorKindNone ErrorKind = iota

	// ErrorKindTimeout means no response arrived within the request timeout.
	ErrorKindTimeout

	// ErrorKindDNS means the host name could not be resolved.
	ErrorKindDNS

	// ErrorKindTLS means the TLS handshake failed.
	// Certificate verification is disabled, so this covers protocol-level
	// failures such as a plain HTTP server behind an https:// URL.
	ErrorKindTLS

	// ErrorKindConnection means the TCP connection was refused, reset or
	// otherwise failed below HTTP.
	ErrorKindConnection

	// ErrorKindProtocol means the request could not be built or the
	// server's response could not be parsed.
	ErrorKindProtocol

	// ErrorKindUnknown is any failure not matched above.
	ErrorKindUnknown
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "none"
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindDNS:
		return "dns"
	case ErrorKindTLS:
		return "tls"
	case ErrorKindConnection:
		return "connection"
	case ErrorKindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}
