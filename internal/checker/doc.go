// Package checker issues the HTTP request for a single URL and turns the
// outcome into a model.CheckResult.
//
// Every request carries a browser-like User-Agent header and is bounded by
// the client timeout. TLS certificate verification is disabled on the
// transport owned by the Client only; no process-wide default is touched.
//
// Any response the server sends, including 4xx and 5xx, is a status result.
// Everything else (timeouts, DNS failures, refused connections, TLS and
// protocol errors) is an error result classified by model.ErrorKind.
package checker
