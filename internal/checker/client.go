package checker

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/nao1215/urlstatus/internal/model"
)

// maxRedirects caps the redirect chain of a single check.
const maxRedirects = 10

// Checker checks a single URL.
type Checker interface {
	Check(ctx context.Context, target string) *model.CheckResult
}

// Client checks URLs with a dedicated HTTP client.
type Client struct {
	// httpClient is reused across checks so connections to the same host
	// can be kept alive between sequential requests.
	httpClient *http.Client

	// userAgent is sent with every request.
	userAgent string

	// timeout bounds each request.
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport. The User-Agent header is still
// injected on top of it. Intended for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = &headerInjectingTransport{
			base:      rt,
			userAgent: c.userAgent,
		}
	}
}

// NewClient creates a Client that sends userAgent and gives up on a
// request after timeout.
func NewClient(timeout time.Duration, userAgent string, opts ...Option) *Client {
	c := &Client{
		userAgent: userAgent,
		timeout:   timeout,
	}
	c.httpClient = &http.Client{
		Transport: &headerInjectingTransport{
			base:      newInsecureTransport(),
			userAgent: userAgent,
		},
		Timeout: timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// newInsecureTransport returns a transport that skips certificate
// verification. It is owned by a single Client.
func newInsecureTransport() *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // certificate validation is deliberately off for reachability checks
		},
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,
	}
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// UserAgent returns the User-Agent header value.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Check issues one GET request for target and classifies the outcome.
// It never returns nil and never retries.
func (c *Client) Check(ctx context.Context, target string) *model.CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return model.NewErrorResult(target, model.ErrorKindProtocol, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NewErrorResult(target, Classify(err), unwrapURLError(err))
	}
	// The body is not needed; drain a little so the connection can be reused.
	_, _ = io.CopyN(io.Discard, resp.Body, 4096) //nolint:errcheck // best effort
	_ = resp.Body.Close()                         //nolint:errcheck // nothing useful to do

	return model.NewStatusResult(target, resp.StatusCode)
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the
// method and URL already present on the status line.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

// headerInjectingTransport wraps an http.RoundTripper to set the
// User-Agent header on every request, redirects included.
type headerInjectingTransport struct {
	base      http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *headerInjectingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.userAgent != "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(clone)
}
