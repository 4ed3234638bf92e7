package tomato

import (
	"net/http"
	"time"

	"go.uber.org/ratelimit"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	host       string
	httpClient *http.Client
	timeout    time.Duration
	transport  Transport
	pageLimit  int
	limiter    ratelimit.Limiter
}

// WithHost overrides the API host. Mostly useful for tests.
func WithHost(host string) Option {
	return func(o *clientOptions) {
		if host != "" {
			o.host = host
		}
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout for the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithTransport replaces the transport entirely. It takes precedence
// over WithHTTPClient and WithTimeout.
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

// WithPageLimit sets the number of results per page for paginated
// endpoints. Non-positive values are ignored.
func WithPageLimit(limit int) Option {
	return func(o *clientOptions) {
		if limit > 0 {
			o.pageLimit = limit
		}
	}
}

// WithRateLimit paces outgoing requests to at most rps per second. The
// live API enforces its own per-second quota, so pacing client-side
// avoids burning calls on 403 responses.
func WithRateLimit(rps int) Option {
	return func(o *clientOptions) {
		if rps > 0 {
			o.limiter = ratelimit.New(rps)
		}
	}
}
