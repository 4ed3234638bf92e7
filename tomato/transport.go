package tomato

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Transport issues the raw HTTP requests for the client. It exists as
// an injection point so the client can be exercised against scripted
// responses in tests. Both operations may fail; neither is retried.
type Transport interface {
	// Get fetches the resource at uri and returns the raw body.
	Get(ctx context.Context, uri string) ([]byte, error)

	// BuildURI assembles a request target from host, path and query
	// parameters.
	BuildURI(host, path string, params url.Values) (string, error)
}

// httpTransport is the default Transport backed by net/http.
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(client *http.Client) *httpTransport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpTransport{client: client}
}

// Get performs the HTTP request and returns the body. Non-2xx statuses
// are surfaced as a TransportError carrying the status and body.
func (t *httpTransport) Get(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// BuildURI assembles the request target for an API endpoint.
func (t *httpTransport) BuildURI(host, path string, params url.Values) (string, error) {
	u, err := url.Parse("http://" + host + path)
	if err != nil {
		return "", &URIError{Host: host, Path: path, Err: err}
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}
