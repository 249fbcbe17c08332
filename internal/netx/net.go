// Package netx holds small HTTP client helpers shared by outbound callers.
package netx

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// UserAgent is sent on every request made through NewClient.
const UserAgent = "wheel/1"

// StatusError is returned by CheckResponse for a non-2xx reply. Body is
// truncated to the limit given to CheckResponse.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: %s; body: %s", e.Status, e.Body)
}

// Temporary reports whether the server side failed (5xx) or asked the
// caller to slow down (429), i.e. whether a retry may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// CheckResponse returns nil for 2xx responses. Otherwise it reads at most
// maxBody bytes of the body into a *StatusError.
func CheckResponse(resp *http.Response, maxBody int64) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(b)}
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.next.RoundTrip(req)
}

// NewClient returns an *http.Client with the given overall timeout that
// stamps UserAgent on outgoing requests.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: userAgentTransport{next: http.DefaultTransport},
	}
}
