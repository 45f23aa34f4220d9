// Package fetch downloads gazette PDF documents over HTTP. It is the only
// part of the tool that touches the network; extraction receives bytes.
package fetch

import (
	"net/http"
	"time"
)

// HTTPClient is an interface matching the Do method of *http.Client.
// This allows injection of mock clients for testing and custom transports.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TimeoutHTTPClient wraps request execution with a configurable timeout and
// a bounded redirect policy. Gazette archives redirect through a handful of
// mirror hops; anything past ten is a loop.
type TimeoutHTTPClient struct {
	timeout time.Duration
}

// NewTimeoutHTTPClient creates an HTTP client with the specified timeout.
func NewTimeoutHTTPClient(timeout time.Duration) *TimeoutHTTPClient {
	return &TimeoutHTTPClient{timeout: timeout}
}

// Do executes an HTTP request with the configured timeout.
func (timeoutClient *TimeoutHTTPClient) Do(req *http.Request) (*http.Response, error) {
	httpClient := &http.Client{
		Timeout: timeoutClient.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
	return httpClient.Do(req)
}
