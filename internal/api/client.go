// Package api is a thin client for the assistant backend's REST surface.
// Every method issues exactly one request; there are no retries and no
// client-side caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Client talks to the backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the backend at baseURL. A zero timeout disables
// request timeouts.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Error is a non-2xx response from the backend, carrying the backend's
// detail string when one was present in the body.
type Error struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// do issues a single JSON request and decodes the response into out (when
// out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

// checkStatus converts a non-2xx response into an *Error.
func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	apiError := &Error{StatusCode: response.StatusCode}
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(response.Body).Decode(&detail); err == nil {
		apiError.Detail = detail.Detail
	}
	return apiError
}
