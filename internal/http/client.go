package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent when no contact address is configured.
const DefaultUserAgent = "chess-profile"

// Options configures a Client.
type Options struct {
	// UserAgent is sent as the User-Agent header. chess.com asks API users
	// to put a contact address here. Defaults to DefaultUserAgent.
	UserAgent string

	// Email is sent as the "email" header when not empty.
	Email string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// Transport overrides the default round tripper. Mostly useful in tests.
	Transport http.RoundTripper
}

// Client wraps HTTP operations with chess.com API etiquette headers.
//
// Client provides:
//   - Configured User-Agent and email headers
//   - JSON content type on every request
//   - Optional timeout handling
//   - *StatusError for any non-200 response
//
// Example usage:
//
//	client := NewClient(Options{UserAgent: "me@example.com", Email: "me@example.com"})
//
//	body, err := client.GetString(ctx, archiveURL)
//	var se *StatusError
//	if errors.As(err, &se) {
//	    fmt.Println("no games:", se.Code)
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
	email      string
}

// NewClient creates a new HTTP client from opts.
func NewClient(opts Options) *Client {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: ua,
		email:     opts.Email,
	}
}

// StatusError is returned when the server answers with anything but 200 OK.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s: %s", e.Code, e.URL, e.Status)
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured identifying headers.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (*StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for text content like PGN bundles.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON performs a GET request and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.email != "" {
		req.Header.Set("email", c.email)
	}
	req.Header.Set("Content-Type", "application/json")
}
