package archive

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL serves item details and the TV News search endpoint.
	DefaultBaseURL = "https://archive.org/details"
	// DefaultDownloadBaseURL serves per-show caption files.
	DefaultDownloadBaseURL = "https://archive.org/download"
)

// Client provides access to the archive.org TV News Archive.
type Client struct {
	baseURL         string
	downloadBaseURL string
	httpClient      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an archive client. Empty URLs fall back to the public
// archive.org endpoints.
func New(baseURL, downloadBaseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	downloadBaseURL = strings.TrimSpace(downloadBaseURL)
	if downloadBaseURL == "" {
		downloadBaseURL = DefaultDownloadBaseURL
	}
	client := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		downloadBaseURL: strings.TrimRight(downloadBaseURL, "/"),
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// HTTPClient exposes the client's transport so callers can share its
// timeout settings with the caption window fetcher.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// CaptionBaseURL builds the windowed caption endpoint for a broadcast. The
// window range is appended by the fetcher as "t0/t1".
func (c *Client) CaptionBaseURL(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", errors.New("identifier must not be empty")
	}
	return fmt.Sprintf("%s/%s/%s.cc5.srt?t=", c.downloadBaseURL, identifier, identifier), nil
}
