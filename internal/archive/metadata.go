package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Metadata is the subset of archive.org item metadata iatv consumes.
type Metadata struct {
	Identifier     string
	Title          string
	RuntimeSeconds int
}

// metadataEnvelope mirrors the details endpoint payload. Metadata fields
// arrive as string arrays; when an item has been re-uploaded the last entry
// is authoritative.
type metadataEnvelope struct {
	Metadata struct {
		Title   []string `json:"title"`
		Runtime []string `json:"runtime"`
	} `json:"metadata"`
}

// ShowMetadata fetches title and runtime for a broadcast identifier.
func (c *Client) ShowMetadata(ctx context.Context, identifier string) (*Metadata, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errors.New("identifier must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/" + url.PathEscape(identifier))
	if err != nil {
		return nil, fmt.Errorf("parse metadata url: %w", err)
	}
	params := url.Values{}
	params.Set("output", "json")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata fetch returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var envelope metadataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode metadata response: %w", err)
	}

	meta := &Metadata{Identifier: identifier}
	if titles := envelope.Metadata.Title; len(titles) > 0 {
		meta.Title = titles[len(titles)-1]
	}
	if runtimes := envelope.Metadata.Runtime; len(runtimes) > 0 {
		seconds, err := ParseRuntime(runtimes[len(runtimes)-1])
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", identifier, err)
		}
		meta.RuntimeSeconds = seconds
	}
	return meta, nil
}

// ParseRuntime converts an "HH:MM:SS" runtime string to seconds.
func ParseRuntime(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid runtime %q", value)
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	seconds, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil {
		return 0, fmt.Errorf("invalid runtime %q", value)
	}
	return hours*3600 + minutes*60 + seconds, nil
}
