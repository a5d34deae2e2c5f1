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

// SearchItem is one broadcast match from the TV News search endpoint.
type SearchItem struct {
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Snippet     string `json:"snip"`
}

// SearchOptions contains optional facets for TV News search.
type SearchOptions struct {
	// Channel filters by archive channel code, e.g. "FOXNEWSW". Valid codes
	// are the keys of StationNetworks.
	Channel string
	// Time is a SOLR date facet, YYYY, YYYYMM, or YYYYMMDD.
	Time string
	// Rows limits the number of results.
	Rows int
	// Start is the result row to start at.
	Start int
}

// SearchItems queries the TV News Archive with a SOLR-style query (the
// leading "q=" left off).
func (c *Client) SearchItems(ctx context.Context, query string, opts SearchOptions) ([]SearchItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/tv")
	if err != nil {
		return nil, fmt.Errorf("parse search url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	if channel := strings.TrimSpace(opts.Channel); channel != "" {
		params.Set("fq", fmt.Sprintf("channel:%q", channel))
	}
	if facet := strings.TrimSpace(opts.Time); facet != "" {
		params.Set("time", facet)
	}
	if opts.Rows > 0 {
		params.Set("rows", strconv.Itoa(opts.Rows))
	}
	if opts.Start > 0 {
		params.Set("start", strconv.Itoa(opts.Start))
	}
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
		return nil, fmt.Errorf("tv news search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var items []SearchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return items, nil
}
