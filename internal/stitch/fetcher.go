package stitch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"iatv/internal/logging"
)

const (
	// DefaultWindowSeconds is the archive's caption window width.
	DefaultWindowSeconds = 60
	// DefaultEndSeconds covers a one-hour broadcast plus one trailing window.
	DefaultEndSeconds = 3660
)

// WindowPayload is one raw caption window as served by the archive. Empty
// windows are expected and first-class: the archive returns a success status
// with no body when a window holds no captions.
type WindowPayload struct {
	Index int
	Start int
	End   int
	Body  string
	Empty bool
}

// Fetcher pulls caption windows for a broadcast in order. It is lazy,
// finite, and non-restartable: each call to Next issues exactly one request
// and a consumed sequence cannot be rewound.
//
// Window i covers [t0, t0+width] with the next window starting at the
// previous end plus one second. Windows are generated while the window's end
// does not exceed the requested total duration (t1 <= end); this matches the
// archive's own range stepping, where a 120 second request yields the
// windows 0/60 and 61/120.
type Fetcher struct {
	baseURL       string
	endSeconds    int
	windowSeconds int
	httpClient    *http.Client
	logger        *slog.Logger

	index int
	start int
	end   int
	done  bool
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient overrides the HTTP client used for window requests.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithWindowSeconds overrides the window width.
func WithWindowSeconds(seconds int) FetcherOption {
	return func(f *Fetcher) {
		if seconds > 0 {
			f.windowSeconds = seconds
		}
	}
}

// WithLogger attaches a logger for per-window diagnostics.
func WithLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher builds a window fetcher over baseURL, which must accept the
// window range appended as "t0/t1" (the archive's ".cc5.srt?t=" endpoints).
func NewFetcher(baseURL string, endSeconds int, opts ...FetcherOption) *Fetcher {
	if endSeconds <= 0 {
		endSeconds = DefaultEndSeconds
	}
	f := &Fetcher{
		baseURL:       baseURL,
		endSeconds:    endSeconds,
		windowSeconds: DefaultWindowSeconds,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.start = 0
	f.end = f.windowSeconds
	return f
}

// Next fetches the next caption window. It returns false once the sequence
// is exhausted. A non-success response is fatal: the error is returned and
// the sequence terminates.
func (f *Fetcher) Next(ctx context.Context) (WindowPayload, bool, error) {
	if f.done || f.end > f.endSeconds {
		return WindowPayload{}, false, nil
	}

	url := fmt.Sprintf("%s%d/%d", f.baseURL, f.start, f.end)
	f.logger.Debug("fetching captions",
		logging.Int("window", f.index),
		logging.String("url", url),
	)

	body, err := f.get(ctx, url)
	if err != nil {
		f.done = true
		return WindowPayload{}, false, &FetchError{URL: url, Window: f.index, Err: err}
	}

	if f.index == 0 {
		// The archive prefixes the first window with a UTF-8 byte-order mark.
		body = strings.TrimPrefix(body, "\ufeff")
	}

	payload := WindowPayload{
		Index: f.index,
		Start: f.start,
		End:   f.end,
		Body:  body,
		Empty: strings.TrimSpace(body) == "",
	}

	f.index++
	f.start = f.end + 1
	f.end += f.windowSeconds

	return payload, true, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}
