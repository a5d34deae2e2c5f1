package show

import (
	"context"
	"log/slog"
	"sync"

	"iatv/internal/archive"
	"iatv/internal/logging"
	"iatv/internal/stitch"
)

// Show is a process-local handle on one archived broadcast.
type Show struct {
	Identifier string
	Title      string
	// RuntimeSeconds is zero when metadata was unavailable.
	RuntimeSeconds int
	// Metadata is nil when the archive lookup failed at load time.
	Metadata *archive.Metadata

	client          *archive.Client
	logger          *slog.Logger
	windowSeconds   int
	fallbackSeconds int

	mu    sync.Mutex
	cache *cacheRecord
}

// cacheRecord pairs a stitched result with the range it was computed for.
// It is replaced as a whole, never mutated, so a reader always sees a
// document consistent with its range.
type cacheRecord struct {
	start    int
	end      int
	runID    string
	document string
	segments []string
}

// Option configures a Show handle.
type Option func(*Show)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Show) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWindowSeconds overrides the caption window width.
func WithWindowSeconds(seconds int) Option {
	return func(s *Show) {
		if seconds > 0 {
			s.windowSeconds = seconds
		}
	}
}

// WithFallbackDuration overrides the duration assumed when the archive
// reports no runtime.
func WithFallbackDuration(seconds int) Option {
	return func(s *Show) {
		if seconds > 0 {
			s.fallbackSeconds = seconds
		}
	}
}

// Load builds a handle for the given identifier. Metadata is fetched once;
// if the archive lookup fails the handle is still returned with no title
// and the fallback duration, since caption retrieval does not depend on
// metadata.
func Load(ctx context.Context, client *archive.Client, identifier string, opts ...Option) *Show {
	s := &Show{
		Identifier:      identifier,
		client:          client,
		logger:          logging.NewNop(),
		windowSeconds:   stitch.DefaultWindowSeconds,
		fallbackSeconds: stitch.DefaultEndSeconds,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "show").With(logging.String("identifier", identifier))

	meta, err := client.ShowMetadata(ctx, identifier)
	if err != nil {
		s.logger.Warn("archive metadata unavailable, continuing without title or runtime",
			logging.Error(err),
			logging.Int("fallback_duration_seconds", s.fallbackSeconds),
		)
		return s
	}
	s.Metadata = meta
	s.Title = meta.Title
	s.RuntimeSeconds = meta.RuntimeSeconds
	return s
}

// Transcript returns the stitched SRT document and transcript segments for
// the range [start, end] in seconds. Results are cached: a repeated call
// with the cached range returns the previous computation without touching
// the network. Pass end <= 0 to cover the show's runtime (or the fallback
// duration when the runtime is unknown).
func (s *Show) Transcript(ctx context.Context, start, end int) (string, []string, error) {
	end = s.resolveEnd(end)

	s.mu.Lock()
	if c := s.cache; c != nil && c.start == start && c.end == end {
		document, segments := c.document, c.segments
		s.mu.Unlock()
		return document, segments, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx, start, end)
}

// Refresh recomputes the transcript for [start, end] regardless of what is
// cached, replacing the cache on success. Failed runs leave the previous
// cache entry in place.
func (s *Show) Refresh(ctx context.Context, start, end int) (string, []string, error) {
	end = s.resolveEnd(end)

	baseURL, err := s.client.CaptionBaseURL(s.Identifier)
	if err != nil {
		return "", nil, err
	}

	fetcher := stitch.NewFetcher(baseURL, end,
		stitch.WithWindowSeconds(s.windowSeconds),
		stitch.WithHTTPClient(s.client.HTTPClient()),
		stitch.WithLogger(s.logger),
	)
	result, err := stitch.Stitch(ctx, fetcher, s.logger)
	if err != nil {
		return "", nil, err
	}

	record := &cacheRecord{
		start:    start,
		end:      end,
		runID:    result.RunID,
		document: result.Document,
		segments: result.Segments,
	}
	s.mu.Lock()
	s.cache = record
	s.mu.Unlock()

	return result.Document, result.Segments, nil
}

// LastRunID reports the stitch run backing the cached transcript, or ""
// when nothing is cached.
func (s *Show) LastRunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		return ""
	}
	return s.cache.runID
}

// ResolveEnd maps a caller-supplied end to the effective range end: the
// value itself when positive, otherwise the runtime, otherwise the fallback
// duration.
func (s *Show) ResolveEnd(end int) int {
	return s.resolveEnd(end)
}

func (s *Show) resolveEnd(end int) int {
	if end > 0 {
		return end
	}
	if s.RuntimeSeconds > 0 {
		return s.RuntimeSeconds
	}
	return s.fallbackSeconds
}
