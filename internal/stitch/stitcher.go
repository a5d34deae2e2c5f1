package stitch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"iatv/internal/logging"
	"iatv/internal/srt"
)

// Result holds one completed reassembly run.
type Result struct {
	// RunID correlates log lines and cache rows from the same run.
	RunID string
	// Document is the stitched SRT with globally continuous timings and
	// contiguous 1..N cue indices.
	Document string
	// Cues are the stitched cues backing Document.
	Cues []srt.Cue
	// Segments is the transcript, one entry per speaker segment.
	Segments []string
}

// WindowSource yields caption windows in broadcast order. *Fetcher is the
// production implementation; tests substitute in-memory sequences.
type WindowSource interface {
	Next(ctx context.Context) (WindowPayload, bool, error)
}

// Stitch consumes a window sequence and reassembles it into one document.
//
// The offset accumulator starts at zero, so the first non-empty window's
// timings pass through unshifted. After each non-empty window the
// accumulator becomes the post-offset end time of that window's last cue;
// every cue of the following window is shifted by it. Empty windows leave
// the accumulator untouched. Any fetch or parse failure aborts the run and
// discards windows already stitched.
func Stitch(ctx context.Context, source WindowSource, logger *slog.Logger) (*Result, error) {
	log := logging.NewComponentLogger(logger, "stitch")
	runID := uuid.NewString()
	log = log.With(logging.String("run_id", runID))

	var (
		cues    []srt.Cue
		offset  time.Duration
		windows int
		skipped int
	)

	for {
		payload, ok, err := source.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		windows++

		if payload.Empty {
			skipped++
			log.Debug("caption window empty",
				logging.Int("window", payload.Index),
				logging.Duration("offset", offset),
			)
			continue
		}

		parsed, err := srt.Parse(payload.Body)
		if err != nil {
			return nil, &ParseError{Window: payload.Index, Err: err}
		}
		if len(parsed) == 0 {
			skipped++
			continue
		}

		for i := range parsed {
			parsed[i].Start += offset
			parsed[i].End += offset
		}
		offset = parsed[len(parsed)-1].End
		cues = append(cues, parsed...)

		log.Debug("caption window stitched",
			logging.Int("window", payload.Index),
			logging.Int("cues", len(parsed)),
			logging.Duration("offset", offset),
		)
	}

	for i := range cues {
		cues[i].Index = i + 1
	}

	result := &Result{
		RunID:    runID,
		Document: srt.Write(cues),
		Cues:     cues,
		Segments: Flatten(cues),
	}

	log.Info("caption stitching complete",
		logging.Int("windows", windows),
		logging.Int("empty_windows", skipped),
		logging.Int("cues", len(cues)),
		logging.Int("segments", len(result.Segments)),
		logging.Duration("timeline", offset),
	)
	return result, nil
}
