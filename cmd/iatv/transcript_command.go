package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"iatv/internal/logging"
	"iatv/internal/show"
	"iatv/internal/store"
)

func newTranscriptCommand(ctx *commandContext) *cobra.Command {
	var end int
	var window int
	var refresh bool
	var text bool
	var jsonOutput bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "transcript <identifier>",
		Short: "Fetch and stitch the closed captions for a broadcast",
		Long: `Fetch the windowed closed-caption files for a broadcast, stitch them into
one continuous SRT document, and cache the result locally. Repeated runs for
the same broadcast and range are served from the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identifier := strings.TrimSpace(args[0])
			if identifier == "" {
				return errors.New("identifier is required")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			client, err := ctx.archiveClient()
			if err != nil {
				return err
			}

			windowSeconds := cfg.Captions.WindowSeconds
			if window > 0 {
				windowSeconds = window
			}

			sh := show.Load(cmd.Context(), client, identifier,
				show.WithLogger(logger),
				show.WithWindowSeconds(windowSeconds),
				show.WithFallbackDuration(cfg.Captions.FallbackDurationSeconds),
			)
			endSeconds := sh.ResolveEnd(end)

			return ctx.withStore(func(st *store.Store) error {
				var rec *store.Record
				if !refresh {
					cached, err := st.Lookup(cmd.Context(), identifier, 0, endSeconds)
					if err != nil && !errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("cache lookup: %w", err)
					}
					rec = cached
				}

				if rec == nil {
					document, segments, err := sh.Refresh(cmd.Context(), 0, endSeconds)
					if err != nil {
						return fmt.Errorf("stitch captions: %w", err)
					}
					rec = &store.Record{
						Identifier:   identifier,
						StartSeconds: 0,
						EndSeconds:   endSeconds,
						Document:     document,
						Segments:     segments,
						RunID:        sh.LastRunID(),
						FetchedAt:    time.Now().UTC(),
					}
					if err := st.Save(cmd.Context(), *rec); err != nil {
						return fmt.Errorf("cache transcript: %w", err)
					}
				} else {
					logger.Debug("serving cached transcript",
						logging.String("identifier", identifier),
						logging.Int("end_seconds", endSeconds),
						logging.String("run_id", rec.RunID),
					)
				}

				return emitTranscript(cmd, rec, outputDir, text, jsonOutput)
			})
		},
	}

	cmd.Flags().IntVar(&end, "end", 0, "Range end in seconds (0 uses the show runtime)")
	cmd.Flags().IntVar(&window, "window", 0, "Caption window width in seconds (0 uses the configured width)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ignore the cache and fetch again")
	cmd.Flags().BoolVar(&text, "text", false, "Print the plain-text transcript instead of the SRT document")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the transcript record as JSON")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write <identifier>.srt and <identifier>.txt into this directory")
	return cmd
}

func emitTranscript(cmd *cobra.Command, rec *store.Record, outputDir string, text, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, transcriptPayload{
			Identifier:   rec.Identifier,
			StartSeconds: rec.StartSeconds,
			EndSeconds:   rec.EndSeconds,
			RunID:        rec.RunID,
			FetchedAt:    rec.FetchedAt,
			Document:     rec.Document,
			Segments:     rec.Segments,
		})
	}

	if outputDir != "" {
		return writeTranscriptFiles(cmd, rec, outputDir)
	}

	out := cmd.OutOrStdout()
	if text {
		for _, segment := range rec.Segments {
			fmt.Fprintln(out, segment)
		}
		return nil
	}
	fmt.Fprint(out, rec.Document)
	return nil
}

func writeTranscriptFiles(cmd *cobra.Command, rec *store.Record, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	srtPath := filepath.Join(dir, rec.Identifier+".srt")
	if err := os.WriteFile(srtPath, []byte(rec.Document), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", srtPath, err)
	}
	txtPath := filepath.Join(dir, rec.Identifier+".txt")
	if err := os.WriteFile(txtPath, []byte(strings.Join(rec.Segments, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", txtPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", srtPath)
	fmt.Fprintf(out, "Wrote %s\n", txtPath)
	return nil
}

type transcriptPayload struct {
	Identifier   string    `json:"identifier"`
	StartSeconds int       `json:"start_seconds"`
	EndSeconds   int       `json:"end_seconds"`
	RunID        string    `json:"run_id"`
	FetchedAt    time.Time `json:"fetched_at"`
	Document     string    `json:"document"`
	Segments     []string  `json:"segments"`
}
