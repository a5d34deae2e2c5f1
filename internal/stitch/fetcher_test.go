package stitch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"iatv/internal/stitch"
)

func drain(t *testing.T, f *stitch.Fetcher) []stitch.WindowPayload {
	t.Helper()
	var payloads []stitch.WindowPayload
	for {
		payload, ok, err := f.Next(context.Background())
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		if !ok {
			return payloads
		}
		payloads = append(payloads, payload)
	}
}

func TestFetcherWindowBoundaries(t *testing.T) {
	var ranges []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ranges = append(ranges, r.URL.Query().Get("t"))
		_, _ = w.Write([]byte("1\n00:00:00,000 --> 00:00:01,000\nhi\n"))
	}))
	t.Cleanup(server.Close)

	fetcher := stitch.NewFetcher(server.URL+"/Test_Show.cc5.srt?t=", 120)
	payloads := drain(t, fetcher)

	if len(payloads) != 2 {
		t.Fatalf("expected 2 windows for a 120s range, got %d", len(payloads))
	}
	if ranges[0] != "0/60" || ranges[1] != "61/120" {
		t.Fatalf("unexpected window ranges: %v", ranges)
	}
	if payloads[1].Start != 61 || payloads[1].End != 120 {
		t.Fatalf("unexpected second window bounds: %+v", payloads[1])
	}
}

func TestFetcherStopsWhenWindowEndExceedsTotal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(""))
	}))
	t.Cleanup(server.Close)

	// The window after 61/120 would end at 180 > 130, so it is not fetched.
	fetcher := stitch.NewFetcher(server.URL+"/x.cc5.srt?t=", 130)
	payloads := drain(t, fetcher)
	if len(payloads) != 2 {
		t.Fatalf("expected 2 windows for a 130s range, got %d", len(payloads))
	}
}

func TestFetcherStripsBOMOnFirstWindowOnly(t *testing.T) {
	bodies := []string{"\ufeff1\n00:00:00,000 --> 00:00:01,000\nfirst\n", "\ufeffsecond"}
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bodies[call]))
		call++
	}))
	t.Cleanup(server.Close)

	fetcher := stitch.NewFetcher(server.URL+"/x.cc5.srt?t=", 120)
	payloads := drain(t, fetcher)

	if len(payloads) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(payloads))
	}
	if payloads[0].Body[0] != '1' {
		t.Fatalf("first window should have BOM stripped, got %q", payloads[0].Body[:4])
	}
	if payloads[1].Body != "\ufeffsecond" {
		t.Fatalf("second window must pass through untouched, got %q", payloads[1].Body)
	}
}

func TestFetcherMarksEmptyWindows(t *testing.T) {
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if call == 1 {
			_, _ = w.Write([]byte("  \n"))
		} else {
			_, _ = w.Write([]byte("1\n00:00:00,000 --> 00:00:01,000\nhi\n"))
		}
		call++
	}))
	t.Cleanup(server.Close)

	fetcher := stitch.NewFetcher(server.URL+"/x.cc5.srt?t=", 180)
	payloads := drain(t, fetcher)

	if len(payloads) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(payloads))
	}
	if payloads[0].Empty || !payloads[1].Empty || payloads[2].Empty {
		t.Fatalf("unexpected empty markers: %+v", payloads)
	}
}

func TestFetcherFetchFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	fetcher := stitch.NewFetcher(server.URL+"/x.cc5.srt?t=", 120)
	_, _, err := fetcher.Next(context.Background())
	if err == nil {
		t.Fatal("expected error for non-success status")
	}
	var fetchErr *stitch.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.Window != 0 {
		t.Fatalf("expected failing window 0, got %d", fetchErr.Window)
	}

	// The sequence terminates after a failure.
	if _, ok, err := fetcher.Next(context.Background()); ok || err != nil {
		t.Fatalf("expected exhausted sequence after failure, got ok=%v err=%v", ok, err)
	}
}

func TestFetcherCustomWindowWidth(t *testing.T) {
	var ranges []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ranges = append(ranges, r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(""))
	}))
	t.Cleanup(server.Close)

	fetcher := stitch.NewFetcher(server.URL+"/x.cc5.srt?t=", 61, stitch.WithWindowSeconds(30))
	drain(t, fetcher)
	if len(ranges) != 2 || ranges[0] != "0/30" || ranges[1] != "31/60" {
		t.Fatalf("unexpected ranges with 30s windows: %v", ranges)
	}
}
