package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

type cliTestEnv struct {
	configPath   string
	baseDir      string
	server       *httptest.Server
	captionHits  atomic.Int64
	metadataHits atomic.Int64
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	env := &cliTestEnv{}

	mux := http.NewServeMux()
	mux.HandleFunc("/details/Test_Show", func(w http.ResponseWriter, r *http.Request) {
		env.metadataHits.Add(1)
		fmt.Fprint(w, `{"metadata":{"title":["Test Show"],"runtime":["00:02:00"]}}`)
	})
	mux.HandleFunc("/download/Test_Show/Test_Show.cc5.srt", func(w http.ResponseWriter, r *http.Request) {
		env.captionHits.Add(1)
		switch r.URL.Query().Get("t") {
		case "0/60":
			fmt.Fprint(w, "\ufeff1\n00:00:00,000 --> 00:00:10,312\nHello world\n")
		case "61/120":
			fmt.Fprint(w, "1\n00:00:00,000 --> 00:00:05,000\nGoodbye\n")
		default:
			http.NotFound(w, r)
		}
	})
	env.server = httptest.NewServer(mux)
	t.Cleanup(env.server.Close)

	env.baseDir = t.TempDir()
	env.configPath = filepath.Join(env.baseDir, "config.toml")
	contents := fmt.Sprintf(`[paths]
cache_dir = %q
log_dir = %q

[archive]
base_url = %q
download_base_url = %q
request_timeout = 5

[captions]
window_seconds = 60
fallback_duration_seconds = 3660

[logging]
format = "console"
level = "error"
`,
		filepath.Join(env.baseDir, "cache"),
		filepath.Join(env.baseDir, "logs"),
		env.server.URL+"/details",
		env.server.URL+"/download",
	)
	if err := os.WriteFile(env.configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}

func TestTranscriptCommandFetchesAndCaches(t *testing.T) {
	env := setupCLITestEnv(t)

	const wantDocument = "1\n00:00:00,000 --> 00:00:10,312\nHello world\n\n" +
		"2\n00:00:10,312 --> 00:00:15,312\nGoodbye\n\n"

	out, _, err := runCLI(t, []string{"transcript", "Test_Show"}, env.configPath)
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	if out != wantDocument {
		t.Fatalf("unexpected document:\n%q", out)
	}
	if got := env.captionHits.Load(); got != 2 {
		t.Fatalf("expected 2 caption fetches, got %d", got)
	}

	// Second run is served from the SQLite cache.
	out, _, err = runCLI(t, []string{"transcript", "Test_Show"}, env.configPath)
	if err != nil {
		t.Fatalf("cached transcript: %v", err)
	}
	if out != wantDocument {
		t.Fatalf("unexpected cached document:\n%q", out)
	}
	if got := env.captionHits.Load(); got != 2 {
		t.Fatalf("expected cache hit, got %d caption fetches", got)
	}

	// --refresh bypasses the cache.
	_, _, err = runCLI(t, []string{"transcript", "Test_Show", "--refresh"}, env.configPath)
	if err != nil {
		t.Fatalf("refresh transcript: %v", err)
	}
	if got := env.captionHits.Load(); got != 4 {
		t.Fatalf("expected refresh to refetch, got %d caption fetches", got)
	}
}

func TestTranscriptCommandTextOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"transcript", "Test_Show", "--text"}, env.configPath)
	if err != nil {
		t.Fatalf("transcript --text: %v", err)
	}
	if out != "Hello world Goodbye\n" {
		t.Fatalf("unexpected transcript text: %q", out)
	}
}

func TestTranscriptCommandWritesFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	dir := filepath.Join(env.baseDir, "out")
	out, _, err := runCLI(t, []string{"transcript", "Test_Show", "-o", dir}, env.configPath)
	if err != nil {
		t.Fatalf("transcript -o: %v", err)
	}
	requireContains(t, out, "Test_Show.srt")
	requireContains(t, out, "Test_Show.txt")

	srt, err := os.ReadFile(filepath.Join(dir, "Test_Show.srt"))
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	requireContains(t, string(srt), "Hello world")
	txt, err := os.ReadFile(filepath.Join(dir, "Test_Show.txt"))
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if string(txt) != "Hello world Goodbye\n" {
		t.Fatalf("unexpected txt contents: %q", txt)
	}
}

func TestCacheCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "Cache is empty")

	if _, _, err := runCLI(t, []string{"transcript", "Test_Show"}, env.configPath); err != nil {
		t.Fatalf("transcript: %v", err)
	}

	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list after fetch: %v", err)
	}
	requireContains(t, out, "Test_Show")
	requireContains(t, out, "0-120s")

	out, _, err = runCLI(t, []string{"cache", "rm", "Test_Show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache rm: %v", err)
	}
	requireContains(t, out, "Removed 1")

	if _, _, err := runCLI(t, []string{"transcript", "Test_Show"}, env.configPath); err != nil {
		t.Fatalf("transcript after rm: %v", err)
	}
	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Cache cleared")

	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list after clear: %v", err)
	}
	requireContains(t, out, "Cache is empty")
}

func TestShowCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"show", "Test_Show"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Test Show")
	requireContains(t, out, "0:02:00")
}
