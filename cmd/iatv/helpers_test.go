package main

import "testing"

func TestDisplayTitle(t *testing.T) {
	if got := displayTitle("FOXNEWSW_20170919_200000_The_Lead", ""); got != "Foxnewsw 20170919 200000 The Lead" {
		t.Fatalf("unexpected derived title: %q", got)
	}
	if got := displayTitle("ignored", "The Lead With Jake Tapper"); got != "The Lead With Jake Tapper" {
		t.Fatalf("expected explicit title to win, got %q", got)
	}
}

func TestFormatRuntime(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "unknown"},
		{-5, "unknown"},
		{59, "0:00:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
	}
	for _, tc := range cases {
		if got := formatRuntime(tc.seconds); got != tc.want {
			t.Errorf("formatRuntime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncate: %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("unexpected truncate: %q", got)
	}
}
