package srt_test

import (
	"strings"
	"testing"
	"time"

	"iatv/internal/srt"
)

const sampleDocument = "1\n" +
	"00:00:00,000 --> 00:00:10,312\n" +
	"This is an example SRT file,\n" +
	"which, while extremely short,\n" +
	"is still a valid SRT file.\n" +
	"\n" +
	"2\n" +
	"00:00:10,312 --> 00:00:60,101\n" +
	"Second cue.\n"

func TestParseSample(t *testing.T) {
	cues, err := srt.Parse(sampleDocument)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Index != 1 || cues[1].Index != 2 {
		t.Fatalf("unexpected indices: %d, %d", cues[0].Index, cues[1].Index)
	}
	if cues[0].Start != 0 {
		t.Fatalf("expected first cue to start at zero, got %v", cues[0].Start)
	}
	if want := 10*time.Second + 312*time.Millisecond; cues[0].End != want {
		t.Fatalf("first cue end = %v, want %v", cues[0].End, want)
	}
	if len(cues[0].Lines) != 3 {
		t.Fatalf("expected 3 text lines, got %d", len(cues[0].Lines))
	}
}

func TestParseToleratesOutOfRangeSeconds(t *testing.T) {
	// The archive emits second fields past 59; they must parse, not crash.
	cues, err := srt.Parse(sampleDocument)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if want := 60*time.Second + 101*time.Millisecond; cues[1].End != want {
		t.Fatalf("second cue end = %v, want %v", cues[1].End, want)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cues, err := srt.Parse("  \n\n ")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 0 {
		t.Fatalf("expected no cues, got %d", len(cues))
	}
}

func TestParseCRLF(t *testing.T) {
	cues, err := srt.Parse("1\r\n00:00:01,000 --> 00:00:02,000\r\nhello\r\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(cues) != 1 || cues[0].Lines[0] != "hello" {
		t.Fatalf("unexpected cues: %#v", cues)
	}
}

func TestParseMalformedBlocks(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"non-numeric index", "one\n00:00:00,000 --> 00:00:01,000\nhi\n"},
		{"missing timing line", "1\nhello there\n"},
		{"bad timestamp", "1\n00:00 --> 00:00:01,000\nhi\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := srt.Parse(tc.content); err == nil {
				t.Fatalf("expected parse error for %q", tc.content)
			}
		})
	}
}

func TestParseErrorNamesBlock(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:01,000\nok\n\nbogus\n00:00:01,000 --> 00:00:02,000\nbad\n"
	_, err := srt.Parse(content)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if got := err.Error(); !strings.Contains(got, "cue block 2") {
		t.Fatalf("error should name block 2, got %q", got)
	}
}
