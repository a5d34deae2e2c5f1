package stitch_test

import (
	"reflect"
	"testing"

	"iatv/internal/srt"
	"iatv/internal/stitch"
)

func cueWith(lines ...string) srt.Cue {
	return srt.Cue{Lines: lines}
}

func TestFlattenSplitsOnSpeakerMarkers(t *testing.T) {
	cues := []srt.Cue{
		cueWith(">>> ANCHOR: good evening", "and welcome."),
		cueWith(">>> GUEST: thank you"),
		cueWith("for having me."),
	}
	got := stitch.Flatten(cues)
	want := []string{
		"ANCHOR: good evening and welcome.",
		"GUEST: thank you for having me.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %#v, want %#v", got, want)
	}
}

func TestFlattenTwoMarkersYieldThreeSegments(t *testing.T) {
	cues := []srt.Cue{
		cueWith("intro before any marker"),
		cueWith(">>> first speaker talks"),
		cueWith(">>> second speaker talks"),
	}
	got := stitch.Flatten(cues)
	if len(got) != 3 {
		t.Fatalf("expected 3 segments, got %d: %#v", len(got), got)
	}
}

func TestFlattenNoMarkerIsSingleSegment(t *testing.T) {
	cues := []srt.Cue{cueWith("Hello world"), cueWith("Goodbye")}
	got := stitch.Flatten(cues)
	want := []string{"Hello world Goodbye"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %#v, want %#v", got, want)
	}
}

func TestFlattenStripsControlCharacters(t *testing.T) {
	cues := []srt.Cue{cueWith("he\x00llo\x07 there\r")}
	got := stitch.Flatten(cues)
	want := []string{"hello there"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %#v, want %#v", got, want)
	}
}

func TestFlattenDropsEmptySegments(t *testing.T) {
	cues := []srt.Cue{cueWith(">>> only speaker")}
	got := stitch.Flatten(cues)
	// A leading marker leaves a blank leading segment, which is dropped.
	want := []string{"only speaker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %#v, want %#v", got, want)
	}
}

func TestFlattenEmptyInput(t *testing.T) {
	if got := stitch.Flatten(nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
