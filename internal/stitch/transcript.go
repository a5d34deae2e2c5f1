package stitch

import (
	"strings"
	"unicode"

	"iatv/internal/srt"
)

// speakerMarker separates transcript segments. The archive marks speaker
// changes with ">>> " runs, which normalize to this shorter token before
// splitting.
const speakerMarker = ">>"

// Flatten collapses stitched cues into a plain-text transcript: cue lines
// are whitespace-joined in document order, control characters are stripped
// (archive text is not guaranteed clean), speaker markers are normalized,
// and the stream is split into trimmed non-empty segments.
func Flatten(cues []srt.Cue) []string {
	if len(cues) == 0 {
		return nil
	}

	parts := make([]string, 0, len(cues))
	for _, cue := range cues {
		parts = append(parts, cue.Lines...)
	}
	text := stripControl(strings.Join(parts, " "))
	text = strings.ReplaceAll(text, ">>> ", speakerMarker)

	var segments []string
	for _, segment := range strings.Split(text, speakerMarker) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// stripControl drops control and sentinel characters, folding newlines into
// spaces so line structure cannot leak into segment boundaries.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}
