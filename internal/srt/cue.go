package srt

import (
	"strings"
	"time"
)

// Cue is a single timed caption entry.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string
}

// Text joins the cue's text lines with single spaces.
func (c Cue) Text() string {
	return strings.Join(c.Lines, " ")
}
