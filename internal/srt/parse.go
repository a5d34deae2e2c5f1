package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse tokenizes an SRT document into its cue list. Cue blocks are
// separated by one or more blank lines. A block missing its timing line or
// carrying a non-numeric sequence index fails the whole parse with an error
// naming the block.
func Parse(content string) ([]Cue, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return nil, nil
	}

	var cues []Cue
	block := 0
	for _, raw := range strings.Split(normalized, "\n\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		block++
		cue, err := parseBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("cue block %d: %w", block, err)
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func parseBlock(raw string) (Cue, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	if len(lines) < 2 {
		return Cue{}, fmt.Errorf("expected index and timing lines, got %d line(s)", len(lines))
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Cue{}, fmt.Errorf("invalid sequence index %q", strings.TrimSpace(lines[0]))
	}

	start, end, err := parseTimingLine(lines[1])
	if err != nil {
		return Cue{}, err
	}

	return Cue{
		Index: index,
		Start: start,
		End:   end,
		Lines: lines[2:],
	}, nil
}

func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing timing line, got %q", strings.TrimSpace(line))
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseTimestamp converts an "H:MM:SS,mmm" field to a duration. Fields are
// summed arithmetically, so seconds or millisecond values past their usual
// range still parse (the archive emits literals like "00:00:60,101").
func ParseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Normalize period to comma (SRT uses a comma before milliseconds).
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return total, nil
}
