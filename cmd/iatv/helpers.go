package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// displayTitle turns an archive identifier like "FOXNEWSW_20170919_200000_The_Lead"
// into a readable heading when the item carries no title of its own.
func displayTitle(identifier, title string) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	cleaned := strings.ReplaceAll(identifier, "_", " ")
	return titleCaser.String(strings.ToLower(cleaned))
}

// formatRuntime renders a second count as H:MM:SS, or "unknown" when the
// archive reported none.
func formatRuntime(seconds int) string {
	if seconds <= 0 {
		return "unknown"
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
