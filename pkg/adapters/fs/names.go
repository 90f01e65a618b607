package fs

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/aretw0/notenik/pkg/core"
)

// Extension returns the conventional file extension for a dialect.
func Extension(d core.Dialect) string {
	switch d {
	case core.DialectMarkdown, core.DialectMultiMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// FileName turns a note title into a file name for the given dialect, e.g.
// "Trip Report: Day 1" becomes "trip-report-day-1.txt".
func FileName(title string, d core.Dialect) string {
	name := slug.Make(strings.TrimSpace(title))
	if name == "" {
		name = slug.Make(core.DefaultTitle)
	}
	return name + Extension(d)
}
