package todotxt

import (
	"regexp"
	"strings"

	"github.com/mrz1836/mit/internal/period"
)

//nolint:gochecknoglobals // compiled once
var (
	// prefixPattern matches the optional priority and creation date fields.
	prefixPattern = regexp.MustCompile(`^(?:\(([A-Z])\) )?(?:(\d{4}-\d{2}-\d{2}) )?`)

	// donePattern matches the completion mark of a done task followed by its
	// optional completion and creation dates.
	donePattern = regexp.MustCompile(`^x (?:(\d{4}-\d{2}-\d{2}) )?(?:(\d{4}-\d{2}-\d{2}) )?`)

	// markerPattern matches anything shaped like a period marker. Whether the
	// contents are a valid period is decided by period.Parse.
	markerPattern = regexp.MustCompile(`\{(\d{4}\.(?:\d{2}|[Qq]\d)\.\d{2})\}`)
)

// findMarker returns the byte range of the first marker-shaped field in line
// and its inner text, or ok=false when there is none.
func findMarker(line string) (start, end int, inner string, ok bool) {
	loc := markerPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return 0, 0, "", false
	}
	return loc[0], loc[1], line[loc[2]:loc[3]], true
}

// prefixLen returns the length of the prefix fields of line: priority and
// creation date, or for a done task the completion mark and its dates.
func prefixLen(line string) int {
	if done := donePattern.FindString(line); done != "" {
		return len(done)
	}
	return len(prefixPattern.FindString(line))
}

// ReadMarker extracts the period marker from line. Absent and ill-formed
// markers both report ok=false.
func ReadMarker(line string) (period.Period, bool) {
	_, _, inner, ok := findMarker(line)
	if !ok {
		return period.Period{}, false
	}
	p, err := period.Parse(inner)
	if err != nil {
		return period.Period{}, false
	}
	return p, true
}

// WriteMarker returns line carrying the marker for p. An existing marker is
// replaced in place; otherwise the marker goes right after the prefix fields,
// so a done task stays done.
func WriteMarker(line string, p period.Period) string {
	if start, end, _, ok := findMarker(line); ok {
		return line[:start] + p.Marker() + line[end:]
	}

	n := prefixLen(line)
	rest := line[n:]
	if rest == "" {
		return line + p.Marker()
	}
	return line[:n] + p.Marker() + " " + rest
}

// ClearMarker returns line without its marker. The spaces that followed the
// marker are removed with it so no gap is left behind.
func ClearMarker(line string) string {
	start, end, _, ok := findMarker(line)
	if !ok {
		return line
	}
	rest := strings.TrimLeft(line[end:], " ")
	if rest == "" {
		return strings.TrimRight(line[:start], " ")
	}
	return line[:start] + rest
}
