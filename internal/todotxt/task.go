package todotxt

import (
	"strings"

	"github.com/mrz1836/mit/internal/period"
)

// Task is one parsed line of the todo file.
type Task struct {
	// ID is the 1-based line number.
	ID int
	// Line is the raw stored text.
	Line string
	// Priority is the priority letter, empty when absent.
	Priority string
	// Created is the YYYY-MM-DD creation date, empty when absent. A done task
	// carries it after the completion date.
	Created string
	// Period is the MIT marker; zero when the line has none or it is ill-formed.
	Period period.Period
	// Body is the text after the prefix fields with the marker removed.
	Body string
	// Done reports a completed task ("x " prefix).
	Done bool
}

// ParseTask parses line id of the todo file.
func ParseTask(id int, line string) Task {
	t := Task{ID: id, Line: line}

	if m := donePattern.FindStringSubmatch(line); m != nil {
		t.Done = true
		t.Created = m[2]
	} else {
		m := prefixPattern.FindStringSubmatch(line)
		t.Priority = m[1]
		t.Created = m[2]
	}

	if p, ok := ReadMarker(line); ok {
		t.Period = p
	}
	t.Body = strings.TrimSpace(ClearMarker(line[prefixLen(line):]))
	return t
}

// IsMIT reports whether the task carries a valid period marker.
func (t Task) IsMIT() bool {
	return !t.Period.IsZero()
}

// Text is the line as shown in reports: the stored text without its marker.
func (t Task) Text() string {
	return ClearMarker(t.Line)
}

// HasContext reports whether the body contains the @context word ctx. The
// leading @ on ctx is optional and matching ignores case.
func (t Task) HasContext(ctx string) bool {
	want := "@" + strings.TrimPrefix(ctx, "@")
	for _, word := range strings.Fields(t.Body) {
		if strings.EqualFold(word, want) {
			return true
		}
	}
	return false
}
