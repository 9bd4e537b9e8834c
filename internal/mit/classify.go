// Package mit groups marked tasks into granularity buckets.
package mit

import (
	"sort"
	"strings"

	"github.com/mrz1836/mit/internal/period"
	"github.com/mrz1836/mit/internal/todotxt"
)

// Entry pairs a task with its period marker.
type Entry struct {
	Period period.Period
	Task   todotxt.Task
}

// ContextFilter keeps tasks that mention an @context, or with Invert set,
// tasks that do not.
type ContextFilter struct {
	Context string
	Invert  bool
}

// ParseContextFilter recognizes "@ctx" and "not @ctx" argument lists. It
// reports ok=false for anything else.
func ParseContextFilter(args []string) (*ContextFilter, bool) {
	switch {
	case len(args) == 1 && isContext(args[0]):
		return &ContextFilter{Context: args[0]}, true
	case len(args) == 2 && strings.EqualFold(args[0], "not") && isContext(args[1]):
		return &ContextFilter{Context: args[1], Invert: true}, true
	}
	return nil, false
}

func isContext(s string) bool {
	return len(s) > 1 && s[0] == '@'
}

// Keep reports whether task passes the filter. A nil filter keeps everything.
func (f *ContextFilter) Keep(task todotxt.Task) bool {
	if f == nil {
		return true
	}
	return task.HasContext(f.Context) != f.Invert
}

// Group is the classification of marked tasks by granularity. Each bucket is
// in chronological order with ties broken by line id.
type Group struct {
	buckets [4][]Entry
}

// Classify selects tasks carrying a valid marker, applies filter, and splits
// them by granularity. Completed tasks and tasks without a marker are left
// out. The input is not modified.
func Classify(tasks []todotxt.Task, filter *ContextFilter) Group {
	var g Group
	for _, task := range tasks {
		if !task.IsMIT() || task.Done || !filter.Keep(task) {
			continue
		}
		i := bucketIndex(task.Period.Granularity())
		g.buckets[i] = append(g.buckets[i], Entry{Period: task.Period, Task: task})
	}
	for i := range g.buckets {
		sortEntries(g.buckets[i])
	}
	return g
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := entries[i].Period.Key(), entries[j].Period.Key()
		if ki != kj {
			return ki < kj
		}
		return entries[i].Task.ID < entries[j].Task.ID
	})
}

func bucketIndex(g period.Granularity) int {
	switch g {
	case period.Day:
		return 0
	case period.Month:
		return 1
	case period.Quarter:
		return 2
	default:
		return 3
	}
}

// Bucket returns the entries of granularity g.
func (g Group) Bucket(gran period.Granularity) []Entry {
	return g.buckets[bucketIndex(gran)]
}

// Len returns the total number of entries.
func (g Group) Len() int {
	n := 0
	for _, b := range g.buckets {
		n += len(b)
	}
	return n
}

// Only returns a Group holding just the entries whose period equals p.
func (g Group) Only(p period.Period) Group {
	var out Group
	i := bucketIndex(p.Granularity())
	for _, e := range g.buckets[i] {
		if e.Period.Equal(p) {
			out.buckets[i] = append(out.buckets[i], e)
		}
	}
	return out
}
