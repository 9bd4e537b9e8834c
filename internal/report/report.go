// Package report turns classified MITs into labeled sections relative to a
// point in time.
package report

import (
	"time"

	"github.com/mrz1836/mit/internal/mit"
	"github.com/mrz1836/mit/internal/period"
)

// Kind says where a section sits relative to now.
type Kind string

// Section kinds.
const (
	KindPastDue Kind = "past_due"
	KindCurrent Kind = "current"
	KindFuture  Kind = "future"
)

// Item is one task line of a section.
type Item struct {
	ID     int           `json:"id"`
	Period period.Period `json:"period"`
	Text   string        `json:"text"`
}

// Section is a labeled run of items of a single granularity.
type Section struct {
	Granularity period.Granularity `json:"granularity"`
	Kind        Kind               `json:"kind"`
	Label       string             `json:"label"`
	Items       []Item             `json:"tasks"`
}

// Report is the full rendering input: sections in display order.
type Report struct {
	Date     string    `json:"date"`
	Sections []Section `json:"sections"`
}

// Options tune Build.
type Options struct {
	// Days hides future Day sections more than Days days after now.
	// Zero shows everything.
	Days int
}

// Empty reports whether the report has no sections.
func (r Report) Empty() bool {
	return len(r.Sections) == 0
}

// Build lays out g relative to now. Granularities appear Year, Quarter,
// Month, Day. Within each, every entry before the current period goes into
// one Past Due section, followed by one section per period in ascending
// order.
func Build(g mit.Group, now time.Time, opts Options) Report {
	r := Report{Date: now.Format("2006-01-02"), Sections: []Section{}}

	for _, gran := range period.ReportOrder() {
		entries := g.Bucket(gran)
		if len(entries) == 0 {
			continue
		}
		nowKey := period.Of(now, gran).Key()

		var past []Item
		i := 0
		for ; i < len(entries) && entries[i].Period.Key() < nowKey; i++ {
			past = append(past, item(entries[i]))
		}
		if len(past) > 0 {
			r.Sections = append(r.Sections, Section{
				Granularity: gran,
				Kind:        KindPastDue,
				Label:       "Past Due",
				Items:       past,
			})
		}

		for i < len(entries) {
			p := entries[i].Period
			var items []Item
			for ; i < len(entries) && entries[i].Period.Key() == p.Key(); i++ {
				items = append(items, item(entries[i]))
			}

			if p.Key() == nowKey {
				r.Sections = append(r.Sections, Section{
					Granularity: gran,
					Kind:        KindCurrent,
					Label:       currentLabel(gran),
					Items:       items,
				})
				continue
			}
			if gran == period.Day && opts.Days > 0 && daysAfter(now, p) > opts.Days {
				continue
			}
			r.Sections = append(r.Sections, Section{
				Granularity: gran,
				Kind:        KindFuture,
				Label:       futureLabel(p, now),
				Items:       items,
			})
		}
	}
	return r
}

// item shows the whole stored line minus its marker, so priority and creation
// date stay visible next to the body.
func item(e mit.Entry) Item {
	return Item{ID: e.Task.ID, Period: e.Period, Text: e.Task.Text()}
}
