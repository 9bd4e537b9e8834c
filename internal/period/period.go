// Package period models the due period carried by an MIT (most important task).
//
// A Period has exactly one of four granularities (day, month, quarter, year) and
// one canonical on-disk spelling per granularity:
//
//	Day      YYYY.MM.DD
//	Month    YYYY.MM.00
//	Quarter  YYYY.QN.00
//	Year     YYYY.00.00
//
// The "00" fields are placeholders meaning "not specified at this level". Periods
// are immutable values; moving a task produces a new Period.
//
// Ordering is defined by Key, an integer shaped like YYYYMMDD. Keys are only
// meaningful between periods of the same granularity, so callers bucket by
// granularity before comparing.
package period

import (
	"fmt"
	"time"

	"github.com/mrz1836/mit/internal/errors"
)

// Granularity is the level of detail of a Period.
type Granularity int

// Granularity values.
const (
	Day Granularity = iota
	Month
	Quarter
	Year
)

// String returns the lowercase name of the granularity.
func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output uses the name.
func (g Granularity) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// ReportOrder returns the granularities in the order reports print them.
func ReportOrder() []Granularity {
	return []Granularity{Year, Quarter, Month, Day}
}

const (
	minYear = 1
	maxYear = 9999
)

// Period is a due period of a single granularity.
// The zero value is not a valid Period; use the constructors.
type Period struct {
	granularity Granularity
	year        int
	month       int
	day         int
	quarter     int
}

// NewDay returns a Day period. Months must be 1-12 and days 1-31; the
// day is not checked against the month's length.
func NewDay(year, month, day int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %02d out of range", errors.ErrInvalidDate, month)
	}
	if day < 1 || day > 31 {
		return Period{}, fmt.Errorf("%w: day %02d out of range", errors.ErrInvalidDate, day)
	}
	return Period{granularity: Day, year: year, month: month, day: day}, nil
}

// NewMonth returns a Month period.
func NewMonth(year, month int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %02d out of range", errors.ErrInvalidDate, month)
	}
	return Period{granularity: Month, year: year, month: month}, nil
}

// NewQuarter returns a Quarter period for quarter 1-4.
func NewQuarter(year, quarter int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	if quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("%w: quarter %d out of range", errors.ErrInvalidDate, quarter)
	}
	return Period{granularity: Quarter, year: year, quarter: quarter}, nil
}

// NewYear returns a Year period.
func NewYear(year int) (Period, error) {
	if err := checkYear(year); err != nil {
		return Period{}, err
	}
	return Period{granularity: Year, year: year}, nil
}

func checkYear(year int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: year %d out of range", errors.ErrInvalidDate, year)
	}
	return nil
}

// Of returns the period of granularity g that contains t.
// It panics if t's year cannot be written with four digits.
func Of(t time.Time, g Granularity) Period {
	y, m, d := t.Date()
	if checkYear(y) != nil {
		panic(fmt.Sprintf("period: year %d cannot be represented", y))
	}
	switch g {
	case Day:
		return Period{granularity: Day, year: y, month: int(m), day: d}
	case Month:
		return Period{granularity: Month, year: y, month: int(m)}
	case Quarter:
		return Period{granularity: Quarter, year: y, quarter: QuarterOf(m)}
	default:
		return Period{granularity: Year, year: y}
	}
}

// QuarterOf returns the quarter (1-4) containing month m.
func QuarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// QuarterStart returns the first month of quarter q: Q1 January, Q2 April,
// Q3 July, Q4 October.
func QuarterStart(q int) time.Month {
	return time.Month((q-1)*3 + 1)
}

// Granularity returns the period's granularity.
func (p Period) Granularity() Granularity { return p.granularity }

// Year returns the four digit year.
func (p Period) Year() int { return p.year }

// Month returns the month for Day and Month periods, 0 otherwise.
func (p Period) Month() int { return p.month }

// Day returns the day of month for Day periods, 0 otherwise.
func (p Period) Day() int { return p.day }

// Quarter returns the quarter for Quarter periods, 0 otherwise.
func (p Period) Quarter() int { return p.quarter }

// IsZero reports whether p is the zero value.
func (p Period) IsZero() bool { return p.year == 0 }

// String returns the canonical text of the period.
func (p Period) String() string {
	switch p.granularity {
	case Day:
		return fmt.Sprintf("%04d.%02d.%02d", p.year, p.month, p.day)
	case Month:
		return fmt.Sprintf("%04d.%02d.00", p.year, p.month)
	case Quarter:
		return fmt.Sprintf("%04d.Q%d.00", p.year, p.quarter)
	default:
		return fmt.Sprintf("%04d.00.00", p.year)
	}
}

// Marker returns the canonical text wrapped in braces, as stored on a task line.
func (p Period) Marker() string {
	return "{" + p.String() + "}"
}

// MarshalText implements encoding.TextMarshaler using the canonical text.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Key returns an integer shaped like YYYYMMDD. Month and Year periods use 00
// for the unspecified fields; Quarter periods expand to the first day of the
// quarter's first month, so 2017.Q2.00 has key 20170401.
func (p Period) Key() int {
	switch p.granularity {
	case Day:
		return p.year*10000 + p.month*100 + p.day
	case Month:
		return p.year*10000 + p.month*100
	case Quarter:
		return p.year*10000 + int(QuarterStart(p.quarter))*100 + 1
	default:
		return p.year * 10000
	}
}

// Compare orders p and o. Periods of different granularity are ordered by
// granularity so that sorting a mixed slice is deterministic; within one
// granularity the order is chronological.
func (p Period) Compare(o Period) int {
	if p.granularity != o.granularity {
		if p.granularity < o.granularity {
			return -1
		}
		return 1
	}
	pk, ok := p.Key(), o.Key()
	switch {
	case pk < ok:
		return -1
	case pk > ok:
		return 1
	default:
		return 0
	}
}

// Equal reports whether p and o are the same period.
func (p Period) Equal(o Period) bool {
	return p == o
}

// Start returns midnight on the first day covered by the period, in loc.
func (p Period) Start(loc *time.Location) time.Time {
	switch p.granularity {
	case Day:
		return time.Date(p.year, time.Month(p.month), p.day, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(p.year, time.Month(p.month), 1, 0, 0, 0, 0, loc)
	case Quarter:
		return time.Date(p.year, QuarterStart(p.quarter), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(p.year, time.January, 1, 0, 0, 0, 0, loc)
	}
}
