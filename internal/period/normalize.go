package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/mrz1836/mit/internal/errors"
)

// TokenKind identifies which date grammar a user token matched.
type TokenKind int

// Token kinds, listed in matching precedence.
const (
	TokenUnknown TokenKind = iota
	TokenToday
	TokenTomorrow
	TokenRelative
	TokenWeekday
	TokenYearCanonical
	TokenMonthCanonical
	TokenDate
	TokenISODate
	TokenQuarterOfYear
	TokenMonthCompact
	TokenYear
	TokenMonthName
	TokenQuarter
)

var tokenKindNames = map[TokenKind]string{ //nolint:gochecknoglobals // lookup table
	TokenUnknown:        "unknown",
	TokenToday:          "today",
	TokenTomorrow:       "tomorrow",
	TokenRelative:       "relative",
	TokenWeekday:        "weekday",
	TokenYearCanonical:  "year-canonical",
	TokenMonthCanonical: "month-canonical",
	TokenDate:           "date",
	TokenISODate:        "iso-date",
	TokenQuarterOfYear:  "quarter-of-year",
	TokenMonthCompact:   "month-compact",
	TokenYear:           "year",
	TokenMonthName:      "month-name",
	TokenQuarter:        "quarter",
}

// String returns a short name for the token kind.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(k))
}

type matcher struct {
	kind    TokenKind
	pattern *regexp.Regexp
}

// matchers are tried in order; the first match decides the token kind.
// More specific shapes come first: YYYY.00.00 and YYYY.MM.00 must be seen
// before the general YYYY.MM.DD form.
//
//nolint:gochecknoglobals // compiled once
var matchers = []matcher{
	{TokenToday, regexp.MustCompile(`^today$`)},
	{TokenTomorrow, regexp.MustCompile(`^tomorrow$`)},
	{TokenRelative, regexp.MustCompile(`^([+-]?\d+)(?:d|day|days)$`)},
	{TokenWeekday, regexp.MustCompile(`^(sun|mon|tue|wed|thu|fri|sat)[a-z]*$`)},
	{TokenYearCanonical, regexp.MustCompile(`^(\d{4})\.00\.00$`)},
	{TokenMonthCanonical, regexp.MustCompile(`^(\d{4})\.(\d{2})\.00$`)},
	{TokenDate, regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})$`)},
	{TokenISODate, regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)},
	{TokenQuarterOfYear, regexp.MustCompile(`^(\d{4})\.?q([1-4])(?:\.00)?$`)},
	{TokenMonthCompact, regexp.MustCompile(`^(\d{4})\.?(\d{2})$`)},
	{TokenYear, regexp.MustCompile(`^(\d{4})$`)},
	{TokenMonthName, regexp.MustCompile(`^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*$`)},
	{TokenQuarter, regexp.MustCompile(`^q([1-4])$`)},
}

var weekdays = map[string]time.Weekday{ //nolint:gochecknoglobals // lookup table
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var weekdayNames = map[string]bool{ //nolint:gochecknoglobals // lookup table
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
	"sun": true, "mon": true, "tue": true, "tues": true, "wed": true,
	"thu": true, "thur": true, "thurs": true, "fri": true, "sat": true,
}

var monthNames = map[string]time.Month{ //nolint:gochecknoglobals // lookup table
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// fold lowercases a token for case-insensitive matching.
func fold(token string) string {
	return cases.Fold().String(strings.TrimSpace(token))
}

// Classify reports the token kind of token along with the submatches of the
// grammar it matched. Tokens are matched case-insensitively. Name-based kinds
// (weekday, month name) are only reported for real names, so "wedding" is
// TokenUnknown.
func Classify(token string) (TokenKind, []string) {
	t := fold(token)
	for _, m := range matchers {
		sub := m.pattern.FindStringSubmatch(t)
		if sub == nil {
			continue
		}
		switch m.kind {
		case TokenWeekday:
			if !weekdayNames[t] {
				continue
			}
		case TokenMonthName:
			if _, ok := monthNames[t]; !ok {
				continue
			}
		}
		return m.kind, sub
	}
	return TokenUnknown, nil
}

// Normalize parses a human-entered date token relative to today and returns
// its canonical Period. Only the calendar date of today is used.
//
// Accepted forms:
//
//	today, tomorrow          Day
//	Nd, Nday, Ndays          Day, N days from today (N may be negative)
//	mon .. sunday            Day, next such weekday strictly after today
//	YYYY.MM.DD, YYYY-MM-DD   Day
//	jan .. december          Month, this year unless the month has passed
//	YYYY.MM, YYYYMM          Month
//	YYYY.MM.00               Month
//	qN                       Quarter, this year unless the quarter has passed
//	YYYYqN, YYYY.qN          Quarter
//	YYYY.QN.00               Quarter
//	YYYY, YYYY.00.00         Year
//
// Unrecognized tokens fail with ErrInvalidDate.
func Normalize(token string, today time.Time) (Period, error) {
	kind, sub := Classify(token)

	var (
		p   Period
		err error
	)
	switch kind {
	case TokenToday:
		p, err = offset(today, 0)
	case TokenTomorrow:
		p, err = offset(today, 1)
	case TokenRelative:
		n, convErr := strconv.Atoi(sub[1])
		if convErr != nil {
			err = fmt.Errorf("%w: offset %s out of range", errors.ErrInvalidDate, sub[1])
			break
		}
		p, err = offset(today, n)
	case TokenWeekday:
		p, err = offset(today, daysUntil(today.Weekday(), weekdays[sub[1]]))
	case TokenYearCanonical, TokenYear:
		p, err = NewYear(atoi(sub[1]))
	case TokenMonthCanonical, TokenMonthCompact:
		p, err = NewMonth(atoi(sub[1]), atoi(sub[2]))
	case TokenDate, TokenISODate:
		p, err = NewDay(atoi(sub[1]), atoi(sub[2]), atoi(sub[3]))
	case TokenQuarterOfYear:
		p, err = NewQuarter(atoi(sub[1]), atoi(sub[2]))
	case TokenMonthName:
		p, err = nearestMonth(today, monthNames[sub[0]])
	case TokenQuarter:
		p, err = nearestQuarter(today, atoi(sub[1]))
	default:
		return Period{}, fmt.Errorf("%w: %q", errors.ErrInvalidDate, token)
	}
	if err != nil {
		return Period{}, fmt.Errorf("%q: %w", token, err)
	}
	return p, nil
}

// offset returns the Day period n days after today.
func offset(today time.Time, n int) (Period, error) {
	d := today.AddDate(0, 0, n)
	return NewDay(d.Year(), int(d.Month()), d.Day())
}

// daysUntil returns how many days after from the next target weekday falls.
// The result is always 1-7: a bare weekday never means today.
func daysUntil(from, target time.Weekday) int {
	n := (int(target) - int(from) + 7) % 7
	if n == 0 {
		n = 7
	}
	return n
}

func nearestMonth(today time.Time, m time.Month) (Period, error) {
	year := today.Year()
	if m < today.Month() {
		year++
	}
	return NewMonth(year, int(m))
}

func nearestQuarter(today time.Time, q int) (Period, error) {
	year := today.Year()
	if q < QuarterOf(today.Month()) {
		year++
	}
	return NewQuarter(year, q)
}

// atoi converts digits already validated by a matcher.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
