package period

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mrz1836/mit/internal/errors"
)

// canonicalPattern matches the four canonical spellings. The middle field is
// either a two digit month (00 for Year) or Q followed by the quarter digit.
var canonicalPattern = regexp.MustCompile(`^(\d{4})\.(\d{2}|[Qq][1-4])\.(\d{2})$`) //nolint:gochecknoglobals // compiled once

// Parse reads the canonical text of a period, as produced by Period.String.
// Anything that is not one of the four canonical shapes fails with
// ErrMalformedMarker.
func Parse(text string) (Period, error) {
	m := canonicalPattern.FindStringSubmatch(text)
	if m == nil {
		return Period{}, fmt.Errorf("%w: %q", errors.ErrMalformedMarker, text)
	}

	year, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[3])

	var (
		p   Period
		err error
	)
	switch mid := m[2]; {
	case mid[0] == 'Q' || mid[0] == 'q':
		if day != 0 {
			return Period{}, fmt.Errorf("%w: quarter %q has a day", errors.ErrMalformedMarker, text)
		}
		p, err = NewQuarter(year, int(mid[1]-'0'))
	case mid == "00":
		if day != 0 {
			return Period{}, fmt.Errorf("%w: %q has a day without a month", errors.ErrMalformedMarker, text)
		}
		p, err = NewYear(year)
	default:
		month, _ := strconv.Atoi(mid)
		if day == 0 {
			p, err = NewMonth(year, month)
		} else {
			p, err = NewDay(year, month, day)
		}
	}
	if err != nil {
		return Period{}, fmt.Errorf("%w: %w", errors.ErrMalformedMarker, err)
	}
	return p, nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// package level literals.
func MustParse(text string) Period {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}
