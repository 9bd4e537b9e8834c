package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mrz1836/mit/internal/period"
)

// weekLabelDays is the first distance in days labeled with a full date
// rather than a weekday name.
const weekLabelDays = 7

func currentLabel(g period.Granularity) string {
	switch g {
	case period.Year:
		return "This Year"
	case period.Quarter:
		return "This Quarter"
	case period.Month:
		return "This Month"
	default:
		return "Today"
	}
}

// futureLabel names a period that starts after now.
func futureLabel(p period.Period, now time.Time) string {
	switch p.Granularity() {
	case period.Year:
		return strconv.Itoa(p.Year())
	case period.Quarter:
		return fmt.Sprintf("Q%d %d", p.Quarter(), p.Year())
	case period.Month:
		return time.Month(p.Month()).String() + " " + strconv.Itoa(p.Year())
	default:
		day := p.Start(time.UTC)
		if daysAfter(now, p) < weekLabelDays {
			return day.Weekday().String()
		}
		return day.Format("Monday, January 02")
	}
}

// daysAfter returns the number of calendar days from now's date to the start
// of p. Both sides are taken as UTC dates so DST shifts do not matter.
func daysAfter(now time.Time, p period.Period) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(p.Start(time.UTC).Sub(today).Hours() / 24)
}
