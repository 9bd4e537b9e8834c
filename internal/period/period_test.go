package period

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/mit/internal/errors"
)

func TestConstructors_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() (Period, error)
		wantErr bool
	}{
		{"day ok", func() (Period, error) { return NewDay(2016, 11, 13) }, false},
		{"day lenient 02.30", func() (Period, error) { return NewDay(2021, 2, 30) }, false},
		{"day month 0", func() (Period, error) { return NewDay(2016, 0, 13) }, true},
		{"day month 13", func() (Period, error) { return NewDay(2016, 13, 1) }, true},
		{"day 0", func() (Period, error) { return NewDay(2016, 1, 0) }, true},
		{"day 32", func() (Period, error) { return NewDay(2016, 1, 32) }, true},
		{"month ok", func() (Period, error) { return NewMonth(2016, 12) }, false},
		{"month 13", func() (Period, error) { return NewMonth(2016, 13) }, true},
		{"quarter ok", func() (Period, error) { return NewQuarter(2016, 4) }, false},
		{"quarter 5", func() (Period, error) { return NewQuarter(2016, 5) }, true},
		{"quarter 0", func() (Period, error) { return NewQuarter(2016, 0) }, true},
		{"year ok", func() (Period, error) { return NewYear(9999) }, false},
		{"year 0", func() (Period, error) { return NewYear(0) }, true},
		{"year 10000", func() (Period, error) { return NewYear(10000) }, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := tc.build()
			if tc.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidDate)
				assert.True(t, p.IsZero())
				return
			}
			require.NoError(t, err)
			assert.False(t, p.IsZero())
		})
	}
}

func TestPeriod_StringAndGranularity(t *testing.T) {
	t.Parallel()

	day, _ := NewDay(2016, 1, 5)
	month, _ := NewMonth(2016, 3)
	quarter, _ := NewQuarter(2017, 2)
	year, _ := NewYear(2018)

	tests := []struct {
		p    Period
		text string
		g    Granularity
		key  int
	}{
		{day, "2016.01.05", Day, 20160105},
		{month, "2016.03.00", Month, 20160300},
		{quarter, "2017.Q2.00", Quarter, 20170401},
		{year, "2018.00.00", Year, 20180000},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.text, tc.p.String())
			assert.Equal(t, "{"+tc.text+"}", tc.p.Marker())
			assert.Equal(t, tc.g, tc.p.Granularity())
			assert.Equal(t, tc.key, tc.p.Key())
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"2016.11.13", "2016.11.00", "2016.Q4.00", "2016.00.00", "0001.01.01", "9999.12.31"} {
		text := text
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			p, err := Parse(text)
			require.NoError(t, err)
			assert.Equal(t, text, p.String())

			again, err := Parse(p.String())
			require.NoError(t, err)
			assert.True(t, p.Equal(again))
		})
	}
}

func TestParse_LowercaseQuarter(t *testing.T) {
	t.Parallel()

	p, err := Parse("2016.q3.00")
	require.NoError(t, err)
	assert.Equal(t, "2016.Q3.00", p.String())
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"", "2016", "2016.11", "2016-11-13", "16.11.13", "2016.13.01", "2016.11.32",
		"2016.00.05", "2016.Q5.00", "2016.Q1.03", "2016.Q.00", "abcd.ef.gh", " 2016.11.13",
	} {
		text := text
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(text)
			require.ErrorIs(t, err, errors.ErrMalformedMarker)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("2016.Q1.00") })
}

func TestOf(t *testing.T) {
	t.Parallel()

	now := time.Date(2016, 11, 13, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2016.11.13", Of(now, Day).String())
	assert.Equal(t, "2016.11.00", Of(now, Month).String())
	assert.Equal(t, "2016.Q4.00", Of(now, Quarter).String())
	assert.Equal(t, "2016.00.00", Of(now, Year).String())
}

func TestQuarterMapping(t *testing.T) {
	t.Parallel()

	expected := map[time.Month]int{
		time.January: 1, time.February: 1, time.March: 1,
		time.April: 2, time.May: 2, time.June: 2,
		time.July: 3, time.August: 3, time.September: 3,
		time.October: 4, time.November: 4, time.December: 4,
	}
	for m, q := range expected {
		assert.Equal(t, q, QuarterOf(m), m.String())
	}

	assert.Equal(t, time.January, QuarterStart(1))
	assert.Equal(t, time.April, QuarterStart(2))
	assert.Equal(t, time.July, QuarterStart(3))
	assert.Equal(t, time.October, QuarterStart(4))
}

// TestKey_Monotonic checks that Key order matches chronological order for
// every granularity across year boundaries.
func TestKey_Monotonic(t *testing.T) {
	t.Parallel()

	start := time.Date(2015, 12, 25, 0, 0, 0, 0, time.UTC)
	for _, g := range ReportOrder() {
		prev := Of(start, g)
		for i := 1; i < 800; i++ {
			cur := Of(start.AddDate(0, 0, i), g)
			if cur.Equal(prev) {
				continue
			}
			assert.Greater(t, cur.Key(), prev.Key(), "%s after %s", cur, prev)
			assert.Equal(t, 1, cur.Compare(prev))
			assert.Equal(t, -1, prev.Compare(cur))
			prev = cur
		}
	}
}

// TestCanonicalText_OrderAgreesWithKey verifies that sorting canonical text
// within one granularity gives the same order as sorting by Key. This holds
// only because every field is fixed width, including the single quarter digit.
func TestCanonicalText_OrderAgreesWithKey(t *testing.T) {
	t.Parallel()

	quarters := []Period{
		MustParse("2017.Q4.00"), MustParse("2016.Q1.00"), MustParse("2017.Q1.00"),
		MustParse("2016.Q3.00"), MustParse("2016.Q2.00"),
	}
	byText := append([]Period(nil), quarters...)
	byKey := append([]Period(nil), quarters...)
	sort.Slice(byText, func(i, j int) bool { return byText[i].String() < byText[j].String() })
	sort.Slice(byKey, func(i, j int) bool { return byKey[i].Key() < byKey[j].Key() })

	assert.Equal(t, byKey, byText)
}

func TestCompare_AcrossGranularities(t *testing.T) {
	t.Parallel()

	day := MustParse("2020.01.01")
	year := MustParse("2010.00.00")

	assert.Equal(t, -1, day.Compare(year))
	assert.Equal(t, 1, year.Compare(day))
	assert.Equal(t, 0, day.Compare(MustParse("2020.01.01")))
}

func TestStart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Date(2017, time.April, 1, 0, 0, 0, 0, time.UTC), MustParse("2017.Q2.00").Start(time.UTC))
	assert.Equal(t, time.Date(2017, time.March, 1, 0, 0, 0, 0, time.UTC), MustParse("2017.03.00").Start(time.UTC))
	assert.Equal(t, time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC), MustParse("2017.00.00").Start(time.UTC))
	assert.Equal(t, time.Date(2017, time.March, 9, 0, 0, 0, 0, time.UTC), MustParse("2017.03.09").Start(time.UTC))
}

func TestGranularity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "day", Day.String())
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "quarter", Quarter.String())
	assert.Equal(t, "year", Year.String())
	assert.Equal(t, "granularity(9)", Granularity(9).String())
	assert.Equal(t, []Granularity{Year, Quarter, Month, Day}, ReportOrder())
}

func TestPeriod_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(struct {
		P Period      `json:"p"`
		G Granularity `json:"g"`
	}{MustParse("2016.Q4.00"), Quarter})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":"2016.Q4.00","g":"quarter"}`, string(data))
}
