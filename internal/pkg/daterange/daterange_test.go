package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{"", "not-a-date", "2024-13-01", "2024-01-32", "01/15/2024"}
	for _, input := range cases {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestWorkingDays_SingleDay(t *testing.T) {
	// A weekday counts as one working day, a weekend day as zero
	monday := Range{Start: date("2024-01-01"), End: date("2024-01-01")}
	assert.Equal(t, 1, monday.WorkingDays())

	saturday := Range{Start: date("2024-01-06"), End: date("2024-01-06")}
	assert.Equal(t, 0, saturday.WorkingDays())

	sunday := Range{Start: date("2024-01-07"), End: date("2024-01-07")}
	assert.Equal(t, 0, sunday.WorkingDays())
}

func TestWorkingDays_FullWeek(t *testing.T) {
	// 2024-01-01 is a Monday; Mon-Sun holds five working days
	r := Range{Start: date("2024-01-01"), End: date("2024-01-07")}
	assert.Equal(t, 5, r.WorkingDays())
}

func TestWorkingDays_InvertedRange(t *testing.T) {
	r := Range{Start: date("2024-01-07"), End: date("2024-01-01")}
	assert.Equal(t, 0, r.WorkingDays())
}

func TestExpectedHours(t *testing.T) {
	r := Range{Start: date("2024-01-01"), End: date("2024-01-07")}
	assert.InDelta(t, 40, r.ExpectedHours(), 0.0001)
}

func TestUtilizationRate(t *testing.T) {
	cases := []struct {
		name             string
		actual, expected float64
		want             float64
	}{
		{"zero expected", 50, 0, 0},
		{"negative expected", 10, -8, 0},
		{"exact", 40, 40, 100},
		{"clipped above 100", 80, 40, 100},
		{"partial", 12, 40, 30},
		{"zero actual", 0, 40, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, UtilizationRate(c.actual, c.expected), 0.0001)
		})
	}
}

func TestForPeriod_Week(t *testing.T) {
	// Wednesday resolves to the Monday-Sunday week containing it
	r, err := ForPeriod("week", date("2025-06-11"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", r.Start.Format(DateLayout))
	assert.Equal(t, "2025-06-15", r.End.Format(DateLayout))

	// A Monday is its own week start, a Sunday its own week end
	r, err = ForPeriod("week", date("2025-06-09"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", r.Start.Format(DateLayout))

	r, err = ForPeriod("week", date("2025-06-15"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", r.Start.Format(DateLayout))
	assert.Equal(t, "2025-06-15", r.End.Format(DateLayout))
}

func TestForPeriod_Month(t *testing.T) {
	r, err := ForPeriod("month", date("2025-02-14"))
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", r.Start.Format(DateLayout))
	assert.Equal(t, "2025-02-28", r.End.Format(DateLayout))

	// Leap year February
	r, err = ForPeriod("month", date("2024-02-14"))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", r.End.Format(DateLayout))
}

func TestForPeriod_Unknown(t *testing.T) {
	_, err := ForPeriod("quarter", date("2025-06-11"))
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestDescription(t *testing.T) {
	now := date("2025-06-11")

	thisWeek, err := ForPeriod("week", now)
	require.NoError(t, err)
	assert.Equal(t, "This Week", thisWeek.Description(now))

	thisMonth, err := ForPeriod("month", now)
	require.NoError(t, err)
	assert.Equal(t, "This Month", thisMonth.Description(now))

	sameMonth := Range{Start: date("2025-01-15"), End: date("2025-01-22")}
	assert.Equal(t, "Jan 15 - 22, 2025", sameMonth.Description(now))

	sameYear := Range{Start: date("2025-01-15"), End: date("2025-02-28")}
	assert.Equal(t, "Jan 15 - Feb 28, 2025", sameYear.Description(now))

	crossYear := Range{Start: date("2024-12-25"), End: date("2025-01-05")}
	assert.Equal(t, "Dec 25, 2024 - Jan 5, 2025", crossYear.Description(now))
}

func TestDescription_NonUTCServerZone(t *testing.T) {
	// Explicit bounds parse in UTC; the preset window derives from the
	// server zone. The label must compare calendar dates, not instants.
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 6, 11, 10, 0, 0, 0, loc)

	week, err := NewRange("2025-06-09", "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "This Week", week.Description(now))

	month, err := NewRange("2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, "This Month", month.Description(now))

	other, err := NewRange("2025-06-02", "2025-06-08")
	require.NoError(t, err)
	assert.Equal(t, "Jun 2 - 8, 2025", other.Description(now))
}

func TestQuery_Resolve(t *testing.T) {
	now := date("2025-06-11")

	// Preset period wins over explicit bounds
	r, err := Query{Period: "month", StartDate: "2025-01-01", EndDate: "2025-01-31"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", r.Start.Format(DateLayout))

	// Explicit bounds
	r, err = Query{StartDate: "2025-01-01", EndDate: "2025-01-31"}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", r.End.Format(DateLayout))

	// Default is the current week
	r, err = Query{}.Resolve(now)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", r.Start.Format(DateLayout))

	// Half-open custom bounds are rejected
	_, err = Query{StartDate: "2025-01-01"}.Resolve(now)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Unknown presets are rejected before any date math
	_, err = Query{Period: "quarter"}.Resolve(now)
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestInfo(t *testing.T) {
	r := Range{Start: date("2024-01-01"), End: date("2024-01-07")}
	info := r.Info(date("2025-06-11"))
	assert.Equal(t, "2024-01-01", info.StartDate)
	assert.Equal(t, "2024-01-07", info.EndDate)
	assert.Equal(t, 5, info.WorkingDays)
	assert.InDelta(t, 40, info.ExpectedHours, 0.0001)
	assert.Equal(t, "Jan 1 - 7, 2024", info.Label)
}
