// Package daterange provides the calendar arithmetic behind every period
// selector in the portal: working-day counting, expected hours and
// utilization percentages, and the human labels shown on period pickers.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// HoursPerWorkingDay is the expected workload of one weekday.
const HoursPerWorkingDay = 8

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrUnknownPeriod = errors.New("unknown period")
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Range is a closed calendar-date interval selected by the viewer. It is
// query state only, never persisted.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange parses both bounds of a closed date interval.
func NewRange(start, end string) (Range, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, End: e}, nil
}

// ForPeriod returns the Monday-Sunday week or the first-last calendar month
// containing ref.
func ForPeriod(period string, ref time.Time) (Range, error) {
	ref = truncate(ref)
	switch period {
	case "week":
		// Weekday is Sunday-based; shift so Monday is day zero.
		offset := (int(ref.Weekday()) + 6) % 7
		start := ref.AddDate(0, 0, -offset)
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case "month":
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return Range{Start: start, End: start.AddDate(0, 1, -1)}, nil
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
}

// WorkingDays counts the Monday-Friday days inside the range, both bounds
// inclusive. An inverted range has zero working days.
func (r Range) WorkingDays() int {
	days := 0
	for d := truncate(r.Start); !d.After(truncate(r.End)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// ExpectedHours is the workload a full-time employee is expected to log over
// the range.
func (r Range) ExpectedHours() float64 {
	return float64(r.WorkingDays() * HoursPerWorkingDay)
}

// UtilizationRate returns the percentage of expected hours actually logged,
// clipped to [0, 100]. Excess hours are clipped for display only.
func UtilizationRate(actualHours, expectedHours float64) float64 {
	if expectedHours <= 0 {
		return 0
	}
	rate := actualHours / expectedHours * 100
	if rate > 100 {
		return 100
	}
	if rate < 0 {
		return 0
	}
	return rate
}

// Description returns "This Week" / "This Month" when the range matches the
// current window, otherwise a compact label such as "Jan 15 - 22, 2025",
// "Jan 15 - Feb 28, 2025" or "Dec 25, 2024 - Jan 5, 2025".
func (r Range) Description(now time.Time) string {
	if week, err := ForPeriod("week", now); err == nil && r.equals(week) {
		return "This Week"
	}
	if month, err := ForPeriod("month", now); err == nil && r.equals(month) {
		return "This Month"
	}

	s, e := r.Start, r.End
	switch {
	case s.Year() == e.Year() && s.Month() == e.Month():
		return s.Format("Jan 2") + " - " + e.Format("2, 2006")
	case s.Year() == e.Year():
		return s.Format("Jan 2") + " - " + e.Format("Jan 2, 2006")
	default:
		return s.Format("Jan 2, 2006") + " - " + e.Format("Jan 2, 2006")
	}
}

// Info is the period header attached to every aggregated view.
type Info struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	WorkingDays   int     `json:"working_days"`
	ExpectedHours float64 `json:"expected_hours"`
	Label         string  `json:"label"`
}

// Info flattens the range into its serializable view header.
func (r Range) Info(now time.Time) Info {
	return Info{
		StartDate:     r.Start.Format(DateLayout),
		EndDate:       r.End.Format(DateLayout),
		WorkingDays:   r.WorkingDays(),
		ExpectedHours: r.ExpectedHours(),
		Label:         r.Description(now),
	}
}

// equals compares calendar dates, not instants: parsed bounds carry UTC while
// preset windows carry the server zone.
func (r Range) equals(o Range) bool {
	return r.Start.Format(DateLayout) == o.Start.Format(DateLayout) &&
		r.End.Format(DateLayout) == o.End.Format(DateLayout)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
