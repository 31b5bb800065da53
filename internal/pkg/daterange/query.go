package daterange

import (
	"fmt"
	"time"

	"github.com/hoursly/worklog-portal/internal/pkg/validator"
)

// Query is the period selection carried by every aggregated view. A preset
// period wins over explicit bounds; with neither, the current week is used.
type Query struct {
	Period    string // "week" or "month"
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// Resolve turns the query into a concrete date range.
func (q Query) Resolve(now time.Time) (Range, error) {
	if q.Period != "" {
		if !validator.IsValidPeriod(q.Period) {
			return Range{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, q.Period)
		}
		return ForPeriod(q.Period, now)
	}
	if q.StartDate != "" || q.EndDate != "" {
		return NewRange(q.StartDate, q.EndDate)
	}
	return ForPeriod("week", now)
}
