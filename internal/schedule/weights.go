package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/gitseed/gitseed/internal/calendar"
)

// ErrInvalidRange is returned when a date range does not satisfy start < end.
var ErrInvalidRange = errors.New("start date must be before end date")

// Weights controls how synthetic activity is distributed across a date range.
// Immutable for the lifetime of one scheduling run.
type Weights struct {
	MinCommits int // minimum events per active day
	MaxCommits int // maximum events per active day

	// WeekendWeight scales weekend activity: <1.0 makes weekend days likely
	// to be skipped entirely, >1.0 adds extra events on top of the base draw.
	WeekendWeight float64

	// WeekdayWeight selects how many weekdays per week carry activity
	// (bucketed: <0.3 picks 1-2 days, <0.6 picks 2-3, otherwise 3-4).
	WeekdayWeight float64

	// HolidayWeight scales activity on public holidays, same semantics as
	// WeekendWeight. Holidays take priority over the weekend rule.
	HolidayWeight float64

	// VacationWeeksPerYear is the number of whole weeks per year with no
	// activity at all.
	VacationWeeksPerYear int
}

// Validate rejects weights outside their documented bounds. This runs at the
// CLI boundary; the scheduler itself assumes valid input.
func (w Weights) Validate() error {
	if w.MinCommits < 0 {
		return fmt.Errorf("min commits must be >= 0, got %d", w.MinCommits)
	}
	if w.MaxCommits < w.MinCommits {
		return fmt.Errorf("max commits (%d) must be >= min commits (%d)", w.MaxCommits, w.MinCommits)
	}
	if w.WeekendWeight < 0 {
		return fmt.Errorf("weekend weight must be >= 0, got %g", w.WeekendWeight)
	}
	if w.WeekdayWeight < 0 || w.WeekdayWeight > 1 {
		return fmt.Errorf("weekday weight must be in [0, 1], got %g", w.WeekdayWeight)
	}
	if w.HolidayWeight < 0 {
		return fmt.Errorf("holiday weight must be >= 0, got %g", w.HolidayWeight)
	}
	if w.VacationWeeksPerYear < 0 || w.VacationWeeksPerYear > 10 {
		return fmt.Errorf("vacation weeks per year must be in [0, 10], got %d", w.VacationWeeksPerYear)
	}
	return nil
}

// DateRange is an inclusive day-granularity span with Start strictly before
// End. Both endpoints are normalized to UTC midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange, rejecting start >= end before any
// scheduling work begins.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = calendar.Midnight(start)
	end = calendar.Midnight(end)
	if !start.Before(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Days returns the number of whole days between Start and End.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}
