package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// HolidayCalendar reports whether a date is a public holiday. The scheduler
// takes this as a capability so tests (and non-US users) can swap the table.
type HolidayCalendar interface {
	IsHoliday(d time.Time) bool
}

// HolidayFunc adapts a plain function to HolidayCalendar.
type HolidayFunc func(d time.Time) bool

func (f HolidayFunc) IsHoliday(d time.Time) bool { return f(d) }

// usCalendar wraps the rickar/cal US federal holiday table.
type usCalendar struct {
	cal *cal.Calendar
}

// NewUnitedStates returns a HolidayCalendar backed by the US federal
// holiday set.
func NewUnitedStates() HolidayCalendar {
	c := &cal.Calendar{Name: "United States"}
	c.AddHoliday(us.Holidays...)
	return &usCalendar{cal: c}
}

func (u *usCalendar) IsHoliday(d time.Time) bool {
	actual, observed, _ := u.cal.IsHoliday(d)
	return actual || observed
}
