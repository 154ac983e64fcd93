package calendar

import "time"

// WeekdayIndex returns the Monday-based weekday index for a date
// (0=Monday .. 6=Sunday). Go's time.Weekday is Sunday-based, so shift it.
func WeekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// IsWeekend checks if a date falls on a Saturday or Sunday
func IsWeekend(d time.Time) bool {
	return WeekdayIndex(d) >= 5
}

// Midnight truncates a date to 00:00:00 in UTC. All scheduling math works on
// UTC-midnight dates so that day stepping is immune to DST transitions; the
// zone is stripped again before anything is written to git.
func Midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday on or before the given date, at midnight.
func WeekStart(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, -WeekdayIndex(d))
}

// IsMajorHolidayPeriod checks if a date falls inside the year-end quiet
// period (Dec 20 onward, or Jan 7 and earlier). Vacation weeks are never
// scheduled over these days since activity there is already suppressed.
func IsMajorHolidayPeriod(d time.Time) bool {
	if d.Month() == time.December && d.Day() >= 20 {
		return true
	}
	if d.Month() == time.January && d.Day() <= 7 {
		return true
	}
	return false
}
