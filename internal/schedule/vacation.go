package schedule

import (
	"time"

	"github.com/gitseed/gitseed/internal/calendar"
)

// PlanVacationWeeks picks the Monday week-starts that carry no activity at
// all, spaced roughly evenly across the range. Weeks touching the year-end
// quiet period are never candidates since those days are already suppressed
// by the holiday weight.
func (s *Scheduler) PlanVacationWeeks(r DateRange) map[time.Time]struct{} {
	vacation := make(map[time.Time]struct{})

	totalDays := r.Days()
	totalWeeks := totalDays / 7
	years := float64(totalDays) / 365.25

	target := int(years * float64(s.weights.VacationWeeksPerYear))
	if target < 1 {
		target = 1
	}
	if target > totalWeeks {
		target = totalWeeks
	}
	if target == 0 {
		return vacation
	}

	var candidates []time.Time
	for ws := calendar.WeekStart(r.Start); !ws.After(r.End); ws = ws.AddDate(0, 0, 7) {
		if !weekTouchesQuietPeriod(ws) {
			candidates = append(candidates, ws)
		}
	}

	if len(candidates) <= target {
		for _, ws := range candidates {
			vacation[ws] = struct{}{}
		}
		return vacation
	}

	// Evenly spaced picks, each perturbed by +/- one slot so the pattern
	// doesn't look mechanical. Picks are independent; a collision just
	// collapses into one week.
	interval := float64(len(candidates)) / float64(target)
	for i := 0; i < target; i++ {
		index := int(float64(i)*interval) + s.rng.IntBetween(-1, 1)
		if index < 0 {
			index = 0
		}
		if index > len(candidates)-1 {
			index = len(candidates) - 1
		}
		vacation[candidates[index]] = struct{}{}
	}
	return vacation
}

// weekTouchesQuietPeriod checks whether any day of the Mon-Sun week starting
// at ws falls in the Dec 20 - Jan 7 window.
func weekTouchesQuietPeriod(ws time.Time) bool {
	for i := 0; i < 7; i++ {
		if calendar.IsMajorHolidayPeriod(ws.AddDate(0, 0, i)) {
			return true
		}
	}
	return false
}
