package schedule

import (
	"sort"
	"time"

	"github.com/gitseed/gitseed/internal/calendar"
)

// ApplyFunc is invoked once per generated timestamp, in chronological order,
// with a 1-based index and the total event count. It is the scheduler's only
// side-effecting hook; errors propagate to the caller unmodified.
type ApplyFunc func(index, total int, ts time.Time) error

// Scheduler turns a date range and a weight configuration into an ordered
// sequence of activity timestamps. One Scheduler serves one Generate call at
// a time: it carries the per-week workday selection across the day loop.
type Scheduler struct {
	weights  Weights
	holidays calendar.HolidayCalendar
	rng      Rand

	// per-run state, reset at the top of Generate
	vacationWeeks    map[time.Time]struct{}
	currentWeekStart time.Time
	selectedWeekdays map[int]struct{}
}

// New builds a Scheduler. Weights are assumed to be validated at the boundary.
func New(weights Weights, holidays calendar.HolidayCalendar, rng Rand) *Scheduler {
	return &Scheduler{
		weights:  weights,
		holidays: holidays,
		rng:      rng,
	}
}

// Generate produces every activity timestamp for the range, sorted ascending,
// and drives apply once per timestamp. A nil apply previews the schedule; the
// returned sequence is identical either way.
func (s *Scheduler) Generate(r DateRange, apply ApplyFunc) ([]time.Time, error) {
	if !r.Start.Before(r.End) {
		return nil, ErrInvalidRange
	}

	s.vacationWeeks = s.PlanVacationWeeks(r)
	s.currentWeekStart = time.Time{}
	s.selectedWeekdays = nil

	var events []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		count := s.commitCountFor(d)
		for i := 0; i < count; i++ {
			events = append(events, s.workTime(d))
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Before(events[j]) })

	if apply != nil {
		for i, ts := range events {
			if err := apply(i+1, len(events), ts); err != nil {
				return nil, err
			}
		}
	}
	return events, nil
}

// commitCountFor decides how many events a single day carries. Priority:
// vacation week > holiday > weekend > per-week weekday selection.
func (s *Scheduler) commitCountFor(d time.Time) int {
	weekStart := calendar.WeekStart(d)
	if _, ok := s.vacationWeeks[weekStart]; ok {
		return 0
	}

	if !weekStart.Equal(s.currentWeekStart) {
		s.currentWeekStart = weekStart
		s.selectedWeekdays = s.selectWorkdays()
	}

	base := s.rng.IntBetween(s.weights.MinCommits, s.weights.MaxCommits)

	var probability float64
	switch {
	case s.holidays.IsHoliday(d):
		probability = s.weights.HolidayWeight
	case calendar.IsWeekend(d):
		probability = s.weights.WeekendWeight
	default:
		if _, ok := s.selectedWeekdays[calendar.WeekdayIndex(d)]; !ok {
			return 0
		}
		probability = 1.0
	}

	// Sub-1.0 weights skip the whole day with probability 1-p; weights above
	// 1.0 top up the base draw instead.
	if probability < 1.0 && s.rng.Float64() > probability {
		return 0
	}
	if probability > 1.0 {
		extraCap := int((probability - 1.0) * float64(base))
		base += s.rng.IntBetween(0, extraCap)
	}
	return base
}

// selectWorkdays picks which weekdays (0=Mon..4=Fri) carry activity this
// week. The weekday weight buckets into 1-2, 2-3 or 3-4 days.
func (s *Scheduler) selectWorkdays() map[int]struct{} {
	var count int
	switch {
	case s.weights.WeekdayWeight < 0.3:
		count = s.rng.IntBetween(1, 2)
	case s.weights.WeekdayWeight < 0.6:
		count = s.rng.IntBetween(2, 3)
	default:
		count = s.rng.IntBetween(3, 4)
	}

	selected := make(map[int]struct{}, count)
	for _, day := range s.rng.Sample(5, count) {
		selected[day] = struct{}{}
	}
	return selected
}

// workTime combines a date with a random time inside the 09:00:00-17:59:59
// work window.
func (s *Scheduler) workTime(d time.Time) time.Time {
	hour := s.rng.IntBetween(9, 17)
	minute := s.rng.IntBetween(0, 59)
	second := s.rng.IntBetween(0, 59)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, 0, d.Location())
}
