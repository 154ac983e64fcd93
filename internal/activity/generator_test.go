package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitseed/gitseed/internal/calendar"
	"github.com/gitseed/gitseed/internal/schedule"
)

type fakeApplier struct {
	applied []time.Time
	failAt  int // 1-based call number to fail on, 0 = never
}

func (f *fakeApplier) AppendActivity(ctx context.Context, ts time.Time) error {
	if f.failAt > 0 && len(f.applied)+1 == f.failAt {
		return errors.New("commit failed")
	}
	f.applied = append(f.applied, ts)
	return nil
}

func testGenerator(repo Applier, seed uint64) *Generator {
	weights := schedule.Weights{
		MinCommits:    1,
		MaxCommits:    2,
		WeekendWeight: 1.0,
		WeekdayWeight: 1.0,
		HolidayWeight: 1.0,
	}
	noHolidays := calendar.HolidayFunc(func(time.Time) bool { return false })
	return NewGenerator(schedule.New(weights, noHolidays, schedule.NewSeedRand(seed)), repo, quietLogger())
}

func testRange(t *testing.T) schedule.DateRange {
	t.Helper()
	r, err := schedule.NewDateRange(
		time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return r
}

func TestRunAppliesEveryEventInOrder(t *testing.T) {
	repo := &fakeApplier{}
	gen := testGenerator(repo, 9)

	var seen []time.Time
	events, err := gen.Run(context.Background(), testRange(t), false, func(current, total int, ts time.Time) {
		seen = append(seen, ts)
		assert.Equal(t, len(seen), current)
	})
	require.NoError(t, err)
	require.NotEmpty(t, events)

	assert.Equal(t, events, repo.applied)
	assert.Equal(t, events, seen)
}

func TestRunDryRunNeverTouchesRepo(t *testing.T) {
	repo := &fakeApplier{}
	gen := testGenerator(repo, 9)

	events, err := gen.Run(context.Background(), testRange(t), true, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, events)
	assert.Empty(t, repo.applied, "dry run must not apply anything")
}

func TestRunDryRunProducesSameSchedule(t *testing.T) {
	preview, err := testGenerator(&fakeApplier{}, 9).Run(context.Background(), testRange(t), true, nil)
	require.NoError(t, err)

	live, err := testGenerator(&fakeApplier{}, 9).Run(context.Background(), testRange(t), false, nil)
	require.NoError(t, err)

	assert.Equal(t, preview, live)
}

func TestRunStopsOnApplierFailure(t *testing.T) {
	repo := &fakeApplier{failAt: 3}
	gen := testGenerator(repo, 9)

	_, err := gen.Run(context.Background(), testRange(t), false, nil)
	require.Error(t, err)

	// the prefix stays applied, nothing after the failure is attempted
	assert.Len(t, repo.applied, 2)
}
