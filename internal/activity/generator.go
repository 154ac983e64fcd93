// Package activity wires the scheduling engine to the git collaborator: it
// turns scheduled timestamps into backdated commits and identifies and
// removes them again later.
package activity

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gitseed/gitseed/internal/git"
	"github.com/gitseed/gitseed/internal/schedule"
)

// Applier records one synthetic activity event in the repository.
type Applier interface {
	AppendActivity(ctx context.Context, ts time.Time) error
}

// History enumerates and rewrites the commit history.
type History interface {
	Log(ctx context.Context) ([]git.ChangeRecord, error)
	ResetHard(ctx context.Context, sha string) error
	ClearHistory(ctx context.Context) error
}

// ProgressFunc is called after each event is applied (or simulated), with a
// 1-based index and the total event count.
type ProgressFunc func(current, total int, ts time.Time)

// Generator runs one full-range generation: schedule, then apply each event
// in chronological order.
type Generator struct {
	scheduler *schedule.Scheduler
	repo      Applier
	log       *logrus.Logger
}

func NewGenerator(scheduler *schedule.Scheduler, repo Applier, log *logrus.Logger) *Generator {
	return &Generator{scheduler: scheduler, repo: repo, log: log}
}

// Run generates the schedule for the range and applies every event. Under
// dryRun the repository is never touched but the returned sequence is the
// same. A collaborator failure propagates as-is: events already applied stay
// applied, the rest are never attempted.
func (g *Generator) Run(ctx context.Context, r schedule.DateRange, dryRun bool, progress ProgressFunc) ([]time.Time, error) {
	events, err := g.scheduler.Generate(r, func(index, total int, ts time.Time) error {
		if !dryRun {
			if err := g.repo.AppendActivity(ctx, ts); err != nil {
				return err
			}
		}
		if progress != nil {
			progress(index, total, ts)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"events":  len(events),
		"start":   r.Start.Format("2006-01-02"),
		"end":     r.End.Format("2006-01-02"),
		"dry_run": dryRun,
	}).Debug("activity generation finished")

	return events, nil
}
