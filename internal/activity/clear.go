package activity

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gitseed/gitseed/internal/git"
)

// FindRemovable returns the records whose entire change set is the activity
// log file, in the order supplied. Records touching anything else, or
// touching nothing (merges), are kept.
func FindRemovable(records []git.ChangeRecord) []git.ChangeRecord {
	var removable []git.ChangeRecord
	for _, rec := range records {
		if rec.TouchesOnly(git.ActivityLogFile) {
			removable = append(removable, rec)
		}
	}
	return removable
}

// ClearResult reports what a Clear run removed. ResetTarget is the SHA the
// branch was reset to, or empty when the whole history was cleared.
type ClearResult struct {
	Removed     int
	ResetTarget string
}

// Cleaner removes synthetic commits from a repository.
type Cleaner struct {
	repo History
	log  *logrus.Logger
}

func NewCleaner(repo History, log *logrus.Logger) *Cleaner {
	return &Cleaner{repo: repo, log: log}
}

// Clear finds every removable record and hard-resets the branch to the first
// non-removable record found scanning oldest-first. If no such record exists
// the entire history is discarded. Zero removable records is a successful
// zero-count result, not an error.
//
// The oldest-first scan means a removable record sandwiched between kept
// commits takes the later kept commits down with it; that is the intended
// rollback rule, not a defect.
func (c *Cleaner) Clear(ctx context.Context, dryRun bool) (ClearResult, error) {
	records, err := c.repo.Log(ctx)
	if err != nil {
		return ClearResult{}, err
	}

	removable := FindRemovable(records)
	if len(removable) == 0 {
		return ClearResult{}, nil
	}

	removableSHAs := make(map[string]struct{}, len(removable))
	for _, rec := range removable {
		removableSHAs[rec.SHA] = struct{}{}
	}

	// records are newest-first; walk backwards for the oldest-first view.
	var target string
	for i := len(records) - 1; i >= 0; i-- {
		if _, ok := removableSHAs[records[i].SHA]; !ok {
			target = records[i].SHA
			break
		}
	}

	result := ClearResult{Removed: len(removable), ResetTarget: target}
	if dryRun {
		return result, nil
	}

	if target == "" {
		c.log.Debug("no non-synthetic commits found, clearing entire history")
		if err := c.repo.ClearHistory(ctx); err != nil {
			return ClearResult{}, err
		}
		return result, nil
	}

	c.log.WithField("target", target).Debug("resetting branch")
	if err := c.repo.ResetHard(ctx, target); err != nil {
		return ClearResult{}, err
	}
	return result, nil
}
