package activity

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitseed/gitseed/internal/git"
)

// fakeHistory is a scripted History collaborator that records rewrites.
type fakeHistory struct {
	records []git.ChangeRecord // newest-first, like git log
	logErr  error

	resetTo      string
	resetCalls   int
	clearedFully bool
}

func (f *fakeHistory) Log(ctx context.Context) ([]git.ChangeRecord, error) {
	return f.records, f.logErr
}

func (f *fakeHistory) ResetHard(ctx context.Context, sha string) error {
	f.resetCalls++
	f.resetTo = sha
	return nil
}

func (f *fakeHistory) ClearHistory(ctx context.Context) error {
	f.clearedFully = true
	return nil
}

func record(sha string, paths ...string) git.ChangeRecord {
	return git.ChangeRecord{SHA: sha, Paths: paths}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newestFirst reverses an oldest-first list into git log order.
func newestFirst(records ...git.ChangeRecord) []git.ChangeRecord {
	out := make([]git.ChangeRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}

func TestFindRemovable(t *testing.T) {
	records := []git.ChangeRecord{
		record("r5", "main.go"),
		record("r4", "activity.log"),
		record("r3", "main.go", "activity.log"),
		record("r2", "activity.log"),
		record("r1", "README.md"),
	}

	removable := FindRemovable(records)
	require.Len(t, removable, 2)
	assert.Equal(t, "r4", removable[0].SHA, "caller order is preserved")
	assert.Equal(t, "r2", removable[1].SHA)
}

func TestFindRemovableIgnoresEmptyChangeSets(t *testing.T) {
	// merge commits report no paths; they are never removable
	records := []git.ChangeRecord{
		{SHA: "m1", Parents: []string{"a", "b"}},
	}
	assert.Empty(t, FindRemovable(records))
}

func TestClearResetsToFirstNonRemovable(t *testing.T) {
	// Oldest-first: r1 keeps, r2 synthetic, r3 keeps, r4 synthetic, r5 keeps.
	// The oldest-first scan stops at r1, so r3 and r5 are discarded along
	// with the synthetic commits.
	repo := &fakeHistory{records: newestFirst(
		record("r1", "README.md"),
		record("r2", "activity.log"),
		record("r3", "main.go"),
		record("r4", "activity.log"),
		record("r5", "main.go"),
	)}

	result, err := NewCleaner(repo, quietLogger()).Clear(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Removed)
	assert.Equal(t, "r1", result.ResetTarget)
	assert.Equal(t, "r1", repo.resetTo)
	assert.Equal(t, 1, repo.resetCalls)
	assert.False(t, repo.clearedFully)
}

func TestClearDropsEntireHistoryWhenAllSynthetic(t *testing.T) {
	repo := &fakeHistory{records: newestFirst(
		record("r1", "activity.log"),
		record("r2", "activity.log"),
		record("r3", "activity.log"),
	)}

	result, err := NewCleaner(repo, quietLogger()).Clear(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Removed)
	assert.Empty(t, result.ResetTarget)
	assert.True(t, repo.clearedFully)
	assert.Equal(t, 0, repo.resetCalls)
}

func TestClearNothingRemovable(t *testing.T) {
	repo := &fakeHistory{records: newestFirst(
		record("r1", "README.md"),
		record("r2", "main.go"),
	)}

	result, err := NewCleaner(repo, quietLogger()).Clear(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Removed)
	assert.Equal(t, 0, repo.resetCalls)
	assert.False(t, repo.clearedFully)
}

func TestClearDryRunTouchesNothing(t *testing.T) {
	repo := &fakeHistory{records: newestFirst(
		record("r1", "README.md"),
		record("r2", "activity.log"),
	)}

	result, err := NewCleaner(repo, quietLogger()).Clear(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, "r1", result.ResetTarget)
	assert.Equal(t, 0, repo.resetCalls)
	assert.False(t, repo.clearedFully)
}

func TestClearPropagatesHistoryError(t *testing.T) {
	boom := errors.New("git log failed")
	repo := &fakeHistory{logErr: boom}

	_, err := NewCleaner(repo, quietLogger()).Clear(context.Background(), false)
	assert.ErrorIs(t, err, boom)
}

func TestTouchesOnlyIsExact(t *testing.T) {
	assert.True(t, record("r", "activity.log").TouchesOnly("activity.log"))
	assert.False(t, record("r", "activity.log", "main.go").TouchesOnly("activity.log"))
	assert.False(t, record("r", strings.ToUpper("activity.log")).TouchesOnly("activity.log"))
	assert.False(t, record("r").TouchesOnly("activity.log"))
}
