package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// gitDateFormat is the zone-less timestamp git receives for backdated
// commits; git interprets it in the committer's local time.
const gitDateFormat = "2006-01-02 15:04:05"

// AppendActivity appends one log line to the activity file and records a
// commit whose author and committer dates are both backdated to ts.
func (c *Client) AppendActivity(ctx context.Context, ts time.Time) error {
	logPath := filepath.Join(c.repoPath, ActivityLogFile)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ActivityLogFile, err)
	}
	line := fmt.Sprintf("Activity logged at %s\n", ts.Format("2006-01-02T15:04:05"))
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", ActivityLogFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", ActivityLogFile, err)
	}

	if _, err := c.run(ctx, "add", ActivityLogFile); err != nil {
		return err
	}

	date := ts.Format(gitDateFormat)
	env := []string{
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_DATE=" + date,
	}
	_, err = c.runEnv(ctx, env, "commit", "-m", "Activity log update")
	return err
}
