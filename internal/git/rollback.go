package git

import (
	"context"
	"os"
	"path/filepath"
)

// ResetHard discards all history after the given commit.
func (c *Client) ResetHard(ctx context.Context, sha string) error {
	_, err := c.run(ctx, "reset", "--hard", sha)
	return err
}

// ClearHistory discards the entire line of history: it deletes the HEAD ref,
// unstages the activity file and removes it from the working tree. Used when
// every commit on the branch is synthetic.
func (c *Client) ClearHistory(ctx context.Context) error {
	if _, err := c.run(ctx, "update-ref", "-d", "HEAD"); err != nil {
		return err
	}
	if _, err := c.run(ctx, "rm", "--cached", "--ignore-unmatch", ActivityLogFile); err != nil {
		return err
	}
	logPath := filepath.Join(c.repoPath, ActivityLogFile)
	if err := os.Remove(logPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
