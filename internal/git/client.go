package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ActivityLogFile is the single tracked file every synthetic commit touches.
const ActivityLogFile = "activity.log"

// Client runs git commands against one repository working tree.
type Client struct {
	repoPath string
}

// NewClient verifies repoPath is inside a git working tree and returns a
// client bound to it.
func NewClient(ctx context.Context, repoPath string) (*Client, error) {
	c := &Client{repoPath: repoPath}
	if _, err := c.run(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		return nil, fmt.Errorf("%s is not a git repository: %w", repoPath, err)
	}
	return c, nil
}

// RepoPath returns the working tree the client is bound to.
func (c *Client) RepoPath() string { return c.repoPath }

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	return c.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// run executes git with the given arguments in the repository directory and
// returns trimmed stdout. Exec failures carry stderr in the wrapped error.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	return c.runEnv(ctx, nil, args...)
}

// runEnv is run with extra environment variables appended.
func (c *Client) runEnv(ctx context.Context, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.repoPath
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s failed: %w (stderr: %s)",
				args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return strings.TrimSpace(string(output)), nil
}
