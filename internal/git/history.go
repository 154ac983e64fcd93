package git

import (
	"bufio"
	"context"
	"strings"
	"time"
)

// ChangeRecord is one commit on the current line of history, with the set of
// paths it changed relative to its first parent (or introduced, for the root
// commit).
type ChangeRecord struct {
	SHA     string
	Parents []string
	Date    time.Time
	Paths   []string
}

// TouchesOnly reports whether the record changed exactly one path, the given
// one.
func (r ChangeRecord) TouchesOnly(path string) bool {
	return len(r.Paths) == 1 && r.Paths[0] == path
}

// Log returns every commit reachable from HEAD, newest first. An unborn
// branch (no commits yet) yields an empty history rather than an error.
func (c *Client) Log(ctx context.Context) ([]ChangeRecord, error) {
	if _, err := c.run(ctx, "rev-parse", "--verify", "HEAD"); err != nil {
		return nil, nil
	}

	output, err := c.run(ctx, "log",
		"--name-only",
		"--pretty=format:%H|%P|%ad",
		"--date=iso-strict")
	if err != nil {
		return nil, err
	}
	return parseLog(output), nil
}

// parseLog parses git log --name-only output. Header lines carry
// SHA|parents|date; following non-empty lines are changed paths; a blank
// line closes the commit.
func parseLog(output string) []ChangeRecord {
	var records []ChangeRecord
	var current *ChangeRecord

	flush := func() {
		if current != nil {
			records = append(records, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			flush()
			continue
		}

		if parts := strings.SplitN(line, "|", 3); len(parts) == 3 && len(parts[0]) == 40 && !strings.Contains(parts[0], "/") {
			flush()
			rec := ChangeRecord{SHA: parts[0]}
			if parts[1] != "" {
				rec.Parents = strings.Fields(parts[1])
			}
			if ts, err := time.Parse(time.RFC3339, parts[2]); err == nil {
				rec.Date = ts
			}
			current = &rec
			continue
		}

		if current != nil {
			current.Paths = append(current.Paths, line)
		}
	}
	flush()

	return records
}
