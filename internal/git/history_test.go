package git

import (
	"strings"
	"testing"
)

func sha(c byte) string { return strings.Repeat(string(c), 40) }

func TestParseLog(t *testing.T) {
	output := sha('a') + "|" + sha('b') + "|2024-03-05T11:42:09+00:00\n" +
		"activity.log\n" +
		"\n" +
		sha('b') + "|" + sha('c') + "|2024-03-04T09:00:00+00:00\n" +
		"main.go\n" +
		"go.mod\n" +
		"\n" +
		sha('c') + "||2024-03-01T08:30:00+00:00\n" +
		"README.md\n"

	records := parseLog(output)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	if records[0].SHA != sha('a') {
		t.Errorf("record 0 SHA = %s", records[0].SHA)
	}
	if len(records[0].Parents) != 1 || records[0].Parents[0] != sha('b') {
		t.Errorf("record 0 parents = %v", records[0].Parents)
	}
	if len(records[0].Paths) != 1 || records[0].Paths[0] != "activity.log" {
		t.Errorf("record 0 paths = %v", records[0].Paths)
	}
	if records[0].Date.IsZero() {
		t.Error("record 0 date not parsed")
	}

	if len(records[1].Paths) != 2 {
		t.Errorf("record 1 paths = %v", records[1].Paths)
	}

	// root commit: no parents, introduced files listed
	if len(records[2].Parents) != 0 {
		t.Errorf("root record parents = %v", records[2].Parents)
	}
	if len(records[2].Paths) != 1 || records[2].Paths[0] != "README.md" {
		t.Errorf("root record paths = %v", records[2].Paths)
	}
}

func TestParseLogMergeCommit(t *testing.T) {
	// merges list two parents and no paths
	output := sha('a') + "|" + sha('b') + " " + sha('c') + "|2024-03-05T11:42:09+00:00\n"

	records := parseLog(output)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if len(records[0].Parents) != 2 {
		t.Errorf("expected 2 parents, got %v", records[0].Parents)
	}
	if len(records[0].Paths) != 0 {
		t.Errorf("expected no paths, got %v", records[0].Paths)
	}
}

func TestParseLogEmpty(t *testing.T) {
	if records := parseLog(""); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestTouchesOnly(t *testing.T) {
	rec := ChangeRecord{Paths: []string{ActivityLogFile}}
	if !rec.TouchesOnly(ActivityLogFile) {
		t.Error("single-path record should match")
	}

	rec.Paths = append(rec.Paths, "main.go")
	if rec.TouchesOnly(ActivityLogFile) {
		t.Error("multi-path record should not match")
	}
}
