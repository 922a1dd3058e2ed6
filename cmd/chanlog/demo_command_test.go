package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestDemoCaptureEmitsJSONWorkload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t,
		"demo", "--capture",
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--format", "json",
		"--level", "debug",
		"--workers", "1",
		"--iterations", "1",
		"--thread-id",
	)
	if err != nil {
		t.Fatalf("demo command: %v", err)
	}

	var records []map[string]any
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", line, err)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		t.Fatal("demo produced no records")
	}

	first := records[0]
	if first["channel"] != "MAIN" || first["log_code"] != "<DEM80349002I>" {
		t.Fatalf("unexpected first record: %v", first)
	}

	var sawBegin, sawEnd, sawCorrelation bool
	for _, record := range records {
		msg, _ := record["message"].(string)
		if strings.HasPrefix(msg, "BEGIN: worker") {
			sawBegin = true
		}
		if strings.HasPrefix(msg, "END: worker") {
			sawEnd = true
		}
		if _, ok := record["correlation_id"]; ok {
			sawCorrelation = true
		}
		if _, ok := record["thread_id"]; !ok {
			t.Fatalf("record missing thread_id: %v", record)
		}
	}
	if !sawBegin || !sawEnd {
		t.Fatalf("scope markers missing (begin=%v end=%v)", sawBegin, sawEnd)
	}
	if !sawCorrelation {
		t.Fatal("no record carried a correlation id")
	}

	last := records[len(records)-1]
	if last["message"] != "demo finished" {
		t.Fatalf("unexpected last record: %v", last)
	}
}

func TestDemoRejectsBadLevelFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := runCLI(t, "demo", "--capture", "--level", "loud")
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}
