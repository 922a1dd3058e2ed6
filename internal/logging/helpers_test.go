package logging

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
)

// newJSONRuntime builds a runtime emitting JSON records into a buffer.
func newJSONRuntime(t *testing.T, s Settings) (*Runtime, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s.Format = "json"
	s.Output = &buf
	rt := NewRuntime()
	if err := rt.Configure(s); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	return rt, &buf
}

// newPrettyRuntime builds a runtime emitting pretty lines into a buffer.
func newPrettyRuntime(t *testing.T, s Settings) (*Runtime, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s.Format = "pretty"
	s.Output = &buf
	rt := NewRuntime()
	if err := rt.Configure(s); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	return rt, &buf
}

// decodeRecords parses one JSON object per non-empty line.
func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", line, err)
		}
		records = append(records, record)
	}
	return records
}

// prettyLinePattern mirrors the pretty encoding grammar:
// timestamp [channel:LVL(:threadId)?] (<logcode>)? indent message
var prettyLinePattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}) \[([^:\]]*):([^:\]]*)(?::(\d+))?\]( <[^\s>]*>)? ((?:  )*)(\S.*)?$`)

type prettyLine struct {
	timestamp string
	channel   string
	level     string
	threadID  string
	logCode   string
	numIndent int
	message   string
}

func parsePrettyLine(t *testing.T, line string) prettyLine {
	t.Helper()
	match := prettyLinePattern.FindStringSubmatch(line)
	if match == nil {
		t.Fatalf("line %q does not match the pretty grammar", line)
	}
	return prettyLine{
		timestamp: match[1],
		channel:   strings.TrimSpace(match[2]),
		level:     match[3],
		threadID:  match[4],
		logCode:   strings.TrimSpace(match[5]),
		numIndent: len(match[6]) / len(indentUnit),
		message:   match[7],
	}
}

func captureLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
