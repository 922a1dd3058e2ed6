package logging

import (
	"regexp"
	"strings"
	"testing"
)

func TestJSONRecordScalarMessage(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info"})
	rt.UseChannel("MAIN").Info("This is a test")

	records := decodeRecords(t, buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record["channel"] != "MAIN" {
		t.Errorf("channel = %v", record["channel"])
	}
	if record["level"] != "info" {
		t.Errorf("level = %v", record["level"])
	}
	if record["message"] != "This is a test" {
		t.Errorf("message = %v", record["message"])
	}
	if record["num_indent"] != float64(0) {
		t.Errorf("num_indent = %v, want 0", record["num_indent"])
	}
	ts, _ := record["timestamp"].(string)
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}$`).MatchString(ts) {
		t.Errorf("timestamp %q not in UTC microsecond layout", ts)
	}
	if _, ok := record["thread_id"]; ok {
		t.Error("thread_id should be absent when not enabled")
	}
	if _, ok := record["log_code"]; ok {
		t.Error("log_code should be absent when not extracted")
	}
}

func TestJSONRecordMergesPayloadTopLevel(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info"})
	rt.UseChannel("MAIN").InfoFields(Fields{"test_msg": 1})

	records := decodeRecords(t, buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record["test_msg"] != float64(1) {
		t.Errorf("test_msg = %v, want 1 at top level", record["test_msg"])
	}
	for key, value := range record {
		if _, nested := value.(map[string]any); nested {
			t.Errorf("key %q holds a nested object; payload entries must merge", key)
		}
	}
}

func TestJSONRecordEmptyMessageComplete(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info", ThreadID: true})
	rt.UseChannel("MAIN").Info("")

	records := decodeRecords(t, buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	for _, key := range []string{"timestamp", "channel", "level", "message", "num_indent", "thread_id"} {
		if _, ok := record[key]; !ok {
			t.Errorf("record missing %q", key)
		}
	}
	if record["message"] != "" {
		t.Errorf("message = %v, want empty string", record["message"])
	}
}

func TestJSONRecordThreadID(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info", ThreadID: true})
	rt.UseChannel("MAIN").Info("with thread id")

	record := decodeRecords(t, buf)[0]
	id, ok := record["thread_id"].(float64)
	if !ok {
		t.Fatalf("thread_id = %v, want a number", record["thread_id"])
	}
	if uint64(id) != goroutineID() {
		t.Errorf("thread_id = %d, want emitting goroutine %d", uint64(id), goroutineID())
	}
}

func TestJSONRecordLogCode(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info", ThreadID: true})
	rt.UseChannel("MAIN").Infof("<TST93344011I>", "This is a test")

	record := decodeRecords(t, buf)[0]
	if record["log_code"] != "<TST93344011I>" {
		t.Errorf("log_code = %v", record["log_code"])
	}
	if record["message"] != "This is a test" {
		t.Errorf("message = %v", record["message"])
	}
}

func TestJSONRecordLevelNames(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "debug3"})
	ch := rt.UseChannel("MAIN")
	ch.Fatal("f")
	ch.Error("e")
	ch.Warning("w")
	ch.Trace("t")
	ch.Debug2("d2")

	records := decodeRecords(t, buf)
	want := []string{"fatal", "error", "warning", "trace", "debug2"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, record := range records {
		if record["level"] != want[i] {
			t.Errorf("record %d level = %v, want %s", i, record["level"], want[i])
		}
	}
}

func TestJSONRecordNonStringMessageScalar(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info"})
	rt.UseChannel("MAIN").InfoFields(Fields{"message": 42, "extra": "kept"})

	raw := buf.String()
	if got := strings.Count(raw, `"message"`); got != 1 {
		t.Fatalf("record carries %d message keys, want exactly 1: %s", got, raw)
	}
	record := decodeRecords(t, buf)[0]
	if record["message"] != "42" {
		t.Errorf("message = %v, want the scalar rendered as text", record["message"])
	}
	if record["extra"] != "kept" {
		t.Errorf("extra = %v, want remaining payload entries merged", record["extra"])
	}
}

func TestJSONRecordUnrenderablePayloadDegrades(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info"})
	// A channel value has no JSON encoding; the record must still be emitted
	// as valid JSON rather than panicking or erroring out.
	rt.UseChannel("MAIN").InfoFields(Fields{"bad": make(chan int), "message": "still logged"})

	records := decodeRecords(t, buf)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["message"] != "still logged" {
		t.Errorf("message = %v", records[0]["message"])
	}
}
