package logging

import (
	"fmt"
	"testing"
)

func TestCaptureSplitsPartialWrites(t *testing.T) {
	c := NewCapture(16)
	c.Write([]byte("first li"))
	if c.Len() != 0 {
		t.Fatalf("partial write produced %d lines", c.Len())
	}
	c.Write([]byte("ne\nsecond line\nthird"))
	c.Write([]byte(" line\n"))

	want := []string{"first line", "second line", "third line"}
	got := c.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCaptureRollsOffOldestLines(t *testing.T) {
	c := NewCapture(3)
	for i := 0; i < 5; i++ {
		fmt.Fprintf(c, "line %d\n", i)
	}
	got := c.Lines()
	want := []string{"line 2", "line 3", "line 4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCaptureReset(t *testing.T) {
	c := NewCapture(8)
	c.Write([]byte("done\nhalf"))
	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("reset left %d lines", c.Len())
	}
	c.Write([]byte("fresh\n"))
	got := c.Lines()
	if len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("buffered partial survived reset: %q", got)
	}
}

func TestCaptureAsRuntimeOutput(t *testing.T) {
	c := NewCapture(8)
	rt := NewRuntime()
	if err := rt.Configure(Settings{DefaultLevel: "info", Output: c}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	rt.UseChannel("MAIN").Info("This is a test")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 captured line, got %d: %q", len(lines), lines)
	}
	line := parsePrettyLine(t, lines[0])
	if line.channel != "MAIN" || line.message != "This is a test" {
		t.Errorf("captured line = %q", lines[0])
	}
}
