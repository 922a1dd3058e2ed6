package logging

import (
	"strings"
	"sync"
)

// Capture is a bounded in-memory sink for rendered log lines. Tests and the
// demo CLI hand it to Settings.Output (or tee it next to a live writer) and
// read the lines back instead of scraping a process stream. Once capacity is
// reached the oldest lines roll off.
type Capture struct {
	mu       sync.Mutex
	capacity int
	lines    []string
	partial  strings.Builder
}

// NewCapture constructs a sink retaining at most capacity lines. A
// non-positive capacity falls back to 1024.
func NewCapture(capacity int) *Capture {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Capture{capacity: capacity}
}

// Write splits the rendered output into lines. Partial lines are buffered
// until their terminating newline arrives.
func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rest := string(p)
	for {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			c.partial.WriteString(rest)
			break
		}
		c.partial.WriteString(rest[:idx])
		c.append(c.partial.String())
		c.partial.Reset()
		rest = rest[idx+1:]
	}
	return len(p), nil
}

func (c *Capture) append(line string) {
	c.lines = append(c.lines, line)
	if overflow := len(c.lines) - c.capacity; overflow > 0 {
		c.lines = append(c.lines[:0], c.lines[overflow:]...)
	}
}

// Lines returns a copy of the captured lines in emission order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of complete captured lines.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Reset discards all captured lines and any buffered partial line.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.partial.Reset()
}
