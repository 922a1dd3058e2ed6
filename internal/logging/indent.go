package logging

import (
	"bytes"
	"errors"
	"runtime"
	"strconv"
	"sync"
)

// ErrUnbalancedScope reports a scope exit without a matching entry. The
// tracker clamps the depth at zero so subsequent output for the goroutine
// stays aligned.
var ErrUnbalancedScope = errors.New("unbalanced scope exit")

// IndentTracker keeps one nesting counter per goroutine. Only the owning
// goroutine touches its counter; the mutex guards the map itself so that
// first-touch insertion from concurrent goroutines is safe.
type IndentTracker struct {
	mu     sync.Mutex
	depths map[uint64]int
}

// NewIndentTracker constructs an empty tracker.
func NewIndentTracker() *IndentTracker {
	return &IndentTracker{depths: make(map[uint64]int)}
}

// indents is the process-wide tracker shared by scopes and formatters.
var indents = NewIndentTracker()

// Depth returns the goroutine's current nesting depth, zero on first use.
func (t *IndentTracker) Depth(gid uint64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.depths[gid]
}

// Push increments the goroutine's depth and returns the new value.
func (t *IndentTracker) Push(gid uint64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	depth := t.depths[gid] + 1
	t.depths[gid] = depth
	return depth
}

// Pop decrements the goroutine's depth and returns the new value. Popping an
// empty counter clamps at zero and reports ErrUnbalancedScope. The entry is
// released once the depth returns to zero so finished goroutines do not leak
// counters.
func (t *IndentTracker) Pop(gid uint64) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	depth, ok := t.depths[gid]
	if !ok || depth == 0 {
		delete(t.depths, gid)
		return 0, ErrUnbalancedScope
	}
	depth--
	if depth == 0 {
		delete(t.depths, gid)
	} else {
		t.depths[gid] = depth
	}
	return depth, nil
}

var stackPrefix = []byte("goroutine ")

// goroutineID extracts the current goroutine's id from its stack header. Go
// offers no thread-local storage, so the tracker keys its counters on this id
// explicitly.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], stackPrefix)
	if idx := bytes.IndexByte(header, ' '); idx > 0 {
		header = header[:idx]
	}
	id, err := strconv.ParseUint(string(header), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
