package logging

import (
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// LogFunc is the emission target a scope logs through. Any channel's
// format-style method (Infof, Debugf, ...) satisfies it, so the caller picks
// the channel and severity for the scope's own messages.
type LogFunc func(format string, args ...any)

// Markers prefixed to the begin and end messages of marker-policy scopes.
// Marker lines render at the pre-increment depth on entry and the
// post-decrement depth on exit, so the scope's own messages frame the
// indented body.
const (
	ScopeStartPrefix = "BEGIN: "
	ScopeEndPrefix   = "END: "
)

type scopePolicy uint8

const (
	markerPolicy scopePolicy = iota
	timerPolicy
)

type scopeState uint32

const (
	scopeActive scopeState = iota
	scopeClosed
)

// Scope tracks one nested unit of work. The explicit handle, the block forms,
// and the function-wrapping forms all drive this one type, so indent
// bookkeeping cannot diverge between them. Close is idempotent.
type Scope struct {
	log     LogFunc
	label   string
	policy  scopePolicy
	tracker *IndentTracker
	gid     uint64
	start   time.Time
	state   atomic.Uint32
}

// BeginScope opens a marker-policy scope: it emits the begin marker, then
// raises the calling goroutine's indent depth until Close.
func BeginScope(log LogFunc, label string) *Scope {
	return newScope(indents, log, label, markerPolicy)
}

// BeginTimer opens a timer-policy scope: it raises the indent depth and
// starts a monotonic clock. Close emits the label with the elapsed time
// appended as H:MM:SS.ffffff.
func BeginTimer(log LogFunc, label string) *Scope {
	return newScope(indents, log, label, timerPolicy)
}

func newScope(tracker *IndentTracker, log LogFunc, label string, policy scopePolicy) *Scope {
	s := &Scope{
		log:     log,
		label:   label,
		policy:  policy,
		tracker: tracker,
		gid:     goroutineID(),
	}
	switch policy {
	case markerPolicy:
		s.log(ScopeStartPrefix + label)
		tracker.Push(s.gid)
	case timerPolicy:
		tracker.Push(s.gid)
		s.start = time.Now()
	}
	return s
}

// Close ends the scope: it lowers the indent depth recorded at entry and
// emits the end marker or elapsed-time message. Calling Close again is a
// no-op, so double-cleanup paths are harmless.
func (s *Scope) Close() {
	if s == nil || !s.state.CompareAndSwap(uint32(scopeActive), uint32(scopeClosed)) {
		return
	}
	elapsed := time.Since(s.start)
	// Clamp-and-continue on unbalanced pops; the log stream must stay usable
	// even when manual open/close calls are mismatched.
	_, _ = s.tracker.Pop(s.gid)
	switch s.policy {
	case markerPolicy:
		s.log(ScopeEndPrefix + s.label)
	case timerPolicy:
		s.log(s.label + formatElapsed(elapsed))
	}
}

// Scoped runs fn inside a marker-policy scope. The end marker fires on every
// exit path, including panics.
func Scoped(log LogFunc, label string, fn func()) {
	s := BeginScope(log, label)
	defer s.Close()
	fn()
}

// ScopedErr is Scoped for blocks that return an error.
func ScopedErr(log LogFunc, label string, fn func() error) error {
	s := BeginScope(log, label)
	defer s.Close()
	return fn()
}

// Timed runs fn inside a timer-policy scope and logs the elapsed time when
// the block finishes, even on panic.
func Timed(log LogFunc, label string, fn func()) {
	s := BeginTimer(log, label)
	defer s.Close()
	fn()
}

// TimedErr is Timed for blocks that return an error.
func TimedErr(log LogFunc, label string, fn func() error) error {
	s := BeginTimer(log, label)
	defer s.Close()
	return fn()
}

// ScopedFunc wraps fn so each invocation runs inside a marker-policy scope.
// An empty label defaults to the wrapped function's name.
func ScopedFunc(log LogFunc, label string, fn func()) func() {
	label = scopeLabel(label, fn)
	return func() { Scoped(log, label, fn) }
}

// TimedFunc wraps fn so each invocation runs inside a timer-policy scope.
// An empty label defaults to the wrapped function's name.
func TimedFunc(log LogFunc, label string, fn func()) func() {
	label = scopeLabel(label, fn)
	return func() { Timed(log, label, fn) }
}

func scopeLabel(label string, fn func()) string {
	if label != "" {
		return label
	}
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
