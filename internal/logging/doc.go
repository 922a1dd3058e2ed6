// Package logging is a channel-oriented structured logging layer built on
// log/slog.
//
// It extends the five-level slog scale with a ten-step severity ladder
// (off through debug3), resolves per-channel minimum levels from a single
// filter specification, and renders every record through one of two
// encodings: a human-readable pretty line or a self-contained JSON object.
// Both encodings carry the same metadata, including an optional short log
// code extracted from the message and the emitting goroutine's scope
// nesting depth.
//
// Scopes make logically nested operations appear nested in the stream:
// BeginScope/Close frame a unit of work with BEGIN/END markers and raise
// the goroutine's indent depth in between, while BeginTimer/Close report
// the elapsed time instead. Block and function-wrapping forms guarantee the
// exit transition on every path, including panics. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
