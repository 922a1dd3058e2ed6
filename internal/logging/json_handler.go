package logging

import (
	"context"
	"io"
	"log/slog"
)

// JSONOptions configures the structured line-per-record formatter.
type JSONOptions struct {
	// Level is the most verbose level the handler accepts. Nil accepts
	// everything; per-channel gating happens upstream.
	Level *slog.LevelVar
	// ThreadID adds a thread_id field carrying the emitting goroutine's id.
	ThreadID bool
}

// jsonHandler decorates the stdlib JSON handler with the indent depth and
// optional thread id of the emitting goroutine. Handle runs synchronously on
// that goroutine, so reading the tracker here observes the right counter.
type jsonHandler struct {
	inner    slog.Handler
	tracker  *IndentTracker
	threadID bool
}

// NewJSONHandler constructs the structured formatter writing one
// self-contained JSON object per record to w. Field names follow the wire
// format: timestamp, channel, level, message, num_indent, and optionally
// thread_id and log_code. Map-payload entries appear as additional top-level
// fields.
func NewJSONHandler(w io.Writer, opts JSONOptions) slog.Handler {
	inner := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: renameRecordAttr,
	})
	return &jsonHandler{inner: inner, tracker: indents, threadID: opts.ThreadID}
}

func renameRecordAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		attr.Key = "timestamp"
		if attr.Value.Kind() == slog.KindTime {
			attr.Value = slog.StringValue(formatTimestamp(attr.Value.Time()))
		}
	case slog.LevelKey:
		if level, ok := attr.Value.Any().(slog.Level); ok {
			attr.Value = slog.StringValue(LevelName(level))
		}
	case slog.MessageKey:
		attr.Key = FieldMessage
	}
	return attr
}

func (h *jsonHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *jsonHandler) Handle(ctx context.Context, record slog.Record) error {
	gid := goroutineID()
	record = record.Clone()
	record.AddAttrs(slog.Int(FieldNumIndent, h.tracker.Depth(gid)))
	if h.threadID {
		record.AddAttrs(slog.Uint64(FieldThreadID, gid))
	}
	return h.inner.Handle(ctx, record)
}

func (h *jsonHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &jsonHandler{inner: h.inner.WithAttrs(attrs), tracker: h.tracker, threadID: h.threadID}
}

func (h *jsonHandler) WithGroup(name string) slog.Handler {
	return &jsonHandler{inner: h.inner.WithGroup(name), tracker: h.tracker, threadID: h.threadID}
}
