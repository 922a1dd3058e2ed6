package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// Standardized record field keys shared by both encodings.
const (
	// FieldChannel carries the emitting channel's name.
	FieldChannel = "channel"
	// FieldLogCode carries the short classification token extracted from a
	// message, for example <TST93344011I>.
	FieldLogCode = "log_code"
	// FieldThreadID carries the emitting goroutine's id when thread-id
	// emission is enabled.
	FieldThreadID = "thread_id"
	// FieldNumIndent carries the goroutine's scope nesting depth.
	FieldNumIndent = "num_indent"
	// FieldMessage is the structured-encoding key for a scalar message.
	FieldMessage = "message"
)

// indentUnit is the fixed text repeated once per nesting level.
const indentUnit = "  "

// defaultChannelWidth pads or truncates channel names in pretty headers.
const defaultChannelWidth = 5

// PrettyOptions configures the human-readable line formatter.
type PrettyOptions struct {
	// Level is the most verbose level the handler accepts. Nil accepts
	// everything; per-channel gating happens upstream.
	Level *slog.LevelVar
	// ThreadID appends the emitting goroutine's id to the line header.
	ThreadID bool
	// ChannelWidth pads or truncates the channel name. Zero uses the default.
	ChannelWidth int
}

// prettyHandler renders one human-readable line per record:
//
//	<timestamp> [<channel>:<LVL>(:<threadId>)?]( <logcode>)? <indent><message>
type prettyHandler struct {
	mu      sync.Mutex
	writer  io.Writer
	level   *slog.LevelVar
	tracker *IndentTracker
	opts    PrettyOptions
	attrs   []slog.Attr
	groups  []string
}

// NewPrettyHandler constructs the pretty line formatter writing to w.
func NewPrettyHandler(w io.Writer, opts PrettyOptions) slog.Handler {
	if opts.ChannelWidth <= 0 {
		opts.ChannelWidth = defaultChannelWidth
	}
	return &prettyHandler{writer: w, level: opts.Level, tracker: indents, opts: opts}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, record slog.Record) error {
	if h.level != nil && record.Level < h.level.Level() {
		return nil
	}

	kvs := make([]kv, 0, record.NumAttrs()+len(h.attrs))
	flattenAttrs(&kvs, h.groups, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		flattenAttr(&kvs, h.groups, attr)
		return true
	})

	var channel, logCode string
	filtered := kvs[:0]
	for _, kv := range kvs {
		switch kv.key {
		case FieldChannel:
			if channel == "" {
				channel = attrString(kv.value)
			}
		case FieldLogCode:
			if logCode == "" {
				logCode = attrString(kv.value)
			}
		default:
			filtered = append(filtered, kv)
		}
	}
	kvs = filtered

	depth := h.tracker.Depth(goroutineID())

	var buf bytes.Buffer
	buf.Grow(128 + len(kvs)*24)

	buf.WriteString(formatTimestamp(record.Time))
	buf.WriteString(" [")
	buf.WriteString(padChannel(channel, h.opts.ChannelWidth))
	buf.WriteByte(':')
	buf.WriteString(LevelLabel(record.Level))
	if h.opts.ThreadID {
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(goroutineID(), 10))
	}
	buf.WriteByte(']')

	if logCode != "" {
		buf.WriteByte(' ')
		buf.WriteString(logCode)
	}

	buf.WriteByte(' ')
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}

	message := record.Message
	buf.WriteString(message)
	for i, kv := range kvs {
		if kv.key == "" {
			continue
		}
		if i > 0 || message != "" {
			buf.WriteByte(' ')
		}
		buf.WriteString(kv.key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(kv.value))
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *prettyHandler) clone() *prettyHandler {
	clone := &prettyHandler{
		writer:  h.writer,
		level:   h.level,
		tracker: h.tracker,
		opts:    h.opts,
	}
	if len(h.attrs) > 0 {
		clone.attrs = make([]slog.Attr, len(h.attrs))
		copy(clone.attrs, h.attrs)
	}
	if len(h.groups) > 0 {
		clone.groups = make([]string, len(h.groups))
		copy(clone.groups, h.groups)
	}
	return clone
}

func padChannel(name string, width int) string {
	runes := []rune(name)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return name + strings.Repeat(" ", width-len(runes))
}
