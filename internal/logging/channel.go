package logging

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"
)

// logCodePattern matches the short classification token accepted as a leading
// positional argument, e.g. <TST93344011I>: alphanumeric payload ending in a
// letter, wrapped in angle brackets.
var logCodePattern = regexp.MustCompile(`^<[0-9A-Za-z]*[A-Za-z]>$`)

// Channel is the per-name logging facade. It holds no mutable severity state;
// the effective minimum level is resolved from the runtime's filter table on
// every call, so reconfiguration reaches cached channels immediately.
type Channel struct {
	name string
	rt   *Runtime
}

// Name returns the channel's case-sensitive name.
func (c *Channel) Name() string { return c.name }

// IsEnabled reports whether the channel would emit at the given level. It is
// the short-circuit used before any formatting work.
func (c *Channel) IsEnabled(level slog.Level) bool {
	return LevelEnabled(level, c.rt.resolve(c.name))
}

// IsEnabledName is IsEnabled for callers holding a level name rather than an
// ordinal. Unrecognized names surface ErrUnknownLevel.
func (c *Channel) IsEnabledName(name string) (bool, error) {
	level, err := ParseLevel(name)
	if err != nil {
		return false, err
	}
	return c.IsEnabled(level), nil
}

// Log emits a plain message at the given level.
func (c *Channel) Log(level slog.Level, msg string) {
	if !c.IsEnabled(level) {
		return
	}
	c.emit(level, "", msg, nil)
}

// Logf emits a formatted message at the given level. When the format argument
// is a log-code token and a format string follows it, the token is consumed
// as the record's log code and the remaining arguments are formatted as the
// message.
func (c *Channel) Logf(level slog.Level, format string, args ...any) {
	if !c.IsEnabled(level) {
		return
	}
	var code string
	if len(args) > 0 && logCodePattern.MatchString(format) {
		if next, ok := args[0].(string); ok {
			code = format
			format = next
			args = args[1:]
		}
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	c.emit(level, code, msg, nil)
}

// LogFields emits a structured payload at the given level. A log_code entry
// and a scalar message entry are pulled out into their dedicated record
// fields; the remaining entries merge into the top level of the record.
func (c *Channel) LogFields(level slog.Level, fields Fields) {
	if !c.IsEnabled(level) {
		return
	}
	var code, msg string
	rest := make(Fields, len(fields))
	for key, value := range fields {
		switch key {
		case FieldLogCode:
			if s, ok := value.(string); ok {
				code = s
				continue
			}
		case FieldMessage:
			// The message entry never stays in the merged fields: the record
			// always carries a message key, so leaving it behind would emit
			// the key twice. Non-string scalars are rendered as text.
			if s, ok := value.(string); ok {
				msg = s
			} else {
				msg = fmt.Sprint(value)
			}
			continue
		}
		rest[key] = value
	}
	c.emit(level, code, msg, rest)
}

func (c *Channel) emit(level slog.Level, code, msg string, fields Fields) {
	handler := c.rt.currentHandler()
	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(slog.String(FieldChannel, c.name))
	if code != "" {
		record.AddAttrs(slog.String(FieldLogCode, code))
	}
	record.AddAttrs(fields.attrs()...)
	_ = handler.Handle(context.Background(), record)
}

// Fatal logs a plain message at fatal severity.
func (c *Channel) Fatal(msg string) { c.Log(LevelFatal, msg) }

// Fatalf logs a formatted message at fatal severity.
func (c *Channel) Fatalf(format string, args ...any) { c.Logf(LevelFatal, format, args...) }

// FatalFields logs a structured payload at fatal severity.
func (c *Channel) FatalFields(fields Fields) { c.LogFields(LevelFatal, fields) }

// Error logs a plain message at error severity.
func (c *Channel) Error(msg string) { c.Log(LevelError, msg) }

// Errorf logs a formatted message at error severity.
func (c *Channel) Errorf(format string, args ...any) { c.Logf(LevelError, format, args...) }

// ErrorFields logs a structured payload at error severity.
func (c *Channel) ErrorFields(fields Fields) { c.LogFields(LevelError, fields) }

// Warning logs a plain message at warning severity.
func (c *Channel) Warning(msg string) { c.Log(LevelWarning, msg) }

// Warningf logs a formatted message at warning severity.
func (c *Channel) Warningf(format string, args ...any) { c.Logf(LevelWarning, format, args...) }

// WarningFields logs a structured payload at warning severity.
func (c *Channel) WarningFields(fields Fields) { c.LogFields(LevelWarning, fields) }

// Info logs a plain message at info severity.
func (c *Channel) Info(msg string) { c.Log(LevelInfo, msg) }

// Infof logs a formatted message at info severity.
func (c *Channel) Infof(format string, args ...any) { c.Logf(LevelInfo, format, args...) }

// InfoFields logs a structured payload at info severity.
func (c *Channel) InfoFields(fields Fields) { c.LogFields(LevelInfo, fields) }

// Trace logs a plain message at trace severity.
func (c *Channel) Trace(msg string) { c.Log(LevelTrace, msg) }

// Tracef logs a formatted message at trace severity.
func (c *Channel) Tracef(format string, args ...any) { c.Logf(LevelTrace, format, args...) }

// TraceFields logs a structured payload at trace severity.
func (c *Channel) TraceFields(fields Fields) { c.LogFields(LevelTrace, fields) }

// Debug logs a plain message at debug severity.
func (c *Channel) Debug(msg string) { c.Log(LevelDebug, msg) }

// Debugf logs a formatted message at debug severity.
func (c *Channel) Debugf(format string, args ...any) { c.Logf(LevelDebug, format, args...) }

// DebugFields logs a structured payload at debug severity.
func (c *Channel) DebugFields(fields Fields) { c.LogFields(LevelDebug, fields) }

// Debug1 logs a plain message at debug1 severity.
func (c *Channel) Debug1(msg string) { c.Log(LevelDebug1, msg) }

// Debug1f logs a formatted message at debug1 severity.
func (c *Channel) Debug1f(format string, args ...any) { c.Logf(LevelDebug1, format, args...) }

// Debug1Fields logs a structured payload at debug1 severity.
func (c *Channel) Debug1Fields(fields Fields) { c.LogFields(LevelDebug1, fields) }

// Debug2 logs a plain message at debug2 severity.
func (c *Channel) Debug2(msg string) { c.Log(LevelDebug2, msg) }

// Debug2f logs a formatted message at debug2 severity.
func (c *Channel) Debug2f(format string, args ...any) { c.Logf(LevelDebug2, format, args...) }

// Debug2Fields logs a structured payload at debug2 severity.
func (c *Channel) Debug2Fields(fields Fields) { c.LogFields(LevelDebug2, fields) }

// Debug3 logs a plain message at debug3 severity.
func (c *Channel) Debug3(msg string) { c.Log(LevelDebug3, msg) }

// Debug3f logs a formatted message at debug3 severity.
func (c *Channel) Debug3f(format string, args ...any) { c.Logf(LevelDebug3, format, args...) }

// Debug3Fields logs a structured payload at debug3 severity.
func (c *Channel) Debug3Fields(fields Fields) { c.LogFields(LevelDebug3, fields) }
