package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownLevel reports a level name or ordinal outside the severity scale.
var ErrUnknownLevel = errors.New("unknown log level")

// Severity levels, expressed on the slog scale so that native slog emissions
// sort and filter on the same axis. Higher values are more severe; LevelOff
// sits above every real level and disables a channel entirely.
const (
	LevelDebug3  = slog.Level(-16)
	LevelDebug2  = slog.Level(-12)
	LevelDebug1  = slog.Level(-8)
	LevelDebug   = slog.LevelDebug
	LevelTrace   = slog.Level(-2)
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
	LevelFatal   = slog.Level(12)
	LevelOff     = slog.Level(1 << 10)
)

var levelsByName = map[string]slog.Level{
	"off":     LevelOff,
	"fatal":   LevelFatal,
	"error":   LevelError,
	"warning": LevelWarning,
	"info":    LevelInfo,
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"debug1":  LevelDebug1,
	"debug2":  LevelDebug2,
	"debug3":  LevelDebug3,
}

// levelOrder lists the scale from most to least severe for table rendering.
var levelOrder = []string{
	"off", "fatal", "error", "warning", "info",
	"trace", "debug", "debug1", "debug2", "debug3",
}

// ParseLevel resolves a level name to its ordinal value.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levelsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}

// LevelNames returns the severity scale from most to least severe along with
// each level's ordinal. The returned slices are copies.
func LevelNames() ([]string, []slog.Level) {
	names := make([]string, len(levelOrder))
	ordinals := make([]slog.Level, len(levelOrder))
	copy(names, levelOrder)
	for i, name := range levelOrder {
		ordinals[i] = levelsByName[name]
	}
	return names, ordinals
}

// LevelName renders an ordinal as its full lowercase name. Ordinals that fall
// between named levels bucket to the nearest at-or-below severity so raw
// native levels still render.
func LevelName(level slog.Level) string {
	switch {
	case level >= LevelOff:
		return "off"
	case level >= LevelFatal:
		return "fatal"
	case level >= LevelError:
		return "error"
	case level >= LevelWarning:
		return "warning"
	case level >= LevelInfo:
		return "info"
	case level >= LevelTrace:
		return "trace"
	case level >= LevelDebug:
		return "debug"
	case level >= LevelDebug1:
		return "debug1"
	case level >= LevelDebug2:
		return "debug2"
	default:
		return "debug3"
	}
}

// LevelLabel renders an ordinal as the four-character display form used by the
// pretty encoding.
func LevelLabel(level slog.Level) string {
	switch {
	case level >= LevelFatal:
		return "FATL"
	case level >= LevelError:
		return "ERRR"
	case level >= LevelWarning:
		return "WARN"
	case level >= LevelInfo:
		return "INFO"
	case level >= LevelTrace:
		return "TRCE"
	case level >= LevelDebug:
		return "DBUG"
	case level >= LevelDebug1:
		return "DBG1"
	case level >= LevelDebug2:
		return "DBG2"
	default:
		return "DBG3"
	}
}

// LevelEnabled reports whether a candidate level clears the threshold. A
// channel thresholded at off never emits; off as a candidate clears nothing
// except an off threshold.
func LevelEnabled(candidate, threshold slog.Level) bool {
	if candidate == LevelOff {
		return threshold == LevelOff
	}
	return candidate >= threshold
}
