package logging

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidFilterSpec reports a malformed per-channel filter specification.
var ErrInvalidFilterSpec = errors.New("invalid filter spec")

// FilterTable maps channel names to overriding minimum levels. Channels
// absent from the table fall back to the runtime default level.
type FilterTable map[string]slog.Level

// ParseFilterSpec builds a filter table from a specification of the form
// "NAME:level[,NAME:level...]". Whitespace around tokens is insignificant and
// an empty specification yields an empty table. When the same channel appears
// more than once the last entry wins.
func ParseFilterSpec(spec string) (FilterTable, error) {
	table := FilterTable{}
	if strings.TrimSpace(spec) == "" {
		return table, nil
	}
	for _, entry := range strings.Split(spec, ",") {
		name, levelName, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: entry %q is not NAME:level", ErrInvalidFilterSpec, strings.TrimSpace(entry))
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %q has an empty channel name", ErrInvalidFilterSpec, strings.TrimSpace(entry))
		}
		level, err := ParseLevel(levelName)
		if err != nil {
			return nil, fmt.Errorf("%w: channel %q: %v", ErrInvalidFilterSpec, name, err)
		}
		table[name] = level
	}
	return table, nil
}

// Resolve returns the channel's override when present, else the default.
func (t FilterTable) Resolve(channel string, defaultLevel slog.Level) slog.Level {
	if level, ok := t[channel]; ok {
		return level
	}
	return defaultLevel
}
