package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Settings describes runtime construction parameters.
type Settings struct {
	// DefaultLevel is the minimum level for channels without a filter
	// override. Empty means info.
	DefaultLevel string
	// Filters is a per-channel override specification of the form
	// "NAME:level[,NAME:level...]".
	Filters string
	// Format selects the encoding: "pretty" (default) or "json".
	Format string
	// ThreadID attaches the emitting goroutine's id to every record.
	ThreadID bool
	// ChannelWidth pads or truncates channel names in pretty headers.
	ChannelWidth int
	// Output receives rendered records. Nil means stderr.
	Output io.Writer
	// Handler supplies a caller-built formatter, overriding Format and
	// Output.
	Handler slog.Handler
	// ExtraHandlers receive every record alongside the primary formatter.
	ExtraHandlers []slog.Handler
}

// Runtime owns the configuration shared by its channels: the default level,
// the filter table, and the active formatter. Channels are cached per name
// and consult the runtime on every call.
type Runtime struct {
	mu           sync.RWMutex
	defaultLevel slog.Level
	filters      FilterTable
	handler      slog.Handler
	handlerLevel *slog.LevelVar
	channels     map[string]*Channel
}

// NewRuntime constructs a runtime with the default settings: info level, no
// filters, pretty encoding to stderr.
func NewRuntime() *Runtime {
	r := &Runtime{
		channels:     make(map[string]*Channel),
		handlerLevel: new(slog.LevelVar),
	}
	r.defaultLevel = LevelInfo
	r.filters = FilterTable{}
	r.handlerLevel.Set(LevelInfo)
	r.handler = NewPrettyHandler(os.Stderr, PrettyOptions{Level: r.handlerLevel})
	return r
}

// Configure replaces the runtime's settings. Cached channels pick up the new
// configuration on their next call.
func (r *Runtime) Configure(s Settings) error {
	defaultLevel := LevelInfo
	if s.DefaultLevel != "" {
		level, err := ParseLevel(s.DefaultLevel)
		if err != nil {
			return err
		}
		defaultLevel = level
	}

	filters, err := ParseFilterSpec(s.Filters)
	if err != nil {
		return err
	}

	// The formatter accepts the most verbose level any channel can reach;
	// per-channel gating happens in Channel.IsEnabled.
	handlerLevel := new(slog.LevelVar)
	handlerLevel.Set(mostVerbose(defaultLevel, filters))

	handler := s.Handler
	if handler == nil {
		output := s.Output
		if output == nil {
			output = os.Stderr
		}
		format := strings.ToLower(strings.TrimSpace(s.Format))
		switch format {
		case "", "pretty":
			handler = NewPrettyHandler(output, PrettyOptions{
				Level:        handlerLevel,
				ThreadID:     s.ThreadID,
				ChannelWidth: s.ChannelWidth,
			})
		case "json":
			handler = NewJSONHandler(output, JSONOptions{
				Level:    handlerLevel,
				ThreadID: s.ThreadID,
			})
		default:
			return fmt.Errorf("log format: unsupported value %q", s.Format)
		}
	}
	if len(s.ExtraHandlers) > 0 {
		all := append([]slog.Handler{handler}, s.ExtraHandlers...)
		handler = newFanoutHandler(all...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultLevel = defaultLevel
	r.filters = filters
	r.handlerLevel = handlerLevel
	r.handler = handler
	return nil
}

// UseChannel returns the channel registered under name, creating it on first
// use. The same name always yields the same channel.
func (r *Runtime) UseChannel(name string) *Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok := r.channels[name]; ok {
		return ch
	}
	ch := &Channel{name: name, rt: r}
	r.channels[name] = ch
	return ch
}

// resolve returns the effective minimum level for a channel name.
func (r *Runtime) resolve(name string) slog.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filters.Resolve(name, r.defaultLevel)
}

// DefaultLevel returns the level channels fall back to without an override.
func (r *Runtime) DefaultLevel() slog.Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLevel
}

func (r *Runtime) currentHandler() slog.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handler
}

func mostVerbose(defaultLevel slog.Level, filters FilterTable) slog.Level {
	verbose := defaultLevel
	for _, level := range filters {
		if level < verbose {
			verbose = level
		}
	}
	return verbose
}

var defaultRuntime = NewRuntime()

// Configure applies settings to the process-wide runtime and installs its
// formatter as the slog default, so native slog emissions honor the active
// encoding gated at the default level.
func Configure(s Settings) error {
	if err := defaultRuntime.Configure(s); err != nil {
		return err
	}
	defaultRuntime.mu.RLock()
	handler := defaultRuntime.handler
	level := defaultRuntime.defaultLevel
	defaultRuntime.mu.RUnlock()
	slog.SetDefault(slog.New(newLevelOverrideHandler(handler, level)))
	return nil
}

// UseChannel returns a channel on the process-wide runtime.
func UseChannel(name string) *Channel {
	return defaultRuntime.UseChannel(name)
}
