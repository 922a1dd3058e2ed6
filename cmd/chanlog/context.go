package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"chanlog/internal/config"
)

// loggingFlags carries the persistent flag overrides applied on top of the
// configuration file. Empty values leave the file's settings untouched.
type loggingFlags struct {
	level    string
	filters  string
	format   string
	threadID bool
}

type commandContext struct {
	configFlag *string
	flags      *loggingFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, flags *loggingFlags) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		flags:      flags,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.applyFlags(cfg, exists)
		if err := cfg.Validate(); err != nil {
			c.configErr = fmt.Errorf("apply flags: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyFlags layers command-line overrides on top of the loaded file. Without
// a file or an explicit flag the encoding follows the terminal: pretty for an
// interactive stderr, json otherwise.
func (c *commandContext) applyFlags(cfg *config.Config, fileExists bool) {
	if c.flags == nil {
		if !fileExists {
			cfg.Logging.Format = defaultFormatForTerminal()
		}
		return
	}
	if v := strings.TrimSpace(c.flags.level); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(c.flags.filters); v != "" {
		cfg.Logging.Filters = v
	}
	switch {
	case strings.TrimSpace(c.flags.format) != "":
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(c.flags.format))
	case !fileExists:
		cfg.Logging.Format = defaultFormatForTerminal()
	}
	if c.flags.threadID {
		cfg.Logging.ThreadID = true
	}
}

func defaultFormatForTerminal() string {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "pretty"
	}
	return "json"
}
