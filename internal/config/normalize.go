package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	c.normalizeDemo()

	if strings.TrimSpace(c.Logging.Output) != "" {
		expanded, err := expandPath(c.Logging.Output)
		if err != nil {
			return fmt.Errorf("logging.output: %w", err)
		}
		c.Logging.Output = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if env, ok := os.LookupEnv("CHANLOG_LEVEL"); ok && strings.TrimSpace(env) != "" {
		c.Logging.Level = env
	}
	if env, ok := os.LookupEnv("CHANLOG_FILTERS"); ok && strings.TrimSpace(env) != "" {
		c.Logging.Filters = env
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Filters = strings.TrimSpace(c.Logging.Filters)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.ChannelWidth == 0 {
		c.Logging.ChannelWidth = defaultChannelWidth
	}
}

func (c *Config) normalizeDemo() {
	if c.Demo.Workers == 0 {
		c.Demo.Workers = defaultDemoWorkers
	}
	if c.Demo.Iterations == 0 {
		c.Demo.Iterations = defaultDemoIterations
	}
}
