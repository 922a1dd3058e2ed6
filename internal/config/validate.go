package config

import (
	"errors"
	"fmt"

	"chanlog/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDemo(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := logging.ParseFilterSpec(c.Logging.Filters); err != nil {
		return fmt.Errorf("logging.filters: %w", err)
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("logging.format must be \"pretty\" or \"json\", got %q", c.Logging.Format)
	}
	if c.Logging.ChannelWidth < 0 {
		return errors.New("logging.channel_width must not be negative")
	}
	return nil
}

func (c *Config) validateDemo() error {
	if c.Demo.Workers < 1 {
		return errors.New("demo.workers must be at least 1")
	}
	if c.Demo.Iterations < 1 {
		return errors.New("demo.iterations must be at least 1")
	}
	return nil
}
