package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"chanlog/internal/logging"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	// Level is the default threshold for channels without an override.
	Level string `toml:"level"`
	// Filters holds per-channel overrides in "NAME:level,..." form.
	Filters string `toml:"filters"`
	// Format selects the encoding: "pretty" or "json".
	Format string `toml:"format"`
	// ThreadID attaches the emitting goroutine's id to every record.
	ThreadID bool `toml:"thread_id"`
	// ChannelWidth pads or truncates channel names in pretty headers.
	ChannelWidth int `toml:"channel_width"`
	// Output is a file path receiving rendered records. Empty means stderr.
	Output string `toml:"output"`
}

// Demo contains configuration for the demo workload command.
type Demo struct {
	// Workers is the number of concurrent goroutines the workload runs.
	Workers int `toml:"workers"`
	// Iterations is the number of nested passes each worker makes.
	Iterations int `toml:"iterations"`
}

// Config encapsulates all configuration values for chanlog.
type Config struct {
	Logging Logging `toml:"logging"`
	Demo    Demo    `toml:"demo"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/chanlog/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has its output path expanded and its format canonicalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("chanlog.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Settings maps the logging section onto runtime settings. The caller supplies
// the writer so it controls the lifetime of any opened file.
func (c *Config) Settings(output io.Writer) logging.Settings {
	return logging.Settings{
		DefaultLevel: c.Logging.Level,
		Filters:      c.Logging.Filters,
		Format:       c.Logging.Format,
		ThreadID:     c.Logging.ThreadID,
		ChannelWidth: c.Logging.ChannelWidth,
		Output:       output,
	}
}

// OpenOutput opens the configured output destination. A nil closer is
// returned when the destination is stderr.
func (c *Config) OpenOutput() (io.Writer, io.Closer, error) {
	if strings.TrimSpace(c.Logging.Output) == "" {
		return os.Stderr, nil, nil
	}
	if dir := filepath.Dir(c.Logging.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	file, err := os.OpenFile(c.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	return file, file, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
