package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath          = "remindcal.yaml"
	DefaultRemindersFile = "remind.json"
	DefaultLogFile       = "remindcal.log"
	DefaultProductID     = "-//remindcal//Reminders//EN"
)

// Config is the top-level application configuration.
type Config struct {
	// RemindersFile is the JSON file holding all reminders.
	RemindersFile string `yaml:"reminders_file"`

	// WeekStart controls the first column of the grid. Supported values:
	//   - "monday" (default)
	//   - "sunday"
	WeekStart string `yaml:"week_start"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile receives log lines while the terminal UI is running.
	// Empty discards them.
	LogFile string `yaml:"log_file"`

	// Mouse enables click handling on day cells and buttons.
	Mouse bool `yaml:"mouse"`

	// AltScreen runs the UI full-screen and restores the terminal on exit.
	AltScreen bool `yaml:"alt_screen"`

	// ICSProductID is written as PRODID in exported calendars.
	ICSProductID string `yaml:"ics_product_id"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		RemindersFile: DefaultRemindersFile,
		WeekStart:     "monday",
		LogLevel:      "info",
		LogFile:       DefaultLogFile,
		Mouse:         true,
		AltScreen:     true,
		ICSProductID:  DefaultProductID,
	}
}

// Normalize fills in missing values so that partially-filled configs still
// behave correctly. Booleans are left alone: false is a valid choice.
func (c *Config) Normalize() {
	if c.RemindersFile == "" {
		c.RemindersFile = DefaultRemindersFile
	}
	switch strings.ToLower(c.WeekStart) {
	case "monday", "sunday":
		c.WeekStart = strings.ToLower(c.WeekStart)
	default:
		// Unknown value; fall back to monday to avoid surprising layouts.
		c.WeekStart = "monday"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ICSProductID == "" {
		c.ICSProductID = DefaultProductID
	}
}

// FirstWeekday returns WeekStart as a time.Weekday.
func (c *Config) FirstWeekday() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written there and
//     returned.
//   - Otherwise the YAML is decoded over the defaults and normalized, so
//     keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists.
//   - Writes atomically via a temp file + rename.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".remindcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
