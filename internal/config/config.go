// Package config loads brightpath settings from a YAML file and
// BRIGHTPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/brightpath/internal/subject"
)

const (
	envPrefix         = "BRIGHTPATH_"
	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config is the full application configuration.
type Config struct {
	DB      DBConfig      `koanf:"db"`
	Learner LearnerConfig `koanf:"learner"`
	Log     LogConfig     `koanf:"log"`
}

// DBConfig locates the SQLite database.
type DBConfig struct {
	Path string `koanf:"path"` // empty = XDG default
}

// LearnerConfig holds learner defaults used when a command omits them.
type LearnerConfig struct {
	AgeGroup string `koanf:"age_group"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // console or json
}

// AgeGroup returns the parsed learner age group.
func (c *Config) AgeGroup() subject.AgeGroup {
	age, err := subject.ParseAgeGroup(c.Learner.AgeGroup)
	if err != nil {
		return subject.AgeMiddle
	}
	return age
}

// Load reads configuration with precedence env > YAML file > defaults.
//
// An explicit path must exist. With an empty path the default
// ~/.config/brightpath/config.yaml is used if present.
//
// Environment variables map on the first underscore after the prefix:
//
//	BRIGHTPATH_DB_PATH          -> db.path
//	BRIGHTPATH_LEARNER_AGE_GROUP -> learner.age_group
//	BRIGHTPATH_LOG_LEVEL        -> log.level
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	content, err := readConfigFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file; defaults and env only.
	default:
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// DefaultPath returns ~/.config/brightpath/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "brightpath", "config.yaml"), nil
}

// envKey maps BRIGHTPATH_SECTION_FIELD_NAME to section.field_name.
// Variables without a section (such as BRIGHTPATH_DB) are ignored here.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok || field == "" {
		return ""
	}
	return section + "." + field
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Learner.AgeGroup == "" {
		cfg.Learner.AgeGroup = string(subject.AgeMiddle)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := subject.ParseAgeGroup(c.Learner.AgeGroup); err != nil {
		return fmt.Errorf("learner.age_group: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unsupported level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unsupported format %q", c.Log.Format)
	}
	return nil
}
