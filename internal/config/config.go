// Package config loads and validates minisearch configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/minisearch/internal/errors"
)

// DefaultConfigFile is the config file looked up in the working directory
// when no explicit path is given.
const DefaultConfigFile = ".minisearch.yaml"

// Config is the complete minisearch configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig tunes query behavior.
type SearchConfig struct {
	// MaxResults is the default result cap for queries (default: 10).
	MaxResults int `yaml:"max_results"`

	// CacheSize is the number of cached query results (default: 128).
	CacheSize int `yaml:"cache_size"`
}

// LoggingConfig tunes debug logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults: 10,
			CacheSize:  128,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, or from DefaultConfigFile in the
// working directory when path is empty. A missing default file is not an
// error; a missing explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return NewConfig(), nil
		}
		return nil, errors.New(errors.ErrCodeConfigRead,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid YAML in %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configured values, filling defaults for omitted ones.
func (c *Config) Validate() error {
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 10
	}
	if c.Search.MaxResults < 0 {
		return errors.ConfigError("search.max_results must be positive", nil)
	}
	if c.Search.CacheSize == 0 {
		c.Search.CacheSize = 128
	}
	if c.Search.CacheSize < 0 {
		return errors.ConfigError("search.cache_size must be positive", nil)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.ConfigError(
			fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level), nil)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}
