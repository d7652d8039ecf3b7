// Package config handles loading and managing configuration for the
// todo CLI. It supports loading from YAML files, environment
// variables, and hardcoded defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings for the todo CLI.
type Config struct {
	// StorePath is the path of the task file
	StorePath string `yaml:"store_path"`

	// DefaultPriority is the priority used when add omits one
	DefaultPriority string `yaml:"default_priority"`

	// DefaultCategory is the category used when add omits one
	DefaultCategory string `yaml:"default_category"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// FilePath is the log file path (empty for console only)
	FilePath string `yaml:"file_path"`

	// JSON enables JSON output format
	JSON bool `yaml:"json"`

	// Console enables console output in addition to file output
	Console bool `yaml:"console"`

	// MaxSize is the maximum size in megabytes before rotation
	MaxSize int `yaml:"max_size"`

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int `yaml:"max_backups"`

	// MaxAge is the maximum number of days to retain old log files
	MaxAge int `yaml:"max_age"`

	// Compress enables gzip compression of rotated files
	Compress bool `yaml:"compress"`
}

// Default configuration values
const (
	DefaultStoreFile       = ".todo-cli.json"
	DefaultDefaultPriority = "medium"
	DefaultDefaultCategory = "personal"
)

var (
	globalConfig *Config
	configOnce   sync.Once
	configErr    error
)

// Get returns the global configuration, loading it if necessary.
// This function is safe for concurrent use.
func Get() (*Config, error) {
	configOnce.Do(func() {
		globalConfig, configErr = Load()
	})
	return globalConfig, configErr
}

// MustGet returns the global configuration, panicking if loading fails.
func MustGet() *Config {
	cfg, err := Get()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	return cfg
}

// Load reads configuration from files and environment variables.
// Priority (highest to lowest):
// 1. Environment variables
// 2. ~/.config/todo/config.yaml
// 3. ~/.todo.yaml
// 4. Hardcoded defaults
func Load() (*Config, error) {
	cfg := &Config{
		StorePath:       defaultStorePath(),
		DefaultPriority: DefaultDefaultPriority,
		DefaultCategory: DefaultDefaultCategory,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			Compress:   true,
		},
	}

	// Try to load from config files (lowest priority file first)
	homeDir, err := os.UserHomeDir()
	if err == nil {
		// Try ~/.todo.yaml first (will be overwritten by XDG config if present)
		legacyPath := filepath.Join(homeDir, ".todo.yaml")
		if data, err := os.ReadFile(legacyPath); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}

		// Then try ~/.config/todo/config.yaml (higher priority)
		xdgPath := filepath.Join(homeDir, ".config", "todo", "config.yaml")
		if data, err := os.ReadFile(xdgPath); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}

		// Also try config.yml extension
		xdgPathYml := filepath.Join(homeDir, ".config", "todo", "config.yml")
		if data, err := os.ReadFile(xdgPathYml); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	// Override with environment variables (highest priority)
	cfg.applyEnvOverrides()

	// An empty store_path in a config file means "use the default"
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}

	return cfg, nil
}

// defaultStorePath returns the default task file location in the
// user's home directory, falling back to the working directory when
// the home directory cannot be determined.
func defaultStorePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultStoreFile
	}
	return filepath.Join(homeDir, DefaultStoreFile)
}

// applyEnvOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvOverrides() {
	if val := os.Getenv("TODO_STORE_PATH"); val != "" {
		c.StorePath = val
	}

	if val := os.Getenv("TODO_DEFAULT_PRIORITY"); val != "" {
		c.DefaultPriority = val
	}

	if val := os.Getenv("TODO_DEFAULT_CATEGORY"); val != "" {
		c.DefaultCategory = val
	}

	if val := os.Getenv("TODO_LOG_LEVEL"); val != "" {
		c.Logging.Level = val
	}

	if val := os.Getenv("TODO_LOG_FILE"); val != "" {
		c.Logging.FilePath = val
	}

	if val := os.Getenv("TODO_LOG_JSON"); val != "" {
		c.Logging.JSON = val == "true" || val == "1" || val == "yes"
	}

	if val := os.Getenv("TODO_LOG_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.Logging.MaxSize = size
		}
	}
}

// Reload forces a reload of the configuration.
// This resets the global singleton and returns the newly loaded config.
func Reload() (*Config, error) {
	configOnce = sync.Once{}
	return Get()
}

// ConfigPaths returns the paths where config files are searched.
func ConfigPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(homeDir, ".config", "todo", "config.yaml"),
		filepath.Join(homeDir, ".config", "todo", "config.yml"),
		filepath.Join(homeDir, ".todo.yaml"),
	}
}

// WriteExample writes an example configuration file to the specified path.
func WriteExample(path string) error {
	example := `# Todo configuration file
# Place this file at ~/.config/todo/config.yaml or ~/.todo.yaml

# Path of the task file
store_path: ""

# Priority used when 'add' omits --priority (low, medium, high, critical)
default_priority: medium

# Category used when 'add' omits --category
default_category: personal

# Logging
logging:
  level: info
  file_path: ""
  json: false
  console: false
  max_size: 10
  max_backups: 5
  max_age: 7
  compress: true
`
	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(example), 0644)
}
