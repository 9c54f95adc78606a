package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog sources
const (
	SourcePostgres = "postgres"
	SourceDrive    = "drive"
)

// Config represents the application configuration
type Config struct {
	Port     string         `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Prefetch PrefetchConfig `yaml:"prefetch"`
}

type CatalogConfig struct {
	Source          string `yaml:"source"`
	CredentialsPath string `yaml:"credentials_path"`
	DriveFolderID   string `yaml:"drive_folder_id"`
}

type PrefetchConfig struct {
	CacheDir       string `yaml:"cache_dir"`
	Workers        int    `yaml:"workers"`
	QueueSize      int    `yaml:"queue_size"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-download timeout
func (p PrefetchConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		Catalog: CatalogConfig{
			Source: SourcePostgres,
		},
		Prefetch: PrefetchConfig{
			CacheDir:       "cache/images",
			Workers:        4,
			QueueSize:      64,
			TimeoutSeconds: 15,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped when path is
// empty) and finally environment variables
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(name string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
		}
	}
	setInt := func(name string, dst *int) error {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", name, err)
		}
		*dst = n
		return nil
	}

	setString("PORT", &c.Port)
	setString("LOG_LEVEL", &c.LogLevel)
	setString("CATALOG_SOURCE", &c.Catalog.Source)
	setString("GOOGLE_APPLICATION_CREDENTIALS", &c.Catalog.CredentialsPath)
	setString("DRIVE_FOLDER_ID", &c.Catalog.DriveFolderID)
	setString("IMAGE_CACHE_DIR", &c.Prefetch.CacheDir)

	if err := setInt("PREFETCH_WORKERS", &c.Prefetch.Workers); err != nil {
		return err
	}
	if err := setInt("PREFETCH_QUEUE_SIZE", &c.Prefetch.QueueSize); err != nil {
		return err
	}
	if err := setInt("FETCH_TIMEOUT_SECONDS", &c.Prefetch.TimeoutSeconds); err != nil {
		return err
	}

	// PORT from some hosts comes with a leading colon
	c.Port = strings.TrimPrefix(c.Port, ":")
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Catalog.Source = strings.ToLower(c.Catalog.Source)
	return nil
}

// Validate checks the configuration for values the application cannot run with
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch c.Catalog.Source {
	case SourcePostgres:
	case SourceDrive:
		if c.Catalog.CredentialsPath == "" {
			return fmt.Errorf("catalog.credentials_path is required for the drive source")
		}
		if c.Catalog.DriveFolderID == "" {
			return fmt.Errorf("catalog.drive_folder_id is required for the drive source")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s", c.Catalog.Source)
	}

	if c.Prefetch.Workers <= 0 {
		return fmt.Errorf("prefetch.workers must be greater than 0")
	}
	if c.Prefetch.QueueSize <= 0 {
		return fmt.Errorf("prefetch.queue_size must be greater than 0")
	}
	if c.Prefetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("prefetch.timeout_seconds must be greater than 0")
	}
	return nil
}
