package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all Aquilia configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Matcher    MatcherConfig    `yaml:"matcher"`
	References ReferencesConfig `yaml:"references"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
	// Graceful shutdown window, e.g. "10s"
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// MatcherConfig configures ranking.
type MatcherConfig struct {
	TopN    int `yaml:"top_n"`
	MaxTopN int `yaml:"max_top_n"`
}

// ReferencesConfig says where the reference catalogue comes from.
type ReferencesConfig struct {
	Source string `yaml:"source"` // builtin, yaml, fasta, postgres, sqlite
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
	// Reload file-backed catalogues when they change on disk
	Watch bool `yaml:"watch"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8001,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5000",
				"http://127.0.0.1:3000",
			},
			MaxUploadBytes:  10 * 1024 * 1024,
			ShutdownTimeout: "10s",
		},
		Matcher: MatcherConfig{
			TopN:    3,
			MaxTopN: 50,
		},
		References: ReferencesConfig{
			Source: "builtin",
			Table:  "reference_sequences",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("AQUILIA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("AQUILIA_REFERENCE_SOURCE"); v != "" {
		c.References.Source = v
	}
	if v := os.Getenv("AQUILIA_REFERENCE_PATH"); v != "" {
		c.References.Path = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.References.DSN = v
	}
}

// Validate checks values that would otherwise fail at startup.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("server.max_upload_bytes must be positive"))
	}
	if c.Matcher.TopN <= 0 {
		errs = append(errs, errors.New("matcher.top_n must be positive"))
	}
	if c.Matcher.MaxTopN < c.Matcher.TopN {
		errs = append(errs, errors.New("matcher.max_top_n must be >= matcher.top_n"))
	}

	switch c.References.Source {
	case "builtin":
	case "yaml", "fasta":
		if c.References.Path == "" {
			errs = append(errs, fmt.Errorf("references.path is required for %s", c.References.Source))
		}
	case "postgres", "sqlite":
		if c.References.DSN == "" {
			errs = append(errs, fmt.Errorf("references.dsn is required for %s", c.References.Source))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown references.source %q", c.References.Source))
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
