package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/example/hive/internal/db"
)

// DriverMemory selects the in-process store.
const DriverMemory = "memory"

// Defaults
const (
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
	DefaultUser       = "system"
)

// Config represents the hive configuration
type Config struct {
	Driver         string `yaml:"driver"`
	DSN            string `yaml:"dsn,omitempty"`
	ListenAddr     string `yaml:"listen_addr,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
	DevMode        bool   `yaml:"dev_mode,omitempty"`
	MetricsEnabled bool   `yaml:"metrics_enabled,omitempty"`
	DefaultUser    string `yaml:"default_user,omitempty"` // actor when a caller sends none
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, ".hive", "config.yaml")
}

// Load reads .hive/config.yaml from dir when present, applies HIVE_* environment
// overrides and fills defaults.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(Path(dir))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config.yaml to dir
func Save(dir string, cfg *Config) error {
	hiveDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(hiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create .hive dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects unknown drivers.
func (c *Config) Validate() error {
	switch c.Driver {
	case db.DriverSQLite, db.DriverPostgres, DriverMemory:
		return nil
	default:
		return fmt.Errorf("invalid driver %q: must be %s, %s or %s", c.Driver, db.DriverSQLite, db.DriverPostgres, DriverMemory)
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HIVE_DB_DRIVER"); v != "" {
		cfg.Driver = v
	}
	if v := os.Getenv("HIVE_DB_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("HIVE_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("HIVE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HIVE_USER"); v != "" {
		cfg.DefaultUser = v
	}

	for name, dst := range map[string]*bool{
		"HIVE_DEV_MODE":        &cfg.DevMode,
		"HIVE_METRICS_ENABLED": &cfg.MetricsEnabled,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

func applyDefaults(cfg *Config) error {
	if cfg.Driver == "" {
		cfg.Driver = db.DriverSQLite
	}
	if cfg.DSN == "" && cfg.Driver == db.DriverSQLite {
		path, err := db.DefaultPath()
		if err != nil {
			return err
		}
		cfg.DSN = path
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.DefaultUser == "" {
		cfg.DefaultUser = DefaultUser
	}
	return nil
}
