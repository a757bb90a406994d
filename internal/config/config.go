package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration. Values come from an optional YAML
// file, with TOUCHLINE_* environment variables taking precedence.
type Config struct {
	Server struct {
		Addr    string `yaml:"addr"`
		CSRFKey string `yaml:"csrf_key"`
	} `yaml:"server"`
	Database struct {
		Path      string `yaml:"path"`
		BackupDir string `yaml:"backup_dir"`
	} `yaml:"database"`
	Env string `yaml:"env"`
}

// DefaultConfig returns the configuration used when no file and no
// environment overrides are present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Database.Path = "touchline.db"
	cfg.Database.BackupDir = "backups"
	cfg.Env = "development"
	return cfg
}

// Load reads the YAML file at path when it exists and applies environment
// overrides on top. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Server.Addr = envOrDefault("TOUCHLINE_ADDR", cfg.Server.Addr)
	cfg.Server.CSRFKey = envOrDefault("TOUCHLINE_CSRF_KEY", cfg.Server.CSRFKey)
	cfg.Database.Path = envOrDefault("TOUCHLINE_DB", cfg.Database.Path)
	cfg.Database.BackupDir = envOrDefault("TOUCHLINE_BACKUP_DIR", cfg.Database.BackupDir)
	cfg.Env = envOrDefault("TOUCHLINE_ENV", cfg.Env)

	return cfg, nil
}

// IsProduction reports whether the server runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
