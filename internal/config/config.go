package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wahidu1/portfolio-core/internal/pkg/mail"
)

// DatabaseConfig holds MySQL connection parts.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	// DSN, when set, overrides the individual parts.
	DSN string `yaml:"dsn"`
}

// DSNValue assembles the MySQL DSN.
func (d DatabaseConfig) DSNValue() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// AppConfig is the root application configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Database       DatabaseConfig `yaml:"database"`
	Redis          RedisConfig    `yaml:"redis"`
	Mail           mail.Config    `yaml:"mail"`
	WorkerCount    int            `yaml:"worker_count"`
}

// Load reads configuration from a YAML file, applying defaults for anything
// left unset.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port: 8080,
		Env:  "development",
		Database: DatabaseConfig{
			Host: "127.0.0.1",
			Port: 3306,
			User: "root",
			Name: "portfolio",
		},
		Redis:       RedisConfig{URL: "redis://127.0.0.1:6379/0"},
		WorkerCount: 2,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}
