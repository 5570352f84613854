package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Port     string         `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
}

type DatabaseConfig struct {
	Driver         string        `yaml:"driver"`
	URL            string        `yaml:"url"` // overrides the postgres fields when set
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Name           string        `yaml:"name"`
	SSLMode        string        `yaml:"sslmode"`
	SQLitePath     string        `yaml:"sqlite_path"`
	SeedFile       string        `yaml:"seed_file"`
	GormLogLevel   string        `yaml:"gorm_log_level"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver:         DriverPostgres,
			Host:           "localhost",
			Port:           "5432",
			User:           "postgres",
			Password:       "postgres",
			Name:           "trivia",
			SSLMode:        "disable",
			SQLitePath:     "trivia.db",
			GormLogLevel:   "warn",
			ConnectTimeout: 30 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load applies the YAML file named by CONFIG_FILE (if any) and then the
// environment on top of the defaults.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnvOrDefault("PORT", c.Port)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)

	db := &c.Database
	db.Driver = getEnvOrDefault("DB_DRIVER", db.Driver)
	db.URL = getEnvOrDefault("DATABASE_URL", db.URL)
	db.Host = getEnvOrDefault("POSTGRES_HOST", db.Host)
	db.Port = getEnvOrDefault("POSTGRES_PORT", db.Port)
	db.User = getEnvOrDefault("POSTGRES_USER", db.User)
	db.Password = getEnvOrDefault("POSTGRES_PASSWORD", db.Password)
	db.Name = getEnvOrDefault("POSTGRES_DB", db.Name)
	db.SSLMode = getEnvOrDefault("POSTGRES_SSLMODE", db.SSLMode)
	db.SQLitePath = getEnvOrDefault("SQLITE_PATH", db.SQLitePath)
	db.SeedFile = getEnvOrDefault("CATEGORY_SEED_FILE", db.SeedFile)
	db.GormLogLevel = getEnvOrDefault("GORM_LOG_LEVEL", db.GormLogLevel)

	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DB_CONNECT_TIMEOUT %q: %w", v, err)
		}
		db.ConnectTimeout = d
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port must not be empty")
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return errors.New("unsupported database driver: " + c.Database.Driver + ". Currently supported: postgres, sqlite")
	}
	if c.Database.Driver == DriverSQLite && c.Database.SQLitePath == "" {
		return errors.New("sqlite driver requires a database path")
	}
	if c.Database.ConnectTimeout <= 0 {
		return errors.New("database connect timeout must be positive")
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.SQLitePath
	}
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
