package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// ConfigFileVariable names an optional YAML file layered between the defaults
// and the environment.
const ConfigFileVariable = "LEDGER_CONFIG_FILE"

type Config struct {
	PostgresAddress  string `koanf:"POSTGRES_ADDRESS"`
	PostgresPort     string `koanf:"POSTGRES_PORT"`
	PostgresDB       string `koanf:"POSTGRES_DB"`
	PostgresUsername string `koanf:"POSTGRES_USERNAME"`
	PostgresPassword string `koanf:"POSTGRES_PASSWORD"`
	StorageBackend   string `koanf:"STORAGE_BACKEND"`
	HTTPPort         string `koanf:"HTTP_PORT"`
	LogLevel         string `koanf:"LOG_LEVEL"`
	MigrationsRun    bool   `koanf:"MIGRATIONS_RUN"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]any{
	"POSTGRES_ADDRESS":  "localhost",
	"POSTGRES_PORT":     "5433",
	"POSTGRES_DB":       "postgres",
	"POSTGRES_USERNAME": "postgres",
	"POSTGRES_PASSWORD": "testpassword",
	"STORAGE_BACKEND":   BackendPostgres,
	"HTTP_PORT":         "9446",
	"LOG_LEVEL":         "info",
	"MIGRATIONS_RUN":    false,
}

// ProcessEnvironmentVariables builds the Config from, in increasing priority:
// built-in defaults, the YAML file named by LEDGER_CONFIG_FILE, a .env file in
// the working directory, and the process environment.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(ConfigFileVariable); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(key string) string {
		if _, known := defaults[key]; !known {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would only fail later, at connect or listen time.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if _, err := strconv.Atoi(c.PostgresPort); err != nil {
			return fmt.Errorf("POSTGRES_PORT %q is not a port number", c.PostgresPort)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND %q must be %q or %q", c.StorageBackend, BackendPostgres, BackendMemory)
	}

	if _, err := strconv.Atoi(c.HTTPPort); err != nil {
		return fmt.Errorf("HTTP_PORT %q is not a port number", c.HTTPPort)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
