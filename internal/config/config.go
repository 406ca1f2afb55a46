// Package config loads service settings from defaults, an optional YAML file,
// a .env file and the process environment, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the location of the YAML config file.
const PathEnvVar = "CONFIG_PATH"

const defaultPath = "config.yaml"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"log"`
	CORS    CORSConfig    `koanf:"cors"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         string        `koanf:"port" validate:"required,numeric"`
	Environment  string        `koanf:"environment" validate:"oneof=development production test"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"gt=0"`
}

type LoggingConfig struct {
	Dir           string `koanf:"dir"`
	Level         string `koanf:"level" validate:"oneof=debug info warn error"`
	Format        string `koanf:"format" validate:"oneof=console json"`
	RetentionDays int    `koanf:"retention_days" validate:"gte=1"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" validate:"min=1"`
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Retention is how long rotated log files are kept.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Logging.RetentionDays) * 24 * time.Hour
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "5001",
			Environment:  "development",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Logging: LoggingConfig{
			Dir:           "logs",
			Level:         "debug",
			Format:        "console",
			RetentionDays: 30,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// envKeys maps environment variable names to config paths. Anything not
// listed here is ignored.
var envKeys = map[string]string{
	"host":               "server.host",
	"port":               "server.port",
	"app_env":            "server.environment",
	"read_timeout":       "server.read_timeout",
	"write_timeout":      "server.write_timeout",
	"idle_timeout":       "server.idle_timeout",
	"log_dir":            "log.dir",
	"log_level":          "log.level",
	"log_format":         "log.format",
	"log_retention_days": "log.retention_days",
	"cors_origins":       "cors.allowed_origins",
}

func envTransform(key string) string {
	return envKeys[strings.ToLower(key)]
}

// Load builds the configuration. envFiles are passed to godotenv; a missing
// .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitOrigins(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func configPath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath
	}
	return ""
}

// CORS_ORIGINS arrives as a comma separated string.
func splitOrigins(k *koanf.Koanf) error {
	raw, ok := k.Get("cors.allowed_origins").(string)
	if !ok {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = Default().CORS.AllowedOrigins
	}
	if err := k.Set("cors.allowed_origins", origins); err != nil {
		return fmt.Errorf("failed to set cors.allowed_origins: %w", err)
	}
	return nil
}
