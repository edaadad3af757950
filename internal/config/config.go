package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable, e.g. DELIVERY_SERVER_PORT
const EnvPrefix = "DELIVERY"

// ConfigFileEnv names the variable holding an optional YAML config file path
const ConfigFileEnv = "DELIVERY_CONFIG_FILE"

// Config 应用配置
// Leaf fields must not carry envconfig tags: envconfig also reads a tagged
// field from its bare, unprefixed name.
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Dataset   DatasetConfig   `yaml:"dataset" envconfig:"DATASET"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Auth      AuthConfig      `yaml:"auth" envconfig:"AUTH"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" split_words:"true" default:"8080" validate:"min=1,max=65535"`
	Mode            string        `yaml:"mode" split_words:"true" default:"release" validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true" default:"30s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true" default:"60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true" default:"10s" validate:"gt=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins" split_words:"true" default:"*"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// DatasetConfig locates the delivery export loaded at startup
type DatasetConfig struct {
	Path           string `yaml:"path" split_words:"true" default:"data/train.csv" validate:"required"`
	Format         string `yaml:"format" split_words:"true" validate:"omitempty,oneof=csv xlsx sqlite"` // inferred from the extension when empty
	Sheet          string `yaml:"sheet" split_words:"true"`
	Strict         bool   `yaml:"strict" split_words:"true" default:"false"`
	MaxDiagnostics int    `yaml:"max_diagnostics" split_words:"true" default:"50" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" default:"json" validate:"oneof=json text"`
}

// AuthConfig enables HS256 bearer tokens on the API group
type AuthConfig struct {
	Enabled  bool          `yaml:"enabled" split_words:"true" default:"false"`
	Secret   string        `yaml:"secret" split_words:"true"`
	Issuer   string        `yaml:"issuer" split_words:"true" default:"delivery-insights"`
	TokenTTL time.Duration `yaml:"token_ttl" split_words:"true" default:"24h" validate:"gt=0"`
}

// RateLimitConfig contains per-client rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" split_words:"true" default:"true"`
	RPS     float64 `yaml:"rps" split_words:"true" default:"20" validate:"gt=0"`
	Burst   int     `yaml:"burst" split_words:"true" default:"40" validate:"min=1"`
}

// minSecretLength is the shortest accepted HS256 signing secret
const minSecretLength = 32

// Load 加载配置: .env file, then environment with defaults, then the optional
// YAML file named by DELIVERY_CONFIG_FILE, then validation.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// overlayFile applies the keys present in a YAML file on top of cfg
func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks field constraints and cross-field rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Auth.Enabled && len(c.Auth.Secret) < minSecretLength {
		return fmt.Errorf("auth secret must be at least %d characters when auth is enabled", minSecretLength)
	}
	return nil
}
