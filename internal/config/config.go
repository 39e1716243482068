// Package config loads paranormal-api settings with viper: an optional YAML
// file, PARANORMAL_* environment overrides and the defaults below.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PARANORMAL_GRPC_PORT
const EnvPrefix = "PARANORMAL"

// GRPCConfig holds gRPC listener settings.
type GRPCConfig struct {
	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port"`
	// ShutdownTimeout bounds GracefulStop before the server is stopped hard.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the ":port" listen address.
func (g GRPCConfig) Addr() string {
	return fmt.Sprintf(":%d", g.Port)
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	// Endpoint is a single host:port. Ignored when ClusterEndpoints is set.
	Endpoint         string   `mapstructure:"endpoint"`
	ClusterEndpoints []string `mapstructure:"cluster_endpoints"`
	Password         string   `mapstructure:"password"`
	DB               int      `mapstructure:"db"`
	PoolSize         int      `mapstructure:"pool_size"`
	MaxRetries       int      `mapstructure:"max_retries"`
	UseTLS           bool     `mapstructure:"use_tls"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "text" or "json".
	Format string `mapstructure:"format"`
	// File enables a rotating file sink in addition to stdout when non-empty.
	File           string `mapstructure:"file"`
	FileMaxSizeMB  int    `mapstructure:"file_max_size_mb"`
	FileMaxBackups int    `mapstructure:"file_max_backups"`
	FileMaxAgeDays int    `mapstructure:"file_max_age_days"`
}

// CatalogConfig controls reference-table seeding.
type CatalogConfig struct {
	// SeedDir holds one <kind>.yaml file per reference table.
	SeedDir string `mapstructure:"seed_dir"`
	// SeedOnStart loads SeedDir into Redis when the server boots.
	SeedOnStart bool `mapstructure:"seed_on_start"`
}

// DiceConfig holds roll session settings.
type DiceConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// AuthConfig holds the game-master credential.
type AuthConfig struct {
	// GameMasterTokenHash is a bcrypt hash of the game-master bearer token.
	// Empty disables every game-master-only method.
	GameMasterTokenHash string `mapstructure:"game_master_token_hash"`
}

// Config is the top-level application configuration.
type Config struct {
	GRPC    GRPCConfig    `mapstructure:"grpc"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string

	if c.GRPC.Port < 1 || c.GRPC.Port > 65535 {
		errs = append(errs, fmt.Sprintf("grpc.port must be 1-65535, got %d", c.GRPC.Port))
	}
	if c.GRPC.ShutdownTimeout <= 0 {
		errs = append(errs, "grpc.shutdown_timeout must be positive")
	}
	if c.Redis.Endpoint == "" && len(c.Redis.ClusterEndpoints) == 0 {
		errs = append(errs, "redis.endpoint or redis.cluster_endpoints must be set")
	}
	if c.Redis.PoolSize < 0 {
		errs = append(errs, fmt.Sprintf("redis.pool_size must be >= 0, got %d", c.Redis.PoolSize))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Catalog.SeedOnStart && c.Catalog.SeedDir == "" {
		errs = append(errs, "catalog.seed_dir must be set when catalog.seed_on_start is true")
	}
	if c.Dice.SessionTTL <= 0 {
		errs = append(errs, "dice.session_ttl must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(l.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [text, json], got %q", l.Format))
	}
	if l.File != "" && l.FileMaxSizeMB < 1 {
		errs = append(errs, "logging.file_max_size_mb must be >= 1 when logging.file is set")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// New returns a viper instance with defaults and environment overrides applied.
// Callers bind their flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads the optional config file at path into v and returns the validated
// Config. An empty path skips the file and uses defaults, env and flags only.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("grpc.port", 50051)
	v.SetDefault("grpc.shutdown_timeout", "30s")

	v.SetDefault("redis.endpoint", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.max_retries", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.file_max_size_mb", 10)
	v.SetDefault("logging.file_max_backups", 5)
	v.SetDefault("logging.file_max_age_days", 30)

	v.SetDefault("catalog.seed_dir", "data/catalog")
	v.SetDefault("catalog.seed_on_start", true)

	v.SetDefault("dice.session_ttl", "15m")

	v.SetDefault("auth.game_master_token_hash", "")
}
