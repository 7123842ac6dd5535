package config

import (
	"fmt"
	"sync"

	"timegrid/core/constants"
	"timegrid/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int    `mapstructure:"SERVER_PORT"`
	Env  string `mapstructure:"APP_ENV"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     int    `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	DBName   string `mapstructure:"DB_NAME"`
	SSLMode  string `mapstructure:"DB_SSLMODE"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type CleanupConfig struct {
	RetentionDays int `mapstructure:"EVENT_RETENTION_DAYS"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:",squash"`
	Database DatabaseConfig `mapstructure:",squash"`
	Redis    RedisConfig    `mapstructure:",squash"`
	Cleanup  CleanupConfig  `mapstructure:",squash"`
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and the process environment into the
// global config instance.
func Load() error {
	if err := godotenv.Load(); err != nil {
		logger.Info("config: no .env file, using environment")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", constants.DefaultServerPort)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "timegrid")
	v.SetDefault("DB_SSLMODE", constants.DatabaseSSLMode)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("EVENT_RETENTION_DAYS", constants.DefaultEventRetentionDays)

	// AutomaticEnv alone does not populate Unmarshal; bind explicitly.
	for _, key := range []string{
		"SERVER_PORT", "APP_ENV",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"EVENT_RETENTION_DAYS",
	} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(&cfg.Server); err != nil {
		return fmt.Errorf("config: unmarshal server: %w", err)
	}
	if err := v.Unmarshal(&cfg.Database); err != nil {
		return fmt.Errorf("config: unmarshal database: %w", err)
	}
	if err := v.Unmarshal(&cfg.Redis); err != nil {
		return fmt.Errorf("config: unmarshal redis: %w", err)
	}
	if err := v.Unmarshal(&cfg.Cleanup); err != nil {
		return fmt.Errorf("config: unmarshal cleanup: %w", err)
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()
	return nil
}

// Get returns the loaded config; panics if Load was never called.
func Get() *Config {
	cfg, err := GetSafe()
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetSafe returns the loaded config or an error.
func GetSafe() (*Config, error) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, fmt.Errorf("config: not loaded")
	}
	return instance, nil
}
