package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds the service settings read from the environment.
type Config struct {
	AppPort       string
	StorageDriver string
	DatabaseDSN   string
	RabbitMQURL   string
	SeedData      bool
	LogLevel      string
}

// Load reads configuration from environment variables, falling back to defaults.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := Config{
		AppPort:       v.GetString("APP_PORT"),
		StorageDriver: v.GetString("STORAGE_DRIVER"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		SeedData:      v.GetBool("SEED_DATA"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: want memory, sqlite or postgres", cfg.StorageDriver)
	}
	return cfg, nil
}
