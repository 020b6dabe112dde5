package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	AppPort           string        `validate:"required"`
	DatabaseDriver    string        `validate:"oneof=postgres sqlite"`
	DatabaseDSN       string        `validate:"required"`
	RabbitMQURL       string        // empty disables like events
	JWTSecret         string        `validate:"required"`
	TokenTTL          time.Duration `validate:"gt=0"`
	DefaultPageSize   int           `validate:"gte=1,ltefield=MaxPageSize"`
	MaxPageSize       int           `validate:"gte=1"`
	SeedReferenceData bool
}

// Load reads configuration from defaults, an optional config.yaml in
// configPath, and environment variables, in increasing priority.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "katalog.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "katalog_dev_secret")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("DEFAULT_PAGE_SIZE", 9)
	v.SetDefault("MAX_PAGE_SIZE", 100)
	v.SetDefault("SEED_REFERENCE_DATA", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("No config.yaml found, using defaults and env vars")
	} else {
		log.Printf("Loaded %s", v.ConfigFileUsed())
	}

	cfg := Config{
		AppPort:           v.GetString("APP_PORT"),
		DatabaseDriver:    v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenTTL:          v.GetDuration("TOKEN_TTL"),
		DefaultPageSize:   v.GetInt("DEFAULT_PAGE_SIZE"),
		MaxPageSize:       v.GetInt("MAX_PAGE_SIZE"),
		SeedReferenceData: v.GetBool("SEED_REFERENCE_DATA"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
