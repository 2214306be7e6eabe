package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Token settings. The signing secret itself lives in the database and
	// rotates; only expiry and issuer are configured here.
	TokenExpiryDuration time.Duration
	TokenIssuer         string

	// KeyRotationInterval controls how often the background scheduler
	// creates a new signing key version.
	KeyRotationInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("TOKEN_EXPIRY_DURATION", "500h")
	viper.SetDefault("TOKEN_ISSUER", "duka-backend")
	viper.SetDefault("KEY_ROTATION_INTERVAL", "48h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	tokenExpiryStr := viper.GetString("TOKEN_EXPIRY_DURATION")
	tokenExpiryDuration, err := time.ParseDuration(tokenExpiryStr)
	if err != nil {
		tokenExpiryDuration = 500 * time.Hour
		if tokenExpiryStr != "" {
			log.Printf("Warning: Invalid value for TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", tokenExpiryStr, tokenExpiryDuration.String())
		}
	}

	tokenIssuer := viper.GetString("TOKEN_ISSUER")
	if tokenIssuer == "" {
		tokenIssuer = "duka-backend"
		log.Printf("Warning: TOKEN_ISSUER not set. Defaulting to %s.\n", tokenIssuer)
	}

	rotationStr := viper.GetString("KEY_ROTATION_INTERVAL")
	rotationInterval, err := time.ParseDuration(rotationStr)
	if err != nil {
		rotationInterval = 48 * time.Hour
		if rotationStr != "" {
			log.Printf("Warning: Invalid value for KEY_ROTATION_INTERVAL ('%s'). Defaulting to %s.\n", rotationStr, rotationInterval.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.TokenExpiryDuration = tokenExpiryDuration
	cfg.TokenIssuer = tokenIssuer
	cfg.KeyRotationInterval = rotationInterval

	return cfg, nil
}
