package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	OriginURL       string

	StoreDriver   string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	MigrationsDir string

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	ProductCacheTTL time.Duration

	UploadDir     string
	MaxUploadSize int64
	ImageNaming   string
	ImageBackend  string
	CloudinaryURL string

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	SMTPFrom         string
	OrderNotifyEmail string

	OrderUserID         int64
	OrderInitialStateID int64
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "3000")),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		OriginURL:       getEnv("ORIGIN_URL", ""),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "boutique"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		ProductCacheTTL: getEnvAsDuration("PRODUCT_CACHE_TTL", 5*time.Minute),

		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		MaxUploadSize: int64(getEnvAsInt("MAX_UPLOAD_SIZE", 5242880)),
		ImageNaming:   strings.ToLower(getEnv("IMAGE_NAMING", "product")),
		ImageBackend:  strings.ToLower(getEnv("IMAGE_BACKEND", "local")),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),

		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPass:         getEnv("SMTP_PASS", ""),
		SMTPFrom:         getEnv("SMTP_FROM", ""),
		OrderNotifyEmail: getEnv("ORDER_NOTIFY_EMAIL", ""),

		OrderUserID:         int64(getEnvAsInt("ORDER_USER_ID", 1)),
		OrderInitialStateID: int64(getEnvAsInt("ORDER_INITIAL_STATE_ID", 1)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	AppConfig = cfg
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	switch c.StoreDriver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q (must be postgres or memory)", c.StoreDriver)
	}

	switch c.ImageNaming {
	case "product", "uuid":
	default:
		return fmt.Errorf("invalid IMAGE_NAMING %q (must be product or uuid)", c.ImageNaming)
	}

	switch c.ImageBackend {
	case "local":
	case "cloudinary":
		if c.CloudinaryURL == "" {
			return fmt.Errorf("CLOUDINARY_URL is required when IMAGE_BACKEND=cloudinary")
		}
	default:
		return fmt.Errorf("invalid IMAGE_BACKEND %q (must be local or cloudinary)", c.ImageBackend)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL %q (must be debug, info, warn or error)", c.LogLevel)
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	if c.OrderUserID <= 0 || c.OrderInitialStateID <= 0 {
		return fmt.Errorf("ORDER_USER_ID and ORDER_INITIAL_STATE_ID must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.OrderNotifyEmail != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
