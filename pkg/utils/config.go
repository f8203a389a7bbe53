package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Email     EmailConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Payment   PaymentConfig
	Admin     AdminConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	StorageDriver string
	CORSOrigins   []string
	CookieSecure  bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type RedisConfig struct {
	URL string
}

// RateLimitConfig uses the limiter formatted syntax, e.g. "20-M" (20 per minute).
type RateLimitConfig struct {
	Rate string
}

type PaymentConfig struct {
	SuccessRate float64
	Currency    string
}

// AdminConfig bootstraps an admin account at startup when both fields are set.
type AdminConfig struct {
	Email    string
	Password string
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "hotel-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_FROM", "Hotel Booking <no-reply@hotel.local>")
	viper.SetDefault("RATE_LIMIT", "30-M")
	viper.SetDefault("PAYMENT_SUCCESS_RATE", 0.8)
	viper.SetDefault("CURRENCY", "INR")

	// .env is optional; the process environment always wins
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			StorageDriver: strings.ToLower(viper.GetString("STORAGE_DRIVER")),
			CORSOrigins:   splitList(viper.GetString("CORS_ORIGINS")),
			CookieSecure:  viper.GetBool("COOKIE_SECURE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		RateLimit: RateLimitConfig{
			Rate: viper.GetString("RATE_LIMIT"),
		},
		Payment: PaymentConfig{
			SuccessRate: viper.GetFloat64("PAYMENT_SUCCESS_RATE"),
			Currency:    viper.GetString("CURRENCY"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
