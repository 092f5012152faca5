package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Record store kinds accepted by RECORD_STORE.
const (
	RecordStoreNone     = "none"
	RecordStoreDynamoDB = "dynamodb"
	RecordStorePostgres = "postgres"
)

// Ledger slot kinds accepted by LEDGER_STORE.
const (
	LedgerStoreMemory = "memory"
	LedgerStoreRedis  = "redis"
)

// Config holds all configuration for the checkout service.
type Config struct {
	Server      ServerConfig
	RecordStore string
	Database    DatabaseConfig
	Redis       RedisConfig
	Ledger      LedgerConfig
	Checkout    CheckoutConfig
	NewRelic    NewRelicConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LedgerConfig selects where the history ledger lives.
type LedgerConfig struct {
	Store    string
	Key      string
	Capacity int
	Timezone string
}

// CheckoutConfig holds the checkout flow settings.
type CheckoutConfig struct {
	Organization   string
	DemoUserEmail  string
	PixKey         string
	PixName        string
	PixCity        string
	RedirectTarget string
	RedirectDelay  time.Duration
	PixCopiedFor   time.Duration

	// Sessions untouched for SessionIdleTTL are dropped every SessionSweepInterval.
	SessionIdleTTL       time.Duration
	SessionSweepInterval time.Duration
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		RecordStore: strings.ToLower(getEnv("RECORD_STORE", RecordStoreNone)),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "geds"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Ledger: LedgerConfig{
			Store:    strings.ToLower(getEnv("LEDGER_STORE", LedgerStoreMemory)),
			Key:      getEnv("LEDGER_KEY", "historicoPagamentos"),
			Capacity: getIntEnv("LEDGER_CAPACITY", 0),
			Timezone: getEnv("LEDGER_TIMEZONE", "America/Sao_Paulo"),
		},
		Checkout: CheckoutConfig{
			Organization:   getEnv("CHECKOUT_ORGANIZATION", "GEDS INOVAÇÃO"),
			DemoUserEmail:  getEnv("DEMO_USER_EMAIL", "edmilson@gedsinovacao.com"),
			PixKey:         getEnv("PIX_KEY", "+5548999999999"),
			PixName:        getEnv("PIX_MERCHANT_NAME", "GEDS INOVACAO"),
			PixCity:        getEnv("PIX_MERCHANT_CITY", "BRASILIA"),
			RedirectTarget: getEnv("REDIRECT_TARGET", "/"),
			RedirectDelay:  getDurationEnv("REDIRECT_DELAY", 3*time.Second),
			PixCopiedFor:   getDurationEnv("PIX_COPIED_FOR", 2*time.Second),

			SessionIdleTTL:       getDurationEnv("SESSION_IDLE_TTL", 30*time.Minute),
			SessionSweepInterval: getDurationEnv("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "geds-checkout"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
	}
}

// Location resolves the ledger timezone, falling back to the local zone.
func (l LedgerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
