package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	JWT         JWTConfig
	Store       StoreConfig
	Sheets      SheetsConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	RateLimiter RateLimiterConfig
	Bulkhead    BulkheadConfig
	Breaker     BreakerConfig
	Cache       CacheConfig
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// StoreConfig selects the record-store backend: "csv" (local files only),
// "sheets" (remote spreadsheet with csv fallback) or "postgres".
type StoreConfig struct {
	Backend string
	DataDir string
}

type SheetsConfig struct {
	CredentialsFile    string
	PilotSpreadsheetID string
	DroneSpreadsheetID string
	MissionSpreadsheet string
	Worksheet          string
}

type PostgresConfig struct {
	URL      string // DATABASE_URL takes precedence if set
	Host     string
	Port     int
	User     string
	Password string
	DB       string
	SSLMode  string
}

type RedisConfig struct {
	URL      string // REDIS_URL takes precedence if set
	Host     string
	Port     int
	Password string
	DB       int
}

type RateLimiterConfig struct {
	MaxRequests   int
	WindowSeconds int
}

type BulkheadConfig struct {
	MutationPool int
	ReportPool   int
}

type BreakerConfig struct {
	FailureThreshold int
	CooldownSeconds  int
}

type CacheConfig struct {
	ConflictReportTTLSec int
	IdempotencyTTLSec    int
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getenvInt("PORT", getenvInt("SERVER_PORT", 8080)),
			ShutdownTimeout: time.Duration(getenvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:      getenv("JWT_SECRET", "default-secret-change-me"),
			ExpiryHours: time.Duration(getenvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		},
		Store: StoreConfig{
			Backend: getenv("STORE_BACKEND", "csv"),
			DataDir: getenv("DATA_DIR", "data"),
		},
		Sheets: SheetsConfig{
			CredentialsFile:    getenv("GOOGLE_CREDENTIALS_JSON", "credentials.json"),
			PilotSpreadsheetID: getenv("PILOT_SHEET_ID", ""),
			DroneSpreadsheetID: getenv("DRONE_SHEET_ID", ""),
			MissionSpreadsheet: getenv("MISSIONS_SHEET_ID", ""),
			Worksheet:          getenv("SHEETS_WORKSHEET", "Sheet1"),
		},
		Postgres: PostgresConfig{
			URL:      getenv("DATABASE_URL", ""),
			Host:     getenv("POSTGRES_HOST", "localhost"),
			Port:     getenvInt("POSTGRES_PORT", 5432),
			User:     getenv("POSTGRES_USER", "skylark_admin"),
			Password: getenv("POSTGRES_PASSWORD", "secure_password"),
			DB:       getenv("POSTGRES_DB", "skylark_ops"),
			SSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getenv("REDIS_URL", ""),
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getenvInt("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		RateLimiter: RateLimiterConfig{
			MaxRequests:   getenvInt("RATE_LIMIT_MAX_REQUESTS", 100),
			WindowSeconds: getenvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		},
		Bulkhead: BulkheadConfig{
			MutationPool: getenvInt("BULKHEAD_MUTATION_POOL", 50),
			ReportPool:   getenvInt("BULKHEAD_REPORT_POOL", 20),
		},
		Breaker: BreakerConfig{
			FailureThreshold: getenvInt("BREAKER_FAILURE_THRESHOLD", 5),
			CooldownSeconds:  getenvInt("BREAKER_COOLDOWN_SECONDS", 30),
		},
		Cache: CacheConfig{
			ConflictReportTTLSec: getenvInt("CONFLICT_REPORT_CACHE_TTL_SECONDS", 30),
			IdempotencyTTLSec:    getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		},
	}

	switch cfg.Store.Backend {
	case "csv", "sheets", "postgres":
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be csv, sheets or postgres", cfg.Store.Backend)
	}

	return cfg, nil
}

func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
