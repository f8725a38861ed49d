package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache drivers accepted by CACHE_DRIVER.
const (
	CacheDriverMemory   = "memory"
	CacheDriverRedis    = "redis"
	CacheDriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream exchange API
	ExchangeAPIBaseURL string
	ExchangeAPITimeout time.Duration
	DefaultProviderID  string

	// Snapshot cache
	CacheDriver   string
	CacheTTL      time.Duration
	DraftTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string

	// Admin sessions
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	OTPTTL            time.Duration
	ExposeOTPHint     bool

	CORSAllowedOrigins []string
	RateLimit          string
	AuthRateLimit      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8081")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EXCHANGE_API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("EXCHANGE_API_TIMEOUT", "15s")
	viper.SetDefault("DEFAULT_PROVIDER_ID", "1")
	viper.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	viper.SetDefault("CACHE_TTL", "0s")
	viper.SetDefault("DRAFT_TTL", "24h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "exchange-desk")
	viper.SetDefault("OTP_TTL", "5m")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost,capacitor://localhost,http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8081"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.ExchangeAPIBaseURL = strings.TrimRight(viper.GetString("EXCHANGE_API_BASE_URL"), "/")
	cfg.ExchangeAPITimeout = durationOr("EXCHANGE_API_TIMEOUT", 15*time.Second)
	cfg.DefaultProviderID = viper.GetString("DEFAULT_PROVIDER_ID")

	cfg.CacheDriver = strings.ToLower(viper.GetString("CACHE_DRIVER"))
	switch cfg.CacheDriver {
	case CacheDriverMemory, CacheDriverRedis, CacheDriverPostgres:
	default:
		log.Printf("Warning: Unknown CACHE_DRIVER ('%s'). Defaulting to %s.\n", cfg.CacheDriver, CacheDriverMemory)
		cfg.CacheDriver = CacheDriverMemory
	}
	cfg.CacheTTL = durationOr("CACHE_TTL", 0)
	cfg.DraftTTL = durationOr("DRAFT_TTL", 24*time.Hour)
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.CacheDriver == CacheDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: CACHE_DRIVER is postgres but PGSQL_URL is not set.")
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "exchange-desk"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	cfg.OTPTTL = durationOr("OTP_TTL", 5*time.Minute)

	// The one-time code hint is a development aid only.
	viper.SetDefault("EXPOSE_OTP_HINT", !cfg.IsProduction)
	cfg.ExposeOTPHint = viper.GetBool("EXPOSE_OTP_HINT") && !cfg.IsProduction

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}

// durationOr parses a duration key such as "60m" or "1h", falling back on invalid values.
func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
