// Package config provides configuration management for the combo pricing service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Pricing  PricingConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
}

// CacheConfig holds the menu price cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
//
// Tokens are issued elsewhere; this service only verifies them.
type AuthConfig struct {
	Enabled bool
	// APIKeyHashes are bcrypt hashes of accepted X-API-Key values.
	APIKeyHashes []string
	JWTSecretKey string
	JWTIssuer    string
	AdminRole    string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// PricingConfig holds quote settings.
type PricingConfig struct {
	Currency         string
	MaxItemsPerCombo int
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
// A .env file (or ENV_FILE) is read first; variables already set win.
func Load() Config {
	_ = godotenv.Load(getEnv("ENV_FILE", ".env"))

	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RateLimit:       getEnvInt("RATE_LIMIT", 100),
			RateWindow:      getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:     getEnv("SWAGGER_USER", ""),
			SwaggerPass:     getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("MENU_CACHE_SIZE", 1000),
			TTL:  getEnvDuration("MENU_CACHE_TTL", time.Minute),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeyHashes: parseList(os.Getenv("API_KEY_HASHES")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
			JWTIssuer:    getEnv("JWT_ISSUER", ""),
			AdminRole:    getEnv("ADMIN_ROLE", "admin"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "combo_pricing"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Pricing: PricingConfig{
			Currency:         getEnv("PRICING_CURRENCY", "INR"),
			MaxItemsPerCombo: getEnvInt("PRICING_MAX_ITEMS", 50),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// local console dev servers
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	return append(defaults, parseList(s)...)
}
