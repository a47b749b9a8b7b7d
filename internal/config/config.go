package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	ProtectionStrong = "strong"
	ProtectionOff    = "off"
)

type Config struct {
	AppPort string
	GinMode string

	// CORSAllowedOrigins is a comma-separated list of origins the SPA may
	// call this API from with credentials.
	CORSAllowedOrigins string

	SessionBackend    string
	SessionTTL        time.Duration
	SessionProtection string

	CookieSecure   bool
	CookieSameSite http.SameSite

	RedisAddr     string
	RedisPassword string
}

// Load reads configuration from the environment. A .env.local file is
// loaded first when present so local development needs no exported vars.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")

	cfg := Config{
		AppPort: getEnv("APP_PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8080"),

		SessionBackend:    getEnv("SESSION_BACKEND", BackendMemory),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SessionProtection: getEnv("SESSION_PROTECTION", ProtectionStrong),

		CookieSecure:   getEnvAsBool("COOKIE_SECURE", false),
		CookieSameSite: parseSameSite(getEnv("COOKIE_SAMESITE", "lax")),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.SessionBackend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.SessionBackend)
	}

	switch c.SessionProtection {
	case ProtectionStrong, ProtectionOff:
	default:
		return fmt.Errorf("config: unknown SESSION_PROTECTION %q", c.SessionProtection)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive")
	}

	if c.CORSAllowedOrigins == "" {
		return fmt.Errorf("config: CORS_ALLOWED_ORIGINS must not be empty")
	}

	return nil
}

// AllowedOrigins splits the comma-separated origin list.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return defaultValue
	}
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// parseSameSite maps the env value onto http.SameSite. A SPA served from a
// different site needs "none" (plus COOKIE_SECURE=true); same-site setups
// keep the lax default.
func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
