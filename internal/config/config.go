package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	Environment          string
	HTTPPort             string
	ServiceName          string
	UpstreamTimeout      time.Duration
	ShutdownTimeout      time.Duration
	RateLimitRPM         int
	TelemetryEndpoint    string
	TelemetryInsecure    bool
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSAllowCredentials bool

	GitHubClientID     string
	GitHubClientSecret string
	OAuthRedirectURI   string
	// GitHubFallbackToken is a static server-managed token used when the
	// caller supplies none. Leave empty to require caller tokens.
	GitHubFallbackToken string
	// ConnectorURL points at an optional token-vending service that refreshes
	// the fallback credential when it expires.
	ConnectorURL   string
	ConnectorToken string

	YouTubeAPIKey string
	RapidAPIKey   string
	KiteAPIKey    string
	KiteAPISecret string
	// LogoDevToken is the logo.dev publishable key appended to image URLs.
	// logo.dev serves nothing without one, so a default ships in.
	LogoDevToken string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables with sane defaults.
// Upstream secrets are deliberately optional: an endpoint whose key is unset
// answers with a "not configured" error instead of failing startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:          getEnv("APP_ENV", "development"),
		HTTPPort:             getEnv("HTTP_PORT", "5001"),
		ServiceName:          getEnv("SERVICE_NAME", "portfolio-gateway"),
		UpstreamTimeout:      getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		ShutdownTimeout:      getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimitRPM:         getInt("RATE_LIMIT_RPM", 600),
		TelemetryEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TelemetryInsecure:    getBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		CORSAllowedOrigins:   getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CORSAllowedMethods:   getList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"}),
		CORSAllowedHeaders:   getList("CORS_ALLOWED_HEADERS", []string{"Authorization", "Content-Type"}),
		CORSAllowCredentials: getBool("CORS_ALLOW_CREDENTIALS", false),

		GitHubClientID:      os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret:  os.Getenv("GITHUB_CLIENT_SECRET"),
		OAuthRedirectURI:    getEnv("OAUTH_REDIRECT_URI", "http://localhost:5000/github-callback"),
		GitHubFallbackToken: os.Getenv("GITHUB_FALLBACK_TOKEN"),
		ConnectorURL:        os.Getenv("CONNECTOR_URL"),
		ConnectorToken:      os.Getenv("CONNECTOR_TOKEN"),

		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		RapidAPIKey:   os.Getenv("RAPIDAPI_KEY"),
		KiteAPIKey:    os.Getenv("ZERODHA_API_KEY"),
		KiteAPISecret: os.Getenv("ZERODHA_API_SECRET"),
		LogoDevToken:  getEnv("LOGODEV_TOKEN", "pk_K9f7eo8kTJ6Z_hhQYR9LGQ"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(v) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getList(key string, def []string) []string {
	if v, ok := os.LookupEnv(key); ok {
		parts := strings.Split(v, ",")
		var cleaned []string
		for _, p := range parts {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		if len(cleaned) > 0 {
			return cleaned
		}
	}
	return def
}
