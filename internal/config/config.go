package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process configuration read from the environment.
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSOrigins        []string
	RateLimitPerMinute int
	FoursquareAPIKey   string
	FoursquareBaseURL  string
	DatabaseURL        string
	RedisURL           string
	VenueCacheTTL      time.Duration
	MetricsPort        string
}

// IsDevelopment reports whether the service runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "" || strings.EqualFold(c.Env, "development")
}

// Load reads .env from the working directory when present and then the environment.
// Environment variables take precedence over .env values.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("FOURSQUARE_API_KEY", "")
	v.SetDefault("FOURSQUARE_BASE_URL", "https://api.foursquare.com/v3/places")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("VENUE_CACHE_TTL", "10m")
	v.SetDefault("METRICS_PORT", "9090")

	ttl, err := time.ParseDuration(v.GetString("VENUE_CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing VENUE_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("VENUE_CACHE_TTL must be positive, got %s", ttl)
	}

	rate := v.GetInt("RATE_LIMIT_PER_MINUTE")
	if rate <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer, got %q", v.GetString("RATE_LIMIT_PER_MINUTE"))
	}

	// An explicitly empty METRICS_PORT disables the metrics server.
	metricsPort := v.GetString("METRICS_PORT")
	if val, ok := os.LookupEnv("METRICS_PORT"); ok {
		metricsPort = strings.TrimSpace(val)
	}

	return &Config{
		Port:               v.GetString("PORT"),
		Env:                v.GetString("APP_ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		CORSOrigins:        splitCSV(v.GetString("CORS_ORIGINS")),
		RateLimitPerMinute: rate,
		FoursquareAPIKey:   v.GetString("FOURSQUARE_API_KEY"),
		FoursquareBaseURL:  strings.TrimRight(v.GetString("FOURSQUARE_BASE_URL"), "/"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RedisURL:           v.GetString("REDIS_URL"),
		VenueCacheTTL:      ttl,
		MetricsPort:        metricsPort,
	}, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
