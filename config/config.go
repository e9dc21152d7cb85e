// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Mode string
	Port string

	DatabaseURL string

	JWTSecret      string
	ServiceKeyHash string

	FirebaseCredentials string
	FeedCollection      string
	AlertTopic          string
	FeedRetentionDays   int

	TeamsFile string
}

// Load reads .env (when present) and collects the service configuration.
func Load() *Config {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	return &Config{
		Mode:                getenv("APP_MODE", "debug"),
		Port:                getenv("PORT", "8080"),
		DatabaseURL:         databaseURL(),
		JWTSecret:           os.Getenv("JWT_SECRET_KEY"),
		ServiceKeyHash:      os.Getenv("SERVICE_KEY_HASH"),
		FirebaseCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FeedCollection:      getenv("FEED_COLLECTION", "live_reports"),
		AlertTopic:          getenv("ALERT_TOPIC", "urgent-reports"),
		FeedRetentionDays:   getenvInt("FEED_RETENTION_DAYS", 30),
		TeamsFile:           getenv("VOLUNTEER_TEAMS_FILE", "teams.yaml"),
	}
}

// databaseURL prefers an explicit DATABASE_URL and otherwise assembles one
// from the individual DB_* variables.
func databaseURL() string {
	if url := strings.TrimSpace(os.Getenv("DATABASE_URL")); url != "" {
		return url
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	name := getenv("DB_NAME", "lost_and_found")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
