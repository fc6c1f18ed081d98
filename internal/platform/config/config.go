// Package config loads the runtime configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server.
type Config struct {
	Port      string
	JWTSecret string
	APIKey    string

	// BaseURL is the public address of this API, FrontURL the address of
	// the frontend. Both are used to build email links.
	BaseURL  string
	FrontURL string

	MongoURI string
	MongoDB  string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string
	RunMigrations bool

	RedisHost     string
	RedisPort     string
	RedisPassword string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads .env if present and builds the Config from the environment.
func Load() Config {
	// .env is optional, real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment")
	}

	return Config{
		Port:      getEnv("PORT", "3000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIKey:    os.Getenv("API_KEY_INTERN"),

		BaseURL:  getEnv("URL_BASE", "http://localhost:3000"),
		FrontURL: getEnv("URL_FRONT", "http://localhost:5173"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "tienda"),

		MySQLUser:     getEnv("MYSQL_USERNAME", "root"),
		MySQLPassword: os.Getenv("MYSQL_PASSWORD"),
		MySQLHost:     getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:     getEnv("MYSQL_PORT", "3306"),
		MySQLDatabase: getEnv("MYSQL_DATABASE", "tienda"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("GMAIL_USER"),
		SMTPPassword: os.Getenv("GMAIL_PASS"),
		SMTPFrom:     getEnv("SMTP_FROM", os.Getenv("GMAIL_USER")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
