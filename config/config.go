package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAccessTokenExpiryMin   = 15
	DefaultRefreshTokenExpiryMin  = 10080
	DefaultMaxActiveRefreshTokens = 5
	DefaultPort                   = "8080"
	DefaultBasePath               = "/api/v1"
)

type Config struct {
	Env                    string
	Port                   string
	BasePath               string
	DBURL                  string
	AccessTokenSecret      string
	RefreshTokenSecret     string
	AccessExpiryMin        int
	RefreshExpiryMin       int
	MaxActiveRefreshTokens int
}

// Load reads configuration from config/.env.<env> (if present) and the
// process environment. Environment variables take precedence over file
// values because godotenv never overwrites existing keys.
func Load() *Config {
	env := getEnv("ENV", "development")

	if file := envFile(env); file != "" {
		if err := godotenv.Load(filepath.Join("config", file)); err != nil {
			log.Printf("No %s file found, relying on environment variables", file)
		}
	}

	return &Config{
		Env:                    env,
		Port:                   getEnv("PORT", DefaultPort),
		BasePath:               getEnv("BASE_PATH", DefaultBasePath),
		DBURL:                  mustGetEnv("DB_URL"),
		AccessTokenSecret:      mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:     mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:        getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:       getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		MaxActiveRefreshTokens: getEnvAsInt("MAX_ACTIVE_REFRESH_TOKENS", DefaultMaxActiveRefreshTokens),
	}
}

// IsProduction reports whether the service runs in production mode.
// Error responses hide diagnostic detail when it returns true.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func envFile(env string) string {
	switch env {
	case "development":
		return ".env.dev"
	case "test":
		return ".env.test"
	case "production":
		return ".env.prod"
	}
	return ""
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
