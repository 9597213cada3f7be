package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration. Values come from the
// environment, with a .env file loaded first when present.
type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	CORSOrigins []string
	BcryptCost  int

	// Optional: rate limiting is enabled only when RedisAddr is set.
	RedisAddr string

	// Optional: Google OAuth login is enabled only when all three are set.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendURL        string
}

// Load reads configuration from the environment. Missing required
// variables are fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return Config{
		Port:        getenv("PORT", "8080"),
		MongoURI:    must("MONGODB_URI"),
		MongoDB:     getenv("MONGO_DB", "fittrack"),
		JWTSecret:   must("JWT_SECRET"),
		CORSOrigins: splitOrigins(getenv("CORS_ORIGINS", "http://localhost:3000")),
		BcryptCost:  getenvInt("BCRYPT_COST", bcrypt.DefaultCost),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		FrontendURL:        getenv("FRONTEND_URL", "http://localhost:3000"),
	}
}

// GoogleEnabled reports whether the Google OAuth login routes should
// be registered.
func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

// splitOrigins splits a comma-separated origin list, tolerating
// whitespace around the commas.
func splitOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
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
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
