// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendFile      = "file"
	BackendFirestore = "firestore"
	BackendSQLite    = "sqlite"
	BackendPostgres  = "postgres"
	BackendRedis     = "redis"
	BackendMemory    = "memory"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	Firebase FirebaseConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string
	Debug          bool
	AllowedOrigins []string
}

// StoreConfig selects and configures the state backend.
type StoreConfig struct {
	Backend     string
	StatePath   string
	StateKey    string
	DatabaseDSN string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// FirebaseConfig holds Firebase project settings.
type FirebaseConfig struct {
	ProjectID   string
	Credentials string
}

// Load reads envFiles (".env" when none are given) into the environment
// without overriding variables that are already set, then builds the
// configuration. Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Debug:          getEnvBool("DEBUG", false),
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		},
		Store: StoreConfig{
			Backend:     strings.ToLower(getEnv("STORE_BACKEND", BackendFile)),
			StatePath:   getEnv("STATE_PATH", "diet-tracker-state.json"),
			StateKey:    getEnv("STATE_KEY", "diet-tracker-state"),
			DatabaseDSN: os.Getenv("DATABASE_DSN"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Firebase: FirebaseConfig{
			ProjectID:   os.Getenv("FIREBASE_PROJECT_ID"),
			Credentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
	}
	if cfg.Store.Backend == BackendSQLite && cfg.Store.DatabaseDSN == "" {
		cfg.Store.DatabaseDSN = "diet_tracker.db"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile:
		if c.Store.StatePath == "" {
			return errors.New("STATE_PATH is required for the file backend")
		}
	case BackendFirestore:
		if c.Firebase.ProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required for the firestore backend")
		}
	case BackendSQLite, BackendPostgres:
		if c.Store.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s backend", c.Store.Backend)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required for the redis backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for v := range strings.SplitSeq(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
