package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	WordAPI WordAPIConfig
	Redis   RedisConfig
	Logging LoggingConfig
	Output  OutputConfig
}

// WordAPIConfig holds configuration for the remote word list
type WordAPIConfig struct {
	URL     string
	Timeout time.Duration
}

// RedisConfig holds configuration for the optional Redis scoreboard
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	ScoreboardTTL time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// OutputConfig holds terminal output configuration
type OutputConfig struct {
	Plain bool
}

// Load reads envFile into the environment when it exists, then builds the
// configuration from environment variables with defaults. Variables already
// set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		WordAPI: WordAPIConfig{
			URL:     getEnv("WORD_API_URL", ""),
			Timeout: time.Duration(getEnvInt("WORD_API_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:          getEnv("REDIS_ADDR", ""),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvInt("REDIS_DB", 0),
			ScoreboardTTL: time.Duration(getEnvInt("SCOREBOARD_TTL_HOURS", 24)) * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Output: OutputConfig{
			Plain: getEnvBool("PLAIN_OUTPUT", false),
		},
	}, nil
}

// UseRedis returns true when a Redis address is configured
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// NewLogger builds the slog logger described by the logging configuration
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLogLevel(c.Logging.Level),
	}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// ParseLogLevel maps a level name to a slog level, defaulting to info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as a boolean or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
