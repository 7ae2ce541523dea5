package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds the HTTP service configuration
type Settings struct {
	Port         int
	Env          string
	LogLevel     string
	LogPretty    bool
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// IsProduction reports whether the service runs in production mode.
func (s *Settings) IsProduction() bool {
	return s.Env == "production"
}

// Addr is the listen address for the configured port.
func (s *Settings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// LoadSettings reads settings from the environment, after loading a .env file if present
func LoadSettings() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		Port:         getEnvAsInt("WHATIF_PORT", 8080),
		Env:          getEnv("WHATIF_ENV", "development"),
		LogLevel:     getEnv("WHATIF_LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("WHATIF_LOG_PRETTY", false),
		CORSOrigins:  getEnvAsList("WHATIF_CORS_ORIGINS", []string{"*"}),
		ReadTimeout:  getEnvAsDuration("WHATIF_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getEnvAsDuration("WHATIF_WRITE_TIMEOUT", 10*time.Second),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings are usable
func (s *Settings) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("WHATIF_PORT must be between 1 and 65535, got %d", s.Port)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("WHATIF_LOG_LEVEL must be debug, info, warn or error, got %q", s.LogLevel)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("read and write timeouts must be positive")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
