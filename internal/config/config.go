package config

import (
	"os"
	"strconv"
	"time"

	"mathwiz/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Auth     AuthConfig
	Server   ServerConfig
	XP       XPConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AIConfig holds Gemini related settings
type AIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// AuthConfig holds token signing settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

// XPConfig holds the award amounts for the gamification counter
type XPConfig struct {
	SolveProblem    int
	ExplainStep     int
	PracticeProblem int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	aiConfig, err := loadAIConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AI configuration")
	}
	config.AI = *aiConfig

	config.Auth = *loadAuthConfig()
	config.Server = *loadServerConfig()
	config.XP = *loadXPConfig()

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	return &DatabaseConfig{URL: url}, nil
}

func loadAIConfig() (*AIConfig, error) {
	// The key may legitimately be absent: the server still starts and the
	// solver surfaces AI_NOT_CONFIGURED per request instead of refusing boot.
	return &AIConfig{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		Temperature: getEnvFloatOrDefault("GEMINI_TEMPERATURE", 1.0),
	}, nil
}

func loadAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: getEnvOrDefault("JWT_SECRET_KEY", "dev-only-insecure-jwt-secret-key"),
		TokenTTL:  getEnvDurationOrDefault("TOKEN_TTL", 30*time.Minute),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		AllowedOrigins: []string{
			getEnvOrDefault("FRONTEND_ORIGIN", "http://localhost:5173"),
			"http://localhost:3000",
			"http://localhost:8003",
			"http://127.0.0.1:8003",
		},
	}
}

func loadXPConfig() *XPConfig {
	return &XPConfig{
		SolveProblem:    getEnvIntOrDefault("XP_SOLVE_PROBLEM", 10),
		ExplainStep:     getEnvIntOrDefault("XP_EXPLAIN_STEP", 5),
		PracticeProblem: getEnvIntOrDefault("XP_PRACTICE_PROBLEM", 30),
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
