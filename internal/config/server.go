package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig конфигурация stub-сервера из переменных окружения
type ServerConfig struct {
	ServerPort         string
	DBPath             string
	JWTSecret          string
	AdminPassword      string
	UserPassword       string
	LogLevel           string
	LogFormat          string
	CORSOrigins        []string
	JWTAccessTTL       time.Duration
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ShutdownTimeout    time.Duration
	RateLimitRPM       int
}

// LoadServer читает .env и переменные окружения
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	cfg := &ServerConfig{
		ServerPort:         getEnv("SERVER_PORT", getEnv("PORT", "3001")),
		DBPath:             getEnv("DB_PATH", "bcp-audit.db"),
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTAccessTTL:       getDuration("JWT_ACCESS_TTL", 24*time.Hour),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:       getInt("RATE_LIMIT_RPM", 300),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		UserPassword:       getEnv("USER_PASSWORD", "user123"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		ServerReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		ServerWriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию сервера
func (c *ServerConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}

	if c.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be positive")
	}

	if c.RateLimitRPM <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPM must be positive")
	}

	if c.AdminPassword == "" || c.UserPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD and USER_PASSWORD cannot be empty")
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

// Addr возвращает адрес для http.Server
func (c *ServerConfig) Addr() string {
	return ":" + c.ServerPort
}
