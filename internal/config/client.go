// Package config загружает конфигурацию клиента (YAML + окружение) и сервера (окружение).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// UserConfigDir каталог пользовательского конфига относительно $HOME
	UserConfigDir = ".config/bcp-audit"
	// UserConfigFile имя пользовательского конфига
	UserConfigFile = "config.yaml"
)

// ClientConfig represents the complete client configuration
type ClientConfig struct {
	Server  ServerEndpoint `yaml:"server"`
	Storage StorageConfig  `yaml:"storage"`
	Log     LogConfig      `yaml:"log"`
	Cache   CacheConfig    `yaml:"cache"`
	Offline bool           `yaml:"offline"`
}

// ServerEndpoint configures the remote API
type ServerEndpoint struct {
	// URL is the API base URL
	URL string `yaml:"url"`
	// Timeout is the per-attempt request timeout
	Timeout time.Duration `yaml:"timeout"`
	// RetryDelay is the base delay, attempt n+1 waits RetryDelay*n
	RetryDelay time.Duration `yaml:"retry_delay"`
	// RetryAttempts is the total number of attempts per request
	RetryAttempts int `yaml:"retry_attempts"`
}

// StorageConfig configures the local BoltDB file
type StorageConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig configures the response cache
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultClientConfig returns a ClientConfig with sensible defaults
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Server: ServerEndpoint{
			URL:           "http://localhost:3001",
			Timeout:       10 * time.Second,
			RetryAttempts: 3,
			RetryDelay:    time.Second,
		},
		Storage: StorageConfig{
			Path: "bcp-audit-client.db",
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url is required")
	}
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url must be an absolute URL, got %q", c.Server.URL)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	if c.Server.RetryAttempts < 1 {
		return fmt.Errorf("server.retry_attempts must be at least 1")
	}
	if c.Server.RetryDelay < 0 {
		return fmt.Errorf("server.retry_delay cannot be negative")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LoadClientFile loads configuration from a YAML file on top of defaults
func LoadClientFile(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultClientConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadClient загружает конфигурацию клиента с приоритетом:
// 1. значения по умолчанию
// 2. YAML: явный path или ~/.config/bcp-audit/config.yaml, если существует
// 3. .env и переменные окружения BCP_*
// Флаги командной строки применяются вызывающим поверх результата.
func LoadClient(path string) (*ClientConfig, error) {
	_ = godotenv.Load()

	cfg := DefaultClientConfig()

	switch {
	case path != "":
		loaded, err := LoadClientFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		if userPath := userConfigPath(); userPath != "" {
			loaded, err := LoadClientFile(userPath)
			switch {
			case err == nil:
				cfg = loaded
			case !errors.Is(err, os.ErrNotExist):
				return nil, err
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *ClientConfig) applyEnv() {
	c.Server.URL = getEnv("BCP_SERVER_URL", c.Server.URL)
	c.Server.Timeout = getDuration("BCP_TIMEOUT", c.Server.Timeout)
	c.Storage.Path = getEnv("BCP_DB_PATH", c.Storage.Path)
	c.Log.Level = getEnv("BCP_LOG_LEVEL", c.Log.Level)
	c.Offline = getBool("BCP_OFFLINE", c.Offline)
}

// SaveToFile saves configuration to a YAML file
func (c *ClientConfig) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
