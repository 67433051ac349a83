package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration for the console.
type Config struct {
	App     AppConfig     `yaml:"app"`
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Cache   CacheConfig   `yaml:"cache"`
	Logger  LoggerConfig  `yaml:"logger"`
}

// AppConfig identifies the client build.
type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// APIConfig points at the backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SessionConfig locates the persisted login identity.
type SessionConfig struct {
	FilePath string `yaml:"file_path"`
}

// CacheConfig holds optional Redis snapshot cache settings.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment
// variables, with the environment taking precedence over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := configFilePath(); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base url not configured")
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "odyssey-console",
			Version: "dev",
		},
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 15,
		},
		Session: SessionConfig{
			FilePath: defaultSessionPath(),
		},
		Cache: CacheConfig{
			Addr:       "127.0.0.1:6379",
			TTLMinutes: 720,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

func configFilePath() string {
	if path := os.Getenv("ODYSSEY_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "odyssey", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.App.Name = getEnv("ODYSSEY_APP_NAME", cfg.App.Name)
	cfg.App.Version = getEnv("ODYSSEY_APP_VERSION", cfg.App.Version)
	cfg.API.BaseURL = getEnv("ODYSSEY_API_URL", cfg.API.BaseURL)
	cfg.API.TimeoutSeconds = getEnvAsInt("ODYSSEY_API_TIMEOUT_SECONDS", cfg.API.TimeoutSeconds)
	cfg.Session.FilePath = getEnv("ODYSSEY_SESSION_FILE", cfg.Session.FilePath)
	cfg.Cache.Enabled = getEnvAsBool("ODYSSEY_CACHE_ENABLED", cfg.Cache.Enabled)
	cfg.Cache.Addr = getEnv("ODYSSEY_CACHE_REDIS_ADDR", cfg.Cache.Addr)
	cfg.Cache.Password = getEnv("ODYSSEY_CACHE_REDIS_PASSWORD", cfg.Cache.Password)
	cfg.Cache.DB = getEnvAsInt("ODYSSEY_CACHE_REDIS_DB", cfg.Cache.DB)
	cfg.Cache.TTLMinutes = getEnvAsInt("ODYSSEY_CACHE_TTL_MINUTES", cfg.Cache.TTLMinutes)
	cfg.Logger.Level = getEnv("ODYSSEY_LOG_LEVEL", cfg.Logger.Level)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".odyssey-session.json"
	}
	return filepath.Join(home, ".config", "odyssey", "session.json")
}

// RequestTimeout returns the configured request timeout duration.
func (a APIConfig) RequestTimeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// TTL returns the snapshot expiry duration.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.TTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
