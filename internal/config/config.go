package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Blob   BlobConfig   `yaml:"blob"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// StoreConfig selects and configures the durable photo store
type StoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// BlobConfig selects and configures the image blob store
type BlobConfig struct {
	Backend    string    `yaml:"backend"` // "local" or "s3"
	Dir        string    `yaml:"dir"`
	PublicPath string    `yaml:"public_path"`
	S3         AWSConfig `yaml:"s3"`
}

// AWSConfig holds S3 blob store configuration
type AWSConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"` // custom endpoint for S3-compatible providers
}

// AuthConfig holds the single admin credential pair. PasswordHash, when set,
// takes precedence over Password and must be a bcrypt hash.
type AuthConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing config file is not an error; defaults plus the
// environment are enough to run.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 4000},
		Store:  StoreConfig{Backend: "file", Path: "data/photos.json"},
		Blob: BlobConfig{
			Backend:    "local",
			Dir:        "images/fulls",
			PublicPath: "/images/fulls",
		},
		Auth: AuthConfig{Username: "admin", Password: "change-me"},
		Log:  LogConfig{Level: "info"},
	}
}

// applyEnv layers environment variables over the file-based configuration.
// A .env file in the working directory is honored if present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	c.Server.Port = getEnvInt("PORT", c.Server.Port)
	c.Auth.Username = getEnv("ADMIN_USERNAME", c.Auth.Username)
	c.Auth.Password = getEnv("ADMIN_PASSWORD", c.Auth.Password)
	c.Auth.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", c.Auth.PasswordHash)
	c.Store.Path = getEnv("DATA_PATH", c.Store.Path)
	c.Blob.Dir = getEnv("IMAGES_DIR", c.Blob.Dir)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
