package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port         string
	BaseURL      string
	AllowOrigins []string
}

type StorageConfig struct {
	DataFile  string
	UploadDir string
}

type AdminConfig struct {
	Username string
	// PasswordHash is a bcrypt hash; main falls back to a development
	// credential when it is unset.
	PasswordHash string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			BaseURL:      getEnv("VIBEFOLIO_BASE_URL", "http://localhost:8080"),
			AllowOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Storage: StorageConfig{
			DataFile:  getEnv("VIBEFOLIO_DATA_FILE", "data/projects.json"),
			UploadDir: getEnv("VIBEFOLIO_UPLOAD_DIR", "public/uploads"),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "Jolin0223"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Storage.DataFile == "" {
		return fmt.Errorf("VIBEFOLIO_DATA_FILE is required")
	}

	if c.Storage.UploadDir == "" {
		return fmt.Errorf("VIBEFOLIO_UPLOAD_DIR is required")
	}

	if c.Admin.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
