package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"equihire/screening-engine/internal/logging"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Gemini   GeminiConfig
	Qdrant   QdrantConfig
	Corpus   CorpusConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// StorageConfig describes the Cloudflare R2 bucket holding candidate CVs.
type StorageConfig struct {
	AccountID     string
	AccessKeyID   string
	SecretKey     string
	Bucket        string
	Endpoint      string
	PresignExpiry time.Duration
	MaxCVSize     int64
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type CorpusConfig struct {
	Path      string
	BatchSize int
	RetainCap int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logging.GetLogger().Debug("No .env file found. Using environment and defaults.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Storage: StorageConfig{
			AccountID:     getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:   getEnv("R2_ACCESS_KEY_ID", ""),
			SecretKey:     getEnv("R2_SECRET_ACCESS_KEY", ""),
			Bucket:        getEnv("R2_BUCKET_NAME", "equihire-secure"),
			Endpoint:      getEnv("R2_ENDPOINT", ""),
			PresignExpiry: getEnvAsDuration("PRESIGN_EXPIRY", "300s"),
			MaxCVSize:     getEnvAsInt64("MAX_CV_SIZE", 10485760),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "anonymous_profiles"),
		},
		Corpus: CorpusConfig{
			Path:      getEnv("CORPUS_PATH", "./data/sri_lankan_employee_ner_dataset.json"),
			BatchSize: getEnvAsInt("CORPUS_BATCH_SIZE", 3000),
			RetainCap: getEnvAsInt("CORPUS_RETAIN_CAP", 5000),
		},
	}
}

// Enabled reports whether a datastore host was configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// Enabled reports whether all R2 credentials are present.
func (s StorageConfig) Enabled() bool {
	return s.AccountID != "" && s.AccessKeyID != "" && s.SecretKey != ""
}

// EndpointURL returns the S3-compatible endpoint for the account.
func (s StorageConfig) EndpointURL() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.AccountID)
}

func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}

func (q QdrantConfig) Enabled() bool {
	return q.URL != ""
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Env, "development")
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
