package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"kvtranslate/backend/internal/service/ai"
	"kvtranslate/backend/internal/service/langdetect"
)

const (
	AppName    = "kvtranslate"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string
	LogFormat string
	NodeID    int64

	AI AIConfig

	TranslateTimeout     time.Duration
	TranslateMaxTokens   int
	TranslateChunkTokens int
	DocumentWorkers      int
	MaxUploadBytes       int64
	Languages            string

	CacheTTL      time.Duration
	Retention     time.Duration
	SweepInterval time.Duration
}

// AIConfig selects the translation backend.
type AIConfig struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	RateLimit int
}

func Load() Config {
	dataDir := getEnv("KVT_DATA_DIR", "./data")
	dbPath := getEnv("KVT_DB_PATH", filepath.Join(dataDir, "kvtranslate.db"))

	return Config{
		Addr:      getEnv("KVT_ADDR", ":5000"),
		DataDir:   filepath.Clean(dataDir),
		DBPath:    filepath.Clean(dbPath),
		StaticDir: getEnv("KVT_STATIC_DIR", ""),
		LogLevel:  getEnv("KVT_LOG_LEVEL", "info"),
		LogFormat: getEnv("KVT_LOG_FORMAT", "text"),
		NodeID:    int64(getEnvAsInt("KVT_NODE_ID", 1)),
		AI: AIConfig{
			Provider:  getEnv("KVT_AI_PROVIDER", ai.ProviderOpenAI),
			APIKey:    getEnv("KVT_AI_API_KEY", ""),
			BaseURL:   getEnv("KVT_AI_BASE_URL", ""),
			Model:     getEnv("KVT_AI_MODEL", "gpt-4o-mini"),
			RateLimit: getEnvAsInt("KVT_AI_RATE_LIMIT", ai.DefaultRateLimit),
		},
		TranslateTimeout:     getEnvAsDuration("KVT_TRANSLATE_TIMEOUT", 2*time.Minute),
		TranslateMaxTokens:   getEnvAsInt("KVT_TRANSLATE_MAX_TOKENS", 512),
		TranslateChunkTokens: getEnvAsInt("KVT_TRANSLATE_CHUNK_TOKENS", 3000),
		DocumentWorkers:      getEnvAsInt("KVT_DOCUMENT_WORKERS", 1),
		MaxUploadBytes:       int64(getEnvAsInt("KVT_MAX_UPLOAD_MB", 64)) << 20,
		Languages:            getEnv("KVT_LANGUAGES", ""),
		CacheTTL:             getEnvAsDuration("KVT_CACHE_TTL", 720*time.Hour),
		Retention:            getEnvAsDuration("KVT_RETENTION", 168*time.Hour),
		SweepInterval:        getEnvAsDuration("KVT_SWEEP_INTERVAL", time.Hour),
	}
}

// Validate checks values that would otherwise fail late, at request time.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("KVT_ADDR is required")
	}
	if c.DocumentWorkers < 1 {
		return fmt.Errorf("KVT_DOCUMENT_WORKERS must be at least 1, got %d", c.DocumentWorkers)
	}
	if c.TranslateMaxTokens < 1 {
		return fmt.Errorf("KVT_TRANSLATE_MAX_TOKENS must be positive, got %d", c.TranslateMaxTokens)
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("KVT_NODE_ID must be between 0 and 1023, got %d", c.NodeID)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("KVT_SWEEP_INTERVAL must be positive")
	}
	if _, err := c.LanguageMap(); err != nil {
		return fmt.Errorf("KVT_LANGUAGES: %w", err)
	}
	return nil
}

// LanguageMap returns the supported source languages, falling back to the defaults.
func (c Config) LanguageMap() (langdetect.LanguageMap, error) {
	if c.Languages == "" {
		return langdetect.DefaultLanguages(), nil
	}
	return langdetect.ParseLanguageMap(c.Languages)
}

// UploadDir holds raw uploaded PDFs.
func (c Config) UploadDir() string {
	return filepath.Join(c.DataDir, "uploads")
}

// TranslationsDir holds combined reports, metadata and the zip archive.
func (c Config) TranslationsDir() string {
	return filepath.Join(c.DataDir, "translations")
}

// DocumentReportsDir holds one workbook per translated PDF.
func (c Config) DocumentReportsDir() string {
	return filepath.Join(c.TranslationsDir(), "pdfs")
}

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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
