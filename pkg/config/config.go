package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Placeholders substituted when store credentials are absent so the process still starts.
const (
	PlaceholderStoreURL = "postgres://placeholder.invalid:5432/postgres?sslmode=disable&connect_timeout=2"
	PlaceholderStoreKey = "placeholder"
)

// Build-time secrets, injected with -ldflags "-X github.com/noah-isme/eduverse-api/pkg/config.BuildStoreURL=...".
// They take precedence over the runtime environment.
var (
	BuildStoreURL     string
	BuildStoreKey     string
	BuildGeminiAPIKey string
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store  StoreConfig
	Data   DataConfig
	Redis  RedisConfig
	Gemini GeminiConfig
	CORS   CORSConfig
	Log    LogConfig
}

// StoreConfig describes the remote relational store. Rejected explains why supplied
// credentials were replaced by the placeholder.
type StoreConfig struct {
	URL          string
	Key          string
	Configured   bool
	Rejected     string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

// DataConfig tunes the data access layer.
type DataConfig struct {
	FallbackOnEmpty bool
	WriteWorkers    int
	WriteBuffer     int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// GeminiConfig configures the generative model client. An empty APIKey disables AI features.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	storeURL := firstNonEmpty(BuildStoreURL, v.GetString("STORE_URL"), v.GetString("SUPABASE_URL"), v.GetString("VITE_SUPABASE_URL"))
	storeKey := firstNonEmpty(BuildStoreKey, v.GetString("STORE_KEY"), v.GetString("SUPABASE_ANON_KEY"), v.GetString("VITE_SUPABASE_ANON_KEY"))
	cfg.Store = StoreConfig{
		URL:          storeURL,
		Key:          storeKey,
		Configured:   storeURL != "" && storeKey != "",
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
	}
	if cfg.Store.Configured {
		if reason := checkStoreURL(storeURL); reason != "" {
			cfg.Store.Configured = false
			cfg.Store.Rejected = reason
		}
	}
	if !cfg.Store.Configured {
		cfg.Store.URL = PlaceholderStoreURL
		cfg.Store.Key = PlaceholderStoreKey
	}

	cfg.Data = DataConfig{
		FallbackOnEmpty: v.GetBool("DATA_FALLBACK_ON_EMPTY"),
		WriteWorkers:    v.GetInt("WRITE_WORKERS"),
		WriteBuffer:     v.GetInt("WRITE_BUFFER"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey:  firstNonEmpty(BuildGeminiAPIKey, v.GetString("GEMINI_API_KEY"), v.GetString("API_KEY"), v.GetString("VITE_API_KEY")),
		Model:   v.GetString("GEMINI_MODEL"),
		BaseURL: strings.TrimRight(v.GetString("GEMINI_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("GEMINI_TIMEOUT"), 30*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_URL", "")
	v.SetDefault("STORE_KEY", "")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_ANON_KEY", "")
	v.SetDefault("VITE_SUPABASE_URL", "")
	v.SetDefault("VITE_SUPABASE_ANON_KEY", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("DATA_FALLBACK_ON_EMPTY", true)
	v.SetDefault("WRITE_WORKERS", 2)
	v.SetDefault("WRITE_BUFFER", 64)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("API_KEY", "")
	v.SetDefault("VITE_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "")
	v.SetDefault("GEMINI_TIMEOUT", "30s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// checkStoreURL returns why raw cannot be used as a postgres connection string, or "".
// Project URLs such as https://<ref>.supabase.co are rejected here.
func checkStoreURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "store url is not a valid url"
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Sprintf("store url scheme %q is not postgres (host %s)", u.Scheme, u.Host)
	}
	if u.Host == "" {
		return "store url has no host"
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
