package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestFromViperSubstitutesStorePlaceholder(t *testing.T) {
	cfg := fromViper(newTestViper(nil))

	assert.False(t, cfg.Store.Configured)
	assert.Equal(t, PlaceholderStoreURL, cfg.Store.URL)
	assert.Equal(t, PlaceholderStoreKey, cfg.Store.Key)
	assert.True(t, cfg.Data.FallbackOnEmpty)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
}

func TestFromViperResolvesAliases(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{
		"VITE_SUPABASE_URL":      "postgres://db.example.com:5432/postgres",
		"VITE_SUPABASE_ANON_KEY": "anon",
		"VITE_API_KEY":           "vite-key",
		"GEMINI_BASE_URL":        "http://localhost:9999/",
	}))

	assert.True(t, cfg.Store.Configured)
	assert.Equal(t, "postgres://db.example.com:5432/postgres", cfg.Store.URL)
	assert.Equal(t, "anon", cfg.Store.Key)
	assert.Equal(t, "vite-key", cfg.Gemini.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.Gemini.BaseURL)
}

func TestFromViperBuildTimeSecretsWin(t *testing.T) {
	BuildGeminiAPIKey = "baked"
	defer func() { BuildGeminiAPIKey = "" }()

	cfg := fromViper(newTestViper(map[string]interface{}{"GEMINI_API_KEY": "runtime"}))

	assert.Equal(t, "baked", cfg.Gemini.APIKey)
}

func TestFromViperMissingKeyKeepsPlaceholder(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{
		"STORE_URL": "postgres://db.example.com:5432/postgres",
	}))

	assert.False(t, cfg.Store.Configured)
	assert.Equal(t, PlaceholderStoreURL, cfg.Store.URL)
}

func TestFromViperRejectsProjectURLAlias(t *testing.T) {
	cfg := fromViper(newTestViper(map[string]interface{}{
		"VITE_SUPABASE_URL":      "https://abcd.supabase.co",
		"VITE_SUPABASE_ANON_KEY": "anon",
	}))

	assert.False(t, cfg.Store.Configured)
	assert.Equal(t, PlaceholderStoreURL, cfg.Store.URL)
	assert.Equal(t, PlaceholderStoreKey, cfg.Store.Key)
	assert.Contains(t, cfg.Store.Rejected, `"https"`)
	assert.NotContains(t, cfg.Store.Rejected, "anon")
}

func TestLoadWithProjectURLFromEnvironment(t *testing.T) {
	t.Setenv("VITE_SUPABASE_URL", "https://abcd.supabase.co")
	t.Setenv("VITE_SUPABASE_ANON_KEY", "anon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Store.Configured)
	assert.Equal(t, PlaceholderStoreURL, cfg.Store.URL)
	assert.NotEmpty(t, cfg.Store.Rejected)
}

func TestCheckStoreURL(t *testing.T) {
	assert.Empty(t, checkStoreURL("postgres://db.example.com:5432/postgres"))
	assert.Empty(t, checkStoreURL("postgresql://db.example.com/edu"))
	assert.NotEmpty(t, checkStoreURL("https://abcd.supabase.co"))
	assert.NotEmpty(t, checkStoreURL("postgres:///nohost"))
	assert.NotEmpty(t, checkStoreURL("::not a url"))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"http://a", "http://b"}, splitAndTrim(" http://a, ,http://b "))
}
