package environment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DEBUG", "LLM_PROVIDER", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL",
		"HISTORY_LIMIT", "REQUEST_INTERVAL_MS", "CORS_ORIGINS", "FIREBASE_CREDENTIALS_BASE64",
		"FIREBASE_PROJECT_ID", "ALLOWED_MODELS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, defaultGeminiModel, cfg.Model())
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, time.Second, cfg.RequestInterval)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.FirestoreEnabled())
	assert.Equal(t, []string{defaultGeminiModel}, cfg.AllowedModels)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_MODEL", "gpt-test")
	t.Setenv("ALLOWED_MODELS", "")
	t.Setenv("HISTORY_LIMIT", "3")
	t.Setenv("REQUEST_INTERVAL_MS", "0")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-test", cfg.Model())
	assert.Equal(t, 3, cfg.HistoryLimit)
	assert.Equal(t, time.Duration(0), cfg.RequestInterval)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"gpt-test"}, cfg.AllowedModels)
}

func TestLoad_AllowedModels(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("ALLOWED_MODELS", "gpt-4o-mini, gpt-4o")

	cfg := Load()
	assert.Equal(t, []string{"gpt-4o-mini", "gpt-4o"}, cfg.AllowedModels)
}

func TestGetGeminiKey_FallsBackToAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy")
	assert.Equal(t, "legacy", GetGeminiKey())

	t.Setenv("GEMINI_API_KEY", "primary")
	assert.Equal(t, "primary", GetGeminiKey())
}

func TestLoad_InvalidNumbersUseFallback(t *testing.T) {
	t.Setenv("HISTORY_LIMIT", "-4")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.False(t, cfg.Debug)
}
