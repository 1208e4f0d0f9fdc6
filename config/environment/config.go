package environment

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	Port  string
	Debug bool

	LLMProvider   string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	// AllowedModels are the model names a client may pick in its settings.
	AllowedModels []string

	JWTSecret string

	FirebaseCredentials string
	FirebaseProjectID   string

	HistoryLimit    int
	RequestInterval time.Duration
	CatalogPath     string

	ExportBucket string
	AWSRegion    string

	CORSOrigins []string
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel = "gemini-2.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

// LoadDotEnv loads a .env file when one is present. A missing file is not an
// error, the process environment is used as is.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Load reads the configuration from the process environment.
func Load() Config {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		Debug:               getBool("DEBUG", false),
		LLMProvider:         strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:        GetGeminiKey(),
		GeminiModel:         getEnv("GEMINI_MODEL", defaultGeminiModel),
		OpenAIAPIKey:        GetOpenAIKey(),
		OpenAIModel:         getEnv("OPENAI_MODEL", defaultOpenAIModel),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		FirebaseCredentials: GetFirebaseKey(),
		FirebaseProjectID:   GetFirebaseProjectID(),
		HistoryLimit:        getInt("HISTORY_LIMIT", 10),
		RequestInterval:     time.Duration(getInt("REQUEST_INTERVAL_MS", 1000)) * time.Millisecond,
		CatalogPath:         os.Getenv("CATALOG_PATH"),
		ExportBucket:        os.Getenv("EXPORT_S3_BUCKET"),
		AWSRegion:           getEnv("AWS_REGION", "eu-central-1"),
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", "*")),
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}
	cfg.AllowedModels = splitList(os.Getenv("ALLOWED_MODELS"))
	if len(cfg.AllowedModels) == 0 {
		cfg.AllowedModels = []string{cfg.Model()}
	}
	return cfg
}

// Model returns the default model name of the configured provider.
func (c Config) Model() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// FirestoreEnabled reports whether Firebase credentials are configured.
func (c Config) FirestoreEnabled() bool {
	return c.FirebaseCredentials != "" && c.FirebaseProjectID != ""
}

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// GetGeminiKey falls back to API_KEY, the variable the web client used.
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
