package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Keys        APIKeys
	Ai          AIConfig
	Brandfolder BrandfolderConfig
	Analytics   AnalyticsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	Version            string
	LogFilePath        string
	CorsAllowedOrigins string
}

type APIKeys struct {
	OpenAI string
}

type AIConfig struct {
	LLMProvider   string // "openai", "ollama", or "" to disable model parsing
	LLMModel      string // e.g. "gpt-4o-mini", "llama3"
	OpenAIBaseURL string
	OllamaBaseURL string
}

type BrandfolderConfig struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	BrandfolderID string
	APIBaseURL    string
	OAuthBaseURL  string
}

type AnalyticsConfig struct {
	SearchTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			Version:            getEnv("APP_VERSION", "1.0.0"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Keys: APIKeys{
			OpenAI: getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", defaultLLMProvider()),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Brandfolder: BrandfolderConfig{
			ClientID:      getEnv("BRANDFOLDER_CLIENT_ID", ""),
			ClientSecret:  getEnv("BRANDFOLDER_CLIENT_SECRET", ""),
			RedirectURL:   getEnv("BRANDFOLDER_REDIRECT_URL", ""),
			BrandfolderID: getEnv("BREVILLE_VAULT_ID", ""),
			APIBaseURL:    getEnv("BRANDFOLDER_API_URL", "https://api.brandfolder.com/v4"),
			OAuthBaseURL:  getEnv("BRANDFOLDER_OAUTH_URL", "https://oauth2.brandfolder-apps.com/oauth2"),
		},
		Analytics: AnalyticsConfig{
			SearchTopic: getEnv("ASSET_SEARCH_TOPIC_NAME", "ASSET_SEARCH_COMPLETED"),
		},
	}
}

// defaultLLMProvider enables OpenAI parsing automatically when a key is set,
// so a bare deployment still gets model-assisted intent resolution.
func defaultLLMProvider() string {
	if os.Getenv("OPENAI_API_KEY") != "" {
		return "openai"
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
