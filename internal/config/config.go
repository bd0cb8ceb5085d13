package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Ai       AIConfig
	Pipeline PipelineConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type StoreConfig struct {
	SessionTTL    time.Duration
	ChartTTL      time.Duration
	JobTTL        time.Duration
	SweepInterval time.Duration
}

type AIConfig struct {
	LLMProvider   string // "ollama", "huggingface", "gemini"
	LLMModel      string // e.g. "llama3", "qwen2.5"
	OllamaBaseURL string
	HuggingFace   string // API key
	GoogleGemini  string // API key
}

type PipelineConfig struct {
	Topic           string
	PrimaryAttempts int
	AuxAttempts     int
	BackoffBase     time.Duration
	BackoffCap      time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Store: StoreConfig{
			SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			ChartTTL:      getEnvAsDuration("CHART_TTL", 24*time.Hour),
			JobTTL:        getEnvAsDuration("JOB_TTL", 1*time.Hour),
			SweepInterval: getEnvAsDuration("STORE_SWEEP_INTERVAL", 10*time.Minute),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HuggingFace:   getEnv("HUGGINGFACE_API_KEY", ""),
			GoogleGemini:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Pipeline: PipelineConfig{
			Topic:           getEnv("GENERATION_TOPIC_NAME", "GENERATE_CHART"),
			PrimaryAttempts: getEnvAsInt("PIPELINE_PRIMARY_ATTEMPTS", 3),
			AuxAttempts:     getEnvAsInt("PIPELINE_AUX_ATTEMPTS", 2),
			BackoffBase:     getEnvAsDuration("PIPELINE_BACKOFF_BASE", 500*time.Millisecond),
			BackoffCap:      getEnvAsDuration("PIPELINE_BACKOFF_CAP", 8*time.Second),
		},
	}
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
