package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Catalog source: "csv" (default) or "postgres"
	CatalogSource string
	CatalogPath   string // CSV path
	DatabaseURL   string // Postgres DSN

	// Embedding configuration
	EmbeddingProvider string // "fastembed" (local model) or "openai"
	EmbeddingModel    string
	ModelCacheDir     string
	OpenAIAPIKey      string
	OpenAIBaseURL     string

	// How many recommendations to return by default
	TopK int

	// Assistant LLM configuration (optional)
	LLMProvider string // "openai", "groq", "ollama", or "none"
	LLMModel    string
	LLMAPIKey   string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:              getenv("PORT", "8080"),
		CatalogSource:     getenv("CATALOG_SOURCE", "csv"),
		CatalogPath:       getenv("CATALOG_PATH", "jobs_dataset.csv"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		EmbeddingProvider: getenv("EMBEDDING_PROVIDER", "fastembed"),
		EmbeddingModel:    os.Getenv("EMBEDDING_MODEL"),
		ModelCacheDir:     os.Getenv("MODEL_CACHE_DIR"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		TopK:              getenvInt("TOP_K", 3),
		LLMProvider:       getenv("LLM_PROVIDER", "none"),
		LLMModel:          os.Getenv("LLM_MODEL"),
	}

	switch cfg.LLMProvider {
	case "openai":
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		cfg.LLMAPIKey = os.Getenv("GROQ_API_KEY")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
