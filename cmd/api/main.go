package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "job-recommender/docs" // Swagger docs
	"job-recommender/internal/api"
	"job-recommender/internal/assistant"
	"job-recommender/internal/catalog"
	"job-recommender/internal/config"
	"job-recommender/internal/embedding"
	"job-recommender/internal/recommend"
	"job-recommender/internal/session"
	"job-recommender/internal/storage"

	"github.com/joho/godotenv"
)

// @title Job Recommender API
// @version 1.0
// @description Resume/skill-based job recommender: facet filtering plus semantic ranking with a sentence-embedding model
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.LoadConfig()

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("catalog load: ", err)
	}

	// Model warm-up is expensive; defer it to the first query. The lazy
	// wrapper serializes concurrent first requests.
	provider := embedding.NewLazy(func() (embedding.Provider, error) {
		return embedding.NewProvider(embedding.Config{
			Provider: cfg.EmbeddingProvider,
			Model:    cfg.EmbeddingModel,
			CacheDir: cfg.ModelCacheDir,
			APIKey:   cfg.OpenAIAPIKey,
			BaseURL:  cfg.OpenAIBaseURL,
		})
	})
	defer provider.Close()

	ranker := recommend.NewRanker(provider)
	llm := assistant.NewLLMService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	if llm == nil {
		log.Println("Assistant LLM disabled, using template replies")
	}
	asst := assistant.New(cat, ranker, llm, cfg.TopK)
	sessions := session.NewStore()

	apiSrv := api.NewAPI(cat, ranker, asst, sessions, cfg.TopK)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 5 * time.Minute,  // first query pays the model warm-up
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case "postgres":
		log.Println("Connecting to database...")
		db, err := storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.LoadJobs(context.Background())
	default:
		log.Printf("Loading catalog from %s", cfg.CatalogPath)
		return catalog.LoadCSV(cfg.CatalogPath)
	}
}
