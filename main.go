package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"IsletmeBulucu/config/database"
	"IsletmeBulucu/config/environment"
	applogger "IsletmeBulucu/config/logger"
	"IsletmeBulucu/middleware"
	v1 "IsletmeBulucu/routes/v1"
	"IsletmeBulucu/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	dotenv := environment.LoadDotEnv()
	cfg := environment.Load()

	logger, err := applogger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !dotenv {
		logger.Info("No .env file found, using process environment")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg environment.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandlerMiddleware(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !containsWildcard(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	v1.RegisterRoutes(r, svc)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("port", cfg.Port), zap.String("model", svc.Search.Streamer.Name()))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildServices(ctx context.Context, cfg environment.Config, logger *zap.Logger) (v1.Services, error) {
	catalog, err := services.NewCatalogService(cfg.CatalogPath)
	if err != nil {
		return v1.Services{}, err
	}

	streamer, err := newStreamer(ctx, cfg)
	if err != nil {
		return v1.Services{}, err
	}

	sessions, err := services.NewSessionService(cfg.JWTSecret, 0)
	if err != nil {
		return v1.Services{}, err
	}

	var (
		historyStore  services.HistoryStore
		resultStore   services.ResultStore
		settingsStore services.SettingsStore
	)
	if cfg.FirestoreEnabled() {
		client, err := database.InitFirebase(ctx, cfg.FirebaseCredentials, cfg.FirebaseProjectID, logger)
		if err != nil {
			return v1.Services{}, err
		}
		store := services.NewFirestoreStore(client)
		historyStore, resultStore, settingsStore = store, store, store
	} else {
		logger.Warn("Firebase credentials not set, history and settings are kept in memory")
		store := services.NewMemoryStore()
		historyStore, resultStore, settingsStore = store, store, store
	}

	var uploader services.Uploader
	if cfg.ExportBucket != "" {
		s3Uploader, err := services.NewS3Uploader(ctx, cfg.ExportBucket, cfg.AWSRegion)
		if err != nil {
			return v1.Services{}, err
		}
		uploader = s3Uploader
	}

	history := services.NewHistoryService(historyStore, resultStore, cfg.HistoryLimit, logger)
	settings := services.NewSettingsService(settingsStore, cfg.AllowedModels...)

	return v1.Services{
		Catalog:  catalog,
		Search:   services.NewSearchService(catalog, streamer, history, settings, cfg.RequestInterval, logger),
		History:  history,
		Settings: settings,
		Export:   services.NewExportService(uploader),
		Sessions: sessions,
		Logger:   logger,
	}, nil
}

func newStreamer(ctx context.Context, cfg environment.Config) (services.CompletionStreamer, error) {
	switch cfg.LLMProvider {
	case environment.ProviderGemini:
		return services.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model(), "")
	case environment.ProviderOpenAI:
		return services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.Model(), cfg.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
