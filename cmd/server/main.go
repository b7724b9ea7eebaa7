package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kvtranslate/backend/internal/config"
	"kvtranslate/backend/internal/db"
	"kvtranslate/backend/internal/extract"
	"kvtranslate/backend/internal/handler"
	transport "kvtranslate/backend/internal/http"
	"kvtranslate/backend/internal/logger"
	"kvtranslate/backend/internal/repository"
	"kvtranslate/backend/internal/scheduler"
	"kvtranslate/backend/internal/service"
	"kvtranslate/backend/internal/service/ai"
	"kvtranslate/backend/internal/service/langdetect"
	"kvtranslate/backend/internal/service/translate"
	"kvtranslate/backend/internal/snowflake"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	logger.Info("starting", "module", "main", "action", "start", "resource", "server", "result", "ok", "version", config.AppVersion, "addr", cfg.Addr)

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	batchRepo := repository.NewBatchRepository(dbConn)
	cacheRepo := repository.NewTranslationCacheRepository(dbConn)

	languages, err := cfg.LanguageMap()
	if err != nil {
		log.Fatalf("load languages: %v", err)
	}
	resolver := langdetect.NewResolver(langdetect.NewLinguaDetector(), languages)

	aiConfig := ai.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
	}
	rateLimiter := ai.NewRateLimiter(cfg.AI.RateLimit)

	var translator translate.Translator
	provider, providerErr := ai.NewProvider(aiConfig)
	if providerErr != nil {
		logger.Warn("translation backend not configured", "module", "main", "action", "start", "resource", "ai", "result", "failed", "provider", cfg.AI.Provider, "error", providerErr)
		translator = translate.Unavailable(providerErr)
	} else {
		translator = translate.NewLLMTranslator(provider, rateLimiter, cacheRepo, translate.Options{
			MaxTokens:   cfg.TranslateMaxTokens,
			ChunkTokens: cfg.TranslateChunkTokens,
			Timeout:     cfg.TranslateTimeout,
		})
	}

	paths := service.Paths{
		Uploads:      cfg.UploadDir(),
		Reports:      cfg.DocumentReportsDir(),
		Translations: cfg.TranslationsDir(),
	}
	for _, dir := range []string{paths.Uploads, paths.Reports} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create %s: %v", dir, err)
		}
	}

	storageService := service.NewStorageService(paths)
	documentService := service.NewDocumentService(extract.NewPDFTextExtractor(), resolver, translator, batchRepo, paths, cfg.DocumentWorkers)
	historyService := service.NewHistoryService(batchRepo)
	aiService := service.NewAIService(aiConfig, provider, providerErr, cacheRepo, rateLimiter)
	maintenanceService := service.NewMaintenanceService(cacheRepo, batchRepo, storageService, cfg.CacheTTL, cfg.Retention)

	router := transport.NewRouter(
		handler.NewDocumentHandler(documentService, storageService),
		handler.NewBatchHandler(historyService),
		handler.NewLanguageHandler(languages),
		handler.NewHealthHandler(config.AppVersion),
		handler.NewAIHandler(aiService),
		transport.RouterConfig{MaxUploadBytes: cfg.MaxUploadBytes, StaticDir: cfg.StaticDir},
	)

	sched := scheduler.New(maintenanceService, cfg.SweepInterval)
	sched.Start()

	go func() {
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("start server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down", "module", "main", "action", "stop", "resource", "server", "result", "ok")

	sched.Stop()
	// uploads can take as long as a translation timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.TranslateTimeout+10*time.Second)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "module", "main", "action", "stop", "resource", "server", "result", "failed", "error", err)
	}
}
