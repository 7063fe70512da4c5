package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-ai-analyzer/internal/analyzer/config"
	delivery "golang-ai-analyzer/internal/analyzer/delivery/http"
	_ "golang-ai-analyzer/internal/analyzer/docs"
	"golang-ai-analyzer/internal/analyzer/repository"
	"golang-ai-analyzer/internal/analyzer/service"
	"golang-ai-analyzer/pkg/logger"
	"golang-ai-analyzer/pkg/telegram"

	"github.com/labstack/echo/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the AI analysis service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting AI Analysis Service", logger.Field("name", cfg.App.Name))

	// Initialize Telegram notifier
	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	} else {
		notifier = telegram.NewNoopNotifier()
		appLogger.Warn("Telegram bot token not configured, degraded-analysis alerts disabled")
	}

	// Initialize AI repository
	var aiRepo repository.AIRepository
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.Gemini.APIKey})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini client", logger.ErrorField(err))
		}
		aiRepo, err = repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini repository", logger.ErrorField(err))
		}
	case "openai":
		aiRepo, err = repository.NewOpenAIRepository(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize OpenAI repository", logger.ErrorField(err))
		}
	default:
		appLogger.Fatal("Unknown AI provider", logger.StringField("provider", cfg.AI.Provider))
	}

	// Initialize market data repository and service
	marketRepo := repository.NewYahooFinanceRepository(cfg, appLogger)
	analyzerSvc := service.NewAnalyzerService(cfg, appLogger, aiRepo, marketRepo, notifier)

	// Initialize result cache for the report endpoints
	resultCache := gocache.New(cfg.Cache.ResultTTL, 2*cfg.Cache.ResultTTL)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	analyzerHandler := delivery.NewAnalyzerHandler(analyzerSvc, appLogger, resultCache)
	apiV1 := e.Group("/api/v1")
	analyzerHandler.RegisterRoutes(apiV1)

	e.GET("/swagger/*", swagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": cfg.App.Version})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title AI Investment Analyzer API
// @version 1.0
// @description AI-focused stock and 401k benefits analysis service.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "analyzer-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-analyzer.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analyzer-service CLI: %s\n", err)
		os.Exit(1)
	}
}
