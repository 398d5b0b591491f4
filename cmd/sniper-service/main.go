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

	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/delivery/scheduler"
	delivery "idx-scalping-sniper/internal/screener/delivery/http"
	_ "idx-scalping-sniper/internal/screener/docs"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/internal/screener/search"
	"idx-scalping-sniper/internal/screener/service"
	"idx-scalping-sniper/internal/screener/strategy"
	"idx-scalping-sniper/pkg/logger"
	"idx-scalping-sniper/pkg/telegram"
	"idx-scalping-sniper/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

var (
	configPath string
	port       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the screening HTTP service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if port > 0 {
		cfg.API.Port = port
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding, logger.WithSuppressedMessages(cfg.Logger.Suppress...))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Screening Service", logger.Field("name", cfg.App.Name), logger.Field("version", cfg.App.Version))

	// Initialize repositories
	marketDataRepo := repository.NewMarketDataRepository(cfg, appLogger)
	stockCodeRepo := repository.NewStockCodeRepository(cfg.Warrant.StockCodeFile)

	stockIndex, err := search.Load(ctx, stockCodeRepo)
	if err != nil {
		appLogger.Warn("Stock name search disabled", logger.ErrorField(err))
	}

	// Initialize services
	var analysisOpts []service.Option
	if stockIndex != nil {
		analysisOpts = append(analysisOpts, service.WithSymbolResolver(stockIndex))
	}
	screeningSvc := service.NewScreeningService(cfg, appLogger, marketDataRepo)
	analysisSvc := service.NewAnalysisService(appLogger, marketDataRepo, analysisOpts...)
	warrantSvc := service.NewWarrantService(cfg, appLogger, marketDataRepo, stockCodeRepo)

	if cfg.Watcher.Enabled {
		notifier := newNotifier(cfg, appLogger)
		watcher := scheduler.NewWatcher(cfg, appLogger, notifier, []strategy.JobExecutionStrategy{
			strategy.NewScreeningDigestStrategy(appLogger, screeningSvc, notifier),
			strategy.NewWarrantDigestStrategy(appLogger, warrantSvc, notifier),
		})
		if err := watcher.Start(ctx); err != nil {
			appLogger.Fatal("Failed to start watcher", logger.ErrorField(err))
		}
		defer watcher.Stop()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), logger.RequestIDKey, id)))
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLogger.InfoContext(c.Request().Context(), "HTTP request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	api := e.Group("/api")
	delivery.NewScreeningHandler(screeningSvc, analysisSvc, warrantSvc, appLogger).RegisterRoutes(api)
	delivery.NewHealthHandler(cfg.App).RegisterRoutes(api)
	if stockIndex != nil {
		delivery.NewSearchHandler(stockIndex, appLogger).RegisterRoutes(api)
	}

	e.GET("/swagger/*", swagger.WrapHandler)
	if cfg.API.StaticDir != "" {
		e.Static("/", cfg.API.StaticDir)
	}

	// Start server
	utils.GoSafe(func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	})

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func newNotifier(cfg *config.Config, log *logger.Logger) telegram.Notifier {
	if !cfg.Telegram.Enabled {
		return telegram.NewLogNotifier(log)
	}
	n, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Warn("Telegram unavailable, digests go to the log", logger.ErrorField(err))
		return telegram.NewLogNotifier(log)
	}
	return n
}

// @title IDX Scalping Sniper API
// @version 3.0
// @description Momentum screening, trade plans and warrant listings for the Indonesian exchange.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "sniper-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-sniper.yaml", "Path to the configuration file")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port, overrides config and API_PORT / PORT")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing sniper-service CLI: %s\n", err)
		os.Exit(1)
	}
}
